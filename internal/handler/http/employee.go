package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-attendance-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

// Create handles POST /api/v1/employees
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", created)
}

// Get handles GET /api/v1/employees/{id}
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	emp, err := h.employeeService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// List handles GET /api/v1/employees?department_id=&active=
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter employee.EmployeeFilter

	query := r.URL.Query()
	if departmentID := query.Get("department_id"); departmentID != "" {
		filter.DepartmentID = &departmentID
	}
	if active := query.Get("active"); active != "" {
		activeOnly, err := strconv.ParseBool(active)
		if err != nil {
			response.BadRequest(w, "active must be a boolean", nil)
			return
		}
		filter.ActiveOnly = activeOnly
	}

	employees, err := h.employeeService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}
