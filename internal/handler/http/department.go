package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-attendance-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type DepartmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Rename(w http.ResponseWriter, r *http.Request)
}

type departmentHandlerImpl struct {
	departmentService department.DepartmentService
}

func NewDepartmentHandler(departmentService department.DepartmentService) DepartmentHandler {
	return &departmentHandlerImpl{departmentService: departmentService}
}

func (h *departmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateDepartment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.departmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created successfully", created)
}

func (h *departmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	departments, err := h.departmentService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, departments)
}

func (h *departmentHandlerImpl) Rename(w http.ResponseWriter, r *http.Request) {
	var req department.RenameDepartmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RenameDepartment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.departmentService.Rename(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department renamed successfully", updated)
}
