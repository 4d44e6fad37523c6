package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.employeeRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	if !validator.IsValidUUID(req.DepartmentID) {
		return employee.EmployeeResponse{}, department.ErrDepartmentNotFound
	}
	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get department: %w", err)
	}

	created, err := s.employeeRepo.Create(ctx, req.ToEntity())
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("employee created", "employee_id", created.ID, "department_id", created.DepartmentID)
	return employee.ToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	if !validator.IsValidUUID(id) {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee.ToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}
