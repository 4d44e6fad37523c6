package department

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/validator"
)

type DepartmentServiceImpl struct {
	department.DepartmentRepository
}

func NewDepartmentService(repo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{DepartmentRepository: repo}
}

// Create implements department.DepartmentService.
func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.DepartmentRepository.Create(ctx, department.Department{Name: strings.TrimSpace(req.Name)})
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}
	return department.ToResponse(created), nil
}

// List implements department.DepartmentService.
func (s *DepartmentServiceImpl) List(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, department.ToResponse(d))
	}
	return responses, nil
}

// Rename implements department.DepartmentService.
func (s *DepartmentServiceImpl) Rename(ctx context.Context, req department.RenameDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}
	if !validator.IsValidUUID(req.ID) {
		return department.DepartmentResponse{}, department.ErrDepartmentNotFound
	}

	renamed, err := s.DepartmentRepository.Rename(ctx, req.ID, strings.TrimSpace(req.Name))
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to rename department: %w", err)
	}
	return department.ToResponse(renamed), nil
}
