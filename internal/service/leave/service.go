package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/access"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	tx     database.Transactor
	policy access.Policy
	leave.LeaveRequestRepository
	employee.EmployeeRepository
}

func NewLeaveService(
	tx database.Transactor,
	policy access.Policy,
	leaveRequestRepository leave.LeaveRequestRepository,
	employeeRepository employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		tx:                     tx,
		policy:                 policy,
		LeaveRequestRepository: leaveRequestRepository,
		EmployeeRepository:     employeeRepository,
	}
}

// linkedEmployee returns the employee linked to identity, or ErrProfileNotLinked.
func (s *LeaveServiceImpl) linkedEmployee(ctx context.Context, identity access.Identity) (employee.Employee, error) {
	if identity.UserID == "" {
		return employee.Employee{}, leave.ErrProfileNotLinked
	}
	emp, err := s.EmployeeRepository.GetByUserID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, leave.ErrProfileNotLinked
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee for user: %w", err)
	}
	return emp, nil
}

// GetLeaveForm implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeaveForm(ctx context.Context, identity access.Identity) (leave.LeaveFormResponse, error) {
	emp, err := s.linkedEmployee(ctx, identity)
	if err != nil {
		return leave.LeaveFormResponse{}, err
	}
	return leave.LeaveFormResponse{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName(),
		Fields:       leave.FormFields,
	}, nil
}

// SubmitLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) SubmitLeaveRequest(ctx context.Context, identity access.Identity, req leave.SubmitLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	emp, err := s.linkedEmployee(ctx, identity)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	fromDate, toDate := req.Dates()

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID: emp.ID,
		Reason:     req.Reason,
		FromDate:   fromDate,
		ToDate:     toDate,
		Status:     leave.LeaveRequestStatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	metrics.LeaveSubmissionsTotal.Inc()

	name := emp.FullName()
	created.EmployeeName = &name
	return leave.ToResponse(created), nil
}

// ListLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, identity access.Identity) ([]leave.LeaveRequestResponse, error) {
	if !s.policy.Authorize(identity, access.LeaveManagers...) {
		return nil, access.ErrForbidden
	}

	requests, err := s.LeaveRequestRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return leave.ToResponses(requests), nil
}

// ListMyLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMyLeaveRequests(ctx context.Context, identity access.Identity) ([]leave.LeaveRequestResponse, error) {
	emp, err := s.linkedEmployee(ctx, identity)
	if errors.Is(err, leave.ErrProfileNotLinked) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	requests, err := s.LeaveRequestRepository.ListByEmployeeID(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list own leave requests: %w", err)
	}
	return leave.ToResponses(requests), nil
}

// UpdateStatus implements leave.LeaveService.
// An action other than approve or reject leaves the status as it is but still saves the row.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, identity access.Identity, leaveID string, action leave.Action) (leave.LeaveRequestResponse, error) {
	actionLabel := string(action)
	if _, ok := action.TargetStatus(); !ok {
		actionLabel = "other"
	}

	if !s.policy.Authorize(identity, access.LeaveManagers...) {
		metrics.LeaveTransitionsTotal.WithLabelValues(actionLabel, "forbidden").Inc()
		return leave.LeaveRequestResponse{}, access.ErrForbidden
	}
	if !validator.IsValidUUID(leaveID) {
		metrics.LeaveTransitionsTotal.WithLabelValues(actionLabel, "not_found").Inc()
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
	}

	var updated leave.LeaveRequest
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		current, err := s.LeaveRequestRepository.GetByIDForUpdate(txCtx, leaveID)
		if err != nil {
			return err
		}

		target, ok := action.TargetStatus()
		if !ok {
			target = current.Status
		} else if current.Status.IsTerminal() {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		updated, err = s.LeaveRequestRepository.UpdateStatus(txCtx, leaveID, target)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, leave.ErrLeaveRequestNotFound):
			metrics.LeaveTransitionsTotal.WithLabelValues(actionLabel, "not_found").Inc()
			return leave.LeaveRequestResponse{}, err
		case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
			metrics.LeaveTransitionsTotal.WithLabelValues(actionLabel, "already_processed").Inc()
			return leave.LeaveRequestResponse{}, err
		}
		metrics.LeaveTransitionsTotal.WithLabelValues(actionLabel, "error").Inc()
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request status: %w", err)
	}

	metrics.LeaveTransitionsTotal.WithLabelValues(actionLabel, "success").Inc()
	slog.Info("leave request status updated",
		"leave_request_id", leaveID,
		"action", string(action),
		"status", string(updated.Status),
		"by", identity.Username,
	)
	return leave.ToResponse(updated), nil
}
