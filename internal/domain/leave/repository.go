package leave

import (
	"context"
)

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	// GetByIDForUpdate locks the row for the surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id string) (LeaveRequest, error)
	// List returns all requests, newest first.
	List(ctx context.Context) ([]LeaveRequest, error)
	// ListByEmployeeID returns an employee's requests, newest first.
	ListByEmployeeID(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	// UpdateStatus persists status and bumps updated_at.
	UpdateStatus(ctx context.Context, id string, status LeaveRequestStatus) (LeaveRequest, error)
}
