package leave

import (
	"context"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/access"
)

type LeaveService interface {
	// GetLeaveForm describes the submission form for the identity's linked employee.
	GetLeaveForm(ctx context.Context, identity access.Identity) (LeaveFormResponse, error)
	// SubmitLeaveRequest creates a Pending request for the identity's linked employee.
	SubmitLeaveRequest(ctx context.Context, identity access.Identity, req SubmitLeaveRequestRequest) (LeaveRequestResponse, error)
	// ListLeaveRequests returns every request, newest first. Admin or HR only.
	ListLeaveRequests(ctx context.Context, identity access.Identity) ([]LeaveRequestResponse, error)
	// ListMyLeaveRequests returns the identity's own requests; nil when no employee is linked.
	ListMyLeaveRequests(ctx context.Context, identity access.Identity) ([]LeaveRequestResponse, error)
	// UpdateStatus applies an approve/reject action. Admin or HR only.
	UpdateStatus(ctx context.Context, identity access.Identity, leaveID string, action Action) (LeaveRequestResponse, error)
}
