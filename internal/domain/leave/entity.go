package leave

import (
	"time"
)

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "Pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "Approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "Rejected"
)

// IsTerminal reports whether no further transition is defined from s.
func (s LeaveRequestStatus) IsTerminal() bool {
	return s == LeaveRequestStatusApproved || s == LeaveRequestStatusRejected
}

// Action is the admin/HR decision applied through the leave-action route.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// TargetStatus maps an action to the status it sets. Unknown actions report ok=false.
func (a Action) TargetStatus() (LeaveRequestStatus, bool) {
	switch a {
	case ActionApprove:
		return LeaveRequestStatusApproved, true
	case ActionReject:
		return LeaveRequestStatusRejected, true
	}
	return "", false
}

// LeaveRequest entity
type LeaveRequest struct {
	ID         string
	EmployeeID string
	Reason     string
	FromDate   time.Time
	ToDate     time.Time
	Status     LeaveRequestStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Relationships (for responses)
	EmployeeName *string
}
