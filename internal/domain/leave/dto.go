package leave

import (
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/validator"
)

// SubmitLeaveRequestRequest is the self-service leave form. Range ordering and overlap are
// not validated.
type SubmitLeaveRequestRequest struct {
	Reason   string `json:"reason"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`

	fromDate time.Time
	toDate   time.Time
}

func (r *SubmitLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if date, ok := validator.IsValidDate(r.FromDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be in YYYY-MM-DD format",
		})
	} else {
		r.fromDate = date
	}

	if date, ok := validator.IsValidDate(r.ToDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be in YYYY-MM-DD format",
		})
	} else {
		r.toDate = date
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Dates returns the parsed range. Only meaningful after Validate succeeded.
func (r *SubmitLeaveRequestRequest) Dates() (time.Time, time.Time) {
	return r.fromDate, r.toDate
}

type LeaveRequestResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName *string   `json:"employee_name,omitempty"`
	Reason       string    `json:"reason"`
	FromDate     string    `json:"from_date"`
	ToDate       string    `json:"to_date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToResponse(lr LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:           lr.ID,
		EmployeeID:   lr.EmployeeID,
		EmployeeName: lr.EmployeeName,
		Reason:       lr.Reason,
		FromDate:     lr.FromDate.Format("2006-01-02"),
		ToDate:       lr.ToDate.Format("2006-01-02"),
		Status:       string(lr.Status),
		CreatedAt:    lr.CreatedAt,
		UpdatedAt:    lr.UpdatedAt,
	}
}

func ToResponses(requests []LeaveRequest) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, 0, len(requests))
	for _, lr := range requests {
		out = append(out, ToResponse(lr))
	}
	return out
}

// FormFields are the inputs accepted by the submission form, in display order.
var FormFields = []string{"reason", "from_date", "to_date"}

// LeaveFormResponse describes the submission form for the GET side of the route.
type LeaveFormResponse struct {
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	Fields       []string `json:"fields"`
}
