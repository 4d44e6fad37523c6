package attendance

import (
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/validator"
)

type RecordAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	CheckIn    *string `json:"check_in,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
	Status     string  `json:"status"`
}

func (r *RecordAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	// Status defaults to Present
	if r.Status == "" {
		r.Status = string(StatusPresent)
	}
	validStatuses := make([]string, 0, len(Statuses))
	for _, s := range Statuses {
		validStatuses = append(validStatuses, string(s))
	}
	if !validator.IsInSlice(r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: ErrInvalidStatus.Error(),
		})
	}

	if r.CheckIn != nil && !validator.IsValidClockTime(*r.CheckIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in",
			Message: "check_in must be in HH:MM or HH:MM:SS format",
		})
	}
	if r.CheckOut != nil && !validator.IsValidClockTime(*r.CheckOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out",
			Message: "check_out must be in HH:MM or HH:MM:SS format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	CheckIn    *string `json:"check_in,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
	Status     string  `json:"status"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format("2006-01-02"),
		CheckIn:    a.CheckIn,
		CheckOut:   a.CheckOut,
		Status:     string(a.Status),
	}
}

// AttendanceRecordItem is one row of the dashboard attendance table.
type AttendanceRecordItem struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	DepartmentName string  `json:"department_name"`
	Date           string  `json:"date"`
	Status         string  `json:"status"`
	CheckIn        *string `json:"check_in,omitempty"`
	CheckOut       *string `json:"check_out,omitempty"`
}

// TrendResponse is a chart series over a trailing window of days, oldest first.
type TrendResponse struct {
	Labels  []string `json:"labels"`
	Present []int64  `json:"present"`
	Absent  []int64  `json:"absent"`
	Late    []int64  `json:"late"`
	From    string   `json:"from"`
	To      string   `json:"to"`
}

// DayString formats a date the way it travels over the wire.
func DayString(t time.Time) string {
	return t.Format("2006-01-02")
}
