package dashboard

import (
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/leave"
)

// ========== COMBINED DASHBOARD ==========

// DashboardResponse is the read model of the main dashboard endpoint
type DashboardResponse struct {
	Username      string                       `json:"username"`
	Role          string                       `json:"role"`
	LeaveRequests []leave.LeaveRequestResponse `json:"leave_requests"` // nil when no employee profile is linked
	Message       string                       `json:"message"`
	SelectedDate  string                       `json:"selected_date"` // Format: "YYYY-MM-DD"

	TotalEmployees   int64 `json:"total_employees"`
	TotalDepartments int64 `json:"total_departments"`

	AttendanceStats AttendanceStatsResponse           `json:"attendance_stats"`
	Records         []attendance.AttendanceRecordItem `json:"attendance_records"`
	Trend           attendance.TrendResponse          `json:"trend"`

	Messages []FlashMessage `json:"messages,omitempty"`
}

// ========== DAILY ATTENDANCE STATS ==========

// AttendanceStatsResponse represents attendance statistics for a specific day
type AttendanceStatsResponse struct {
	Present        int64   `json:"present"`
	Absent         int64   `json:"absent"`
	Late           int64   `json:"late"`
	PresentPercent float64 `json:"present_percent"`
	AbsentPercent  float64 `json:"absent_percent"`
	LatePercent    float64 `json:"late_percent"`
}

// FlashMessage is a one-shot notice carried across a redirect.
type FlashMessage struct {
	Level   string `json:"level"` // success | error
	Message string `json:"message"`
}
