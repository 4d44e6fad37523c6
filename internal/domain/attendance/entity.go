package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLate    Status = "Late"
)

// TrendWindowDays is the length of the dashboard attendance trend.
const TrendWindowDays = 30

// Statuses lists the three recognised attendance states.
var Statuses = []Status{StatusPresent, StatusAbsent, StatusLate}

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *string // HH:MM[:SS]
	CheckOut   *string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Join
	EmployeeName   *string
	DepartmentName *string
}

// DailyCounts is the number of attendance rows per status on one day.
type DailyCounts struct {
	Present int64
	Absent  int64
	Late    int64
}

// Add increments the counter for status.
func (c *DailyCounts) Add(status Status, n int64) {
	switch status {
	case StatusPresent:
		c.Present += n
	case StatusAbsent:
		c.Absent += n
	case StatusLate:
		c.Late += n
	}
}

// Percentages are counts relative to the total employee headcount, one decimal place.
type Percentages struct {
	Present float64
	Absent  float64
	Late    float64
}

// DailyStatusCount is one row of a grouped (date, status) aggregation.
type DailyStatusCount struct {
	Date   time.Time
	Status Status
	Count  int64
}

// DepartmentAbsence is the department with the most absences on a day.
type DepartmentAbsence struct {
	DepartmentName string
	Total          int64
}
