package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Upsert creates or replaces the record for (employee, date).
	Upsert(ctx context.Context, attendance Attendance) (Attendance, error)

	// ListByDate returns every record of a day joined with employee and department names.
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// CountByStatusOnDate returns present/absent/late counts for one day in a single query.
	CountByStatusOnDate(ctx context.Context, date time.Time) (DailyCounts, error)

	// CountByStatusBetween returns per-day, per-status counts for an inclusive date range.
	CountByStatusBetween(ctx context.Context, from, to time.Time) ([]DailyStatusCount, error)

	// TopAbsentDepartment returns the department with most absences on date, or nil when none.
	TopAbsentDepartment(ctx context.Context, date time.Time) (*DepartmentAbsence, error)
}
