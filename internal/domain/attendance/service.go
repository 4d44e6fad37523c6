package attendance

import (
	"context"
	"time"
)

// AttendanceService is the read-side aggregator plus record maintenance.
type AttendanceService interface {
	// ResolveDate parses YYYY-MM-DD, falling back to today on absence or parse failure.
	ResolveDate(input string) time.Time

	// ComputeDailyCounts counts rows per status on date across all employees.
	ComputeDailyCounts(ctx context.Context, date time.Time) (DailyCounts, error)

	// GenerateHeuristicMessage renders the status message for presentPct on date.
	GenerateHeuristicMessage(ctx context.Context, presentPct float64, date time.Time) (string, error)

	// ComputeTrend returns windowDays of per-status counts ending at endDate, oldest first.
	ComputeTrend(ctx context.Context, endDate time.Time, windowDays int) (TrendResponse, error)

	// ListRecords returns the attendance table for a day.
	ListRecords(ctx context.Context, date time.Time) ([]AttendanceRecordItem, error)

	// Record creates or updates an employee's attendance for a day.
	Record(ctx context.Context, req RecordAttendanceRequest) (AttendanceResponse, error)
}
