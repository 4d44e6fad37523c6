package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/cache"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/validator"
)

const trendCacheComponent = "attendance_trend"

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	cache    cache.Cache
	cacheTTL time.Duration
	now      func() time.Time
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	trendCache cache.Cache,
	cacheTTL time.Duration,
) attendance.AttendanceService {
	if trendCache == nil {
		trendCache = cache.NewNoop()
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		cache:                trendCache,
		cacheTTL:             cacheTTL,
		now:                  time.Now,
	}
}

// ResolveDate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ResolveDate(input string) time.Time {
	if date, ok := validator.IsValidDate(input); ok {
		return date
	}
	return dateOnly(s.now())
}

// ComputeDailyCounts implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ComputeDailyCounts(ctx context.Context, date time.Time) (attendance.DailyCounts, error) {
	counts, err := s.AttendanceRepository.CountByStatusOnDate(ctx, dateOnly(date))
	if err != nil {
		return attendance.DailyCounts{}, fmt.Errorf("failed to compute daily counts: %w", err)
	}
	return counts, nil
}

// GenerateHeuristicMessage implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GenerateHeuristicMessage(ctx context.Context, presentPct float64, date time.Time) (string, error) {
	top, err := s.AttendanceRepository.TopAbsentDepartment(ctx, dateOnly(date))
	if err != nil {
		return "", fmt.Errorf("failed to find most absent department: %w", err)
	}
	return HeuristicMessage(presentPct, top), nil
}

// ComputeTrend implements attendance.AttendanceService.
// The default window is served from the cache when present.
func (s *AttendanceServiceImpl) ComputeTrend(ctx context.Context, endDate time.Time, windowDays int) (attendance.TrendResponse, error) {
	if windowDays < 1 {
		windowDays = attendance.TrendWindowDays
	}
	end := dateOnly(endDate)
	cacheable := windowDays == attendance.TrendWindowDays

	if cacheable {
		var cached attendance.TrendResponse
		found, err := s.cache.Get(ctx, trendCacheKey(end), &cached)
		if err != nil {
			slog.Warn("attendance trend cache read failed", "error", err, "end_date", attendance.DayString(end))
		}
		if found {
			metrics.CacheHitTotal.WithLabelValues(trendCacheComponent).Inc()
			return cached, nil
		}
		metrics.CacheMissTotal.WithLabelValues(trendCacheComponent).Inc()
	}

	start := end.AddDate(0, 0, -(windowDays - 1))
	rows, err := s.AttendanceRepository.CountByStatusBetween(ctx, start, end)
	if err != nil {
		return attendance.TrendResponse{}, fmt.Errorf("failed to compute attendance trend: %w", err)
	}
	trend := BuildTrend(end, windowDays, rows)

	if cacheable {
		if err := s.cache.Set(ctx, trendCacheKey(end), trend, s.cacheTTL); err != nil {
			slog.Warn("attendance trend cache write failed", "error", err, "end_date", attendance.DayString(end))
		}
	}
	return trend, nil
}

// ListRecords implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListRecords(ctx context.Context, date time.Time) ([]attendance.AttendanceRecordItem, error) {
	records, err := s.AttendanceRepository.ListByDate(ctx, dateOnly(date))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	items := make([]attendance.AttendanceRecordItem, 0, len(records))
	for _, r := range records {
		item := attendance.AttendanceRecordItem{
			ID:         r.ID,
			EmployeeID: r.EmployeeID,
			Date:       attendance.DayString(r.Date),
			Status:     string(r.Status),
			CheckIn:    r.CheckIn,
			CheckOut:   r.CheckOut,
		}
		if r.EmployeeName != nil {
			item.EmployeeName = *r.EmployeeName
		}
		if r.DepartmentName != nil {
			item.DepartmentName = *r.DepartmentName
		}
		items = append(items, item)
	}
	return items, nil
}

// Record implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Record(ctx context.Context, req attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !validator.IsValidUUID(req.EmployeeID) {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	date, _ := validator.IsValidDate(req.Date)
	saved, err := s.AttendanceRepository.Upsert(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Status:     attendance.Status(req.Status),
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to record attendance: %w", err)
	}

	s.invalidateTrends(ctx, date)

	return attendance.ToResponse(saved), nil
}

// invalidateTrends drops every cached default-window trend whose range covers date.
func (s *AttendanceServiceImpl) invalidateTrends(ctx context.Context, date time.Time) {
	keys := make([]string, 0, attendance.TrendWindowDays)
	for i := 0; i < attendance.TrendWindowDays; i++ {
		keys = append(keys, trendCacheKey(date.AddDate(0, 0, i)))
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		slog.Warn("attendance trend cache invalidation failed", "error", err, "date", attendance.DayString(date))
	}
}

func trendCacheKey(end time.Time) string {
	return "trend:" + attendance.DayString(end)
}
