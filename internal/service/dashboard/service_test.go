package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/access"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/leave"
	accessservice "github.com/cmlabs-hris/hris-attendance-go/internal/service/access"
	attendanceservice "github.com/cmlabs-hris/hris-attendance-go/internal/service/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)

type fakeAttendanceService struct {
	attendance.AttendanceService
	counts attendance.DailyCounts
	err    error

	mu         sync.Mutex
	countDates []time.Time
	trendEnds  []time.Time
	messagePct float64
}

func (f *fakeAttendanceService) ResolveDate(input string) time.Time {
	if d, err := time.Parse("2006-01-02", input); err == nil {
		return d
	}
	return today
}

func (f *fakeAttendanceService) ComputeDailyCounts(_ context.Context, date time.Time) (attendance.DailyCounts, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.countDates = append(f.countDates, date)
	return f.counts, f.err
}

func (f *fakeAttendanceService) GenerateHeuristicMessage(_ context.Context, pct float64, _ time.Time) (string, error) {
	f.messagePct = pct
	return attendanceservice.HeuristicMessage(pct, nil), nil
}

func (f *fakeAttendanceService) ComputeTrend(_ context.Context, end time.Time, window int) (attendance.TrendResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trendEnds = append(f.trendEnds, end)
	return attendanceservice.BuildTrend(end, window, nil), nil
}

func (f *fakeAttendanceService) ListRecords(context.Context, time.Time) ([]attendance.AttendanceRecordItem, error) {
	return []attendance.AttendanceRecordItem{{ID: "r1", Status: "Present"}}, nil
}

type fakeLeaveService struct {
	leave.LeaveService
}

func (fakeLeaveService) ListMyLeaveRequests(_ context.Context, identity access.Identity) ([]leave.LeaveRequestResponse, error) {
	if identity.UserID == "" {
		return nil, nil
	}
	return []leave.LeaveRequestResponse{{ID: "lr1", Status: "Pending"}}, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	total int64
}

func (f fakeEmployeeRepo) Count(context.Context) (int64, error) { return f.total, nil }

type fakeDepartmentRepo struct {
	department.DepartmentRepository
	total int64
}

func (f fakeDepartmentRepo) Count(context.Context) (int64, error) { return f.total, nil }

func TestDashboardService_GetDashboard(t *testing.T) {
	att := &fakeAttendanceService{counts: attendance.DailyCounts{Present: 8, Absent: 1, Late: 1}}
	svc := NewDashboardService(accessservice.NewGroupPolicy(), att, fakeLeaveService{}, fakeEmployeeRepo{total: 10}, fakeDepartmentRepo{total: 3})
	identity := access.Identity{UserID: "u1", Username: "hr", Groups: []string{"Viewer", "HR"}}

	resp, err := svc.GetDashboard(context.Background(), identity, "2024-01-05")

	require.NoError(t, err)
	assert.Equal(t, "HR", resp.Role)
	assert.Equal(t, "hr", resp.Username)
	assert.Equal(t, "2024-01-05", resp.SelectedDate)
	assert.Equal(t, int64(10), resp.TotalEmployees)
	assert.Equal(t, int64(3), resp.TotalDepartments)
	assert.Equal(t, 80.0, resp.AttendanceStats.PresentPercent)
	assert.Equal(t, 10.0, resp.AttendanceStats.AbsentPercent)
	assert.Equal(t, 10.0, resp.AttendanceStats.LatePercent)
	assert.Equal(t, attendanceservice.MessageExcellent, resp.Message)
	assert.Len(t, resp.Records, 1)
	assert.Len(t, resp.LeaveRequests, 1)

	// Day stats follow the selected date, the trend ends today
	assert.Equal(t, []time.Time{time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)}, att.countDates)
	assert.Equal(t, []time.Time{today}, att.trendEnds)
	assert.Len(t, resp.Trend.Labels, attendance.TrendWindowDays)
	assert.Equal(t, "10 Jan", resp.Trend.Labels[attendance.TrendWindowDays-1])
}

func TestDashboardService_GetDashboard_NoEmployees(t *testing.T) {
	att := &fakeAttendanceService{counts: attendance.DailyCounts{Present: 2}}
	svc := NewDashboardService(accessservice.NewGroupPolicy(), att, fakeLeaveService{}, fakeEmployeeRepo{}, fakeDepartmentRepo{})

	resp, err := svc.GetDashboard(context.Background(), access.Identity{Username: "guest"}, "garbage")

	require.NoError(t, err)
	assert.Equal(t, "", resp.Role)
	assert.Equal(t, "2024-01-10", resp.SelectedDate)
	assert.Equal(t, 0.0, resp.AttendanceStats.PresentPercent)
	assert.Equal(t, attendanceservice.MessageHighAbsence, resp.Message)
	assert.Nil(t, resp.LeaveRequests)
}

func TestDashboardService_GetDashboard_StorageError(t *testing.T) {
	boom := errors.New("db down")
	att := &fakeAttendanceService{err: boom}
	svc := NewDashboardService(accessservice.NewGroupPolicy(), att, fakeLeaveService{}, fakeEmployeeRepo{total: 1}, fakeDepartmentRepo{total: 1})

	_, err := svc.GetDashboard(context.Background(), access.Identity{}, "")
	assert.ErrorIs(t, err, boom)
}
