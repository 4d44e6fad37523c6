package dashboard

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/access"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/leave"
	attendanceservice "github.com/cmlabs-hris/hris-attendance-go/internal/service/attendance"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	policy            access.Policy
	attendanceService attendance.AttendanceService
	leaveService      leave.LeaveService
	employeeRepo      employee.EmployeeRepository
	departmentRepo    department.DepartmentRepository
}

func NewDashboardService(
	policy access.Policy,
	attendanceService attendance.AttendanceService,
	leaveService leave.LeaveService,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		policy:            policy,
		attendanceService: attendanceService,
		leaveService:      leaveService,
		employeeRepo:      employeeRepo,
		departmentRepo:    departmentRepo,
	}
}

// GetDashboard returns combined dashboard data using parallel goroutines
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, identity access.Identity, date string) (*dashboard.DashboardResponse, error) {
	selected := s.attendanceService.ResolveDate(date)
	today := s.attendanceService.ResolveDate("")

	var (
		totalEmployees   int64
		totalDepartments int64
		counts           attendance.DailyCounts
		records          []attendance.AttendanceRecordItem
		trend            attendance.TrendResponse
		myLeaves         []leave.LeaveRequestResponse
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Headcount
	g.Go(func() error {
		total, err := s.employeeRepo.Count(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}
		totalEmployees = total
		return nil
	})

	g.Go(func() error {
		total, err := s.departmentRepo.Count(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count departments: %w", err)
		}
		totalDepartments = total
		return nil
	})

	// 2. Selected day counts and table
	g.Go(func() error {
		c, err := s.attendanceService.ComputeDailyCounts(gCtx, selected)
		if err != nil {
			return err
		}
		counts = c
		return nil
	})

	g.Go(func() error {
		items, err := s.attendanceService.ListRecords(gCtx, selected)
		if err != nil {
			return err
		}
		records = items
		return nil
	})

	// 3. Trend always ends today
	g.Go(func() error {
		t, err := s.attendanceService.ComputeTrend(gCtx, today, attendance.TrendWindowDays)
		if err != nil {
			return err
		}
		trend = t
		return nil
	})

	// 4. Own leave requests
	g.Go(func() error {
		mine, err := s.leaveService.ListMyLeaveRequests(gCtx, identity)
		if err != nil {
			return err
		}
		myLeaves = mine
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	pct := attendanceservice.ComputePercentages(counts, totalEmployees)
	message, err := s.attendanceService.GenerateHeuristicMessage(ctx, pct.Present, selected)
	if err != nil {
		return nil, err
	}

	return &dashboard.DashboardResponse{
		Username:         identity.Username,
		Role:             string(s.policy.DeriveRole(identity)),
		LeaveRequests:    myLeaves,
		Message:          message,
		SelectedDate:     attendance.DayString(selected),
		TotalEmployees:   totalEmployees,
		TotalDepartments: totalDepartments,
		AttendanceStats: dashboard.AttendanceStatsResponse{
			Present:        counts.Present,
			Absent:         counts.Absent,
			Late:           counts.Late,
			PresentPercent: pct.Present,
			AbsentPercent:  pct.Absent,
			LatePercent:    pct.Late,
		},
		Records: records,
		Trend:   trend,
	}, nil
}
