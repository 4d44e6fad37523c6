package postgresql_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-attendance-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *TestDatabaseSetup {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	setup, err := NewTestDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, setup.TruncateAllTables(ctx))

	t.Cleanup(func() {
		_ = setup.TruncateAllTables(context.Background())
		setup.Close()
	})
	return setup
}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

type fixture struct {
	engineering department.Department
	sales       department.Department
	alice       employee.Employee
	bob         employee.Employee
	carol       employee.Employee
}

func seed(t *testing.T, setup *TestDatabaseSetup) fixture {
	t.Helper()
	ctx := context.Background()
	deptRepo := postgresql.NewDepartmentRepository(setup.DB)
	empRepo := postgresql.NewEmployeeRepository(setup.DB)

	var f fixture
	var err error
	f.engineering, err = deptRepo.Create(ctx, department.Department{Name: "Engineering"})
	require.NoError(t, err)
	f.sales, err = deptRepo.Create(ctx, department.Department{Name: "Sales"})
	require.NoError(t, err)

	newEmployee := func(first, email, deptID string) employee.Employee {
		e, err := empRepo.Create(ctx, employee.Employee{
			FirstName:    first,
			LastName:     "Test",
			Email:        email,
			Phone:        "081234567890",
			DepartmentID: deptID,
			Position:     "Staff",
			JoinedDate:   day("2024-01-01"),
			IsActive:     true,
		})
		require.NoError(t, err)
		return e
	}
	f.alice = newEmployee("Alice", "alice@example.com", f.engineering.ID)
	f.bob = newEmployee("Bob", "bob@example.com", f.sales.ID)
	f.carol = newEmployee("Carol", "carol@example.com", f.sales.ID)
	return f
}

func TestEmployeeRepository_DuplicateEmail(t *testing.T) {
	setup := setupTestDB(t)
	f := seed(t, setup)
	repo := postgresql.NewEmployeeRepository(setup.DB)

	_, err := repo.Create(context.Background(), employee.Employee{
		FirstName:    "Alice",
		Email:        "alice@example.com",
		Phone:        "081234567890",
		DepartmentID: f.engineering.ID,
		Position:     "Staff",
		JoinedDate:   day("2024-01-01"),
		IsActive:     true,
	})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	got, err := repo.GetByID(context.Background(), f.alice.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DepartmentName)
	assert.Equal(t, "Engineering", *got.DepartmentName)

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestAttendanceRepository_CountsAndTopAbsentDepartment(t *testing.T) {
	setup := setupTestDB(t)
	f := seed(t, setup)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(setup.DB)

	checkIn := "08:30"
	_, err := repo.Upsert(ctx, attendance.Attendance{EmployeeID: f.alice.ID, Date: day("2025-03-10"), CheckIn: &checkIn, Status: attendance.StatusPresent})
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, attendance.Attendance{EmployeeID: f.bob.ID, Date: day("2025-03-10"), Status: attendance.StatusAbsent})
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, attendance.Attendance{EmployeeID: f.carol.ID, Date: day("2025-03-10"), Status: attendance.StatusAbsent})
	require.NoError(t, err)

	// Re-recording the same employee/day replaces the row
	saved, err := repo.Upsert(ctx, attendance.Attendance{EmployeeID: f.alice.ID, Date: day("2025-03-10"), CheckIn: &checkIn, Status: attendance.StatusLate})
	require.NoError(t, err)
	require.NotNil(t, saved.CheckIn)
	assert.Equal(t, "08:30:00", *saved.CheckIn)

	counts, err := repo.CountByStatusOnDate(ctx, day("2025-03-10"))
	require.NoError(t, err)
	assert.Equal(t, attendance.DailyCounts{Present: 0, Absent: 2, Late: 1}, counts)

	top, err := repo.TopAbsentDepartment(ctx, day("2025-03-10"))
	require.NoError(t, err)
	require.NotNil(t, top)
	assert.Equal(t, "Sales", top.DepartmentName)
	assert.Equal(t, int64(2), top.Total)

	none, err := repo.TopAbsentDepartment(ctx, day("2025-03-11"))
	require.NoError(t, err)
	assert.Nil(t, none)

	records, err := repo.ListByDate(ctx, day("2025-03-10"))
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.NotNil(t, records[0].EmployeeName)
	assert.Equal(t, "Alice Test", *records[0].EmployeeName)

	series, err := repo.CountByStatusBetween(ctx, day("2025-03-01"), day("2025-03-10"))
	require.NoError(t, err)
	assert.Len(t, series, 2)
}

func TestLeaveRequestRepository_Lifecycle(t *testing.T) {
	setup := setupTestDB(t)
	f := seed(t, setup)
	ctx := context.Background()
	repo := postgresql.NewLeaveRequestRepository(setup.DB)

	first, err := repo.Create(ctx, leave.LeaveRequest{EmployeeID: f.alice.ID, Reason: "Family", FromDate: day("2025-04-01"), ToDate: day("2025-04-02")})
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusPending, first.Status)

	second, err := repo.Create(ctx, leave.LeaveRequest{EmployeeID: f.bob.ID, Reason: "Medical", FromDate: day("2025-04-05"), ToDate: day("2025-04-05")})
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)

	mine, err := repo.ListByEmployeeID(ctx, f.alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	updated, err := repo.UpdateStatus(ctx, first.ID, leave.LeaveRequestStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusApproved, updated.Status)
	assert.False(t, updated.UpdatedAt.Before(first.UpdatedAt))

	_, err = repo.GetByID(ctx, "0190d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestLeaveRequestRepository_ForUpdateSerializesTransactions(t *testing.T) {
	setup := setupTestDB(t)
	f := seed(t, setup)
	ctx := context.Background()
	repo := postgresql.NewLeaveRequestRepository(setup.DB)
	tx := postgresql.NewTransactor(setup.DB)

	lr, err := repo.Create(ctx, leave.LeaveRequest{EmployeeID: f.alice.ID, Reason: "Trip", FromDate: day("2025-05-01"), ToDate: day("2025-05-03")})
	require.NoError(t, err)

	errAlreadyDone := errors.New("already processed")
	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, status := range []leave.LeaveRequestStatus{leave.LeaveRequestStatusApproved, leave.LeaveRequestStatusRejected} {
		wg.Add(1)
		go func(i int, status leave.LeaveRequestStatus) {
			defer wg.Done()
			results[i] = tx.WithinTransaction(ctx, func(txCtx context.Context) error {
				current, err := repo.GetByIDForUpdate(txCtx, lr.ID)
				if err != nil {
					return err
				}
				if current.Status.IsTerminal() {
					return errAlreadyDone
				}
				_, err = repo.UpdateStatus(txCtx, lr.ID, status)
				return err
			})
		}(i, status)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, errAlreadyDone)
		}
	}
	assert.Equal(t, 1, succeeded)
}

func TestUserRepository_Groups(t *testing.T) {
	setup := setupTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewUserRepository(setup.DB)

	created, err := repo.Create(ctx, user.User{Username: "hr.lead", Email: "hr@example.com", PasswordHash: "hash", Groups: []string{"HR", "Viewer"}})
	require.NoError(t, err)

	_, err = repo.Create(ctx, user.User{Username: "hr.lead", PasswordHash: "hash"})
	assert.ErrorIs(t, err, user.ErrUsernameExists)

	got, err := repo.GetByUsername(ctx, "hr.lead")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, []string{"HR", "Viewer"}, got.Groups)

	require.NoError(t, repo.SetGroups(ctx, created.ID, nil))
	got, err = repo.GetByUsername(ctx, "hr.lead")
	require.NoError(t, err)
	assert.Empty(t, got.Groups)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestDepartmentRepository_Rename(t *testing.T) {
	setup := setupTestDB(t)
	f := seed(t, setup)
	ctx := context.Background()
	repo := postgresql.NewDepartmentRepository(setup.DB)

	renamed, err := repo.Rename(ctx, f.sales.ID, "Sales & Marketing")
	require.NoError(t, err)
	assert.Equal(t, "Sales & Marketing", renamed.Name)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Engineering", list[0].Name)

	_, err = repo.Rename(ctx, "0190d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", "Ghost")
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}
