package employee

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	deptID     = "0190d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b"
	employeeID = "0190d0f2-7b8c-7b4a-8a2b-aaaaaaaaaaaa"
)

type fakeEmployeeRepo struct {
	items map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	e.ID = employeeID
	name := "Engineering"
	e.DepartmentName = &name
	f.items[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.items[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByUserID(context.Context, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	out := []employee.Employee{}
	for _, e := range f.items {
		if filter.ActiveOnly && !e.IsActive {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, e := range f.items {
		if strings.EqualFold(e.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEmployeeRepo) Count(context.Context) (int64, error) {
	return int64(len(f.items)), nil
}

type fakeDepartmentRepo struct {
	department.DepartmentRepository
	known map[string]bool
}

func (f *fakeDepartmentRepo) GetByID(_ context.Context, id string) (department.Department, error) {
	if !f.known[id] {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return department.Department{ID: id, Name: "Engineering"}, nil
}

func newTestService() (employee.EmployeeService, *fakeEmployeeRepo) {
	repo := &fakeEmployeeRepo{items: map[string]employee.Employee{}}
	return NewEmployeeService(repo, &fakeDepartmentRepo{known: map[string]bool{deptID: true}}), repo
}

func validRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FirstName:    "Dana",
		LastName:     "Scully",
		Email:        "dana@example.com",
		Phone:        "+1 202-555-0143",
		DepartmentID: deptID,
		Position:     "Analyst",
		JoinedDate:   "2023-06-01",
	}
}

func TestEmployeeService_Create_Success(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Create(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, employeeID, resp.ID)
	assert.Equal(t, "Dana Scully", resp.FullName)
	assert.Equal(t, "2023-06-01", resp.JoinedDate)
	assert.True(t, resp.IsActive)
}

func TestEmployeeService_Create_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Email = "DANA@example.com"
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestEmployeeService_Create_UnknownDepartment(t *testing.T) {
	svc, repo := newTestService()
	req := validRequest()
	req.DepartmentID = "0190d0f2-7b8c-7b4a-8a2b-000000000000"

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
	assert.Empty(t, repo.items)
}

func TestEmployeeService_Create_Validation(t *testing.T) {
	svc, _ := newTestService()
	req := validRequest()
	req.Email = "not-an-email"
	req.Phone = "12"
	req.JoinedDate = "June 1st"

	_, err := svc.Create(context.Background(), req)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	fields := verrs.ToMap()
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "phone")
	assert.Contains(t, fields, "joined_date")
}

func TestEmployeeService_Get(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), employeeID)
	require.NoError(t, err)
	assert.Equal(t, "dana@example.com", got.Email)

	_, err = svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
