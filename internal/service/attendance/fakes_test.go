package attendance

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/employee"
)

type fakeAttendanceRepo struct {
	counts     attendance.DailyCounts
	top        *attendance.DepartmentAbsence
	rangeRows  []attendance.DailyStatusCount
	records    []attendance.Attendance
	upserted   []attendance.Attendance
	rangeCalls int
	lastFrom   time.Time
	lastTo     time.Time
	err        error
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	if f.err != nil {
		return attendance.Attendance{}, f.err
	}
	a.ID = "0190d0f2-7b8c-7b4a-8a2b-000000000001"
	f.upserted = append(f.upserted, a)
	return a, nil
}

func (f *fakeAttendanceRepo) ListByDate(context.Context, time.Time) ([]attendance.Attendance, error) {
	return f.records, f.err
}

func (f *fakeAttendanceRepo) CountByStatusOnDate(context.Context, time.Time) (attendance.DailyCounts, error) {
	return f.counts, f.err
}

func (f *fakeAttendanceRepo) CountByStatusBetween(_ context.Context, from, to time.Time) ([]attendance.DailyStatusCount, error) {
	f.rangeCalls++
	f.lastFrom, f.lastTo = from, to
	return f.rangeRows, f.err
}

func (f *fakeAttendanceRepo) TopAbsentDepartment(context.Context, time.Time) (*attendance.DepartmentAbsence, error) {
	return f.top, f.err
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByUserID(context.Context, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(context.Context, employee.EmployeeFilter) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ExistsByEmail(context.Context, string) (bool, error) {
	return false, nil
}

func (f *fakeEmployeeRepo) Count(context.Context) (int64, error) {
	return int64(len(f.employees)), nil
}

type memoryCache struct {
	items   map[string][]byte
	deleted []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := c.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.items[key] = raw
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.items, k)
	}
	c.deleted = append(c.deleted, keys...)
	return nil
}
