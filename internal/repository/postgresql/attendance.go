package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Upsert implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("generate attendance id: %w", err)
	}

	query := `
		INSERT INTO attendances (id, employee_id, date, check_in, check_out, status)
		VALUES ($1, $2, $3, $4::time, $5::time, $6)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id, employee_id, date,
				  to_char(check_in, 'HH24:MI:SS'), to_char(check_out, 'HH24:MI:SS'),
				  status, created_at, updated_at
	`

	var saved attendance.Attendance
	err = q.QueryRow(ctx, query, id.String(), a.EmployeeID, a.Date, a.CheckIn, a.CheckOut, string(a.Status)).Scan(
		&saved.ID,
		&saved.EmployeeID,
		&saved.Date,
		&saved.CheckIn,
		&saved.CheckOut,
		&saved.Status,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return saved, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date,
			   to_char(a.check_in, 'HH24:MI:SS'), to_char(a.check_out, 'HH24:MI:SS'),
			   a.status, a.created_at, a.updated_at,
			   TRIM(e.first_name || ' ' || e.last_name), d.name
		FROM attendances a
		INNER JOIN employees e ON e.id = a.employee_id
		INNER JOIN departments d ON d.id = e.department_id
		WHERE a.date = $1
		ORDER BY e.first_name ASC, e.last_name ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		var a attendance.Attendance
		err := rows.Scan(
			&a.ID,
			&a.EmployeeID,
			&a.Date,
			&a.CheckIn,
			&a.CheckOut,
			&a.Status,
			&a.CreatedAt,
			&a.UpdatedAt,
			&a.EmployeeName,
			&a.DepartmentName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// CountByStatusOnDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountByStatusOnDate(ctx context.Context, date time.Time) (attendance.DailyCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'Present' THEN 1 ELSE 0 END), 0) as present_count,
			COALESCE(SUM(CASE WHEN status = 'Absent' THEN 1 ELSE 0 END), 0) as absent_count,
			COALESCE(SUM(CASE WHEN status = 'Late' THEN 1 ELSE 0 END), 0) as late_count
		FROM attendances
		WHERE date = $1
	`

	var counts attendance.DailyCounts
	err := q.QueryRow(ctx, query, date).Scan(&counts.Present, &counts.Absent, &counts.Late)
	if err != nil {
		return attendance.DailyCounts{}, fmt.Errorf("failed to count attendance: %w", err)
	}
	return counts, nil
}

// CountByStatusBetween implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountByStatusBetween(ctx context.Context, from, to time.Time) ([]attendance.DailyStatusCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, status, COUNT(*)
		FROM attendances
		WHERE date BETWEEN $1 AND $2
		GROUP BY date, status
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance trend: %w", err)
	}
	defer rows.Close()

	var result []attendance.DailyStatusCount
	for rows.Next() {
		var c attendance.DailyStatusCount
		if err := rows.Scan(&c.Date, &c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan attendance trend: %w", err)
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// TopAbsentDepartment implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) TopAbsentDepartment(ctx context.Context, date time.Time) (*attendance.DepartmentAbsence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.name, COUNT(*) as total
		FROM attendances a
		INNER JOIN employees e ON e.id = a.employee_id
		INNER JOIN departments d ON d.id = e.department_id
		WHERE a.date = $1 AND a.status = 'Absent'
		GROUP BY d.name
		ORDER BY total DESC, d.name ASC
		LIMIT 1
	`

	var top attendance.DepartmentAbsence
	err := q.QueryRow(ctx, query, date).Scan(&top.DepartmentName, &top.Total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get top absent department: %w", err)
	}
	return &top, nil
}
