package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.user_id, e.first_name, e.last_name, e.email, e.phone,
	e.department_id, e.position, e.joined_date, e.is_active, d.name
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.FirstName,
		&e.LastName,
		&e.Email,
		&e.Phone,
		&e.DepartmentID,
		&e.Position,
		&e.JoinedDate,
		&e.IsActive,
		&e.DepartmentName,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("generate employee id: %w", err)
	}

	query := `
		INSERT INTO employees (
			id, user_id, first_name, last_name, email, phone,
			department_id, position, joined_date, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	var createdID string
	err = q.QueryRow(ctx, query,
		id.String(),
		newEmployee.UserID,
		newEmployee.FirstName,
		newEmployee.LastName,
		newEmployee.Email,
		newEmployee.Phone,
		newEmployee.DepartmentID,
		newEmployee.Position,
		newEmployee.JoinedDate,
		newEmployee.IsActive,
	).Scan(&createdID)
	if err != nil {
		switch {
		case isUniqueViolation(err, "employees_email_key"):
			return employee.Employee{}, employee.ErrEmailExists
		case isUniqueViolation(err, "employees_user_id_key"):
			return employee.Employee{}, employee.ErrUserAlreadyLinked
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return r.GetByID(ctx, createdID)
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + `
		FROM employees e
		INNER JOIN departments d ON d.id = e.department_id
		WHERE e.id = $1
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + `
		FROM employees e
		INNER JOIN departments d ON d.id = e.department_id
		WHERE e.user_id = $1
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by user: %w", err)
	}
	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	if filter.DepartmentID != nil {
		args = append(args, *filter.DepartmentID)
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", len(args)))
	}
	if filter.ActiveOnly {
		conditions = append(conditions, "e.is_active = TRUE")
	}

	query := `SELECT ` + employeeColumns + `
		FROM employees e
		INNER JOIN departments d ON d.id = e.department_id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY e.first_name ASC, e.last_name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// ExistsByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE LOWER(email) = LOWER($1))`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee email: %w", err)
	}
	return exists, nil
}

// Count implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return total, nil
}
