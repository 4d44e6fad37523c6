package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return department.Department{}, fmt.Errorf("generate department id: %w", err)
	}

	query := `
		INSERT INTO departments (id, name)
		VALUES ($1, $2)
		RETURNING id, name, created_at
	`

	var created department.Department
	err = q.QueryRow(ctx, query, id.String(), d.Name).Scan(&created.ID, &created.Name, &created.CreatedAt)
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}
	return created, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at FROM departments WHERE id = $1`

	var d department.Department
	err := q.QueryRow(ctx, query, id).Scan(&d.ID, &d.Name, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}
	return d, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at FROM departments ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	departments := []department.Department{}
	for rows.Next() {
		var d department.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// Rename implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Rename(ctx context.Context, id, name string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET name = $1
		WHERE id = $2
		RETURNING id, name, created_at
	`

	var d department.Department
	err := q.QueryRow(ctx, query, name, id).Scan(&d.ID, &d.Name, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to rename department: %w", err)
	}
	return d, nil
}

// Count implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count departments: %w", err)
	}
	return total, nil
}
