package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.reason, lr.from_date, lr.to_date, lr.status,
	lr.created_at, lr.updated_at
`

func scanLeaveRequest(row pgx.Row, withEmployee bool) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	dest := []any{
		&lr.ID,
		&lr.EmployeeID,
		&lr.Reason,
		&lr.FromDate,
		&lr.ToDate,
		&lr.Status,
		&lr.CreatedAt,
		&lr.UpdatedAt,
	}
	if withEmployee {
		dest = append(dest, &lr.EmployeeName)
	}
	err := row.Scan(dest...)
	return lr, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("generate leave request id: %w", err)
	}

	status := request.Status
	if status == "" {
		status = leave.LeaveRequestStatusPending
	}

	query := `
		INSERT INTO leave_requests AS lr (id, employee_id, reason, from_date, to_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + leaveRequestColumns

	created, err := scanLeaveRequest(q.QueryRow(ctx, query,
		id.String(),
		request.EmployeeID,
		request.Reason,
		request.FromDate,
		request.ToDate,
		string(status),
	), false)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + `, TRIM(e.first_name || ' ' || e.last_name)
		FROM leave_requests lr
		INNER JOIN employees e ON e.id = lr.employee_id
		WHERE lr.id = $1
	`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return lr, nil
}

// GetByIDForUpdate implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.id = $1
		FOR UPDATE
	`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to lock leave request: %w", err)
	}
	return lr, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	query := `SELECT ` + leaveRequestColumns + `, TRIM(e.first_name || ' ' || e.last_name)
		FROM leave_requests lr
		INNER JOIN employees e ON e.id = lr.employee_id
		ORDER BY lr.created_at DESC, lr.id DESC
	`
	return r.list(ctx, query)
}

// ListByEmployeeID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	query := `SELECT ` + leaveRequestColumns + `, TRIM(e.first_name || ' ' || e.last_name)
		FROM leave_requests lr
		INNER JOIN employees e ON e.id = lr.employee_id
		WHERE lr.employee_id = $1
		ORDER BY lr.created_at DESC, lr.id DESC
	`
	return r.list(ctx, query, employeeID)
}

func (r *leaveRequestRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	requests := []leave.LeaveRequest{}
	for rows.Next() {
		lr, err := scanLeaveRequest(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.LeaveRequestStatus) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests AS lr
		SET status = $1, updated_at = NOW()
		WHERE lr.id = $2
		RETURNING ` + leaveRequestColumns

	updated, err := scanLeaveRequest(q.QueryRow(ctx, query, string(status), id), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request status: %w", err)
	}
	return updated, nil
}
