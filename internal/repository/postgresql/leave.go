package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffdesk/attendance-backend-go/internal/domain/leave"
	"github.com/staffdesk/attendance-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepository{db: db}
}

const leaveColumns = `
	id, employee_id, leave_type, start_date, end_date, reason, is_paid_leave,
	status, admin_note, responded_by, responded_at, created_at, updated_at`

func scanLeaveRequest(row pgx.Row) (leave.Request, error) {
	var r leave.Request
	err := row.Scan(
		&r.ID, &r.EmployeeID, &r.LeaveType, &r.StartDate, &r.EndDate, &r.Reason, &r.IsPaidLeave,
		&r.Status, &r.AdminNote, &r.RespondedBy, &r.RespondedAt, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

// Create implements leave.Repository.
func (l *leaveRepository) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_requests (
			employee_id, leave_type, start_date, end_date, reason, is_paid_leave, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID,
		request.LeaveType,
		request.StartDate,
		request.EndDate,
		request.Reason,
		request.IsPaidLeave,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.Repository.
func (l *leaveRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE id = $1`

	request, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return request, nil
}

// ListByEmployee implements leave.Repository.
func (l *leaveRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		r, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave request rows: %w", err)
	}

	return requests, nil
}

// ListByStatus implements leave.Repository.
func (l *leaveRepository) ListByStatus(ctx context.Context, status leave.Status) ([]leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date, lr.reason,
			   lr.is_paid_leave, lr.status, lr.admin_note, lr.responded_by, lr.responded_at,
			   lr.created_at, lr.updated_at,
			   u.name, u.employee_code
		FROM leave_requests lr
		JOIN users u ON u.id = lr.employee_id
		WHERE lr.status = $1
		ORDER BY lr.created_at DESC
	`

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests by status: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var r leave.Request
		err := rows.Scan(
			&r.ID, &r.EmployeeID, &r.LeaveType, &r.StartDate, &r.EndDate, &r.Reason,
			&r.IsPaidLeave, &r.Status, &r.AdminNote, &r.RespondedBy, &r.RespondedAt,
			&r.CreatedAt, &r.UpdatedAt,
			&r.EmployeeName, &r.EmployeeCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave request rows: %w", err)
	}

	return requests, nil
}

// UpdateStatus implements leave.Repository.
func (l *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.Status, respondedBy string, respondedAt time.Time, note *string) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_requests
		SET status = $1,
			responded_by = $2,
			responded_at = $3,
			admin_note = $4,
			updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, status, respondedBy, respondedAt, note, id)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}

	return nil
}

// ListApprovedPaidOverlapping implements leave.Repository.
func (l *leaveRepository) ListApprovedPaidOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		  AND status = 'Approved'
		  AND is_paid_leave = TRUE
		  AND start_date <= $3
		  AND end_date >= $2
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved paid leave: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		r, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave request rows: %w", err)
	}

	return requests, nil
}
