package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/staffdesk/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, date, punch_in, punch_out, lunch_start, lunch_end,
	total_break_minutes, total_work_minutes, status, leave_type,
	created_at, updated_at`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var r attendance.Record
	err := row.Scan(
		&r.ID, &r.EmployeeID, &r.Date, &r.PunchIn, &r.PunchOut, &r.LunchStart, &r.LunchEnd,
		&r.TotalBreakMinutes, &r.TotalWorkMinutes, &r.Status, &r.LeaveType,
		&r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

// Create implements attendance.Repository.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			employee_id, date, punch_in, punch_out, lunch_start, lunch_end,
			total_break_minutes, total_work_minutes, status, leave_type
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.Date,
		record.PunchIn,
		record.PunchOut,
		record.LunchStart,
		record.LunchEnd,
		record.TotalBreakMinutes,
		record.TotalWorkMinutes,
		record.Status,
		record.LeaveType,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// GetByEmployeeAndDate implements attendance.Repository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	record, err := scanRecord(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return record, nil
}

// Update implements attendance.Repository.
func (a *attendanceRepository) Update(ctx context.Context, record attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET punch_in = $1,
			punch_out = $2,
			lunch_start = $3,
			lunch_end = $4,
			total_break_minutes = $5,
			total_work_minutes = $6,
			status = $7,
			leave_type = $8,
			updated_at = NOW()
		WHERE id = $9
	`

	tag, err := q.Exec(ctx, query,
		record.PunchIn,
		record.PunchOut,
		record.LunchStart,
		record.LunchEnd,
		record.TotalBreakMinutes,
		record.TotalWorkMinutes,
		record.Status,
		record.LeaveType,
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// UpsertLeaveDays implements attendance.Repository. The whole span is
// written in one statement keyed on (employee_id, date), so re-running
// an approval cannot duplicate rows or clobber punch fields.
func (a *attendanceRepository) UpsertLeaveDays(ctx context.Context, employeeID string, days []time.Time, leaveType string) error {
	if len(days) == 0 {
		return nil
	}

	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (employee_id, date, status, leave_type)
		SELECT $1, d::date, 'Leave', $2
		FROM unnest($3::date[]) AS d
		ON CONFLICT (employee_id, date)
		DO UPDATE SET status = 'Leave', leave_type = EXCLUDED.leave_type, updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, employeeID, leaveType, days); err != nil {
		return fmt.Errorf("failed to upsert leave days: %w", err)
	}

	return nil
}

// History implements attendance.Repository.
func (a *attendanceRepository) History(ctx context.Context, employeeID string, limit int) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1
		ORDER BY date DESC
	`
	args := []interface{}{employeeID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance history: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// ListByDate implements attendance.Repository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.punch_in, a.punch_out, a.lunch_start, a.lunch_end,
			   a.total_break_minutes, a.total_work_minutes, a.status, a.leave_type,
			   a.created_at, a.updated_at,
			   u.name, u.employee_code
		FROM attendance_records a
		JOIN users u ON u.id = a.employee_id
		WHERE a.date = $1
		ORDER BY u.name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	defer rows.Close()

	return collectJoinedRecords(rows)
}

// ListByRange implements attendance.Repository.
func (a *attendanceRepository) ListByRange(ctx context.Context, start, end time.Time, employeeID string, limit int) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.punch_in, a.punch_out, a.lunch_start, a.lunch_end,
			   a.total_break_minutes, a.total_work_minutes, a.status, a.leave_type,
			   a.created_at, a.updated_at,
			   u.name, u.employee_code
		FROM attendance_records a
		JOIN users u ON u.id = a.employee_id
		WHERE a.date BETWEEN $1 AND $2
	`
	args := []interface{}{start, end}
	argIdx := 3

	if employeeID != "" {
		query += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, employeeID)
		argIdx++
	}

	query += " ORDER BY a.date DESC"

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by range: %w", err)
	}
	defer rows.Close()

	return collectJoinedRecords(rows)
}

// ListByEmployeeAndMonth implements attendance.Repository.
func (a *attendanceRepository) ListByEmployeeAndMonth(ctx context.Context, employeeID string, monthStart, monthEnd time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for month: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

func collectRecords(rows pgx.Rows) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance rows: %w", err)
	}
	return records, nil
}

func collectJoinedRecords(rows pgx.Rows) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		var r attendance.Record
		err := rows.Scan(
			&r.ID, &r.EmployeeID, &r.Date, &r.PunchIn, &r.PunchOut, &r.LunchStart, &r.LunchEnd,
			&r.TotalBreakMinutes, &r.TotalWorkMinutes, &r.Status, &r.LeaveType,
			&r.CreatedAt, &r.UpdatedAt,
			&r.EmployeeName, &r.EmployeeCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance rows: %w", err)
	}
	return records, nil
}
