package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/staffdesk/attendance-backend-go/internal/domain/report"
	"github.com/staffdesk/attendance-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.Repository {
	return &reportRepository{db: db}
}

// CountByStatusOnDate implements report.Repository.
func (r *reportRepository) CountByStatusOnDate(ctx context.Context, date time.Time) (map[string]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.status, COUNT(*)
		FROM attendance_records a
		JOIN users u ON u.id = a.employee_id AND u.role = 'Employee'
		WHERE a.date = $1
		GROUP BY a.status
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to count statuses for date: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read status count rows: %w", err)
	}

	return counts, nil
}

// DailyStatusCounts implements report.Repository.
func (r *reportRepository) DailyStatusCounts(ctx context.Context, start, end time.Time) ([]report.DailyTrendRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.date, a.status, COUNT(*)
		FROM attendance_records a
		JOIN users u ON u.id = a.employee_id AND u.role = 'Employee'
		WHERE a.date BETWEEN $1 AND $2
		GROUP BY a.date, a.status
		ORDER BY a.date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily trends: %w", err)
	}
	defer rows.Close()

	var trends []report.DailyTrendRow
	for rows.Next() {
		var date time.Time
		var row report.DailyTrendRow
		if err := rows.Scan(&date, &row.Status, &row.Count); err != nil {
			return nil, fmt.Errorf("failed to scan daily trend: %w", err)
		}
		row.Date = date.Format("2006-01-02")
		trends = append(trends, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read daily trend rows: %w", err)
	}

	return trends, nil
}

// WeeklyStatusCounts implements report.Repository.
func (r *reportRepository) WeeklyStatusCounts(ctx context.Context, start, end time.Time) ([]report.WeeklyTrendRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXTRACT(WEEK FROM a.date)::int, EXTRACT(ISOYEAR FROM a.date)::int, a.status, COUNT(*)
		FROM attendance_records a
		JOIN users u ON u.id = a.employee_id AND u.role = 'Employee'
		WHERE a.date BETWEEN $1 AND $2
		GROUP BY 1, 2, a.status
		ORDER BY 2, 1
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query weekly trends: %w", err)
	}
	defer rows.Close()

	var trends []report.WeeklyTrendRow
	for rows.Next() {
		var row report.WeeklyTrendRow
		if err := rows.Scan(&row.Week, &row.Year, &row.Status, &row.Count); err != nil {
			return nil, fmt.Errorf("failed to scan weekly trend: %w", err)
		}
		trends = append(trends, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read weekly trend rows: %w", err)
	}

	return trends, nil
}

// CountPresentInRange implements report.Repository.
func (r *reportRepository) CountPresentInRange(ctx context.Context, start, end time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM attendance_records a
		JOIN users u ON u.id = a.employee_id AND u.role = 'Employee'
		WHERE a.date BETWEEN $1 AND $2
		  AND a.status = 'Present'
	`

	var count int
	if err := q.QueryRow(ctx, query, start, end).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count present records: %w", err)
	}

	return count, nil
}

// RangeSummary implements report.Repository.
func (r *reportRepository) RangeSummary(ctx context.Context, start, end time.Time, employeeID string) ([]report.RangeSummaryRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.status, COUNT(*), COALESCE(SUM(a.total_work_minutes), 0)
		FROM attendance_records a
		JOIN users u ON u.id = a.employee_id
		WHERE a.date BETWEEN $1 AND $2
	`
	args := []interface{}{start, end}

	if employeeID != "" {
		query += " AND a.employee_id = $3"
		args = append(args, employeeID)
	}

	query += " GROUP BY a.status"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query range summary: %w", err)
	}
	defer rows.Close()

	var summary []report.RangeSummaryRow
	for rows.Next() {
		var row report.RangeSummaryRow
		if err := rows.Scan(&row.Status, &row.Count, &row.TotalWorkMinutes); err != nil {
			return nil, fmt.Errorf("failed to scan range summary: %w", err)
		}
		summary = append(summary, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read range summary rows: %w", err)
	}

	return summary, nil
}

// ListByStatusOnDate implements report.Repository.
func (r *reportRepository) ListByStatusOnDate(ctx context.Context, date time.Time, status string) ([]report.PresentEmployeeRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.name, u.employee_code, u.designation,
			   a.id, a.employee_id, a.date, a.punch_in, a.punch_out, a.lunch_start, a.lunch_end,
			   a.total_break_minutes, a.total_work_minutes, a.status, a.leave_type
		FROM attendance_records a
		JOIN users u ON u.id = a.employee_id AND u.role = 'Employee'
		WHERE a.date = $1
		  AND a.status = $2
		ORDER BY u.name
	`

	rows, err := q.Query(ctx, query, date, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by status: %w", err)
	}
	defer rows.Close()

	var result []report.PresentEmployeeRow
	for rows.Next() {
		var row report.PresentEmployeeRow
		var date time.Time
		err := rows.Scan(
			&row.EmployeeID, &row.Name, &row.EmployeeCode, &row.Designation,
			&row.Record.ID, &row.Record.EmployeeID, &date,
			&row.Record.PunchIn, &row.Record.PunchOut, &row.Record.LunchStart, &row.Record.LunchEnd,
			&row.Record.TotalBreakMinutes, &row.Record.TotalWorkMinutes,
			&row.Record.Status, &row.Record.LeaveType,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee status row: %w", err)
		}
		row.Record.Date = date.Format("2006-01-02")
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee status rows: %w", err)
	}

	return result, nil
}
