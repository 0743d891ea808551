package attendance

import (
	"context"
	"time"
)

// Repository defines data access for the time ledger. Records are
// unique per (employee, date); writes rely on that constraint.
type Repository interface {
	// Create inserts a new daily record.
	Create(ctx context.Context, record Record) (Record, error)

	// GetByEmployeeAndDate returns the record for one employee on one
	// day, or ErrRecordNotFound.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Record, error)

	// Update persists punch, break and status fields of an existing record.
	Update(ctx context.Context, record Record) error

	// UpsertLeaveDays marks every given day as a leave day for the
	// employee in a single batch, inserting missing rows and flipping
	// existing ones to Leave without touching punch fields. Safe to
	// re-run.
	UpsertLeaveDays(ctx context.Context, employeeID string, days []time.Time, leaveType string) error

	// History returns the employee's records, most recent first,
	// limited to limit rows (0 means no limit).
	History(ctx context.Context, employeeID string, limit int) ([]Record, error)

	// ListByDate returns all records for one calendar day joined with
	// employee name and code.
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)

	// ListByRange returns records between start and end inclusive,
	// newest first, optionally filtered to one employee, capped at
	// limit rows (0 means no limit).
	ListByRange(ctx context.Context, start, end time.Time, employeeID string, limit int) ([]Record, error)

	// ListByEmployeeAndMonth returns one employee's records within
	// [monthStart, monthEnd] ordered by date.
	ListByEmployeeAndMonth(ctx context.Context, employeeID string, monthStart, monthEnd time.Time) ([]Record, error)
}
