package attendance

import (
	"context"
	"time"
)

// Service defines the punch lifecycle and ledger reads. All punch
// operations act on "today" in server-local time.
type Service interface {
	// PunchIn opens today's record for the employee.
	PunchIn(ctx context.Context, employeeID string) (RecordResponse, error)

	// LunchStart begins the lunch break on today's open record.
	LunchStart(ctx context.Context, employeeID string) (RecordResponse, error)

	// LunchEnd closes the lunch break and accrues its minutes.
	LunchEnd(ctx context.Context, employeeID string) (RecordResponse, error)

	// PunchOut closes today's record, auto-closing an open lunch, and
	// derives the final work minutes and status.
	PunchOut(ctx context.Context, employeeID string) (RecordResponse, error)

	// Today returns today's record, or ErrRecordNotFound.
	Today(ctx context.Context, employeeID string) (RecordResponse, error)

	// History lists the employee's records, most recent first.
	History(ctx context.Context, employeeID string, limit int) ([]RecordResponse, error)

	// MarkLeaveDays records an approved leave span in the ledger, one
	// row per day. Idempotent.
	MarkLeaveDays(ctx context.Context, employeeID string, start, end time.Time, leaveType string) error
}
