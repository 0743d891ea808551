package report

import (
	"context"
	"time"
)

// Repository defines the aggregation queries behind reporting. All
// queries join the employee table so rows only ever describe accounts
// that still exist.
type Repository interface {
	// CountByStatusOnDate groups one day's records by status.
	CountByStatusOnDate(ctx context.Context, date time.Time) (map[string]int, error)

	// DailyStatusCounts returns per-day per-status counts over
	// [start, end], ordered by date.
	DailyStatusCounts(ctx context.Context, start, end time.Time) ([]DailyTrendRow, error)

	// WeeklyStatusCounts groups the same span by ISO week and year.
	WeeklyStatusCounts(ctx context.Context, start, end time.Time) ([]WeeklyTrendRow, error)

	// CountPresentInRange counts Present records over [start, end].
	CountPresentInRange(ctx context.Context, start, end time.Time) (int, error)

	// RangeSummary groups records in [start, end] by status with work
	// minute totals, optionally for one employee.
	RangeSummary(ctx context.Context, start, end time.Time, employeeID string) ([]RangeSummaryRow, error)

	// ListByStatusOnDate returns employees holding the given status on
	// one day, with their record fields.
	ListByStatusOnDate(ctx context.Context, date time.Time, status string) ([]PresentEmployeeRow, error)
}
