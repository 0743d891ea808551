package report

import "context"

// Service produces the read-side attendance rollups.
type Service interface {
	// DailySummary counts today's statuses; employees without a record
	// fold into the absent count.
	DailySummary(ctx context.Context) (DailySummaryResponse, error)

	// Trends reports the last 30 days of per-day and per-week status
	// counts plus an overall attendance rate.
	Trends(ctx context.Context) (TrendsResponse, error)

	// RangeReport summarizes a date span, optionally for one employee,
	// with a detail list capped at the 100 most recent records.
	RangeReport(ctx context.Context, req RangeReportRequest) (RangeReportResponse, error)

	// ExportRangeCSV renders the range report detail rows as CSV.
	ExportRangeCSV(ctx context.Context, req RangeReportRequest) ([]byte, error)

	// PresentToday lists employees with a Present record today.
	PresentToday(ctx context.Context) ([]PresentEmployeeRow, error)

	// OnLeaveToday lists employees marked on leave today.
	OnLeaveToday(ctx context.Context) ([]OnLeaveEmployeeRow, error)
}
