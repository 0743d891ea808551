package report

import (
	"github.com/staffdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/staffdesk/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// DAILY SUMMARY
// ========================================

type DailySummaryResponse struct {
	Date           string       `json:"date"`
	TotalEmployees int          `json:"total_employees"`
	Summary        StatusCounts `json:"summary"`
}

type StatusCounts struct {
	Present int `json:"present"`
	OnLeave int `json:"on_leave"`
	HalfDay int `json:"half_day"`
	Absent  int `json:"absent"`
}

// ========================================
// TRENDS (30 days)
// ========================================

type TrendsResponse struct {
	DailyTrends    []DailyTrendRow  `json:"daily_trends"`
	WeeklySummary  []WeeklyTrendRow `json:"weekly_summary"`
	AttendanceRate float64          `json:"attendance_rate"`
	TotalEmployees int              `json:"total_employees"`
}

type DailyTrendRow struct {
	Date   string `json:"date"`
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type WeeklyTrendRow struct {
	Week   int    `json:"week"`
	Year   int    `json:"year"`
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// ========================================
// RANGE REPORT
// ========================================

type RangeReportRequest struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	EmployeeID string `json:"employee_id"`
}

func (r *RangeReportRequest) Validate() error {
	var errs validator.ValidationErrors

	start, ok := validator.IsValidDate(r.StartDate)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, ok := validator.IsValidDate(r.EndDate)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) == 0 && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if r.EmployeeID != "" && !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RangeReportResponse struct {
	Summary []RangeSummaryRow           `json:"summary"`
	Details []attendance.RecordResponse `json:"details"`
}

type RangeSummaryRow struct {
	Status           string `json:"status"`
	Count            int    `json:"count"`
	TotalWorkMinutes int    `json:"total_work_minutes"`
}

// ========================================
// TODAY'S LISTINGS
// ========================================

type PresentEmployeeRow struct {
	EmployeeID   string                    `json:"employee_id"`
	Name         string                    `json:"name"`
	EmployeeCode string                    `json:"employee_code"`
	Designation  string                    `json:"designation"`
	Record       attendance.RecordResponse `json:"record"`
}

type OnLeaveEmployeeRow struct {
	EmployeeID   string  `json:"employee_id"`
	Name         string  `json:"name"`
	EmployeeCode string  `json:"employee_code"`
	Designation  string  `json:"designation"`
	LeaveType    *string `json:"leave_type,omitempty"`
}
