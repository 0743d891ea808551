package salary

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffdesk/attendance-backend-go/internal/pkg/validator"
)

type MonthRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Normalize fills zero month/year with the current date.
func (r *MonthRequest) Normalize(now time.Time) {
	if r.Month == 0 {
		r.Month = int(now.Month())
	}
	if r.Year == 0 {
		r.Year = now.Year()
	}
}

func (r *MonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 0 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BreakdownDetail struct {
	WorkingDays       int     `json:"working_days"`
	PresentDays       int     `json:"present_days"`
	PaidLeaves        int     `json:"paid_leaves"`
	UnpaidLeaves      int     `json:"unpaid_leaves"`
	HalfDays          int     `json:"half_days"`
	TotalWorkHours    float64 `json:"total_work_hours"`
	ExpectedWorkHours float64 `json:"expected_work_hours"`
}

type SalaryResponse struct {
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     string          `json:"employee_name,omitempty"`
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	BaseSalary       decimal.Decimal `json:"base_salary"`
	CalculatedSalary decimal.Decimal `json:"calculated_salary"`
	Deductions       decimal.Decimal `json:"deductions"`
	Breakdown        BreakdownDetail `json:"breakdown"`
}

func ToResponse(employeeID, employeeName string, month, year int, b Breakdown) SalaryResponse {
	return SalaryResponse{
		EmployeeID:       employeeID,
		EmployeeName:     employeeName,
		Month:            month,
		Year:             year,
		BaseSalary:       b.BaseSalary,
		CalculatedSalary: b.CalculatedSalary,
		Deductions:       b.Deductions,
		Breakdown: BreakdownDetail{
			WorkingDays:       b.WorkingDays,
			PresentDays:       b.PresentDays,
			PaidLeaves:        b.PaidLeaveDays,
			UnpaidLeaves:      b.UnpaidLeaveDays,
			HalfDays:          b.HalfDays,
			TotalWorkHours:    b.TotalWorkHours,
			ExpectedWorkHours: b.ExpectedWorkHours,
		},
	}
}
