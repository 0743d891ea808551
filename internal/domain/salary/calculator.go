package salary

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/staffdesk/attendance-backend-go/internal/domain/attendance"
)

// Pay model constants. The month is normalized to a fixed number of
// working days regardless of the calendar.
const (
	WorkingDaysPerMonth = 22
	WorkingHoursPerDay  = 8
)

// Breakdown is the result of one monthly salary computation.
type Breakdown struct {
	BaseSalary        decimal.Decimal
	CalculatedSalary  decimal.Decimal
	Deductions        decimal.Decimal
	WorkingDays       int
	PresentDays       int
	PaidLeaveDays     int
	UnpaidLeaveDays   int
	HalfDays          int
	TotalWorkHours    float64
	ExpectedWorkHours float64
}

// Compute derives one month's net salary from the employee's base
// salary, the month's attendance records and the set of calendar days
// covered by approved paid leave (keys formatted "2006-01-02").
//
// Deductions, in order: a full daily rate per unpaid leave day, half
// the daily rate per half day, and the hourly rate for every hour the
// worked total falls short of the expectation. Surplus hours are never
// credited. The result is floored at zero before rounding.
func Compute(baseSalary decimal.Decimal, records []attendance.Record, paidLeaveDates map[string]struct{}) Breakdown {
	dailyRate := baseSalary.Div(decimal.NewFromInt(WorkingDaysPerMonth))
	hourlyRate := dailyRate.Div(decimal.NewFromInt(WorkingHoursPerDay))

	b := Breakdown{
		BaseSalary:  baseSalary,
		WorkingDays: WorkingDaysPerMonth,
	}

	var workMinutes int
	for _, r := range records {
		switch r.Status {
		case attendance.StatusPresent:
			b.PresentDays++
		case attendance.StatusHalfDay:
			b.HalfDays++
		case attendance.StatusLeave:
			if _, paid := paidLeaveDates[r.Date.Format("2006-01-02")]; paid {
				b.PaidLeaveDays++
			} else {
				b.UnpaidLeaveDays++
			}
		}
		workMinutes += r.TotalWorkMinutes
	}

	b.TotalWorkHours = float64(workMinutes) / 60
	b.ExpectedWorkHours = float64(b.PresentDays)*WorkingHoursPerDay +
		float64(b.HalfDays)*WorkingHoursPerDay/2

	calculated := baseSalary
	calculated = calculated.Sub(dailyRate.Mul(decimal.NewFromInt(int64(b.UnpaidLeaveDays))))
	calculated = calculated.Sub(dailyRate.Div(decimal.NewFromInt(2)).Mul(decimal.NewFromInt(int64(b.HalfDays))))

	shortfall := b.ExpectedWorkHours - b.TotalWorkHours
	if shortfall > 0 {
		calculated = calculated.Sub(hourlyRate.Mul(decimal.NewFromFloat(shortfall)))
	}

	if calculated.IsNegative() {
		calculated = decimal.Zero
	}

	b.CalculatedSalary = calculated.Round(2)
	b.Deductions = baseSalary.Sub(calculated).Round(2)
	b.TotalWorkHours = roundHours(b.TotalWorkHours)
	b.ExpectedWorkHours = roundHours(b.ExpectedWorkHours)
	return b
}

// roundHours rounds to one decimal place for presentation.
func roundHours(h float64) float64 {
	return math.Round(h*10) / 10
}
