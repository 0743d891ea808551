package salary_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/staffdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/staffdesk/attendance-backend-go/internal/domain/salary"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func presentDays(count, minutesEach int) []attendance.Record {
	records := make([]attendance.Record, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, attendance.Record{
			Date:             day(i + 1),
			Status:           attendance.StatusPresent,
			TotalWorkMinutes: minutesEach,
		})
	}
	return records
}

func TestCompute_FullMonthNoDeductions(t *testing.T) {
	base := decimal.NewFromInt(22000)

	b := salary.Compute(base, presentDays(22, 480), nil)

	assert.True(t, b.CalculatedSalary.Equal(base), "got %s", b.CalculatedSalary)
	assert.True(t, b.Deductions.IsZero())
	assert.Equal(t, 22, b.PresentDays)
	assert.Equal(t, 176.0, b.TotalWorkHours)
	assert.Equal(t, 176.0, b.ExpectedWorkHours)
}

func TestCompute_UnpaidLeaveDeductsDailyRate(t *testing.T) {
	base := decimal.NewFromInt(22000)
	records := presentDays(20, 480)
	records = append(records, attendance.Record{
		Date:   day(25),
		Status: attendance.StatusLeave,
	})

	b := salary.Compute(base, records, nil)

	// Daily rate is 1000; one unpaid day costs exactly that.
	assert.True(t, b.CalculatedSalary.Equal(decimal.NewFromInt(21000)), "got %s", b.CalculatedSalary)
	assert.True(t, b.Deductions.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, 1, b.UnpaidLeaveDays)
	assert.Equal(t, 0, b.PaidLeaveDays)
}

func TestCompute_PaidLeaveCostsNothing(t *testing.T) {
	base := decimal.NewFromInt(22000)
	records := presentDays(20, 480)
	records = append(records, attendance.Record{
		Date:   day(25),
		Status: attendance.StatusLeave,
	})
	paid := map[string]struct{}{day(25).Format("2006-01-02"): {}}

	b := salary.Compute(base, records, paid)

	assert.True(t, b.CalculatedSalary.Equal(base), "got %s", b.CalculatedSalary)
	assert.Equal(t, 1, b.PaidLeaveDays)
	assert.Equal(t, 0, b.UnpaidLeaveDays)
}

func TestCompute_HalfDayDeductsHalfDailyRate(t *testing.T) {
	base := decimal.NewFromInt(22000)
	records := presentDays(21, 480)
	records = append(records, attendance.Record{
		Date:             day(25),
		Status:           attendance.StatusHalfDay,
		TotalWorkMinutes: 240,
	})

	b := salary.Compute(base, records, nil)

	// Half day expects 4h and the 240 worked minutes cover them, so the
	// only deduction is half the daily rate.
	assert.True(t, b.CalculatedSalary.Equal(decimal.NewFromInt(21500)), "got %s", b.CalculatedSalary)
	assert.Equal(t, 1, b.HalfDays)
	assert.Equal(t, 172.0, b.ExpectedWorkHours)
}

func TestCompute_ShortfallDeductsHourlyRate(t *testing.T) {
	base := decimal.NewFromInt(22000)
	// 22 present days at 7h each: 22h short of the 176h expectation.
	records := presentDays(22, 420)

	b := salary.Compute(base, records, nil)

	// Hourly rate is 125; 22 missing hours cost 2750.
	assert.True(t, b.CalculatedSalary.Equal(decimal.NewFromInt(19250)), "got %s", b.CalculatedSalary)
	assert.True(t, b.Deductions.Equal(decimal.NewFromInt(2750)))
}

func TestCompute_SurplusHoursNotCredited(t *testing.T) {
	base := decimal.NewFromInt(22000)
	// 10h days never pay more than the base.
	records := presentDays(22, 600)

	b := salary.Compute(base, records, nil)

	assert.True(t, b.CalculatedSalary.Equal(base), "got %s", b.CalculatedSalary)
	assert.True(t, b.Deductions.IsZero())
}

func TestCompute_FlooredAtZero(t *testing.T) {
	base := decimal.NewFromInt(1000)
	// 22 present days with zero worked minutes: the shortfall deduction
	// alone exceeds the base.
	records := presentDays(22, 0)

	b := salary.Compute(base, records, nil)

	assert.True(t, b.CalculatedSalary.IsZero(), "got %s", b.CalculatedSalary)
	assert.True(t, b.Deductions.Equal(base))
}

func TestCompute_EmptyMonth(t *testing.T) {
	base := decimal.NewFromInt(22000)

	b := salary.Compute(base, nil, nil)

	// No records means no expectations and no deductions.
	assert.True(t, b.CalculatedSalary.Equal(base), "got %s", b.CalculatedSalary)
	assert.Equal(t, 0, b.PresentDays)
	assert.Equal(t, 0.0, b.ExpectedWorkHours)
}

func TestMonthRequest_Normalize(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	req := salary.MonthRequest{}
	req.Normalize(now)
	assert.Equal(t, 8, req.Month)
	assert.Equal(t, 2026, req.Year)

	req = salary.MonthRequest{Month: 2, Year: 2025}
	req.Normalize(now)
	assert.Equal(t, 2, req.Month)
	assert.Equal(t, 2025, req.Year)
}
