package leave_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/staffdesk/attendance-backend-go/internal/domain/leave"
)

func TestDayCountBetween_Inclusive(t *testing.T) {
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, leave.DayCountBetween(start, start))
	assert.Equal(t, 3, leave.DayCountBetween(start, start.AddDate(0, 0, 2)))
	assert.Equal(t, 31, leave.DayCountBetween(start, time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)))
}

func TestDayCountBetween_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2026, 10, 1, 23, 30, 0, 0, time.UTC)
	end := time.Date(2026, 10, 2, 0, 15, 0, 0, time.UTC)

	assert.Equal(t, 2, leave.DayCountBetween(start, end))
}

func TestDaysBetween_ExpandsSpan(t *testing.T) {
	start := time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	days := leave.DaysBetween(start, end)

	assert.Len(t, days, 4)
	assert.Equal(t, start, days[0])
	assert.Equal(t, end, days[len(days)-1])
}

func TestType_MinNoticeDays(t *testing.T) {
	assert.Equal(t, 10, leave.TypeVacation.MinNoticeDays())
	assert.Equal(t, 10, leave.TypePersonal.MinNoticeDays())
	assert.Equal(t, 1, leave.TypeSick.MinNoticeDays())
	assert.Equal(t, 1, leave.TypeCasual.MinNoticeDays())
	assert.Equal(t, 1, leave.TypeOther.MinNoticeDays())
}

func TestType_Valid(t *testing.T) {
	assert.True(t, leave.TypeSick.Valid())
	assert.True(t, leave.TypeVacation.Valid())
	assert.False(t, leave.Type("Sabbatical").Valid())
}

func TestRequest_DayCount(t *testing.T) {
	r := leave.Request{
		StartDate: time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 5, 8, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, 5, r.DayCount())
}
