package attendance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/staffdesk/attendance-backend-go/internal/domain/attendance"
)

func TestMinutesBetween_TruncatesSeconds(t *testing.T) {
	a := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, attendance.MinutesBetween(a, a))
	assert.Equal(t, 0, attendance.MinutesBetween(a, a.Add(59*time.Second)))
	assert.Equal(t, 1, attendance.MinutesBetween(a, a.Add(1*time.Minute)))
	assert.Equal(t, 480, attendance.MinutesBetween(a, a.Add(8*time.Hour+30*time.Second)))
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	ts := time.Date(2026, 8, 3, 18, 45, 12, 99, loc)

	got := attendance.StartOfDay(ts)

	assert.Equal(t, time.Date(2026, 8, 3, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, attendance.StatusPresent, attendance.DeriveStatus(0))
	assert.Equal(t, attendance.StatusHalfDay, attendance.DeriveStatus(1))
	assert.Equal(t, attendance.StatusHalfDay, attendance.DeriveStatus(239))
	assert.Equal(t, attendance.StatusPresent, attendance.DeriveStatus(240))
	assert.Equal(t, attendance.StatusPresent, attendance.DeriveStatus(480))
}
