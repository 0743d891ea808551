package attendance

import (
	"time"
)

type Record struct {
	ID                string
	EmployeeID        string
	Date              time.Time
	PunchIn           *time.Time
	PunchOut          *time.Time
	LunchStart        *time.Time
	LunchEnd          *time.Time
	TotalBreakMinutes int
	TotalWorkMinutes  int
	Status            Status
	LeaveType         *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined for admin projections
	EmployeeName *string
	EmployeeCode *string
}

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLeave   Status = "Leave"
	StatusHalfDay Status = "Half Day"
)

// HalfDayThresholdMinutes is the boundary below which a worked day
// counts as a half day. Zero worked minutes stays Present.
const HalfDayThresholdMinutes = 240

// MinutesBetween returns the whole minutes elapsed from a to b,
// truncated toward zero. Seconds never round up.
func MinutesBetween(a, b time.Time) int {
	return int(b.Sub(a) / time.Minute)
}

// StartOfDay normalizes t to midnight in its own location. Records are
// keyed by this value, one per employee per day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DeriveStatus classifies a closed day from its net worked minutes.
func DeriveStatus(totalWorkMinutes int) Status {
	if totalWorkMinutes > 0 && totalWorkMinutes < HalfDayThresholdMinutes {
		return StatusHalfDay
	}
	return StatusPresent
}
