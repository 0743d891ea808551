package leave

import (
	"time"
)

type Type string

const (
	TypeSick     Type = "Sick"
	TypeCasual   Type = "Casual"
	TypeVacation Type = "Vacation"
	TypePersonal Type = "Personal"
	TypeOther    Type = "Other"
)

func (t Type) Valid() bool {
	switch t {
	case TypeSick, TypeCasual, TypeVacation, TypePersonal, TypeOther:
		return true
	}
	return false
}

// MinNoticeDays returns the calendar days of advance notice required
// before the start date. Plannable leave needs more runway.
func (t Type) MinNoticeDays() int {
	if t == TypeVacation || t == TypePersonal {
		return 10
	}
	return 1
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Request is one leave application covering the inclusive span
// [StartDate, EndDate].
type Request struct {
	ID          string
	EmployeeID  string
	LeaveType   Type
	StartDate   time.Time
	EndDate     time.Time
	Reason      string
	IsPaidLeave bool
	Status      Status
	AdminNote   *string
	RespondedBy *string
	RespondedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined for admin projections
	EmployeeName *string
	EmployeeCode *string
}

// DayCount returns the inclusive number of calendar days covered.
func (r Request) DayCount() int {
	return DayCountBetween(r.StartDate, r.EndDate)
}

// DayCountBetween counts the calendar days in [start, end] inclusive.
func DayCountBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}

// DaysBetween expands [start, end] into one midnight per covered day.
func DaysBetween(start, end time.Time) []time.Time {
	var days []time.Time
	d := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	for !d.After(last) {
		days = append(days, d)
		d = d.AddDate(0, 0, 1)
	}
	return days
}
