package attendance

import (
	"time"

	"github.com/staffdesk/attendance-backend-go/internal/pkg/validator"
)

type RecordResponse struct {
	ID                string     `json:"id"`
	EmployeeID        string     `json:"employee_id"`
	EmployeeName      *string    `json:"employee_name,omitempty"`
	EmployeeCode      *string    `json:"employee_code,omitempty"`
	Date              string     `json:"date"`
	PunchIn           *time.Time `json:"punch_in"`
	PunchOut          *time.Time `json:"punch_out"`
	LunchStart        *time.Time `json:"lunch_start"`
	LunchEnd          *time.Time `json:"lunch_end"`
	TotalBreakMinutes int        `json:"total_break_minutes"`
	TotalWorkMinutes  int        `json:"total_work_minutes"`
	Status            string     `json:"status"`
	LeaveType         *string    `json:"leave_type,omitempty"`
}

func ToResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:                r.ID,
		EmployeeID:        r.EmployeeID,
		EmployeeName:      r.EmployeeName,
		EmployeeCode:      r.EmployeeCode,
		Date:              r.Date.Format("2006-01-02"),
		PunchIn:           r.PunchIn,
		PunchOut:          r.PunchOut,
		LunchStart:        r.LunchStart,
		LunchEnd:          r.LunchEnd,
		TotalBreakMinutes: r.TotalBreakMinutes,
		TotalWorkMinutes:  r.TotalWorkMinutes,
		Status:            string(r.Status),
		LeaveType:         r.LeaveType,
	}
}

type HistoryRequest struct {
	Limit int `json:"limit"`
}

func (r *HistoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RangeRequest struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	EmployeeID string `json:"employee_id"`
}

func (r *RangeRequest) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}
