package leave

import (
	"time"

	"github.com/staffdesk/attendance-backend-go/internal/pkg/validator"
)

type SubmitRequest struct {
	LeaveType   string `json:"leave_type"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Reason      string `json:"reason"`
	IsPaidLeave bool   `json:"is_paid_leave"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if !Type(r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of Sick, Casual, Vacation, Personal, Other",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RespondRequest struct {
	Action    string  `json:"action"`
	AdminNote *string `json:"admin_note,omitempty"`
}

func (r *RespondRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Action, []string{"approve", "reject"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be approve or reject",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestResponse struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	EmployeeName *string    `json:"employee_name,omitempty"`
	EmployeeCode *string    `json:"employee_code,omitempty"`
	LeaveType    string     `json:"leave_type"`
	StartDate    string     `json:"start_date"`
	EndDate      string     `json:"end_date"`
	DayCount     int        `json:"day_count"`
	Reason       string     `json:"reason"`
	IsPaidLeave  bool       `json:"is_paid_leave"`
	Status       string     `json:"status"`
	AdminNote    *string    `json:"admin_note,omitempty"`
	RespondedBy  *string    `json:"responded_by,omitempty"`
	RespondedAt  *time.Time `json:"responded_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func ToResponse(r Request) RequestResponse {
	return RequestResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		EmployeeCode: r.EmployeeCode,
		LeaveType:    string(r.LeaveType),
		StartDate:    r.StartDate.Format("2006-01-02"),
		EndDate:      r.EndDate.Format("2006-01-02"),
		DayCount:     r.DayCount(),
		Reason:       r.Reason,
		IsPaidLeave:  r.IsPaidLeave,
		Status:       string(r.Status),
		AdminNote:    r.AdminNote,
		RespondedBy:  r.RespondedBy,
		RespondedAt:  r.RespondedAt,
		CreatedAt:    r.CreatedAt,
	}
}

type BalanceResponse struct {
	EmployeeID       string     `json:"employee_id"`
	PaidLeaveBalance int        `json:"paid_leave_balance"`
	LastReset        *time.Time `json:"last_reset,omitempty"`
}
