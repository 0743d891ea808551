package response

import (
	"errors"
	"net/http"

	"github.com/staffdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/staffdesk/attendance-backend-go/internal/domain/auth"
	"github.com/staffdesk/attendance-backend-go/internal/domain/employee"
	"github.com/staffdesk/attendance-backend-go/internal/domain/identity"
	"github.com/staffdesk/attendance-backend-go/internal/domain/leave"
	"github.com/staffdesk/attendance-backend-go/internal/domain/project"
	"github.com/staffdesk/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, identity.ErrForbidden):
		Forbidden(w, "You are not allowed to perform this action")

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrWrongPassword):
		Unauthorized(w, "Current password is incorrect")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrCannotModifyAdmin):
		Forbidden(w, "Admin accounts cannot be modified")
	case errors.Is(err, employee.ErrCannotDeleteAdmin):
		Forbidden(w, "Admin accounts cannot be deleted")
	case errors.Is(err, employee.ErrCannotDeleteSelf):
		BadRequest(w, "You cannot delete your own account", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyPunchedIn):
		Conflict(w, "You have already punched in today")
	case errors.Is(err, attendance.ErrNotPunchedIn):
		BadRequest(w, "You have not punched in today", nil)
	case errors.Is(err, attendance.ErrAlreadyPunchedOut):
		Conflict(w, "You have already punched out today")
	case errors.Is(err, attendance.ErrLunchAlreadyStarted):
		Conflict(w, "Lunch break has already started")
	case errors.Is(err, attendance.ErrLunchNotStarted):
		BadRequest(w, "Lunch break has not been started", nil)
	case errors.Is(err, attendance.ErrLunchAlreadyEnded):
		Conflict(w, "Lunch break has already ended")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Start date must not be after end date", nil)
	case errors.Is(err, leave.ErrInsufficientNotice):
		BadRequest(w, "Leave request does not meet the required notice period", nil)
	case errors.Is(err, leave.ErrInsufficientPaidLeave):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrInvalidAction):
		BadRequest(w, "Action must be approve or reject", nil)

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrNameExists):
		Conflict(w, "Project name already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
