package leave

import "errors"

var (
	ErrRequestNotFound       = errors.New("leave request not found")
	ErrAlreadyProcessed      = errors.New("leave request has already been approved or rejected")
	ErrInvalidDateRange      = errors.New("start date must not be after end date")
	ErrInsufficientNotice    = errors.New("leave request does not meet the required notice period")
	ErrInsufficientPaidLeave = errors.New("not enough paid leave balance")
	ErrInvalidAction         = errors.New("action must be approve or reject")
)
