package attendance

import "errors"

// Time ledger domain errors
var (
	ErrAlreadyPunchedIn    = errors.New("you have already punched in today")
	ErrNotPunchedIn        = errors.New("you have not punched in today")
	ErrAlreadyPunchedOut   = errors.New("you have already punched out today")
	ErrLunchAlreadyStarted = errors.New("lunch break has already started")
	ErrLunchNotStarted     = errors.New("lunch break has not been started")
	ErrLunchAlreadyEnded   = errors.New("lunch break has already ended")
	ErrRecordNotFound      = errors.New("attendance record not found")
)
