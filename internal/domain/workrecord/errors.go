package workrecord

import "errors"

var (
	ErrAlreadyClockedIn  = errors.New("you have already clocked in today")
	ErrNotClockedIn      = errors.New("you have no open session to clock out of")
	ErrRecordNotFound    = errors.New("work record not found")
	ErrAlreadyProcessed  = errors.New("work record has already been approved or rejected")
	ErrDayAlreadyCovered = errors.New("a record already exists for this employee and day")
)
