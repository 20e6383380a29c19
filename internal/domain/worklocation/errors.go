package worklocation

import "errors"

var (
	ErrLocationNotFound = errors.New("work location not found")

	// ErrNoApprovedLocation is distinct from ErrOutsideRadius: the first
	// means nothing is eligible to measure against, the second means the
	// measurement failed.
	ErrNoApprovedLocation = errors.New("no approved work location for this employee and site")
	ErrOutsideRadius      = errors.New("you are outside the allowed working area")

	ErrAlreadyReviewed = errors.New("work location has already been approved or rejected")
)
