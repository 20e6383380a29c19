package cashflow

import "errors"

var (
	ErrRecordNotFound = errors.New("cashflow record not found")
	ErrAlreadySettled = errors.New("cashflow record is already settled")
	ErrPeriodExists   = errors.New("a record for this party and period already exists")
)
