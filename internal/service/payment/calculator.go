// Package payment derives payment statuses for work months. Statuses are
// computed fresh on every read and never persisted, so they cannot go stale
// in the store.
package payment

import (
	"time"

	"github.com/brightserv/ops-backend-go/internal/domain/cashflow"
)

type Status string

const (
	StatusWorkInProgress Status = "work_in_progress"
	StatusPending        Status = "pending"
	StatusOverdue        Status = "overdue"
	StatusPaid           Status = "paid"
)

// Key identifies whose payment for which work month is being resolved.
// Matching is by employee ID and numeric period, not by display name and
// month-name strings: the legacy string join was a collision-prone
// substitute for a real key.
type Key struct {
	EmployeeID string
	Year       int
	Month      int // 1-12
}

// DueDate returns the contractual payment deadline for a work month: day 15
// of the following month, rolling the year forward past December.
func DueDate(workYear, workMonth int) time.Time {
	followingYear, followingMonth := followingPeriod(workYear, workMonth)
	return time.Date(followingYear, time.Month(followingMonth), 15, 0, 0, 0, 0, time.UTC)
}

// PeriodStart returns day 1 of the due month, the point where a work month
// enters its payment cycle.
func PeriodStart(workYear, workMonth int) time.Time {
	followingYear, followingMonth := followingPeriod(workYear, workMonth)
	return time.Date(followingYear, time.Month(followingMonth), 1, 0, 0, 0, 0, time.UTC)
}

func followingPeriod(year, month int) (int, int) {
	if month == 12 {
		return year + 1, 1
	}
	return year, month + 1
}

// Resolve derives the payment status for a work month from the payroll
// records at hand. It is pure and total: any record set and any well-formed
// key yield exactly one of the four states.
//
// A settled matching record wins regardless of dates. Otherwise (including
// when no record exists at all - absence is treated like a pending record)
// the result follows the calendar: before the due month starts the work is
// still in progress, past the due date it is overdue, in between it is
// pending.
func Resolve(today time.Time, key Key, records []cashflow.Record) Status {
	for i := range records {
		rec := &records[i]
		if !rec.IsPayroll() {
			continue
		}
		if rec.EmployeeID == nil || *rec.EmployeeID != key.EmployeeID {
			continue
		}
		if rec.PeriodYear != key.Year || rec.PeriodMonth != key.Month {
			continue
		}
		if rec.Settled() {
			return StatusPaid
		}
		break
	}
	return resolveByCalendar(today, key.Year, key.Month)
}

// ResolveRecord derives the display status for a single cashflow record
// (payroll, invoice or expense) without a key lookup.
func ResolveRecord(today time.Time, rec cashflow.Record) Status {
	if rec.Settled() {
		return StatusPaid
	}
	return resolveByCalendar(today, rec.PeriodYear, rec.PeriodMonth)
}

func resolveByCalendar(today time.Time, workYear, workMonth int) Status {
	// Compare by calendar day in the caller's local calendar, normalized to
	// the same zone the boundary dates are built in.
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	start := PeriodStart(workYear, workMonth)
	due := DueDate(workYear, workMonth)

	switch {
	case day.Before(start):
		return StatusWorkInProgress
	case day.After(due):
		return StatusOverdue
	default:
		return StatusPending
	}
}
