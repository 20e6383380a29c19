package cashflow

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type distinguishes what a cashflow record settles.
type Type string

const (
	TypeCleanerPayroll  Type = "cleaner_payroll"
	TypeInternalPayroll Type = "internal_payroll"
	TypeClientInvoice   Type = "client_invoice"
	TypeExpense         Type = "expense"
)

// Stored settlement state of a record. Derived payment status (including
// work_in_progress and date-based overdue) is computed per read by the
// payment resolver, never persisted.
type Status string

const (
	StatusPending  Status = "pending"
	StatusOverdue  Status = "overdue"
	StatusPaid     Status = "paid"
	StatusReceived Status = "received"
)

// PayrollTypes are the record types eligible for employee payment-status
// matching.
var PayrollTypes = []Type{TypeCleanerPayroll, TypeInternalPayroll}

// Record is one payroll or invoice entry for a work period. Payroll records
// are keyed by (EmployeeID, PeriodYear, PeriodMonth); invoice records by
// ClientID and the same period key. Free-text name/month matching from the
// legacy system is deliberately not carried over.
type Record struct {
	ID          string
	Type        Type
	Status      Status
	EmployeeID  *string
	ClientID    *string
	PeriodYear  int
	PeriodMonth int
	TotalAmount decimal.Decimal

	// PaymentDate is kept as the raw stored string; legacy data contains
	// malformed values and those must degrade to "no date" on read.
	PaymentDate *string

	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	EmployeeName *string
	ClientName   *string
}

// Settled reports whether the record is already paid out or received.
func (r *Record) Settled() bool {
	return r.Status == StatusPaid || r.Status == StatusReceived
}

// IsPayroll reports whether the record type counts toward employee payment
// status.
func (r *Record) IsPayroll() bool {
	for _, t := range PayrollTypes {
		if r.Type == t {
			return true
		}
	}
	return false
}
