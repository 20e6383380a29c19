package payment

import (
	"testing"
	"time"

	"github.com/brightserv/ops-backend-go/internal/domain/cashflow"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDueDate(t *testing.T) {
	cases := []struct {
		year, month int
		want        time.Time
	}{
		{2025, 11, date(2025, 12, 15)},
		{2025, 12, date(2026, 1, 15)}, // year rolls forward
		{2025, 1, date(2025, 2, 15)},
		{2024, 6, date(2024, 7, 15)},
	}
	for _, c := range cases {
		got := DueDate(c.year, c.month)
		if !got.Equal(c.want) {
			t.Errorf("DueDate(%d, %d) = %v, want %v", c.year, c.month, got, c.want)
		}
	}
}

// Day is always 15, month wraps 1-indexed, year increments only from
// December.
func TestDueDateProperties(t *testing.T) {
	for month := 1; month <= 12; month++ {
		due := DueDate(2025, month)
		if due.Day() != 15 {
			t.Errorf("DueDate(2025, %d).Day() = %d, want 15", month, due.Day())
		}
		wantMonth := time.Month(month%12 + 1)
		if due.Month() != wantMonth {
			t.Errorf("DueDate(2025, %d).Month() = %v, want %v", month, due.Month(), wantMonth)
		}
		wantYear := 2025
		if month == 12 {
			wantYear = 2026
		}
		if due.Year() != wantYear {
			t.Errorf("DueDate(2025, %d).Year() = %d, want %d", month, due.Year(), wantYear)
		}
	}
}

func strPtr(s string) *string { return &s }

func payrollRecord(employeeID string, year, month int, status cashflow.Status) cashflow.Record {
	return cashflow.Record{
		ID:          "rec-" + employeeID,
		Type:        cashflow.TypeCleanerPayroll,
		Status:      status,
		EmployeeID:  strPtr(employeeID),
		PeriodYear:  year,
		PeriodMonth: month,
	}
}

func TestResolve_PaidBeatsDates(t *testing.T) {
	// Work month October 2025 is due 2025-11-15; today is past the due
	// date, but a settled record still resolves to paid.
	today := date(2025, 11, 20)
	key := Key{EmployeeID: "emp-1", Year: 2025, Month: 10}

	for _, status := range []cashflow.Status{cashflow.StatusPaid, cashflow.StatusReceived} {
		records := []cashflow.Record{payrollRecord("emp-1", 2025, 10, status)}
		if got := Resolve(today, key, records); got != StatusPaid {
			t.Errorf("Resolve with %s record = %s, want %s", status, got, StatusPaid)
		}
	}
}

func TestResolve_WorkInProgress(t *testing.T) {
	// Work month November 2025: payment cycle starts 2025-12-01.
	today := date(2025, 11, 20)
	key := Key{EmployeeID: "emp-1", Year: 2025, Month: 11}

	if got := Resolve(today, key, nil); got != StatusWorkInProgress {
		t.Errorf("Resolve = %s, want %s", got, StatusWorkInProgress)
	}
}

func TestResolve_Overdue(t *testing.T) {
	// Work month September 2025 was due 2025-10-15.
	today := date(2025, 11, 1)
	key := Key{EmployeeID: "emp-1", Year: 2025, Month: 9}

	records := []cashflow.Record{payrollRecord("emp-1", 2025, 9, cashflow.StatusPending)}
	if got := Resolve(today, key, records); got != StatusOverdue {
		t.Errorf("Resolve = %s, want %s", got, StatusOverdue)
	}
}

func TestResolve_Pending(t *testing.T) {
	// Work month October 2025: window 2025-11-01 .. 2025-11-15.
	key := Key{EmployeeID: "emp-1", Year: 2025, Month: 10}

	for _, today := range []time.Time{date(2025, 11, 1), date(2025, 11, 5), date(2025, 11, 15)} {
		if got := Resolve(today, key, nil); got != StatusPending {
			t.Errorf("Resolve at %v = %s, want %s", today, got, StatusPending)
		}
	}
}

// A missing payroll record resolves exactly like a pending one.
func TestResolve_AbsentRecordEqualsPending(t *testing.T) {
	key := Key{EmployeeID: "emp-1", Year: 2025, Month: 9}
	today := date(2025, 10, 10)

	withRecord := Resolve(today, key, []cashflow.Record{
		payrollRecord("emp-1", 2025, 9, cashflow.StatusPending),
	})
	without := Resolve(today, key, nil)
	if withRecord != without {
		t.Errorf("pending record (%s) and absent record (%s) must resolve alike", withRecord, without)
	}
	if without != StatusPending {
		t.Errorf("Resolve = %s, want %s", without, StatusPending)
	}
}

func TestResolve_IgnoresForeignRecords(t *testing.T) {
	today := date(2025, 11, 20)
	key := Key{EmployeeID: "emp-1", Year: 2025, Month: 10}

	records := []cashflow.Record{
		payrollRecord("emp-2", 2025, 10, cashflow.StatusPaid), // other employee
		payrollRecord("emp-1", 2025, 9, cashflow.StatusPaid),  // other month
		{ // right key, but not a payroll type
			Type:        cashflow.TypeClientInvoice,
			Status:      cashflow.StatusPaid,
			EmployeeID:  strPtr("emp-1"),
			PeriodYear:  2025,
			PeriodMonth: 10,
		},
	}
	if got := Resolve(today, key, records); got != StatusOverdue {
		t.Errorf("Resolve = %s, want %s (no eligible record matches)", got, StatusOverdue)
	}
}

func TestResolve_OverdueBoundary(t *testing.T) {
	key := Key{EmployeeID: "emp-1", Year: 2025, Month: 10}

	// Due date itself is still pending; the day after is overdue.
	if got := Resolve(date(2025, 11, 15), key, nil); got != StatusPending {
		t.Errorf("on due date: %s, want %s", got, StatusPending)
	}
	if got := Resolve(date(2025, 11, 16), key, nil); got != StatusOverdue {
		t.Errorf("day after due date: %s, want %s", got, StatusOverdue)
	}
}

func TestResolveRecord(t *testing.T) {
	rec := cashflow.Record{
		Type:        cashflow.TypeClientInvoice,
		Status:      cashflow.StatusPending,
		PeriodYear:  2025,
		PeriodMonth: 9,
	}
	if got := ResolveRecord(date(2025, 11, 1), rec); got != StatusOverdue {
		t.Errorf("ResolveRecord = %s, want %s", got, StatusOverdue)
	}

	rec.Status = cashflow.StatusReceived
	if got := ResolveRecord(date(2025, 11, 1), rec); got != StatusPaid {
		t.Errorf("ResolveRecord settled = %s, want %s", got, StatusPaid)
	}
}
