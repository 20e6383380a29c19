package cashflow

import (
	"context"
	"testing"

	"github.com/brightserv/ops-backend-go/internal/domain/cashflow"
	"github.com/brightserv/ops-backend-go/internal/domain/client"
	"github.com/brightserv/ops-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecordRepo struct {
	cashflow.RecordRepository
	records map[string]cashflow.Record
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: make(map[string]cashflow.Record)}
}

func (f *fakeRecordRepo) Create(ctx context.Context, rec cashflow.Record) (cashflow.Record, error) {
	rec.ID = "cf-1"
	f.records[rec.ID] = rec
	return rec, nil
}

func (f *fakeRecordRepo) GetByID(ctx context.Context, id string) (cashflow.Record, error) {
	rec, ok := f.records[id]
	if !ok {
		return cashflow.Record{}, cashflow.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeRecordRepo) GetPayrollForPeriod(ctx context.Context, employeeID string, year, month int) (*cashflow.Record, error) {
	for _, rec := range f.records {
		if !rec.IsPayroll() || rec.EmployeeID == nil {
			continue
		}
		if *rec.EmployeeID == employeeID && rec.PeriodYear == year && rec.PeriodMonth == month {
			matched := rec
			return &matched, nil
		}
	}
	return nil, nil
}

func (f *fakeRecordRepo) Update(ctx context.Context, rec cashflow.Record) error {
	f.records[rec.ID] = rec
	return nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{ID: id}, nil
}

type fakeClientRepo struct {
	client.ClientRepository
}

func (f *fakeClientRepo) GetByID(ctx context.Context, id string) (client.Client, error) {
	return client.Client{ID: id}, nil
}

func newService(records *fakeRecordRepo) cashflow.RecordService {
	return NewRecordService(records, &fakeEmployeeRepo{}, &fakeClientRepo{})
}

func TestCreatePayrollRejectsDuplicatePeriod(t *testing.T) {
	records := newFakeRecordRepo()
	svc := newService(records)
	employeeID := "emp-1"

	_, err := svc.Create(context.Background(), cashflow.CreateRecordRequest{
		Type:        string(cashflow.TypeCleanerPayroll),
		EmployeeID:  &employeeID,
		PeriodYear:  2026,
		PeriodMonth: 7,
		TotalAmount: "4200.00",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), cashflow.CreateRecordRequest{
		Type:        string(cashflow.TypeCleanerPayroll),
		EmployeeID:  &employeeID,
		PeriodYear:  2026,
		PeriodMonth: 7,
		TotalAmount: "4200.00",
	})
	assert.ErrorIs(t, err, cashflow.ErrPeriodExists)
}

func TestCreateAllowsSameEmployeeDifferentMonth(t *testing.T) {
	records := newFakeRecordRepo()
	records.records["cf-0"] = cashflow.Record{
		ID:          "cf-0",
		Type:        cashflow.TypeCleanerPayroll,
		Status:      cashflow.StatusPending,
		EmployeeID:  strPtr("emp-1"),
		PeriodYear:  2026,
		PeriodMonth: 6,
		TotalAmount: decimal.NewFromInt(4200),
	}
	svc := newService(records)
	employeeID := "emp-1"

	_, err := svc.Create(context.Background(), cashflow.CreateRecordRequest{
		Type:        string(cashflow.TypeCleanerPayroll),
		EmployeeID:  &employeeID,
		PeriodYear:  2026,
		PeriodMonth: 7,
		TotalAmount: "4200.00",
	})
	assert.NoError(t, err)
}

func TestMarkPaidSettlesPayrollAsPaid(t *testing.T) {
	records := newFakeRecordRepo()
	records.records["cf-1"] = cashflow.Record{
		ID:          "cf-1",
		Type:        cashflow.TypeCleanerPayroll,
		Status:      cashflow.StatusPending,
		EmployeeID:  strPtr("emp-1"),
		PeriodYear:  2024,
		PeriodMonth: 1,
		TotalAmount: decimal.NewFromInt(4200),
	}
	svc := newService(records)

	resp, err := svc.MarkPaid(context.Background(), cashflow.MarkPaidRequest{ID: "cf-1"})
	require.NoError(t, err)

	assert.Equal(t, string(cashflow.StatusPaid), resp.Status)
	assert.Equal(t, "paid", resp.PaymentStatus)
	require.NotNil(t, resp.PaymentDate)
}

func TestMarkPaidSettlesInvoiceAsReceived(t *testing.T) {
	records := newFakeRecordRepo()
	records.records["cf-1"] = cashflow.Record{
		ID:          "cf-1",
		Type:        cashflow.TypeClientInvoice,
		Status:      cashflow.StatusPending,
		ClientID:    strPtr("client-1"),
		PeriodYear:  2024,
		PeriodMonth: 1,
		TotalAmount: decimal.NewFromInt(9000),
	}
	svc := newService(records)

	date := "15.02.2024"
	resp, err := svc.MarkPaid(context.Background(), cashflow.MarkPaidRequest{ID: "cf-1", PaymentDate: &date})
	require.NoError(t, err)

	assert.Equal(t, string(cashflow.StatusReceived), resp.Status)
	require.NotNil(t, resp.PaymentDate)
	assert.Equal(t, "15.02.2024", *resp.PaymentDate)
}

func TestMarkPaidTwiceFails(t *testing.T) {
	records := newFakeRecordRepo()
	records.records["cf-1"] = cashflow.Record{
		ID:          "cf-1",
		Type:        cashflow.TypeExpense,
		Status:      cashflow.StatusPaid,
		PeriodYear:  2024,
		PeriodMonth: 1,
		TotalAmount: decimal.NewFromInt(100),
	}
	svc := newService(records)

	_, err := svc.MarkPaid(context.Background(), cashflow.MarkPaidRequest{ID: "cf-1"})
	assert.ErrorIs(t, err, cashflow.ErrAlreadySettled)
}

func TestGetDerivesOverdueFromCalendar(t *testing.T) {
	records := newFakeRecordRepo()
	records.records["cf-1"] = cashflow.Record{
		ID:          "cf-1",
		Type:        cashflow.TypeCleanerPayroll,
		Status:      cashflow.StatusPending,
		EmployeeID:  strPtr("emp-1"),
		PeriodYear:  2024,
		PeriodMonth: 1,
		TotalAmount: decimal.NewFromInt(4200),
	}
	svc := newService(records)

	resp, err := svc.Get(context.Background(), "cf-1")
	require.NoError(t, err)

	// Due 2024-02-15, long past by now.
	assert.Equal(t, "overdue", resp.PaymentStatus)
	assert.Equal(t, "15.02.2024", resp.DueDate)
}

func strPtr(s string) *string { return &s }
