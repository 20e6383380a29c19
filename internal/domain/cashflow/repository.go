package cashflow

import "context"

type RecordRepository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)

	// GetPayrollForPeriod returns the payroll record matching the typed
	// (employeeID, year, month) key, or nil when none exists. The unique
	// period constraint makes "first match wins" ambiguity impossible.
	GetPayrollForPeriod(ctx context.Context, employeeID string, year, month int) (*Record, error)

	List(ctx context.Context, filter RecordFilter) ([]Record, int64, error)
	ListPayrollForPeriod(ctx context.Context, year, month int) ([]Record, error)
	Update(ctx context.Context, rec Record) error
	Delete(ctx context.Context, id string) error
}

type RecordService interface {
	Create(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)
	Get(ctx context.Context, id string) (RecordResponse, error)
	List(ctx context.Context, filter RecordFilter) (ListRecordsResponse, error)
	Update(ctx context.Context, req UpdateRecordRequest) (RecordResponse, error)
	MarkPaid(ctx context.Context, req MarkPaidRequest) (RecordResponse, error)
	Delete(ctx context.Context, id string) error
}
