package workrecord

import (
	"context"
	"time"
)

type WorkRecordRepository interface {
	Create(ctx context.Context, rec WorkRecord) (WorkRecord, error)
	GetByID(ctx context.Context, id string) (WorkRecord, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*WorkRecord, error)
	GetOpenSession(ctx context.Context, employeeID string) (WorkRecord, error)
	Update(ctx context.Context, rec WorkRecord) error
	List(ctx context.Context, filter WorkRecordFilter) ([]WorkRecord, int64, error)

	// ListForMonth returns all records for an employee within a work month,
	// for timesheet and report derivation.
	ListForMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]WorkRecord, error)
}

type WorkRecordService interface {
	ClockIn(ctx context.Context, req ClockInRequest) (WorkRecordResponse, error)
	ClockOut(ctx context.Context, req ClockOutRequest) (WorkRecordResponse, error)
	RecordLeave(ctx context.Context, req RecordLeaveRequest) (WorkRecordResponse, error)
	Get(ctx context.Context, id string) (WorkRecordResponse, error)
	List(ctx context.Context, filter WorkRecordFilter) (ListWorkRecordsResponse, error)
	Approve(ctx context.Context, id string) (WorkRecordResponse, error)
	Reject(ctx context.Context, req RejectWorkRecordRequest) (WorkRecordResponse, error)
}
