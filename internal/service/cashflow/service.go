package cashflow

import (
	"context"
	"math"
	"time"

	"github.com/brightserv/ops-backend-go/internal/domain/cashflow"
	"github.com/brightserv/ops-backend-go/internal/domain/client"
	"github.com/brightserv/ops-backend-go/internal/domain/employee"
	"github.com/brightserv/ops-backend-go/internal/pkg/dateutil"
	"github.com/brightserv/ops-backend-go/internal/service/payment"
	"github.com/shopspring/decimal"
)

type RecordServiceImpl struct {
	cashflow.RecordRepository
	employee.EmployeeRepository
	client.ClientRepository
}

func NewRecordService(
	recordRepository cashflow.RecordRepository,
	employeeRepository employee.EmployeeRepository,
	clientRepository client.ClientRepository,
) cashflow.RecordService {
	return &RecordServiceImpl{
		RecordRepository:   recordRepository,
		EmployeeRepository: employeeRepository,
		ClientRepository:   clientRepository,
	}
}

// Create implements cashflow.RecordService.
func (s *RecordServiceImpl) Create(ctx context.Context, req cashflow.CreateRecordRequest) (cashflow.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return cashflow.RecordResponse{}, err
	}

	rec := cashflow.Record{
		Type:        cashflow.Type(req.Type),
		Status:      cashflow.StatusPending,
		EmployeeID:  req.EmployeeID,
		ClientID:    req.ClientID,
		PeriodYear:  req.PeriodYear,
		PeriodMonth: req.PeriodMonth,
		Notes:       req.Notes,
	}

	amount, _ := decimal.NewFromString(req.TotalAmount)
	rec.TotalAmount = amount

	if rec.IsPayroll() {
		if _, err := s.EmployeeRepository.GetByID(ctx, *req.EmployeeID); err != nil {
			return cashflow.RecordResponse{}, err
		}
		existing, err := s.RecordRepository.GetPayrollForPeriod(ctx, *req.EmployeeID, req.PeriodYear, req.PeriodMonth)
		if err != nil {
			return cashflow.RecordResponse{}, err
		}
		if existing != nil {
			return cashflow.RecordResponse{}, cashflow.ErrPeriodExists
		}
	}
	if req.ClientID != nil {
		if _, err := s.ClientRepository.GetByID(ctx, *req.ClientID); err != nil {
			return cashflow.RecordResponse{}, err
		}
	}

	created, err := s.RecordRepository.Create(ctx, rec)
	if err != nil {
		return cashflow.RecordResponse{}, err
	}

	return toResponse(created), nil
}

// Get implements cashflow.RecordService.
func (s *RecordServiceImpl) Get(ctx context.Context, id string) (cashflow.RecordResponse, error) {
	rec, err := s.RecordRepository.GetByID(ctx, id)
	if err != nil {
		return cashflow.RecordResponse{}, err
	}
	return toResponse(rec), nil
}

// List implements cashflow.RecordService.
func (s *RecordServiceImpl) List(ctx context.Context, filter cashflow.RecordFilter) (cashflow.ListRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return cashflow.ListRecordsResponse{}, err
	}

	records, total, err := s.RecordRepository.List(ctx, filter)
	if err != nil {
		return cashflow.ListRecordsResponse{}, err
	}

	responses := make([]cashflow.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}

	return cashflow.ListRecordsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Records:    responses,
	}, nil
}

// Update implements cashflow.RecordService.
func (s *RecordServiceImpl) Update(ctx context.Context, req cashflow.UpdateRecordRequest) (cashflow.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return cashflow.RecordResponse{}, err
	}

	rec, err := s.RecordRepository.GetByID(ctx, req.ID)
	if err != nil {
		return cashflow.RecordResponse{}, err
	}

	if req.TotalAmount != nil {
		amount, _ := decimal.NewFromString(*req.TotalAmount)
		rec.TotalAmount = amount
	}
	if req.Notes != nil {
		rec.Notes = req.Notes
	}

	if err := s.RecordRepository.Update(ctx, rec); err != nil {
		return cashflow.RecordResponse{}, err
	}

	updated, err := s.RecordRepository.GetByID(ctx, req.ID)
	if err != nil {
		return cashflow.RecordResponse{}, err
	}

	return toResponse(updated), nil
}

// MarkPaid implements cashflow.RecordService. Payroll and expense records
// settle as paid, invoices as received.
func (s *RecordServiceImpl) MarkPaid(ctx context.Context, req cashflow.MarkPaidRequest) (cashflow.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return cashflow.RecordResponse{}, err
	}

	rec, err := s.RecordRepository.GetByID(ctx, req.ID)
	if err != nil {
		return cashflow.RecordResponse{}, err
	}
	if rec.Settled() {
		return cashflow.RecordResponse{}, cashflow.ErrAlreadySettled
	}

	if rec.Type == cashflow.TypeClientInvoice {
		rec.Status = cashflow.StatusReceived
	} else {
		rec.Status = cashflow.StatusPaid
	}

	paymentDate := dateutil.Format(time.Now())
	if req.PaymentDate != nil && *req.PaymentDate != "" {
		if parsed, ok := dateutil.Parse(*req.PaymentDate); ok {
			paymentDate = dateutil.Format(parsed)
		}
	}
	rec.PaymentDate = &paymentDate

	if err := s.RecordRepository.Update(ctx, rec); err != nil {
		return cashflow.RecordResponse{}, err
	}

	updated, err := s.RecordRepository.GetByID(ctx, req.ID)
	if err != nil {
		return cashflow.RecordResponse{}, err
	}

	return toResponse(updated), nil
}

// Delete implements cashflow.RecordService.
func (s *RecordServiceImpl) Delete(ctx context.Context, id string) error {
	return s.RecordRepository.Delete(ctx, id)
}

func toResponse(rec cashflow.Record) cashflow.RecordResponse {
	return cashflow.RecordResponse{
		ID:            rec.ID,
		Type:          string(rec.Type),
		Status:        string(rec.Status),
		EmployeeID:    rec.EmployeeID,
		EmployeeName:  rec.EmployeeName,
		ClientID:      rec.ClientID,
		ClientName:    rec.ClientName,
		PeriodYear:    rec.PeriodYear,
		PeriodMonth:   rec.PeriodMonth,
		TotalAmount:   rec.TotalAmount.String(),
		DueDate:       dateutil.Format(payment.DueDate(rec.PeriodYear, rec.PeriodMonth)),
		PaymentStatus: string(payment.ResolveRecord(time.Now(), rec)),
		PaymentDate:   rec.PaymentDate,
		Notes:         rec.Notes,
		CreatedAt:     dateutil.Format(rec.CreatedAt),
	}
}
