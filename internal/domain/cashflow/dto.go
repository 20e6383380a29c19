package cashflow

import (
	"github.com/brightserv/ops-backend-go/internal/pkg/dateutil"
	"github.com/brightserv/ops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var validTypes = []string{
	string(TypeCleanerPayroll),
	string(TypeInternalPayroll),
	string(TypeClientInvoice),
	string(TypeExpense),
}

type CreateRecordRequest struct {
	Type        string  `json:"type"`
	EmployeeID  *string `json:"employee_id,omitempty"`
	ClientID    *string `json:"client_id,omitempty"`
	PeriodYear  int     `json:"period_year"`
	PeriodMonth int     `json:"period_month"`
	TotalAmount string  `json:"total_amount"`
	Notes       *string `json:"notes,omitempty"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, validTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: cleaner_payroll, internal_payroll, client_invoice, expense",
		})
	}

	switch Type(r.Type) {
	case TypeCleanerPayroll, TypeInternalPayroll:
		if r.EmployeeID == nil || validator.IsEmpty(*r.EmployeeID) {
			errs = append(errs, validator.ValidationError{
				Field:   "employee_id",
				Message: "employee_id is required for payroll records",
			})
		}
	case TypeClientInvoice:
		if r.ClientID == nil || validator.IsEmpty(*r.ClientID) {
			errs = append(errs, validator.ValidationError{
				Field:   "client_id",
				Message: "client_id is required for invoice records",
			})
		}
	}

	if err := dateutil.ValidYearMonth(r.PeriodYear, r.PeriodMonth); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "period_month",
			Message: err.Error(),
		})
	}

	if amount, err := decimal.NewFromString(r.TotalAmount); err != nil || amount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "total_amount",
			Message: "total_amount must be a non-negative decimal",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRecordRequest struct {
	ID          string  `json:"-"`
	TotalAmount *string `json:"total_amount,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.TotalAmount != nil {
		if amount, err := decimal.NewFromString(*r.TotalAmount); err != nil || amount.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "total_amount",
				Message: "total_amount must be a non-negative decimal",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MarkPaidRequest settles a record. Payroll and expense records become paid,
// invoice records become received.
type MarkPaidRequest struct {
	ID          string  `json:"-"`
	PaymentDate *string `json:"payment_date,omitempty"` // DD.MM.YYYY or YYYY-MM-DD, defaults to today
}

func (r *MarkPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PaymentDate != nil && *r.PaymentDate != "" {
		if _, ok := dateutil.Parse(*r.PaymentDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "payment_date",
				Message: "payment_date must be in DD.MM.YYYY or YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	EmployeeID  *string `json:"employee_id,omitempty"`
	EmployeeName *string `json:"employee_name,omitempty"`
	ClientID    *string `json:"client_id,omitempty"`
	ClientName  *string `json:"client_name,omitempty"`
	PeriodYear  int     `json:"period_year"`
	PeriodMonth int     `json:"period_month"`
	TotalAmount string  `json:"total_amount"`
	DueDate     string  `json:"due_date"`      // DD.MM.YYYY, derived
	PaymentStatus string `json:"payment_status"` // derived, never persisted
	PaymentDate *string `json:"payment_date,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

type RecordFilter struct {
	Type        *string `json:"type,omitempty"`
	EmployeeID  *string `json:"employee_id,omitempty"`
	ClientID    *string `json:"client_id,omitempty"`
	PeriodYear  *int    `json:"period_year,omitempty"`
	PeriodMonth *int    `json:"period_month,omitempty"`
	Status      *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *RecordFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Type != nil && !validator.IsInSlice(*f.Type, validTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: cleaner_payroll, internal_payroll, client_invoice, expense",
		})
	}

	if f.Status != nil {
		validStatuses := []string{
			string(StatusPending), string(StatusOverdue),
			string(StatusPaid), string(StatusReceived),
		}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: pending, overdue, paid, received",
			})
		}
	}

	if f.PeriodMonth != nil && (*f.PeriodMonth < 1 || *f.PeriodMonth > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_month",
			Message: "period_month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListRecordsResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Records    []RecordResponse `json:"records"`
}
