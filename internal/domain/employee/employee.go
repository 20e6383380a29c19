package employee

import (
	"context"
	"errors"
	"time"

	"github.com/brightserv/ops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID          string
	UserID      *string
	DisplayName string
	Position    string
	Phone       *string
	HourlyRate  decimal.Decimal
	HireDate    time.Time
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrNameExists       = errors.New("an employee with this display name already exists")
)

type CreateEmployeeRequest struct {
	UserID      *string `json:"user_id,omitempty"`
	DisplayName string  `json:"display_name"`
	Position    string  `json:"position"`
	Phone       *string `json:"phone,omitempty"`
	HourlyRate  string  `json:"hourly_rate"`
	HireDate    string  `json:"hire_date"` // YYYY-MM-DD
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DisplayName) {
		errs = append(errs, validator.ValidationError{
			Field:   "display_name",
			Message: "display_name is required",
		})
	}

	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}

	if rate, err := decimal.NewFromString(r.HourlyRate); err != nil || rate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must be a non-negative decimal",
		})
	}

	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID          string  `json:"-"`
	DisplayName *string `json:"display_name,omitempty"`
	Position    *string `json:"position,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	HourlyRate  *string `json:"hourly_rate,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DisplayName != nil && validator.IsEmpty(*r.DisplayName) {
		errs = append(errs, validator.ValidationError{
			Field:   "display_name",
			Message: "display_name must not be empty",
		})
	}

	if r.HourlyRate != nil {
		if rate, err := decimal.NewFromString(*r.HourlyRate); err != nil || rate.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "hourly_rate",
				Message: "hourly_rate must be a non-negative decimal",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	List(ctx context.Context, activeOnly bool) ([]Employee, error)
	Update(ctx context.Context, e Employee) error
	Delete(ctx context.Context, id string) error
}

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	Get(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, activeOnly bool) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id string) error
}
