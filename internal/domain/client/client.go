package client

import (
	"context"
	"errors"
	"time"

	"github.com/brightserv/ops-backend-go/internal/pkg/validator"
)

type Client struct {
	ID           string
	Name         string
	ContactName  *string
	ContactEmail *string
	ContactPhone *string
	BillingNotes *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

var ErrClientNotFound = errors.New("client not found")

type CreateClientRequest struct {
	Name         string  `json:"name"`
	ContactName  *string `json:"contact_name,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	BillingNotes *string `json:"billing_notes,omitempty"`
}

func (r *CreateClientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.ContactEmail != nil && *r.ContactEmail != "" && !validator.IsValidEmail(*r.ContactEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact_email",
			Message: "contact_email format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateClientRequest struct {
	ID           string  `json:"-"`
	Name         *string `json:"name,omitempty"`
	ContactName  *string `json:"contact_name,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	BillingNotes *string `json:"billing_notes,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

func (r *UpdateClientRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.ContactEmail != nil && *r.ContactEmail != "" && !validator.IsValidEmail(*r.ContactEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact_email",
			Message: "contact_email format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClientRepository interface {
	Create(ctx context.Context, c Client) (Client, error)
	GetByID(ctx context.Context, id string) (Client, error)
	List(ctx context.Context, activeOnly bool) ([]Client, error)
	Update(ctx context.Context, c Client) error
	Delete(ctx context.Context, id string) error
}

type ClientService interface {
	Create(ctx context.Context, req CreateClientRequest) (Client, error)
	Get(ctx context.Context, id string) (Client, error)
	List(ctx context.Context, activeOnly bool) ([]Client, error)
	Update(ctx context.Context, req UpdateClientRequest) (Client, error)
	Delete(ctx context.Context, id string) error
}
