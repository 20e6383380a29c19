package site

import (
	"context"
	"errors"
	"time"

	"github.com/brightserv/ops-backend-go/internal/pkg/validator"
)

// Site is a serviced location belonging to a client.
type Site struct {
	ID        string
	ClientID  string
	Name      string
	Address   string
	Latitude  *float64
	Longitude *float64
	Notes     *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	ClientName *string
}

var ErrSiteNotFound = errors.New("site not found")

type CreateSiteRequest struct {
	ClientID  string   `json:"client_id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
}

func (r *CreateSiteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client_id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address is required",
		})
	}

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateSiteRequest struct {
	ID        string   `json:"-"`
	Name      *string  `json:"name,omitempty"`
	Address   *string  `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
	IsActive  *bool    `json:"is_active,omitempty"`
}

func (r *UpdateSiteRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SiteRepository interface {
	Create(ctx context.Context, s Site) (Site, error)
	GetByID(ctx context.Context, id string) (Site, error)
	List(ctx context.Context, clientID *string, activeOnly bool) ([]Site, error)
	Update(ctx context.Context, s Site) error
	Delete(ctx context.Context, id string) error
}

type SiteService interface {
	Create(ctx context.Context, req CreateSiteRequest) (Site, error)
	Get(ctx context.Context, id string) (Site, error)
	List(ctx context.Context, clientID *string, activeOnly bool) ([]Site, error)
	Update(ctx context.Context, req UpdateSiteRequest) (Site, error)
	Delete(ctx context.Context, id string) error
}
