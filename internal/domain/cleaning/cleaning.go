package cleaning

import (
	"context"
	"errors"
	"time"

	"github.com/brightserv/ops-backend-go/internal/pkg/validator"
)

// Entry is one cleaning-tracker line: which areas were done at a site on a
// given day and by whom.
type Entry struct {
	ID          string
	SiteID      string
	Date        time.Time
	Areas       []string
	Notes       *string
	CompletedBy string // employee ID
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	SiteName        *string
	CompletedByName *string
}

var ErrEntryNotFound = errors.New("cleaning entry not found")

type CreateEntryRequest struct {
	SiteID      string   `json:"site_id"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Areas       []string `json:"areas"`
	Notes       *string  `json:"notes,omitempty"`
	CompletedBy string   `json:"completed_by"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{
			Field:   "site_id",
			Message: "site_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(r.Areas) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "areas",
			Message: "at least one cleaned area is required",
		})
	}

	if validator.IsEmpty(r.CompletedBy) {
		errs = append(errs, validator.ValidationError{
			Field:   "completed_by",
			Message: "completed_by is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEntryRequest struct {
	ID    string    `json:"-"`
	Areas *[]string `json:"areas,omitempty"`
	Notes *string   `json:"notes,omitempty"`
}

func (r *UpdateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Areas != nil && len(*r.Areas) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "areas",
			Message: "areas must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EntryFilter struct {
	SiteID    *string `json:"site_id,omitempty"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

type EntryRepository interface {
	Create(ctx context.Context, e Entry) (Entry, error)
	GetByID(ctx context.Context, id string) (Entry, error)
	List(ctx context.Context, filter EntryFilter) ([]Entry, error)
	Update(ctx context.Context, e Entry) error
	Delete(ctx context.Context, id string) error
}

type EntryService interface {
	Create(ctx context.Context, req CreateEntryRequest) (Entry, error)
	Get(ctx context.Context, id string) (Entry, error)
	List(ctx context.Context, filter EntryFilter) ([]Entry, error)
	Update(ctx context.Context, req UpdateEntryRequest) (Entry, error)
	Delete(ctx context.Context, id string) error
}
