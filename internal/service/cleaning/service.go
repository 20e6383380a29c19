package cleaning

import (
	"context"
	"fmt"
	"time"

	"github.com/brightserv/ops-backend-go/internal/domain/cleaning"
	"github.com/brightserv/ops-backend-go/internal/domain/employee"
	"github.com/brightserv/ops-backend-go/internal/domain/site"
)

type EntryServiceImpl struct {
	cleaning.EntryRepository
	site.SiteRepository
	employee.EmployeeRepository
}

func NewEntryService(
	entryRepository cleaning.EntryRepository,
	siteRepository site.SiteRepository,
	employeeRepository employee.EmployeeRepository,
) cleaning.EntryService {
	return &EntryServiceImpl{
		EntryRepository:    entryRepository,
		SiteRepository:     siteRepository,
		EmployeeRepository: employeeRepository,
	}
}

// Create implements cleaning.EntryService.
func (s *EntryServiceImpl) Create(ctx context.Context, req cleaning.CreateEntryRequest) (cleaning.Entry, error) {
	if err := req.Validate(); err != nil {
		return cleaning.Entry{}, err
	}

	if _, err := s.SiteRepository.GetByID(ctx, req.SiteID); err != nil {
		return cleaning.Entry{}, err
	}
	if _, err := s.EmployeeRepository.GetByID(ctx, req.CompletedBy); err != nil {
		return cleaning.Entry{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return cleaning.Entry{}, fmt.Errorf("failed to parse entry date: %w", err)
	}

	return s.EntryRepository.Create(ctx, cleaning.Entry{
		SiteID:      req.SiteID,
		Date:        date,
		Areas:       req.Areas,
		Notes:       req.Notes,
		CompletedBy: req.CompletedBy,
	})
}

// Get implements cleaning.EntryService.
func (s *EntryServiceImpl) Get(ctx context.Context, id string) (cleaning.Entry, error) {
	return s.EntryRepository.GetByID(ctx, id)
}

// List implements cleaning.EntryService.
func (s *EntryServiceImpl) List(ctx context.Context, filter cleaning.EntryFilter) ([]cleaning.Entry, error) {
	return s.EntryRepository.List(ctx, filter)
}

// Update implements cleaning.EntryService.
func (s *EntryServiceImpl) Update(ctx context.Context, req cleaning.UpdateEntryRequest) (cleaning.Entry, error) {
	if err := req.Validate(); err != nil {
		return cleaning.Entry{}, err
	}

	existing, err := s.EntryRepository.GetByID(ctx, req.ID)
	if err != nil {
		return cleaning.Entry{}, err
	}

	if req.Areas != nil {
		existing.Areas = *req.Areas
	}
	if req.Notes != nil {
		existing.Notes = req.Notes
	}

	if err := s.EntryRepository.Update(ctx, existing); err != nil {
		return cleaning.Entry{}, err
	}

	return s.EntryRepository.GetByID(ctx, req.ID)
}

// Delete implements cleaning.EntryService.
func (s *EntryServiceImpl) Delete(ctx context.Context, id string) error {
	return s.EntryRepository.Delete(ctx, id)
}
