package site

import (
	"context"

	"github.com/brightserv/ops-backend-go/internal/domain/client"
	"github.com/brightserv/ops-backend-go/internal/domain/site"
)

type SiteServiceImpl struct {
	site.SiteRepository
	client.ClientRepository
}

func NewSiteService(siteRepository site.SiteRepository, clientRepository client.ClientRepository) site.SiteService {
	return &SiteServiceImpl{
		SiteRepository:   siteRepository,
		ClientRepository: clientRepository,
	}
}

// Create implements site.SiteService.
func (s *SiteServiceImpl) Create(ctx context.Context, req site.CreateSiteRequest) (site.Site, error) {
	if err := req.Validate(); err != nil {
		return site.Site{}, err
	}

	// The client must exist before a site can hang off it.
	if _, err := s.ClientRepository.GetByID(ctx, req.ClientID); err != nil {
		return site.Site{}, err
	}

	return s.SiteRepository.Create(ctx, site.Site{
		ClientID:  req.ClientID,
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Notes:     req.Notes,
		IsActive:  true,
	})
}

// Get implements site.SiteService.
func (s *SiteServiceImpl) Get(ctx context.Context, id string) (site.Site, error) {
	return s.SiteRepository.GetByID(ctx, id)
}

// List implements site.SiteService.
func (s *SiteServiceImpl) List(ctx context.Context, clientID *string, activeOnly bool) ([]site.Site, error) {
	return s.SiteRepository.List(ctx, clientID, activeOnly)
}

// Update implements site.SiteService.
func (s *SiteServiceImpl) Update(ctx context.Context, req site.UpdateSiteRequest) (site.Site, error) {
	if err := req.Validate(); err != nil {
		return site.Site{}, err
	}

	existing, err := s.SiteRepository.GetByID(ctx, req.ID)
	if err != nil {
		return site.Site{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Address != nil {
		existing.Address = *req.Address
	}
	if req.Latitude != nil {
		existing.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		existing.Longitude = req.Longitude
	}
	if req.Notes != nil {
		existing.Notes = req.Notes
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := s.SiteRepository.Update(ctx, existing); err != nil {
		return site.Site{}, err
	}

	return s.SiteRepository.GetByID(ctx, req.ID)
}

// Delete implements site.SiteService.
func (s *SiteServiceImpl) Delete(ctx context.Context, id string) error {
	return s.SiteRepository.Delete(ctx, id)
}
