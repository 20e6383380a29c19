package client

import (
	"context"

	"github.com/brightserv/ops-backend-go/internal/domain/client"
)

type ClientServiceImpl struct {
	client.ClientRepository
}

func NewClientService(clientRepository client.ClientRepository) client.ClientService {
	return &ClientServiceImpl{ClientRepository: clientRepository}
}

// Create implements client.ClientService.
func (s *ClientServiceImpl) Create(ctx context.Context, req client.CreateClientRequest) (client.Client, error) {
	if err := req.Validate(); err != nil {
		return client.Client{}, err
	}

	return s.ClientRepository.Create(ctx, client.Client{
		Name:         req.Name,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		BillingNotes: req.BillingNotes,
		IsActive:     true,
	})
}

// Get implements client.ClientService.
func (s *ClientServiceImpl) Get(ctx context.Context, id string) (client.Client, error) {
	return s.ClientRepository.GetByID(ctx, id)
}

// List implements client.ClientService.
func (s *ClientServiceImpl) List(ctx context.Context, activeOnly bool) ([]client.Client, error) {
	return s.ClientRepository.List(ctx, activeOnly)
}

// Update implements client.ClientService.
func (s *ClientServiceImpl) Update(ctx context.Context, req client.UpdateClientRequest) (client.Client, error) {
	if err := req.Validate(); err != nil {
		return client.Client{}, err
	}

	existing, err := s.ClientRepository.GetByID(ctx, req.ID)
	if err != nil {
		return client.Client{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.ContactName != nil {
		existing.ContactName = req.ContactName
	}
	if req.ContactEmail != nil {
		existing.ContactEmail = req.ContactEmail
	}
	if req.ContactPhone != nil {
		existing.ContactPhone = req.ContactPhone
	}
	if req.BillingNotes != nil {
		existing.BillingNotes = req.BillingNotes
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := s.ClientRepository.Update(ctx, existing); err != nil {
		return client.Client{}, err
	}

	return s.ClientRepository.GetByID(ctx, req.ID)
}

// Delete implements client.ClientService.
func (s *ClientServiceImpl) Delete(ctx context.Context, id string) error {
	return s.ClientRepository.Delete(ctx, id)
}
