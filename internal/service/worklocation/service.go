package worklocation

import (
	"context"
	"time"

	"github.com/brightserv/ops-backend-go/internal/domain/employee"
	"github.com/brightserv/ops-backend-go/internal/domain/site"
	"github.com/brightserv/ops-backend-go/internal/domain/user"
	"github.com/brightserv/ops-backend-go/internal/domain/worklocation"
	"github.com/brightserv/ops-backend-go/internal/pkg/authctx"
	"github.com/brightserv/ops-backend-go/internal/pkg/dateutil"
	"github.com/brightserv/ops-backend-go/internal/pkg/geo"
)

type WorkLocationServiceImpl struct {
	worklocation.WorkLocationRepository
	employee.EmployeeRepository
	site.SiteRepository
}

func NewWorkLocationService(
	locationRepository worklocation.WorkLocationRepository,
	employeeRepository employee.EmployeeRepository,
	siteRepository site.SiteRepository,
) worklocation.WorkLocationService {
	return &WorkLocationServiceImpl{
		WorkLocationRepository: locationRepository,
		EmployeeRepository:     employeeRepository,
		SiteRepository:         siteRepository,
	}
}

// Create implements worklocation.WorkLocationService. New locations always
// start pending; a manager has to approve them before they gate clock-ins.
func (s *WorkLocationServiceImpl) Create(ctx context.Context, req worklocation.CreateWorkLocationRequest) (worklocation.WorkLocationResponse, error) {
	if err := req.Validate(); err != nil {
		return worklocation.WorkLocationResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return worklocation.WorkLocationResponse{}, err
	}
	if _, err := s.SiteRepository.GetByID(ctx, req.SiteID); err != nil {
		return worklocation.WorkLocationResponse{}, err
	}

	created, err := s.WorkLocationRepository.Create(ctx, worklocation.WorkLocation{
		EmployeeID:            req.EmployeeID,
		SiteID:                req.SiteID,
		Latitude:              req.Latitude,
		Longitude:             req.Longitude,
		RadiusMeters:          req.RadiusMeters,
		AllowWorkFromAnywhere: req.AllowWorkFromAnywhere,
		Status:                worklocation.StatusPending,
	})
	if err != nil {
		return worklocation.WorkLocationResponse{}, err
	}

	return toResponse(created), nil
}

// Get implements worklocation.WorkLocationService.
func (s *WorkLocationServiceImpl) Get(ctx context.Context, id string) (worklocation.WorkLocationResponse, error) {
	l, err := s.WorkLocationRepository.GetByID(ctx, id)
	if err != nil {
		return worklocation.WorkLocationResponse{}, err
	}
	return toResponse(l), nil
}

// ListByEmployee implements worklocation.WorkLocationService.
func (s *WorkLocationServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]worklocation.WorkLocationResponse, error) {
	locations, err := s.WorkLocationRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(locations), nil
}

// ListPending implements worklocation.WorkLocationService.
func (s *WorkLocationServiceImpl) ListPending(ctx context.Context) ([]worklocation.WorkLocationResponse, error) {
	locations, err := s.WorkLocationRepository.ListByStatus(ctx, worklocation.StatusPending)
	if err != nil {
		return nil, err
	}
	return toResponses(locations), nil
}

// Approve implements worklocation.WorkLocationService.
func (s *WorkLocationServiceImpl) Approve(ctx context.Context, req worklocation.ApproveWorkLocationRequest) (worklocation.WorkLocationResponse, error) {
	return s.review(ctx, req.ID, worklocation.StatusApproved, nil)
}

// Reject implements worklocation.WorkLocationService.
func (s *WorkLocationServiceImpl) Reject(ctx context.Context, req worklocation.RejectWorkLocationRequest) (worklocation.WorkLocationResponse, error) {
	if err := req.Validate(); err != nil {
		return worklocation.WorkLocationResponse{}, err
	}
	return s.review(ctx, req.ID, worklocation.StatusRejected, &req.Reason)
}

func (s *WorkLocationServiceImpl) review(ctx context.Context, id string, status worklocation.Status, reason *string) (worklocation.WorkLocationResponse, error) {
	actor, ok := authctx.FromContext(ctx)
	if !ok || actor.Role != user.RoleAdmin {
		return worklocation.WorkLocationResponse{}, user.ErrAdminAccessRequired
	}

	l, err := s.WorkLocationRepository.GetByID(ctx, id)
	if err != nil {
		return worklocation.WorkLocationResponse{}, err
	}
	if l.Status != worklocation.StatusPending {
		return worklocation.WorkLocationResponse{}, worklocation.ErrAlreadyReviewed
	}

	now := time.Now()
	l.Status = status
	l.ReviewedBy = &actor.UserID
	l.ReviewedAt = &now
	l.RejectionReason = reason

	if err := s.WorkLocationRepository.Update(ctx, l); err != nil {
		return worklocation.WorkLocationResponse{}, err
	}

	updated, err := s.WorkLocationRepository.GetByID(ctx, id)
	if err != nil {
		return worklocation.WorkLocationResponse{}, err
	}

	return toResponse(updated), nil
}

// Delete implements worklocation.WorkLocationService.
func (s *WorkLocationServiceImpl) Delete(ctx context.Context, id string) error {
	return s.WorkLocationRepository.Delete(ctx, id)
}

// CheckLocation implements worklocation.WorkLocationService.
func (s *WorkLocationServiceImpl) CheckLocation(ctx context.Context, req worklocation.CheckLocationRequest) (worklocation.CheckLocationResponse, error) {
	if err := req.Validate(); err != nil {
		return worklocation.CheckLocationResponse{}, err
	}

	approved, err := s.WorkLocationRepository.GetApproved(ctx, req.EmployeeID, req.SiteID)
	if err != nil {
		return worklocation.CheckLocationResponse{}, err
	}
	if approved == nil {
		return worklocation.CheckLocationResponse{}, worklocation.ErrNoApprovedLocation
	}

	if approved.AllowWorkFromAnywhere {
		return worklocation.CheckLocationResponse{WithinRange: true}, nil
	}

	distance := geo.HaversineDistance(approved.Latitude, approved.Longitude, req.Latitude, req.Longitude)
	return worklocation.CheckLocationResponse{
		WithinRange:    distance <= approved.RadiusMeters,
		DistanceMeters: distance,
		RadiusMeters:   approved.RadiusMeters,
	}, nil
}

func toResponse(l worklocation.WorkLocation) worklocation.WorkLocationResponse {
	return worklocation.WorkLocationResponse{
		ID:                    l.ID,
		EmployeeID:            l.EmployeeID,
		EmployeeName:          l.EmployeeName,
		SiteID:                l.SiteID,
		SiteName:              l.SiteName,
		Latitude:              l.Latitude,
		Longitude:             l.Longitude,
		RadiusMeters:          l.RadiusMeters,
		AllowWorkFromAnywhere: l.AllowWorkFromAnywhere,
		Status:                string(l.Status),
		ReviewedBy:            l.ReviewedBy,
		RejectionReason:       l.RejectionReason,
		CreatedAt:             dateutil.Format(l.CreatedAt),
	}
}

func toResponses(locations []worklocation.WorkLocation) []worklocation.WorkLocationResponse {
	responses := make([]worklocation.WorkLocationResponse, 0, len(locations))
	for _, l := range locations {
		responses = append(responses, toResponse(l))
	}
	return responses
}
