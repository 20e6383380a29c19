package worklocation

import "context"

type WorkLocationRepository interface {
	Create(ctx context.Context, l WorkLocation) (WorkLocation, error)
	GetByID(ctx context.Context, id string) (WorkLocation, error)

	// GetApproved returns the approved location for an employee/site pair,
	// if any. Pending and rejected records are never returned.
	GetApproved(ctx context.Context, employeeID, siteID string) (*WorkLocation, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]WorkLocation, error)
	ListByStatus(ctx context.Context, status Status) ([]WorkLocation, error)
	Update(ctx context.Context, l WorkLocation) error
	Delete(ctx context.Context, id string) error
}

type WorkLocationService interface {
	Create(ctx context.Context, req CreateWorkLocationRequest) (WorkLocationResponse, error)
	Get(ctx context.Context, id string) (WorkLocationResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]WorkLocationResponse, error)
	ListPending(ctx context.Context) ([]WorkLocationResponse, error)
	Approve(ctx context.Context, req ApproveWorkLocationRequest) (WorkLocationResponse, error)
	Reject(ctx context.Context, req RejectWorkLocationRequest) (WorkLocationResponse, error)
	Delete(ctx context.Context, id string) error

	// CheckLocation validates a candidate coordinate against the approved
	// geofence without side effects.
	CheckLocation(ctx context.Context, req CheckLocationRequest) (CheckLocationResponse, error)
}
