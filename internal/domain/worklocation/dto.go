package worklocation

import (
	"github.com/brightserv/ops-backend-go/internal/pkg/validator"
)

type CreateWorkLocationRequest struct {
	EmployeeID            string  `json:"employee_id"`
	SiteID                string  `json:"site_id"`
	Latitude              float64 `json:"latitude"`
	Longitude             float64 `json:"longitude"`
	RadiusMeters          float64 `json:"radius_meters"`
	AllowWorkFromAnywhere bool    `json:"allow_work_from_anywhere"`
}

func (r *CreateWorkLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{
			Field:   "site_id",
			Message: "site_id is required",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if !r.AllowWorkFromAnywhere && r.RadiusMeters <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "radius_meters",
			Message: "radius_meters must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ApproveWorkLocationRequest struct {
	ID string `json:"-"`
}

type RejectWorkLocationRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

func (r *RejectWorkLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "rejection reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkLocationResponse struct {
	ID                    string  `json:"id"`
	EmployeeID            string  `json:"employee_id"`
	EmployeeName          *string `json:"employee_name,omitempty"`
	SiteID                string  `json:"site_id"`
	SiteName              *string `json:"site_name,omitempty"`
	Latitude              float64 `json:"latitude"`
	Longitude             float64 `json:"longitude"`
	RadiusMeters          float64 `json:"radius_meters"`
	AllowWorkFromAnywhere bool    `json:"allow_work_from_anywhere"`
	Status                string  `json:"status"`
	ReviewedBy            *string `json:"reviewed_by,omitempty"`
	RejectionReason       *string `json:"rejection_reason,omitempty"`
	CreatedAt             string  `json:"created_at"`
}

// CheckLocationRequest asks whether a coordinate would pass the geofence for
// an employee/site pair without creating a work record.
type CheckLocationRequest struct {
	EmployeeID string  `json:"employee_id"`
	SiteID     string  `json:"site_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

func (r *CheckLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{
			Field:   "site_id",
			Message: "site_id is required",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
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

type CheckLocationResponse struct {
	WithinRange    bool    `json:"within_range"`
	DistanceMeters float64 `json:"distance_meters"`
	RadiusMeters   float64 `json:"radius_meters"`
}
