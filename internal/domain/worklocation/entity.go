package worklocation

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// WorkLocation is a geofenced working area assigned to an employee at a
// site. Only approved records (or allow-anywhere records) may gate a
// clock-in.
type WorkLocation struct {
	ID                    string
	EmployeeID            string
	SiteID                string
	Latitude              float64
	Longitude             float64
	RadiusMeters          float64
	AllowWorkFromAnywhere bool
	Status                Status
	ReviewedBy            *string
	ReviewedAt            *time.Time
	RejectionReason       *string
	CreatedAt             time.Time
	UpdatedAt             time.Time

	// DTO / Join
	EmployeeName *string
	SiteName     *string
}

// Usable reports whether this record may serve as a clock-in reference.
func (l *WorkLocation) Usable() bool {
	return l.Status == StatusApproved
}
