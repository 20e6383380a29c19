package workrecord

import "time"

type ApprovalStatus string

const (
	ApprovalWaiting  ApprovalStatus = "waiting_approval"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// WorkRecord is one employee's attendance for one calendar day.
type WorkRecord struct {
	ID                string
	EmployeeID        string
	SiteID            *string
	Date              time.Time
	ClockIn           *time.Time
	ClockOut          *time.Time
	MinutesWorked     *int
	IsLeave           bool
	LeaveType         *string
	ApprovalStatus    ApprovalStatus
	ClockInLatitude   *float64
	ClockInLongitude  *float64
	ClockOutLatitude  *float64
	ClockOutLongitude *float64
	RejectionReason   *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// DTO / Join
	EmployeeName *string
	SiteName     *string
}

// Payable reports whether the record contributes to payment totals: the
// session must be closed and the day must not be leave.
func (w *WorkRecord) Payable() bool {
	return w.ClockOut != nil && !w.IsLeave
}

// HoursWorked converts the stored minutes to fractional hours.
func (w *WorkRecord) HoursWorked() float64 {
	if w.MinutesWorked == nil {
		return 0
	}
	return float64(*w.MinutesWorked) / 60.0
}
