package report

import (
	"context"

	"github.com/brightserv/ops-backend-go/internal/pkg/validator"
)

// TimesheetRow is one employee's month on the timesheet screen: worked
// totals plus the derived payment status.
type TimesheetRow struct {
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	DaysWorked    int     `json:"days_worked"`
	LeaveDays     int     `json:"leave_days"`
	TotalHours    float64 `json:"total_hours"`
	PayrollAmount *string `json:"payroll_amount,omitempty"`
	DueDate       string  `json:"due_date"`       // DD.MM.YYYY
	PaymentStatus string  `json:"payment_status"` // derived, never persisted
}

type TimesheetRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *TimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if r.Year < 2000 || r.Year > 2200 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TimesheetResponse struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Rows  []TimesheetRow `json:"rows"`
}

type ReportService interface {
	Timesheet(ctx context.Context, req TimesheetRequest) (TimesheetResponse, error)

	// TimesheetWorkbook renders the monthly timesheet as an xlsx document.
	TimesheetWorkbook(ctx context.Context, req TimesheetRequest) ([]byte, string, error)
}
