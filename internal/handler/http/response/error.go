package response

import (
	"errors"
	"net/http"

	"github.com/brightserv/ops-backend-go/internal/domain/auth"
	"github.com/brightserv/ops-backend-go/internal/domain/cashflow"
	"github.com/brightserv/ops-backend-go/internal/domain/chat"
	"github.com/brightserv/ops-backend-go/internal/domain/cleaning"
	"github.com/brightserv/ops-backend-go/internal/domain/client"
	"github.com/brightserv/ops-backend-go/internal/domain/employee"
	"github.com/brightserv/ops-backend-go/internal/domain/site"
	"github.com/brightserv/ops-backend-go/internal/domain/task"
	"github.com/brightserv/ops-backend-go/internal/domain/user"
	"github.com/brightserv/ops-backend-go/internal/domain/worklocation"
	"github.com/brightserv/ops-backend-go/internal/domain/workrecord"
	"github.com/brightserv/ops-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, "User account is deactivated")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, err.Error())

	// Client and site domain errors
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, site.ErrSiteNotFound):
		NotFound(w, "Site not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNameExists):
		Conflict(w, "An employee with this display name already exists")

	// Work location domain errors
	case errors.Is(err, worklocation.ErrLocationNotFound):
		NotFound(w, "Work location not found")
	case errors.Is(err, worklocation.ErrNoApprovedLocation):
		BadRequest(w, "No approved work location for this employee and site", nil)
	case errors.Is(err, worklocation.ErrOutsideRadius):
		Forbidden(w, "You are outside the allowed working area")
	case errors.Is(err, worklocation.ErrAlreadyReviewed):
		Conflict(w, "Work location has already been approved or rejected")

	// Work record domain errors
	case errors.Is(err, workrecord.ErrRecordNotFound):
		NotFound(w, "Work record not found")
	case errors.Is(err, workrecord.ErrAlreadyClockedIn):
		Conflict(w, "You have already clocked in today")
	case errors.Is(err, workrecord.ErrNotClockedIn):
		Conflict(w, "You have no open session to clock out of")
	case errors.Is(err, workrecord.ErrAlreadyProcessed):
		Conflict(w, "Work record has already been approved or rejected")
	case errors.Is(err, workrecord.ErrDayAlreadyCovered):
		Conflict(w, "A record already exists for this employee and day")

	// Cashflow domain errors
	case errors.Is(err, cashflow.ErrRecordNotFound):
		NotFound(w, "Cashflow record not found")
	case errors.Is(err, cashflow.ErrAlreadySettled):
		Conflict(w, "Cashflow record is already settled")
	case errors.Is(err, cashflow.ErrPeriodExists):
		Conflict(w, "A record for this party and period already exists")

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrInvalidStatus):
		BadRequest(w, "Invalid board column", nil)
	case errors.Is(err, task.ErrMoveNotAllowed),
		errors.Is(err, task.ErrFieldEditForbidden):
		Forbidden(w, err.Error())

	// Chat domain errors
	case errors.Is(err, chat.ErrGroupNotFound):
		NotFound(w, "Chat group not found")
	case errors.Is(err, chat.ErrMessageNotFound):
		NotFound(w, "Chat message not found")
	case errors.Is(err, chat.ErrNotAMember):
		Forbidden(w, "You are not a member of this chat group")

	// Cleaning domain errors
	case errors.Is(err, cleaning.ErrEntryNotFound):
		NotFound(w, "Cleaning entry not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
