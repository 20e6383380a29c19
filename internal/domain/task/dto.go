package task

import (
	"github.com/brightserv/ops-backend-go/internal/pkg/validator"
)

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	SiteID      *string `json:"site_id,omitempty"`
	AssigneeID  *string `json:"assignee_id,omitempty"`
	Status      string  `json:"status"`
	DueDate     *string `json:"due_date,omitempty"` // YYYY-MM-DD
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if r.Status == "" {
		r.Status = string(StatusTodo) // Default column
	}
	if !ValidStatus(Status(r.Status)) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: todo, in_progress, done",
		})
	}

	if r.DueDate != nil && *r.DueDate != "" {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "due_date",
				Message: "due_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTaskRequest struct {
	ID          string  `json:"-"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	SiteID      *string `json:"site_id,omitempty"`
	AssigneeID  *string `json:"assignee_id,omitempty"`
	DueDate     *string `json:"due_date,omitempty"` // YYYY-MM-DD
}

func (r *UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not be empty",
		})
	}

	if r.DueDate != nil && *r.DueDate != "" {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "due_date",
				Message: "due_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MoveTaskRequest is the drag-and-drop mutation: target column and position
// within it.
type MoveTaskRequest struct {
	ID       string `json:"-"`
	Status   string `json:"status"`
	Position int    `json:"position"`
}

func (r *MoveTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidStatus(Status(r.Status)) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: todo, in_progress, done",
		})
	}

	if r.Position < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TaskResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	SiteID       *string `json:"site_id,omitempty"`
	SiteName     *string `json:"site_name,omitempty"`
	AssigneeID   *string `json:"assignee_id,omitempty"`
	AssigneeName *string `json:"assignee_name,omitempty"`
	Status       string  `json:"status"`
	Position     int     `json:"position"`
	DueDate      *string `json:"due_date,omitempty"` // DD.MM.YYYY
	CreatedBy    string  `json:"created_by"`
	CreatedAt    string  `json:"created_at"`
}

// BoardResponse groups tasks by column, ordered by position, ready for the
// Kanban screen.
type BoardResponse struct {
	Todo       []TaskResponse `json:"todo"`
	InProgress []TaskResponse `json:"in_progress"`
	Done       []TaskResponse `json:"done"`
}
