package task

import (
	"time"

	"github.com/brightserv/ops-backend-go/internal/domain/user"
)

// Board column a task sits in.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type Task struct {
	ID          string
	Title       string
	Description *string
	SiteID      *string
	AssigneeID  *string
	Status      Status
	Position    int // ordering within the board column
	DueDate     *time.Time
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	AssigneeName *string
	SiteName     *string
}

// CanMove reports whether an actor may drag this task to another column.
// Cleaners may only move tasks assigned to their own employee record;
// managers and admins may move anything.
func (t *Task) CanMove(role user.Role, employeeID *string) bool {
	if role == user.RoleAdmin || role == user.RoleManager {
		return true
	}
	return t.AssigneeID != nil && employeeID != nil && *t.AssigneeID == *employeeID
}

// CanEditFields reports whether an actor may change fields beyond status and
// position. Field edits are manager-gated; cleaners get drag-and-drop only.
func CanEditFields(role user.Role) bool {
	return role == user.RoleAdmin || role == user.RoleManager
}
