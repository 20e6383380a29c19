package chat

import (
	"context"
	"errors"
	"time"

	"github.com/brightserv/ops-backend-go/internal/pkg/validator"
)

type Group struct {
	ID        string
	Name      string
	CreatedBy string
	MemberIDs []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasMember reports whether a user belongs to the group.
func (g *Group) HasMember(userID string) bool {
	for _, id := range g.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

type Message struct {
	ID        string
	GroupID   string
	SenderID  string
	Body      string
	CreatedAt time.Time

	// DTO / Join
	SenderEmail *string
}

var (
	ErrGroupNotFound   = errors.New("chat group not found")
	ErrMessageNotFound = errors.New("chat message not found")
	ErrNotAMember      = errors.New("you are not a member of this chat group")
)

type CreateGroupRequest struct {
	Name      string   `json:"name"`
	MemberIDs []string `json:"member_ids"`
}

func (r *CreateGroupRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(r.MemberIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "member_ids",
			Message: "at least one member is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PostMessageRequest struct {
	GroupID string `json:"-"`
	Body    string `json:"body"`
}

func (r *PostMessageRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "message body is required",
		})
	}
	if len(r.Body) > 4000 {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "message body must not exceed 4000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MessageFilter struct {
	GroupID string `json:"-"`
	// Before returns messages older than this message ID (newest first
	// pagination).
	Before *string `json:"before,omitempty"`
	Limit  int     `json:"limit"`
}

func (f *MessageFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 50 // Default limit
	}
	if f.Limit > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 200",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type GroupRepository interface {
	Create(ctx context.Context, g Group) (Group, error)
	GetByID(ctx context.Context, id string) (Group, error)
	ListForUser(ctx context.Context, userID string) ([]Group, error)
	UpdateMembers(ctx context.Context, groupID string, memberIDs []string) error
	Delete(ctx context.Context, id string) error
}

type MessageRepository interface {
	Create(ctx context.Context, m Message) (Message, error)
	List(ctx context.Context, filter MessageFilter) ([]Message, error)
}

type ChatService interface {
	CreateGroup(ctx context.Context, req CreateGroupRequest) (Group, error)
	ListGroups(ctx context.Context) ([]Group, error)
	UpdateMembers(ctx context.Context, groupID string, memberIDs []string) error
	DeleteGroup(ctx context.Context, groupID string) error
	PostMessage(ctx context.Context, req PostMessageRequest) (Message, error)
	ListMessages(ctx context.Context, filter MessageFilter) ([]Message, error)
}
