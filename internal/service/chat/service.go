package chat

import (
	"context"

	"github.com/brightserv/ops-backend-go/internal/domain/chat"
	"github.com/brightserv/ops-backend-go/internal/domain/user"
	"github.com/brightserv/ops-backend-go/internal/pkg/authctx"
)

type ChatServiceImpl struct {
	groups   chat.GroupRepository
	messages chat.MessageRepository
}

func NewChatService(groupRepository chat.GroupRepository, messageRepository chat.MessageRepository) chat.ChatService {
	return &ChatServiceImpl{
		groups:   groupRepository,
		messages: messageRepository,
	}
}

// CreateGroup implements chat.ChatService. The creator is always a member.
func (s *ChatServiceImpl) CreateGroup(ctx context.Context, req chat.CreateGroupRequest) (chat.Group, error) {
	if err := req.Validate(); err != nil {
		return chat.Group{}, err
	}

	actor, ok := authctx.FromContext(ctx)
	if !ok {
		return chat.Group{}, user.ErrUserNotFound
	}

	members := req.MemberIDs
	found := false
	for _, id := range members {
		if id == actor.UserID {
			found = true
			break
		}
	}
	if !found {
		members = append(members, actor.UserID)
	}

	return s.groups.Create(ctx, chat.Group{
		Name:      req.Name,
		CreatedBy: actor.UserID,
		MemberIDs: members,
	})
}

// ListGroups implements chat.ChatService.
func (s *ChatServiceImpl) ListGroups(ctx context.Context) ([]chat.Group, error) {
	actor, ok := authctx.FromContext(ctx)
	if !ok {
		return nil, user.ErrUserNotFound
	}

	return s.groups.ListForUser(ctx, actor.UserID)
}

// UpdateMembers implements chat.ChatService.
func (s *ChatServiceImpl) UpdateMembers(ctx context.Context, groupID string, memberIDs []string) error {
	if _, err := s.memberGroup(ctx, groupID); err != nil {
		return err
	}

	return s.groups.UpdateMembers(ctx, groupID, memberIDs)
}

// DeleteGroup implements chat.ChatService.
func (s *ChatServiceImpl) DeleteGroup(ctx context.Context, groupID string) error {
	actor, ok := authctx.FromContext(ctx)
	if !ok {
		return user.ErrUserNotFound
	}

	group, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return err
	}

	// Only the creator or an admin may delete a group.
	if group.CreatedBy != actor.UserID && actor.Role != user.RoleAdmin {
		return chat.ErrNotAMember
	}

	return s.groups.Delete(ctx, groupID)
}

// PostMessage implements chat.ChatService.
func (s *ChatServiceImpl) PostMessage(ctx context.Context, req chat.PostMessageRequest) (chat.Message, error) {
	if err := req.Validate(); err != nil {
		return chat.Message{}, err
	}

	actor, err := s.memberGroup(ctx, req.GroupID)
	if err != nil {
		return chat.Message{}, err
	}

	return s.messages.Create(ctx, chat.Message{
		GroupID:  req.GroupID,
		SenderID: actor.UserID,
		Body:     req.Body,
	})
}

// ListMessages implements chat.ChatService.
func (s *ChatServiceImpl) ListMessages(ctx context.Context, filter chat.MessageFilter) ([]chat.Message, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.memberGroup(ctx, filter.GroupID); err != nil {
		return nil, err
	}

	return s.messages.List(ctx, filter)
}

// memberGroup checks the actor belongs to the group before any read or
// write against it.
func (s *ChatServiceImpl) memberGroup(ctx context.Context, groupID string) (authctx.Actor, error) {
	actor, ok := authctx.FromContext(ctx)
	if !ok {
		return authctx.Actor{}, user.ErrUserNotFound
	}

	group, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return authctx.Actor{}, err
	}
	if !group.HasMember(actor.UserID) && actor.Role != user.RoleAdmin {
		return authctx.Actor{}, chat.ErrNotAMember
	}

	return actor, nil
}
