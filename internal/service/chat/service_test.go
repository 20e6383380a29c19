package chat

import (
	"context"
	"testing"

	"github.com/brightserv/ops-backend-go/internal/domain/chat"
	"github.com/brightserv/ops-backend-go/internal/domain/user"
	"github.com/brightserv/ops-backend-go/internal/pkg/authctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGroupRepo struct {
	chat.GroupRepository
	groups map[string]chat.Group
}

func (f *fakeGroupRepo) Create(ctx context.Context, g chat.Group) (chat.Group, error) {
	g.ID = "group-1"
	f.groups[g.ID] = g
	return g, nil
}

func (f *fakeGroupRepo) GetByID(ctx context.Context, id string) (chat.Group, error) {
	g, ok := f.groups[id]
	if !ok {
		return chat.Group{}, chat.ErrGroupNotFound
	}
	return g, nil
}

func (f *fakeGroupRepo) Delete(ctx context.Context, id string) error {
	delete(f.groups, id)
	return nil
}

type fakeMessageRepo struct {
	chat.MessageRepository
	posted []chat.Message
}

func (f *fakeMessageRepo) Create(ctx context.Context, m chat.Message) (chat.Message, error) {
	m.ID = "msg-1"
	f.posted = append(f.posted, m)
	return m, nil
}

func (f *fakeMessageRepo) List(ctx context.Context, filter chat.MessageFilter) ([]chat.Message, error) {
	return f.posted, nil
}

func actorCtx(userID string, role user.Role) context.Context {
	return authctx.WithActor(context.Background(), authctx.Actor{UserID: userID, Role: role})
}

func newTestService() (chat.ChatService, *fakeGroupRepo, *fakeMessageRepo) {
	groups := &fakeGroupRepo{groups: map[string]chat.Group{
		"group-1": {
			ID:        "group-1",
			Name:      "morning shift",
			CreatedBy: "user-1",
			MemberIDs: []string{"user-1", "user-2"},
		},
	}}
	messages := &fakeMessageRepo{}
	return NewChatService(groups, messages), groups, messages
}

func TestPostMessageRequiresMembership(t *testing.T) {
	svc, _, messages := newTestService()

	_, err := svc.PostMessage(actorCtx("user-3", user.RoleCleaner), chat.PostMessageRequest{
		GroupID: "group-1",
		Body:    "hello",
	})
	assert.ErrorIs(t, err, chat.ErrNotAMember)
	assert.Empty(t, messages.posted)

	msg, err := svc.PostMessage(actorCtx("user-2", user.RoleCleaner), chat.PostMessageRequest{
		GroupID: "group-1",
		Body:    "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-2", msg.SenderID)
}

func TestPostMessageAdminBypassesMembership(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.PostMessage(actorCtx("admin-1", user.RoleAdmin), chat.PostMessageRequest{
		GroupID: "group-1",
		Body:    "announcement",
	})
	assert.NoError(t, err)
}

func TestListMessagesRequiresMembership(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ListMessages(actorCtx("user-3", user.RoleCleaner), chat.MessageFilter{GroupID: "group-1"})
	assert.ErrorIs(t, err, chat.ErrNotAMember)
}

func TestCreateGroupAddsCreator(t *testing.T) {
	svc, groups, _ := newTestService()

	created, err := svc.CreateGroup(actorCtx("user-5", user.RoleManager), chat.CreateGroupRequest{
		Name:      "night shift",
		MemberIDs: []string{"user-6"},
	})
	require.NoError(t, err)

	assert.Contains(t, created.MemberIDs, "user-5")
	assert.Equal(t, "user-5", groups.groups[created.ID].CreatedBy)
}

func TestDeleteGroupCreatorOnly(t *testing.T) {
	svc, groups, _ := newTestService()

	err := svc.DeleteGroup(actorCtx("user-2", user.RoleCleaner), "group-1")
	assert.ErrorIs(t, err, chat.ErrNotAMember)

	err = svc.DeleteGroup(actorCtx("user-1", user.RoleCleaner), "group-1")
	require.NoError(t, err)
	assert.NotContains(t, groups.groups, "group-1")
}
