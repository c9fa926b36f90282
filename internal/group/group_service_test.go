package group

import (
	"context"
	"testing"

	"social-service/internal/events"
	"social-service/internal/models"
	"social-service/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (GroupService, storage.Storage, context.Context) {
	t.Helper()
	store := storage.NewMemoryStorage()
	return NewGroupService(store, events.NoopPublisher{}), store, context.Background()
}

func TestCreateGroup(t *testing.T) {
	svc, store, ctx := newTestService(t)

	creator := &models.User{Username: "alice", Password: "h", DisplayName: "Alice"}
	require.NoError(t, store.CreateUser(ctx, creator))

	group, err := svc.CreateGroup(ctx, creator.ID, &models.CreateGroupRequest{
		Name:        "Tech",
		Description: "Technology discussions",
		Category:    "technology",
	})
	require.NoError(t, err)
	assert.NotZero(t, group.ID)

	members, err := svc.Members(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, creator.ID, members[0].UserID)
	assert.Equal(t, "admin", members[0].Role)
}

func TestChat(t *testing.T) {
	svc, store, ctx := newTestService(t)

	alice := &models.User{Username: "alice", Password: "h", DisplayName: "Alice"}
	require.NoError(t, store.CreateUser(ctx, alice))
	group, err := svc.CreateGroup(ctx, alice.ID, &models.CreateGroupRequest{
		Name: "Tech", Description: "d", Category: "c",
	})
	require.NoError(t, err)

	first, err := svc.SendChatMessage(ctx, alice.ID, group.ID, "hello")
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	_, err = svc.SendChatMessage(ctx, alice.ID, group.ID, "again")
	require.NoError(t, err)

	history, err := svc.ChatHistory(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	// Oldest first.
	assert.Equal(t, "hello", history[0].Message)
	assert.Equal(t, "again", history[1].Message)
}

func TestGetGroup(t *testing.T) {
	svc, store, ctx := newTestService(t)

	alice := &models.User{Username: "alice", Password: "h", DisplayName: "Alice"}
	require.NoError(t, store.CreateUser(ctx, alice))
	group, err := svc.CreateGroup(ctx, alice.ID, &models.CreateGroupRequest{
		Name: "Tech", Description: "d", Category: "c",
	})
	require.NoError(t, err)

	got, err := svc.GetGroup(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tech", got.Name)
	assert.Len(t, got.Members, 1)

	_, err = svc.GetGroup(ctx, 9999)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
