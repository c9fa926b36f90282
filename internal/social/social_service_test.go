package social

import (
	"context"
	"testing"

	"social-service/internal/models"
	"social-service/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (SocialService, context.Context, uint, uint) {
	t.Helper()
	store := storage.NewMemoryStorage()
	ctx := context.Background()

	alice := &models.User{Username: "alice", Password: "h", DisplayName: "Alice"}
	require.NoError(t, store.CreateUser(ctx, alice))
	bob := &models.User{Username: "bob", Password: "h", DisplayName: "Bob"}
	require.NoError(t, store.CreateUser(ctx, bob))

	return NewSocialService(store), ctx, alice.ID, bob.ID
}

func TestFriendFlow(t *testing.T) {
	svc, ctx, alice, bob := newTestService(t)

	t.Run("SelfRequestRejected", func(t *testing.T) {
		err := svc.SendFriendRequest(ctx, alice, alice)
		assert.ErrorIs(t, err, ErrSelfRelation)
	})

	t.Run("RequestAndAccept", func(t *testing.T) {
		require.NoError(t, svc.SendFriendRequest(ctx, alice, bob))

		requests, err := svc.FriendRequests(ctx, bob)
		require.NoError(t, err)
		require.Len(t, requests, 1)
		assert.Equal(t, "alice", requests[0].Username)

		require.NoError(t, svc.AcceptFriendRequest(ctx, alice, bob))

		friends, err := svc.Friends(ctx, alice)
		require.NoError(t, err)
		require.Len(t, friends, 1)
		assert.Equal(t, "bob", friends[0].Username)

		friends, err = svc.Friends(ctx, bob)
		require.NoError(t, err)
		require.Len(t, friends, 1)
		assert.Equal(t, "alice", friends[0].Username)
	})

	t.Run("AcceptWithoutRequest", func(t *testing.T) {
		err := svc.AcceptFriendRequest(ctx, bob, alice)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestFollowFlow(t *testing.T) {
	svc, ctx, alice, bob := newTestService(t)

	t.Run("SelfFollowRejected", func(t *testing.T) {
		err := svc.Follow(ctx, alice, alice)
		assert.ErrorIs(t, err, ErrSelfRelation)
	})

	t.Run("FollowAndUnfollow", func(t *testing.T) {
		require.NoError(t, svc.Follow(ctx, alice, bob))

		following, err := svc.IsFollowing(ctx, alice, bob)
		require.NoError(t, err)
		assert.True(t, following)

		followers, err := svc.Followers(ctx, bob)
		require.NoError(t, err)
		require.Len(t, followers, 1)
		assert.Equal(t, "alice", followers[0].Username)

		require.NoError(t, svc.Unfollow(ctx, alice, bob))
		following, err = svc.IsFollowing(ctx, alice, bob)
		require.NoError(t, err)
		assert.False(t, following)
	})
}

func TestStats(t *testing.T) {
	svc, ctx, alice, bob := newTestService(t)

	require.NoError(t, svc.Follow(ctx, bob, alice))
	require.NoError(t, svc.SendFriendRequest(ctx, bob, alice))
	require.NoError(t, svc.AcceptFriendRequest(ctx, bob, alice))

	stats, err := svc.Stats(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.PostCount)
	assert.Equal(t, int64(1), stats.FriendCount)
	assert.Equal(t, int64(1), stats.FollowerCount)
	assert.Equal(t, int64(0), stats.FollowingCount)
}
