package storage

import (
	"context"
	"testing"

	"social-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (Storage, context.Context) {
	t.Helper()
	return NewMemoryStorage(), context.Background()
}

func seedUser(t *testing.T, store Storage, ctx context.Context, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Password: "hashed", DisplayName: username}
	require.NoError(t, store.CreateUser(ctx, user))
	require.NotZero(t, user.ID)
	return user
}

func seedGroup(t *testing.T, store Storage, ctx context.Context, name string) *models.Group {
	t.Helper()
	group := &models.Group{Name: name, Description: "d", Category: "c"}
	require.NoError(t, store.CreateGroup(ctx, group))
	require.NotZero(t, group.ID)
	return group
}

func seedPost(t *testing.T, store Storage, ctx context.Context, userID, groupID uint) *models.Post {
	t.Helper()
	post := &models.Post{Content: "hello", UserID: userID, GroupID: groupID}
	require.NoError(t, store.CreatePost(ctx, post))
	require.NotZero(t, post.ID)
	return post
}

func TestUserLifecycle(t *testing.T) {
	store, ctx := newTestStorage(t)

	t.Run("CreateAndGet", func(t *testing.T) {
		user := seedUser(t, store, ctx, "alice")

		got, err := store.GetUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, "light", got.Theme)
		assert.Equal(t, "classic", got.ProfileLayout)

		byName, err := store.GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, user.ID, byName.ID)
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := store.GetUser(ctx, 9999)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = store.GetUserByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("UpdateProfile", func(t *testing.T) {
		user := seedUser(t, store, ctx, "bob")

		bio := "gopher"
		theme := "dark"
		updated, err := store.UpdateUser(ctx, user.ID, &models.UpdateProfileRequest{Bio: &bio, Theme: &theme})
		require.NoError(t, err)
		assert.Equal(t, "gopher", updated.Bio)
		assert.Equal(t, "dark", updated.Theme)
		// Untouched fields survive a partial update.
		assert.Equal(t, "bob", updated.DisplayName)

		_, err = store.UpdateUser(ctx, 9999, &models.UpdateProfileRequest{Bio: &bio})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGroupMembership(t *testing.T) {
	store, ctx := newTestStorage(t)
	alice := seedUser(t, store, ctx, "alice")
	bob := seedUser(t, store, ctx, "bob")
	group := seedGroup(t, store, ctx, "Tech")

	t.Run("JoinIsIdempotent", func(t *testing.T) {
		require.NoError(t, store.JoinGroup(ctx, alice.ID, group.ID))
		require.NoError(t, store.JoinGroup(ctx, alice.ID, group.ID))

		members, err := store.GetGroupMembers(ctx, group.ID)
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, alice.ID, members[0].UserID)
		assert.Equal(t, "member", members[0].Role)
		assert.Equal(t, "alice", members[0].Username)
	})

	t.Run("ExplicitRole", func(t *testing.T) {
		require.NoError(t, store.AddGroupMember(ctx, bob.ID, group.ID, "admin"))

		members, err := store.GetGroupMembers(ctx, group.ID)
		require.NoError(t, err)
		require.Len(t, members, 2)
		assert.Equal(t, "admin", members[1].Role)
	})

	t.Run("UserGroups", func(t *testing.T) {
		groups, err := store.GetUserGroups(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, group.ID, groups[0].ID)
	})

	t.Run("Leave", func(t *testing.T) {
		require.NoError(t, store.LeaveGroup(ctx, alice.ID, group.ID))

		members, err := store.GetGroupMembers(ctx, group.ID)
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, bob.ID, members[0].UserID)

		// Leaving a group you are not in is a no-op.
		require.NoError(t, store.LeaveGroup(ctx, alice.ID, group.ID))
	})
}

func TestGroupWithRelations(t *testing.T) {
	store, ctx := newTestStorage(t)
	alice := seedUser(t, store, ctx, "alice")
	group := seedGroup(t, store, ctx, "Tech")

	require.NoError(t, store.JoinGroup(ctx, alice.ID, group.ID))
	seedPost(t, store, ctx, alice.ID, group.ID)
	_, err := store.CreateChatMessage(ctx, alice.ID, group.ID, "hi all")
	require.NoError(t, err)

	got, err := store.GetGroupByID(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, group.Name, got.Name)
	assert.Len(t, got.Posts, 1)
	assert.Len(t, got.Members, 1)
	assert.Len(t, got.ChatMessages, 1)
	assert.Equal(t, "hi all", got.ChatMessages[0].Message)

	_, err = store.GetGroupByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostDefaults(t *testing.T) {
	store, ctx := newTestStorage(t)
	alice := seedUser(t, store, ctx, "alice")
	group := seedGroup(t, store, ctx, "Tech")

	post := &models.Post{Content: "first", UserID: alice.ID, GroupID: group.ID, LikeCount: 42}
	require.NoError(t, store.CreatePost(ctx, post))

	posts, err := store.GetGroupPosts(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, models.PostTypeText, posts[0].PostType)
	// The counter is owned by the store, never by the caller.
	assert.Equal(t, 0, posts[0].LikeCount)
}

func TestLikeCounter(t *testing.T) {
	store, ctx := newTestStorage(t)
	alice := seedUser(t, store, ctx, "alice")
	bob := seedUser(t, store, ctx, "bob")
	group := seedGroup(t, store, ctx, "Tech")
	post := seedPost(t, store, ctx, alice.ID, group.ID)

	likeCount := func() int {
		posts, err := store.GetGroupPosts(ctx, group.ID)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		return posts[0].LikeCount
	}

	t.Run("LikeIsIdempotent", func(t *testing.T) {
		require.NoError(t, store.LikePost(ctx, bob.ID, post.ID))
		require.NoError(t, store.LikePost(ctx, bob.ID, post.ID))
		assert.Equal(t, 1, likeCount())

		liked, err := store.IsPostLikedByUser(ctx, bob.ID, post.ID)
		require.NoError(t, err)
		assert.True(t, liked)
	})

	t.Run("DistinctUsersEachCount", func(t *testing.T) {
		require.NoError(t, store.LikePost(ctx, alice.ID, post.ID))
		assert.Equal(t, 2, likeCount())
	})

	t.Run("UnlikeIsIdempotent", func(t *testing.T) {
		require.NoError(t, store.UnlikePost(ctx, bob.ID, post.ID))
		require.NoError(t, store.UnlikePost(ctx, bob.ID, post.ID))
		assert.Equal(t, 1, likeCount())

		liked, err := store.IsPostLikedByUser(ctx, bob.ID, post.ID)
		require.NoError(t, err)
		assert.False(t, liked)
	})

	t.Run("LikeMissingPost", func(t *testing.T) {
		err := store.LikePost(ctx, bob.ID, 9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPostOwnership(t *testing.T) {
	store, ctx := newTestStorage(t)
	alice := seedUser(t, store, ctx, "alice")
	bob := seedUser(t, store, ctx, "bob")
	group := seedGroup(t, store, ctx, "Tech")
	post := seedPost(t, store, ctx, alice.ID, group.ID)

	t.Run("UpdateByOwner", func(t *testing.T) {
		updated, err := store.UpdatePost(ctx, post.ID, alice.ID, "edited")
		require.NoError(t, err)
		assert.Equal(t, "edited", updated.Content)
	})

	t.Run("UpdateByStranger", func(t *testing.T) {
		_, err := store.UpdatePost(ctx, post.ID, bob.ID, "hijacked")
		assert.ErrorIs(t, err, ErrNotFound)

		posts, err := store.GetUserPosts(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "edited", posts[0].Content)
	})

	t.Run("DeleteByStranger", func(t *testing.T) {
		deleted, err := store.DeletePost(ctx, post.ID, bob.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestDeletePostCascades(t *testing.T) {
	store, ctx := newTestStorage(t)
	alice := seedUser(t, store, ctx, "alice")
	bob := seedUser(t, store, ctx, "bob")
	group := seedGroup(t, store, ctx, "Tech")
	post := seedPost(t, store, ctx, alice.ID, group.ID)
	other := seedPost(t, store, ctx, bob.ID, group.ID)

	_, err := store.CreateComment(ctx, bob.ID, post.ID, "nice")
	require.NoError(t, err)
	_, err = store.CreateComment(ctx, bob.ID, other.ID, "keep me")
	require.NoError(t, err)
	require.NoError(t, store.LikePost(ctx, bob.ID, post.ID))
	_, err = store.AddReaction(ctx, bob.ID, post.ID, "🔥")
	require.NoError(t, err)

	deleted, err := store.DeletePost(ctx, post.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	comments, err := store.GetPostComments(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	reactions, err := store.GetPostReactions(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, reactions)

	liked, err := store.IsPostLikedByUser(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	// The sibling post is untouched.
	kept, err := store.GetPostComments(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1)

	// Deleting twice reports nothing to delete.
	deleted, err = store.DeletePost(ctx, post.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestComments(t *testing.T) {
	store, ctx := newTestStorage(t)
	alice := seedUser(t, store, ctx, "alice")
	bob := seedUser(t, store, ctx, "bob")
	group := seedGroup(t, store, ctx, "Tech")
	post := seedPost(t, store, ctx, alice.ID, group.ID)

	first, err := store.CreateComment(ctx, bob.ID, post.ID, "first")
	require.NoError(t, err)
	_, err = store.CreateComment(ctx, alice.ID, post.ID, "second")
	require.NoError(t, err)

	comments, err := store.GetPostComments(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	// Oldest first, with the author join filled in.
	assert.Equal(t, first.ID, comments[0].ID)
	assert.Equal(t, "bob", comments[0].Username)
	assert.Equal(t, "second", comments[1].Content)
}

func TestReactions(t *testing.T) {
	store, ctx := newTestStorage(t)
	alice := seedUser(t, store, ctx, "alice")
	bob := seedUser(t, store, ctx, "bob")
	group := seedGroup(t, store, ctx, "Tech")
	post := seedPost(t, store, ctx, alice.ID, group.ID)

	t.Run("SameEmojiOncePerUser", func(t *testing.T) {
		r1, err := store.AddReaction(ctx, bob.ID, post.ID, "👍")
		require.NoError(t, err)
		r2, err := store.AddReaction(ctx, bob.ID, post.ID, "👍")
		require.NoError(t, err)
		assert.Equal(t, r1.ID, r2.ID)

		reactions, err := store.GetPostReactions(ctx, post.ID)
		require.NoError(t, err)
		assert.Len(t, reactions, 1)
	})

	t.Run("DifferentEmojiCoexist", func(t *testing.T) {
		_, err := store.AddReaction(ctx, bob.ID, post.ID, "🎉")
		require.NoError(t, err)
		_, err = store.AddReaction(ctx, alice.ID, post.ID, "👍")
		require.NoError(t, err)

		reactions, err := store.GetPostReactions(ctx, post.ID)
		require.NoError(t, err)
		assert.Len(t, reactions, 3)
	})

	t.Run("RemoveExactTriple", func(t *testing.T) {
		require.NoError(t, store.RemoveReaction(ctx, bob.ID, post.ID, "👍"))

		reactions, err := store.GetPostReactions(ctx, post.ID)
		require.NoError(t, err)
		assert.Len(t, reactions, 2)

		// Removing an absent reaction is a no-op.
		require.NoError(t, store.RemoveReaction(ctx, bob.ID, post.ID, "👍"))
	})
}

func TestGroupFeed(t *testing.T) {
	store, ctx := newTestStorage(t)
	alice := seedUser(t, store, ctx, "alice")
	bob := seedUser(t, store, ctx, "bob")
	tech := seedGroup(t, store, ctx, "Tech")
	health := seedGroup(t, store, ctx, "Health")
	other := seedGroup(t, store, ctx, "Other")

	require.NoError(t, store.JoinGroup(ctx, alice.ID, tech.ID))
	require.NoError(t, store.JoinGroup(ctx, alice.ID, health.ID))

	inTech := seedPost(t, store, ctx, bob.ID, tech.ID)
	inHealth := seedPost(t, store, ctx, bob.ID, health.ID)
	seedPost(t, store, ctx, bob.ID, other.ID)

	feed, err := store.GetUserGroupPosts(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	// Newest first, only from joined groups.
	assert.Equal(t, inHealth.ID, feed[0].ID)
	assert.Equal(t, inTech.ID, feed[1].ID)
}

func TestFriendRequestFlow(t *testing.T) {
	store, ctx := newTestStorage(t)
	alice := seedUser(t, store, ctx, "alice")
	bob := seedUser(t, store, ctx, "bob")
	carol := seedUser(t, store, ctx, "carol")

	t.Run("SendAndList", func(t *testing.T) {
		require.NoError(t, store.SendFriendRequest(ctx, alice.ID, bob.ID))
		require.NoError(t, store.SendFriendRequest(ctx, alice.ID, bob.ID))

		requests, err := store.GetFriendRequests(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, requests, 1)
		assert.Equal(t, alice.ID, requests[0].SenderID)
		assert.Equal(t, models.FriendRequestPending, requests[0].Status)
		assert.Equal(t, "alice", requests[0].Username)
	})

	t.Run("AcceptIsReciprocal", func(t *testing.T) {
		require.NoError(t, store.AcceptFriendRequest(ctx, alice.ID, bob.ID))

		aliceFriends, err := store.GetFriends(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, aliceFriends, 1)
		assert.Equal(t, bob.ID, aliceFriends[0].ID)

		bobFriends, err := store.GetFriends(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, bobFriends, 1)
		assert.Equal(t, alice.ID, bobFriends[0].ID)
	})

	t.Run("AcceptTwiceFails", func(t *testing.T) {
		err := store.AcceptFriendRequest(ctx, alice.ID, bob.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Reject", func(t *testing.T) {
		require.NoError(t, store.SendFriendRequest(ctx, carol.ID, alice.ID))
		require.NoError(t, store.RejectFriendRequest(ctx, carol.ID, alice.ID))

		// A rejected request never becomes a friendship.
		friends, err := store.GetFriends(ctx, carol.ID)
		require.NoError(t, err)
		assert.Empty(t, friends)

		err = store.AcceptFriendRequest(ctx, carol.ID, alice.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("AcceptMissing", func(t *testing.T) {
		err := store.AcceptFriendRequest(ctx, carol.ID, bob.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestFollowers(t *testing.T) {
	store, ctx := newTestStorage(t)
	alice := seedUser(t, store, ctx, "alice")
	bob := seedUser(t, store, ctx, "bob")

	t.Run("FollowIsOneDirectional", func(t *testing.T) {
		require.NoError(t, store.FollowUser(ctx, alice.ID, bob.ID))
		require.NoError(t, store.FollowUser(ctx, alice.ID, bob.ID))

		following, err := store.IsFollowing(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.True(t, following)

		reverse, err := store.IsFollowing(ctx, bob.ID, alice.ID)
		require.NoError(t, err)
		assert.False(t, reverse)

		followers, err := store.GetFollowers(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, followers, 1)
		assert.Equal(t, alice.ID, followers[0].ID)

		out, err := store.GetFollowing(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, bob.ID, out[0].ID)
	})

	t.Run("Unfollow", func(t *testing.T) {
		require.NoError(t, store.UnfollowUser(ctx, alice.ID, bob.ID))

		following, err := store.IsFollowing(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.False(t, following)

		// Unfollowing again is a no-op.
		require.NoError(t, store.UnfollowUser(ctx, alice.ID, bob.ID))
	})
}

func TestUserStats(t *testing.T) {
	store, ctx := newTestStorage(t)
	alice := seedUser(t, store, ctx, "alice")
	bob := seedUser(t, store, ctx, "bob")
	carol := seedUser(t, store, ctx, "carol")
	group := seedGroup(t, store, ctx, "Tech")

	seedPost(t, store, ctx, alice.ID, group.ID)
	seedPost(t, store, ctx, alice.ID, group.ID)

	require.NoError(t, store.SendFriendRequest(ctx, bob.ID, alice.ID))
	require.NoError(t, store.AcceptFriendRequest(ctx, bob.ID, alice.ID))

	require.NoError(t, store.FollowUser(ctx, carol.ID, alice.ID))
	require.NoError(t, store.FollowUser(ctx, alice.ID, bob.ID))

	stats, err := store.GetUserStats(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.PostCount)
	assert.Equal(t, int64(1), stats.FriendCount)
	assert.Equal(t, int64(1), stats.FollowerCount)
	assert.Equal(t, int64(1), stats.FollowingCount)
}
