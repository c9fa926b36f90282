package post

import (
	"context"
	"testing"

	"social-service/internal/events"
	"social-service/internal/models"
	"social-service/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (PostService, storage.Storage, context.Context) {
	t.Helper()
	store := storage.NewMemoryStorage()
	return NewPostService(store, events.NoopPublisher{}), store, context.Background()
}

func TestCreatePost(t *testing.T) {
	svc, _, ctx := newTestService(t)

	t.Run("TextDefault", func(t *testing.T) {
		post, err := svc.CreatePost(ctx, 1, 1, &models.CreatePostRequest{Content: "hello"})
		require.NoError(t, err)
		assert.Equal(t, models.PostTypeText, post.PostType)
		assert.Empty(t, post.ImageURL)
		assert.Empty(t, post.VideoURL)
		assert.Empty(t, post.MusicURL)
	})

	t.Run("ImageRoutesToImageColumn", func(t *testing.T) {
		post, err := svc.CreatePost(ctx, 1, 1, &models.CreatePostRequest{
			Content:  "look",
			PostType: models.PostTypeImage,
			MediaURL: "http://cdn/pic.png",
		})
		require.NoError(t, err)
		assert.Equal(t, "http://cdn/pic.png", post.ImageURL)
		assert.Empty(t, post.VideoURL)
		assert.Empty(t, post.MusicURL)
	})

	t.Run("MusicRoutesToMusicColumn", func(t *testing.T) {
		post, err := svc.CreatePost(ctx, 1, 1, &models.CreatePostRequest{
			Content:  "listen",
			PostType: models.PostTypeMusic,
			MediaURL: "http://cdn/track.mp3",
		})
		require.NoError(t, err)
		assert.Equal(t, "http://cdn/track.mp3", post.MusicURL)
		assert.Empty(t, post.ImageURL)
	})

	t.Run("MediaTypeWithoutURL", func(t *testing.T) {
		for _, postType := range []string{models.PostTypeImage, models.PostTypeVideo, models.PostTypeMusic} {
			_, err := svc.CreatePost(ctx, 1, 1, &models.CreatePostRequest{Content: "x", PostType: postType})
			assert.ErrorIs(t, err, ErrMissingMedia, postType)
		}
	})

	t.Run("UnknownType", func(t *testing.T) {
		_, err := svc.CreatePost(ctx, 1, 1, &models.CreatePostRequest{Content: "x", PostType: "hologram"})
		assert.ErrorIs(t, err, ErrInvalidType)
	})
}

func TestToggleLike(t *testing.T) {
	svc, store, ctx := newTestService(t)

	user := &models.User{Username: "alice", Password: "h", DisplayName: "Alice"}
	require.NoError(t, store.CreateUser(ctx, user))
	post, err := svc.CreatePost(ctx, user.ID, 1, &models.CreatePostRequest{Content: "hello"})
	require.NoError(t, err)

	liked, err := svc.ToggleLike(ctx, user.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = svc.IsLiked(ctx, user.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = svc.ToggleLike(ctx, user.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	liked, err = svc.IsLiked(ctx, user.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestUpdateDeleteOwnership(t *testing.T) {
	svc, _, ctx := newTestService(t)

	post, err := svc.CreatePost(ctx, 1, 1, &models.CreatePostRequest{Content: "mine"})
	require.NoError(t, err)

	_, err = svc.UpdatePost(ctx, post.ID, 2, "stolen")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	deleted, err := svc.DeletePost(ctx, post.ID, 2)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = svc.DeletePost(ctx, post.ID, 1)
	require.NoError(t, err)
	assert.True(t, deleted)
}
