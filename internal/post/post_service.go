package post

import (
	"context"
	"errors"
	"log/slog"

	"social-service/internal/events"
	"social-service/internal/models"
	"social-service/internal/storage"
)

// Custom errors
var (
	ErrMissingMedia = errors.New("media url is required for this post type")
	ErrInvalidType  = errors.New("unknown post type")
)

type PostService interface {
	CreatePost(ctx context.Context, userID, groupID uint, req *models.CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, postID, userID uint, content string) (*models.Post, error)
	DeletePost(ctx context.Context, postID, userID uint) (bool, error)
	Comments(ctx context.Context, postID uint) ([]models.CommentResponse, error)
	AddComment(ctx context.Context, userID, postID uint, content string) (*models.Comment, error)
	ToggleLike(ctx context.Context, userID, postID uint) (bool, error)
	IsLiked(ctx context.Context, userID, postID uint) (bool, error)
	Reactions(ctx context.Context, postID uint) ([]models.Reaction, error)
	AddReaction(ctx context.Context, userID, postID uint, emoji string) (*models.Reaction, error)
	RemoveReaction(ctx context.Context, userID, postID uint, emoji string) error
	UserPosts(ctx context.Context, userID uint) ([]models.Post, error)
	UserGroupPosts(ctx context.Context, userID uint) ([]models.Post, error)
}

type postService struct {
	store     storage.PostStore
	publisher events.Publisher
}

func NewPostService(store storage.PostStore, publisher events.Publisher) PostService {
	return &postService{
		store:     store,
		publisher: publisher,
	}
}

// CreatePost validates the media URL against the post type and routes it
// to the matching column; exactly one media column ends up populated.
func (s *postService) CreatePost(ctx context.Context, userID, groupID uint, req *models.CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		Content:  req.Content,
		UserID:   userID,
		GroupID:  groupID,
		PostType: req.PostType,
	}

	switch req.PostType {
	case "", models.PostTypeText:
		post.PostType = models.PostTypeText
	case models.PostTypeImage:
		if req.MediaURL == "" {
			return nil, ErrMissingMedia
		}
		post.ImageURL = req.MediaURL
	case models.PostTypeVideo:
		if req.MediaURL == "" {
			return nil, ErrMissingMedia
		}
		post.VideoURL = req.MediaURL
	case models.PostTypeMusic:
		if req.MediaURL == "" {
			return nil, ErrMissingMedia
		}
		post.MusicURL = req.MediaURL
	default:
		return nil, ErrInvalidType
	}

	if err := s.store.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	if err := s.publisher.PostCreated(post); err != nil {
		slog.Warn("Failed to publish post created event", "post_id", post.ID, "error", err)
	}
	return post, nil
}

func (s *postService) UpdatePost(ctx context.Context, postID, userID uint, content string) (*models.Post, error) {
	return s.store.UpdatePost(ctx, postID, userID, content)
}

func (s *postService) DeletePost(ctx context.Context, postID, userID uint) (bool, error) {
	return s.store.DeletePost(ctx, postID, userID)
}

func (s *postService) Comments(ctx context.Context, postID uint) ([]models.CommentResponse, error) {
	return s.store.GetPostComments(ctx, postID)
}

func (s *postService) AddComment(ctx context.Context, userID, postID uint, content string) (*models.Comment, error) {
	return s.store.CreateComment(ctx, userID, postID, content)
}

// ToggleLike likes the post when it is not yet liked and unlikes it
// otherwise, reporting the resulting state.
func (s *postService) ToggleLike(ctx context.Context, userID, postID uint) (bool, error) {
	liked, err := s.store.IsPostLikedByUser(ctx, userID, postID)
	if err != nil {
		return false, err
	}
	if liked {
		return false, s.store.UnlikePost(ctx, userID, postID)
	}
	return true, s.store.LikePost(ctx, userID, postID)
}

func (s *postService) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.store.IsPostLikedByUser(ctx, userID, postID)
}

func (s *postService) Reactions(ctx context.Context, postID uint) ([]models.Reaction, error) {
	return s.store.GetPostReactions(ctx, postID)
}

func (s *postService) AddReaction(ctx context.Context, userID, postID uint, emoji string) (*models.Reaction, error) {
	return s.store.AddReaction(ctx, userID, postID, emoji)
}

func (s *postService) RemoveReaction(ctx context.Context, userID, postID uint, emoji string) error {
	return s.store.RemoveReaction(ctx, userID, postID, emoji)
}

func (s *postService) UserPosts(ctx context.Context, userID uint) ([]models.Post, error) {
	return s.store.GetUserPosts(ctx, userID)
}

func (s *postService) UserGroupPosts(ctx context.Context, userID uint) ([]models.Post, error) {
	return s.store.GetUserGroupPosts(ctx, userID)
}
