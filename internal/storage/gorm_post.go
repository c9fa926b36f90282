package storage

import (
	"context"

	"social-service/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *gormStorage) CreatePost(ctx context.Context, post *models.Post) error {
	if post.PostType == "" {
		post.PostType = models.PostTypeText
	}
	post.LikeCount = 0
	return s.db.WithContext(ctx).Create(post).Error
}

// UpdatePost changes content only when the row belongs to userID. A missing
// post and someone else's post produce the same ErrNotFound.
func (s *gormStorage) UpdatePost(ctx context.Context, postID, userID uint, content string) (*models.Post, error) {
	res := s.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ? AND user_id = ?", postID, userID).
		Update("content", content)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var post models.Post
	if err := s.db.WithContext(ctx).First(&post, postID).Error; err != nil {
		return nil, notFound(err)
	}
	return &post, nil
}

// DeletePost removes the post and every dependent comment, like and
// reaction in one transaction. Returns false without error when the post
// does not exist or is not owned by userID.
func (s *gormStorage) DeletePost(ctx context.Context, postID, userID uint) (bool, error) {
	deleted := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Unscoped().
			Where("id = ? AND user_id = ?", postID, userID).
			Delete(&models.Post{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		if err := tx.Unscoped().Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted, err
}

func (s *gormStorage) GetPostComments(ctx context.Context, postID uint) ([]models.CommentResponse, error) {
	var comments []models.CommentResponse
	err := s.db.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.content, comments.user_id, comments.post_id, comments.created_at, users.username, users.display_name, users.avatar_url").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.post_id = ? AND comments.deleted_at IS NULL", postID).
		Order("comments.created_at ASC").
		Scan(&comments).Error
	return comments, err
}

func (s *gormStorage) CreateComment(ctx context.Context, userID, postID uint, content string) (*models.Comment, error) {
	comment := models.Comment{Content: content, UserID: userID, PostID: postID}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// LikePost inserts the like row and bumps the denormalized counter in one
// transaction. When the row already exists the insert is a no-op and the
// counter must not move, so the increment is gated on RowsAffected.
func (s *gormStorage) LikePost(ctx context.Context, userID, postID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Like{UserID: userID, PostID: postID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil // already liked
		}
		upd := tx.Model(&models.Post{}).
			Where("id = ?", postID).
			UpdateColumn("like_count", gorm.Expr("like_count + 1"))
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *gormStorage) UnlikePost(ctx context.Context, userID, postID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil // was not liked, counter untouched
		}
		return tx.Model(&models.Post{}).
			Where("id = ? AND like_count > 0", postID).
			UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error
	})
}

func (s *gormStorage) IsPostLikedByUser(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (s *gormStorage) GetPostReactions(ctx context.Context, postID uint) ([]models.Reaction, error) {
	var reactions []models.Reaction
	err := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&reactions).Error
	return reactions, err
}

func (s *gormStorage) AddReaction(ctx context.Context, userID, postID uint, emoji string) (*models.Reaction, error) {
	reaction := models.Reaction{PostID: postID, UserID: userID, Emoji: emoji}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&reaction).Error
	if err != nil {
		return nil, err
	}
	return &reaction, nil
}

func (s *gormStorage) RemoveReaction(ctx context.Context, userID, postID uint, emoji string) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ? AND emoji = ?", userID, postID, emoji).
		Delete(&models.Reaction{}).Error
}

func (s *gormStorage) GetUserPosts(ctx context.Context, userID uint) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// GetUserGroupPosts returns recent posts from every group the user belongs
// to. The membership fan-out and the feed itself are both capped so a user
// in thousands of groups cannot produce an unbounded IN query.
func (s *gormStorage) GetUserGroupPosts(ctx context.Context, userID uint) ([]models.Post, error) {
	var groupIDs []uint
	err := s.db.WithContext(ctx).
		Model(&models.GroupMember{}).
		Where("user_id = ?", userID).
		Limit(maxGroupFanout).
		Pluck("group_id", &groupIDs).Error
	if err != nil {
		return nil, err
	}
	if len(groupIDs) == 0 {
		return nil, nil
	}

	var posts []models.Post
	err = s.db.WithContext(ctx).
		Where("group_id IN ?", groupIDs).
		Order("created_at DESC").
		Limit(maxGroupFeedLength).
		Find(&posts).Error
	return posts, err
}
