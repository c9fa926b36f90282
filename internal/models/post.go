package models

import (
	"time"

	"gorm.io/gorm"
)

// Post types
const (
	PostTypeText  = "text"
	PostTypeImage = "image"
	PostTypeVideo = "video"
	PostTypeMusic = "music"
)

/** --------------------ENTITIES-------------------- */
// Post represents a post published inside a group
type Post struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Content   string `gorm:"not null" json:"content"`
	UserID    uint   `gorm:"not null;index" json:"userId"`
	GroupID   uint   `gorm:"not null;index" json:"groupId"`
	PostType  string `gorm:"default:text" json:"postType"`
	ImageURL  string `json:"imageUrl"`
	VideoURL  string `json:"videoUrl"`
	MusicURL  string `json:"musicUrl"`
	LikeCount int    `gorm:"default:0" json:"likeCount"`
}

// Comment represents a comment on a post
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Content string `gorm:"not null" json:"content"`
	UserID  uint   `gorm:"not null" json:"userId"`
	PostID  uint   `gorm:"not null;index" json:"postId"`
}

// Like is a (user, post) membership row. Its presence must always agree
// with Post.LikeCount, which is only ever moved in the same transaction.
type Like struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	PostID    uint      `gorm:"primaryKey;autoIncrement:false" json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Reaction generalizes Like to emoji; a user may hold several distinct
// emoji on the same post.
type Reaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_reaction" json:"postId"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_reaction" json:"userId"`
	Emoji     string    `gorm:"not null;uniqueIndex:idx_reaction" json:"emoji"`
	CreatedAt time.Time `json:"createdAt"`
}

/** -------------------- DTOs -------------------- */
// Request
type CreatePostRequest struct {
	Content  string `json:"content" binding:"required"`
	PostType string `json:"postType" binding:"omitempty,oneof=text image video music"`
	MediaURL string `json:"mediaUrl"`
}

type UpdatePostRequest struct {
	Content string `json:"content" binding:"required"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type ReactionRequest struct {
	Emoji string `json:"emoji" binding:"required"`
}

// Response
type CommentResponse struct {
	ID          uint      `json:"id"`
	Content     string    `json:"content"`
	UserID      uint      `json:"userId"`
	PostID      uint      `json:"postId"`
	CreatedAt   time.Time `json:"createdAt"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	AvatarURL   string    `json:"avatarUrl"`
}
