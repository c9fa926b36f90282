package models

import (
	"time"

	"gorm.io/gorm"
)

/** --------------------ENTITIES-------------------- */
// Group represents a topical community users join to post and chat within
type Group struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	Category    string `gorm:"not null" json:"category"`
	IconURL     string `json:"iconUrl"`
	CoverURL    string `json:"coverUrl"`
	IsPrivate   bool   `gorm:"default:false" json:"isPrivate"`
}

// GroupMember is the single membership table. Join/leave and the
// "which groups does this user belong to" view are both projections of it.
type GroupMember struct {
	GroupID  uint      `gorm:"primaryKey;autoIncrement:false" json:"groupId"`
	UserID   uint      `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	Role     string    `gorm:"default:member" json:"role"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joinedAt"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

// GroupChatMessage is one entry in a group's append-only chat log.
type GroupChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GroupID   uint      `gorm:"not null;index" json:"groupId"`
	UserID    uint      `gorm:"not null" json:"userId"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

/** -------------------- DTOs -------------------- */
// Request
type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	IconURL     string `json:"iconUrl"`
	CoverURL    string `json:"coverUrl"`
	IsPrivate   bool   `json:"isPrivate"`
}

type ChatMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

type AddMemberRequest struct {
	Role string `json:"role"`
}

// Response
type GroupMemberResponse struct {
	GroupID     uint      `json:"groupId"`
	UserID      uint      `json:"userId"`
	Role        string    `json:"role"`
	JoinedAt    time.Time `json:"joinedAt"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	AvatarURL   string    `json:"avatarUrl"`
}

// GroupWithRelations is the full group page payload: the group itself plus
// its posts (newest first), members (joined-at ascending) and chat history
// (oldest first).
type GroupWithRelations struct {
	Group
	Posts        []Post                `json:"posts"`
	Members      []GroupMemberResponse `json:"members"`
	ChatMessages []GroupChatMessage    `json:"chatMessages"`
}
