package models

import "time"

// Friend request statuses
const (
	FriendRequestPending  = "pending"
	FriendRequestAccepted = "accepted"
	FriendRequestRejected = "rejected"
)

/** --------------------ENTITIES-------------------- */
// Friendship is a symmetric relationship. Rows always come in reciprocal
// pairs: if (A,B) exists then (B,A) exists, written in one transaction.
type Friendship struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	FriendID  uint      `gorm:"primaryKey;autoIncrement:false" json:"friendId"`
	CreatedAt time.Time `json:"createdAt"`
}

// FriendRequest transitions pending -> accepted or pending -> rejected.
// Rejected requests are kept as history, never deleted.
type FriendRequest struct {
	SenderID   uint      `gorm:"primaryKey;autoIncrement:false" json:"senderId"`
	ReceiverID uint      `gorm:"primaryKey;autoIncrement:false" json:"receiverId"`
	Status     string    `gorm:"default:pending" json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Follower is an asymmetric edge requiring no acceptance.
type Follower struct {
	FollowerID  uint      `gorm:"primaryKey;autoIncrement:false" json:"followerId"`
	FollowingID uint      `gorm:"primaryKey;autoIncrement:false" json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}

/** -------------------- DTOs -------------------- */
// Response
type FriendRequestResponse struct {
	SenderID    uint      `json:"senderId"`
	ReceiverID  uint      `json:"receiverId"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	AvatarURL   string    `json:"avatarUrl"`
}

// UserStats is computed from four independent count queries, never cached.
type UserStats struct {
	PostCount      int64 `json:"postCount"`
	FriendCount    int64 `json:"friendCount"`
	FollowerCount  int64 `json:"followerCount"`
	FollowingCount int64 `json:"followingCount"`
}
