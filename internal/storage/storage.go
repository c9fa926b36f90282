package storage

import (
	"context"
	"errors"

	"social-service/internal/models"
)

// ErrNotFound signals that the requested row is absent. Ownership-checked
// mutations (UpdatePost) return the same error for "not yours" so callers
// cannot distinguish the two cases.
var ErrNotFound = errors.New("record not found")

type UserStore interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, id uint, req *models.UpdateProfileRequest) (*models.User, error)
}

type GroupStore interface {
	GetGroups(ctx context.Context) ([]models.Group, error)
	GetGroupByID(ctx context.Context, id uint) (*models.GroupWithRelations, error)
	GetGroupPosts(ctx context.Context, groupID uint) ([]models.Post, error)
	CreateGroup(ctx context.Context, group *models.Group) error
	JoinGroup(ctx context.Context, userID, groupID uint) error
	LeaveGroup(ctx context.Context, userID, groupID uint) error
	GetUserGroups(ctx context.Context, userID uint) ([]models.Group, error)
	GetGroupMembers(ctx context.Context, groupID uint) ([]models.GroupMemberResponse, error)
	AddGroupMember(ctx context.Context, userID, groupID uint, role string) error
	RemoveGroupMember(ctx context.Context, userID, groupID uint) error
	GetGroupChat(ctx context.Context, groupID uint) ([]models.GroupChatMessage, error)
	CreateChatMessage(ctx context.Context, userID, groupID uint, message string) (*models.GroupChatMessage, error)
}

type PostStore interface {
	CreatePost(ctx context.Context, post *models.Post) error
	UpdatePost(ctx context.Context, postID, userID uint, content string) (*models.Post, error)
	DeletePost(ctx context.Context, postID, userID uint) (bool, error)
	GetPostComments(ctx context.Context, postID uint) ([]models.CommentResponse, error)
	CreateComment(ctx context.Context, userID, postID uint, content string) (*models.Comment, error)
	LikePost(ctx context.Context, userID, postID uint) error
	UnlikePost(ctx context.Context, userID, postID uint) error
	IsPostLikedByUser(ctx context.Context, userID, postID uint) (bool, error)
	GetPostReactions(ctx context.Context, postID uint) ([]models.Reaction, error)
	AddReaction(ctx context.Context, userID, postID uint, emoji string) (*models.Reaction, error)
	RemoveReaction(ctx context.Context, userID, postID uint, emoji string) error
	GetUserPosts(ctx context.Context, userID uint) ([]models.Post, error)
	GetUserGroupPosts(ctx context.Context, userID uint) ([]models.Post, error)
}

type SocialStore interface {
	GetFriends(ctx context.Context, userID uint) ([]models.User, error)
	SendFriendRequest(ctx context.Context, senderID, receiverID uint) error
	AcceptFriendRequest(ctx context.Context, senderID, receiverID uint) error
	RejectFriendRequest(ctx context.Context, senderID, receiverID uint) error
	GetFriendRequests(ctx context.Context, userID uint) ([]models.FriendRequestResponse, error)
	GetFollowers(ctx context.Context, userID uint) ([]models.User, error)
	GetFollowing(ctx context.Context, userID uint) ([]models.User, error)
	FollowUser(ctx context.Context, followerID, followingID uint) error
	UnfollowUser(ctx context.Context, followerID, followingID uint) error
	IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error)
	GetUserStats(ctx context.Context, userID uint) (*models.UserStats, error)
}

// Storage is the sole gateway to the relational store. Everything the
// route layer needs goes through one of these methods; multi-row
// consistency operations (join, like/unlike, accept, delete-post) are
// atomic inside the implementation.
type Storage interface {
	UserStore
	GroupStore
	PostStore
	SocialStore
}

// Caps for the unbounded membership fan-out in GetUserGroupPosts.
const (
	maxGroupFanout     = 200
	maxGroupFeedLength = 100
)
