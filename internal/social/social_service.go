package social

import (
	"context"
	"errors"

	"social-service/internal/models"
	"social-service/internal/storage"
)

// Custom errors
var ErrSelfRelation = errors.New("cannot target yourself")

type SocialService interface {
	Friends(ctx context.Context, userID uint) ([]*models.UserResponse, error)
	SendFriendRequest(ctx context.Context, senderID, receiverID uint) error
	AcceptFriendRequest(ctx context.Context, senderID, receiverID uint) error
	RejectFriendRequest(ctx context.Context, senderID, receiverID uint) error
	FriendRequests(ctx context.Context, userID uint) ([]models.FriendRequestResponse, error)
	Followers(ctx context.Context, userID uint) ([]*models.UserResponse, error)
	Following(ctx context.Context, userID uint) ([]*models.UserResponse, error)
	Follow(ctx context.Context, followerID, followingID uint) error
	Unfollow(ctx context.Context, followerID, followingID uint) error
	IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error)
	Stats(ctx context.Context, userID uint) (*models.UserStats, error)
}

type socialService struct {
	store storage.SocialStore
}

func NewSocialService(store storage.SocialStore) SocialService {
	return &socialService{store: store}
}

func toResponses(users []models.User) []*models.UserResponse {
	responses := make([]*models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, models.NewUserResponse(&users[i]))
	}
	return responses
}

func (s *socialService) Friends(ctx context.Context, userID uint) ([]*models.UserResponse, error) {
	users, err := s.store.GetFriends(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResponses(users), nil
}

func (s *socialService) SendFriendRequest(ctx context.Context, senderID, receiverID uint) error {
	if senderID == receiverID {
		return ErrSelfRelation
	}
	return s.store.SendFriendRequest(ctx, senderID, receiverID)
}

func (s *socialService) AcceptFriendRequest(ctx context.Context, senderID, receiverID uint) error {
	return s.store.AcceptFriendRequest(ctx, senderID, receiverID)
}

func (s *socialService) RejectFriendRequest(ctx context.Context, senderID, receiverID uint) error {
	return s.store.RejectFriendRequest(ctx, senderID, receiverID)
}

func (s *socialService) FriendRequests(ctx context.Context, userID uint) ([]models.FriendRequestResponse, error) {
	return s.store.GetFriendRequests(ctx, userID)
}

func (s *socialService) Followers(ctx context.Context, userID uint) ([]*models.UserResponse, error) {
	users, err := s.store.GetFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResponses(users), nil
}

func (s *socialService) Following(ctx context.Context, userID uint) ([]*models.UserResponse, error) {
	users, err := s.store.GetFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResponses(users), nil
}

func (s *socialService) Follow(ctx context.Context, followerID, followingID uint) error {
	if followerID == followingID {
		return ErrSelfRelation
	}
	return s.store.FollowUser(ctx, followerID, followingID)
}

func (s *socialService) Unfollow(ctx context.Context, followerID, followingID uint) error {
	return s.store.UnfollowUser(ctx, followerID, followingID)
}

func (s *socialService) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.store.IsFollowing(ctx, followerID, followingID)
}

func (s *socialService) Stats(ctx context.Context, userID uint) (*models.UserStats, error) {
	return s.store.GetUserStats(ctx, userID)
}
