package storage

import (
	"context"

	"social-service/internal/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *gormStorage) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Joins("JOIN friendships ON friendships.friend_id = users.id").
		Where("friendships.user_id = ?", userID).
		Find(&users).Error
	return users, err
}

func (s *gormStorage) SendFriendRequest(ctx context.Context, senderID, receiverID uint) error {
	request := models.FriendRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     models.FriendRequestPending,
	}
	// Re-sending neither errors nor duplicates.
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&request).Error
}

// AcceptFriendRequest flips the request to accepted and writes BOTH
// reciprocal friendship rows; any failure rolls the whole thing back so
// an asymmetric friendship can never be observed.
func (s *gormStorage) AcceptFriendRequest(ctx context.Context, senderID, receiverID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.FriendRequest{}).
			Where("sender_id = ? AND receiver_id = ? AND status = ?",
				senderID, receiverID, models.FriendRequestPending).
			Update("status", models.FriendRequestAccepted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		pair := []models.Friendship{
			{UserID: senderID, FriendID: receiverID},
			{UserID: receiverID, FriendID: senderID},
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&pair).Error
	})
}

func (s *gormStorage) RejectFriendRequest(ctx context.Context, senderID, receiverID uint) error {
	res := s.db.WithContext(ctx).
		Model(&models.FriendRequest{}).
		Where("sender_id = ? AND receiver_id = ? AND status = ?",
			senderID, receiverID, models.FriendRequestPending).
		Update("status", models.FriendRequestRejected)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStorage) GetFriendRequests(ctx context.Context, userID uint) ([]models.FriendRequestResponse, error) {
	var requests []models.FriendRequestResponse
	err := s.db.WithContext(ctx).
		Table("friend_requests").
		Select("friend_requests.sender_id, friend_requests.receiver_id, friend_requests.status, friend_requests.created_at, users.username, users.display_name, users.avatar_url").
		Joins("JOIN users ON users.id = friend_requests.sender_id").
		Where("friend_requests.receiver_id = ?", userID).
		Order("friend_requests.created_at DESC").
		Scan(&requests).Error
	return requests, err
}

func (s *gormStorage) GetFollowers(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Joins("JOIN followers ON followers.follower_id = users.id").
		Where("followers.following_id = ?", userID).
		Find(&users).Error
	return users, err
}

func (s *gormStorage) GetFollowing(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Joins("JOIN followers ON followers.following_id = users.id").
		Where("followers.follower_id = ?", userID).
		Find(&users).Error
	return users, err
}

func (s *gormStorage) FollowUser(ctx context.Context, followerID, followingID uint) error {
	edge := models.Follower{FollowerID: followerID, FollowingID: followingID}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge).Error
}

func (s *gormStorage) UnfollowUser(ctx context.Context, followerID, followingID uint) error {
	return s.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follower{}).Error
}

func (s *gormStorage) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Follower{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

// GetUserStats runs its four counts concurrently; nothing is cached.
func (s *gormStorage) GetUserStats(ctx context.Context, userID uint) (*models.UserStats, error) {
	stats := &models.UserStats{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.WithContext(ctx).Model(&models.Post{}).
			Where("user_id = ?", userID).Count(&stats.PostCount).Error
	})
	g.Go(func() error {
		return s.db.WithContext(ctx).Model(&models.Friendship{}).
			Where("user_id = ?", userID).Count(&stats.FriendCount).Error
	})
	g.Go(func() error {
		return s.db.WithContext(ctx).Model(&models.Follower{}).
			Where("following_id = ?", userID).Count(&stats.FollowerCount).Error
	})
	g.Go(func() error {
		return s.db.WithContext(ctx).Model(&models.Follower{}).
			Where("follower_id = ?", userID).Count(&stats.FollowingCount).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
