package storage

import (
	"context"
	"sort"
	"time"

	"social-service/internal/models"
)

func (m *memoryStorage) GetFriends(_ context.Context, userID uint) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var friends []models.User
	for key := range m.friendships {
		if key.a == userID {
			if user, ok := m.users[key.b]; ok {
				friends = append(friends, *user)
			}
		}
	}
	sort.Slice(friends, func(i, j int) bool { return friends[i].ID < friends[j].ID })
	return friends, nil
}

func (m *memoryStorage) SendFriendRequest(_ context.Context, senderID, receiverID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := pairKey{senderID, receiverID}
	if _, exists := m.requests[key]; exists {
		return nil
	}
	m.requests[key] = &models.FriendRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     models.FriendRequestPending,
		CreatedAt:  time.Now(),
	}
	return nil
}

func (m *memoryStorage) AcceptFriendRequest(_ context.Context, senderID, receiverID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	request, ok := m.requests[pairKey{senderID, receiverID}]
	if !ok || request.Status != models.FriendRequestPending {
		return ErrNotFound
	}
	request.Status = models.FriendRequestAccepted
	now := time.Now()
	// Both directions under the same lock, so reciprocity always holds.
	m.friendships[pairKey{senderID, receiverID}] = models.Friendship{
		UserID: senderID, FriendID: receiverID, CreatedAt: now,
	}
	m.friendships[pairKey{receiverID, senderID}] = models.Friendship{
		UserID: receiverID, FriendID: senderID, CreatedAt: now,
	}
	return nil
}

func (m *memoryStorage) RejectFriendRequest(_ context.Context, senderID, receiverID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	request, ok := m.requests[pairKey{senderID, receiverID}]
	if !ok || request.Status != models.FriendRequestPending {
		return ErrNotFound
	}
	request.Status = models.FriendRequestRejected
	return nil
}

func (m *memoryStorage) GetFriendRequests(_ context.Context, userID uint) ([]models.FriendRequestResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var requests []models.FriendRequestResponse
	for _, request := range m.requests {
		if request.ReceiverID != userID {
			continue
		}
		resp := models.FriendRequestResponse{
			SenderID:   request.SenderID,
			ReceiverID: request.ReceiverID,
			Status:     request.Status,
			CreatedAt:  request.CreatedAt,
		}
		if sender, ok := m.users[request.SenderID]; ok {
			resp.Username = sender.Username
			resp.DisplayName = sender.DisplayName
			resp.AvatarURL = sender.AvatarURL
		}
		requests = append(requests, resp)
	}
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
	return requests, nil
}

func (m *memoryStorage) GetFollowers(_ context.Context, userID uint) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var users []models.User
	for key := range m.followers {
		if key.b == userID {
			if user, ok := m.users[key.a]; ok {
				users = append(users, *user)
			}
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (m *memoryStorage) GetFollowing(_ context.Context, userID uint) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var users []models.User
	for key := range m.followers {
		if key.a == userID {
			if user, ok := m.users[key.b]; ok {
				users = append(users, *user)
			}
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (m *memoryStorage) FollowUser(_ context.Context, followerID, followingID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := pairKey{followerID, followingID}
	if _, exists := m.followers[key]; exists {
		return nil
	}
	m.followers[key] = models.Follower{
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now(),
	}
	return nil
}

func (m *memoryStorage) UnfollowUser(_ context.Context, followerID, followingID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.followers, pairKey{followerID, followingID})
	return nil
}

func (m *memoryStorage) IsFollowing(_ context.Context, followerID, followingID uint) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, following := m.followers[pairKey{followerID, followingID}]
	return following, nil
}

func (m *memoryStorage) GetUserStats(_ context.Context, userID uint) (*models.UserStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stats := &models.UserStats{}
	for _, post := range m.posts {
		if post.UserID == userID {
			stats.PostCount++
		}
	}
	for key := range m.friendships {
		if key.a == userID {
			stats.FriendCount++
		}
	}
	for key := range m.followers {
		if key.b == userID {
			stats.FollowerCount++
		}
		if key.a == userID {
			stats.FollowingCount++
		}
	}
	return stats, nil
}
