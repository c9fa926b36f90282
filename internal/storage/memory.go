package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"social-service/internal/models"
)

type pairKey struct {
	a, b uint
}

// memoryStorage is the non-persistent Storage implementation. It backs the
// contract tests and the STORAGE_DRIVER=memory dev mode, and it upholds
// every invariant the MySQL implementation does: the like counter moves in
// the same critical section as the like row, friendships stay reciprocal,
// and deleting a post takes its comments, likes and reactions with it.
type memoryStorage struct {
	mu     sync.RWMutex
	nextID uint

	users     map[uint]*models.User
	groups    map[uint]*models.Group
	posts     map[uint]*models.Post
	comments  map[uint]*models.Comment
	reactions map[uint]*models.Reaction
	likes     map[pairKey]models.Like

	members []models.GroupMember
	chat    []models.GroupChatMessage

	friendships map[pairKey]models.Friendship
	requests    map[pairKey]*models.FriendRequest
	followers   map[pairKey]models.Follower
}

// NewMemoryStorage returns an empty in-memory Storage.
func NewMemoryStorage() Storage {
	return &memoryStorage{
		nextID:      1,
		users:       make(map[uint]*models.User),
		groups:      make(map[uint]*models.Group),
		posts:       make(map[uint]*models.Post),
		comments:    make(map[uint]*models.Comment),
		reactions:   make(map[uint]*models.Reaction),
		likes:       make(map[pairKey]models.Like),
		friendships: make(map[pairKey]models.Friendship),
		requests:    make(map[pairKey]*models.FriendRequest),
		followers:   make(map[pairKey]models.Follower),
	}
}

// id must be called with the write lock held.
func (m *memoryStorage) id() uint {
	id := m.nextID
	m.nextID++
	return id
}

/* ---------- users ---------- */

func (m *memoryStorage) GetUser(_ context.Context, id uint) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	u := *user
	return &u, nil
}

func (m *memoryStorage) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, user := range m.users {
		if user.Username == username {
			u := *user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryStorage) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = m.id()
	user.CreatedAt = time.Now()
	if user.Theme == "" {
		user.Theme = "light"
	}
	if user.ProfileLayout == "" {
		user.ProfileLayout = "classic"
	}
	u := *user
	m.users[user.ID] = &u
	return nil
}

func (m *memoryStorage) UpdateUser(_ context.Context, id uint, req *models.UpdateProfileRequest) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyProfileUpdate(user, req)
	u := *user
	return &u, nil
}

/* ---------- groups, membership, chat ---------- */

func (m *memoryStorage) GetGroups(_ context.Context) ([]models.Group, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	groups := make([]models.Group, 0, len(m.groups))
	for _, group := range m.groups {
		groups = append(groups, *group)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })
	return groups, nil
}

func (m *memoryStorage) GetGroupByID(ctx context.Context, id uint) (*models.GroupWithRelations, error) {
	m.mu.RLock()
	group, ok := m.groups[id]
	if !ok {
		m.mu.RUnlock()
		return nil, ErrNotFound
	}
	result := &models.GroupWithRelations{Group: *group}
	m.mu.RUnlock()

	posts, err := m.GetGroupPosts(ctx, id)
	if err != nil {
		return nil, err
	}
	members, err := m.GetGroupMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	messages, err := m.GetGroupChat(ctx, id)
	if err != nil {
		return nil, err
	}
	result.Posts = posts
	result.Members = members
	result.ChatMessages = messages
	return result, nil
}

func (m *memoryStorage) GetGroupPosts(_ context.Context, groupID uint) ([]models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var posts []models.Post
	for _, post := range m.posts {
		if post.GroupID == groupID {
			posts = append(posts, *post)
		}
	}
	// Newest first; ids are monotonic so they break created-at ties.
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID > posts[j].ID })
	return posts, nil
}

func (m *memoryStorage) CreateGroup(_ context.Context, group *models.Group) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	group.ID = m.id()
	group.CreatedAt = time.Now()
	g := *group
	m.groups[group.ID] = &g
	return nil
}

func (m *memoryStorage) JoinGroup(ctx context.Context, userID, groupID uint) error {
	return m.AddGroupMember(ctx, userID, groupID, "member")
}

func (m *memoryStorage) LeaveGroup(ctx context.Context, userID, groupID uint) error {
	return m.RemoveGroupMember(ctx, userID, groupID)
}

func (m *memoryStorage) GetUserGroups(_ context.Context, userID uint) ([]models.Group, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var groups []models.Group
	for _, member := range m.members {
		if member.UserID == userID {
			if group, ok := m.groups[member.GroupID]; ok {
				groups = append(groups, *group)
			}
		}
	}
	return groups, nil
}

func (m *memoryStorage) GetGroupMembers(_ context.Context, groupID uint) ([]models.GroupMemberResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var members []models.GroupMemberResponse
	// m.members is append-ordered, which is joined-at ascending.
	for _, member := range m.members {
		if member.GroupID != groupID {
			continue
		}
		resp := models.GroupMemberResponse{
			GroupID:  member.GroupID,
			UserID:   member.UserID,
			Role:     member.Role,
			JoinedAt: member.JoinedAt,
		}
		if user, ok := m.users[member.UserID]; ok {
			resp.Username = user.Username
			resp.DisplayName = user.DisplayName
			resp.AvatarURL = user.AvatarURL
		}
		members = append(members, resp)
	}
	return members, nil
}

func (m *memoryStorage) AddGroupMember(_ context.Context, userID, groupID uint, role string) error {
	if role == "" {
		role = "member"
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, member := range m.members {
		if member.GroupID == groupID && member.UserID == userID {
			return nil
		}
	}
	m.members = append(m.members, models.GroupMember{
		GroupID:  groupID,
		UserID:   userID,
		Role:     role,
		JoinedAt: time.Now(),
	})
	return nil
}

func (m *memoryStorage) RemoveGroupMember(_ context.Context, userID, groupID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, member := range m.members {
		if member.GroupID == groupID && member.UserID == userID {
			m.members = append(m.members[:i], m.members[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memoryStorage) GetGroupChat(_ context.Context, groupID uint) ([]models.GroupChatMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var messages []models.GroupChatMessage
	for _, msg := range m.chat {
		if msg.GroupID == groupID {
			messages = append(messages, msg)
		}
	}
	return messages, nil
}

func (m *memoryStorage) CreateChatMessage(_ context.Context, userID, groupID uint, message string) (*models.GroupChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg := models.GroupChatMessage{
		ID:        m.id(),
		GroupID:   groupID,
		UserID:    userID,
		Message:   message,
		CreatedAt: time.Now(),
	}
	m.chat = append(m.chat, msg)
	return &msg, nil
}
