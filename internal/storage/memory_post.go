package storage

import (
	"context"
	"sort"
	"time"

	"social-service/internal/models"
)

func (m *memoryStorage) CreatePost(_ context.Context, post *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	post.ID = m.id()
	post.CreatedAt = time.Now()
	if post.PostType == "" {
		post.PostType = models.PostTypeText
	}
	post.LikeCount = 0
	p := *post
	m.posts[post.ID] = &p
	return nil
}

func (m *memoryStorage) UpdatePost(_ context.Context, postID, userID uint, content string) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	post, ok := m.posts[postID]
	if !ok || post.UserID != userID {
		return nil, ErrNotFound
	}
	post.Content = content
	post.UpdatedAt = time.Now()
	p := *post
	return &p, nil
}

func (m *memoryStorage) DeletePost(_ context.Context, postID, userID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	post, ok := m.posts[postID]
	if !ok || post.UserID != userID {
		return false, nil
	}
	delete(m.posts, postID)
	for id, comment := range m.comments {
		if comment.PostID == postID {
			delete(m.comments, id)
		}
	}
	for key := range m.likes {
		if key.b == postID {
			delete(m.likes, key)
		}
	}
	for id, reaction := range m.reactions {
		if reaction.PostID == postID {
			delete(m.reactions, id)
		}
	}
	return true, nil
}

func (m *memoryStorage) GetPostComments(_ context.Context, postID uint) ([]models.CommentResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var comments []models.CommentResponse
	for _, comment := range m.comments {
		if comment.PostID != postID {
			continue
		}
		resp := models.CommentResponse{
			ID:        comment.ID,
			Content:   comment.Content,
			UserID:    comment.UserID,
			PostID:    comment.PostID,
			CreatedAt: comment.CreatedAt,
		}
		if user, ok := m.users[comment.UserID]; ok {
			resp.Username = user.Username
			resp.DisplayName = user.DisplayName
			resp.AvatarURL = user.AvatarURL
		}
		comments = append(comments, resp)
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

func (m *memoryStorage) CreateComment(_ context.Context, userID, postID uint, content string) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	comment := models.Comment{Content: content, UserID: userID, PostID: postID}
	comment.ID = m.id()
	comment.CreatedAt = time.Now()
	c := comment
	m.comments[comment.ID] = &c
	return &comment, nil
}

func (m *memoryStorage) LikePost(_ context.Context, userID, postID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	post, ok := m.posts[postID]
	if !ok {
		return ErrNotFound
	}
	key := pairKey{userID, postID}
	if _, liked := m.likes[key]; liked {
		return nil // already liked, counter untouched
	}
	m.likes[key] = models.Like{UserID: userID, PostID: postID, CreatedAt: time.Now()}
	post.LikeCount++
	return nil
}

func (m *memoryStorage) UnlikePost(_ context.Context, userID, postID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := pairKey{userID, postID}
	if _, liked := m.likes[key]; !liked {
		return nil
	}
	delete(m.likes, key)
	if post, ok := m.posts[postID]; ok && post.LikeCount > 0 {
		post.LikeCount--
	}
	return nil
}

func (m *memoryStorage) IsPostLikedByUser(_ context.Context, userID, postID uint) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, liked := m.likes[pairKey{userID, postID}]
	return liked, nil
}

func (m *memoryStorage) GetPostReactions(_ context.Context, postID uint) ([]models.Reaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var reactions []models.Reaction
	for _, reaction := range m.reactions {
		if reaction.PostID == postID {
			reactions = append(reactions, *reaction)
		}
	}
	sort.Slice(reactions, func(i, j int) bool { return reactions[i].ID < reactions[j].ID })
	return reactions, nil
}

func (m *memoryStorage) AddReaction(_ context.Context, userID, postID uint, emoji string) (*models.Reaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, reaction := range m.reactions {
		if reaction.PostID == postID && reaction.UserID == userID && reaction.Emoji == emoji {
			r := *reaction
			return &r, nil
		}
	}
	reaction := models.Reaction{
		ID:        m.id(),
		PostID:    postID,
		UserID:    userID,
		Emoji:     emoji,
		CreatedAt: time.Now(),
	}
	r := reaction
	m.reactions[reaction.ID] = &r
	return &reaction, nil
}

func (m *memoryStorage) RemoveReaction(_ context.Context, userID, postID uint, emoji string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, reaction := range m.reactions {
		if reaction.PostID == postID && reaction.UserID == userID && reaction.Emoji == emoji {
			delete(m.reactions, id)
			return nil
		}
	}
	return nil
}

func (m *memoryStorage) GetUserPosts(_ context.Context, userID uint) ([]models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var posts []models.Post
	for _, post := range m.posts {
		if post.UserID == userID {
			posts = append(posts, *post)
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID > posts[j].ID })
	return posts, nil
}

func (m *memoryStorage) GetUserGroupPosts(ctx context.Context, userID uint) ([]models.Post, error) {
	m.mu.RLock()
	groupIDs := make(map[uint]bool)
	for _, member := range m.members {
		if member.UserID == userID {
			groupIDs[member.GroupID] = true
			if len(groupIDs) == maxGroupFanout {
				break
			}
		}
	}
	var posts []models.Post
	for _, post := range m.posts {
		if groupIDs[post.GroupID] {
			posts = append(posts, *post)
		}
	}
	m.mu.RUnlock()

	sort.Slice(posts, func(i, j int) bool { return posts[i].ID > posts[j].ID })
	if len(posts) > maxGroupFeedLength {
		posts = posts[:maxGroupFeedLength]
	}
	return posts, nil
}
