package storage

import (
	"context"

	"social-service/internal/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm/clause"
)

func (s *gormStorage) GetGroups(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	err := s.db.WithContext(ctx).Find(&groups).Error
	return groups, err
}

// GetGroupByID loads the group and its posts, members and chat history.
// The three relation queries are independent and run concurrently.
func (s *gormStorage) GetGroupByID(ctx context.Context, id uint) (*models.GroupWithRelations, error) {
	var group models.Group
	if err := s.db.WithContext(ctx).First(&group, id).Error; err != nil {
		return nil, notFound(err)
	}

	result := &models.GroupWithRelations{Group: group}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		posts, err := s.GetGroupPosts(ctx, id)
		result.Posts = posts
		return err
	})
	g.Go(func() error {
		members, err := s.GetGroupMembers(ctx, id)
		result.Members = members
		return err
	})
	g.Go(func() error {
		messages, err := s.GetGroupChat(ctx, id)
		result.ChatMessages = messages
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *gormStorage) GetGroupPosts(ctx context.Context, groupID uint) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (s *gormStorage) CreateGroup(ctx context.Context, group *models.Group) error {
	return s.db.WithContext(ctx).Create(group).Error
}

func (s *gormStorage) JoinGroup(ctx context.Context, userID, groupID uint) error {
	return s.AddGroupMember(ctx, userID, groupID, "member")
}

func (s *gormStorage) LeaveGroup(ctx context.Context, userID, groupID uint) error {
	return s.RemoveGroupMember(ctx, userID, groupID)
}

func (s *gormStorage) GetUserGroups(ctx context.Context, userID uint) ([]models.Group, error) {
	var groups []models.Group
	err := s.db.WithContext(ctx).
		Joins("JOIN group_members ON group_members.group_id = groups.id").
		Where("group_members.user_id = ?", userID).
		Find(&groups).Error
	return groups, err
}

func (s *gormStorage) GetGroupMembers(ctx context.Context, groupID uint) ([]models.GroupMemberResponse, error) {
	var members []models.GroupMemberResponse
	err := s.db.WithContext(ctx).
		Table("group_members").
		Select("group_members.group_id, group_members.user_id, group_members.role, group_members.joined_at, users.username, users.display_name, users.avatar_url").
		Joins("JOIN users ON users.id = group_members.user_id").
		Where("group_members.group_id = ?", groupID).
		Order("group_members.joined_at ASC").
		Scan(&members).Error
	return members, err
}

func (s *gormStorage) AddGroupMember(ctx context.Context, userID, groupID uint, role string) error {
	if role == "" {
		role = "member"
	}
	member := models.GroupMember{GroupID: groupID, UserID: userID, Role: role}
	// Joining twice is a no-op.
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&member).Error
}

func (s *gormStorage) RemoveGroupMember(ctx context.Context, userID, groupID uint) error {
	return s.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&models.GroupMember{}).Error
}

func (s *gormStorage) GetGroupChat(ctx context.Context, groupID uint) ([]models.GroupChatMessage, error) {
	var messages []models.GroupChatMessage
	err := s.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

func (s *gormStorage) CreateChatMessage(ctx context.Context, userID, groupID uint, message string) (*models.GroupChatMessage, error) {
	msg := models.GroupChatMessage{GroupID: groupID, UserID: userID, Message: message}
	if err := s.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}
