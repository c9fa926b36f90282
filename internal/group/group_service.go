package group

import (
	"context"
	"log/slog"

	"social-service/internal/events"
	"social-service/internal/models"
	"social-service/internal/storage"
)

type GroupService interface {
	ListGroups(ctx context.Context) ([]models.Group, error)
	CreateGroup(ctx context.Context, creatorID uint, req *models.CreateGroupRequest) (*models.Group, error)
	GetGroup(ctx context.Context, id uint) (*models.GroupWithRelations, error)
	GetGroupPosts(ctx context.Context, groupID uint) ([]models.Post, error)
	Join(ctx context.Context, userID, groupID uint) error
	Leave(ctx context.Context, userID, groupID uint) error
	UserGroups(ctx context.Context, userID uint) ([]models.Group, error)
	Members(ctx context.Context, groupID uint) ([]models.GroupMemberResponse, error)
	AddMember(ctx context.Context, userID, groupID uint, role string) error
	RemoveMember(ctx context.Context, userID, groupID uint) error
	ChatHistory(ctx context.Context, groupID uint) ([]models.GroupChatMessage, error)
	SendChatMessage(ctx context.Context, userID, groupID uint, message string) (*models.GroupChatMessage, error)
}

type groupService struct {
	store     storage.GroupStore
	publisher events.Publisher
}

func NewGroupService(store storage.GroupStore, publisher events.Publisher) GroupService {
	return &groupService{
		store:     store,
		publisher: publisher,
	}
}

func (s *groupService) ListGroups(ctx context.Context) ([]models.Group, error) {
	return s.store.GetGroups(ctx)
}

// CreateGroup creates the group and enrolls the creator as its admin.
func (s *groupService) CreateGroup(ctx context.Context, creatorID uint, req *models.CreateGroupRequest) (*models.Group, error) {
	group := &models.Group{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		IconURL:     req.IconURL,
		CoverURL:    req.CoverURL,
		IsPrivate:   req.IsPrivate,
	}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		return nil, err
	}

	if err := s.store.AddGroupMember(ctx, creatorID, group.ID, "admin"); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *groupService) GetGroup(ctx context.Context, id uint) (*models.GroupWithRelations, error) {
	return s.store.GetGroupByID(ctx, id)
}

func (s *groupService) GetGroupPosts(ctx context.Context, groupID uint) ([]models.Post, error) {
	return s.store.GetGroupPosts(ctx, groupID)
}

func (s *groupService) Join(ctx context.Context, userID, groupID uint) error {
	return s.store.JoinGroup(ctx, userID, groupID)
}

func (s *groupService) Leave(ctx context.Context, userID, groupID uint) error {
	return s.store.LeaveGroup(ctx, userID, groupID)
}

func (s *groupService) UserGroups(ctx context.Context, userID uint) ([]models.Group, error) {
	return s.store.GetUserGroups(ctx, userID)
}

func (s *groupService) Members(ctx context.Context, groupID uint) ([]models.GroupMemberResponse, error) {
	return s.store.GetGroupMembers(ctx, groupID)
}

func (s *groupService) AddMember(ctx context.Context, userID, groupID uint, role string) error {
	return s.store.AddGroupMember(ctx, userID, groupID, role)
}

func (s *groupService) RemoveMember(ctx context.Context, userID, groupID uint) error {
	return s.store.RemoveGroupMember(ctx, userID, groupID)
}

func (s *groupService) ChatHistory(ctx context.Context, groupID uint) ([]models.GroupChatMessage, error) {
	return s.store.GetGroupChat(ctx, groupID)
}

func (s *groupService) SendChatMessage(ctx context.Context, userID, groupID uint, message string) (*models.GroupChatMessage, error) {
	msg, err := s.store.CreateChatMessage(ctx, userID, groupID, message)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.ChatMessageSent(msg); err != nil {
		slog.Warn("Failed to publish chat message event", "group_id", groupID, "error", err)
	}
	return msg, nil
}
