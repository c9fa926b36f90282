package group

import (
	"errors"
	"net/http"
	"strconv"

	"social-service/internal/models"
	"social-service/internal/storage"
	"social-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	groupService GroupService
}

func NewGroupHandler(groupService GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// ListGroups godoc
// @Summary List all groups
// @Tags groups
// @Produce json
// @Success 200 {array} models.Group
// @Router /groups [get]
func (h *GroupHandler) ListGroups(c *gin.Context) {
	groups, err := h.groupService.ListGroups(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, groups)
}

// CreateGroup godoc
// @Summary Create a group
// @Description Creates a group and enrolls the caller as its admin
// @Tags groups
// @Accept json
// @Produce json
// @Param request body models.CreateGroupRequest true "Group details"
// @Success 201 {object} models.Group
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Security BearerAuth
// @Router /groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req models.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	group, err := h.groupService.CreateGroup(c.Request.Context(), c.GetUint("user_id"), &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, group)
}

// GetGroup godoc
// @Summary Get a group with its posts, members and chat history
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} models.GroupWithRelations
// @Failure 404 {object} map[string]interface{} "Group not found"
// @Router /groups/{id} [get]
func (h *GroupHandler) GetGroup(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid group id")
		return
	}

	group, err := h.groupService.GetGroup(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "group not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, group)
}

// GetGroupPosts godoc
// @Summary List a group's posts, newest first
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {array} models.Post
// @Router /groups/{id}/posts [get]
func (h *GroupHandler) GetGroupPosts(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid group id")
		return
	}

	posts, err := h.groupService.GetGroupPosts(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, posts)
}

// Join godoc
// @Summary Join a group
// @Description Adds the caller to the group; joining twice is a no-op
// @Tags groups
// @Param id path int true "Group ID"
// @Success 200
// @Security BearerAuth
// @Router /groups/{id}/join [post]
func (h *GroupHandler) Join(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid group id")
		return
	}

	if err := h.groupService.Join(c.Request.Context(), c.GetUint("user_id"), id); err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Status(http.StatusOK)
}

// Leave godoc
// @Summary Leave a group
// @Tags groups
// @Param id path int true "Group ID"
// @Success 200
// @Security BearerAuth
// @Router /groups/{id}/leave [post]
func (h *GroupHandler) Leave(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid group id")
		return
	}

	if err := h.groupService.Leave(c.Request.Context(), c.GetUint("user_id"), id); err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Status(http.StatusOK)
}

// UserGroupsOf godoc
// @Summary List the groups a user belongs to
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.Group
// @Router /users/{id}/groups [get]
func (h *GroupHandler) UserGroupsOf(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	groups, err := h.groupService.UserGroups(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, groups)
}

// Members godoc
// @Summary List group members ordered by join date
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {array} models.GroupMemberResponse
// @Router /groups/{id}/members [get]
func (h *GroupHandler) Members(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid group id")
		return
	}

	members, err := h.groupService.Members(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, members)
}

// AddMember godoc
// @Summary Add the caller to a group with an explicit role
// @Tags groups
// @Accept json
// @Param id path int true "Group ID"
// @Param request body models.AddMemberRequest false "Membership role"
// @Success 200
// @Security BearerAuth
// @Router /groups/{id}/members [post]
func (h *GroupHandler) AddMember(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid group id")
		return
	}

	var req models.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.groupService.AddMember(c.Request.Context(), c.GetUint("user_id"), id, req.Role); err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Status(http.StatusOK)
}

// RemoveMember godoc
// @Summary Remove the caller from a group's member list
// @Tags groups
// @Param id path int true "Group ID"
// @Success 200
// @Security BearerAuth
// @Router /groups/{id}/members [delete]
func (h *GroupHandler) RemoveMember(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid group id")
		return
	}

	if err := h.groupService.RemoveMember(c.Request.Context(), c.GetUint("user_id"), id); err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Status(http.StatusOK)
}

// ChatHistory godoc
// @Summary Get a group's chat log, oldest first
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {array} models.GroupChatMessage
// @Router /groups/{id}/chat [get]
func (h *GroupHandler) ChatHistory(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid group id")
		return
	}

	messages, err := h.groupService.ChatHistory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, messages)
}

// SendChatMessage godoc
// @Summary Append a message to a group's chat log
// @Tags groups
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param request body models.ChatMessageRequest true "Chat message"
// @Success 201 {object} models.GroupChatMessage
// @Security BearerAuth
// @Router /groups/{id}/chat [post]
func (h *GroupHandler) SendChatMessage(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid group id")
		return
	}

	var req models.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := h.groupService.SendChatMessage(c.Request.Context(), c.GetUint("user_id"), id, req.Message)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, msg)
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
