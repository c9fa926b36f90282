package social

import (
	"errors"
	"net/http"
	"strconv"

	"social-service/internal/storage"
	"social-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type SocialHandler struct {
	socialService SocialService
}

func NewSocialHandler(socialService SocialService) *SocialHandler {
	return &SocialHandler{socialService: socialService}
}

// Friends godoc
// @Summary List a user's friends
// @Tags social
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.UserResponse
// @Router /users/{id}/friends [get]
func (h *SocialHandler) Friends(c *gin.Context) {
	userID, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	friends, err := h.socialService.Friends(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, friends)
}

// SendFriendRequest godoc
// @Summary Send a friend request
// @Description Re-sending an existing request is a no-op
// @Tags social
// @Param id path int true "Receiver user ID"
// @Success 200
// @Security BearerAuth
// @Router /users/{id}/friend-request [post]
func (h *SocialHandler) SendFriendRequest(c *gin.Context) {
	receiverID, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	err = h.socialService.SendFriendRequest(c.Request.Context(), c.GetUint("user_id"), receiverID)
	if err != nil {
		if errors.Is(err, ErrSelfRelation) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Status(http.StatusOK)
}

// AcceptFriendRequest godoc
// @Summary Accept a pending friend request
// @Description Flips the request to accepted and records the friendship both ways
// @Tags social
// @Param id path int true "Sender user ID"
// @Success 200
// @Failure 404 {object} map[string]interface{} "No pending request from that user"
// @Security BearerAuth
// @Router /users/{id}/accept-friend [post]
func (h *SocialHandler) AcceptFriendRequest(c *gin.Context) {
	senderID, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	err = h.socialService.AcceptFriendRequest(c.Request.Context(), senderID, c.GetUint("user_id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "friend request not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Status(http.StatusOK)
}

// RejectFriendRequest godoc
// @Summary Reject a pending friend request
// @Description The rejected request is kept as history, not deleted
// @Tags social
// @Param id path int true "Sender user ID"
// @Success 200
// @Failure 404 {object} map[string]interface{} "No pending request from that user"
// @Security BearerAuth
// @Router /users/{id}/reject-friend [post]
func (h *SocialHandler) RejectFriendRequest(c *gin.Context) {
	senderID, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	err = h.socialService.RejectFriendRequest(c.Request.Context(), senderID, c.GetUint("user_id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "friend request not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Status(http.StatusOK)
}

// FriendRequests godoc
// @Summary List friend requests addressed to the caller
// @Tags social
// @Produce json
// @Success 200 {array} models.FriendRequestResponse
// @Security BearerAuth
// @Router /friend-requests [get]
func (h *SocialHandler) FriendRequests(c *gin.Context) {
	requests, err := h.socialService.FriendRequests(c.Request.Context(), c.GetUint("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, requests)
}

// Followers godoc
// @Summary List a user's followers
// @Tags social
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.UserResponse
// @Router /users/{id}/followers [get]
func (h *SocialHandler) Followers(c *gin.Context) {
	userID, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	followers, err := h.socialService.Followers(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, followers)
}

// Following godoc
// @Summary List the users a user follows
// @Tags social
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.UserResponse
// @Router /users/{id}/following [get]
func (h *SocialHandler) Following(c *gin.Context) {
	userID, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	following, err := h.socialService.Following(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, following)
}

// Follow godoc
// @Summary Follow a user
// @Description Following twice is a no-op; no acceptance involved
// @Tags social
// @Param id path int true "User ID to follow"
// @Success 200
// @Security BearerAuth
// @Router /users/{id}/follow [post]
func (h *SocialHandler) Follow(c *gin.Context) {
	followingID, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	err = h.socialService.Follow(c.Request.Context(), c.GetUint("user_id"), followingID)
	if err != nil {
		if errors.Is(err, ErrSelfRelation) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Status(http.StatusOK)
}

// Unfollow godoc
// @Summary Unfollow a user
// @Tags social
// @Param id path int true "User ID to unfollow"
// @Success 200
// @Security BearerAuth
// @Router /users/{id}/unfollow [post]
func (h *SocialHandler) Unfollow(c *gin.Context) {
	followingID, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.socialService.Unfollow(c.Request.Context(), c.GetUint("user_id"), followingID); err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Status(http.StatusOK)
}

// IsFollowing godoc
// @Summary Check whether the caller follows a user
// @Tags social
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]bool
// @Security BearerAuth
// @Router /users/{id}/is-following [get]
func (h *SocialHandler) IsFollowing(c *gin.Context) {
	followingID, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	following, err := h.socialService.IsFollowing(c.Request.Context(), c.GetUint("user_id"), followingID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": following})
}

// Stats godoc
// @Summary Post, friend, follower and following counts for a user
// @Tags social
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserStats
// @Router /users/{id}/stats [get]
func (h *SocialHandler) Stats(c *gin.Context) {
	userID, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	stats, err := h.socialService.Stats(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, stats)
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
