package post

import (
	"errors"
	"net/http"
	"strconv"

	"social-service/internal/models"
	"social-service/internal/storage"
	"social-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService PostService
}

func NewPostHandler(postService PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// CreatePost godoc
// @Summary Create a post in a group
// @Description Creates a post; the media URL lands in the column matching postType
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param request body models.CreatePostRequest true "Post content"
// @Success 201 {object} models.Post
// @Failure 400 {object} map[string]interface{} "Missing media URL or unknown post type"
// @Security BearerAuth
// @Router /groups/{id}/posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	groupID, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid group id")
		return
	}

	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), c.GetUint("user_id"), groupID, &req)
	if err != nil {
		if errors.Is(err, ErrMissingMedia) || errors.Is(err, ErrInvalidType) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdatePost godoc
// @Summary Update a post's content
// @Description Only the author may update; a missing post and someone else's post answer identically
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body models.UpdatePostRequest true "New content"
// @Success 200 {object} models.Post
// @Failure 404 {object} map[string]interface{} "Post not found or not yours"
// @Security BearerAuth
// @Router /posts/{id} [patch]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid post id")
		return
	}

	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), postID, c.GetUint("user_id"), req.Content)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "post not found or unauthorized")
			return
		}
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary Delete a post and its comments, likes and reactions
// @Tags posts
// @Param id path int true "Post ID"
// @Success 204
// @Failure 404 {object} map[string]interface{} "Post not found or not yours"
// @Security BearerAuth
// @Router /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid post id")
		return
	}

	deleted, err := h.postService.DeletePost(c.Request.Context(), postID, c.GetUint("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		response.Error(c, http.StatusNotFound, "post not found or unauthorized")
		return
	}

	c.Status(http.StatusNoContent)
}

// Comments godoc
// @Summary List a post's comments with author identity, oldest first
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {array} models.CommentResponse
// @Router /posts/{id}/comments [get]
func (h *PostHandler) Comments(c *gin.Context) {
	postID, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid post id")
		return
	}

	comments, err := h.postService.Comments(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, comments)
}

// AddComment godoc
// @Summary Comment on a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body models.CreateCommentRequest true "Comment content"
// @Success 201 {object} models.Comment
// @Security BearerAuth
// @Router /posts/{id}/comments [post]
func (h *PostHandler) AddComment(c *gin.Context) {
	postID, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid post id")
		return
	}

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.postService.AddComment(c.Request.Context(), c.GetUint("user_id"), postID, req.Content)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ToggleLike godoc
// @Summary Like or unlike a post
// @Description Likes when not yet liked, unlikes otherwise; reports the resulting state
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]bool
// @Security BearerAuth
// @Router /posts/{id}/like [post]
func (h *PostHandler) ToggleLike(c *gin.Context) {
	postID, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid post id")
		return
	}

	liked, err := h.postService.ToggleLike(c.Request.Context(), c.GetUint("user_id"), postID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "post not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// IsLiked godoc
// @Summary Check whether the caller likes a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]bool
// @Security BearerAuth
// @Router /posts/{id}/liked [get]
func (h *PostHandler) IsLiked(c *gin.Context) {
	postID, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid post id")
		return
	}

	liked, err := h.postService.IsLiked(c.Request.Context(), c.GetUint("user_id"), postID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// Reactions godoc
// @Summary List a post's emoji reactions
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {array} models.Reaction
// @Router /posts/{id}/reactions [get]
func (h *PostHandler) Reactions(c *gin.Context) {
	postID, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid post id")
		return
	}

	reactions, err := h.postService.Reactions(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, reactions)
}

// AddReaction godoc
// @Summary React to a post with an emoji
// @Description A user may hold several distinct emoji on the same post; repeats are no-ops
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body models.ReactionRequest true "Emoji"
// @Success 201 {object} models.Reaction
// @Security BearerAuth
// @Router /posts/{id}/reactions [post]
func (h *PostHandler) AddReaction(c *gin.Context) {
	postID, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid post id")
		return
	}

	var req models.ReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	reaction, err := h.postService.AddReaction(c.Request.Context(), c.GetUint("user_id"), postID, req.Emoji)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, reaction)
}

// RemoveReaction godoc
// @Summary Remove the caller's emoji reaction from a post
// @Tags posts
// @Accept json
// @Param id path int true "Post ID"
// @Param request body models.ReactionRequest true "Emoji"
// @Success 204
// @Security BearerAuth
// @Router /posts/{id}/reactions [delete]
func (h *PostHandler) RemoveReaction(c *gin.Context) {
	postID, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid post id")
		return
	}

	var req models.ReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.postService.RemoveReaction(c.Request.Context(), c.GetUint("user_id"), postID, req.Emoji); err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}

// UserPosts godoc
// @Summary List a user's posts, newest first
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.Post
// @Router /users/{id}/posts [get]
func (h *PostHandler) UserPosts(c *gin.Context) {
	userID, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	posts, err := h.postService.UserPosts(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, posts)
}

// UserGroupPosts godoc
// @Summary Recent posts from every group a user belongs to
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.Post
// @Router /users/{id}/group-posts [get]
func (h *PostHandler) UserGroupPosts(c *gin.Context) {
	userID, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	posts, err := h.postService.UserGroupPosts(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, posts)
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
