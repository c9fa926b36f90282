package upload

import (
	"mime/multipart"
	"net/http"
	"strings"

	"social-service/pkg/response"

	"github.com/gin-gonic/gin"
)

const maxUploadSize = 10 << 20 // 10MB

type UploadHandler struct {
	store *ObjectStore
}

func NewUploadHandler(store *ObjectStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// Avatar godoc
// @Summary Upload an avatar image
// @Tags upload
// @Accept mpfd
// @Produce json
// @Param avatar formData file true "Image file"
// @Success 201 {object} map[string]string "URL of the stored object"
// @Failure 400 {object} map[string]interface{} "Not an image or too large"
// @Security BearerAuth
// @Router /upload/avatar [post]
func (h *UploadHandler) Avatar(c *gin.Context) {
	h.handle(c, "avatar", "avatars", "image/")
}

// Image godoc
// @Summary Upload a post image
// @Tags upload
// @Accept mpfd
// @Produce json
// @Param image formData file true "Image file"
// @Success 201 {object} map[string]string "URL of the stored object"
// @Security BearerAuth
// @Router /upload/image [post]
func (h *UploadHandler) Image(c *gin.Context) {
	h.handle(c, "image", "images", "image/")
}

// Music godoc
// @Summary Upload a music file
// @Tags upload
// @Accept mpfd
// @Produce json
// @Param music formData file true "Audio file"
// @Success 201 {object} map[string]string "URL of the stored object"
// @Failure 400 {object} map[string]interface{} "Not an audio file or too large"
// @Security BearerAuth
// @Router /upload/music [post]
func (h *UploadHandler) Music(c *gin.Context) {
	h.handle(c, "music", "music", "audio/")
}

func (h *UploadHandler) handle(c *gin.Context, field, prefix, wantType string) {
	file, err := c.FormFile(field)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "missing "+field+" file")
		return
	}
	if file.Size > maxUploadSize {
		response.Error(c, http.StatusBadRequest, "file exceeds 10MB limit")
		return
	}
	if !allowedType(file, wantType) {
		response.Error(c, http.StatusBadRequest, "only "+strings.TrimSuffix(wantType, "/")+" files are allowed")
		return
	}

	url, err := h.store.Upload(c.Request.Context(), file, prefix)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}

func allowedType(file *multipart.FileHeader, wantType string) bool {
	return strings.HasPrefix(file.Header.Get("Content-Type"), wantType)
}
