package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type UploadHandler struct {
	*BaseHandler
	uploadService *services.UploadService
	userRepo      repositories.UserRepository
}

func NewUploadHandler(base *BaseHandler, uploadService *services.UploadService, userRepo repositories.UserRepository) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
		userRepo:      userRepo,
	}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/upload/image", middleware.AuthMiddleware(h.userRepo), h.UploadImage)
}

// UploadImage stores one image from the multipart "file" field and
// returns its public URL. The filename and declared content type are
// ignored; acceptance is based on the bytes alone.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("no file provided"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	url, err := h.uploadService.SaveImage(c.Request.Context(), h.CurrentUser(c).ID, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.UploadResponse{URL: url})
}
