package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

type ProfileHandler struct {
	*BaseHandler
	profileService *services.ProfileService
	userRepo       repositories.UserRepository
}

func NewProfileHandler(base *BaseHandler, profileService *services.ProfileService, userRepo repositories.UserRepository) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
		userRepo:       userRepo,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	profiles := r.Group("/api/profiles")
	{
		profiles.GET("", h.List)

		authed := profiles.Group("")
		authed.Use(middleware.AuthMiddleware(h.userRepo))
		{
			authed.POST("", h.Create)
			authed.PUT("/:id", h.Update)
			authed.DELETE("/:id", h.Delete)
		}
	}
}

func (h *ProfileHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	filter := repositories.ProfileFilter{
		Q:        c.Query("q"),
		City:     c.Query("city"),
		Skills:   c.Query("skills"),
		Page:     page,
		PageSize: pageSize,
	}

	resp, err := h.profileService.List(h.GetDB(c), filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) Create(c *gin.Context) {
	var req dto.ProfileCreateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.profileService.Create(h.GetDB(c), h.CurrentUser(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update is restricted to the profile's owner or an admin; the ownership
// check happens in the service against the same transaction.
func (h *ProfileHandler) Update(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	payload, ok := h.BindJSONMap(c)
	if !ok {
		return
	}

	resp, err := h.profileService.Patch(h.GetDB(c), h.CurrentUser(c), id, payload)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.profileService.Delete(h.GetDB(c), h.CurrentUser(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
