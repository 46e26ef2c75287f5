package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService *services.ApplicationService
	userRepo           repositories.UserRepository
}

func NewApplicationHandler(base *BaseHandler, applicationService *services.ApplicationService, userRepo repositories.UserRepository) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
		userRepo:           userRepo,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/api/:job_id/applications",
		middleware.AuthMiddleware(h.userRepo),
		middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleRecruiter),
		h.ListByJob)

	r.POST("/api/applications",
		middleware.AuthMiddleware(h.userRepo),
		h.Create)
}

func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	jobID, err := ParseParamUint(c, "job_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	page, pageSize := ParsePagination(c)
	resp, err := h.applicationService.ListByJob(h.GetDB(c), jobID, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	var req dto.ApplicationCreateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.applicationService.Apply(h.GetDB(c), h.CurrentUser(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
