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

type JobHandler struct {
	*BaseHandler
	jobService *services.JobService
	userRepo   repositories.UserRepository
}

func NewJobHandler(base *BaseHandler, jobService *services.JobService, userRepo repositories.UserRepository) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
		userRepo:    userRepo,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/api/jobs")
	{
		jobs.GET("", h.List)
		jobs.GET("/:id", h.Get)

		staff := jobs.Group("")
		staff.Use(middleware.AuthMiddleware(h.userRepo), middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleRecruiter))
		{
			staff.POST("", h.Create)
			staff.PATCH("/:id", h.Update)
			staff.DELETE("/:id", h.Delete)
		}
	}
}

func (h *JobHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	filter := repositories.JobFilter{
		Q:        c.Query("q"),
		Page:     page,
		PageSize: pageSize,
	}

	resp, err := h.jobService.List(h.GetDB(c), filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) Get(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	detail, err := h.jobService.Get(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dto.JobCreateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	detail, err := h.jobService.Create(h.GetDB(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, detail)
}

// Update takes a free-form field map. Unlike the other resources, any key
// outside the allowlist fails the whole request instead of being dropped.
func (h *JobHandler) Update(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	payload, ok := h.BindJSONMap(c)
	if !ok {
		return
	}

	detail, err := h.jobService.Patch(h.GetDB(c), id, payload)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.jobService.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
