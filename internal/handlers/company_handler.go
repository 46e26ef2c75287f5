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

type CompanyHandler struct {
	*BaseHandler
	companyService *services.CompanyService
	userRepo       repositories.UserRepository
}

func NewCompanyHandler(base *BaseHandler, companyService *services.CompanyService, userRepo repositories.UserRepository) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    base,
		companyService: companyService,
		userRepo:       userRepo,
	}
}

func (h *CompanyHandler) RegisterRoutes(r *gin.RouterGroup) {
	companies := r.Group("/api/companies")
	{
		companies.GET("", h.List)
		companies.GET("/:id", h.Get)

		staff := companies.Group("")
		staff.Use(middleware.AuthMiddleware(h.userRepo), middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleRecruiter))
		{
			staff.POST("", h.Create)
			staff.PUT("/:id", h.Update)
			staff.DELETE("/:id", h.Delete)
		}
	}
}

func (h *CompanyHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	filter := repositories.CompanyFilter{
		Q:        c.Query("q"),
		HQCity:   c.Query("hq_city"),
		Sector:   c.Query("sector"),
		Page:     page,
		PageSize: pageSize,
	}

	resp, err := h.companyService.List(h.GetDB(c), filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CompanyHandler) Get(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.companyService.Get(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var req dto.CompanyCreateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.companyService.Create(h.GetDB(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update takes a free-form field map; keys outside the allowlist are
// dropped silently.
func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	payload, ok := h.BindJSONMap(c)
	if !ok {
		return
	}

	resp, err := h.companyService.Patch(h.GetDB(c), id, payload)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.companyService.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
