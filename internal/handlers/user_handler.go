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

type UserHandler struct {
	*BaseHandler
	userService *services.UserService
	userRepo    repositories.UserRepository
}

func NewUserHandler(base *BaseHandler, userService *services.UserService, userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
		userRepo:    userRepo,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(h.userRepo), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.PUT("/users/:id/role", h.UpdateRole)
	}
}

// UpdateRole is the only path that changes a user's role. Signup always
// grants the default role.
func (h *UserHandler) UpdateRole(c *gin.Context) {
	targetID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.RoleChangeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateRole(h.GetDB(c), h.CurrentUser(c), targetID, req.Role)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
