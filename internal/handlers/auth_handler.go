package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService *services.AuthService
	userRepo    repositories.UserRepository
}

func NewAuthHandler(base *BaseHandler, authService *services.AuthService, userRepo repositories.UserRepository) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		userRepo:    userRepo,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", h.Login)
		auth.GET("/me", middleware.AuthMiddleware(h.userRepo), h.Me)
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.authService.Signup(h.GetDB(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	token, err := h.authService.Login(h.GetDB(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user := h.CurrentUser(c)
	c.JSON(http.StatusOK, dto.UserDTO{ID: user.ID, Email: user.Email, Role: string(user.Role)})
}
