package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/utils"
	"jobboard_backend/pkg/apperrors"
	"jobboard_backend/pkg/contextkeys"
)

// AuthMiddleware verifies the bearer token and loads the account it names
// on the request's transaction. A valid token whose user has since been
// deleted is treated the same as a bad token.
func AuthMiddleware(userRepo repositories.UserRepository) gin.HandlerFunc {
	userKey := string(contextkeys.CurrentUserKey)
	dbKey := string(contextkeys.DBContextKey)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		db, ok := c.MustGet(dbKey).(*gorm.DB)
		if !ok {
			apperrors.HandleError(c, apperrors.InternalError(errors.New("no database in context")))
			c.Abort()
			return
		}

		user, err := userRepo.FindByEmail(db, utils.NormalizeEmail(claims.Subject))
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				apperrors.HandleError(c, apperrors.ErrInvalidToken)
			} else {
				apperrors.HandleError(c, apperrors.InternalError(err))
			}
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireRoles allows the request through only when the authenticated
// user holds one of the given roles. Must run after AuthMiddleware.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
			c.Abort()
			return
		}
		if !roleSet[user.Role] {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user or nil.
func CurrentUser(c *gin.Context) *models.User {
	val, exists := c.Get(string(contextkeys.CurrentUserKey))
	if !exists {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}
