package routes

import (
	"jobboard_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every handler onto the engine. Route groups and
// per-route middleware live inside each handler's RegisterRoutes.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	root := ginRouter.Group("")
	{
		appHandlers.HealthHandler.RegisterRoutes(root)
		appHandlers.AuthHandler.RegisterRoutes(root)
		appHandlers.UserHandler.RegisterRoutes(root)
		appHandlers.CompanyHandler.RegisterRoutes(root)
		appHandlers.JobHandler.RegisterRoutes(root)
		appHandlers.ProfileHandler.RegisterRoutes(root)
		appHandlers.ApplicationHandler.RegisterRoutes(root)
		appHandlers.FilterHandler.RegisterRoutes(root)
		appHandlers.UploadHandler.RegisterRoutes(root)
	}
}
