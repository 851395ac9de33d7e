package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "campusdesk/internal/interfaces/http/handlers/user"
	"campusdesk/internal/interfaces/http/middleware"
	"campusdesk/internal/shared/authorization"
)

// UserRouteConfig holds dependencies for user routes.
type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes configures user directory routes. The listing is staff
// only; it exists so technicians can pick assignees.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	users := engine.Group("/api/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.GET("", authorization.RequireStaff(), cfg.UserHandler.ListUsers)
	}
}
