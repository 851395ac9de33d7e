package routes

import (
	"github.com/gin-gonic/gin"

	attachmenthandlers "campusdesk/internal/interfaces/http/handlers/attachment"
	"campusdesk/internal/interfaces/http/middleware"
)

// AttachmentRouteConfig holds dependencies for attachment download routes.
type AttachmentRouteConfig struct {
	AttachmentHandler *attachmenthandlers.AttachmentHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

func SetupAttachmentRoutes(engine *gin.Engine, cfg *AttachmentRouteConfig) {
	attachments := engine.Group("/api/attachments")
	attachments.Use(cfg.AuthMiddleware.RequireAuth())
	{
		attachments.GET("/:id/download", cfg.AttachmentHandler.Download)
	}
}
