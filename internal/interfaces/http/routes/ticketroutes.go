package routes

import (
	"github.com/gin-gonic/gin"

	attachmenthandlers "campusdesk/internal/interfaces/http/handlers/attachment"
	tickethandlers "campusdesk/internal/interfaces/http/handlers/ticket"
	"campusdesk/internal/interfaces/http/middleware"
	"campusdesk/internal/shared/authorization"
)

// TicketRouteConfig holds dependencies for ticket routes.
type TicketRouteConfig struct {
	TicketHandler     *tickethandlers.TicketHandler
	AttachmentHandler *attachmenthandlers.AttachmentHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	tickets := engine.Group("/api/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.POST("",
			cfg.TicketHandler.CreateTicket)
		tickets.GET("",
			cfg.TicketHandler.ListTickets)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.POST("/:id/assign",
			authorization.RequireStaff(),
			cfg.TicketHandler.AssignTicket)
		tickets.GET("/:id/comments",
			cfg.TicketHandler.ListComments)
		tickets.POST("/:id/comments",
			cfg.TicketHandler.AddComment)
		tickets.POST("/:id/attachments",
			cfg.AttachmentHandler.Upload)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id",
			cfg.TicketHandler.GetTicket)
		tickets.PATCH("/:id",
			authorization.RequireStaff(),
			cfg.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id",
			authorization.RequireAdmin(),
			cfg.TicketHandler.DeleteTicket)
	}
}
