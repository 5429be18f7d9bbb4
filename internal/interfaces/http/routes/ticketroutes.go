package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "trackd/internal/interfaces/http/handlers/ticket"
	"trackd/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.POST("/assign", config.TicketHandler.AssignTicket)
		tickets.POST("/:id/edit", config.TicketHandler.EditTicket)
		tickets.PATCH("/:id/status/:value", config.TicketHandler.ChangeStatus)
		tickets.PATCH("/:id/priority/:value", config.TicketHandler.ChangePriority)
		tickets.POST("/:id/comments", config.TicketHandler.AddComment)
		tickets.GET("/:id/comments", config.TicketHandler.ListComments)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.DELETE("/:id", config.TicketHandler.DeleteTicket)
	}

	comments := api.Group("/comments")
	comments.Use(config.AuthMiddleware.RequireAuth())
	{
		comments.DELETE("/:id", config.TicketHandler.DeleteComment)
	}
}
