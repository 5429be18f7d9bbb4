package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "trackd/internal/interfaces/http/handlers/user"
	"trackd/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(api *gin.RouterGroup, config *UserRouteConfig) {
	me := api.Group("/user")
	me.Use(config.AuthMiddleware.RequireAuth())
	{
		me.GET("/me", config.UserHandler.Me)
	}

	users := api.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.POST("/get/id", config.UserHandler.GetByID)
		users.POST("/get/email", config.UserHandler.GetByEmail)
	}
}
