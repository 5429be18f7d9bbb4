package routes

import (
	"github.com/gin-gonic/gin"

	projecthandlers "trackd/internal/interfaces/http/handlers/project"
	"trackd/internal/interfaces/http/middleware"
)

type ProjectRouteConfig struct {
	ProjectHandler *projecthandlers.ProjectHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupProjectRoutes(api *gin.RouterGroup, config *ProjectRouteConfig) {
	projects := api.Group("/projects")
	projects.Use(config.AuthMiddleware.RequireAuth())
	{
		projects.POST("", config.ProjectHandler.Create)
		projects.GET("", config.ProjectHandler.List)
	}
}
