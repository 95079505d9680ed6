// Package routes wires handlers onto the gin engine.
package routes

import (
	"github.com/gin-gonic/gin"

	"switchboard/internal/interfaces/http/handlers"
	"switchboard/internal/interfaces/http/middleware"
)

type PublicRouteConfig struct {
	SwitchHandler *handlers.SwitchHandler
}

// SetupPublicRoutes registers the unauthenticated evaluation API. The
// routes are CORS-open and read-only.
func SetupPublicRoutes(engine *gin.Engine, config *PublicRouteConfig) {
	api := engine.Group("/api/v1")
	api.Use(middleware.PublicCORS())
	{
		api.GET("/switch", config.SwitchHandler.Evaluate)
		api.GET("/switches_full_info", config.SwitchHandler.FullInfo)
		api.GET("/switches/:id/svg-badge", config.SwitchHandler.SvgBadge)
	}
}
