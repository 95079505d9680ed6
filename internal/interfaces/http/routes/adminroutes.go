package routes

import (
	"github.com/gin-gonic/gin"

	"switchboard/internal/interfaces/http/handlers"
	adminhandlers "switchboard/internal/interfaces/http/handlers/admin"
	"switchboard/internal/interfaces/http/middleware"
)

type AdminRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	SwitchHandler  *adminhandlers.SwitchHandler
	UserHandler    *adminhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
	AllowedOrigins []string
}

// SetupAdminRoutes registers the authenticated management surface.
func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	zbs := engine.Group("/zbs")
	zbs.Use(middleware.CORS(config.AllowedOrigins))

	zbs.POST("/login", config.AuthHandler.Login)
	zbs.POST("/logout", config.AuthHandler.Logout)

	switches := zbs.Group("/switches")
	switches.Use(config.AuthMiddleware.RequireAuth())
	{
		// Specific paths before parameterized ones.
		switches.GET("", config.SwitchHandler.List)
		switches.POST("/add", config.SwitchHandler.Create)
		switches.POST("/copy", config.SwitchHandler.Copy)

		switches.GET("/:id/delete", config.SwitchHandler.Delete)
		switches.GET("/:id/resurrect", config.SwitchHandler.Resurrect)
		switches.GET("/:id", config.SwitchHandler.Get)
		switches.POST("/:id", config.SwitchHandler.Update)
	}

	users := zbs.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth(), config.AuthMiddleware.RequireSuperuser())
	{
		users.GET("", config.UserHandler.List)
		users.POST("/add", config.UserHandler.Create)
		users.GET("/:id", config.UserHandler.Get)
		users.POST("/:id", config.UserHandler.Update)
	}
}
