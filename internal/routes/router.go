package routes

import (
	"transroute/internal/shared/config"
	"transroute/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

type Router struct {
	controller *Controller
	config     *config.Config
}

func NewRouter(controller *Controller, cfg *config.Config) *Router {
	return &Router{
		controller: controller,
		config:     cfg,
	}
}

// SetupRoutes registers all route-catalog routes
func (routeRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	routes := rg.Group("/routes")
	{
		// Public routes
		routes.GET("", middleware.OptionalAuthWithConfig(routeRouter.config), routeRouter.controller.GetAll)
		routes.GET("/search", routeRouter.controller.Search)
		routes.GET("/:id", routeRouter.controller.GetByID)

		// Admin routes
		admin := routes.Group("")
		admin.Use(middleware.JWTAuthWithConfig(routeRouter.config), middleware.RequireAdmin())
		{
			admin.POST("", routeRouter.controller.Create)
			admin.PUT("/:id", routeRouter.controller.Update)
			admin.DELETE("/:id", routeRouter.controller.Delete)
		}
	}
}
