package locations

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

// SetupRoutes registers all location routes
func (locationRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	locations := rg.Group("/locations")
	{
		// Public routes; optional auth so admins can request inactive rows
		locations.GET("", middleware.OptionalAuthWithConfig(locationRouter.config), locationRouter.controller.GetAll)
		locations.GET("/:id", locationRouter.controller.GetByID)

		// Admin routes
		admin := locations.Group("")
		admin.Use(middleware.JWTAuthWithConfig(locationRouter.config), middleware.RequireAdmin())
		{
			admin.POST("", locationRouter.controller.Create)
			admin.PUT("/:id", locationRouter.controller.Update)
			admin.DELETE("/:id", locationRouter.controller.Delete)
		}
	}
}
