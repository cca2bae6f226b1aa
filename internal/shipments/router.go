package shipments

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

// SetupRoutes registers all shipment routes
func (shipmentRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	shipments := rg.Group("/shipments")
	{
		// Anyone holding a guide number may check on a parcel
		shipments.GET("/:tracking", shipmentRouter.controller.GetByTrackingNumber)
		shipments.GET("/:tracking/track", shipmentRouter.controller.Track)

		protected := shipments.Group("")
		protected.Use(middleware.JWTAuthWithConfig(shipmentRouter.config))
		{
			protected.POST("", shipmentRouter.controller.Register)
		}
	}

	users := rg.Group("/users")
	users.Use(middleware.JWTAuthWithConfig(shipmentRouter.config))
	{
		users.GET("/shipments", shipmentRouter.controller.GetUserShipments)
	}
}
