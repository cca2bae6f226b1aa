package tickets

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

// SetupRoutes registers ticket download routes
func (ticketRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	tickets := rg.Group("/tickets")
	tickets.Use(middleware.JWTAuthWithConfig(ticketRouter.config))
	{
		tickets.GET("/:folio/pdf", ticketRouter.controller.Download)
	}
}
