package trips

import (
	"github.com/gin-gonic/gin"
)

type Router struct {
	controller *Controller
}

func NewRouter(controller *Controller) *Router {
	return &Router{controller: controller}
}

// SetupRoutes registers trip search routes. All trip browsing is
// public; authentication happens when a purchase starts.
func (tripRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	trips := rg.Group("/trips")
	{
		trips.GET("/search", tripRouter.controller.Search)
		trips.GET("/:id", tripRouter.controller.GetByRouteID)
	}
}
