package booking

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

// SetupRoutes registers the booking flow. Everything here requires a
// logged-in user; anonymous travelers are redirected to login by the
// client with their pending trip preserved.
func (bookingRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	auth := middleware.JWTAuthWithConfig(bookingRouter.config)

	bookings := rg.Group("/bookings", auth)
	{
		bookings.POST("/start", bookingRouter.controller.Start)
		bookings.GET("/session", bookingRouter.controller.GetSession)
		bookings.POST("/seats", bookingRouter.controller.UpdateSeats)
		bookings.POST("/passengers", bookingRouter.controller.RegisterPassengers)
		bookings.POST("/confirm", bookingRouter.controller.Confirm)
		bookings.POST("/pay", bookingRouter.controller.Pay)
		bookings.POST("/cancel", bookingRouter.controller.Cancel)
		bookings.GET("/:id", bookingRouter.controller.GetBooking)

		// Back-office cancellation of a settled booking
		admin := bookings.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.DELETE("/:id", bookingRouter.controller.CancelBooking)
		}
	}

	users := rg.Group("/users", auth)
	{
		users.GET("/bookings", bookingRouter.controller.GetUserBookings)
	}
}
