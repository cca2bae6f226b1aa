// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"transroute/internal/auth"
	"transroute/internal/booking"
	"transroute/internal/locations"
	"transroute/internal/notifications"
	busroutes "transroute/internal/routes"
	"transroute/internal/shared/config"
	"transroute/internal/shared/database"
	"transroute/internal/shipments"
	"transroute/internal/tickets"
	"transroute/internal/trips"
	"transroute/pkg/cache"
	"transroute/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config        *config.Config
	db            *database.DB
	cache         cache.Service
	notifications notifications.Service
	log           *logger.Logger

	// Shared across feature groups during setup
	routeService   busroutes.Service
	tripService    trips.Service
	bookingService booking.Service
	bookingRepo    booking.Repository
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, cacheService cache.Service, notificationService notifications.Service, log *logger.Logger) *Router {
	return &Router{
		config:        cfg,
		db:            db,
		cache:         cacheService,
		notifications: notificationService,
		log:           log,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)

		// Route catalog must come first: locations and trips depend on it
		r.setupRouteRoutes(api)
		r.setupLocationRoutes(api)
		r.setupTripRoutes(api)

		r.setupBookingRoutes(api)
		r.setupTicketRoutes(api)
		r.setupShipmentRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "transroute-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "transroute-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController, r.config)

	authRouter.SetupRoutes(rg)
}

// setupRouteRoutes configures the route catalog
func (r *Router) setupRouteRoutes(rg *gin.RouterGroup) {
	routeRepo := busroutes.NewRepository(r.db.GetPostgreSQL())
	r.routeService = busroutes.NewService(routeRepo, r.cache)
	routeController := busroutes.NewController(r.routeService)
	routeRouter := busroutes.NewRouter(routeController, r.config)

	routeRouter.SetupRoutes(rg)
}

// setupLocationRoutes configures location management routes
func (r *Router) setupLocationRoutes(rg *gin.RouterGroup) {
	locationRepo := locations.NewRepository(r.db.GetPostgreSQL())

	// The route service guards deletion of locations still in use
	locationService := locations.NewService(locationRepo, r.cache, r.routeService)
	locationController := locations.NewController(locationService)
	locationRouter := locations.NewRouter(locationController, r.config)

	locationRouter.SetupRoutes(rg)
}

// setupTripRoutes configures trip search routes
func (r *Router) setupTripRoutes(rg *gin.RouterGroup) {
	seatProvider := trips.NewEstimatedAvailability(time.Now().UnixNano())
	r.tripService = trips.NewService(r.routeService, seatProvider)
	tripController := trips.NewController(r.tripService)
	tripRouter := trips.NewRouter(tripController)

	tripRouter.SetupRoutes(rg)
}

// setupBookingRoutes configures the purchase flow routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	clock := booking.SystemClock()

	r.bookingRepo = booking.NewRepository(r.db.GetPostgreSQL())
	sessionStore := booking.NewRedisSessionStore(r.db.GetRedisClient())
	gateway := booking.NewSimulatedGateway(clock)
	notifier := notifications.NewBookingNotifier(r.notifications, r.log)

	r.bookingService = booking.NewService(
		sessionStore,
		r.bookingRepo,
		r.tripService,
		gateway,
		clock,
		r.cache,
		notifier,
		r.log,
	)
	bookingController := booking.NewController(r.bookingService)
	bookingRouter := booking.NewRouter(bookingController, r.config)

	bookingRouter.SetupRoutes(rg)
}

// setupTicketRoutes configures ticket rendering routes
func (r *Router) setupTicketRoutes(rg *gin.RouterGroup) {
	ticketSource := booking.NewTicketSource(r.bookingRepo)
	ticketService := tickets.NewService(ticketSource)
	ticketController := tickets.NewController(ticketService)
	ticketRouter := tickets.NewRouter(ticketController, r.config)

	ticketRouter.SetupRoutes(rg)
}

// setupShipmentRoutes configures parcel shipping routes
func (r *Router) setupShipmentRoutes(rg *gin.RouterGroup) {
	shipmentRepo := shipments.NewRepository(r.db.GetPostgreSQL())
	tracker := shipments.NewSimulatedTracking(time.Now)
	shipmentService := shipments.NewService(shipmentRepo, tracker, r.cache, r.notifications, r.log)
	shipmentController := shipments.NewController(shipmentService)
	shipmentRouter := shipments.NewRouter(shipmentController, r.config)

	shipmentRouter.SetupRoutes(rg)
}
