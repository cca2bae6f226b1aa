package auth

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

// SetupRoutes registers the account routes. Register through logout
// are open so an anonymous traveler can sign up mid-purchase; the
// rest operate on the logged-in account.
func (authRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	requireSession := middleware.JWTAuthWithConfig(authRouter.config)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", authRouter.controller.Register)
		auth.POST("/login", authRouter.controller.Login)
		auth.POST("/refresh", authRouter.controller.RefreshToken)
		auth.POST("/logout", authRouter.controller.Logout)

		auth.GET("/me", requireSession, authRouter.controller.GetMe)
		auth.PUT("/change-password", requireSession, authRouter.controller.ChangePassword)
	}
}
