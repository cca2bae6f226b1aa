package trips

import (
	"errors"
	"net/http"
	"strings"

	"transroute/internal/routes"
	"transroute/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) Search(ctx *gin.Context) {
	origin := strings.TrimSpace(ctx.Query("origin"))
	destination := strings.TrimSpace(ctx.Query("destination"))

	if origin == "" || destination == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Origin and destination are required", nil, nil)
		return
	}

	offers, err := c.service.Search(ctx.Request.Context(), origin, destination)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to search trips", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Trips retrieved successfully", offers, nil)
}

func (c *Controller) GetByRouteID(ctx *gin.Context) {
	offer, err := c.service.GetByRouteID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, routes.ErrRouteNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Trip not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to retrieve trip", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Trip retrieved successfully", offer, nil)
}

func parseRouteID(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}
