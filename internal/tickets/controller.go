package tickets

import (
	"errors"
	"net/http"

	"transroute/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// Download streams the ticket PDF for a folio the caller owns
func (c *Controller) Download(ctx *gin.Context) {
	userID, exists := ctx.Get("user_id")
	if !exists {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	folio := ctx.Param("folio")

	pdf, filename, err := c.service.RenderTicket(ctx.Request.Context(), userID.(string), folio)
	if err != nil {
		switch {
		case errors.Is(err, ErrTicketNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Ticket not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to render ticket", nil, nil)
		}
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, "application/pdf", pdf)
}
