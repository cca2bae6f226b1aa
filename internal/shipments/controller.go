package shipments

import (
	"errors"
	"net/http"

	"transroute/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

func (c *Controller) Register(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req CreateShipmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.Register(ctx.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSameOriginAndDest),
			errors.Is(err, ErrInvalidWeight),
			errors.Is(err, ErrInvalidShipDate):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to register shipment", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Shipment registered successfully", resp, nil)
}

func (c *Controller) GetByTrackingNumber(ctx *gin.Context) {
	trackingNumber := ctx.Param("tracking")

	resp, err := c.service.GetByTrackingNumber(ctx.Request.Context(), trackingNumber)
	if err != nil {
		c.respondLookupError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Shipment retrieved successfully", resp, nil)
}

func (c *Controller) Track(ctx *gin.Context) {
	trackingNumber := ctx.Param("tracking")

	status, err := c.service.Track(ctx.Request.Context(), trackingNumber)
	if err != nil {
		c.respondLookupError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Tracking information retrieved successfully", status, nil)
}

func (c *Controller) GetUserShipments(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	resp, err := c.service.GetUserShipments(ctx.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to retrieve shipments", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Shipments retrieved successfully", resp, nil)
}

func (c *Controller) respondLookupError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidTrackingNumber):
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Tracking number has an invalid format", nil, nil)
	case errors.Is(err, ErrShipmentNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Shipment not found", nil, nil)
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to retrieve shipment", nil, nil)
	}
}

func currentUserID(ctx *gin.Context) (uuid.UUID, bool) {
	raw, exists := ctx.Get("user_id")
	if !exists {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return uuid.Nil, false
	}

	str, ok := raw.(string)
	if !ok || str == "" {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(str)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return uuid.Nil, false
	}

	return userID, true
}
