package booking

import (
	"errors"
	"net/http"

	"transroute/internal/routes"
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

func (c *Controller) Start(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req StartPurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.Start(ctx.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, routes.ErrRouteNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Trip not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Purchase started", resp, nil)
}

func (c *Controller) GetSession(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	resp, err := c.service.GetSession(ctx.Request.Context(), userID)
	if err != nil {
		respondFlowError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Session retrieved", resp, nil)
}

func (c *Controller) UpdateSeats(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req UpdateSeatsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	resp, err := c.service.UpdateSeats(ctx.Request.Context(), userID, &req)
	if err != nil {
		respondFlowError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seats updated", resp, nil)
}

func (c *Controller) RegisterPassengers(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req RegisterPassengersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.RegisterPassengers(ctx.Request.Context(), userID, &req)
	if err != nil {
		respondFlowError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Passengers registered", resp, nil)
}

func (c *Controller) Confirm(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	resp, err := c.service.Confirm(ctx.Request.Context(), userID)
	if err != nil {
		respondFlowError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Purchase confirmed", resp, nil)
}

func (c *Controller) Pay(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req PayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.Pay(ctx.Request.Context(), userID, &req)
	if err != nil {
		respondFlowError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Payment settled", resp, nil)
}

func (c *Controller) Cancel(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	if err := c.service.Cancel(ctx.Request.Context(), userID); err != nil {
		respondFlowError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Purchase cancelled", nil, nil)
}

func (c *Controller) GetBooking(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}

	resp, err := c.service.GetBooking(ctx.Request.Context(), userID, bookingID)
	if err != nil {
		respondFlowError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking retrieved", resp, nil)
}

func (c *Controller) CancelBooking(ctx *gin.Context) {
	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}

	if err := c.service.CancelBooking(ctx.Request.Context(), bookingID); err != nil {
		respondFlowError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking cancelled", nil, nil)
}

func (c *Controller) GetUserBookings(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	resp, err := c.service.GetUserBookings(ctx.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to retrieve bookings", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved", resp, nil)
}

func currentUserID(ctx *gin.Context) (string, bool) {
	userID, exists := ctx.Get("user_id")
	if !exists {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return "", false
	}

	id, ok := userID.(string)
	if !ok || id == "" {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return "", false
	}

	return id, true
}

func respondFlowError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNoActiveSession):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "No active purchase session", nil, nil)
	case errors.Is(err, ErrPurchaseExpired):
		response.RespondJSON(ctx, "error", http.StatusGone, "Purchase window expired", nil, nil)
	case errors.Is(err, ErrInvalidStep):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Operation not allowed in current step", nil, nil)
	case errors.Is(err, ErrSeatOccupied),
		errors.Is(err, ErrSeatOutOfRange),
		errors.Is(err, ErrSelectionComplete),
		errors.Is(err, ErrSelectionPending),
		errors.Is(err, ErrPassengerCount),
		errors.Is(err, ErrPassengerName),
		errors.Is(err, ErrEmailMismatch),
		errors.Is(err, ErrTermsNotAccepted):
		response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
	case errors.Is(err, ErrPaymentDeclined):
		response.RespondJSON(ctx, "error", http.StatusPaymentRequired, err.Error(), nil, nil)
	case errors.Is(err, ErrBookingNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Booking operation failed", nil, nil)
	}
}
