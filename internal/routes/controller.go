package routes

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

func (c *Controller) Create(ctx *gin.Context) {
	var req CreateRouteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.Create(ctx.Request.Context(), &req)
	if err != nil {
		respondRouteError(ctx, err, "Failed to create route")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Route created successfully", resp, nil)
}

func (c *Controller) GetAll(ctx *gin.Context) {
	includeInactive := ctx.Query("include_inactive") == "true"
	if includeInactive {
		role, _ := ctx.Get("user_role")
		if role != "ADMIN" {
			includeInactive = false
		}
	}

	resp, err := c.service.GetAll(ctx.Request.Context(), includeInactive)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to retrieve routes", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Routes retrieved successfully", resp, nil)
}

func (c *Controller) GetByID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid route ID", nil, nil)
		return
	}

	resp, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondRouteError(ctx, err, "Failed to retrieve route")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Route retrieved successfully", resp, nil)
}

func (c *Controller) Search(ctx *gin.Context) {
	var req SearchRoutesRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid search parameters", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Origin and destination are required", nil, err.Error())
		return
	}

	resp, err := c.service.Search(ctx.Request.Context(), req.Origin, req.Destination)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to search routes", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Routes retrieved successfully", resp, nil)
}

func (c *Controller) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid route ID", nil, nil)
		return
	}

	var req UpdateRouteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		respondRouteError(ctx, err, "Failed to update route")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Route updated successfully", resp, nil)
}

func (c *Controller) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid route ID", nil, nil)
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		respondRouteError(ctx, err, "Failed to delete route")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Route deleted successfully", nil, nil)
}

func respondRouteError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrRouteNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Route not found", nil, nil)
	case errors.Is(err, ErrSameOriginAndDest),
		errors.Is(err, ErrInvalidServiceType),
		errors.Is(err, ErrInvalidTimeFormat),
		errors.Is(err, ErrInvalidPrice):
		response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, fallback, nil, nil)
	}
}
