package locations

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
	var req CreateLocationRequest
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
		switch {
		case errors.Is(err, ErrDuplicateName):
			response.RespondJSON(ctx, "error", http.StatusConflict, "Location with this name already exists", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create location", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Location created successfully", resp, nil)
}

func (c *Controller) GetAll(ctx *gin.Context) {
	includeInactive := ctx.Query("include_inactive") == "true"

	// Only admins may see deactivated locations
	if includeInactive {
		role, _ := ctx.Get("user_role")
		if role != "ADMIN" {
			includeInactive = false
		}
	}

	resp, err := c.service.GetAll(ctx.Request.Context(), includeInactive)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to retrieve locations", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Locations retrieved successfully", resp, nil)
}

func (c *Controller) GetByID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid location ID", nil, nil)
		return
	}

	resp, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrLocationNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Location not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to retrieve location", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Location retrieved successfully", resp, nil)
}

func (c *Controller) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid location ID", nil, nil)
		return
	}

	var req UpdateLocationRequest
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
		switch {
		case errors.Is(err, ErrLocationNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Location not found", nil, nil)
		case errors.Is(err, ErrDuplicateName):
			response.RespondJSON(ctx, "error", http.StatusConflict, "Location with this name already exists", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update location", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Location updated successfully", resp, nil)
}

func (c *Controller) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid location ID", nil, nil)
		return
	}

	err = c.service.Delete(ctx.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrLocationNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Location not found", nil, nil)
		case errors.Is(err, ErrLocationInUse):
			response.RespondJSON(ctx, "error", http.StatusConflict, "Location is referenced by active routes", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete location", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Location deleted successfully", nil, nil)
}
