package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lightscape/internal/pkg/response"
	"lightscape/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the booking funnel entry point.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.Create)
}

// RegisterAdminRoutes exposes the dashboard list and status setter.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListAll)
	rg.PATCH("/bookings/:id/status", h.UpdateStatus)
}

// Create godoc
// @Summary      Create a booking with automated pricing
// @Description  Validates contact fields, computes the estimate server-side and persists a pending booking
// @Tags         Bookings
// @Accept       json
// @Produce      json
// @Param        body body CreateBookingRequest true "Booking payload"
// @Success      201 {object} domain.Booking
// @Failure      400 {object} map[string]interface{}
// @Router       /bookings [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Invalid request data", validator.Details(err))
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		return
	}

	response.Success(c, http.StatusCreated, b)
}

// ListAll godoc
// @Summary      List all bookings (admin)
// @Tags         Bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} AdminListResponse
// @Router       /bookings [get]
func (h *Handler) ListAll(c *gin.Context) {
	list, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch bookings")
		return
	}
	response.Success(c, http.StatusOK, list)
}

// UpdateStatus godoc
// @Summary      Update booking lifecycle status (admin)
// @Tags         Bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path string true "Booking ID"
// @Param        body body UpdateStatusRequest true "New status"
// @Success      200 {object} domain.Booking
// @Failure      400 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Router       /bookings/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Status is required")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown booking status")
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusBadRequest, "INVALID_TRANSITION", "Status transition not allowed")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking status")
		}
		return
	}

	response.Success(c, http.StatusOK, b)
}
