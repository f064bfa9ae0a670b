package portal

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lightscape/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/customer/auth", h.Authenticate)
	rg.GET("/customer/bookings/:email", h.ListBookings)
	rg.PATCH("/customer/bookings/:id", h.UpdateBooking)
	rg.DELETE("/customer/bookings/:id", h.CancelBooking)
}

// Authenticate godoc
// @Summary      Customer portal sign-in
// @Description  Matches email+phone against existing bookings
// @Tags         Portal
// @Accept       json
// @Produce      json
// @Param        body body AuthRequest true "Credentials"
// @Success      200 {object} AuthResponse
// @Failure      400 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Router       /customer/auth [post]
func (h *Handler) Authenticate(c *gin.Context) {
	var req AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Email and phone are required")
		return
	}

	customerID, err := h.service.Authenticate(c.Request.Context(), req.Email, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Email and phone are required")
		case errors.Is(err, ErrNoMatch):
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Customer not found with provided credentials")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Authentication failed")
		}
		return
	}

	response.Success(c, http.StatusOK, AuthResponse{
		Message:    "Authentication successful",
		CustomerID: customerID,
	})
}

// ListBookings godoc
// @Summary      List a customer's bookings
// @Tags         Portal
// @Produce      json
// @Param        email path string true "Customer email"
// @Success      200 {array} domain.Booking
// @Router       /customer/bookings/{email} [get]
func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Email is required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch bookings")
		return
	}
	response.Success(c, http.StatusOK, bookings)
}

// UpdateBooking godoc
// @Summary      Update a booking's customer-editable fields
// @Description  Only address, projectDetails and phone may change
// @Tags         Portal
// @Accept       json
// @Produce      json
// @Param        id path string true "Booking ID"
// @Param        body body UpdateBookingRequest true "Patch"
// @Success      200 {object} domain.Booking
// @Failure      400 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Router       /customer/bookings/{id} [patch]
func (h *Handler) UpdateBooking(c *gin.Context) {
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.UpdateBooking(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyUpdate):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "No valid fields to update")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking")
		}
		return
	}

	response.Success(c, http.StatusOK, b)
}

// CancelBooking godoc
// @Summary      Cancel a pending booking
// @Description  Customers may only cancel bookings that are still pending
// @Tags         Portal
// @Produce      json
// @Param        id path string true "Booking ID"
// @Success      200 {object} domain.Booking
// @Failure      400 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Router       /customer/bookings/{id} [delete]
func (h *Handler) CancelBooking(c *gin.Context) {
	b, err := h.service.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotCancellable):
			response.Error(c, http.StatusBadRequest, "NOT_CANCELLABLE", "Only pending bookings can be cancelled")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel booking")
		}
		return
	}

	response.Success(c, http.StatusOK, b)
}
