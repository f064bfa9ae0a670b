package payment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lightscape/internal/pkg/response"
)

type Handler struct {
	service *Service
	loggerf func(format string, args ...interface{})
}

func NewHandler(service *Service, loggerf func(format string, args ...interface{})) *Handler {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Handler{service: service, loggerf: loggerf}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/create-payment-intent", h.CreateIntent)
	rg.POST("/confirm-payment", h.ConfirmPayment)
}

// CreateIntent godoc
// @Summary      Create a payment intent for a booking
// @Description  Opens a processor payment intent and moves the booking to processing
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        body body CreateIntentRequest true "Payment payload"
// @Success      200 {object} CreateIntentResponse
// @Failure      400 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Failure      503 {object} map[string]interface{}
// @Router       /create-payment-intent [post]
func (h *Handler) CreateIntent(c *gin.Context) {
	if !h.service.Configured() {
		response.Error(c, http.StatusServiceUnavailable, "PAYMENTS_UNAVAILABLE",
			"Payment processing not available - Stripe keys not configured")
		return
	}

	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Booking ID and amount are required")
		return
	}

	resp, err := h.service.CreateIntent(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Booking ID and amount are required")
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			h.loggerf("level=error msg=payment intent creation failed booking_id=%s err=%v", req.BookingID, err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create payment intent")
		}
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ConfirmPayment godoc
// @Summary      Confirm a payment intent
// @Description  Marks the booking paid and confirmed once the processor reports success
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        body body ConfirmPaymentRequest true "Confirmation payload"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      503 {object} map[string]interface{}
// @Router       /confirm-payment [post]
func (h *Handler) ConfirmPayment(c *gin.Context) {
	if !h.service.Configured() {
		response.Error(c, http.StatusServiceUnavailable, "PAYMENTS_UNAVAILABLE",
			"Payment processing not available")
		return
	}

	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "paymentIntentId is required")
		return
	}

	b, err := h.service.Confirm(c.Request.Context(), req.PaymentIntentID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotSucceeded):
			response.Error(c, http.StatusBadRequest, "PAYMENT_NOT_SUCCESSFUL", "Payment not successful")
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			h.loggerf("level=error msg=payment confirmation failed intent_id=%s err=%v", req.PaymentIntentID, err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to confirm payment")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Payment confirmed successfully",
		"booking": b,
	})
}
