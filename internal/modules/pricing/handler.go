package pricing

import (
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
	rg.POST("/quote", h.Quote)
}

// Quote godoc
// @Summary      Get an automated price quote
// @Description  Computes an estimated price from the service type and property size
// @Tags         Pricing
// @Accept       json
// @Produce      json
// @Param        body body QuoteRequest true "Quote payload"
// @Success      200 {object} QuoteResponse
// @Failure      400 {object} map[string]interface{}
// @Router       /quote [post]
func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "serviceType is required")
		return
	}

	total := h.service.CalculatePrice(req.ServiceType, req.PropertySize)

	response.Success(c, http.StatusOK, QuoteResponse{
		EstimatedPrice: total,
		ServiceType:    req.ServiceType,
		PropertySize:   req.PropertySize,
		Currency:       Currency,
		PriceBreakdown: h.service.Breakdown(total),
	})
}
