package testimonial

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
	rg.GET("/testimonials", h.GetAll)
	rg.GET("/testimonials/featured", h.GetFeatured)
	rg.POST("/testimonials", h.Create)
}

func (h *Handler) GetAll(c *gin.Context) {
	items, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch testimonials")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) GetFeatured(c *gin.Context) {
	items, err := h.service.GetFeatured(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch featured testimonials")
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Create godoc
// @Summary      Submit a testimonial
// @Tags         Testimonials
// @Accept       json
// @Produce      json
// @Param        body body CreateTestimonialRequest true "Testimonial payload"
// @Success      201 {object} domain.Testimonial
// @Failure      400 {object} map[string]interface{}
// @Router       /testimonials [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create testimonial")
		return
	}

	response.Success(c, http.StatusCreated, t)
}
