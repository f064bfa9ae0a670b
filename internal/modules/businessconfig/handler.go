package businessconfig

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

// Public reads: the storefront needs branding before anyone signs in.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/business-config", h.GetAll)
	rg.GET("/business-config/:type", h.GetByType)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/business-config", h.Create)
	rg.PATCH("/business-config/:type", h.Update)
}

func (h *Handler) GetAll(c *gin.Context) {
	configs, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch business configs")
		return
	}
	response.Success(c, http.StatusOK, configs)
}

func (h *Handler) GetByType(c *gin.Context) {
	cfg, err := h.service.GetByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Business config not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch business config")
		return
	}
	response.Success(c, http.StatusOK, cfg)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "businessType and businessName are required")
		return
	}

	cfg, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "businessType and businessName are required")
		case errors.Is(err, ErrConflict):
			response.Error(c, http.StatusConflict, "CONFLICT", "Business config already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create business config")
		}
		return
	}

	response.Success(c, http.StatusCreated, cfg)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cfg, err := h.service.Update(c.Request.Context(), c.Param("type"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "No valid fields to update")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Business config not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update business config")
		}
		return
	}

	response.Success(c, http.StatusOK, cfg)
}
