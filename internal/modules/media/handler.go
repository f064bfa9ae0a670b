package media

import (
	"errors"
	"net/http"
	"strings"

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
	rg.GET("/media", h.GetAll)
	rg.GET("/media/business/:type", h.GetByBusinessType)
	rg.POST("/media", h.Upload)
	rg.DELETE("/media/:id", h.Delete)
}

func (h *Handler) GetAll(c *gin.Context) {
	items, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch media library")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) GetByBusinessType(c *gin.Context) {
	items, err := h.service.GetByBusinessType(c.Request.Context(), c.Param("type"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch media library")
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Upload accepts multipart form data: the file plus comma-separated "tags"
// and "businessTypes" form fields.
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "File is required")
		return
	}

	item, err := h.service.Upload(
		c.Request.Context(),
		c.GetString("user_id"),
		fileHeader,
		splitCSV(c.PostForm("tags")),
		splitCSV(c.PostForm("businessTypes")),
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyFile), errors.Is(err, ErrInvalidMimeType):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "File exceeds the size limit")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to upload file")
		}
		return
	}

	response.Success(c, http.StatusCreated, item)
}

func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Media item not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete media item")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
