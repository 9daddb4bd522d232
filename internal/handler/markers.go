package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/leegyver/land-sub002/internal/models"

	"github.com/gin-gonic/gin"
)

// MapService interface for dependency injection
type MapService interface {
	Markers(ctx context.Context) (*models.MapView, error)
	Marker(ctx context.Context, id int) (*models.MarkerView, error)
}

// MapHandler handles map marker requests
type MapHandler struct {
	service MapService
}

// NewMapHandler creates a new map handler
func NewMapHandler(svc MapService) *MapHandler {
	return &MapHandler{service: svc}
}

// Markers handles GET /api/map/markers requests
func (h *MapHandler) Markers(c *gin.Context) {
	view, err := h.service.Markers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// Marker handles GET /api/map/markers/:id requests
func (h *MapHandler) Marker(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing id"})
		return
	}

	m, err := h.service.Marker(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if m == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
		return
	}

	c.JSON(http.StatusOK, m)
}
