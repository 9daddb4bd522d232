package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/leegyver/land-sub002/internal/models"

	"github.com/gin-gonic/gin"
)

// ListingService interface for dependency injection
type ListingService interface {
	Listings(ctx context.Context) ([]models.Listing, error)
	Listing(ctx context.Context, id int) (*models.Listing, error)
}

// ListingHandler handles listing read requests
type ListingHandler struct {
	service ListingService
}

// NewListingHandler creates a new listing handler
func NewListingHandler(svc ListingService) *ListingHandler {
	return &ListingHandler{service: svc}
}

// List handles GET /api/listings requests
func (h *ListingHandler) List(c *gin.Context) {
	listings, err := h.service.Listings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, listings)
}

// Get handles GET /api/listings/:id requests
func (h *ListingHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing id"})
		return
	}

	listing, err := h.service.Listing(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if listing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
		return
	}

	c.JSON(http.StatusOK, listing)
}
