package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/leegyver/land-sub002/internal/models"
	"github.com/leegyver/land-sub002/internal/resolver"
	"github.com/leegyver/land-sub002/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SessionHandler manages stateful map sessions over HTTP. One session
// corresponds to one client-side map instance; the server keeps the popup
// and viewport state so the at-most-one-open-popup rule has a single owner.
type SessionHandler struct {
	listings ListingService
	resolver *resolver.Resolver
	manager  *session.Manager
	logger   zerolog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(listings ListingService, res *resolver.Resolver, manager *session.Manager, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{listings: listings, resolver: res, manager: manager, logger: logger}
}

type createSessionRequest struct {
	// ListingID switches the session to detail mode: one marker, centered,
	// no bounds fitting. Zero or absent renders every listing.
	ListingID int `json:"listing_id"`
}

type selectMarkerRequest struct {
	ListingID int `json:"listing_id"`
}

type sessionResponse struct {
	ID      string              `json:"id"`
	Markers []models.MarkerView `json:"markers"`
	Bounds  *models.Bounds      `json:"bounds,omitempty"`
	Center  *models.Coordinate  `json:"center,omitempty"`
}

// Create handles POST /api/map/sessions requests
func (h *SessionHandler) Create(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// The session outlives this request, so it does not inherit the request
	// context. Closing the session cancels whatever is still in flight.
	sess := session.New(context.Background(), h.resolver, session.NewRecorder(), h.logger)
	sess.Ready()

	resp := sessionResponse{}
	if req.ListingID > 0 {
		listing, err := h.listings.Listing(c.Request.Context(), req.ListingID)
		if err != nil {
			sess.Close()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if listing == nil {
			sess.Close()
			c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
			return
		}
		sess.RenderDetail(*listing)
		if markers := sess.Markers(); len(markers) == 1 {
			center := markers[0].Coordinate
			resp.Center = &center
		}
	} else {
		listings, err := h.listings.Listings(c.Request.Context())
		if err != nil {
			sess.Close()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		sess.Render(listings)
		if b, ok := sess.Bounds(); ok {
			resp.Bounds = &b
		}
	}

	resp.ID = h.manager.Put(sess)
	resp.Markers = sess.Markers()
	c.JSON(http.StatusCreated, resp)
}

// Select handles POST /api/map/sessions/:id/select requests
func (h *SessionHandler) Select(c *gin.Context) {
	sess, ok := h.manager.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	var req selectMarkerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ListingID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if !sess.Select(req.ListingID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "marker not found"})
		return
	}

	open, _ := sess.Open()
	c.JSON(http.StatusOK, gin.H{"open": open})
}

// Delete handles DELETE /api/map/sessions/:id requests
func (h *SessionHandler) Delete(c *gin.Context) {
	sess, ok := h.manager.Remove(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	sess.Close()
	c.Status(http.StatusNoContent)
}
