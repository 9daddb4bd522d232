// Package session manages one map rendering pass: marker registration,
// popup exclusivity and viewport framing over a Surface.
package session

import (
	"context"
	"sort"
	"sync"

	"github.com/leegyver/land-sub002/internal/marker"
	"github.com/leegyver/land-sub002/internal/models"
	"github.com/leegyver/land-sub002/internal/resolver"

	"github.com/rs/zerolog"
)

// detailZoomLevel is the Kakao zoom used when centering on one listing.
const detailZoomLevel = 3

// Session owns one Surface and the markers drawn on it. At most one popup is
// open at any time; the surface is never touched after Close.
type Session struct {
	resolver *resolver.Resolver
	surface  Surface
	logger   zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu            sync.Mutex
	ready         bool
	closed        bool
	deferred      []models.MarkerView
	markers       map[int]models.MarkerView
	bounds        *models.Bounds
	openID        int // 0 means no popup is open
	pendingFit    bool
	pendingCenter *models.Coordinate
}

// New creates a session drawing on surface. ctx bounds the lifetime of any
// geocoding the session triggers; Close cancels it.
func New(ctx context.Context, r *resolver.Resolver, surface Surface, logger zerolog.Logger) *Session {
	ctx, cancel := context.WithCancel(ctx)
	return &Session{
		resolver: r,
		surface:  surface,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
		markers:  make(map[int]models.MarkerView),
	}
}

// Render resolves every listing and registers its marker, then fits the
// viewport around whatever resolved. Listings resolve independently and
// markers register as their resolutions complete, in no particular order.
func (s *Session) Render(listings []models.Listing) {
	var wg sync.WaitGroup
	for i := range listings {
		l := listings[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			loc := s.resolver.Resolve(s.ctx, &l)
			s.register(marker.Build(&l, loc))
		}()
	}
	wg.Wait()
	s.fitToMarkers()
}

// RenderDetail places a single listing and centers the viewport on it
// instead of fitting bounds.
func (s *Session) RenderDetail(l models.Listing) {
	loc := s.resolver.Resolve(s.ctx, &l)
	m := marker.Build(&l, loc)
	s.register(m)
	s.centerOn(m.Coordinate)
}

// Ready is the surface's one-time load signal. Markers and viewport changes
// that arrived earlier are flushed in arrival order.
func (s *Session) Ready() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready || s.closed {
		return
	}
	s.ready = true
	for _, m := range s.deferred {
		s.surface.AddMarker(m)
	}
	s.deferred = nil
	if s.pendingFit && s.bounds != nil {
		s.surface.FitBounds(*s.bounds)
		s.pendingFit = false
	}
	if s.pendingCenter != nil {
		s.surface.SetCenter(*s.pendingCenter, detailZoomLevel)
		s.pendingCenter = nil
	}
}

// Select opens the popup for the given marker, closing whichever popup was
// open before. Returns false for unknown markers and closed sessions.
func (s *Session) Select(listingID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	if _, ok := s.markers[listingID]; !ok {
		return false
	}
	if s.openID == listingID {
		return true
	}
	if s.openID != 0 {
		s.surface.ClosePopup(s.openID)
	}
	s.openID = listingID
	s.surface.OpenPopup(listingID)
	return true
}

// Deselect closes the open popup, if any.
func (s *Session) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.openID == 0 {
		return
	}
	s.surface.ClosePopup(s.openID)
	s.openID = 0
}

// Open returns the listing ID of the open popup.
func (s *Session) Open() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.openID == 0 {
		return 0, false
	}
	return s.openID, true
}

// Markers returns the registered markers sorted by listing ID.
func (s *Session) Markers() []models.MarkerView {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.MarkerView, 0, len(s.markers))
	for _, m := range s.markers {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ListingID < out[j].ListingID })
	return out
}

// Bounds returns the smallest box containing every registered coordinate.
func (s *Session) Bounds() (models.Bounds, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bounds == nil {
		return models.Bounds{}, false
	}
	return *s.bounds, true
}

// Close tears the session down. In-flight resolutions are cancelled, and any
// registration that lands afterwards leaves the surface untouched.
func (s *Session) Close() {
	s.cancel()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.deferred = nil
	s.pendingFit = false
	s.pendingCenter = nil
	s.openID = 0
	s.logger.Debug().Msg("map session closed")
}

func (s *Session) register(m models.MarkerView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.markers[m.ListingID] = m
	if s.bounds == nil {
		b := models.NewBounds(m.Coordinate)
		s.bounds = &b
	} else {
		s.bounds.Extend(m.Coordinate)
	}
	if !s.ready {
		s.deferred = append(s.deferred, m)
		return
	}
	s.surface.AddMarker(m)
}

func (s *Session) fitToMarkers() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.bounds == nil {
		return
	}
	if !s.ready {
		s.pendingFit = true
		return
	}
	s.surface.FitBounds(*s.bounds)
}

func (s *Session) centerOn(c models.Coordinate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if !s.ready {
		cc := c
		s.pendingCenter = &cc
		return
	}
	s.surface.SetCenter(c, detailZoomLevel)
}
