package service

import (
	"context"
	"fmt"

	"github.com/leegyver/land-sub002/internal/marker"
	"github.com/leegyver/land-sub002/internal/models"
	"github.com/leegyver/land-sub002/internal/resolver"
	"github.com/leegyver/land-sub002/internal/session"

	"github.com/rs/zerolog"
)

// MapService produces the marker set for the map page. The stateless variant
// runs a throwaway session per request; stateful sessions live in the
// session manager and are driven by the handlers directly.
type MapService struct {
	repo     ListingRepository
	resolver *resolver.Resolver
	logger   zerolog.Logger
}

// NewMapService creates a new map service
func NewMapService(repo ListingRepository, res *resolver.Resolver, logger zerolog.Logger) *MapService {
	return &MapService{repo: repo, resolver: res, logger: logger}
}

// Markers resolves every listing into a marker and the bounds framing them.
func (s *MapService) Markers(ctx context.Context) (*models.MapView, error) {
	listings, err := s.repo.ListListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load listings for map: %w", err)
	}

	sess := session.New(ctx, s.resolver, session.NewRecorder(), s.logger)
	defer sess.Close()
	sess.Ready()
	sess.Render(listings)

	view := &models.MapView{Markers: sess.Markers()}
	if b, ok := sess.Bounds(); ok {
		view.Bounds = &b
	}
	return view, nil
}

// Marker resolves a single listing for the detail page, nil when the listing
// does not exist.
func (s *MapService) Marker(ctx context.Context, id int) (*models.MarkerView, error) {
	listing, err := s.repo.GetListing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load listing for map: %w", err)
	}
	if listing == nil {
		return nil, nil
	}

	loc := s.resolver.Resolve(ctx, listing)
	m := marker.Build(listing, loc)
	return &m, nil
}
