package resolver

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"github.com/leegyver/land-sub002/internal/geocoder"
	"github.com/leegyver/land-sub002/internal/models"

	"github.com/rs/zerolog"
)

// jitterDegrees bounds the random offset applied to district centroids so
// listings in the same district do not stack on one pin.
const jitterDegrees = 0.001

// Resolver derives a display coordinate for a listing, degrading from the
// stored exact position through forward geocoding down to a district
// centroid. It never fails: every listing gets a coordinate, with the
// precision recording how trustworthy it is.
type Resolver struct {
	geocoder geocoder.Geocoder
	prefix   string
	logger   zerolog.Logger
}

// New creates a Resolver. regionPrefix is prepended to address lookups
// ("인천광역시" in production) so bare district/dong strings still geocode.
func New(g geocoder.Geocoder, regionPrefix string, logger zerolog.Logger) *Resolver {
	return &Resolver{geocoder: g, prefix: regionPrefix, logger: logger}
}

// Resolve maps a listing to a coordinate. A stored coordinate wins outright
// and makes no geocoder call; otherwise the address text gets one geocoding
// attempt; any failure lands on the district centroid with jitter.
func (r *Resolver) Resolve(ctx context.Context, l *models.Listing) models.ResolvedLocation {
	if l.HasCoordinate() {
		return models.ResolvedLocation{
			Coordinate: models.Coordinate{Lat: *l.Latitude, Lng: *l.Longitude},
			Precision:  models.PrecisionExact,
		}
	}

	if addr := r.fullAddress(l); addr != "" {
		coord, err := r.geocoder.Forward(ctx, addr)
		if err == nil {
			return models.ResolvedLocation{Coordinate: coord, Precision: models.PrecisionGeocoded}
		}
		if !errors.Is(err, geocoder.ErrNotFound) {
			r.logger.Warn().Err(err).Int("listing_id", l.ID).
				Msg("geocoding failed, using district centroid")
		}
	}

	return models.ResolvedLocation{
		Coordinate: jitter(centroidFor(l.District)),
		Precision:  models.PrecisionDistrict,
	}
}

// fullAddress joins the regional prefix with the listing's district and
// address, collapsing tokens repeated back to back — hand-entered rows often
// carry the region twice ("인천광역시 인천광역시 남동구 ..."). Returns "" when
// the listing has no location text worth looking up.
func (r *Resolver) fullAddress(l *models.Listing) string {
	fields := strings.Fields(r.prefix + " " + l.District + " " + l.Address)
	out := fields[:0]
	for _, f := range fields {
		if len(out) > 0 && out[len(out)-1] == f {
			continue
		}
		out = append(out, f)
	}
	joined := strings.Join(out, " ")
	if joined == strings.TrimSpace(r.prefix) {
		return ""
	}
	return joined
}

// jitter offsets a centroid uniformly within ±jitterDegrees per axis. The
// offset only needs to separate pins visually, so it is not reproducible.
func jitter(c models.Coordinate) models.Coordinate {
	return models.Coordinate{
		Lat: c.Lat + (rand.Float64()*2-1)*jitterDegrees,
		Lng: c.Lng + (rand.Float64()*2-1)*jitterDegrees,
	}
}
