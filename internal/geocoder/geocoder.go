package geocoder

import (
	"context"
	"errors"

	"github.com/leegyver/land-sub002/internal/models"
)

// Geocoder turns free-text address strings into coordinates. Implementations
// are best-effort: a lookup with no match reports ErrNotFound rather than
// inventing a position.
type Geocoder interface {
	Forward(ctx context.Context, address string) (models.Coordinate, error)
}

// ErrNotFound is returned when the service has no match for the address.
var ErrNotFound = errors.New("geocoder: address not found")
