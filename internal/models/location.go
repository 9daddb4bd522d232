package models

import (
	"encoding/json"
	"fmt"
)

// Coordinate represents a geographic point in WGS 84, latitude first to match
// the Kakao map convention.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Precision records how a listing's display coordinate was obtained. Anything
// other than PrecisionExact means the pin is an approximation and the popup
// carries a disclaimer.
type Precision int

const (
	// PrecisionExact means the listing carried a stored coordinate.
	PrecisionExact Precision = iota
	// PrecisionGeocoded means the coordinate came from forward geocoding the
	// listing's address text.
	PrecisionGeocoded
	// PrecisionDistrict means the coordinate is a jittered district centroid.
	PrecisionDistrict
)

func (p Precision) String() string {
	switch p {
	case PrecisionExact:
		return "exact"
	case PrecisionGeocoded:
		return "geocoded"
	case PrecisionDistrict:
		return "district"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the precision as its string name.
func (p Precision) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

// UnmarshalJSON accepts the string names produced by MarshalJSON.
func (p *Precision) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "exact":
		*p = PrecisionExact
	case "geocoded":
		*p = PrecisionGeocoded
	case "district":
		*p = PrecisionDistrict
	default:
		return fmt.Errorf("models: unknown precision %q", s)
	}
	return nil
}

// ResolvedLocation is the display position derived for one listing during one
// render pass. It is recomputed on every render and never persisted.
type ResolvedLocation struct {
	Coordinate Coordinate `json:"coordinate"`
	Precision  Precision  `json:"precision"`
}

// Bounds is a geographic bounding box.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// NewBounds returns a degenerate box containing exactly one point.
func NewBounds(c Coordinate) Bounds {
	return Bounds{MinLat: c.Lat, MinLng: c.Lng, MaxLat: c.Lat, MaxLng: c.Lng}
}

// Extend grows the box just enough to contain c.
func (b *Bounds) Extend(c Coordinate) {
	if c.Lat < b.MinLat {
		b.MinLat = c.Lat
	}
	if c.Lat > b.MaxLat {
		b.MaxLat = c.Lat
	}
	if c.Lng < b.MinLng {
		b.MinLng = c.Lng
	}
	if c.Lng > b.MaxLng {
		b.MaxLng = c.Lng
	}
}

// Contains reports whether c lies inside the box, borders included.
func (b Bounds) Contains(c Coordinate) bool {
	return c.Lat >= b.MinLat && c.Lat <= b.MaxLat && c.Lng >= b.MinLng && c.Lng <= b.MaxLng
}

// Center returns the midpoint of the box.
func (b Bounds) Center() Coordinate {
	return Coordinate{Lat: (b.MinLat + b.MaxLat) / 2, Lng: (b.MinLng + b.MaxLng) / 2}
}
