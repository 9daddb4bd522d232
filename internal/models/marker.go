package models

// MarkerView is one renderable map pin with its popup content, derived from a
// listing and its resolved location. Created and discarded within a single
// render pass.
type MarkerView struct {
	ListingID   int        `json:"listing_id"`
	Title       string     `json:"title"`
	Coordinate  Coordinate `json:"coordinate"`
	Precision   Precision  `json:"precision"`
	Approximate bool       `json:"approximate"`
	PriceLines  []string   `json:"price_lines,omitempty"`
	Popup       string     `json:"popup"`
}

// MapView is one render pass worth of markers plus the viewport framing them.
// Bounds is nil when nothing resolved (no listings).
type MapView struct {
	Markers []MarkerView `json:"markers"`
	Bounds  *Bounds      `json:"bounds,omitempty"`
}
