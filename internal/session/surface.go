package session

import (
	"sync"

	"github.com/leegyver/land-sub002/internal/models"
)

// Surface is the map implementation a session draws on. The production
// frontend backs it with a Kakao map instance; the HTTP API and the tests
// use a Recorder. A surface instance is owned by exactly one session.
type Surface interface {
	AddMarker(m models.MarkerView)
	OpenPopup(listingID int)
	ClosePopup(listingID int)
	FitBounds(b models.Bounds)
	SetCenter(c models.Coordinate, zoomLevel int)
}

// Recorder is a Surface that records what a session draws so the state can
// be inspected or serialized.
type Recorder struct {
	mu      sync.Mutex
	markers []models.MarkerView
	opens   []int
	closes  []int
	bounds  *models.Bounds
	center  *models.Coordinate
	zoom    int
}

// NewRecorder returns an empty recording surface.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) AddMarker(m models.MarkerView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.markers = append(r.markers, m)
}

func (r *Recorder) OpenPopup(listingID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opens = append(r.opens, listingID)
}

func (r *Recorder) ClosePopup(listingID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closes = append(r.closes, listingID)
}

func (r *Recorder) FitBounds(b models.Bounds) {
	r.mu.Lock()
	defer r.mu.Unlock()
	bb := b
	r.bounds = &bb
}

func (r *Recorder) SetCenter(c models.Coordinate, zoomLevel int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cc := c
	r.center = &cc
	r.zoom = zoomLevel
}

// AddedMarkers returns the markers in registration order.
func (r *Recorder) AddedMarkers() []models.MarkerView {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.MarkerView, len(r.markers))
	copy(out, r.markers)
	return out
}

// OpenCalls returns every OpenPopup call in order.
func (r *Recorder) OpenCalls() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.opens))
	copy(out, r.opens)
	return out
}

// CloseCalls returns every ClosePopup call in order.
func (r *Recorder) CloseCalls() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.closes))
	copy(out, r.closes)
	return out
}

// LastBounds returns the most recent FitBounds call, if any.
func (r *Recorder) LastBounds() (models.Bounds, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bounds == nil {
		return models.Bounds{}, false
	}
	return *r.bounds, true
}

// LastCenter returns the most recent SetCenter call, if any.
func (r *Recorder) LastCenter() (models.Coordinate, int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.center == nil {
		return models.Coordinate{}, 0, false
	}
	return *r.center, r.zoom, true
}
