package ports

import (
	"context"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
)

// MarkerKind distinguishes the bear's home from sighting markers.
type MarkerKind string

const (
	MarkerHome     MarkerKind = "home"
	MarkerSighting MarkerKind = "sighting"
	MarkerCurrent  MarkerKind = "current"
)

// Popup is the text shown when a marker is selected.
type Popup struct {
	Title string   `json:"title"`
	Lines []string `json:"lines,omitempty"`
}

// Marker is a styled point on a map surface.
type Marker struct {
	Kind     MarkerKind
	Position domain.Coordinates
	Color    string
	Scale    float64
	Label    string
	Popup    Popup
	// Ref identifies what the marker stands for (bear or sighting id).
	Ref string
}

// Line is a styled polyline on a map surface.
type Line struct {
	ID      string
	Points  []domain.Coordinates
	Color   string
	Width   float64
	Opacity float64
}

// MapSurface is a drawable map instance. It must be released exactly once;
// every method fails after Release.
type MapSurface interface {
	AddMarker(m Marker) error
	AddLine(l Line) error
	// Snapshot encodes what has been drawn so far.
	Snapshot() ([]byte, error)
	Release() error
}

// SurfaceFactory hands out new map surfaces.
type SurfaceFactory interface {
	Acquire(ctx context.Context, center domain.Coordinates, zoom float64) (MapSurface, error)
}
