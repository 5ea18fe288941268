// Package mapsurface provides map surfaces that record what is drawn on them
// as a GeoJSON FeatureCollection, ready to be handed to a web map client.
package mapsurface

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/ports"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/pkg/metrics"
)

// ErrReleased is returned by every Surface method once Release has run.
var ErrReleased = errors.New("map surface released")

// Factory implements ports.SurfaceFactory.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

// Acquire returns a fresh, empty surface centred on center.
func (f *Factory) Acquire(ctx context.Context, center domain.Coordinates, zoom float64) (ports.MapSurface, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("acquire surface: %w", err)
	}
	fc := geojson.NewFeatureCollection()
	fc.ExtraMembers = geojson.Properties{
		"center": []float64{center.Lng, center.Lat},
		"zoom":   zoom,
	}
	metrics.MapSurfacesLive.Inc()
	return &Surface{fc: fc}, nil
}

// Surface is a GeoJSON-backed ports.MapSurface. Coordinates are written in
// GeoJSON [lng, lat] order.
type Surface struct {
	mu       sync.Mutex
	fc       *geojson.FeatureCollection
	released bool
}

func (s *Surface) AddMarker(m ports.Marker) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return ErrReleased
	}

	f := geojson.NewFeature(orb.Point{m.Position.Lng, m.Position.Lat})
	if m.Ref != "" {
		f.ID = m.Ref
	}
	f.Properties["kind"] = string(m.Kind)
	f.Properties["marker-color"] = m.Color
	f.Properties["marker-scale"] = m.Scale
	if m.Label != "" {
		f.Properties["label"] = m.Label
	}
	f.Properties["popup"] = m.Popup
	s.fc.Append(f)
	return nil
}

func (s *Surface) AddLine(l ports.Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return ErrReleased
	}
	if len(l.Points) < 2 {
		return fmt.Errorf("line %q needs at least two points, got %d", l.ID, len(l.Points))
	}

	ls := make(orb.LineString, 0, len(l.Points))
	for _, p := range l.Points {
		ls = append(ls, orb.Point{p.Lng, p.Lat})
	}
	f := geojson.NewFeature(ls)
	if l.ID != "" {
		f.ID = l.ID
	}
	f.Properties["kind"] = "path"
	f.Properties["stroke"] = l.Color
	f.Properties["stroke-width"] = l.Width
	f.Properties["stroke-opacity"] = l.Opacity
	f.Properties["line-join"] = "round"
	f.Properties["line-cap"] = "round"
	s.fc.Append(f)
	return nil
}

// Snapshot marshals the features drawn so far.
func (s *Surface) Snapshot() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return nil, ErrReleased
	}
	return s.fc.MarshalJSON()
}

// Release drops the recorded features. Releasing twice returns ErrReleased.
func (s *Surface) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return ErrReleased
	}
	s.released = true
	s.fc = nil
	metrics.MapSurfacesLive.Dec()
	return nil
}
