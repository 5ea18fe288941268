package render

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/ports"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/pkg/metrics"
)

// ErrViewClosed is returned when a view is used after Close.
var ErrViewClosed = errors.New("map view closed")

// View owns at most one map surface at a time. A new surface is acquired only
// when the drawn content changes and the previous one is always released
// first. Close releases whatever is held. View is safe for concurrent use.
type View struct {
	key      string
	factory  ports.SurfaceFactory
	renderer *Renderer
	log      zerolog.Logger
	now      func() time.Time

	mu      sync.Mutex
	surface ports.MapSurface
	scene   *ports.MapScene
	closed  bool
}

func NewView(key string, factory ports.SurfaceFactory, renderer *Renderer, log zerolog.Logger) *View {
	return &View{
		key:      key,
		factory:  factory,
		renderer: renderer,
		log:      log.With().Str("view", key).Logger(),
		now:      time.Now,
	}
}

func (v *View) Key() string {
	return v.key
}

// Update redraws the bear's map when its content differs from what is on the
// current surface. The boolean reports whether a redraw happened.
func (v *View) Update(ctx context.Context, bear *domain.Bear, journey domain.Journey, sightings []domain.Sighting) (*ports.MapScene, bool, error) {
	if bear == nil {
		return nil, false, fmt.Errorf("update view %s: nil bear", v.key)
	}
	fp := Fingerprint(bear, journey, sightings)
	center := bear.Origin
	if len(journey) > 0 {
		if cur := journey.Current().Coordinates; cur != nil && cur.Valid() {
			center = *cur
		}
	}
	return v.update(ctx, fp, center, BearZoom, func(s ports.MapSurface) error {
		return v.renderer.Draw(s, bear, journey, sightings)
	})
}

// UpdateOverview is Update for the all-bears map.
func (v *View) UpdateOverview(ctx context.Context, summaries []ports.BearSummary) (*ports.MapScene, bool, error) {
	fp := OverviewFingerprint(summaries)
	return v.update(ctx, fp, OverviewCenter, OverviewZoom, func(s ports.MapSurface) error {
		return v.renderer.DrawOverview(s, summaries)
	})
}

func (v *View) update(ctx context.Context, fp string, center domain.Coordinates, zoom float64, draw func(ports.MapSurface) error) (*ports.MapScene, bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return nil, false, ErrViewClosed
	}
	if v.surface != nil && v.scene != nil && v.scene.Fingerprint == fp {
		metrics.MapRendersTotal.WithLabelValues("unchanged").Inc()
		scene := *v.scene
		return &scene, false, nil
	}

	v.releaseLocked()

	surface, err := v.factory.Acquire(ctx, center, zoom)
	if err != nil {
		metrics.MapRendersTotal.WithLabelValues("error").Inc()
		return nil, false, fmt.Errorf("acquire surface for %s: %w", v.key, err)
	}

	if err := draw(surface); err != nil {
		v.release(surface)
		metrics.MapRendersTotal.WithLabelValues("error").Inc()
		return nil, false, fmt.Errorf("draw %s: %w", v.key, err)
	}
	raw, err := surface.Snapshot()
	if err != nil {
		v.release(surface)
		metrics.MapRendersTotal.WithLabelValues("error").Inc()
		return nil, false, fmt.Errorf("snapshot %s: %w", v.key, err)
	}

	v.surface = surface
	v.scene = &ports.MapScene{
		Key:         v.key,
		Fingerprint: fp,
		GeoJSON:     raw,
		RenderedAt:  v.now().UTC(),
	}
	metrics.MapRendersTotal.WithLabelValues("drawn").Inc()
	v.log.Debug().Str("fingerprint", fp).Msg("map redrawn")

	scene := *v.scene
	return &scene, true, nil
}

// Scene returns the last drawn scene, if any.
func (v *View) Scene() (*ports.MapScene, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed || v.scene == nil {
		return nil, false
	}
	scene := *v.scene
	return &scene, true
}

// Close releases the held surface. Closing twice is a no-op.
func (v *View) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return nil
	}
	v.closed = true
	v.releaseLocked()
	return nil
}

func (v *View) releaseLocked() {
	if v.surface == nil {
		return
	}
	v.release(v.surface)
	v.surface = nil
	v.scene = nil
}

func (v *View) release(s ports.MapSurface) {
	if err := s.Release(); err != nil {
		v.log.Warn().Err(err).Msg("failed to release map surface")
	}
}
