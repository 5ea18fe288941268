package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/ports"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/render"
)

// countingFactory hands out surfaces that only track whether they are held.
type countingFactory struct {
	mu       sync.Mutex
	acquired int
	live     int
}

func (f *countingFactory) Acquire(context.Context, domain.Coordinates, float64) (ports.MapSurface, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acquired++
	f.live++
	return &countingSurface{factory: f}, nil
}

type countingSurface struct {
	factory *countingFactory
	markers int
	lines   int
}

func (s *countingSurface) AddMarker(ports.Marker) error {
	s.markers++
	return nil
}

func (s *countingSurface) AddLine(ports.Line) error {
	s.lines++
	return nil
}

func (s *countingSurface) Snapshot() ([]byte, error) {
	return []byte(`{}`), nil
}

func (s *countingSurface) Release() error {
	s.factory.mu.Lock()
	defer s.factory.mu.Unlock()
	s.factory.live--
	return nil
}

func (f *countingFactory) counts() (acquired, live int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.acquired, f.live
}

func newTestRegistry(f ports.SurfaceFactory) *render.Registry {
	palette := render.NewPalette(nil, "")
	return render.NewRegistry(f, render.NewRenderer(palette, zerolog.Nop()), time.Minute, 0, zerolog.Nop())
}

func at(min int) *time.Time {
	t := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(min) * time.Minute)
	return &t
}

func TestJourneyService_GetJourney_OrdersOutOfOrderSightings(t *testing.T) {
	sightings := newStubSightingRepo()
	// stored in a different order than they happened
	sightings.seed(domain.Sighting{ID: "c", BearID: "finlay", Location: &domain.Coordinates{Lat: 2, Lng: 2}, CreatedAt: at(3)})
	sightings.seed(domain.Sighting{ID: "a", BearID: "finlay", Location: &domain.Coordinates{Lat: 0, Lng: 0}, CreatedAt: at(1)})
	sightings.seed(domain.Sighting{ID: "b", BearID: "finlay", Location: &domain.Coordinates{Lat: 1, Lng: 1}, CreatedAt: at(2)})

	views := newTestRegistry(&countingFactory{})
	defer views.Close()
	svc := NewJourneyService(newStubBearRepo(finlay()), sightings, views, render.NewPalette(nil, ""), zerolog.Nop())

	detail, err := svc.GetJourney(context.Background(), "finlay")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(detail.Journey) != 4 || !detail.Journey[0].IsOrigin() {
		t.Fatalf("expected origin plus 3 sightings, got %d points", len(detail.Journey))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got := detail.Journey[i+1].Sighting.ID; got != want {
			t.Errorf("point %d: expected %s, got %s", i+1, want, got)
		}
	}
	if detail.Current != (domain.Coordinates{Lat: 2, Lng: 2}) {
		t.Errorf("expected current location (2,2), got %+v", detail.Current)
	}
	if detail.Color != "#d2691e" {
		t.Errorf("expected the bear's own color, got %s", detail.Color)
	}
}

func TestJourneyService_GetJourney_CurrentSkipsMalformedSighting(t *testing.T) {
	sightings := newStubSightingRepo()
	sightings.seed(domain.Sighting{ID: "a", BearID: "finlay", Location: &domain.Coordinates{Lat: 1, Lng: 1}, CreatedAt: at(1)})
	sightings.seed(domain.Sighting{ID: "broken", BearID: "finlay", CreatedAt: at(2)})

	views := newTestRegistry(&countingFactory{})
	defer views.Close()
	svc := NewJourneyService(newStubBearRepo(finlay()), sightings, views, render.NewPalette(nil, ""), zerolog.Nop())

	detail, err := svc.GetJourney(context.Background(), "finlay")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Current != (domain.Coordinates{Lat: 1, Lng: 1}) {
		t.Errorf("expected last usable location, got %+v", detail.Current)
	}
}

func TestJourneyService_GetJourney_NotFound(t *testing.T) {
	views := newTestRegistry(&countingFactory{})
	defer views.Close()
	svc := NewJourneyService(newStubBearRepo(), newStubSightingRepo(), views, render.NewPalette(nil, ""), zerolog.Nop())

	if _, err := svc.GetJourney(context.Background(), "ghost"); !errors.Is(err, domain.ErrBearNotFound) {
		t.Fatalf("expected ErrBearNotFound, got %v", err)
	}
}

func TestJourneyService_RenderMap_ReusesSurfaceUntilJourneyChanges(t *testing.T) {
	factory := &countingFactory{}
	views := newTestRegistry(factory)
	defer views.Close()
	sightings := newStubSightingRepo()
	svc := NewJourneyService(newStubBearRepo(finlay()), sightings, views, render.NewPalette(nil, ""), zerolog.Nop())

	first, err := svc.RenderMap(context.Background(), "finlay")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := svc.RenderMap(context.Background(), "finlay")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if first.Fingerprint != second.Fingerprint {
		t.Errorf("fingerprint changed without new sightings")
	}
	if acquired, _ := factory.counts(); acquired != 1 {
		t.Errorf("expected 1 surface for an unchanged journey, got %d", acquired)
	}

	sightings.seed(domain.Sighting{ID: "a", BearID: "finlay", Location: &domain.Coordinates{Lat: 48.85, Lng: 2.35}, CreatedAt: at(1)})
	third, err := svc.RenderMap(context.Background(), "finlay")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if third.Fingerprint == first.Fingerprint {
		t.Errorf("expected a new fingerprint after a new sighting")
	}
	if acquired, live := factory.counts(); acquired != 2 || live != 1 {
		t.Errorf("expected 2 acquired and 1 live surface, got %d and %d", acquired, live)
	}
}

func TestJourneyService_Refresh(t *testing.T) {
	factory := &countingFactory{}
	views := newTestRegistry(factory)
	defer views.Close()
	sightings := newStubSightingRepo()
	svc := NewJourneyService(newStubBearRepo(finlay()), sightings, views, render.NewPalette(nil, ""), zerolog.Nop())

	if err := svc.Refresh(context.Background(), "finlay"); err != nil {
		t.Fatalf("refresh without a view: %v", err)
	}
	if acquired, _ := factory.counts(); acquired != 0 {
		t.Fatalf("refresh must not create views, got %d surfaces", acquired)
	}

	if _, err := svc.RenderMap(context.Background(), "finlay"); err != nil {
		t.Fatalf("render: %v", err)
	}
	sightings.seed(domain.Sighting{ID: "a", BearID: "finlay", Location: &domain.Coordinates{Lat: 48.85, Lng: 2.35}, CreatedAt: at(1)})

	if err := svc.Refresh(context.Background(), "finlay"); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if acquired, live := factory.counts(); acquired != 2 || live != 1 {
		t.Errorf("expected a redraw onto a fresh surface, got %d acquired / %d live", acquired, live)
	}
}

func TestJourneyService_DismissMap(t *testing.T) {
	factory := &countingFactory{}
	views := newTestRegistry(factory)
	defer views.Close()
	svc := NewJourneyService(newStubBearRepo(finlay()), newStubSightingRepo(), views, render.NewPalette(nil, ""), zerolog.Nop())

	if _, err := svc.RenderMap(context.Background(), "finlay"); err != nil {
		t.Fatalf("render: %v", err)
	}
	svc.DismissMap("finlay")

	if _, live := factory.counts(); live != 0 {
		t.Errorf("expected the surface released, %d live", live)
	}
}
