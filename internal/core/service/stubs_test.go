package service

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubBearRepo struct {
	mu      sync.Mutex
	bears   map[string]*domain.Bear
	order   []string
	findErr error
}

func newStubBearRepo(bears ...*domain.Bear) *stubBearRepo {
	r := &stubBearRepo{bears: make(map[string]*domain.Bear)}
	for _, b := range bears {
		_ = r.Create(context.Background(), b)
	}
	return r
}

func (r *stubBearRepo) FindByID(_ context.Context, id string) (*domain.Bear, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	b, ok := r.bears[id]
	if !ok {
		return nil, domain.ErrBearNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBearRepo) List(_ context.Context) ([]*domain.Bear, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Bear, 0, len(r.order))
	for _, id := range r.order {
		clone := *r.bears[id]
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubBearRepo) Create(_ context.Context, b *domain.Bear) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.bears[b.ID]; exists {
		return domain.ErrBearExists
	}
	clone := *b
	r.bears[b.ID] = &clone
	r.order = append(r.order, b.ID)
	return nil
}

// stubSightingRepo stamps CreatedAt from a fake clock, the way the store
// assigns its own timestamp. Like the Mongo store, timestamp ties are broken
// by id in the direction of the requested order.
type stubSightingRepo struct {
	mu        sync.Mutex
	sightings []domain.Sighting
	clock     time.Time
	insertErr error
	listErr   error
	inserted  int
	insertCtx context.Context
}

func newStubSightingRepo() *stubSightingRepo {
	return &stubSightingRepo{clock: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (r *stubSightingRepo) Insert(ctx context.Context, s *domain.Sighting) (*domain.Sighting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insertCtx = ctx
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	r.inserted++
	r.clock = r.clock.Add(time.Minute)
	stored := *s
	stored.ID = fmt.Sprintf("s%d", r.inserted)
	ts := r.clock
	stored.CreatedAt = &ts
	r.sightings = append(r.sightings, stored)
	return &stored, nil
}

// seed stores a sighting as-is, bypassing the fake clock.
func (r *stubSightingRepo) seed(s domain.Sighting) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sightings = append(r.sightings, s)
}

func (r *stubSightingRepo) ListByBear(_ context.Context, bearID string, order domain.SortOrder) ([]domain.Sighting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []domain.Sighting
	for _, s := range r.sightings {
		if s.BearID == bearID {
			out = append(out, s)
		}
	}
	slices.SortFunc(out, func(a, b domain.Sighting) int {
		var c int
		switch {
		case a.CreatedAt == nil && b.CreatedAt == nil:
			c = 0
		case a.CreatedAt == nil:
			c = -1
		case b.CreatedAt == nil:
			c = 1
		default:
			c = a.CreatedAt.Compare(*b.CreatedAt)
		}
		if c == 0 {
			c = strings.Compare(a.ID, b.ID)
		}
		if order == domain.NewestFirst {
			return -c
		}
		return c
	})
	return out, nil
}

// ---------------------------------------------------------------------------
// Geocoder, publisher and queue stubs
// ---------------------------------------------------------------------------

type stubGeocoder struct {
	results map[string][]domain.GeocodeCandidate
	err     error
	calls   []string
}

func (g *stubGeocoder) Lookup(_ context.Context, query string) (iter.Seq[domain.GeocodeCandidate], error) {
	g.calls = append(g.calls, query)
	if g.err != nil {
		return nil, g.err
	}
	candidates, ok := g.results[query]
	if !ok || len(candidates) == 0 {
		return nil, domain.ErrNoMatch
	}
	return slices.Values(candidates), nil
}

type stubPublisher struct {
	events []ports.SightingRecorded
	err    error
}

func (p *stubPublisher) PublishSightingRecorded(_ context.Context, ev ports.SightingRecorded) error {
	p.events = append(p.events, ev)
	return p.err
}

type stubQueue struct {
	bearIDs []string
}

func (q *stubQueue) Enqueue(bearID string) {
	q.bearIDs = append(q.bearIDs, bearID)
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func finlay() *domain.Bear {
	return &domain.Bear{
		ID:          "finlay",
		Name:        "Finlay",
		Origin:      domain.Coordinates{Lat: 55.9533, Lng: -3.1883},
		OriginPlace: domain.Place{City: "Edinburgh", Country: "Scotland"},
		Color:       "#d2691e",
	}
}

func eiffelCandidate() domain.GeocodeCandidate {
	return domain.GeocodeCandidate{
		Coordinates: domain.Coordinates{Lat: 48.8584, Lng: 2.2945},
		PlaceKind:   "poi.landmark",
		Relevance:   1,
		Context: []domain.RegionContext{
			{ID: "place.1", Name: "Paris"},
			{ID: "country.8781", Name: "France"},
		},
	}
}

func parisGeocoder() *stubGeocoder {
	paris := *parisCandidate()
	return &stubGeocoder{results: map[string][]domain.GeocodeCandidate{
		"Paris, France":        {paris},
		"Paris, Germany":       {paris},
		"Eiffel Tower, France": {eiffelCandidate()},
	}}
}
