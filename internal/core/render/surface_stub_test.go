package render

import (
	"context"
	"errors"
	"sync"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/ports"
)

var errStubReleased = errors.New("stub surface released")

type stubSurface struct {
	mu       sync.Mutex
	markers  []ports.Marker
	lines    []ports.Line
	released int
	failOn   string
}

func (s *stubSurface) AddMarker(m ports.Marker) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released > 0 {
		return errStubReleased
	}
	if s.failOn == "marker" {
		return errors.New("marker rejected")
	}
	s.markers = append(s.markers, m)
	return nil
}

func (s *stubSurface) AddLine(l ports.Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released > 0 {
		return errStubReleased
	}
	s.lines = append(s.lines, l)
	return nil
}

func (s *stubSurface) Snapshot() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released > 0 {
		return nil, errStubReleased
	}
	return []byte(`{"type":"FeatureCollection","features":[]}`), nil
}

func (s *stubSurface) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.released++
	if s.released > 1 {
		return errStubReleased
	}
	return nil
}

type stubFactory struct {
	mu       sync.Mutex
	surfaces []*stubSurface
	failOn   string
	err      error
}

func (f *stubFactory) Acquire(_ context.Context, _ domain.Coordinates, _ float64) (ports.MapSurface, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	s := &stubSurface{failOn: f.failOn}
	f.surfaces = append(f.surfaces, s)
	return s, nil
}

func (f *stubFactory) acquired() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.surfaces)
}

// live counts surfaces acquired and not yet released.
func (f *stubFactory) live() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, s := range f.surfaces {
		s.mu.Lock()
		if s.released == 0 {
			n++
		}
		s.mu.Unlock()
	}
	return n
}

func (f *stubFactory) doubleReleased() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.surfaces {
		s.mu.Lock()
		n := s.released
		s.mu.Unlock()
		if n > 1 {
			return true
		}
	}
	return false
}
