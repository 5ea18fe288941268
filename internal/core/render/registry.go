package render

import (
	"errors"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/ports"
)

// ErrRegistryClosed is returned by Acquire after Close.
var ErrRegistryClosed = errors.New("view registry closed")

// OverviewKey is the registry key of the all-bears map.
const OverviewKey = "overview"

// Registry keeps one live view per key. Views idle for longer than the TTL
// are evicted, and every view leaving the registry is closed so its surface
// is released.
type Registry struct {
	factory  ports.SurfaceFactory
	renderer *Renderer
	ttl      time.Duration
	log      zerolog.Logger

	mu     sync.Mutex
	views  *cache.Cache
	closed bool

	stop    chan struct{}
	sweeper sync.WaitGroup
}

// NewRegistry creates a registry. A positive cleanupInterval starts a
// background sweep that runs until Close. With zero, expired views are closed
// on the next Acquire of the same key, on Sweep or on Close.
func NewRegistry(factory ports.SurfaceFactory, renderer *Renderer, ttl, cleanupInterval time.Duration, log zerolog.Logger) *Registry {
	// go-cache's own janitor cannot be stopped, so it stays off and
	// sweepEvery does its job.
	r := &Registry{
		factory:  factory,
		renderer: renderer,
		ttl:      ttl,
		log:      log,
		views:    cache.New(ttl, 0),
		stop:     make(chan struct{}),
	}
	r.views.OnEvicted(func(key string, v interface{}) {
		view, ok := v.(*View)
		if !ok {
			return
		}
		if err := view.Close(); err != nil {
			r.log.Warn().Err(err).Str("view", key).Msg("failed to close evicted view")
			return
		}
		r.log.Debug().Str("view", key).Msg("view closed")
	})
	if cleanupInterval > 0 {
		r.sweeper.Add(1)
		go r.sweepEvery(cleanupInterval)
	}
	return r
}

func (r *Registry) sweepEvery(interval time.Duration) {
	defer r.sweeper.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Acquire returns the live view for key, creating it when needed. Each call
// restarts the view's idle timer.
func (r *Registry) Acquire(key string) (*View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, ErrRegistryClosed
	}
	if v, ok := r.views.Get(key); ok {
		r.views.SetDefault(key, v)
		return v.(*View), nil
	}

	// An expired view may still be held; deleting it runs the eviction hook.
	r.views.Delete(key)

	view := NewView(key, r.factory, r.renderer, r.log)
	r.views.SetDefault(key, view)
	return view, nil
}

// Lookup returns the live view for key without creating one.
func (r *Registry) Lookup(key string) (*View, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, false
	}
	v, ok := r.views.Get(key)
	if !ok {
		return nil, false
	}
	r.views.SetDefault(key, v)
	return v.(*View), true
}

// Dismiss closes and forgets the view for key.
func (r *Registry) Dismiss(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views.Delete(key)
}

// Sweep closes every view whose idle timer has run out.
func (r *Registry) Sweep() {
	r.views.DeleteExpired()
}

// Len reports the number of views currently held, expired ones included.
func (r *Registry) Len() int {
	return r.views.ItemCount()
}

// Close stops the background sweep and closes every view. The registry
// cannot be used afterwards.
func (r *Registry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.stop)
	r.views.DeleteExpired()
	for key := range r.views.Items() {
		r.views.Delete(key)
	}
	r.mu.Unlock()

	r.sweeper.Wait()
}

// BearKey is the registry key of a single bear's map.
func BearKey(bearID string) string {
	return "bear:" + bearID
}
