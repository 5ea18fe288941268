package render

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/goleak"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
)

func drawInto(t *testing.T, v *View) {
	t.Helper()
	bear := testBear()
	if _, _, err := v.Update(context.Background(), bear, domain.AssembleJourney(bear.Origin, nil), nil); err != nil {
		t.Fatalf("update: %v", err)
	}
}

func TestRegistry_AcquireReturnsSameView(t *testing.T) {
	r := NewRegistry(&stubFactory{}, newTestRenderer(), time.Minute, 0, zerolog.Nop())
	defer r.Close()

	a, err := r.Acquire("finlay")
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	b, _ := r.Acquire("finlay")
	if a != b {
		t.Errorf("expected the same view for the same key")
	}
	if _, ok := r.Lookup("hamish"); ok {
		t.Errorf("lookup must not create views")
	}
}

func TestRegistry_DismissReleasesSurface(t *testing.T) {
	f := &stubFactory{}
	r := NewRegistry(f, newTestRenderer(), time.Minute, 0, zerolog.Nop())
	defer r.Close()

	v, _ := r.Acquire("finlay")
	drawInto(t, v)

	r.Dismiss("finlay")

	if f.live() != 0 {
		t.Errorf("expected surface released on dismiss, live=%d", f.live())
	}
	if _, ok := r.Lookup("finlay"); ok {
		t.Errorf("expected view to be gone")
	}
	if _, _, err := v.Update(context.Background(), testBear(), nil, nil); !errors.Is(err, ErrViewClosed) {
		t.Errorf("expected dismissed view to be closed, got %v", err)
	}
}

func TestRegistry_IdleViewsAreReleased(t *testing.T) {
	f := &stubFactory{}
	r := NewRegistry(f, newTestRenderer(), 10*time.Millisecond, 0, zerolog.Nop())
	defer r.Close()

	v, _ := r.Acquire("finlay")
	drawInto(t, v)
	time.Sleep(30 * time.Millisecond)

	r.Sweep()

	if f.live() != 0 {
		t.Errorf("expected idle view released, live=%d", f.live())
	}
	if r.Len() != 0 {
		t.Errorf("expected empty registry, got %d", r.Len())
	}
}

func TestRegistry_ExpiredViewReplacedOnAcquire(t *testing.T) {
	f := &stubFactory{}
	r := NewRegistry(f, newTestRenderer(), 10*time.Millisecond, 0, zerolog.Nop())
	defer r.Close()

	old, _ := r.Acquire("finlay")
	drawInto(t, old)
	time.Sleep(30 * time.Millisecond)

	fresh, _ := r.Acquire("finlay")
	if fresh == old {
		t.Fatalf("expected a new view after expiry")
	}
	if f.live() != 0 {
		t.Errorf("expected expired view released, live=%d", f.live())
	}
}

func TestRegistry_CloseReleasesEverything(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := &stubFactory{}
	r := NewRegistry(f, newTestRenderer(), time.Minute, time.Minute, zerolog.Nop())

	for _, key := range []string{"finlay", "hamish", OverviewKey} {
		v, _ := r.Acquire(key)
		drawInto(t, v)
	}
	if f.live() != 3 {
		t.Fatalf("expected 3 live surfaces, got %d", f.live())
	}

	r.Close()

	if f.live() != 0 || f.doubleReleased() {
		t.Errorf("expected every surface released exactly once, live=%d", f.live())
	}
	if _, err := r.Acquire("finlay"); !errors.Is(err, ErrRegistryClosed) {
		t.Errorf("expected ErrRegistryClosed, got %v", err)
	}
}

func TestRegistry_BackgroundSweepReleasesIdleViewsAndStopsOnClose(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := &stubFactory{}
	r := NewRegistry(f, newTestRenderer(), 10*time.Millisecond, 5*time.Millisecond, zerolog.Nop())

	v, _ := r.Acquire("finlay")
	drawInto(t, v)

	deadline := time.Now().Add(2 * time.Second)
	for r.Len() != 0 || f.live() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("idle view was never swept, live=%d", f.live())
		}
		time.Sleep(5 * time.Millisecond)
	}

	r.Close()
	r.Close()
}
