package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/ports"
)

func sceneFor(key string) *ports.MapScene {
	return &ports.MapScene{
		Key:         key,
		Fingerprint: "00000000deadbeef",
		GeoJSON:     []byte(`{"type":"FeatureCollection","features":[]}`),
	}
}

func TestMapHandler_Bear(t *testing.T) {
	e := newEcho()
	journeys := &stubJourneyService{
		renderFn: func(ctx context.Context, bearID string) (*ports.MapScene, error) {
			return sceneFor("bear:" + bearID), nil
		},
	}
	h := NewMapHandler(journeys, &stubOverviewService{})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/bears/finlay/map", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("finlay")

	if err := h.Bear(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/geo+json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if etag := rec.Header().Get("ETag"); etag != `"00000000deadbeef"` {
		t.Fatalf("unexpected etag %q", etag)
	}
	if rec.Body.String() != `{"type":"FeatureCollection","features":[]}` {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestMapHandler_Bear_NotModified(t *testing.T) {
	for _, header := range []string{`"00000000deadbeef"`, `W/"00000000deadbeef"`, `"other", "00000000deadbeef"`, "*"} {
		t.Run(header, func(t *testing.T) {
			e := newEcho()
			journeys := &stubJourneyService{
				renderFn: func(ctx context.Context, bearID string) (*ports.MapScene, error) {
					return sceneFor("bear:" + bearID), nil
				},
			}
			h := NewMapHandler(journeys, &stubOverviewService{})

			req := httptest.NewRequest(http.MethodGet, "/v1/bears/finlay/map", nil)
			req.Header.Set("If-None-Match", header)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues("finlay")

			if err := h.Bear(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusNotModified {
				t.Fatalf("expected 304, got %d", rec.Code)
			}
			if rec.Body.Len() != 0 {
				t.Fatalf("304 must not carry a body")
			}
		})
	}
}

func TestMapHandler_Bear_StaleETag(t *testing.T) {
	e := newEcho()
	journeys := &stubJourneyService{
		renderFn: func(ctx context.Context, bearID string) (*ports.MapScene, error) {
			return sceneFor("bear:" + bearID), nil
		},
	}
	h := NewMapHandler(journeys, &stubOverviewService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/bears/finlay/map", nil)
	req.Header.Set("If-None-Match", `"0000000000000000"`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("finlay")

	if err := h.Bear(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestMapHandler_Bear_Error(t *testing.T) {
	e := newEcho()
	journeys := &stubJourneyService{
		renderFn: func(ctx context.Context, bearID string) (*ports.MapScene, error) {
			return nil, domain.ErrStoreUnavailable
		},
	}
	h := NewMapHandler(journeys, &stubOverviewService{})

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/bears/finlay/map", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("finlay")

	if err := h.Bear(c); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestMapHandler_Dismiss(t *testing.T) {
	e := newEcho()
	journeys := &stubJourneyService{}
	h := NewMapHandler(journeys, &stubOverviewService{})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/v1/bears/finlay/map", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("finlay")

	if err := h.Dismiss(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(journeys.dismissed) != 1 || journeys.dismissed[0] != "finlay" {
		t.Fatalf("unexpected dismissals: %v", journeys.dismissed)
	}
}

func TestMapHandler_Overview(t *testing.T) {
	e := newEcho()
	overview := &stubOverviewService{
		renderFn: func(ctx context.Context) (*ports.MapScene, error) {
			return sceneFor("overview"), nil
		},
	}
	h := NewMapHandler(&stubJourneyService{}, overview)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/bears/map", nil), rec)

	if err := h.Overview(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || rec.Header().Get("ETag") == "" {
		t.Fatalf("unexpected response: %d %v", rec.Code, rec.Header())
	}
}
