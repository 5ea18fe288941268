// Package mapbox implements ports.Geocoder on top of the Mapbox Geocoding v5
// places endpoint.
package mapbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/pkg/metrics"
)

// DefaultBaseURL is the public Mapbox API host.
const DefaultBaseURL = "https://api.mapbox.com"

const placesPath = "/geocoding/v5/mapbox.places/"

// Config captures the settings of the geocoding client.
type Config struct {
	BaseURL string
	Token   string
	// HTTPClient is used for every request. It is left without a timeout:
	// a lookup only ends when the transport or the caller's context does.
	HTTPClient *http.Client
}

// Client looks up city-level places by free text.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient returns a Client. A missing token is a configuration error.
func NewClient(cfg Config, log zerolog.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New("mapbox: access token is required")
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{
		baseURL: base,
		token:   cfg.Token,
		http:    hc,
		log:     log.With().Str("component", "geocoder").Logger(),
	}, nil
}

type featureCollection struct {
	Features []json.RawMessage `json:"features"`
}

type contextEntry struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type feature struct {
	PlaceType []string  `json:"place_type"`
	Relevance float64   `json:"relevance"`
	Center    []float64 `json:"center"`
	Geometry  struct {
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
	Context []contextEntry `json:"context"`
}

// Lookup sends one request restricted to city-level places with
// autocompletion disabled and returns the candidates best first. Features
// are decoded lazily while the sequence is consumed; undecodable ones are
// skipped.
func (c *Client) Lookup(ctx context.Context, query string) (iter.Seq[domain.GeocodeCandidate], error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("geocode: empty query: %w", domain.ErrNoMatch)
	}

	start := time.Now()
	fc, err := c.fetch(ctx, query)
	switch {
	case errors.Is(err, domain.ErrGeocodeUnavailable):
		metrics.GeocodeDuration.WithLabelValues("unavailable").Observe(time.Since(start).Seconds())
		c.log.Warn().Err(err).Str("query", query).Msg("geocode lookup failed")
		return nil, err
	case err != nil:
		return nil, err
	}

	if len(fc.Features) == 0 {
		metrics.GeocodeDuration.WithLabelValues("no_match").Observe(time.Since(start).Seconds())
		c.log.Debug().Str("query", query).Msg("geocode returned no features")
		return nil, fmt.Errorf("geocode %q: %w", query, domain.ErrNoMatch)
	}
	metrics.GeocodeDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())

	return func(yield func(domain.GeocodeCandidate) bool) {
		for i, raw := range fc.Features {
			cand, err := decodeFeature(raw)
			if err != nil {
				c.log.Debug().Err(err).Int("index", i).Str("query", query).Msg("skipping undecodable feature")
				continue
			}
			if !yield(cand) {
				return
			}
		}
	}, nil
}

func (c *Client) fetch(ctx context.Context, query string) (*featureCollection, error) {
	params := url.Values{}
	params.Set("access_token", c.token)
	params.Set("types", domain.PlaceKindCity)
	params.Set("autocomplete", "false")
	params.Set("limit", "1")

	endpoint := c.baseURL + placesPath + url.PathEscape(query) + ".json?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("geocode: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode: %w: %v", domain.ErrGeocodeUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("geocode: %w: status %d", domain.ErrGeocodeUnavailable, resp.StatusCode)
	}

	var fc featureCollection
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		return nil, fmt.Errorf("geocode: %w: decode response: %v", domain.ErrGeocodeUnavailable, err)
	}
	return &fc, nil
}

func decodeFeature(raw json.RawMessage) (domain.GeocodeCandidate, error) {
	var f feature
	if err := json.Unmarshal(raw, &f); err != nil {
		return domain.GeocodeCandidate{}, err
	}

	lngLat := f.Center
	if len(lngLat) < 2 {
		lngLat = f.Geometry.Coordinates
	}
	if len(lngLat) < 2 {
		return domain.GeocodeCandidate{}, errors.New("feature has no coordinates")
	}

	cand := domain.GeocodeCandidate{
		Coordinates: domain.Coordinates{Lat: lngLat[1], Lng: lngLat[0]},
		Relevance:   f.Relevance,
		Context:     make([]domain.RegionContext, 0, len(f.Context)),
	}
	if len(f.PlaceType) > 0 {
		cand.PlaceKind = f.PlaceType[0]
	}
	for _, ce := range f.Context {
		cand.Context = append(cand.Context, domain.RegionContext{ID: ce.ID, Name: ce.Text})
	}
	return cand, nil
}
