package ports

import (
	"context"
	"iter"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
)

// Geocoder resolves free text to ranked candidates, best first.
type Geocoder interface {
	// Lookup performs exactly one request. It fails with
	// domain.ErrGeocodeUnavailable or domain.ErrNoMatch.
	Lookup(ctx context.Context, query string) (iter.Seq[domain.GeocodeCandidate], error)
}

// FirstCandidate pulls the top-ranked candidate from a lookup result.
func FirstCandidate(seq iter.Seq[domain.GeocodeCandidate]) (*domain.GeocodeCandidate, bool) {
	if seq == nil {
		return nil, false
	}
	for c := range seq {
		return &c, true
	}
	return nil, false
}
