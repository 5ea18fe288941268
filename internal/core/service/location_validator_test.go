package service

import (
	"errors"
	"reflect"
	"testing"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
)

func parisCandidate() *domain.GeocodeCandidate {
	return &domain.GeocodeCandidate{
		Coordinates: domain.Coordinates{Lat: 48.8566, Lng: 2.3522},
		PlaceKind:   domain.PlaceKindCity,
		Relevance:   0.95,
		Context: []domain.RegionContext{
			{ID: "region.13220", Name: "Paris"},
			{ID: "country.8781", Name: "France"},
		},
	}
}

func TestLocationValidator_AcceptsCity(t *testing.T) {
	v := NewLocationValidator(0)

	got, err := v.Validate(parisCandidate(), domain.Place{City: "Paris", Country: "France"})
	if err != nil {
		t.Fatalf("expected acceptance, got: %v", err)
	}
	if got.Lat != 48.8566 || got.Lng != 2.3522 {
		t.Fatalf("unexpected coordinates: %+v", got)
	}
}

func TestLocationValidator_Rejections(t *testing.T) {
	cases := []struct {
		name      string
		candidate func() *domain.GeocodeCandidate
		claim     domain.Place
		wantErr   error
		wantCheck string
	}{
		{
			name:      "no candidate",
			candidate: func() *domain.GeocodeCandidate { return nil },
			claim:     domain.Place{City: "Atlantis", Country: "Ocean"},
			wantErr:   domain.ErrNoCandidate,
			wantCheck: CheckHasCandidate,
		},
		{
			name: "landmark",
			candidate: func() *domain.GeocodeCandidate {
				c := parisCandidate()
				c.PlaceKind = "poi.landmark"
				return c
			},
			claim:     domain.Place{City: "Eiffel Tower", Country: "France"},
			wantErr:   domain.ErrWrongPlaceKind,
			wantCheck: CheckCityLevel,
		},
		{
			name: "low relevance",
			candidate: func() *domain.GeocodeCandidate {
				c := parisCandidate()
				c.Relevance = 0.79
				return c
			},
			claim:     domain.Place{City: "Paris", Country: "France"},
			wantErr:   domain.ErrLowConfidence,
			wantCheck: CheckRelevance,
		},
		{
			name:      "wrong country",
			candidate: parisCandidate,
			claim:     domain.Place{City: "Paris", Country: "Germany"},
			wantErr:   domain.ErrCountryMismatch,
			wantCheck: CheckCountryMatch,
		},
		{
			name: "no country context",
			candidate: func() *domain.GeocodeCandidate {
				c := parisCandidate()
				c.Context = c.Context[:1]
				return c
			},
			claim:     domain.Place{City: "Paris", Country: "France"},
			wantErr:   domain.ErrCountryMismatch,
			wantCheck: CheckCountryMatch,
		},
		{
			name: "abbreviation is not a substring",
			candidate: func() *domain.GeocodeCandidate {
				c := parisCandidate()
				c.Context = []domain.RegionContext{{ID: "country.1", Name: "United Kingdom"}}
				return c
			},
			claim:     domain.Place{City: "London", Country: "UK"},
			wantErr:   domain.ErrCountryMismatch,
			wantCheck: CheckCountryMatch,
		},
	}

	v := NewLocationValidator(DefaultMinRelevance)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.Validate(tc.candidate(), tc.claim)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			var re *domain.RejectionError
			if !errors.As(err, &re) {
				t.Fatalf("expected *RejectionError, got %T", err)
			}
			if re.Check != tc.wantCheck {
				t.Fatalf("expected check %s, got %s", tc.wantCheck, re.Check)
			}
		})
	}
}

func TestLocationValidator_RelevanceBoundaryPasses(t *testing.T) {
	c := parisCandidate()
	c.Relevance = 0.8

	if _, err := NewLocationValidator(0).Validate(c, domain.Place{City: "Paris", Country: "France"}); err != nil {
		t.Fatalf("relevance exactly at threshold must pass, got %v", err)
	}
}

func TestLocationValidator_CountryCaseInsensitiveSubstring(t *testing.T) {
	c := parisCandidate()
	c.Context = []domain.RegionContext{{ID: "country.9", Name: "Côte d'Ivoire"}}

	for _, entered := range []string{"côte d'ivoire", "CÔTE", " ivoire "} {
		if _, err := NewLocationValidator(0).Validate(c, domain.Place{City: "Abidjan", Country: entered}); err != nil {
			t.Errorf("%q: expected match, got %v", entered, err)
		}
	}
}

func TestLocationValidator_ShortCircuits(t *testing.T) {
	c := parisCandidate()
	c.PlaceKind = "address"
	c.Relevance = 0.1

	_, err := NewLocationValidator(0).Validate(c, domain.Place{City: "x", Country: "Germany"})
	if !errors.Is(err, domain.ErrWrongPlaceKind) {
		t.Fatalf("expected first failing check to win, got %v", err)
	}
}

func TestLocationValidator_InsertBefore(t *testing.T) {
	v := NewLocationValidator(0)
	errBanned := errors.New("banned")
	banned := LocationCheck{Name: "not_banned", Fn: func(_ *domain.GeocodeCandidate, claim domain.Place) error {
		if claim.City == "Nowhere" {
			return errBanned
		}
		return nil
	}}

	if err := v.InsertBefore(CheckRelevance, banned); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	want := []string{CheckHasCandidate, CheckCityLevel, "not_banned", CheckRelevance, CheckCountryMatch}
	if got := v.Checks(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	_, err := v.Validate(parisCandidate(), domain.Place{City: "Nowhere", Country: "France"})
	var re *domain.RejectionError
	if !errors.As(err, &re) || re.Check != "not_banned" || !errors.Is(err, errBanned) {
		t.Fatalf("expected not_banned rejection, got %v", err)
	}

	if err := v.InsertBefore("missing", banned); err == nil {
		t.Fatalf("expected error for unknown check")
	}
}
