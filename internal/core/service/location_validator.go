package service

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
)

// DefaultMinRelevance is the lowest relevance score accepted for a candidate.
const DefaultMinRelevance = 0.8

// Names of the built-in location checks, in evaluation order.
const (
	CheckHasCandidate = "has_candidate"
	CheckCityLevel    = "city_level"
	CheckRelevance    = "relevance"
	CheckCountryMatch = "country_match"
)

// LocationCheck is a named predicate over a geocode candidate and the place
// the submitter typed in. Fn returns nil on pass.
type LocationCheck struct {
	Name string
	Fn   func(c *domain.GeocodeCandidate, claim domain.Place) error
}

// LocationValidator runs its checks in order and stops at the first failure.
type LocationValidator struct {
	checks []LocationCheck
}

// NewLocationValidator returns a validator with the built-in checks. A
// non-positive minRelevance falls back to DefaultMinRelevance.
func NewLocationValidator(minRelevance float64) *LocationValidator {
	if minRelevance <= 0 {
		minRelevance = DefaultMinRelevance
	}
	return &LocationValidator{checks: DefaultLocationChecks(minRelevance)}
}

// DefaultLocationChecks returns the built-in checks in evaluation order.
func DefaultLocationChecks(minRelevance float64) []LocationCheck {
	return []LocationCheck{
		{Name: CheckHasCandidate, Fn: hasCandidate},
		{Name: CheckCityLevel, Fn: cityLevel},
		{Name: CheckRelevance, Fn: relevanceAtLeast(minRelevance)},
		{Name: CheckCountryMatch, Fn: countryMatches},
	}
}

// Checks lists the check names in evaluation order.
func (v *LocationValidator) Checks() []string {
	names := make([]string, len(v.checks))
	for i, c := range v.checks {
		names[i] = c.Name
	}
	return names
}

// Append adds a check after the existing ones.
func (v *LocationValidator) Append(check LocationCheck) {
	v.checks = append(v.checks, check)
}

// InsertBefore adds a check in front of the named one.
func (v *LocationValidator) InsertBefore(name string, check LocationCheck) error {
	for i, c := range v.checks {
		if c.Name == name {
			v.checks = append(v.checks[:i], append([]LocationCheck{check}, v.checks[i:]...)...)
			return nil
		}
	}
	return fmt.Errorf("insert check %q: no check named %q", check.Name, name)
}

// Validate returns the candidate's coordinates when every check passes, or
// the first failure as a *domain.RejectionError.
func (v *LocationValidator) Validate(c *domain.GeocodeCandidate, claim domain.Place) (domain.Coordinates, error) {
	for _, check := range v.checks {
		if err := check.Fn(c, claim); err != nil {
			return domain.Coordinates{}, asRejection(check.Name, err)
		}
	}
	if c == nil {
		return domain.Coordinates{}, asRejection(CheckHasCandidate, domain.ErrNoCandidate)
	}
	return c.Coordinates, nil
}

func asRejection(name string, err error) error {
	if re, ok := err.(*domain.RejectionError); ok {
		if re.Check == "" {
			re.Check = name
		}
		return re
	}
	return &domain.RejectionError{Check: name, Err: err}
}

func hasCandidate(c *domain.GeocodeCandidate, _ domain.Place) error {
	if c == nil {
		return domain.ErrNoCandidate
	}
	return nil
}

func cityLevel(c *domain.GeocodeCandidate, _ domain.Place) error {
	if c.PlaceKind != domain.PlaceKindCity {
		return &domain.RejectionError{
			Err:    domain.ErrWrongPlaceKind,
			Reason: fmt.Sprintf("resolved to %q", c.PlaceKind),
		}
	}
	return nil
}

func relevanceAtLeast(min float64) func(*domain.GeocodeCandidate, domain.Place) error {
	return func(c *domain.GeocodeCandidate, _ domain.Place) error {
		if c.Relevance < min {
			return &domain.RejectionError{
				Err:    domain.ErrLowConfidence,
				Reason: fmt.Sprintf("relevance %.2f below %.2f", c.Relevance, min),
			}
		}
		return nil
	}
}

func countryMatches(c *domain.GeocodeCandidate, claim domain.Place) error {
	country, ok := c.Country()
	if !ok {
		return &domain.RejectionError{Err: domain.ErrCountryMismatch, Reason: "candidate has no country"}
	}
	if !strings.Contains(fold(country.Name), fold(claim.Country)) {
		return &domain.RejectionError{
			Err:    domain.ErrCountryMismatch,
			Reason: fmt.Sprintf("%q does not contain %q", country.Name, claim.Country),
		}
	}
	return nil
}

// fold prepares a string for case-insensitive comparison. A Caser keeps
// state, so one is built per call.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}
