package domain

import "strings"

// PlaceKindCity is the place-kind tag the geocoder uses for city-level results.
const PlaceKindCity = "place"

// countryContextPrefix marks the country-level entry of a region context list.
const countryContextPrefix = "country"

// RegionContext is one containing region of a geocode candidate, e.g.
// {ID: "country.8781", Name: "France"}.
type RegionContext struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GeocodeCandidate is a single text-lookup result. It only lives for the
// duration of one validation pass.
type GeocodeCandidate struct {
	Coordinates Coordinates
	PlaceKind   string
	Relevance   float64
	Context     []RegionContext
}

// Country returns the country-level context entry, if any.
func (c GeocodeCandidate) Country() (RegionContext, bool) {
	for _, rc := range c.Context {
		if rc.ID == countryContextPrefix || strings.HasPrefix(rc.ID, countryContextPrefix+".") {
			return rc, true
		}
	}
	return RegionContext{}, false
}
