package domain

import (
	"slices"
	"time"
)

// JourneyPoint is one stop of a journey. Sighting is nil for the origin.
type JourneyPoint struct {
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Sighting    *Sighting    `json:"sighting,omitempty"`
}

// IsOrigin reports whether the point is the bear's starting point.
func (p JourneyPoint) IsOrigin() bool {
	return p.Sighting == nil
}

// Journey is the origin followed by every committed sighting, oldest first.
// It always holds at least the origin.
type Journey []JourneyPoint

// Current returns the last point of the journey.
func (j Journey) Current() JourneyPoint {
	return j[len(j)-1]
}

// Sightings returns the journey's sightings in journey order.
func (j Journey) Sightings() []*Sighting {
	out := make([]*Sighting, 0, len(j))
	for _, p := range j {
		if p.Sighting != nil {
			out = append(out, p.Sighting)
		}
	}
	return out
}

// AssembleJourney builds the journey for a bear from its origin and sightings.
// Sightings the store has not timestamped yet are left out; ties keep the
// order they were given in. The input slice is not modified.
func AssembleJourney(origin Coordinates, sightings []Sighting) Journey {
	committed := make([]*Sighting, 0, len(sightings))
	for i := range sightings {
		if sightings[i].CreatedAt == nil {
			continue
		}
		s := sightings[i]
		committed = append(committed, &s)
	}

	slices.SortStableFunc(committed, func(a, b *Sighting) int {
		return compareTime(*a.CreatedAt, *b.CreatedAt)
	})

	o := origin
	journey := make(Journey, 0, len(committed)+1)
	journey = append(journey, JourneyPoint{Coordinates: &o})
	for _, s := range committed {
		journey = append(journey, JourneyPoint{Coordinates: s.Location, Sighting: s})
	}
	return journey
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
