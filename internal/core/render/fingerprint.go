package render

import (
	"fmt"
	"hash/fnv"
	"io"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/ports"
)

// Fingerprint identifies the content of a bear map. Two calls with equal
// inputs return the same value, so a view can skip redundant redraws.
func Fingerprint(bear *domain.Bear, journey domain.Journey, sightings []domain.Sighting) string {
	h := fnv.New64a()
	writeBear(h, bear)
	fmt.Fprintf(h, "journey:%d|", len(journey))
	for _, p := range journey {
		writeCoords(h, p.Coordinates)
		if p.Sighting != nil {
			io.WriteString(h, p.Sighting.ID)
		}
		io.WriteString(h, "|")
	}
	fmt.Fprintf(h, "sightings:%d|", len(sightings))
	for i := range sightings {
		writeSighting(h, &sightings[i])
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// OverviewFingerprint identifies the content of the all-bears map.
func OverviewFingerprint(summaries []ports.BearSummary) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "bears:%d|", len(summaries))
	for _, s := range summaries {
		writeBear(h, s.Bear)
		fmt.Fprintf(h, "%s|%g,%g|%s|%s|%s|%d|", s.Color, s.Current.Lat, s.Current.Lng,
			s.CurrentPlace.City, s.CurrentPlace.Country, s.LatestMessage, s.SightingsCount)
		for i := range s.Path {
			writeCoords(h, &s.Path[i])
		}
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

func writeBear(w io.Writer, b *domain.Bear) {
	if b == nil {
		io.WriteString(w, "nobear|")
		return
	}
	fmt.Fprintf(w, "%s|%s|%s|%s|%s|", b.ID, b.Name, b.Color, b.OriginPlace.City, b.OriginPlace.Country)
	writeCoords(w, &b.Origin)
}

func writeSighting(w io.Writer, s *domain.Sighting) {
	fmt.Fprintf(w, "%s|%s|%s|%s|", s.ID, s.Place.City, s.Place.Country, s.Message)
	writeCoords(w, s.Location)
	if s.CreatedAt != nil {
		fmt.Fprintf(w, "%d|", s.CreatedAt.UnixNano())
	} else {
		io.WriteString(w, "pending|")
	}
}

func writeCoords(w io.Writer, c *domain.Coordinates) {
	if c == nil {
		io.WriteString(w, "nil;")
		return
	}
	fmt.Fprintf(w, "%g,%g;", c.Lat, c.Lng)
}
