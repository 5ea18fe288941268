// Package render draws bear journeys onto map surfaces and owns the
// lifetime of those surfaces through views.
package render

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/ports"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/pkg/metrics"
)

const (
	BearZoom     = 2.0
	OverviewZoom = 1.5

	sightingScale = 1.0
	currentScale  = 1.4
	lineWidth     = 4.0
	lineOpacity   = 0.8

	currentLocationLine = "Current location"
)

// OverviewCenter is where the all-bears map is centred.
var OverviewCenter = domain.Coordinates{Lat: 20, Lng: 0}

// Renderer turns a bear's journey into markers and a path line.
type Renderer struct {
	palette *Palette
	log     zerolog.Logger
}

func NewRenderer(palette *Palette, log zerolog.Logger) *Renderer {
	if palette == nil {
		palette = NewPalette(nil, "")
	}
	return &Renderer{palette: palette, log: log}
}

// Palette returns the palette the renderer colors bears with.
func (r *Renderer) Palette() *Palette {
	return r.palette
}

// Draw renders one bear: a home marker, a marker per sighting that has
// coordinates and a line through the renderable journey points. Sightings
// without usable coordinates are skipped. The emphasized marker is the last
// renderable sighting in journey order, whatever order sightings arrive in.
func (r *Renderer) Draw(s ports.MapSurface, bear *domain.Bear, journey domain.Journey, sightings []domain.Sighting) error {
	if bear == nil {
		return fmt.Errorf("draw: nil bear")
	}
	color := r.palette.ColorFor(bear)

	if err := s.AddMarker(ports.Marker{
		Kind:     ports.MarkerHome,
		Position: bear.Origin,
		Color:    HomeColor,
		Scale:    sightingScale,
		Label:    bear.Name + "'s home",
		Popup:    ports.Popup{Title: "Start: " + bear.OriginPlace.String()},
		Ref:      bear.ID,
	}); err != nil {
		return fmt.Errorf("draw home marker: %w", err)
	}

	currentID, hasCurrent := lastRenderable(journey)

	for i := range sightings {
		sg := &sightings[i]
		if !sg.Renderable() {
			metrics.MalformedSightingsTotal.Inc()
			r.log.Debug().
				Str("bear_id", bear.ID).
				Str("sighting_id", sg.ID).
				Msg("skipping sighting without usable coordinates")
			continue
		}

		m := ports.Marker{
			Kind:     ports.MarkerSighting,
			Position: *sg.Location,
			Color:    color,
			Scale:    sightingScale,
			Popup:    ports.Popup{Title: sg.Place.String()},
			Ref:      sg.ID,
		}
		if hasCurrent && sg.ID == currentID {
			m.Kind = ports.MarkerCurrent
			m.Scale = currentScale
			m.Popup.Lines = append(m.Popup.Lines, currentLocationLine)
		}
		if sg.Message != "" {
			m.Popup.Lines = append(m.Popup.Lines, sg.Message)
		}
		if err := s.AddMarker(m); err != nil {
			return fmt.Errorf("draw sighting %s: %w", sg.ID, err)
		}
	}

	points := pathPoints(journey)
	if len(points) >= 2 {
		if err := s.AddLine(ports.Line{
			ID:      "path-" + bear.ID,
			Points:  points,
			Color:   color,
			Width:   lineWidth,
			Opacity: lineOpacity,
		}); err != nil {
			return fmt.Errorf("draw path: %w", err)
		}
	}
	return nil
}

// DrawOverview renders every bear's current location and path on one surface.
func (r *Renderer) DrawOverview(s ports.MapSurface, summaries []ports.BearSummary) error {
	for _, sum := range summaries {
		if sum.Bear == nil {
			continue
		}
		color := sum.Color
		if color == "" {
			color = r.palette.ColorFor(sum.Bear)
		}

		if sum.Current.Valid() {
			popup := ports.Popup{Title: sum.Bear.Name}
			if sum.CurrentPlace.City != "" || sum.CurrentPlace.Country != "" {
				popup.Lines = append(popup.Lines, sum.CurrentPlace.String())
			}
			if sum.LatestMessage != "" {
				popup.Lines = append(popup.Lines, sum.LatestMessage)
			}
			if err := s.AddMarker(ports.Marker{
				Kind:     ports.MarkerCurrent,
				Position: sum.Current,
				Color:    color,
				Scale:    sightingScale,
				Label:    sum.Bear.Name,
				Popup:    popup,
				Ref:      sum.Bear.ID,
			}); err != nil {
				return fmt.Errorf("draw bear %s: %w", sum.Bear.ID, err)
			}
		}

		if len(sum.Path) >= 2 {
			if err := s.AddLine(ports.Line{
				ID:      "path-" + sum.Bear.ID,
				Points:  sum.Path,
				Color:   color,
				Width:   lineWidth,
				Opacity: lineOpacity,
			}); err != nil {
				return fmt.Errorf("draw path %s: %w", sum.Bear.ID, err)
			}
		}
	}
	return nil
}

// PathPoints returns the coordinates of every renderable journey point in order.
func PathPoints(journey domain.Journey) []domain.Coordinates {
	return pathPoints(journey)
}

func pathPoints(journey domain.Journey) []domain.Coordinates {
	points := make([]domain.Coordinates, 0, len(journey))
	for _, p := range journey {
		if p.Coordinates == nil || !p.Coordinates.Valid() {
			continue
		}
		points = append(points, *p.Coordinates)
	}
	return points
}

func lastRenderable(journey domain.Journey) (string, bool) {
	for i := len(journey) - 1; i >= 0; i-- {
		sg := journey[i].Sighting
		if sg != nil && sg.Renderable() {
			return sg.ID, true
		}
	}
	return "", false
}
