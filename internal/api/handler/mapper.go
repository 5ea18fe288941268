package handler

import (
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/ports"
)

// --- Request → Service input ---

func toCreateBearInput(req createBearRequest) ports.CreateBearInput {
	in := ports.CreateBearInput{
		ID:          req.ID,
		Name:        req.Name,
		OriginPlace: domain.Place{City: req.OriginCity, Country: req.OriginCountry},
		Color:       req.Color,
	}
	if req.Origin != nil {
		in.Origin = &domain.Coordinates{Lat: req.Origin.Lat, Lng: req.Origin.Lng}
	}
	return in
}

// --- Service result → HTTP response ---

func toCoordinates(c domain.Coordinates) coordinatesResponse {
	return coordinatesResponse{Lat: c.Lat, Lng: c.Lng}
}

func toPlace(p domain.Place) placeResponse {
	return placeResponse{City: p.City, Country: p.Country}
}

func linksFor(bearID string) bearLinks {
	self := "/v1/bears/" + bearID
	return bearLinks{
		Self:      self,
		Sightings: self + "/sightings",
		Map:       self + "/map",
	}
}

func toBearResponse(b *domain.Bear, color string) bearResponse {
	return bearResponse{
		ID:          b.ID,
		Name:        b.Name,
		Color:       color,
		Origin:      toCoordinates(b.Origin),
		OriginPlace: toPlace(b.OriginPlace),
		CreatedAt:   b.CreatedAt.UTC(),
		Links:       linksFor(b.ID),
	}
}

func toSightingResponse(s domain.Sighting) sightingResponse {
	resp := sightingResponse{
		ID:        s.ID,
		BearID:    s.BearID,
		City:      s.Place.City,
		Country:   s.Place.Country,
		Message:   s.Message,
		CreatedAt: s.CreatedAt,
	}
	if s.Location != nil {
		loc := toCoordinates(*s.Location)
		resp.Location = &loc
	}
	return resp
}

func toSightingResponses(sightings []domain.Sighting) []sightingResponse {
	out := make([]sightingResponse, 0, len(sightings))
	for _, s := range sightings {
		out = append(out, toSightingResponse(s))
	}
	return out
}

func toJourneyResponse(d *ports.JourneyDetail) journeyResponse {
	points := make([]journeyPointResponse, 0, len(d.Journey))
	for _, p := range d.Journey {
		jp := journeyPointResponse{Origin: p.IsOrigin()}
		if p.Coordinates != nil {
			lat, lng := p.Coordinates.Lat, p.Coordinates.Lng
			jp.Lat, jp.Lng = &lat, &lng
		}
		if p.Sighting != nil {
			jp.SightingID = p.Sighting.ID
		}
		points = append(points, jp)
	}

	journeySightings := d.Journey.Sightings()
	sightings := make([]sightingResponse, 0, len(journeySightings))
	for _, s := range journeySightings {
		sightings = append(sightings, toSightingResponse(*s))
	}

	return journeyResponse{
		Bear:      toBearResponse(d.Bear, d.Color),
		Current:   toCoordinates(d.Current),
		Journey:   points,
		Sightings: sightings,
	}
}

func toBearSummaryResponse(s ports.BearSummary) bearSummaryResponse {
	return bearSummaryResponse{
		ID:             s.Bear.ID,
		Name:           s.Bear.Name,
		Color:          s.Color,
		Current:        toCoordinates(s.Current),
		CurrentPlace:   toPlace(s.CurrentPlace),
		LatestMessage:  s.LatestMessage,
		SightingsCount: s.SightingsCount,
		Links:          linksFor(s.Bear.ID),
	}
}
