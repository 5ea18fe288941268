package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type coordinatesRequest struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

type submitSightingRequest struct {
	City    string `json:"city"              validate:"required,max=120"`
	Country string `json:"country"           validate:"required,max=120"`
	Message string `json:"message,omitempty" validate:"max=1000"`
}

type createBearRequest struct {
	ID            string              `json:"id,omitempty"     validate:"omitempty,max=64,excludesall=/?#"`
	Name          string              `json:"name"             validate:"required,max=80"`
	Origin        *coordinatesRequest `json:"origin,omitempty"`
	OriginCity    string              `json:"origin_city"      validate:"required_without=Origin,max=120"`
	OriginCountry string              `json:"origin_country"   validate:"required_without=Origin,max=120"`
	Color         string              `json:"color,omitempty"  validate:"omitempty,max=32"`
}

// --- Response types ---

type coordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type placeResponse struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

type bearLinks struct {
	Self      string `json:"self"`
	Sightings string `json:"sightings"`
	Map       string `json:"map"`
}

type bearResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Color       string              `json:"color"`
	Origin      coordinatesResponse `json:"origin"`
	OriginPlace placeResponse       `json:"origin_place"`
	CreatedAt   time.Time           `json:"created_at"`
	Links       bearLinks           `json:"_links"`
}

type sightingResponse struct {
	ID        string               `json:"id"`
	BearID    string               `json:"bear_id"`
	City      string               `json:"city"`
	Country   string               `json:"country"`
	Message   string               `json:"message,omitempty"`
	Location  *coordinatesResponse `json:"location,omitempty"`
	CreatedAt *time.Time           `json:"created_at,omitempty"`
}

type journeyPointResponse struct {
	Lat        *float64 `json:"lat,omitempty"`
	Lng        *float64 `json:"lng,omitempty"`
	Origin     bool     `json:"origin,omitempty"`
	SightingID string   `json:"sighting_id,omitempty"`
}

type journeyResponse struct {
	Bear      bearResponse           `json:"bear"`
	Current   coordinatesResponse    `json:"current"`
	Journey   []journeyPointResponse `json:"journey"`
	Sightings []sightingResponse     `json:"sightings"`
}

type bearSummaryResponse struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Color          string              `json:"color"`
	Current        coordinatesResponse `json:"current"`
	CurrentPlace   placeResponse       `json:"current_place"`
	LatestMessage  string              `json:"latest_message,omitempty"`
	SightingsCount int                 `json:"sightings_count"`
	Links          bearLinks           `json:"_links"`
}

type listBearsResponse struct {
	Data []bearSummaryResponse `json:"data"`
}

type listSightingsResponse struct {
	Data []sightingResponse `json:"data"`
}
