package domain

import (
	"math"
	"time"
)

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Valid reports whether both components are finite and inside WGS 84 bounds.
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Place is a free-text city/country pair as entered by a person.
type Place struct {
	City    string `json:"city" bson:"city"`
	Country string `json:"country" bson:"country"`
}

// String renders the place the way it is shown in popups and sent to the geocoder.
func (p Place) String() string {
	return p.City + ", " + p.Country
}

// Bear is the tracked object. It is created once by a curator and never changes.
type Bear struct {
	ID          string      `json:"id" bson:"_id"`
	Name        string      `json:"name" bson:"name"`
	Origin      Coordinates `json:"origin" bson:"origin"`
	OriginPlace Place       `json:"origin_place" bson:"origin_place"`
	Color       string      `json:"color,omitempty" bson:"color,omitempty"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
}
