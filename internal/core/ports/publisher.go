package ports

import (
	"context"
	"time"
)

// SightingRecorded is broadcast after a sighting has been stored.
type SightingRecorded struct {
	BearID     string    `json:"bear_id"`
	SightingID string    `json:"sighting_id"`
	City       string    `json:"city"`
	Country    string    `json:"country"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	CreatedAt  time.Time `json:"created_at"`
}

// SightingPublisher fans accepted sightings out to other instances.
type SightingPublisher interface {
	PublishSightingRecorded(ctx context.Context, ev SightingRecorded) error
}

// RefreshQueue schedules an asynchronous re-render of a bear's map.
type RefreshQueue interface {
	Enqueue(bearID string)
}
