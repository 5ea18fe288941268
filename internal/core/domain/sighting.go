package domain

import "time"

// Sighting is one accepted report of where a bear was seen.
//
// Location is nil when the stored document carries no usable numeric pair and
// CreatedAt is nil until the store has assigned the server timestamp.
type Sighting struct {
	ID        string       `json:"id"`
	BearID    string       `json:"bear_id"`
	Place     Place        `json:"place"`
	Message   string       `json:"message,omitempty"`
	Location  *Coordinates `json:"location,omitempty"`
	CreatedAt *time.Time   `json:"created_at,omitempty"`
}

// Renderable reports whether the sighting can be drawn on a map.
func (s Sighting) Renderable() bool {
	return s.Location != nil && s.Location.Valid()
}

// SortOrder selects the created_at ordering of a sighting query.
type SortOrder int

const (
	OldestFirst SortOrder = iota
	NewestFirst
)
