package ports

import (
	"context"
	"time"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
)

// SubmitSightingInput is what a member of the public sends in.
type SubmitSightingInput struct {
	BearID  string
	City    string
	Country string
	Message string
}

// SightingService records and lists sightings.
type SightingService interface {
	Submit(ctx context.Context, input SubmitSightingInput) (*domain.Sighting, error)
	// List returns the bear's sightings newest first.
	List(ctx context.Context, bearID string) ([]domain.Sighting, error)
}

// JourneyDetail is the full journey view of a single bear.
type JourneyDetail struct {
	Bear      *domain.Bear
	Color     string
	Journey   domain.Journey
	Current   domain.Coordinates
	Sightings []domain.Sighting
}

// MapScene is the encoded result of drawing onto a map surface.
type MapScene struct {
	Key         string
	Fingerprint string
	GeoJSON     []byte
	RenderedAt  time.Time
}

// JourneyService derives and renders journeys.
type JourneyService interface {
	GetJourney(ctx context.Context, bearID string) (*JourneyDetail, error)
	RenderMap(ctx context.Context, bearID string) (*MapScene, error)
	// Refresh redraws the bear's map only if a live view exists.
	Refresh(ctx context.Context, bearID string) error
	DismissMap(bearID string)
}

// BearSummary is a bear with its most recent known position.
type BearSummary struct {
	Bear           *domain.Bear
	Color          string
	Current        domain.Coordinates
	CurrentPlace   domain.Place
	LatestMessage  string
	SightingsCount int
	Path           []domain.Coordinates
}

// OverviewService powers the all-bears page.
type OverviewService interface {
	ListBears(ctx context.Context) ([]BearSummary, error)
	RenderOverview(ctx context.Context) (*MapScene, error)
	// Refresh redraws the overview only if it is currently live.
	Refresh(ctx context.Context) error
}

// CreateBearInput registers a new bear. Either Origin or OriginPlace must
// resolve to coordinates; when Origin is nil the place is geocoded.
type CreateBearInput struct {
	ID          string
	Name        string
	Origin      *domain.Coordinates
	OriginPlace domain.Place
	Color       string
}

// BearService manages bears.
type BearService interface {
	CreateBear(ctx context.Context, input CreateBearInput) (*domain.Bear, error)
	GetBear(ctx context.Context, id string) (*domain.Bear, error)
	ListBears(ctx context.Context) ([]*domain.Bear, error)
}
