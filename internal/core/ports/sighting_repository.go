package ports

import (
	"context"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
)

// SightingRepository reads and appends sightings. Sightings are never updated
// or deleted.
type SightingRepository interface {
	// Insert stores a new sighting and lets the store assign CreatedAt.
	// The returned sighting carries the store-assigned id and timestamp.
	Insert(ctx context.Context, s *domain.Sighting) (*domain.Sighting, error)
	// ListByBear returns every sighting of a bear ordered by created_at.
	ListByBear(ctx context.Context, bearID string, order domain.SortOrder) ([]domain.Sighting, error)
}
