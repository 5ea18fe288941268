package ports

import (
	"context"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
)

// BearRepository defines persistence operations for bears.
type BearRepository interface {
	// FindByID returns domain.ErrBearNotFound when no bear has the given id.
	FindByID(ctx context.Context, id string) (*domain.Bear, error)
	List(ctx context.Context) ([]*domain.Bear, error)
	// Create returns domain.ErrBearExists when the id is taken.
	Create(ctx context.Context, b *domain.Bear) error
}
