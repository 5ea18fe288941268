package ports

import (
	"context"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
)

// AuthRepository defines persistence for curator accounts.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
