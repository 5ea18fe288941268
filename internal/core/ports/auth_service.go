package ports

import (
	"context"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, email string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
