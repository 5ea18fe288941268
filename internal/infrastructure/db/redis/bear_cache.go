package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/ports"
)

const defaultBearTTL = 10 * time.Minute

// BearCache is a read-through cache in front of a bear repository. Bears
// never change after registration, so entries only expire by TTL. Redis
// failures are logged and the call falls through to the repository.
// Key format: bear:<id>
type BearCache struct {
	client redis.Cmdable
	next   ports.BearRepository
	ttl    time.Duration
	logger zerolog.Logger
}

func NewBearCache(client redis.Cmdable, next ports.BearRepository, ttl time.Duration, logger zerolog.Logger) *BearCache {
	if ttl <= 0 {
		ttl = defaultBearTTL
	}
	return &BearCache{client: client, next: next, ttl: ttl, logger: logger}
}

func (c *BearCache) FindByID(ctx context.Context, id string) (*domain.Bear, error) {
	key := c.key(id)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var b domain.Bear
		if jerr := json.Unmarshal(raw, &b); jerr == nil {
			return &b, nil
		}
		c.logger.Warn().Str("key", key).Msg("discarding unreadable cached bear")
	case !errors.Is(err, redis.Nil):
		c.logger.Warn().Err(err).Str("key", key).Msg("bear cache read failed")
	}

	b, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(b); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("bear cache write failed")
		}
	}
	return b, nil
}

func (c *BearCache) List(ctx context.Context) ([]*domain.Bear, error) {
	return c.next.List(ctx)
}

func (c *BearCache) Create(ctx context.Context, b *domain.Bear) error {
	return c.next.Create(ctx, b)
}

func (c *BearCache) key(id string) string {
	return "bear:" + id
}
