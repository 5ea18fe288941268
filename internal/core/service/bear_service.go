package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/ports"
)

type BearService struct {
	repo      ports.BearRepository
	geocoder  ports.Geocoder
	validator *LocationValidator
	logger    zerolog.Logger
	now       func() time.Time
}

func NewBearService(repo ports.BearRepository, geocoder ports.Geocoder, validator *LocationValidator, logger zerolog.Logger) *BearService {
	return &BearService{
		repo:      repo,
		geocoder:  geocoder,
		validator: validator,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateBear registers a bear. Without explicit origin coordinates the origin
// place is geocoded and must pass the same checks as a sighting.
func (s *BearService) CreateBear(ctx context.Context, input ports.CreateBearInput) (*domain.Bear, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrInvalidBear
	}

	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = uuid.NewString()
	}

	place := domain.Place{
		City:    strings.TrimSpace(input.OriginPlace.City),
		Country: strings.TrimSpace(input.OriginPlace.Country),
	}

	var origin domain.Coordinates
	switch {
	case input.Origin != nil:
		if !input.Origin.Valid() {
			return nil, domain.ErrInvalidBear
		}
		origin = *input.Origin
	case place.City != "" && place.Country != "":
		loc, err := resolvePlace(ctx, s.geocoder, s.validator, place)
		if err != nil {
			return nil, fmt.Errorf("resolve origin of %s: %w", id, err)
		}
		origin = loc
	default:
		return nil, domain.ErrInvalidPlace
	}

	bear := &domain.Bear{
		ID:          id,
		Name:        name,
		Origin:      origin,
		OriginPlace: place,
		Color:       strings.TrimSpace(input.Color),
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.Create(ctx, bear); err != nil {
		return nil, fmt.Errorf("create bear: %w", err)
	}

	s.logger.Info().Str("bear_id", bear.ID).Str("name", bear.Name).Msg("bear registered")
	return bear, nil
}

func (s *BearService) GetBear(ctx context.Context, id string) (*domain.Bear, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BearService) ListBears(ctx context.Context) ([]*domain.Bear, error) {
	return s.repo.List(ctx)
}
