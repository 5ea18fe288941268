package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/ports"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/render"
)

type JourneyService struct {
	bears     ports.BearRepository
	sightings ports.SightingRepository
	views     *render.Registry
	palette   *render.Palette
	logger    zerolog.Logger
}

func NewJourneyService(
	bears ports.BearRepository,
	sightings ports.SightingRepository,
	views *render.Registry,
	palette *render.Palette,
	logger zerolog.Logger,
) *JourneyService {
	return &JourneyService{
		bears:     bears,
		sightings: sightings,
		views:     views,
		palette:   palette,
		logger:    logger,
	}
}

// GetJourney loads a bear and orders its sightings into a journey.
func (s *JourneyService) GetJourney(ctx context.Context, bearID string) (*ports.JourneyDetail, error) {
	bear, err := s.bears.FindByID(ctx, bearID)
	if err != nil {
		return nil, fmt.Errorf("get journey: %w", err)
	}
	sightings, err := s.sightings.ListByBear(ctx, bearID, domain.OldestFirst)
	if err != nil {
		return nil, fmt.Errorf("get journey: %w", err)
	}

	journey := domain.AssembleJourney(bear.Origin, sightings)
	return &ports.JourneyDetail{
		Bear:      bear,
		Color:     s.palette.ColorFor(bear),
		Journey:   journey,
		Current:   currentLocation(bear, journey),
		Sightings: sightings,
	}, nil
}

// RenderMap draws the bear's journey into its live view, creating the view
// on first use. An unchanged journey returns the previous scene.
func (s *JourneyService) RenderMap(ctx context.Context, bearID string) (*ports.MapScene, error) {
	detail, err := s.GetJourney(ctx, bearID)
	if err != nil {
		return nil, err
	}

	scene, err := s.draw(ctx, detail)
	if errors.Is(err, render.ErrViewClosed) {
		// evicted between Acquire and Update
		scene, err = s.draw(ctx, detail)
	}
	if err != nil {
		return nil, fmt.Errorf("render map: %w", err)
	}
	return scene, nil
}

func (s *JourneyService) draw(ctx context.Context, detail *ports.JourneyDetail) (*ports.MapScene, error) {
	view, err := s.views.Acquire(render.BearKey(detail.Bear.ID))
	if err != nil {
		return nil, err
	}
	scene, _, err := view.Update(ctx, detail.Bear, detail.Journey, detail.Sightings)
	return scene, err
}

// Refresh redraws the bear's map if someone is currently viewing it.
func (s *JourneyService) Refresh(ctx context.Context, bearID string) error {
	view, ok := s.views.Lookup(render.BearKey(bearID))
	if !ok {
		return nil
	}

	detail, err := s.GetJourney(ctx, bearID)
	if err != nil {
		return fmt.Errorf("refresh map: %w", err)
	}
	_, drawn, err := view.Update(ctx, detail.Bear, detail.Journey, detail.Sightings)
	if errors.Is(err, render.ErrViewClosed) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("refresh map: %w", err)
	}
	if drawn {
		s.logger.Debug().Str("bear_id", bearID).Msg("map refreshed")
	}
	return nil
}

// DismissMap releases the bear's view and its surface.
func (s *JourneyService) DismissMap(bearID string) {
	s.views.Dismiss(render.BearKey(bearID))
}

// currentLocation is the last journey point with usable coordinates. A bear
// with no such sighting is still at home.
func currentLocation(bear *domain.Bear, journey domain.Journey) domain.Coordinates {
	points := render.PathPoints(journey)
	if len(points) == 0 {
		return bear.Origin
	}
	return points[len(points)-1]
}
