package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/ports"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/render"
)

// overviewConcurrency caps parallel sighting queries while building the overview.
const overviewConcurrency = 8

type OverviewService struct {
	bears     ports.BearRepository
	sightings ports.SightingRepository
	views     *render.Registry
	palette   *render.Palette
	logger    zerolog.Logger
}

func NewOverviewService(
	bears ports.BearRepository,
	sightings ports.SightingRepository,
	views *render.Registry,
	palette *render.Palette,
	logger zerolog.Logger,
) *OverviewService {
	return &OverviewService{
		bears:     bears,
		sightings: sightings,
		views:     views,
		palette:   palette,
		logger:    logger,
	}
}

// ListBears summarises every bear with its latest known position. Bears are
// loaded concurrently; the result keeps the repository's bear order.
func (s *OverviewService) ListBears(ctx context.Context) ([]ports.BearSummary, error) {
	bears, err := s.bears.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bears: %w", err)
	}

	summaries := make([]ports.BearSummary, len(bears))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(overviewConcurrency)
	for i, bear := range bears {
		g.Go(func() error {
			// Same order as the bear page so timestamp ties resolve identically.
			sightings, err := s.sightings.ListByBear(gctx, bear.ID, domain.OldestFirst)
			if err != nil {
				return fmt.Errorf("sightings of %s: %w", bear.ID, err)
			}
			summaries[i] = s.summarise(bear, sightings)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list bears: %w", err)
	}
	return summaries, nil
}

func (s *OverviewService) summarise(bear *domain.Bear, sightings []domain.Sighting) ports.BearSummary {
	journey := domain.AssembleJourney(bear.Origin, sightings)
	path := render.PathPoints(journey)

	sum := ports.BearSummary{
		Bear:           bear,
		Color:          s.palette.ColorFor(bear),
		Current:        currentLocation(bear, journey),
		CurrentPlace:   bear.OriginPlace,
		SightingsCount: len(sightings),
		Path:           path,
	}
	if latest := journey.Current().Sighting; latest != nil {
		sum.CurrentPlace = latest.Place
		sum.LatestMessage = latest.Message
	}
	return sum
}

// RenderOverview draws every bear onto the shared overview map.
func (s *OverviewService) RenderOverview(ctx context.Context) (*ports.MapScene, error) {
	summaries, err := s.ListBears(ctx)
	if err != nil {
		return nil, err
	}

	scene, err := s.draw(ctx, summaries)
	if errors.Is(err, render.ErrViewClosed) {
		scene, err = s.draw(ctx, summaries)
	}
	if err != nil {
		return nil, fmt.Errorf("render overview: %w", err)
	}
	return scene, nil
}

func (s *OverviewService) draw(ctx context.Context, summaries []ports.BearSummary) (*ports.MapScene, error) {
	view, err := s.views.Acquire(render.OverviewKey)
	if err != nil {
		return nil, err
	}
	scene, _, err := view.UpdateOverview(ctx, summaries)
	return scene, err
}

// Refresh redraws the overview if it is live.
func (s *OverviewService) Refresh(ctx context.Context) error {
	view, ok := s.views.Lookup(render.OverviewKey)
	if !ok {
		return nil
	}
	summaries, err := s.ListBears(ctx)
	if err != nil {
		return fmt.Errorf("refresh overview: %w", err)
	}
	if _, _, err := view.UpdateOverview(ctx, summaries); err != nil && !errors.Is(err, render.ErrViewClosed) {
		return fmt.Errorf("refresh overview: %w", err)
	}
	return nil
}
