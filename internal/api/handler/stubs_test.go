package handler

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/ports"
)

type stubBearService struct {
	createFn func(ctx context.Context, in ports.CreateBearInput) (*domain.Bear, error)
}

func (s *stubBearService) CreateBear(ctx context.Context, in ports.CreateBearInput) (*domain.Bear, error) {
	return s.createFn(ctx, in)
}

func (s *stubBearService) GetBear(ctx context.Context, id string) (*domain.Bear, error) {
	return nil, domain.ErrBearNotFound
}

func (s *stubBearService) ListBears(ctx context.Context) ([]*domain.Bear, error) {
	return nil, nil
}

type stubJourneyService struct {
	getFn     func(ctx context.Context, bearID string) (*ports.JourneyDetail, error)
	renderFn  func(ctx context.Context, bearID string) (*ports.MapScene, error)
	dismissed []string
	refreshed []string
}

func (s *stubJourneyService) GetJourney(ctx context.Context, bearID string) (*ports.JourneyDetail, error) {
	return s.getFn(ctx, bearID)
}

func (s *stubJourneyService) RenderMap(ctx context.Context, bearID string) (*ports.MapScene, error) {
	return s.renderFn(ctx, bearID)
}

func (s *stubJourneyService) Refresh(ctx context.Context, bearID string) error {
	s.refreshed = append(s.refreshed, bearID)
	return nil
}

func (s *stubJourneyService) DismissMap(bearID string) {
	s.dismissed = append(s.dismissed, bearID)
}

type stubOverviewService struct {
	listFn   func(ctx context.Context) ([]ports.BearSummary, error)
	renderFn func(ctx context.Context) (*ports.MapScene, error)
}

func (s *stubOverviewService) ListBears(ctx context.Context) ([]ports.BearSummary, error) {
	return s.listFn(ctx)
}

func (s *stubOverviewService) RenderOverview(ctx context.Context) (*ports.MapScene, error) {
	return s.renderFn(ctx)
}

func (s *stubOverviewService) Refresh(ctx context.Context) error {
	return nil
}

type stubSightingService struct {
	submitFn func(ctx context.Context, in ports.SubmitSightingInput) (*domain.Sighting, error)
	listFn   func(ctx context.Context, bearID string) ([]domain.Sighting, error)
}

func (s *stubSightingService) Submit(ctx context.Context, in ports.SubmitSightingInput) (*domain.Sighting, error) {
	return s.submitFn(ctx, in)
}

func (s *stubSightingService) List(ctx context.Context, bearID string) ([]domain.Sighting, error) {
	return s.listFn(ctx, bearID)
}

type fixedColors string

func (f fixedColors) ColorFor(*domain.Bear) string {
	return string(f)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func finlay() *domain.Bear {
	return &domain.Bear{
		ID:          "finlay",
		Name:        "Finlay",
		Origin:      domain.Coordinates{Lat: 55.9533, Lng: -3.1883},
		OriginPlace: domain.Place{City: "Edinburgh", Country: "Scotland"},
		CreatedAt:   time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func parisSighting() domain.Sighting {
	at := time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)
	return domain.Sighting{
		ID:        "s1",
		BearID:    "finlay",
		Place:     domain.Place{City: "Paris", Country: "France"},
		Message:   "Eating a croissant",
		Location:  &domain.Coordinates{Lat: 48.8566, Lng: 2.3522},
		CreatedAt: &at,
	}
}
