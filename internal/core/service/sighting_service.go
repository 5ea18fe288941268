package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/ports"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/pkg/metrics"
)

type SightingService struct {
	bears     ports.BearRepository
	sightings ports.SightingRepository
	geocoder  ports.Geocoder
	validator *LocationValidator
	publisher ports.SightingPublisher
	refresh   ports.RefreshQueue
	logger    zerolog.Logger
}

// NewSightingService wires the submission flow. publisher and refresh may be
// nil, in which case accepted sightings are neither broadcast nor redrawn.
func NewSightingService(
	bears ports.BearRepository,
	sightings ports.SightingRepository,
	geocoder ports.Geocoder,
	validator *LocationValidator,
	publisher ports.SightingPublisher,
	refresh ports.RefreshQueue,
	logger zerolog.Logger,
) *SightingService {
	return &SightingService{
		bears:     bears,
		sightings: sightings,
		geocoder:  geocoder,
		validator: validator,
		publisher: publisher,
		refresh:   refresh,
		logger:    logger,
	}
}

// Submit geocodes the reported place, validates the best candidate against
// what was typed and stores the sighting. Nothing is written unless the place
// passes every location check.
func (s *SightingService) Submit(ctx context.Context, input ports.SubmitSightingInput) (*domain.Sighting, error) {
	place := domain.Place{
		City:    strings.TrimSpace(input.City),
		Country: strings.TrimSpace(input.Country),
	}
	if place.City == "" || place.Country == "" {
		recordRejection("invalid_place")
		return nil, domain.ErrInvalidPlace
	}

	bear, err := s.bears.FindByID(ctx, input.BearID)
	if err != nil {
		metrics.SightingsSubmittedTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("submit sighting: %w", err)
	}

	loc, err := resolvePlace(ctx, s.geocoder, s.validator, place)
	if err != nil {
		if domain.IsRejection(err) {
			recordRejection(rejectionCheck(err))
			s.logger.Info().
				Str("bear_id", bear.ID).
				Str("place", place.String()).
				Err(err).
				Msg("sighting rejected")
			return nil, err
		}
		metrics.SightingsSubmittedTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("submit sighting: %w", err)
	}

	// The write goes ahead even if the submitter goes away mid-request.
	stored, err := s.sightings.Insert(context.WithoutCancel(ctx), &domain.Sighting{
		BearID:   bear.ID,
		Place:    place,
		Message:  strings.TrimSpace(input.Message),
		Location: &loc,
	})
	if err != nil {
		metrics.SightingsSubmittedTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("submit sighting: %w", err)
	}
	metrics.SightingsSubmittedTotal.WithLabelValues("accepted").Inc()

	s.logger.Info().
		Str("bear_id", bear.ID).
		Str("sighting_id", stored.ID).
		Str("place", place.String()).
		Msg("sighting recorded")

	s.announce(ctx, stored)
	return stored, nil
}

// announce fans the stored sighting out. Failures are logged only; the
// sighting is already durable.
func (s *SightingService) announce(ctx context.Context, sg *domain.Sighting) {
	if s.publisher != nil {
		ev := ports.SightingRecorded{
			BearID:     sg.BearID,
			SightingID: sg.ID,
			City:       sg.Place.City,
			Country:    sg.Place.Country,
		}
		if sg.Location != nil {
			ev.Lat, ev.Lng = sg.Location.Lat, sg.Location.Lng
		}
		if sg.CreatedAt != nil {
			ev.CreatedAt = *sg.CreatedAt
		}
		if err := s.publisher.PublishSightingRecorded(context.WithoutCancel(ctx), ev); err != nil {
			s.logger.Warn().Err(err).Str("bear_id", sg.BearID).Msg("failed to publish sighting")
		}
	}
	if s.refresh != nil {
		s.refresh.Enqueue(sg.BearID)
	}
}

// List returns a bear's sightings, newest first.
func (s *SightingService) List(ctx context.Context, bearID string) ([]domain.Sighting, error) {
	if _, err := s.bears.FindByID(ctx, bearID); err != nil {
		return nil, fmt.Errorf("list sightings: %w", err)
	}
	sightings, err := s.sightings.ListByBear(ctx, bearID, domain.NewestFirst)
	if err != nil {
		return nil, fmt.Errorf("list sightings: %w", err)
	}
	return sightings, nil
}

// resolvePlace geocodes a typed place and returns the coordinates of its top
// candidate once that candidate passes the validator.
func resolvePlace(ctx context.Context, g ports.Geocoder, v *LocationValidator, place domain.Place) (domain.Coordinates, error) {
	seq, err := g.Lookup(ctx, place.String())
	if err != nil {
		return domain.Coordinates{}, err
	}

	candidate, _ := ports.FirstCandidate(seq)
	return v.Validate(candidate, place)
}

func rejectionCheck(err error) string {
	var re *domain.RejectionError
	if errors.As(err, &re) {
		return re.Check
	}
	return "no_match"
}

func recordRejection(check string) {
	metrics.SightingsSubmittedTotal.WithLabelValues("rejected").Inc()
	metrics.SightingRejectionsTotal.WithLabelValues(check).Inc()
}
