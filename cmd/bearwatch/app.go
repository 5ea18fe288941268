package main

import (
	"context"
	"fmt"
	"iter"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/ports"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/service"
	mongostore "github.com/pamelashiell-afk/finlay-bear-tracker/internal/infrastructure/db/mongo"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/infrastructure/geocoder/mapbox"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/pkg/config"
	"github.com/pamelashiell-afk/finlay-bear-tracker/pkg/logger"
)

// app holds what every command needs: configuration, a logger and the store.
type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	client *mongo.Client
	db     *mongo.Database
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "bearwatch",
	})

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")

	return &app{cfg: cfg, log: log, client: client, db: db}, nil
}

func (a *app) close(ctx context.Context) {
	if err := a.client.Disconnect(ctx); err != nil {
		a.log.Warn().Err(err).Msg("mongo disconnect")
	}
}

func (a *app) geocoder() (*mapbox.Client, error) {
	return mapbox.NewClient(mapbox.Config{
		BaseURL: a.cfg.Geocoder.BaseURL,
		Token:   a.cfg.Geocoder.Token,
	}, a.log)
}

func (a *app) validator() *service.LocationValidator {
	return service.NewLocationValidator(a.cfg.Geocoder.MinRelevance)
}

// bearService builds the bear use cases. The geocoder is only needed when an
// origin is given as a place, so a missing token is tolerated here.
func (a *app) bearService(repo ports.BearRepository) *service.BearService {
	var g ports.Geocoder
	if client, err := a.geocoder(); err == nil {
		g = client
	} else {
		a.log.Debug().Err(err).Msg("geocoder disabled")
		g = unavailableGeocoder{}
	}
	return service.NewBearService(repo, g, a.validator(), a.log)
}

// unavailableGeocoder stands in when no token is configured.
type unavailableGeocoder struct{}

func (unavailableGeocoder) Lookup(context.Context, string) (iter.Seq[domain.GeocodeCandidate], error) {
	return nil, fmt.Errorf("%w: MAPBOX_TOKEN is not set", domain.ErrGeocodeUnavailable)
}
