package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/api"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/api/handler"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/ports"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/render"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/service"
	mongostore "github.com/pamelashiell-afk/finlay-bear-tracker/internal/infrastructure/db/mongo"
	redisstore "github.com/pamelashiell-afk/finlay-bear-tracker/internal/infrastructure/db/redis"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/infrastructure/mapsurface"
	natsbus "github.com/pamelashiell-afk/finlay-bear-tracker/internal/infrastructure/messaging/nats"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/infrastructure/queue"
)

const (
	shutdownTimeout  = 10 * time.Second
	registrySweepGap = time.Minute
	tokenTTL         = 24 * time.Hour
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(context.WithoutCancel(ctx))
	log := a.log

	if a.cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	geocoder, err := a.geocoder()
	if err != nil {
		return err
	}

	if err := mongostore.EnsureIndexes(ctx, a.db); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	rdb, err := redisstore.Connect(ctx, redisstore.Config{Addr: a.cfg.Redis.Addr, DB: a.cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer rdb.Close()
	log.Info().Str("addr", a.cfg.Redis.Addr).Msg("connected to Redis")

	// --- Repositories ---
	bearRepo := redisstore.NewBearCache(rdb, mongostore.NewBearRepository(a.db), a.cfg.Redis.BearTTL, log)
	sightingRepo := mongostore.NewSightingRepository(a.db)
	authRepo := mongostore.NewAuthRepository(a.db)

	// --- Rendering ---
	palette := render.NewPalette(a.cfg.Maps.BearColors, a.cfg.Maps.DefaultColor)
	renderer := render.NewRenderer(palette, log)
	views := render.NewRegistry(mapsurface.NewFactory(), renderer, a.cfg.Maps.ViewTTL, registrySweepGap, log)
	defer views.Close()

	// --- Services ---
	journeys := service.NewJourneyService(bearRepo, sightingRepo, views, palette, log)
	overview := service.NewOverviewService(bearRepo, sightingRepo, views, palette, log)

	dispatcher := queue.NewDispatcher(a.cfg.Maps.RefreshWorkers, func(ctx context.Context, bearID string) error {
		return errors.Join(journeys.Refresh(ctx, bearID), overview.Refresh(ctx))
	}, log)

	var publisher ports.SightingPublisher
	healthChecks := []handler.DependencyCheck{
		{Name: "mongodb", Check: func(ctx context.Context) error { return a.client.Ping(ctx, nil) }},
		{Name: "redis", Check: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
	}

	if a.cfg.NATS.URL != "" {
		nc, err := natsbus.Connect(a.cfg.NATS.URL, log)
		if err != nil {
			return err
		}
		defer nc.Close()

		sub, err := natsbus.Subscribe(nc, dispatcher, log)
		if err != nil {
			return err
		}
		defer func() {
			if err := sub.Close(); err != nil {
				log.Warn().Err(err).Msg("nats drain")
			}
		}()

		publisher = natsbus.NewPublisher(nc)
		healthChecks = append(healthChecks, handler.DependencyCheck{Name: "nats", Check: natsCheck(nc)})
		log.Info().Str("url", a.cfg.NATS.URL).Msg("sighting broadcast enabled")
	}

	sightings := service.NewSightingService(bearRepo, sightingRepo, geocoder, a.validator(), publisher, dispatcher, log)
	bears := service.NewBearService(bearRepo, geocoder, a.validator(), log)
	auth := service.NewAuthService(authRepo, a.cfg.JWTSecret, tokenTTL)

	e := api.NewRouter(api.Deps{
		Logger:       log,
		JWTSecret:    a.cfg.JWTSecret,
		Auth:         auth,
		Bears:        bears,
		Sightings:    sightings,
		Journeys:     journeys,
		Overview:     overview,
		Colors:       palette,
		HealthChecks: healthChecks,
	})

	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	workerCtx, stopWorkers := context.WithCancel(context.WithoutCancel(ctx))
	defer stopWorkers()
	dispatcher.Start(workerCtx)

	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}

		stopWorkers()
		dispatcher.Wait()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info().Msg("server gracefully stopped")
	return nil
}

func natsCheck(nc *nats.Conn) func(context.Context) error {
	return func(ctx context.Context) error {
		if !nc.IsConnected() {
			return fmt.Errorf("nats status %s", nc.Status())
		}
		return nc.FlushWithContext(ctx)
	}
}
