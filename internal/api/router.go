package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/api/handler"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/api/middleware"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/ports"
)

// Deps carries everything the HTTP layer needs.
type Deps struct {
	Logger    zerolog.Logger
	JWTSecret string

	Auth      ports.AuthService
	Bears     ports.BearService
	Sightings ports.SightingService
	Journeys  ports.JourneyService
	Overview  ports.OverviewService
	Colors    handler.ColorResolver

	HealthChecks []handler.DependencyCheck

	// Registerer and Gatherer back the HTTP metrics. They default to the
	// global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "bearwatch",
		Registerer: d.Registerer,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	bearHandler := handler.NewBearHandler(d.Bears, d.Journeys, d.Overview, d.Colors)
	sightingHandler := handler.NewSightingHandler(d.Sightings)
	mapHandler := handler.NewMapHandler(d.Journeys, d.Overview)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.HealthChecks...)

	// --- Health probes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)

	// --- Bears ---
	v1 := e.Group("/v1")
	v1.GET("/bears", bearHandler.List)
	v1.GET("/bears/map", mapHandler.Overview)
	v1.POST("/bears", bearHandler.Create, middleware.Auth(d.JWTSecret), middleware.RBAC(domain.RoleAdmin))
	v1.GET("/bears/:id", bearHandler.Get)
	v1.GET("/bears/:id/map", mapHandler.Bear)
	v1.DELETE("/bears/:id/map", mapHandler.Dismiss)

	// --- Sightings (public) ---
	v1.GET("/bears/:id/sightings", sightingHandler.List)
	v1.POST("/bears/:id/sightings", sightingHandler.Submit)

	return e
}

// requestLogger feeds echo's access log into zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/health" || c.Path() == "/metrics"
		},
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Str("ip", v.RemoteIP).
				Str("request_id", v.RequestID).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
