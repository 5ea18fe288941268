package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo    MongoConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Geocoder GeocoderConfig
	Maps     MapsConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=bearwatch"`
}

type RedisConfig struct {
	Addr    string        `env:"REDIS_ADDR,     default=localhost:6379"`
	DB      int           `env:"REDIS_DB,       default=0"`
	BearTTL time.Duration `env:"BEAR_CACHE_TTL, default=10m"`
}

// NATSConfig is optional: an empty URL runs the service without broadcasting sightings.
type NATSConfig struct {
	URL string `env:"NATS_URL"`
}

type GeocoderConfig struct {
	Token        string  `env:"MAPBOX_TOKEN"`
	BaseURL      string  `env:"GEOCODER_BASE_URL, default=https://api.mapbox.com"`
	MinRelevance float64 `env:"MIN_RELEVANCE,     default=0.8"`
}

type MapsConfig struct {
	ViewTTL        time.Duration     `env:"VIEW_TTL,        default=15m"`
	RefreshWorkers int               `env:"REFRESH_WORKERS, default=4"`
	BearColors     map[string]string `env:"BEAR_COLORS"`
	DefaultColor   string            `env:"DEFAULT_COLOR,   default=#ff7f0e"`
}

// IsDevelopment reports whether the service runs on a developer machine.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads a .env file when one exists, then configuration from environment
// variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read .env: %w", err)
	}
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom resolves configuration through l instead of the process environment.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if cfg.Geocoder.MinRelevance < 0 || cfg.Geocoder.MinRelevance > 1 {
		return nil, fmt.Errorf("config: MIN_RELEVANCE must be within [0,1], got %v", cfg.Geocoder.MinRelevance)
	}
	if cfg.Maps.RefreshWorkers < 1 {
		return nil, fmt.Errorf("config: REFRESH_WORKERS must be positive, got %d", cfg.Maps.RefreshWorkers)
	}
	return &cfg, nil
}
