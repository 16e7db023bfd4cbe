package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Default probe order for the token endpoint. Different revisions of the API
// documentation show different paths, so the client tries each in turn.
var DefaultTokenPaths = []string{
	"/api/v1/oauth/generate_access_token",
	"/oauth/token",
	"/api/oauth/token",
	"/v1/oauth/token",
}

// DefaultFuelTypes is the fixed fetch sequence of CMA fuel-type codes.
var DefaultFuelTypes = []string{"E10", "E5", "B7", "SDV"}

// Config holds all configuration for a fetch run.
type Config struct {
	// GOV UK Fuel Finder API credentials
	ClientID     string `env:"GOV_UK_CLIENT_ID"`
	ClientSecret string `env:"GOV_UK_CLIENT_SECRET"`

	// API endpoints
	BaseURL    string   `env:"GOV_UK_BASE_URL,default=https://www.fuel-finder.service.gov.uk"`
	TokenPaths []string `env:"GOV_UK_TOKEN_PATHS"`
	PricesPath string   `env:"GOV_UK_PRICES_PATH,default=/v1/prices"`
	FuelTypes  []string `env:"FUEL_TYPES"`

	// Output configuration
	OutputPath     string `env:"OUTPUT_PATH,default=data/uk-fuel-prices.json"`
	StorageBackend string `env:"STORAGE_BACKEND,default=local"`
	GCSBucket      string `env:"GCS_BUCKET"`

	// Transport configuration
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT,default=30s"`

	// Logging configuration
	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`
}

// Load loads configuration from environment variables. Slice defaults are
// applied here rather than in struct tags because their values contain the
// tag option separator.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if len(cfg.TokenPaths) == 0 {
		cfg.TokenPaths = DefaultTokenPaths
	}
	if len(cfg.FuelTypes) == 0 {
		cfg.FuelTypes = DefaultFuelTypes
	}
	return &cfg, nil
}

// Validate reports configuration errors that must stop the run before any
// network activity.
func (c *Config) Validate() error {
	if c.ClientID == "" || c.ClientSecret == "" {
		return errors.New("missing OAuth credentials: set GOV_UK_CLIENT_ID and GOV_UK_CLIENT_SECRET environment variables")
	}
	if c.StorageBackend == "gcs" && c.GCSBucket == "" {
		return errors.New("STORAGE_BACKEND=gcs requires GCS_BUCKET to be set")
	}
	return nil
}
