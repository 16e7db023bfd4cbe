// Package govuk is a client for the GOV UK Fuel Finder API: OAuth token
// acquisition and per-fuel-type price fetching.
package govuk

import (
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/simonykma/FuelSaverUK-Data/internal/config"
	"github.com/simonykma/FuelSaverUK-Data/internal/logger"
)

// Client talks to the Fuel Finder API.
type Client struct {
	baseURL      string
	tokenPaths   []string
	pricesPath   string
	clientID     string
	clientSecret string
	http         *resty.Client
	log          *logger.Logger
}

// NewClient creates a Fuel Finder API client from configuration.
func NewClient(cfg *config.Config, log *logger.Logger) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := resty.New()
	httpClient.SetTimeout(timeout)
	httpClient.SetHeader("Accept", "application/json")

	return &Client{
		baseURL:      cfg.BaseURL,
		tokenPaths:   cfg.TokenPaths,
		pricesPath:   cfg.PricesPath,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		http:         httpClient,
		log:          log.WithComponent("govuk"),
	}
}

// DefaultTimeout is used when no request timeout is configured.
const DefaultTimeout = 30 * time.Second
