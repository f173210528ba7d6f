// Package cryptocompare provides a client for the CryptoCompare market-data API.
package cryptocompare

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	// DefaultBaseURL is the host serving price, history and coin-listing endpoints.
	DefaultBaseURL = "https://min-api.cryptocompare.com"
	// DefaultImageBaseURL is the host that coin-listing ImageUrl paths are relative to.
	DefaultImageBaseURL = "https://www.cryptocompare.com"
	// Currency is the quote currency for every price request.
	Currency = "USD"
)

// Config holds configuration for the CryptoCompare API client.
type Config struct {
	APIKey       string        // API key sent as "Authorization: Apikey <key>"
	BaseURL      string        // Base URL for the API (e.g., "https://min-api.cryptocompare.com")
	ImageBaseURL string        // Host prepended to relative image paths
	Timeout      time.Duration // HTTP request timeout
	RateLimit    int           // Max calls per minute, 0 disables limiting
}

// LoadConfig loads CryptoCompare configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		APIKey:       os.Getenv("CRYPTOCOMPARE_API_KEY"),
		BaseURL:      getEnvOrDefault("CRYPTOCOMPARE_BASE_URL", DefaultBaseURL),
		ImageBaseURL: getEnvOrDefault("CRYPTOCOMPARE_IMAGE_BASE_URL", DefaultImageBaseURL),
		Timeout:      10 * time.Second,
	}
	if v := os.Getenv("CRYPTOCOMPARE_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			slog.Warn("ignoring invalid CRYPTOCOMPARE_RATE_LIMIT", "value", v)
		} else {
			cfg.RateLimit = n
		}
	}
	return cfg
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
