// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"quote_aggregator/internal/platform/externalapi/cryptocompare"
	infrahttp "quote_aggregator/internal/platform/http"
	"quote_aggregator/internal/shared/ratelimiter"
)

// NewMarket creates a fully configured CryptoCompareMarket with HTTP client.
// CRYPTOCOMPARE_RATE_LIMIT が 0 の場合はレート制限なしで生成します。
func NewMarket() *cryptocompare.CryptoCompareMarket {
	return NewMarketWithConfig(cryptocompare.LoadConfig())
}

// NewMarketWithConfig は与えられた設定で CryptoCompareMarket を生成します。
func NewMarketWithConfig(cfg cryptocompare.Config) *cryptocompare.CryptoCompareMarket {
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	if cfg.RateLimit <= 0 {
		return cryptocompare.NewCryptoCompareMarket(cfg, httpClient, nil)
	}
	limiter := ratelimiter.NewRateLimiter(cfg.RateLimit, time.Minute)
	return cryptocompare.NewCryptoCompareMarket(cfg, httpClient, limiter)
}
