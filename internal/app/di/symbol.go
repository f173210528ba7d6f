package di

import (
	"time"

	symboladapters "quote_aggregator/internal/feature/symbollist/adapters"
	"quote_aggregator/internal/feature/symbollist/usecase"
	"quote_aggregator/internal/platform/cache"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// NewSymbolRepository creates a SymbolRepository implementation.
// If Redis is available, the Postgres repository is wrapped with a read-through cache.
func NewSymbolRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.SymbolRepository {
	repo := symboladapters.NewSymbolRepository(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingSymbolRepository(rdb, ttl, repo, "symbols")
}
