// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"quote_aggregator/internal/feature/symbollist/domain/entity"
	"quote_aggregator/internal/feature/symbollist/usecase"
)

// DefaultSymbolTTL はシンボル一覧キャッシュのデフォルト有効期間です。
const DefaultSymbolTTL = time.Minute

// CachingSymbolRepository decorates a SymbolRepository with a Redis read-through
// cache for ListAll. Any successful metadata update drops the cached list.
type CachingSymbolRepository struct {
	inner     usecase.SymbolRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.SymbolRepository = (*CachingSymbolRepository)(nil)

// NewCachingSymbolRepository decorates a SymbolRepository with Redis caching.
// If ttl is 0, it defaults to DefaultSymbolTTL. If namespace is empty, it uses "symbols".
func NewCachingSymbolRepository(rdb *redis.Client, ttl time.Duration, inner usecase.SymbolRepository, namespace string) *CachingSymbolRepository {
	if ttl <= 0 {
		ttl = DefaultSymbolTTL
	}
	if namespace == "" {
		namespace = "symbols"
	}
	return &CachingSymbolRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListAll returns the catalog, checking cache first then falling back to the database.
func (c *CachingSymbolRepository) ListAll(ctx context.Context) ([]entity.Symbol, error) {
	if c.rdb == nil {
		return c.inner.ListAll(ctx)
	}

	key := c.listKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Symbol
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// UpdateMetadata persists metadata and invalidates the cached catalog.
func (c *CachingSymbolRepository) UpdateMetadata(ctx context.Context, id string, md entity.Metadata) error {
	if err := c.inner.UpdateMetadata(ctx, id, md); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	if err := c.rdb.Del(ctx, c.listKey()).Err(); err != nil {
		slog.Warn("failed to invalidate symbol cache", "symbol", id, "error", err)
	}
	return nil
}

func (c *CachingSymbolRepository) listKey() string {
	return c.namespace + ":all"
}
