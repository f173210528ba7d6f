package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"quote_aggregator/internal/app/di"
	latestusecase "quote_aggregator/internal/feature/latest/usecase"
	infradb "quote_aggregator/internal/platform/db"
	infraredis "quote_aggregator/internal/platform/redis"
)

// 未取得の銘柄メタデータをまとめて同期する。
// 永続化に失敗した銘柄は次回の同期で再試行される。
func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load()
	cfg := di.LoadConfig()

	db, err := infradb.OpenDB()
	if err != nil {
		slog.Error("failed to open database", "error", err)
		return 1
	}

	rdb, err := infraredis.NewRedisClient()
	if err != nil {
		slog.Warn("Redis unavailable. Cache will not be invalidated.", "error", err)
		rdb = nil
	}
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	symbolRepo := di.NewSymbolRepository(rdb, db, cfg.SymbolCacheTTL)
	sync := latestusecase.NewRegistrySync(symbolRepo, di.NewMarket(), cfg.SyncMaxConcurrency)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	res, err := sync.SyncAll(ctx)
	if err != nil {
		slog.Error("sync failed", "error", err)
		return 1
	}
	slog.Info("sync ok", "updated", len(res.Updated), "failed", len(res.Failed))
	if len(res.Failed) > 0 {
		return 2
	}
	return 0
}
