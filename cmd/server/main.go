package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"quote_aggregator/internal/app/di"
	"quote_aggregator/internal/app/router"
	latesthandler "quote_aggregator/internal/feature/latest/transport/handler"
	latestusecase "quote_aggregator/internal/feature/latest/usecase"
	symbollisthandler "quote_aggregator/internal/feature/symbollist/transport/handler"
	symbollistusecase "quote_aggregator/internal/feature/symbollist/usecase"
	infradb "quote_aggregator/internal/platform/db"
	infrahandler "quote_aggregator/internal/platform/http/handler"
	infraredis "quote_aggregator/internal/platform/redis"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded", "error", err)
	}
	cfg := di.LoadConfig()

	// db
	db, err := infradb.OpenDB()
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("failed to get sql.DB", "error", err)
		os.Exit(1)
	}

	// Redis
	rdb, err := infraredis.NewRedisClient()
	if err != nil {
		slog.Warn("Redis unavailable. Running without cache.", "error", err)
		rdb = nil
	}
	if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	symbolRepo := di.NewSymbolRepository(rdb, db, cfg.SymbolCacheTTL)
	market := di.NewMarket()

	// Usecase
	sync := latestusecase.NewRegistrySync(symbolRepo, market, cfg.SyncMaxConcurrency)
	latestUC := latestusecase.NewLatestUsecase(symbolRepo, sync, market)
	symbolUC := symbollistusecase.NewSymbolUsecase(symbolRepo)

	// Handler
	healthH := infrahandler.NewHealthHandler(sqlDB)
	latestH := latesthandler.NewLatestHandler(latestUC)
	symbolH := symbollisthandler.NewSymbolHandler(symbolUC)

	// ルータ生成
	r := router.NewRouter(healthH, latestH, symbolH, cfg.JWTSecret)

	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET is not set. Quote endpoints are public.")
	}

	slog.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
