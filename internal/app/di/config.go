package di

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"quote_aggregator/internal/platform/cache"
	jwtmw "quote_aggregator/internal/platform/jwt"
)

// AppConfig はサーバー全体の設定を保持します。
type AppConfig struct {
	Port               string
	JWTSecret          string        // 空の場合は認証なし
	SyncMaxConcurrency int           // 0 は無制限
	SymbolCacheTTL     time.Duration // シンボル一覧キャッシュの有効期間
}

// LoadConfig は環境変数からアプリケーション設定を読み込みます。
// 不正な値は警告を出してデフォルト値を使用します。
func LoadConfig() AppConfig {
	cfg := AppConfig{
		Port:           os.Getenv("PORT"),
		JWTSecret:      os.Getenv(jwtmw.EnvKeyJWTSecret),
		SymbolCacheTTL: cache.DefaultSymbolTTL,
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if v := os.Getenv("SYNC_MAX_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			slog.Warn("ignoring invalid SYNC_MAX_CONCURRENCY", "value", v)
		} else {
			cfg.SyncMaxConcurrency = n
		}
	}

	if v := os.Getenv("SYMBOL_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			slog.Warn("ignoring invalid SYMBOL_CACHE_TTL", "value", v)
		} else {
			cfg.SymbolCacheTTL = d
		}
	}
	return cfg
}
