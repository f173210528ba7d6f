// Package db はバッキングストア（PostgreSQL）への接続を提供します。
package db

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"time"

	symboladapters "quote_aggregator/internal/feature/symbollist/adapters"

	"github.com/jackc/pgx/v5"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// retryInterval は接続リトライの間隔です。
const retryInterval = 3 * time.Second

// Config はデータベース接続設定を保持します。
type Config struct {
	URL      string // DATABASE_URL が設定されていれば他の項目より優先
	User     string
	Password string
	Name     string
	Host     string
	Port     string
	SSLMode  string
}

// Opener はDSNからgorm.DBを開く関数です。テストで差し替えます。
type Opener func(dsn string) (*gorm.DB, error)

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
func LoadConfigFromEnv() Config {
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "require"
	}
	return Config{
		URL:      os.Getenv("DATABASE_URL"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		SSLMode:  sslmode,
	}
}

// BuildDSN は設定からPostgreSQLの接続URLを生成します。
func BuildDSN(cfg Config) string {
	if cfg.URL != "" {
		return cfg.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     cfg.Host + ":" + cfg.Port,
		Path:     "/" + cfg.Name,
		RawQuery: url.Values{"sslmode": {cfg.SSLMode}}.Encode(),
	}
	return u.String()
}

// ValidateDSN はDSNをpgxで解析し、接続前に設定誤りを検出します。
func ValidateDSN(dsn string) error {
	if _, err := pgx.ParseConfig(dsn); err != nil {
		return fmt.Errorf("invalid database config: %w", err)
	}
	return nil
}

// PostgresOpener は gorm の postgres ドライバーで接続を開きます。
func PostgresOpener(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// ConnectWithRetry は timeout まで retryInterval 間隔で接続を試みます。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, fmt.Errorf("db connect failed after %v: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err, "interval", retryInterval)
		time.Sleep(retryInterval)
	}
}

// OpenDB は環境変数の設定でPostgreSQLに接続します。
// 接続できない場合はリクエストを処理できないためエラーを返します。
func OpenDB() (*gorm.DB, error) {
	dsn := BuildDSN(LoadConfigFromEnv())
	if err := ValidateDSN(dsn); err != nil {
		return nil, err
	}

	db, err := ConnectWithRetry(dsn, 60*time.Second, PostgresOpener)
	if err != nil {
		return nil, err
	}

	// 本番のSymbolテーブルはプロビジョニング側が作成する。ローカル開発用
	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(&symboladapters.SymbolModel{}); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}
	return db, nil
}
