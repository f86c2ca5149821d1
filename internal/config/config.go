package config

import (
	"fmt"
	"os"
)

// Config は環境変数から読み込むサーバ設定
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	Port        string // HTTP listen port
	FrontendURL string // CORS allow origin
}

// Load reads configuration from the environment, falling back to local
// development defaults. It never fails: a missing variable simply means
// its default is used.
func Load() Config {
	return Config{
		DBHost:      envOr("DB_HOST", "localhost"),
		DBPort:      envOr("DB_PORT", "5432"),
		DBUser:      envOr("DB_USER", "postgres"),
		DBPassword:  envOr("DB_PASSWORD", "postgres"),
		DBName:      envOr("DB_NAME", "portfolio_db"),
		Port:        envOr("PORT", "3000"),
		FrontendURL: envOr("FRONTEND_URL", "http://localhost:3000"),
	}
}

// DatabaseURL は pgx 用の接続文字列を組み立てる
func (c Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
