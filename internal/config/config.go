package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort       string
	DatabaseDriver string // "sqlite" or "postgres"
	DatabaseDSN    string
	CORSOrigins    string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		DatabaseDriver: getEnv("DATABASE_DRIVER", "sqlite"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "expenses.db"),
		CORSOrigins:    getEnv("CORS_ALLOWED_ORIGINS", "*"),
	}

	if cfg.CORSOrigins == "*" {
		slog.Warn("CORS_ALLOWED_ORIGINS allows every origin, restrict it for anything beyond local use")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
