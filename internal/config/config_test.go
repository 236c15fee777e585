package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// Empty values read as unset, isolating the test from the host env.
	t.Setenv("HTTP_PORT", "")
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, "expenses.db", cfg.DatabaseDSN)
	assert.Equal(t, "*", cfg.CORSOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_DSN", "host=db user=app dbname=expenses")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://expenses.example.com")

	cfg := Load()

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, "host=db user=app dbname=expenses", cfg.DatabaseDSN)
	assert.Equal(t, "https://expenses.example.com", cfg.CORSOrigins)
}
