package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PGSQL_URL", "PORT", "STORAGE_DRIVER", "RATE_CACHE_TTL", "RATE_LIMIT",
		"CORS_ALLOWED_ORIGINS", "TRANSFER_MAX_RETRIES", "LOG_LEVEL", "REDIS_URL", "IS_PRODUCTION"} {
		t.Setenv(key, "")
	}
	// An empty PORT still falls back.
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, StorageDriverPostgres, cfg.StorageDriver)
	assert.Equal(t, defaultRateCacheTTL, cfg.RateCacheTTL)
	assert.Equal(t, defaultRateLimit, cfg.RateLimit)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.False(t, cfg.IsProduction)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://ledger@localhost/ledger")
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("RATE_CACHE_TTL", "30s")
	t.Setenv("RATE_LIMIT", "10-S")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("TRANSFER_MAX_RETRIES", "7")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://ledger@localhost/ledger", cfg.DatabaseURL)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, StorageDriverMemory, cfg.StorageDriver)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, 30*time.Second, cfg.RateCacheTTL)
	assert.Equal(t, "10-S", cfg.RateLimit)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 7, cfg.TransferMaxRetries)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "cassandra")
	t.Setenv("RATE_CACHE_TTL", "soon")
	t.Setenv("TRANSFER_MAX_RETRIES", "-1")
	t.Setenv("LOG_LEVEL", "loud")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StorageDriverPostgres, cfg.StorageDriver)
	assert.Equal(t, defaultRateCacheTTL, cfg.RateCacheTTL)
	assert.Equal(t, defaultTransferMaxRetries, cfg.TransferMaxRetries)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}
