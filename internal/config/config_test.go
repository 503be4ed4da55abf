package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, 5, cfg.HistorySize)
	assert.Equal(t, 2.0, cfg.MinConfidence)
	assert.Equal(t, 6, cfg.CloserAttempts)
	assert.Empty(t, cfg.CatalogPath)
	assert.Equal(t, "reframe.db", filepath.Base(cfg.DBPath))
	assert.False(t, cfg.LogUseCases)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("REFRAME_DB", "/tmp/x.db")
	t.Setenv("REFRAME_CATALOG", "/tmp/catalog.yaml")
	t.Setenv("REFRAME_SESSION_BACKEND", "redis")
	t.Setenv("REFRAME_REDIS_ADDR", "redis:6380")
	t.Setenv("REFRAME_REDIS_PASSWORD", "secret")
	t.Setenv("REFRAME_REDIS_DB", "3")
	t.Setenv("REFRAME_HISTORY_SIZE", "8")
	t.Setenv("REFRAME_MIN_CONFIDENCE", "3.5")
	t.Setenv("REFRAME_CLOSER_ATTEMPTS", "10")
	t.Setenv("REFRAME_LOG_USE_CASES", "true")

	cfg := LoadConfig()
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, "/tmp/catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, BackendRedis, cfg.Backend)
	assert.Equal(t, RedisConfig{Addr: "redis:6380", Password: "secret", DB: 3, Prefix: "reframe"}, cfg.Redis)
	assert.Equal(t, 8, cfg.HistorySize)
	assert.Equal(t, 3.5, cfg.MinConfidence)
	assert.Equal(t, 10, cfg.CloserAttempts)
	assert.True(t, cfg.LogUseCases)
}

func TestLoadConfig_InvalidValuesKeepDefaults(t *testing.T) {
	t.Setenv("REFRAME_HISTORY_SIZE", "-2")
	t.Setenv("REFRAME_MIN_CONFIDENCE", "abc")
	t.Setenv("REFRAME_CLOSER_ATTEMPTS", "0")
	t.Setenv("REFRAME_REDIS_DB", "x")

	cfg := LoadConfig()
	def := DefaultConfig()
	assert.Equal(t, def.HistorySize, cfg.HistorySize)
	assert.Equal(t, def.MinConfidence, cfg.MinConfidence)
	assert.Equal(t, def.CloserAttempts, cfg.CloserAttempts)
	assert.Equal(t, 0, cfg.Redis.DB)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"memory ok", func(c *Config) { c.Backend = BackendMemory }, ""},
		{"unknown backend", func(c *Config) { c.Backend = "postgres" }, "unknown session backend"},
		{"sqlite without path", func(c *Config) { c.DBPath = "" }, "database path"},
		{"redis without addr", func(c *Config) { c.Backend = BackendRedis; c.Redis.Addr = "" }, "address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
