// Package config reads reframe settings from REFRAME_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/reframe/internal/domain"
	"github.com/alexanderramin/reframe/internal/generator"
	"github.com/alexanderramin/reframe/internal/matcher"
)

// Backend names a session store implementation.
type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
	BackendRedis  Backend = "redis"
)

// RedisConfig holds connection settings for the redis backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// Config holds all runtime configuration.
type Config struct {
	DBPath         string
	CatalogPath    string // empty uses the embedded catalog
	Backend        Backend
	Redis          RedisConfig
	HistorySize    int
	MinConfidence  float64
	CloserAttempts int
	LogUseCases    bool
}

// DefaultConfig returns a Config with sensible defaults: the embedded
// catalog and a SQLite store under the user's home directory.
func DefaultConfig() Config {
	return Config{
		DBPath:  defaultDBPath(),
		Backend: BackendSQLite,
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			Prefix: "reframe",
		},
		HistorySize:    domain.DefaultHistorySize,
		MinConfidence:  matcher.DefaultMinConfidence,
		CloserAttempts: generator.DefaultCloserAttempts,
	}
}

// LoadConfig reads configuration from environment variables, falling back to
// defaults for any unset or unparsable values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("REFRAME_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("REFRAME_CATALOG"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("REFRAME_SESSION_BACKEND"); v != "" {
		cfg.Backend = Backend(v)
	}
	if v := os.Getenv("REFRAME_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REFRAME_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("REFRAME_REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Redis.DB = n
		}
	}
	if v := os.Getenv("REFRAME_REDIS_PREFIX"); v != "" {
		cfg.Redis.Prefix = v
	}
	if v := os.Getenv("REFRAME_HISTORY_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HistorySize = n
		}
	}
	if v := os.Getenv("REFRAME_MIN_CONFIDENCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.MinConfidence = f
		}
	}
	if v := os.Getenv("REFRAME_CLOSER_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CloserAttempts = n
		}
	}
	if v := os.Getenv("REFRAME_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}

	return cfg
}

// Validate rejects settings that LoadConfig cannot fix by defaulting.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("sqlite backend requires a database path")
		}
	case BackendMemory:
	case BackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis backend requires an address")
		}
	default:
		return fmt.Errorf("unknown session backend %q (want sqlite, memory or redis)", c.Backend)
	}
	return nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".reframe", "reframe.db")
	}
	return filepath.Join(home, ".reframe", "reframe.db")
}
