package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable this application reads.
const EnvPrefix = "SHOPVERSE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Storage backend identifiers accepted by StorageConfig.Backend.
const (
	StorageBackendSQLite = "sqlite"
	StorageBackendRedis  = "redis"
	StorageBackendMemory = "memory"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Auth    AuthConfig
	Catalog CatalogConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storage.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env      string `envconfig:"SHOPVERSE_APP_ENV" default:"dev"`
	LogLevel string `envconfig:"SHOPVERSE_LOG_LEVEL" default:"info"`
	// LogConsole switches zerolog to the human console writer.
	LogConsole bool `envconfig:"SHOPVERSE_LOG_CONSOLE" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StorageConfig selects and tunes the key/value substrate that plays the
// role browser local storage played for the original storefront.
type StorageConfig struct {
	Backend    string `envconfig:"SHOPVERSE_STORAGE_BACKEND" default:"sqlite"`
	SQLitePath string `envconfig:"SHOPVERSE_STORAGE_SQLITE_PATH" default:"shopverse.db"`

	RedisURL          string        `envconfig:"SHOPVERSE_STORAGE_REDIS_URL"`
	RedisDialTimeout  time.Duration `envconfig:"SHOPVERSE_STORAGE_REDIS_DIAL_TIMEOUT" default:"5s"`
	RedisReadTimeout  time.Duration `envconfig:"SHOPVERSE_STORAGE_REDIS_READ_TIMEOUT" default:"5s"`
	RedisWriteTimeout time.Duration `envconfig:"SHOPVERSE_STORAGE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (s StorageConfig) validate() error {
	switch s.Backend {
	case StorageBackendSQLite:
		if strings.TrimSpace(s.SQLitePath) == "" {
			return fmt.Errorf("sqlite storage requires SHOPVERSE_STORAGE_SQLITE_PATH")
		}
	case StorageBackendRedis:
		if strings.TrimSpace(s.RedisURL) == "" {
			return fmt.Errorf("redis storage requires SHOPVERSE_STORAGE_REDIS_URL")
		}
	case StorageBackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", s.Backend)
	}
	return nil
}

type AuthConfig struct {
	// SimulatedLatency delays login/register resolution to mimic a remote
	// identity provider. Set to 0 to disable.
	SimulatedLatency time.Duration `envconfig:"SHOPVERSE_AUTH_SIMULATED_LATENCY" default:"500ms"`
}

type CatalogConfig struct {
	// Seed populates the catalog with the built-in product set when the
	// persisted collection is missing.
	Seed bool `envconfig:"SHOPVERSE_CATALOG_SEED" default:"true"`
}
