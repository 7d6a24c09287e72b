// Package kv provides the synchronous string key/value substrate the
// stores persist through: whole collections serialized as JSON under
// stable keys, read once at load and rewritten on every mutation.
package kv

import (
	"context"
	"fmt"

	"github.com/shopverse/shopverse/pkg/config"
	"github.com/shopverse/shopverse/pkg/logger"
)

// Store is the persistence surface. Get reports absence via the bool
// rather than an error; Set and Delete surface write failures to the
// caller.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// New builds the backend selected by config.
func New(ctx context.Context, cfg config.StorageConfig, logg *logger.Logger) (Store, error) {
	switch cfg.Backend {
	case config.StorageBackendSQLite:
		return NewSQLite(cfg.SQLitePath, logg)
	case config.StorageBackendRedis:
		return NewRedis(ctx, cfg)
	case config.StorageBackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
