package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/novamart-dev/storefront-session/pkg/config"
)

// Open builds the Store selected by the storage config. The returned closer
// releases any underlying connection and is safe to call once.
func Open(ctx context.Context, cfg config.StorageConfig, redisCfg config.RedisConfig) (Store, func() error, error) {
	switch strings.ToLower(cfg.Backend) {
	case config.StorageBackendMemory:
		return NewMemory(), noopClose, nil
	case config.StorageBackendFile:
		store, err := NewFile(cfg.Dir)
		if err != nil {
			return nil, nil, err
		}
		return store, noopClose, nil
	case config.StorageBackendRedis:
		store, err := NewRedis(ctx, redisCfg)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case config.StorageBackendSQLite, config.StorageBackendPostgres:
		store, err := OpenGorm(cfg)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func noopClose() error { return nil }
