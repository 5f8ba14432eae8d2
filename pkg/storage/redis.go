package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/novamart-dev/storefront-session/pkg/config"
)

const (
	keyNamespace   = "nm"
	snapshotPrefix = "snapshot"
)

type redisCmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	Get(context.Context, string) *redis.StringCmd
}

// Redis stores snapshots under namespaced keys in a shared Redis instance.
type Redis struct {
	store redisCmdable
	raw   *redis.Client
}

// NewRedis bootstraps the client from config and verifies connectivity.
func NewRedis(ctx context.Context, cfg config.RedisConfig) (*Redis, error) {
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Redis{store: raw, raw: raw}, nil
}

func optionsFromConfig(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URL == "" && cfg.Address == "" {
		return nil, errors.New("redis url or address is required")
	}
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}
	if opts.PoolSize == 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if opts.MinIdleConns == 0 {
		opts.MinIdleConns = cfg.MinIdleConns
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
	return opts, nil
}

func (r *Redis) Save(ctx context.Context, key string, raw []byte) error {
	if r.store == nil {
		return errors.New("redis store not initialized")
	}
	return r.store.Set(ctx, r.snapshotKey(key), raw, 0).Err()
}

func (r *Redis) Load(ctx context.Context, key string) ([]byte, error) {
	if r.store == nil {
		return nil, errors.New("redis store not initialized")
	}
	raw, err := r.store.Get(ctx, r.snapshotKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return raw, nil
}

// Ping verifies the connection.
func (r *Redis) Ping(ctx context.Context) error {
	if r.store == nil {
		return errors.New("redis store not initialized")
	}
	return r.store.Ping(ctx).Err()
}

// Close shuts down the underlying client if available.
func (r *Redis) Close() error {
	if r.raw == nil {
		return nil
	}
	return r.raw.Close()
}

func (r *Redis) snapshotKey(key string) string {
	parts := []string{keyNamespace, snapshotPrefix}
	if trimmed := strings.TrimSpace(key); trimmed != "" {
		parts = append(parts, trimmed)
	}
	return strings.Join(parts, ":")
}
