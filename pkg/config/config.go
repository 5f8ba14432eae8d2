package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	API       APIConfig
	Storage   StorageConfig
	Redis     RedisConfig
	Toast     ToastConfig
	Assistant AssistantConfig
}

// Load reads a local .env (best effort) and processes the NOVAMART_* env
// variables into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.API.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Storage.validate(cfg.Redis); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"NOVAMART_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"NOVAMART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"NOVAMART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// APIConfig points the engine at the storefront backend it consumes.
type APIConfig struct {
	BaseURL        string        `envconfig:"NOVAMART_API_BASE_URL" default:"http://localhost:8000"`
	RequestTimeout time.Duration `envconfig:"NOVAMART_API_REQUEST_TIMEOUT" default:"15s"`
	CatalogLimit   int           `envconfig:"NOVAMART_API_CATALOG_LIMIT" default:"100"`
}

func (a APIConfig) validate() error {
	parsed, err := url.Parse(a.BaseURL)
	if err != nil {
		return fmt.Errorf("parsing api base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("api base url %q must be absolute", a.BaseURL)
	}
	return nil
}

// StorageConfig selects the persistence backend for session snapshots.
type StorageConfig struct {
	Backend string `envconfig:"NOVAMART_STORAGE_BACKEND" default:"file"`
	Dir     string `envconfig:"NOVAMART_STORAGE_DIR" default:".novamart"`
	DSN     string `envconfig:"NOVAMART_STORAGE_DSN"`
}

func (s StorageConfig) validate(redis RedisConfig) error {
	switch strings.ToLower(s.Backend) {
	case StorageBackendMemory:
		return nil
	case StorageBackendFile:
		if s.Dir == "" {
			return fmt.Errorf("storage dir is required for the file backend")
		}
		return nil
	case StorageBackendRedis:
		if redis.URL == "" && redis.Address == "" {
			return fmt.Errorf("redis url or address is required for the redis backend")
		}
		return nil
	case StorageBackendSQLite, StorageBackendPostgres:
		if s.DSN == "" {
			return fmt.Errorf("storage dsn is required for the %s backend", s.Backend)
		}
		return nil
	default:
		return fmt.Errorf("unknown storage backend %q", s.Backend)
	}
}

type RedisConfig struct {
	URL          string        `envconfig:"NOVAMART_REDIS_URL"`
	Address      string        `envconfig:"NOVAMART_REDIS_ADDR"`
	Password     string        `envconfig:"NOVAMART_REDIS_PASSWORD"`
	DB           int           `envconfig:"NOVAMART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"NOVAMART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"NOVAMART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"NOVAMART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"NOVAMART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"NOVAMART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type ToastConfig struct {
	TTL      time.Duration `envconfig:"NOVAMART_TOAST_TTL" default:"4s"`
	Capacity int           `envconfig:"NOVAMART_TOAST_CAPACITY" default:"8"`
}

type AssistantConfig struct {
	HistoryLimit int `envconfig:"NOVAMART_ASSISTANT_HISTORY_LIMIT" default:"50"`
}
