package config

import "time"

// EnvPrefix namespaces every environment variable consumed by the engine.
const EnvPrefix = "novamart"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv         = "NOVAMART_APP_ENV"
	EnvLogLevel       = "NOVAMART_LOG_LEVEL"
	EnvAPIBaseURL     = "NOVAMART_API_BASE_URL"
	EnvStorageBackend = "NOVAMART_STORAGE_BACKEND"
	EnvStorageDir     = "NOVAMART_STORAGE_DIR"
	EnvStorageDSN     = "NOVAMART_STORAGE_DSN"
	EnvRedisURL       = "NOVAMART_REDIS_URL"
	EnvToastTTL       = "NOVAMART_TOAST_TTL"
)

// Fallbacks applied when a ToastConfig is constructed outside Load.
const (
	DefaultToastTTL      = 4 * time.Second
	DefaultToastCapacity = 8
)

const (
	StorageBackendMemory   = "memory"
	StorageBackendFile     = "file"
	StorageBackendRedis    = "redis"
	StorageBackendSQLite   = "sqlite"
	StorageBackendPostgres = "postgres"
)
