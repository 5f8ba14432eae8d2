package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Fatalf("unexpected API base url: %q", cfg.API.BaseURL)
	}
	if cfg.Storage.Backend != StorageBackendFile {
		t.Fatalf("expected file backend by default, got %q", cfg.Storage.Backend)
	}
	if cfg.Toast.TTL != 4*time.Second {
		t.Fatalf("expected 4s toast TTL, got %v", cfg.Toast.TTL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvAppEnv, "prod")
	t.Setenv(EnvAPIBaseURL, "https://shop.example.com/api")
	t.Setenv(EnvToastTTL, "2s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.App.IsProd() {
		t.Fatalf("expected prod env, got %q", cfg.App.Env)
	}
	if cfg.API.BaseURL != "https://shop.example.com/api" {
		t.Fatalf("unexpected API base url: %q", cfg.API.BaseURL)
	}
	if cfg.Toast.TTL != 2*time.Second {
		t.Fatalf("expected 2s toast TTL, got %v", cfg.Toast.TTL)
	}
}

func TestLoad_InvalidBaseURL(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "localhost:8000")
	if _, err := Load(); err == nil {
		t.Fatal("expected relative base url to return an error")
	}
}

func TestLoad_UnknownStorageBackend(t *testing.T) {
	t.Setenv(EnvStorageBackend, "cassandra")
	if _, err := Load(); err == nil {
		t.Fatal("expected unknown storage backend to return an error")
	}
}

func TestLoad_RedisBackendRequiresAddress(t *testing.T) {
	t.Setenv(EnvStorageBackend, StorageBackendRedis)
	if _, err := Load(); err == nil {
		t.Fatal("expected redis backend without address to return an error")
	}
}

func TestLoad_SQLiteBackendRequiresDSN(t *testing.T) {
	t.Setenv(EnvStorageBackend, StorageBackendSQLite)
	if _, err := Load(); err == nil {
		t.Fatal("expected sqlite backend without dsn to return an error")
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "prod"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
	if prodConfig.IsDev() {
		t.Fatalf("expected IsDev false for %q", prodConfig.Env)
	}
}
