package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "APP_PORT=9090\nJWT_SECRET=file-secret\nJWT_ACCESS_EXPIRY=5m\nDB_NAME=hospital\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.App.Port)
	}
	if cfg.JWT.AccessExpiry != 5*time.Minute {
		t.Errorf("access expiry = %v, want 5m", cfg.JWT.AccessExpiry)
	}
	if cfg.JWT.RefreshExpiry != 7*24*time.Hour {
		t.Errorf("refresh expiry = %v, want default", cfg.JWT.RefreshExpiry)
	}
	if cfg.DB.Name != "hospital" {
		t.Errorf("db name = %q", cfg.DB.Name)
	}
}

func TestLoadConfigMissingFileUsesEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("STATS_CACHE_TTL", "1m")

	cfg, err := LoadConfigFrom(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("secret = %q", cfg.JWT.Secret)
	}
	if !cfg.IsProduction() {
		t.Error("expected production env")
	}
	if cfg.App.Port != "8080" {
		t.Errorf("port = %q, want default 8080", cfg.App.Port)
	}
	if cfg.Stats.CacheTTL != time.Minute {
		t.Errorf("cache ttl = %v", cfg.Stats.CacheTTL)
	}
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := LoadConfigFrom(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("expected error without JWT_SECRET")
	}
}
