package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestGetDataDirExplicitOverride(t *testing.T) {
	t.Setenv("GEEKCACHE_DIR", "/tmp/geekcache-test")

	if got := GetDataDir(); got != "/tmp/geekcache-test" {
		t.Fatalf("expected explicit dir, got %s", got)
	}
	if got := GetDBPath(); got != filepath.Join("/tmp/geekcache-test", "geekcache.db") {
		t.Fatalf("unexpected db path %s", got)
	}
}

func TestGetDataDirXDGFallback(t *testing.T) {
	t.Setenv("GEEKCACHE_DIR", "")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	if got := GetDataDir(); got != filepath.Join("/tmp/xdg-data", "geekcache") {
		t.Fatalf("expected xdg dir, got %s", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Queue.MaxPerWindow != 10 {
		t.Errorf("expected 10 requests per window, got %d", cfg.Queue.MaxPerWindow)
	}
	if cfg.Queue.Window != 60*time.Second {
		t.Errorf("expected 60s window, got %s", cfg.Queue.Window)
	}
	if cfg.Sync.DefaultTTL != 7*24*time.Hour {
		t.Errorf("expected 7 day TTL, got %s", cfg.Sync.DefaultTTL)
	}
	if cfg.Sync.DeferredAttempts != 3 {
		t.Errorf("expected 3 deferred attempts, got %d", cfg.Sync.DeferredAttempts)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("GEEKCACHE_MAX_PER_WINDOW", "2")
	t.Setenv("GEEKCACHE_WINDOW", "250ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Queue.MaxPerWindow != 2 || cfg.Queue.Window != 250*time.Millisecond {
		t.Fatalf("env override not applied: %+v", cfg.Queue)
	}
}
