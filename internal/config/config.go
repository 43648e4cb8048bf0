// Package config resolves storage paths and runtime tunables for geekcache.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func init() {
	// Load .env file if it exists (silent fail if not)
	_ = godotenv.Load()
}

// Config holds all runtime tunables, loaded from the environment with
// defaults matching the upstream API's published limits.
type Config struct {
	Upstream UpstreamConfig
	Queue    QueueConfig
	Sync     SyncConfig
}

// UpstreamConfig holds settings for the BoardGameGeek XML API client.
type UpstreamConfig struct {
	BaseURL   string        `envconfig:"GEEKCACHE_BGG_BASE_URL" default:"https://boardgamegeek.com/xmlapi2"`
	UserAgent string        `envconfig:"GEEKCACHE_USER_AGENT" default:"geekcache/0.1 (+https://github.com/geekcache/geekcache)"`
	Timeout   time.Duration `envconfig:"GEEKCACHE_HTTP_TIMEOUT" default:"30s"`
}

// QueueConfig holds the request queue's throttling parameters.
type QueueConfig struct {
	MaxPerWindow    int           `envconfig:"GEEKCACHE_MAX_PER_WINDOW" default:"10"`
	Window          time.Duration `envconfig:"GEEKCACHE_WINDOW" default:"60s"`
	ThrottleBackoff time.Duration `envconfig:"GEEKCACHE_THROTTLE_BACKOFF" default:"5s"`
	RequestSpacing  time.Duration `envconfig:"GEEKCACHE_REQUEST_SPACING" default:"1s"`
}

// SyncConfig holds the synchronizer's freshness and retry parameters.
type SyncConfig struct {
	DefaultTTL       time.Duration `envconfig:"GEEKCACHE_DEFAULT_TTL" default:"168h"`
	DeferredAttempts int           `envconfig:"GEEKCACHE_DEFERRED_ATTEMPTS" default:"3"`
	DeferredDelay    time.Duration `envconfig:"GEEKCACHE_DEFERRED_DELAY" default:"5s"`
	CascadeDelay     time.Duration `envconfig:"GEEKCACHE_CASCADE_DELAY" default:"100ms"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// GetDataDir resolves the base directory for geekcache storage. It checks
// GEEKCACHE_DIR first, then XDG paths, and finally falls back to the user's
// home directory.
func GetDataDir() string {
	if explicit := os.Getenv("GEEKCACHE_DIR"); explicit != "" {
		return explicit
	}

	xdg.Reload()

	dataHome := xdg.DataHome
	if dataHome == "" {
		home := xdg.Home
		if home == "" {
			var err error
			home, err = os.UserHomeDir()
			if err != nil {
				return filepath.Join(os.TempDir(), "geekcache")
			}
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "geekcache")
}

// GetDBPath returns the absolute path to the SQLite database file.
func GetDBPath() string {
	return filepath.Join(GetDataDir(), "geekcache.db")
}
