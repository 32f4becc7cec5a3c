package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
		assert.Nil(t, cfg.Server.AdminAPIKeys)
		assert.Equal(t, 30*24*time.Hour, cfg.Cache.GeocodingTTL)
		assert.Equal(t, 7*24*time.Hour, cfg.Cache.RoutingTTL)
		assert.Equal(t, 24*time.Hour, cfg.Cache.PlacesTTL)
		assert.Equal(t, time.Hour, cfg.Cache.SweepInterval)
		assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
		assert.Equal(t, "maps_cache.db", cfg.Storage.SQLitePath)
		assert.Equal(t, "de", cfg.Provider.Region)
		assert.Equal(t, "de", cfg.Provider.Language)
		assert.Equal(t, 10.0, cfg.Provider.RateLimit)
		assert.Equal(t, 200*time.Millisecond, cfg.Provider.BootstrapPoll)
		assert.Equal(t, 10*time.Second, cfg.Provider.BootstrapTimeout)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Log.Pretty)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("ADMIN_API_KEYS", "key1, key2")
		_ = os.Setenv("CACHE_ROUTING_TTL", "1h")
		_ = os.Setenv("STORAGE_BACKEND", "Postgres")
		_ = os.Setenv("POSTGRES_DSN", "postgres://localhost/maps")
		_ = os.Setenv("MAPS_API_KEY", "secret")
		_ = os.Setenv("MAPS_RATE_LIMIT", "2.5")
		_ = os.Setenv("LOG_LEVEL", "DEBUG")
		_ = os.Setenv("LOG_PRETTY", "true")
		defer os.Clearenv()

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, map[string]bool{"key1": true, "key2": true}, cfg.Server.AdminAPIKeys)
		assert.Equal(t, time.Hour, cfg.Cache.RoutingTTL)
		assert.Equal(t, BackendPostgres, cfg.Storage.Backend)
		assert.Equal(t, "secret", cfg.Provider.APIKey)
		assert.Equal(t, 2.5, cfg.Provider.RateLimit)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.Log.Pretty)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		_ = os.Setenv("CACHE_GEOCODING_TTL", "forever")
		_ = os.Setenv("LOG_PRETTY", "maybe")
		_ = os.Setenv("MAPS_RATE_LIMIT", "fast")
		defer os.Clearenv()

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 30*24*time.Hour, cfg.Cache.GeocodingTTL)
		assert.False(t, cfg.Log.Pretty)
		assert.Equal(t, 10.0, cfg.Provider.RateLimit)
	})

	t.Run("reads config file with environment override", func(t *testing.T) {
		os.Clearenv()
		file := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(file, []byte("port: \"7070\"\nmaps_region: at\nstorage_backend: memory\n"), 0o600))
		_ = os.Setenv("CONFIG_FILE", file)
		_ = os.Setenv("MAPS_REGION", "ch")
		defer os.Clearenv()

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "7070", cfg.Server.Port)
		assert.Equal(t, "ch", cfg.Provider.Region)
		assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	})

	t.Run("fails on missing config file", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
		defer os.Clearenv()

		_, err := Load()

		assert.Error(t, err)
	})
}

func TestLoadWithOverrides(t *testing.T) {
	os.Clearenv()
	_ = os.Setenv("PORT", "9090")
	_ = os.Setenv("STORAGE_BACKEND", "mongodb")
	defer os.Clearenv()

	cfg, err := LoadWithOverrides(map[string]string{
		"PORT":            "7000",
		"STORAGE_BACKEND": "",
		"LOG_LEVEL":       "warn",
	})

	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, BackendMongoDB, cfg.Storage.Backend)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "sqlite ok", mutate: func(c *Config) {}},
		{name: "memory ok", mutate: func(c *Config) { c.Storage.Backend = BackendMemory }},
		{name: "sqlite without path", mutate: func(c *Config) { c.Storage.SQLitePath = "" }, wantErr: "SQLITE_PATH"},
		{name: "postgres without dsn", mutate: func(c *Config) { c.Storage.Backend = BackendPostgres }, wantErr: "POSTGRES_DSN"},
		{name: "mongodb without uri", mutate: func(c *Config) { c.Storage.Backend = BackendMongoDB }, wantErr: "MONGODB_URI"},
		{name: "unknown backend", mutate: func(c *Config) { c.Storage.Backend = "redis" }, wantErr: "unknown STORAGE_BACKEND"},
		{name: "zero rate limit", mutate: func(c *Config) { c.Server.RateLimit = 0 }, wantErr: "RATE_LIMIT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				Server:  ServerConfig{RateLimit: 100},
				Storage: StorageConfig{Backend: BackendSQLite, SQLitePath: "maps.db"},
			}
			tt.mutate(&cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseCORSOrigins(t *testing.T) {
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, parseCORSOrigins(""))
	assert.Equal(t,
		[]string{"http://localhost:3000", "http://127.0.0.1:3000", "https://maps.example.com"},
		parseCORSOrigins(" https://maps.example.com , "))
}
