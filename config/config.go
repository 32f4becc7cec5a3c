// Package config provides configuration management for the maps cache service.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Storage backends.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMongoDB  = "mongodb"
	BackendMemory   = "memory"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Storage  StorageConfig
	Provider ProviderConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	CORSOrigins    []string
	RequestTimeout time.Duration
	// AdminAPIKeys guards the cache administration endpoints. Empty disables the check.
	AdminAPIKeys map[string]bool
	SwaggerUser  string
	SwaggerPass  string
}

// CacheConfig holds the maps cache lifetimes and maintenance settings.
type CacheConfig struct {
	GeocodingTTL   time.Duration
	RoutingTTL     time.Duration
	PlacesTTL      time.Duration
	SweepInterval  time.Duration
	StorageTimeout time.Duration
}

// StorageConfig selects and configures the durable slot store.
type StorageConfig struct {
	Backend       string
	SQLitePath    string
	PostgresDSN   string
	MongoURI      string
	MongoDatabase string
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// ProviderConfig holds the Google Maps client configuration.
type ProviderConfig struct {
	APIKey string
	// APIKeyFile is read whenever APIKey is empty; the file may appear after start-up.
	APIKeyFile       string
	BaseURL          string
	Region           string
	Language         string
	RateLimit        float64
	BootstrapPoll    time.Duration
	BootstrapTimeout time.Duration
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Pretty bool
}

var defaults = map[string]interface{}{
	"PORT":                                   "8080",
	"RATE_LIMIT":                             100,
	"RATE_WINDOW":                            time.Minute,
	"REQUEST_TIMEOUT":                        30 * time.Second,
	"CACHE_GEOCODING_TTL":                    30 * 24 * time.Hour,
	"CACHE_ROUTING_TTL":                      7 * 24 * time.Hour,
	"CACHE_PLACES_TTL":                       24 * time.Hour,
	"CACHE_SWEEP_INTERVAL":                   time.Hour,
	"CACHE_STORAGE_TIMEOUT":                  5 * time.Second,
	"STORAGE_BACKEND":                        BackendSQLite,
	"SQLITE_PATH":                            "maps_cache.db",
	"MONGODB_DATABASE":                       "maps_cache",
	"CIRCUIT_BREAKER_FAILURE_THRESHOLD":      5,
	"CIRCUIT_BREAKER_SUCCESS_THRESHOLD":      2,
	"CIRCUIT_BREAKER_TIMEOUT":                30 * time.Second,
	"MAPS_REGION":                            "de",
	"MAPS_LANGUAGE":                          "de",
	"MAPS_RATE_LIMIT":                        10.0,
	"MAPS_BOOTSTRAP_POLL":                    200 * time.Millisecond,
	"MAPS_BOOTSTRAP_TIMEOUT":                 10 * time.Second,
	"MAPS_CIRCUIT_BREAKER_FAILURE_THRESHOLD": 5,
	"MAPS_CIRCUIT_BREAKER_SUCCESS_THRESHOLD": 1,
	"MAPS_CIRCUIT_BREAKER_TIMEOUT":           30 * time.Second,
	"LOG_LEVEL":                              "info",
	"LOG_PRETTY":                             false,
}

// Load reads the configuration from the environment and, when CONFIG_FILE
// is set, from that file. Environment variables win over the file. Values
// that do not parse fall back to their defaults.
func Load() (Config, error) {
	return LoadWithOverrides(nil)
}

// LoadWithOverrides is Load with explicit values, such as command line
// flags, that win over both the environment and the config file. Empty
// values are ignored.
func LoadWithOverrides(overrides map[string]string) (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for key, value := range overrides {
		if value != "" {
			v.Set(key, value)
		}
	}

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config file %s", file)
		}
	}

	r := reader{v: v}
	return Config{
		Server: ServerConfig{
			Port:           r.String("PORT"),
			RateLimit:      r.Int("RATE_LIMIT"),
			RateWindow:     r.Duration("RATE_WINDOW"),
			CORSOrigins:    parseCORSOrigins(v.GetString("CORS_ORIGINS")),
			RequestTimeout: r.Duration("REQUEST_TIMEOUT"),
			AdminAPIKeys:   parseAPIKeys(v.GetString("ADMIN_API_KEYS")),
			SwaggerUser:    v.GetString("SWAGGER_USER"),
			SwaggerPass:    v.GetString("SWAGGER_PASS"),
		},
		Cache: CacheConfig{
			GeocodingTTL:   r.Duration("CACHE_GEOCODING_TTL"),
			RoutingTTL:     r.Duration("CACHE_ROUTING_TTL"),
			PlacesTTL:      r.Duration("CACHE_PLACES_TTL"),
			SweepInterval:  r.Duration("CACHE_SWEEP_INTERVAL"),
			StorageTimeout: r.Duration("CACHE_STORAGE_TIMEOUT"),
		},
		Storage: StorageConfig{
			Backend:                        strings.ToLower(r.String("STORAGE_BACKEND")),
			SQLitePath:                     r.String("SQLITE_PATH"),
			PostgresDSN:                    v.GetString("POSTGRES_DSN"),
			MongoURI:                       v.GetString("MONGODB_URI"),
			MongoDatabase:                  r.String("MONGODB_DATABASE"),
			CircuitBreakerFailureThreshold: r.Int("CIRCUIT_BREAKER_FAILURE_THRESHOLD"),
			CircuitBreakerSuccessThreshold: r.Int("CIRCUIT_BREAKER_SUCCESS_THRESHOLD"),
			CircuitBreakerTimeout:          r.Duration("CIRCUIT_BREAKER_TIMEOUT"),
		},
		Provider: ProviderConfig{
			APIKey:                         v.GetString("MAPS_API_KEY"),
			APIKeyFile:                     v.GetString("MAPS_API_KEY_FILE"),
			BaseURL:                        v.GetString("MAPS_BASE_URL"),
			Region:                         r.String("MAPS_REGION"),
			Language:                       r.String("MAPS_LANGUAGE"),
			RateLimit:                      r.Float("MAPS_RATE_LIMIT"),
			BootstrapPoll:                  r.Duration("MAPS_BOOTSTRAP_POLL"),
			BootstrapTimeout:               r.Duration("MAPS_BOOTSTRAP_TIMEOUT"),
			CircuitBreakerFailureThreshold: r.Int("MAPS_CIRCUIT_BREAKER_FAILURE_THRESHOLD"),
			CircuitBreakerSuccessThreshold: r.Int("MAPS_CIRCUIT_BREAKER_SUCCESS_THRESHOLD"),
			CircuitBreakerTimeout:          r.Duration("MAPS_CIRCUIT_BREAKER_TIMEOUT"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(r.String("LOG_LEVEL")),
			Pretty: r.Bool("LOG_PRETTY"),
		},
	}, nil
}

// Validate reports configuration that cannot start the service.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite:
		if c.Storage.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required for the sqlite backend")
		}
	case BackendPostgres:
		if c.Storage.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required for the postgres backend")
		}
	case BackendMongoDB:
		if c.Storage.MongoURI == "" {
			return errors.New("MONGODB_URI is required for the mongodb backend")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend)
	}

	if c.Server.RateLimit <= 0 {
		return errors.New("RATE_LIMIT must be positive")
	}
	return nil
}

// reader returns the default of a key whenever its configured value does not parse.
type reader struct {
	v *viper.Viper
}

func (r reader) raw(key string) (string, bool) {
	s := strings.TrimSpace(r.v.GetString(key))
	return s, s != ""
}

func (r reader) String(key string) string {
	if s, ok := r.raw(key); ok {
		return s
	}
	return fmt.Sprint(defaults[key])
}

func (r reader) Int(key string) int {
	if s, ok := r.raw(key); ok {
		if i, err := strconv.Atoi(s); err == nil {
			return i
		}
	}
	i, _ := defaults[key].(int)
	return i
}

func (r reader) Float(key string) float64 {
	if s, ok := r.raw(key); ok {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	f, _ := defaults[key].(float64)
	return f
}

func (r reader) Bool(key string) bool {
	if s, ok := r.raw(key); ok {
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
	}
	b, _ := defaults[key].(bool)
	return b
}

func (r reader) Duration(key string) time.Duration {
	if s, ok := r.raw(key); ok {
		if d, err := time.ParseDuration(s); err == nil {
			return d
		}
	}
	d, _ := defaults[key].(time.Duration)
	return d
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
