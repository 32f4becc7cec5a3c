//go:build !integration

package app

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/maps-cache-service/config"
	"github.com/guttosm/maps-cache-service/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitWithWriter("error", false, io.Discard)
}

const geocodeResponse = `{
  "status": "OK",
  "results": [
    {"formatted_address": "Marienplatz 1, 80331 München, Germany", "geometry": {"location": {"lat": 48.1374, "lng": 11.5755}}}
  ]
}`

// newGoogleServer serves a fixed geocode answer and counts the calls.
func newGoogleServer(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	calls := new(atomic.Int32)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(geocodeResponse))
	}))
	t.Cleanup(server.Close)
	return server, calls
}

// testConfig returns a memory-backed configuration with fast bootstrap polling.
func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:           "0",
			RateLimit:      100,
			RateWindow:     time.Minute,
			RequestTimeout: 5 * time.Second,
			AdminAPIKeys:   map[string]bool{"admin-key": true},
		},
		Cache: config.CacheConfig{
			GeocodingTTL:   time.Hour,
			RoutingTTL:     time.Hour,
			PlacesTTL:      time.Hour,
			StorageTimeout: time.Second,
		},
		Storage: config.StorageConfig{
			Backend:                        config.BackendMemory,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 1,
			CircuitBreakerTimeout:          time.Minute,
		},
		Provider: config.ProviderConfig{
			Region:                         "de",
			Language:                       "de",
			BootstrapPoll:                  10 * time.Millisecond,
			BootstrapTimeout:               100 * time.Millisecond,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 1,
			CircuitBreakerTimeout:          time.Minute,
		},
		Log: config.LogConfig{Level: "error"},
	}
}
