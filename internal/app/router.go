// Package app provides router configuration.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/maps-cache-service/config"
	"github.com/guttosm/maps-cache-service/internal/http"
)

// InitializeRouter builds the HTTP handlers, registers health checks and
// returns the configured router.
func InitializeRouter(cfg config.ServerConfig, storage *StorageComponents, services *ServiceComponents) *gin.Engine {
	healthHandler := http.NewHealthHandler()

	// Readiness depends on storage only; provider state is reported.
	healthHandler.RegisterChecker("storage", storage.Store)
	healthHandler.RegisterCircuitBreaker("storage", storage.CircuitBreaker)
	healthHandler.RegisterStatus("google_maps_circuit", func() string {
		return services.ProviderCircuitBreaker.State().String()
	})
	for name, state := range services.Bootstraps {
		healthHandler.RegisterStatus(name, state)
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.RateLimit,
		RateWindow:     cfg.RateWindow,
		RequestTimeout: cfg.RequestTimeout,
		AdminAPIKeys:   cfg.AdminAPIKeys,
		CORSOrigins:    cfg.CORSOrigins,
		SwaggerUser:    cfg.SwaggerUser,
		SwaggerPass:    cfg.SwaggerPass,
		Maps:           http.NewMapsHandler(services.Geocoding, services.Routing, services.Places),
		Cache:          http.NewCacheHandler(services.Cache),
	}

	return http.NewRouter(healthHandler, routerCfg)
}
