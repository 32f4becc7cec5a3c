// Package app provides service initialization.
package app

import (
	"context"

	"github.com/guttosm/maps-cache-service/config"
	"github.com/guttosm/maps-cache-service/internal/circuitbreaker"
	"github.com/guttosm/maps-cache-service/internal/metrics"
	"github.com/guttosm/maps-cache-service/internal/provider"
	"github.com/guttosm/maps-cache-service/internal/repository"
	"github.com/guttosm/maps-cache-service/internal/service"
)

// ServiceComponents holds the cache and the three maps adapters.
type ServiceComponents struct {
	Cache     *service.MapsCache
	Geocoding *service.GeocodingService
	Routing   *service.RoutingService
	Places    *service.PlacesService

	ProviderCircuitBreaker *circuitbreaker.CircuitBreaker
	// Bootstraps maps each lazily built client to its state.
	Bootstraps map[string]func() string
}

// InitializeCache creates the maps cache over store and loads its persisted
// namespaces.
func InitializeCache(ctx context.Context, cfg config.CacheConfig, store repository.SlotStore) *service.MapsCache {
	return service.NewMapsCache(ctx, store,
		service.WithTTLs(service.CacheTTLs{
			Geocoding: cfg.GeocodingTTL,
			Routing:   cfg.RoutingTTL,
			Places:    cfg.PlacesTTL,
		}),
		service.WithSweepInterval(cfg.SweepInterval),
		service.WithStorageTimeout(cfg.StorageTimeout),
	)
}

// InitializeServices wires the Google client, its bootstraps and the
// cache-backed adapters.
func InitializeServices(ctx context.Context, cfg config.Config, store repository.SlotStore) *ServiceComponents {
	mapsCache := InitializeCache(ctx, cfg.Cache, store)

	providerCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.Provider.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.Provider.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.Provider.CircuitBreakerTimeout,
		Name:             "google-maps",
		IsFailure:        provider.CountsAgainstBreaker,
		OnStateChange:    recordBreakerState,
	})
	metrics.SetCircuitBreakerState(providerCB.Name(), int(providerCB.State()))

	factory := provider.NewGoogleFactory(
		provider.KeyResolver{Key: cfg.Provider.APIKey, File: cfg.Provider.APIKeyFile},
		provider.GoogleConfig{
			BaseURL:   cfg.Provider.BaseURL,
			RateLimit: cfg.Provider.RateLimit,
		},
		func(m provider.Maps) provider.Maps {
			return provider.NewMapsWithCircuitBreaker(m, providerCB)
		},
	)

	bootstrapOpts := []service.BootstrapOption{
		service.WithPollInterval(cfg.Provider.BootstrapPoll),
		service.WithLoadTimeout(cfg.Provider.BootstrapTimeout),
	}
	geo := service.NewBootstrap("geocoding", factory.Ready, func() (provider.GeoProvider, error) {
		return factory.Client()
	}, bootstrapOpts...)
	routes := service.NewBootstrap("routing", factory.Ready, func() (provider.RouteProvider, error) {
		return factory.Client()
	}, bootstrapOpts...)
	places := service.NewBootstrap("places", factory.Ready, func() (provider.PlaceProvider, error) {
		return factory.Client()
	}, bootstrapOpts...)

	adapterOpts := []service.AdapterOption{
		service.WithDefaultRegion(cfg.Provider.Region),
		service.WithDefaultLanguage(cfg.Provider.Language),
	}

	return &ServiceComponents{
		Cache:                  mapsCache,
		Geocoding:              service.NewGeocodingService(mapsCache, geo, adapterOpts...),
		Routing:                service.NewRoutingService(mapsCache, routes, adapterOpts...),
		Places:                 service.NewPlacesService(mapsCache, places, adapterOpts...),
		ProviderCircuitBreaker: providerCB,
		Bootstraps: map[string]func() string{
			"geocoding_client": func() string { return geo.State().String() },
			"routing_client":   func() string { return routes.State().String() },
			"places_client":    func() string { return places.State().String() },
		},
	}
}
