// Package app provides storage initialization and setup.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/maps-cache-service/config"
	"github.com/guttosm/maps-cache-service/internal/circuitbreaker"
	"github.com/guttosm/maps-cache-service/internal/metrics"
	"github.com/guttosm/maps-cache-service/internal/repository"
)

// StorageComponents holds the durable slot store behind its circuit breaker.
type StorageComponents struct {
	Backend        string
	Store          *repository.SlotStoreWithCircuitBreaker
	CircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeStorage opens the configured slot store. When the backend cannot
// be reached the service continues on an in-memory store, so cached entries
// only live as long as the process.
func InitializeStorage(ctx context.Context, cfg config.StorageConfig) *StorageComponents {
	storage, err := OpenStorage(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Str("backend", cfg.Backend).Msg("Failed to open storage - continuing with in-memory store")
		return newStorageComponents(cfg, config.BackendMemory, repository.NewMemoryStore())
	}
	return storage
}

// OpenStorage opens the configured slot store and reports failure instead of
// falling back, for callers that must act on the real data.
func OpenStorage(ctx context.Context, cfg config.StorageConfig) (*StorageComponents, error) {
	store, err := openSlotStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return newStorageComponents(cfg, cfg.Backend, store), nil
}

func newStorageComponents(cfg config.StorageConfig, backend string, store repository.SlotStore) *StorageComponents {
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "storage-" + backend,
		OnStateChange:    recordBreakerState,
	})
	metrics.SetCircuitBreakerState(cb.Name(), int(cb.State()))

	log.Info().Str("backend", backend).Msg("Storage initialized")

	return &StorageComponents{
		Backend:        backend,
		Store:          repository.NewSlotStoreWithCircuitBreaker(store, cb),
		CircuitBreaker: cb,
	}
}

// Close releases the store's connections.
func (s *StorageComponents) Close(ctx context.Context) error {
	return s.Store.Close(ctx)
}

func openSlotStore(ctx context.Context, cfg config.StorageConfig) (repository.SlotStore, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		store, err := repository.NewSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendPostgres:
		store, err := repository.NewPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendMongoDB:
		db, err := repository.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		return repository.NewMongoSlotStore(db), nil
	case config.BackendMemory:
		return repository.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// recordBreakerState runs under the breaker lock.
func recordBreakerState(name string, from, to circuitbreaker.State) {
	metrics.SetCircuitBreakerState(name, int(to))
	log.Warn().
		Str("circuit_breaker", name).
		Str("from", from.String()).
		Str("to", to.String()).
		Msg("Circuit breaker state changed")
}
