package repository

import (
	"context"
	"errors"

	"github.com/guttosm/maps-cache-service/internal/circuitbreaker"
)

// SlotStoreWithCircuitBreaker wraps a SlotStore with circuit breaker protection.
// An open circuit is reported as ErrStorageIO so callers treat it like any
// other storage failure.
type SlotStoreWithCircuitBreaker struct {
	store          SlotStore
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewSlotStoreWithCircuitBreaker creates a new store wrapper with circuit breaker.
func NewSlotStoreWithCircuitBreaker(store SlotStore, cb *circuitbreaker.CircuitBreaker) *SlotStoreWithCircuitBreaker {
	return &SlotStoreWithCircuitBreaker{
		store:          store,
		circuitBreaker: cb,
	}
}

// Get reads a slot with circuit breaker protection.
func (s *SlotStoreWithCircuitBreaker) Get(ctx context.Context, name string) (string, bool, error) {
	var (
		value string
		found bool
	)
	err := s.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		value, found, cbErr = s.store.Get(ctx, name)
		return cbErr
	})
	return value, found, s.translate(err, "read", name)
}

// Set writes a slot with circuit breaker protection.
func (s *SlotStoreWithCircuitBreaker) Set(ctx context.Context, name, value string) error {
	err := s.circuitBreaker.Execute(ctx, func() error {
		return s.store.Set(ctx, name, value)
	})
	return s.translate(err, "write", name)
}

// Remove deletes a slot with circuit breaker protection.
func (s *SlotStoreWithCircuitBreaker) Remove(ctx context.Context, name string) error {
	err := s.circuitBreaker.Execute(ctx, func() error {
		return s.store.Remove(ctx, name)
	})
	return s.translate(err, "remove", name)
}

// HealthCheck delegates to the wrapped store when it supports health checks.
func (s *SlotStoreWithCircuitBreaker) HealthCheck(ctx context.Context) error {
	if hc, ok := s.store.(HealthChecker); ok {
		return hc.HealthCheck(ctx)
	}
	return nil
}

// Close delegates to the wrapped store when it holds connections.
func (s *SlotStoreWithCircuitBreaker) Close(ctx context.Context) error {
	if c, ok := s.store.(Closer); ok {
		return c.Close(ctx)
	}
	return nil
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (s *SlotStoreWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return s.circuitBreaker
}

func (s *SlotStoreWithCircuitBreaker) translate(err error, op, name string) error {
	if err == nil || errors.Is(err, ErrStorageIO) {
		return err
	}
	return ioError(err, op, name)
}
