package provider

import (
	"context"
	"errors"

	"github.com/guttosm/maps-cache-service/internal/circuitbreaker"
)

// CountsAgainstBreaker is the IsFailure filter for provider breakers. An
// answer that found nothing and a caller cancellation say nothing about
// the provider's health.
func CountsAgainstBreaker(err error) bool {
	return !errors.Is(err, context.Canceled) && !isNotFound(err)
}

// MapsWithCircuitBreaker guards every provider call with a circuit breaker.
type MapsWithCircuitBreaker struct {
	maps           Maps
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewMapsWithCircuitBreaker wraps m with cb.
func NewMapsWithCircuitBreaker(m Maps, cb *circuitbreaker.CircuitBreaker) *MapsWithCircuitBreaker {
	return &MapsWithCircuitBreaker{maps: m, circuitBreaker: cb}
}

// Geocode calls the wrapped provider through the breaker.
func (m *MapsWithCircuitBreaker) Geocode(ctx context.Context, req GeocodeRequest) ([]GeocodeResult, error) {
	var results []GeocodeResult
	err := m.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		results, cbErr = m.maps.Geocode(ctx, req)
		return cbErr
	})
	return results, err
}

// Route calls the wrapped provider through the breaker.
func (m *MapsWithCircuitBreaker) Route(ctx context.Context, req RouteRequest) ([]Route, error) {
	var routes []Route
	err := m.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		routes, cbErr = m.maps.Route(ctx, req)
		return cbErr
	})
	return routes, err
}

// PlaceDetails calls the wrapped provider through the breaker.
func (m *MapsWithCircuitBreaker) PlaceDetails(ctx context.Context, req PlaceDetailsRequest) (*PlaceDetails, error) {
	var details *PlaceDetails
	err := m.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		details, cbErr = m.maps.PlaceDetails(ctx, req)
		return cbErr
	})
	return details, err
}

// GetCircuitBreaker returns the breaker for monitoring.
func (m *MapsWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return m.circuitBreaker
}
