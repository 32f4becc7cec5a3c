//go:build !integration

package service

import (
	"context"
	"sync/atomic"

	"github.com/guttosm/maps-cache-service/internal/mocks"
	"github.com/guttosm/maps-cache-service/internal/provider"
)

// staticSource hands out a fixed client or error.
type staticSource[T any] struct {
	client T
	err    error
	calls  atomic.Int32
}

func (s *staticSource[T]) Client(context.Context) (T, error) {
	s.calls.Add(1)
	return s.client, s.err
}

func readyBootstrap[T any](client T) *Bootstrap[T] {
	return NewBootstrap("test", func() bool { return true }, func() (T, error) { return client, nil })
}

func newMockMaps() *mocks.MockMapsProvider {
	return new(mocks.MockMapsProvider)
}

var (
	_ ClientSource[provider.GeoProvider]   = (*Bootstrap[provider.GeoProvider])(nil)
	_ ClientSource[provider.RouteProvider] = (*staticSource[provider.RouteProvider])(nil)
)
