// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/maps-cache-service/internal/provider"
)

type MockMapsProvider struct {
	mock.Mock
}

func (m *MockMapsProvider) Geocode(ctx context.Context, req provider.GeocodeRequest) ([]provider.GeocodeResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]provider.GeocodeResult), args.Error(1)
}

func (m *MockMapsProvider) Route(ctx context.Context, req provider.RouteRequest) ([]provider.Route, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]provider.Route), args.Error(1)
}

func (m *MockMapsProvider) PlaceDetails(ctx context.Context, req provider.PlaceDetailsRequest) (*provider.PlaceDetails, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.PlaceDetails), args.Error(1)
}
