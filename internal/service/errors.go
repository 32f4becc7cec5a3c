package service

import "errors"

var (
	// ErrNotFound is returned when the provider has no result for a query.
	ErrNotFound = errors.New("no results found")
	// ErrProviderLoadTimeout is returned when the provider client did not
	// become ready within the bootstrap timeout.
	ErrProviderLoadTimeout = errors.New("map provider did not become ready in time")
	// ErrUnsupportedLocationFormat is returned for route endpoints that are
	// neither text, coordinates, nor a place reference with a location or query.
	ErrUnsupportedLocationFormat = errors.New("unsupported location format")
)

// ErrInvalidTravelMode is returned for a travel mode the provider does not know.
var ErrInvalidTravelMode = errors.New("invalid travel mode")
