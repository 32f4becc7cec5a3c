// Package provider defines the narrow map-provider capabilities the adapters
// depend on, and a Google Maps implementation of them.
package provider

import (
	"context"

	"github.com/guttosm/maps-cache-service/internal/domain/model"
)

// GeocodeRequest asks for coordinates of an address, or for the address of
// coordinates when LatLng is set.
type GeocodeRequest struct {
	Address  string
	LatLng   *model.LatLng
	Region   string
	Language string
}

// GeocodeResult is one candidate returned by a geocoder.
type GeocodeResult struct {
	Location         model.LatLng
	FormattedAddress string
}

// RouteRequest carries every routing option the provider understands.
type RouteRequest struct {
	Origin            string
	Destination       string
	TravelMode        model.TravelMode
	Alternatives      bool
	AvoidHighways     bool
	AvoidTolls        bool
	AvoidFerries      bool
	UnitSystem        model.UnitSystem
	OptimizeWaypoints bool
	Language          string
}

// Route is one route candidate.
type Route struct {
	Polyline string
	Legs     []Leg
}

// Leg is the part of a route between two stops. Omitted distances and
// durations are zero.
type Leg struct {
	DistanceMeters  int
	DurationSeconds int
	Steps           []Step
}

// Step is a single manoeuvre of a leg.
type Step struct {
	DistanceMeters  int
	DurationSeconds int
	Instructions    string
	Polyline        string
}

// PlaceDetailsRequest asks for the details of a place id.
type PlaceDetailsRequest struct {
	PlaceID  string
	Language string
}

// PlaceDetails is the provider record of a place.
type PlaceDetails struct {
	Details         map[string]interface{}
	PhotoReferences []string
}

// GeoProvider resolves addresses and coordinates.
type GeoProvider interface {
	Geocode(ctx context.Context, req GeocodeRequest) ([]GeocodeResult, error)
}

// RouteProvider computes routes.
type RouteProvider interface {
	Route(ctx context.Context, req RouteRequest) ([]Route, error)
}

// PlaceProvider looks up places. A nil result with a nil error means the
// provider does not know the place.
type PlaceProvider interface {
	PlaceDetails(ctx context.Context, req PlaceDetailsRequest) (*PlaceDetails, error)
}

// Maps is a provider offering every capability.
type Maps interface {
	GeoProvider
	RouteProvider
	PlaceProvider
}
