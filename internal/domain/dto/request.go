// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"

	"github.com/guttosm/maps-cache-service/internal/domain/model"
	"github.com/guttosm/maps-cache-service/internal/i18n"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
	// Key is the i18n message key rendered to the client.
	Key string
}

var (
	// ErrInvalidAddress is returned when address is blank.
	ErrInvalidAddress = &ValidationError{
		Field:   "address",
		Message: "must not be empty",
		Key:     i18n.ErrKeyValidationAddress,
	}
	// ErrInvalidCoordinates is returned when lat or lng is missing or out of range.
	ErrInvalidCoordinates = &ValidationError{
		Field:   "lat,lng",
		Message: "must be valid coordinates",
		Key:     i18n.ErrKeyValidationCoordinates,
	}
	// ErrInvalidLocation is returned when a route endpoint has no usable form.
	ErrInvalidLocation = &ValidationError{
		Field:   "origin,destination",
		Message: "must be text, coordinates, or a place with location or query",
		Key:     i18n.ErrKeyValidationLocation,
	}
	// ErrInvalidTravelMode is returned for an unknown travel_mode.
	ErrInvalidTravelMode = &ValidationError{
		Field:   "travel_mode",
		Message: "must be DRIVING, WALKING, BICYCLING or TRANSIT",
		Key:     i18n.ErrKeyValidationTravelMode,
	}
	// ErrInvalidUnitSystem is returned for an unknown unit_system.
	ErrInvalidUnitSystem = &ValidationError{
		Field:   "unit_system",
		Message: "must be METRIC or IMPERIAL",
		Key:     i18n.ErrKeyValidationUnitSystem,
	}
	// ErrInvalidPlaceID is returned when the place id path segment is blank.
	ErrInvalidPlaceID = &ValidationError{
		Field:   "placeId",
		Message: "must not be empty",
		Key:     i18n.ErrKeyValidationPlaceID,
	}
)

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// GeocodeRequest holds the query parameters of a forward geocode.
//
// @Description Address lookup parameters
type GeocodeRequest struct {
	Address  string `form:"address" example:"Alexanderplatz 1, Berlin"`
	Region   string `form:"region" example:"de"`
	Language string `form:"language" example:"de"`
	// NoCache bypasses the cache for both read and write.
	NoCache bool `form:"no_cache"`
} // @name GeocodeRequest

// Validate performs custom validation on the request.
func (r *GeocodeRequest) Validate() error {
	if strings.TrimSpace(r.Address) == "" {
		return ErrInvalidAddress
	}
	return nil
}

// ReverseGeocodeRequest holds the query parameters of a reverse geocode.
//
// @Description Coordinate lookup parameters
type ReverseGeocodeRequest struct {
	Lat      *float64 `form:"lat" example:"52.52"`
	Lng      *float64 `form:"lng" example:"13.405"`
	Language string   `form:"language" example:"de"`
	NoCache  bool     `form:"no_cache"`
} // @name ReverseGeocodeRequest

// Validate performs custom validation on the request.
func (r *ReverseGeocodeRequest) Validate() error {
	if r.Lat == nil || r.Lng == nil {
		return ErrInvalidCoordinates
	}
	if !inRange(*r.Lat, 90) || !inRange(*r.Lng, 180) {
		return ErrInvalidCoordinates
	}
	return nil
}

func inRange(v, limit float64) bool {
	return !math.IsNaN(v) && v >= -limit && v <= limit
}

// PlaceRequest identifies a place and the language of its details.
type PlaceRequest struct {
	PlaceID  string `uri:"placeId"`
	Language string `form:"language"`
	NoCache  bool   `form:"no_cache"`
}

// Validate performs custom validation on the request.
func (r *PlaceRequest) Validate() error {
	if strings.TrimSpace(r.PlaceID) == "" {
		return ErrInvalidPlaceID
	}
	return nil
}

// Location is a route endpoint as sent by clients. It decodes from a JSON
// string, a {"lat","lng"} object, or a place object with "location",
// "query" or "place_id".
type Location struct {
	Text   string
	LatLng *model.LatLng
	Place  *model.PlaceRef
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Location) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*l = Location{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &l.Text)
	}

	var raw struct {
		Lat      *float64      `json:"lat"`
		Lng      *float64      `json:"lng"`
		Location *model.LatLng `json:"location"`
		Query    string        `json:"query"`
		PlaceID  string        `json:"place_id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.Lat != nil && raw.Lng != nil:
		l.LatLng = &model.LatLng{Lat: *raw.Lat, Lng: *raw.Lng}
	case raw.Location != nil || raw.Query != "" || raw.PlaceID != "":
		l.Place = &model.PlaceRef{Location: raw.Location, Query: raw.Query, PlaceID: raw.PlaceID}
	default:
		return ErrInvalidLocation
	}
	return nil
}

// IsZero reports whether no endpoint was given.
func (l Location) IsZero() bool {
	return l.LatLng == nil && l.Place == nil && strings.TrimSpace(l.Text) == ""
}

// Value returns the endpoint in the form the routing service accepts.
func (l Location) Value() any {
	switch {
	case l.LatLng != nil:
		return *l.LatLng
	case l.Place != nil:
		return *l.Place
	default:
		return l.Text
	}
}

// RouteRequest represents the JSON request body for a route calculation.
//
// Empty travel_mode, unit_system and language fall back to the service defaults.
//
// @Description Route calculation between two locations
// @Example {"origin": "Alexanderplatz, Berlin", "destination": {"lat": 52.39, "lng": 13.065}}
type RouteRequest struct {
	Origin        Location `json:"origin" swaggertype:"object"`
	Destination   Location `json:"destination" swaggertype:"object"`
	TravelMode    string   `json:"travel_mode" example:"DRIVING" enums:"DRIVING,WALKING,BICYCLING,TRANSIT"`
	Alternatives  bool     `json:"alternatives"`
	AvoidHighways bool     `json:"avoid_highways"`
	AvoidTolls    bool     `json:"avoid_tolls"`
	AvoidFerries  bool     `json:"avoid_ferries"`
	UnitSystem    string   `json:"unit_system" example:"METRIC" enums:"METRIC,IMPERIAL"`
	// OptimizeWaypoints defaults to true when omitted.
	OptimizeWaypoints *bool  `json:"optimize_waypoints"`
	Language          string `json:"language" example:"de"`
	NoCache           bool   `json:"no_cache"`
} // @name RouteRequest

// Validate performs custom validation on the request.
func (r *RouteRequest) Validate() error {
	if r.Origin.IsZero() || r.Destination.IsZero() {
		return ErrInvalidLocation
	}
	if mode := model.TravelMode(strings.ToUpper(r.TravelMode)); mode != "" && !mode.Valid() {
		return ErrInvalidTravelMode
	}
	switch model.UnitSystem(strings.ToUpper(r.UnitSystem)) {
	case "", model.UnitSystemMetric, model.UnitSystemImperial:
	default:
		return ErrInvalidUnitSystem
	}
	return nil
}

// Options converts the request into routing options.
func (r *RouteRequest) Options() model.RouteOptions {
	opts := model.DefaultRouteOptions()
	opts.UseCache = !r.NoCache
	opts.TravelMode = model.TravelMode(strings.ToUpper(r.TravelMode))
	opts.UnitSystem = model.UnitSystem(strings.ToUpper(r.UnitSystem))
	opts.Language = r.Language
	opts.Alternatives = r.Alternatives
	opts.AvoidHighways = r.AvoidHighways
	opts.AvoidTolls = r.AvoidTolls
	opts.AvoidFerries = r.AvoidFerries
	if r.OptimizeWaypoints != nil {
		opts.OptimizeWaypoints = *r.OptimizeWaypoints
	}
	return opts
}
