// Package model defines the core domain entities for the maps cache service.
package model

import "strconv"

// LatLng is a WGS84 coordinate pair.
//
// @Description Geographic coordinate pair
type LatLng struct {
	Lat float64 `json:"lat" example:"52.52"`
	Lng float64 `json:"lng" example:"13.405"`
}

// Key formats the coordinate with six decimal places, comma-joined.
// Six places is ~0.11m at the equator and keeps cache keys stable.
func (l LatLng) Key() string {
	return CoordinateKey(l.Lat, l.Lng)
}

// String implements fmt.Stringer.
func (l LatLng) String() string {
	return l.Key()
}

// CoordinateKey formats lat/lng as "lat,lng" with six decimal places.
func CoordinateKey(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', 6, 64) + "," + strconv.FormatFloat(lng, 'f', 6, 64)
}

// GeocodingResult is the shaped answer of a forward or reverse geocode.
//
// @Description Geocoding result with coordinates and formatted address
// @Example {"lat": 52.52, "lng": 13.405, "formatted_address": "Hauptstraße 1, 10117 Berlin"}
type GeocodingResult struct {
	Lat              float64 `json:"lat" example:"52.52"`
	Lng              float64 `json:"lng" example:"13.405"`
	FormattedAddress string  `json:"formatted_address" example:"Hauptstraße 1, 10117 Berlin"`
}
