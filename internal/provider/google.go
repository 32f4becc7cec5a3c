package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"googlemaps.github.io/maps"

	"github.com/guttosm/maps-cache-service/internal/domain/model"
	"github.com/guttosm/maps-cache-service/internal/metrics"
)

// ErrMissingAPIKey is returned when a Google client is built without a key.
var ErrMissingAPIKey = errors.New("maps api key is not configured")

// DefaultHTTPTimeout bounds a single Maps web service call when no HTTP
// client is configured.
const DefaultHTTPTimeout = 10 * time.Second

// GoogleConfig configures the Google Maps client.
type GoogleConfig struct {
	APIKey     string
	BaseURL    string
	RateLimit  float64
	HTTPClient *http.Client
}

// Google implements Maps over the Google Maps web services.
type Google struct {
	client  *maps.Client
	limiter *rate.Limiter
}

// NewGoogle creates a Google Maps client. RateLimit is in requests per
// second; zero or less means unlimited.
func NewGoogle(cfg GoogleConfig) (*Google, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	opts := []maps.ClientOption{maps.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, maps.WithBaseURL(cfg.BaseURL))
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	opts = append(opts, maps.WithHTTPClient(httpClient))

	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, err
	}

	limit := rate.Inf
	burst := 1
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
		burst = int(cfg.RateLimit)
		if burst < 1 {
			burst = 1
		}
	}

	return &Google{
		client:  client,
		limiter: rate.NewLimiter(limit, burst),
	}, nil
}

// Geocode forward geocodes req.Address, or reverse geocodes req.LatLng when set.
func (g *Google) Geocode(ctx context.Context, req GeocodeRequest) ([]GeocodeResult, error) {
	operation := "geocode"
	if req.LatLng != nil {
		operation = "reverse_geocode"
	}

	var raw []maps.GeocodingResult
	err := g.call(ctx, operation, func() error {
		var err error
		if req.LatLng != nil {
			raw, err = g.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
				LatLng:   &maps.LatLng{Lat: req.LatLng.Lat, Lng: req.LatLng.Lng},
				Language: req.Language,
			})
			return err
		}
		raw, err = g.client.Geocode(ctx, &maps.GeocodingRequest{
			Address:  req.Address,
			Region:   req.Region,
			Language: req.Language,
		})
		return err
	})
	if err != nil {
		if isNotFound(err) {
			return []GeocodeResult{}, nil
		}
		return nil, err
	}

	results := make([]GeocodeResult, 0, len(raw))
	for _, r := range raw {
		results = append(results, GeocodeResult{
			Location:         model.LatLng{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng},
			FormattedAddress: r.FormattedAddress,
		})
	}
	return results, nil
}

// Route requests directions. An origin or destination Google cannot
// resolve yields no routes rather than an error.
func (g *Google) Route(ctx context.Context, req RouteRequest) ([]Route, error) {
	var raw []maps.Route
	err := g.call(ctx, "route", func() error {
		var err error
		raw, _, err = g.client.Directions(ctx, directionsRequest(req))
		return err
	})
	if err != nil {
		if isNotFound(err) {
			return []Route{}, nil
		}
		return nil, err
	}

	routes := make([]Route, 0, len(raw))
	for _, r := range raw {
		route := Route{Polyline: r.OverviewPolyline.Points}
		for _, leg := range r.Legs {
			if leg == nil {
				continue
			}
			shaped := Leg{
				DistanceMeters:  leg.Distance.Meters,
				DurationSeconds: int(leg.Duration / time.Second),
			}
			for _, step := range leg.Steps {
				if step == nil {
					continue
				}
				shaped.Steps = append(shaped.Steps, Step{
					DistanceMeters:  step.Distance.Meters,
					DurationSeconds: int(step.Duration / time.Second),
					Instructions:    step.HTMLInstructions,
					Polyline:        step.Polyline.Points,
				})
			}
			route.Legs = append(route.Legs, shaped)
		}
		routes = append(routes, route)
	}
	return routes, nil
}

// PlaceDetails fetches a place. An unknown place id yields nil, nil.
func (g *Google) PlaceDetails(ctx context.Context, req PlaceDetailsRequest) (*PlaceDetails, error) {
	var raw maps.PlaceDetailsResult
	err := g.call(ctx, "place_details", func() error {
		var err error
		raw, err = g.client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
			PlaceID:  req.PlaceID,
			Language: req.Language,
		})
		return err
	})
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	details, err := toMap(raw)
	if err != nil {
		return nil, err
	}

	photos := make([]string, 0, len(raw.Photos))
	for _, p := range raw.Photos {
		photos = append(photos, p.PhotoReference)
	}
	return &PlaceDetails{Details: details, PhotoReferences: photos}, nil
}

func (g *Google) call(ctx context.Context, operation string, fn func() error) error {
	if err := g.limiter.Wait(ctx); err != nil {
		metrics.RecordProviderRequest(operation, "throttled", 0)
		return err
	}

	start := time.Now()
	err := fn()
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.RecordProviderRequest(operation, status, time.Since(start))
	return err
}

func directionsRequest(req RouteRequest) *maps.DirectionsRequest {
	r := &maps.DirectionsRequest{
		Origin:       req.Origin,
		Destination:  req.Destination,
		Mode:         travelMode(req.TravelMode),
		Alternatives: req.Alternatives,
		Optimize:     req.OptimizeWaypoints,
		Language:     req.Language,
		Units:        maps.UnitsMetric,
	}
	if req.UnitSystem == model.UnitSystemImperial {
		r.Units = maps.UnitsImperial
	}
	if req.AvoidHighways {
		r.Avoid = append(r.Avoid, maps.AvoidHighways)
	}
	if req.AvoidTolls {
		r.Avoid = append(r.Avoid, maps.AvoidTolls)
	}
	if req.AvoidFerries {
		r.Avoid = append(r.Avoid, maps.AvoidFerries)
	}
	return r
}

func travelMode(mode model.TravelMode) maps.Mode {
	switch mode {
	case model.TravelModeWalking:
		return maps.TravelModeWalking
	case model.TravelModeBicycling:
		return maps.TravelModeBicycling
	case model.TravelModeTransit:
		return maps.TravelModeTransit
	default:
		return maps.TravelModeDriving
	}
}

// isNotFound matches the status errors the maps client builds for answers
// that found nothing.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "NOT_FOUND") || strings.Contains(msg, "ZERO_RESULTS")
}

func toMap(v interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
