package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/guttosm/maps-cache-service/internal/domain/model"
	"github.com/guttosm/maps-cache-service/internal/provider"
	"github.com/guttosm/maps-cache-service/internal/service/cache"
)

// routeKeyOptions are the options folded into the route cache key, in this
// field order. Alternatives, unit system, waypoint optimisation and language
// are not part of the key, so calls differing only in those share an entry.
type routeKeyOptions struct {
	TravelMode    model.TravelMode `json:"travelMode"`
	AvoidHighways bool             `json:"avoidHighways"`
	AvoidTolls    bool             `json:"avoidTolls"`
	AvoidFerries  bool             `json:"avoidFerries"`
}

// LocationKey projects a route endpoint to the string used for both the
// cache key and the provider request. Accepted values are a string, a
// model.LatLng, or a model.PlaceRef carrying a location or a query.
func LocationKey(location any) (string, error) {
	switch v := location.(type) {
	case string:
		return v, nil
	case model.LatLng:
		return v.Key(), nil
	case *model.LatLng:
		if v != nil {
			return v.Key(), nil
		}
	case model.PlaceRef:
		return placeRefKey(v)
	case *model.PlaceRef:
		if v != nil {
			return placeRefKey(*v)
		}
	}
	return "", fmt.Errorf("%w: %T", ErrUnsupportedLocationFormat, location)
}

func placeRefKey(ref model.PlaceRef) (string, error) {
	if ref.Location != nil {
		return ref.Location.Key(), nil
	}
	if ref.Query != "" {
		return ref.Query, nil
	}
	return "", fmt.Errorf("%w: place reference without location or query", ErrUnsupportedLocationFormat)
}

// RoutingService computes routes between two locations, answering from the
// maps cache when it can.
type RoutingService struct {
	cache  *MapsCache
	client ClientSource[provider.RouteProvider]
	cfg    adapterConfig
	group  singleflight.Group
}

// NewRoutingService creates a routing adapter.
func NewRoutingService(c *MapsCache, client ClientSource[provider.RouteProvider], opts ...AdapterOption) *RoutingService {
	return &RoutingService{
		cache:  c,
		client: client,
		cfg:    newAdapterConfig(opts),
	}
}

// CalculateRoute returns the first leg of the first route between origin
// and destination. Empty TravelMode, UnitSystem and Language fall back to
// DRIVING, METRIC and the service language.
func (s *RoutingService) CalculateRoute(ctx context.Context, origin, destination any, opts model.RouteOptions) (model.RouteResult, error) {
	originKey, err := LocationKey(origin)
	if err != nil {
		return model.RouteResult{}, err
	}
	destinationKey, err := LocationKey(destination)
	if err != nil {
		return model.RouteResult{}, err
	}

	if opts.TravelMode == "" {
		opts.TravelMode = model.TravelModeDriving
	}
	if !opts.TravelMode.Valid() {
		return model.RouteResult{}, fmt.Errorf("%w: %q", ErrInvalidTravelMode, opts.TravelMode)
	}
	if opts.UnitSystem == "" {
		opts.UnitSystem = model.UnitSystemMetric
	}
	opts.Language = orDefault(opts.Language, s.cfg.language)

	optionsJSON, err := json.Marshal(routeKeyOptions{
		TravelMode:    opts.TravelMode,
		AvoidHighways: opts.AvoidHighways,
		AvoidTolls:    opts.AvoidTolls,
		AvoidFerries:  opts.AvoidFerries,
	})
	if err != nil {
		return model.RouteResult{}, err
	}
	cacheDestination := destinationKey + "|" + string(optionsJSON)

	if opts.UseCache {
		if result, ok := s.cache.GetRouteResult(ctx, originKey, cacheDestination); ok {
			return result, nil
		}
	}

	key := flightKey("route", cache.RouteKey(originKey, cacheDestination),
		strconv.FormatBool(opts.Alternatives), string(opts.UnitSystem),
		strconv.FormatBool(opts.OptimizeWaypoints), opts.Language, strconv.FormatBool(opts.UseCache))

	return shared(ctx, &s.group, key, func(ctx context.Context) (model.RouteResult, error) {
		router, err := s.client.Client(ctx)
		if err != nil {
			return model.RouteResult{}, err
		}

		routes, err := router.Route(ctx, provider.RouteRequest{
			Origin:            originKey,
			Destination:       destinationKey,
			TravelMode:        opts.TravelMode,
			Alternatives:      opts.Alternatives,
			AvoidHighways:     opts.AvoidHighways,
			AvoidTolls:        opts.AvoidTolls,
			AvoidFerries:      opts.AvoidFerries,
			UnitSystem:        opts.UnitSystem,
			OptimizeWaypoints: opts.OptimizeWaypoints,
			Language:          opts.Language,
		})
		if err != nil {
			return model.RouteResult{}, err
		}
		if len(routes) == 0 {
			return model.RouteResult{}, fmt.Errorf("%w: route from %q to %q", ErrNotFound, originKey, destinationKey)
		}

		result := shapeRoute(routes[0])
		if opts.UseCache {
			s.cache.CacheRouteResult(ctx, originKey, cacheDestination, result, 0)
		}
		return result, nil
	})
}

// shapeRoute keeps only the first leg. Steps stay in provider order.
func shapeRoute(route provider.Route) model.RouteResult {
	result := model.RouteResult{
		Polyline: route.Polyline,
		Steps:    []model.RouteStep{},
	}
	if len(route.Legs) == 0 {
		return result
	}

	leg := route.Legs[0]
	result.DistanceMeters = leg.DistanceMeters
	result.DurationSeconds = leg.DurationSeconds
	result.Steps = make([]model.RouteStep, 0, len(leg.Steps))
	for _, step := range leg.Steps {
		result.Steps = append(result.Steps, model.RouteStep{
			DistanceMeters:  step.DistanceMeters,
			DurationSeconds: step.DurationSeconds,
			Instructions:    step.Instructions,
			Polyline:        step.Polyline,
		})
	}
	return result
}
