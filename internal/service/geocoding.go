package service

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/guttosm/maps-cache-service/internal/domain/model"
	"github.com/guttosm/maps-cache-service/internal/provider"
	"github.com/guttosm/maps-cache-service/internal/service/cache"
)

// GeocodeOptions tunes GeocodeAddress. Empty Region and Language use the
// service defaults.
type GeocodeOptions struct {
	UseCache bool
	Region   string
	Language string
}

// DefaultGeocodeOptions enables the cache and uses the service defaults.
func DefaultGeocodeOptions() GeocodeOptions {
	return GeocodeOptions{UseCache: true}
}

// ReverseGeocodeOptions tunes ReverseGeocode.
type ReverseGeocodeOptions struct {
	UseCache bool
	Language string
}

// DefaultReverseGeocodeOptions enables the cache and uses the service default language.
func DefaultReverseGeocodeOptions() ReverseGeocodeOptions {
	return ReverseGeocodeOptions{UseCache: true}
}

// GeocodingService translates addresses to coordinates and back, answering
// from the maps cache when it can.
type GeocodingService struct {
	cache  *MapsCache
	client ClientSource[provider.GeoProvider]
	cfg    adapterConfig
	group  singleflight.Group
}

// NewGeocodingService creates a geocoding adapter.
func NewGeocodingService(c *MapsCache, client ClientSource[provider.GeoProvider], opts ...AdapterOption) *GeocodingService {
	return &GeocodingService{
		cache:  c,
		client: client,
		cfg:    newAdapterConfig(opts),
	}
}

// GeocodeAddress returns the first provider match for address.
// It fails with ErrNotFound when the provider has no match and passes
// provider errors through unchanged.
func (s *GeocodingService) GeocodeAddress(ctx context.Context, address string, opts GeocodeOptions) (model.GeocodingResult, error) {
	if opts.UseCache {
		if result, ok := s.cache.GetGeocodingResult(ctx, address); ok {
			return result, nil
		}
	}

	region := orDefault(opts.Region, s.cfg.region)
	language := orDefault(opts.Language, s.cfg.language)
	key := flightKey("geocode", cache.NormalizeKey(address), region, language, strconv.FormatBool(opts.UseCache))

	return shared(ctx, &s.group, key, func(ctx context.Context) (model.GeocodingResult, error) {
		geo, err := s.client.Client(ctx)
		if err != nil {
			return model.GeocodingResult{}, err
		}

		results, err := geo.Geocode(ctx, provider.GeocodeRequest{
			Address:  address,
			Region:   region,
			Language: language,
		})
		if err != nil {
			return model.GeocodingResult{}, err
		}
		if len(results) == 0 {
			return model.GeocodingResult{}, fmt.Errorf("%w: address %q", ErrNotFound, address)
		}

		first := results[0]
		result := model.GeocodingResult{
			Lat:              first.Location.Lat,
			Lng:              first.Location.Lng,
			FormattedAddress: first.FormattedAddress,
		}
		if opts.UseCache {
			s.cache.CacheGeocodingResult(ctx, address, result, 0)
		}
		return result, nil
	})
}

// ReverseGeocode returns the formatted address of the first provider match
// for the coordinates. Results are cached under the six-decimal coordinate key.
func (s *GeocodingService) ReverseGeocode(ctx context.Context, lat, lng float64, opts ReverseGeocodeOptions) (string, error) {
	coordKey := model.CoordinateKey(lat, lng)
	if opts.UseCache {
		if result, ok := s.cache.GetGeocodingResult(ctx, coordKey); ok {
			return result.FormattedAddress, nil
		}
	}

	language := orDefault(opts.Language, s.cfg.language)
	key := flightKey("reverse", coordKey, language, strconv.FormatBool(opts.UseCache))

	return shared(ctx, &s.group, key, func(ctx context.Context) (string, error) {
		geo, err := s.client.Client(ctx)
		if err != nil {
			return "", err
		}

		results, err := geo.Geocode(ctx, provider.GeocodeRequest{
			LatLng:   &model.LatLng{Lat: lat, Lng: lng},
			Language: language,
		})
		if err != nil {
			return "", err
		}
		if len(results) == 0 {
			return "", fmt.Errorf("%w: coordinates %s", ErrNotFound, coordKey)
		}

		address := results[0].FormattedAddress
		if opts.UseCache {
			s.cache.CacheGeocodingResult(ctx, coordKey, model.GeocodingResult{
				Lat:              lat,
				Lng:              lng,
				FormattedAddress: address,
			}, 0)
		}
		return address, nil
	})
}

// ClearGeocodingCache clears every namespace of the shared cache, not only
// geocoding entries.
func (s *GeocodingService) ClearGeocodingCache(ctx context.Context) {
	s.cache.ClearAllCaches(ctx)
}
