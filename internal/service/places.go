package service

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/guttosm/maps-cache-service/internal/domain/model"
	"github.com/guttosm/maps-cache-service/internal/provider"
)

// PlaceOptions tunes GetPlace.
type PlaceOptions struct {
	UseCache bool
	Language string
}

// DefaultPlaceOptions enables the cache and uses the service default language.
func DefaultPlaceOptions() PlaceOptions {
	return PlaceOptions{UseCache: true}
}

// PlacesService looks up place details by provider place id.
type PlacesService struct {
	cache  *MapsCache
	client ClientSource[provider.PlaceProvider]
	cfg    adapterConfig
	group  singleflight.Group
}

// NewPlacesService creates a places adapter.
func NewPlacesService(c *MapsCache, client ClientSource[provider.PlaceProvider], opts ...AdapterOption) *PlacesService {
	return &PlacesService{
		cache:  c,
		client: client,
		cfg:    newAdapterConfig(opts),
	}
}

// GetPlace returns the details and photo references of placeID.
func (s *PlacesService) GetPlace(ctx context.Context, placeID string, opts PlaceOptions) (model.PlaceResult, error) {
	if opts.UseCache {
		if result, ok := s.cache.GetPlaceResult(ctx, placeID); ok {
			return result, nil
		}
	}

	language := orDefault(opts.Language, s.cfg.language)
	key := flightKey("place", placeID, language, strconv.FormatBool(opts.UseCache))

	return shared(ctx, &s.group, key, func(ctx context.Context) (model.PlaceResult, error) {
		places, err := s.client.Client(ctx)
		if err != nil {
			return model.PlaceResult{}, err
		}

		details, err := places.PlaceDetails(ctx, provider.PlaceDetailsRequest{
			PlaceID:  placeID,
			Language: language,
		})
		if err != nil {
			return model.PlaceResult{}, err
		}
		if details == nil {
			return model.PlaceResult{}, fmt.Errorf("%w: place %q", ErrNotFound, placeID)
		}

		result := model.PlaceResult{
			Details: details.Details,
			Photos:  append([]string{}, details.PhotoReferences...),
		}
		if opts.UseCache {
			s.cache.CachePlaceResult(ctx, placeID, result, 0)
		}
		return result, nil
	})
}
