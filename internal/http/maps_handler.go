package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/maps-cache-service/internal/domain/dto"
	"github.com/guttosm/maps-cache-service/internal/domain/model"
	"github.com/guttosm/maps-cache-service/internal/i18n"
	"github.com/guttosm/maps-cache-service/internal/service"
)

// Geocoder resolves addresses and coordinates.
type Geocoder interface {
	GeocodeAddress(ctx context.Context, address string, opts service.GeocodeOptions) (model.GeocodingResult, error)
	ReverseGeocode(ctx context.Context, lat, lng float64, opts service.ReverseGeocodeOptions) (string, error)
}

// RouteCalculator computes routes between two locations.
type RouteCalculator interface {
	CalculateRoute(ctx context.Context, origin, destination any, opts model.RouteOptions) (model.RouteResult, error)
}

// PlaceFinder looks up place details.
type PlaceFinder interface {
	GetPlace(ctx context.Context, placeID string, opts service.PlaceOptions) (model.PlaceResult, error)
}

// MapsHandler provides HTTP handlers for the cached map lookups.
type MapsHandler struct {
	geocoder Geocoder
	router   RouteCalculator
	places   PlaceFinder
}

// NewMapsHandler creates a new MapsHandler instance.
func NewMapsHandler(geocoder Geocoder, router RouteCalculator, places PlaceFinder) *MapsHandler {
	return &MapsHandler{
		geocoder: geocoder,
		router:   router,
		places:   places,
	}
}

// Geocode handles GET /api/geocode requests.
//
// @Summary      Geocode an address
// @Description  Returns the coordinates and formatted address of the first match. Addresses are matched case- and whitespace-insensitively against the cache, which keeps results for 30 days by default.
// @Tags         Maps
// @Produce      json
// @Param        address  query string true  "Address to look up"
// @Param        region   query string false "Region bias (ccTLD), defaults to de"
// @Param        language query string false "Result language, defaults to de"
// @Param        no_cache query bool   false "Bypass the cache"
// @Success      200 {object} dto.SuccessResponse{data=model.GeocodingResult}
// @Failure      400 {object} dto.ErrorResponse "Missing address"
// @Failure      404 {object} dto.ErrorResponse "No results"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure      502 {object} dto.ErrorResponse "Provider error"
// @Failure      503 {object} dto.ErrorResponse "Provider unavailable"
// @Router       /api/geocode [get]
func (h *MapsHandler) Geocode(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildQuery[dto.GeocodeRequest](c)
	if err != nil {
		builder.InvalidRequest(err, i18n.ErrKeyInvalidRequest)
		return
	}

	result, err := h.geocoder.GeocodeAddress(c.Request.Context(), req.Address, service.GeocodeOptions{
		UseCache: !req.NoCache,
		Region:   req.Region,
		Language: req.Language,
	})
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(result)
}

// ReverseGeocode handles GET /api/reverse-geocode requests.
//
// @Summary      Reverse geocode coordinates
// @Description  Returns the formatted address at a coordinate. Coordinates are cached at six decimal places.
// @Tags         Maps
// @Produce      json
// @Param        lat      query number true  "Latitude"
// @Param        lng      query number true  "Longitude"
// @Param        language query string false "Result language, defaults to de"
// @Param        no_cache query bool   false "Bypass the cache"
// @Success      200 {object} dto.SuccessResponse{data=dto.ReverseGeocodeResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid coordinates"
// @Failure      404 {object} dto.ErrorResponse "No results"
// @Failure      502 {object} dto.ErrorResponse "Provider error"
// @Failure      503 {object} dto.ErrorResponse "Provider unavailable"
// @Router       /api/reverse-geocode [get]
func (h *MapsHandler) ReverseGeocode(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildQuery[dto.ReverseGeocodeRequest](c)
	if err != nil {
		builder.InvalidRequest(err, i18n.ErrKeyValidationCoordinates)
		return
	}

	address, err := h.geocoder.ReverseGeocode(c.Request.Context(), *req.Lat, *req.Lng, service.ReverseGeocodeOptions{
		UseCache: !req.NoCache,
		Language: req.Language,
	})
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(dto.ReverseGeocodeResponse{
		Lat:              *req.Lat,
		Lng:              *req.Lng,
		FormattedAddress: address,
	})
}

// CalculateRoute handles POST /api/routes requests.
//
// @Summary      Calculate a route
// @Description  Returns distance, duration, polyline and steps of the first leg of the first route. Origin and destination may be text, {"lat","lng"}, or a place object with location or query. Travel mode and the avoid flags are part of the cache key; other options are not.
// @Tags         Maps
// @Accept       json
// @Produce      json
// @Param        request body dto.RouteRequest true "Route request"
// @Success      200 {object} dto.SuccessResponse{data=model.RouteResult}
// @Failure      400 {object} dto.ErrorResponse "Invalid location or option"
// @Failure      404 {object} dto.ErrorResponse "No route"
// @Failure      502 {object} dto.ErrorResponse "Provider error"
// @Failure      503 {object} dto.ErrorResponse "Provider unavailable"
// @Router       /api/routes [post]
func (h *MapsHandler) CalculateRoute(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.RouteRequest](c)
	if err != nil {
		builder.InvalidRequest(err, i18n.ErrKeyInvalidRequestBody)
		return
	}

	result, err := h.router.CalculateRoute(c.Request.Context(), req.Origin.Value(), req.Destination.Value(), req.Options())
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(result)
}

// GetPlace handles GET /api/places/:placeId requests.
//
// @Summary      Get place details
// @Description  Returns the provider details of a place and its photo references. Place ids are matched exactly.
// @Tags         Maps
// @Produce      json
// @Param        placeId  path  string true  "Provider place id"
// @Param        language query string false "Result language, defaults to de"
// @Param        no_cache query bool   false "Bypass the cache"
// @Success      200 {object} dto.SuccessResponse{data=model.PlaceResult}
// @Failure      400 {object} dto.ErrorResponse "Invalid place id"
// @Failure      404 {object} dto.ErrorResponse "Unknown place"
// @Failure      502 {object} dto.ErrorResponse "Provider error"
// @Failure      503 {object} dto.ErrorResponse "Provider unavailable"
// @Router       /api/places/{placeId} [get]
func (h *MapsHandler) GetPlace(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildURIQuery[dto.PlaceRequest](c)
	if err != nil {
		builder.InvalidRequest(err, i18n.ErrKeyInvalidRequest)
		return
	}

	result, err := h.places.GetPlace(c.Request.Context(), req.PlaceID, service.PlaceOptions{
		UseCache: !req.NoCache,
		Language: req.Language,
	})
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(result)
}
