package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/guttosm/maps-cache-service/internal/circuitbreaker"
	"github.com/guttosm/maps-cache-service/internal/i18n"
	"github.com/guttosm/maps-cache-service/internal/provider"
	"github.com/guttosm/maps-cache-service/internal/service"
)

// ClassifyError maps errors returned by the maps services to a response.
// Anything it does not recognise came back from the provider and is a 502.
func ClassifyError(err error) (status int, messageKey string, ok bool) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, i18n.ErrKeyNoResults, true
	case errors.Is(err, service.ErrUnsupportedLocationFormat):
		return http.StatusBadRequest, i18n.ErrKeyValidationLocation, true
	case errors.Is(err, service.ErrInvalidTravelMode):
		return http.StatusBadRequest, i18n.ErrKeyValidationTravelMode, true
	case errors.Is(err, service.ErrProviderLoadTimeout),
		errors.Is(err, circuitbreaker.ErrCircuitOpen),
		errors.Is(err, provider.ErrMissingAPIKey):
		return http.StatusServiceUnavailable, i18n.ErrKeyProviderUnavailable, true
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusGatewayTimeout, i18n.ErrKeyTimeout, true
	default:
		return http.StatusBadGateway, i18n.ErrKeyProviderError, true
	}
}
