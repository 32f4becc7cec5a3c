// Package i18n provides internationalization support for the maps cache service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyNoResults indicates the map provider found nothing.
	ErrKeyNoResults = "error.no_results"
	// ErrKeyProviderUnavailable indicates the map provider is not ready or its circuit is open.
	ErrKeyProviderUnavailable = "error.provider_unavailable"
	// ErrKeyProviderError indicates the map provider rejected or failed the request.
	ErrKeyProviderError = "error.provider_error"
	// ErrKeyValidationAddress indicates a missing address.
	ErrKeyValidationAddress = "error.validation.address"
	// ErrKeyValidationCoordinates indicates invalid coordinates.
	ErrKeyValidationCoordinates = "error.validation.coordinates"
	// ErrKeyValidationLocation indicates an unsupported route endpoint.
	ErrKeyValidationLocation = "error.validation.location"
	// ErrKeyValidationTravelMode indicates an unknown travel mode.
	ErrKeyValidationTravelMode = "error.validation.travel_mode"
	// ErrKeyValidationUnitSystem indicates an unknown unit system.
	ErrKeyValidationUnitSystem = "error.validation.unit_system"
	// ErrKeyValidationPlaceID indicates a blank place id.
	ErrKeyValidationPlaceID = "error.validation.place_id"
)

// Success message translation keys.
const (
	// SuccessKeyCacheCleared indicates every cache namespace was cleared.
	SuccessKeyCacheCleared = "success.cache_cleared"
)
