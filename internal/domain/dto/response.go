package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/maps-cache-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeNotFound indicates the provider found nothing for the query.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeProviderError indicates the map provider failed the request.
	ErrCodeProviderError = "provider_error"
	// ErrCodeProviderUnavailable indicates the map provider cannot be reached yet.
	ErrCodeProviderUnavailable = "provider_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	// Example: {"lat": 52.52, "lng": 13.405, "formatted_address": "Hauptstraße 1, 10117 Berlin"}
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"address: must not be empty"`
	// Details contains additional error details (optional)
	// Example: {"field": "error message"}
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusBadGateway:
		return ErrCodeProviderError
	case http.StatusServiceUnavailable:
		return ErrCodeProviderUnavailable
	default:
		return ErrCodeInternal
	}
}

// ReverseGeocodeResponse is the payload of a reverse geocode.
// @Description Formatted address found for a coordinate
type ReverseGeocodeResponse struct {
	Lat              float64 `json:"lat" example:"52.52"`
	Lng              float64 `json:"lng" example:"13.405"`
	FormattedAddress string  `json:"formatted_address" example:"Hauptstraße 1, 10117 Berlin"`
} // @name ReverseGeocodeResponse

// CacheStatsResponse reports the cache namespaces and their configured lifetimes.
// @Description Cache statistics with configured TTLs
type CacheStatsResponse struct {
	Stats model.CacheStats `json:"stats"`
	// TTLs holds each namespace's default lifetime in seconds.
	TTLs map[string]int64 `json:"ttl_seconds" example:"geocoding:2592000"`
} // @name CacheStatsResponse

// CleanupResponse reports how many expired entries a sweep removed.
// @Description Result of an expired-entry sweep
type CleanupResponse struct {
	Removed int `json:"removed" example:"12"`
} // @name CleanupResponse

// MessageResponse carries a translated confirmation.
// @Description Confirmation message
type MessageResponse struct {
	Message string `json:"message" example:"All caches cleared"`
} // @name MessageResponse
