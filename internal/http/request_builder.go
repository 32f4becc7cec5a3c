package http

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/maps-cache-service/internal/domain/dto"
	"github.com/guttosm/maps-cache-service/internal/i18n"
	"github.com/guttosm/maps-cache-service/internal/middleware"
)

// Response DTO pools for reducing allocations.
var (
	successResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.ErrorResponse{}
		},
	}
)

// getSuccessResponse retrieves a SuccessResponse from the pool.
func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

// putSuccessResponse returns a SuccessResponse to the pool.
func putSuccessResponse(resp *dto.SuccessResponse) {
	resp.Data = nil
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	successResponsePool.Put(resp)
}

// getErrorResponse retrieves an ErrorResponse from the pool.
func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

// putErrorResponse returns an ErrorResponse to the pool.
func putErrorResponse(resp *dto.ErrorResponse) {
	resp.Error = ""
	resp.Message = ""
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	resp.Details = nil
	errorResponsePool.Put(resp)
}

// Validator interface for types that can validate themselves.
type Validator interface {
	Validate() error
}

// BuildRequest binds the JSON body into T and validates it if T implements Validator.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	return build[T](c.ShouldBindJSON)
}

// BuildQuery binds query parameters into T and validates it if T implements Validator.
func BuildQuery[T any](c *gin.Context) (*T, error) {
	return build[T](c.ShouldBindQuery)
}

// BuildURIQuery binds path and query parameters into T and validates it.
func BuildURIQuery[T any](c *gin.Context) (*T, error) {
	return build[T](func(v any) error {
		if err := c.ShouldBindUri(v); err != nil {
			return err
		}
		return c.ShouldBindQuery(v)
	})
}

func build[T any](bind func(any) error) (*T, error) {
	var req T
	if err := bind(&req); err != nil {
		return nil, err
	}
	if validator, ok := any(&req).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return nil, err
		}
	}
	return &req, nil
}

// ResponseBuilder writes the API's success and error envelopes.
// Uses sync.Pool for DTO reuse to reduce allocations.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends a successful response with the given data.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// Gin serializes synchronously, so the pooled value can be returned right after.
	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// Error sends an error response with the given status code and message key.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	locale := i18n.GetLocale(b.c)

	resp := getErrorResponse()
	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = i18n.GetTranslator().Translate(messageKey, locale)
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// The error handler middleware logs context errors.
	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
	putErrorResponse(resp)
}

// InvalidRequest answers a binding or validation failure with 400.
// Validation errors carry their own message key.
func (b *ResponseBuilder) InvalidRequest(err error, fallbackKey string) {
	var vErr *dto.ValidationError
	if errors.As(err, &vErr) {
		b.Error(http.StatusBadRequest, vErr.Key, err)
		return
	}
	b.Error(http.StatusBadRequest, fallbackKey, err)
}

// Fail hands a service error to the error handler middleware, which picks
// the status code.
func (b *ResponseBuilder) Fail(err error) {
	_ = b.c.Error(err)
	b.c.Abort()
}
