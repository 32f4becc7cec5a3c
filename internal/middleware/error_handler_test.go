//go:build !integration

package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/maps-cache-service/internal/domain/dto"
	"github.com/guttosm/maps-cache-service/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNoResults = errors.New("no results")

func notFoundClassifier(err error) (int, string, bool) {
	if errors.Is(err, errNoResults) {
		return http.StatusNotFound, i18n.ErrKeyNoResults, true
	}
	return 0, "", false
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		handler        gin.HandlerFunc
		expectedStatus int
		expectedCode   string
		expectedMsg    string
		expectedBody   string
	}{
		{
			name: "unclassified error becomes internal error",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("test error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   dto.ErrCodeInternal,
			expectedMsg:    "An unexpected error occurred",
		},
		{
			name: "classified error uses classifier status",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.Join(errors.New("geocode"), errNoResults))
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   dto.ErrCodeNotFound,
			expectedMsg:    "No results found",
		},
		{
			name: "already written response is kept",
			handler: func(c *gin.Context) {
				_ = c.Error(errNoResults)
				c.String(http.StatusTeapot, "teapot")
			},
			expectedStatus: http.StatusTeapot,
			expectedBody:   "teapot",
		},
		{
			name: "does nothing when no errors",
			handler: func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), ErrorHandler(notFoundClassifier))
			router.GET("/test", tt.handler)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
				return
			}

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedCode, resp.Error)
			assert.Equal(t, tt.expectedMsg, resp.Message)
			assert.Equal(t, w.Header().Get(RequestIDHeader), resp.RequestID)
		})
	}
}
