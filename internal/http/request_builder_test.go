//go:build !integration

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/maps-cache-service/internal/domain/dto"
	"github.com/guttosm/maps-cache-service/internal/i18n"
	"github.com/guttosm/maps-cache-service/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set(string(middleware.RequestIDKey), "req-123")
	return c, w
}

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "valid request", body: `{"origin": "Berlin", "destination": "Potsdam"}`},
		{name: "fails validation", body: `{"origin": "Berlin"}`, wantErr: dto.ErrInvalidLocation},
		{name: "invalid JSON", body: `{"origin": invalid}`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPost, "/", tt.body)

			req, err := BuildRequest[dto.RouteRequest](c)

			switch {
			case tt.wantErr != nil:
				assert.Equal(t, tt.wantErr, err)
			case tt.name == "valid request":
				require.NoError(t, err)
				assert.Equal(t, "Berlin", req.Origin.Text)
			default:
				assert.Error(t, err)
			}
		})
	}
}

func TestBuildQuery(t *testing.T) {
	c, _ := newTestContext(http.MethodGet, "/?address=Berlin&region=de&no_cache=true", "")

	req, err := BuildQuery[dto.GeocodeRequest](c)

	require.NoError(t, err)
	assert.Equal(t, dto.GeocodeRequest{Address: "Berlin", Region: "de", NoCache: true}, *req)
}

func TestBuildURIQuery(t *testing.T) {
	c, _ := newTestContext(http.MethodGet, "/places/abc?language=en", "")
	c.Params = gin.Params{{Key: "placeId", Value: "abc"}}

	req, err := BuildURIQuery[dto.PlaceRequest](c)

	require.NoError(t, err)
	assert.Equal(t, "abc", req.PlaceID)
	assert.Equal(t, "en", req.Language)
}

func TestResponseBuilder_SuccessOK(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "/", "")

	NewResponseBuilder(c).SuccessOK(map[string]string{"k": "v"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "req-123", resp.RequestID)
	assert.Equal(t, map[string]interface{}{"k": "v"}, resp.Data)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestResponseBuilder_InvalidRequest(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{name: "validation error uses its key", err: dto.ErrInvalidTravelMode, wantMessage: "travel_mode: must be DRIVING, WALKING, BICYCLING or TRANSIT"},
		{name: "other error uses fallback", err: errors.New("bad json"), wantMessage: "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodPost, "/", "")

			NewResponseBuilder(c).InvalidRequest(tt.err, i18n.ErrKeyInvalidRequestBody)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.True(t, c.IsAborted())
			assert.Len(t, c.Errors, 1)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, "req-123", resp.RequestID)
		})
	}
}

func TestResponseBuilder_Fail(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "/", "")

	NewResponseBuilder(c).Fail(errors.New("provider down"))

	assert.True(t, c.IsAborted())
	assert.Len(t, c.Errors, 1)
	assert.False(t, w.Flushed)
	assert.Zero(t, w.Body.Len())
}
