//go:build !integration

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/maps-cache-service/internal/domain/dto"
	"github.com/guttosm/maps-cache-service/internal/logger"
	"github.com/guttosm/maps-cache-service/internal/mocks"
	"github.com/guttosm/maps-cache-service/internal/provider"
	"github.com/guttosm/maps-cache-service/internal/repository"
	"github.com/guttosm/maps-cache-service/internal/service"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitWithWriter("error", false, io.Discard)
}

// testStack wires the real services over an in-memory store and a mocked provider.
type testStack struct {
	maps   *mocks.MockMapsProvider
	store  *repository.MemoryStore
	cache  *service.MapsCache
	router *gin.Engine
}

func newTestStack(t *testing.T, cfg RouterConfig) *testStack {
	t.Helper()

	maps := new(mocks.MockMapsProvider)
	store := repository.NewMemoryStore()
	mapsCache := service.NewMapsCache(context.Background(), store, service.WithSweepInterval(0))
	t.Cleanup(mapsCache.Stop)

	ready := func() bool { return true }
	geo := service.NewBootstrap("geocoding", ready, func() (provider.GeoProvider, error) { return maps, nil })
	routes := service.NewBootstrap("routing", ready, func() (provider.RouteProvider, error) { return maps, nil })
	places := service.NewBootstrap("places", ready, func() (provider.PlaceProvider, error) { return maps, nil })

	cfg.Maps = NewMapsHandler(
		service.NewGeocodingService(mapsCache, geo),
		service.NewRoutingService(mapsCache, routes),
		service.NewPlacesService(mapsCache, places),
	)
	cfg.Cache = NewCacheHandler(mapsCache)

	return &testStack{
		maps:   maps,
		store:  store,
		cache:  mapsCache,
		router: NewRouter(NewHealthHandler(), cfg),
	}
}

func testRouterConfig() RouterConfig {
	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	return cfg
}

func (s *testStack) do(method, target string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testStack) get(target string) *httptest.ResponseRecorder {
	return s.do(http.MethodGet, target, nil, nil)
}

// decodeData unmarshals the data field of a success envelope into v.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, v interface{}) dto.SuccessResponse {
	t.Helper()
	var envelope struct {
		dto.SuccessResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, v))
	return envelope.SuccessResponse
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
