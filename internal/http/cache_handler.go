package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/maps-cache-service/internal/domain/dto"
	"github.com/guttosm/maps-cache-service/internal/domain/model"
	"github.com/guttosm/maps-cache-service/internal/i18n"
	"github.com/guttosm/maps-cache-service/internal/service"
)

// CacheAdmin exposes the maintenance operations of the maps cache.
type CacheAdmin interface {
	GetCacheStats() model.CacheStats
	CleanExpiredEntries(ctx context.Context) int
	ClearAllCaches(ctx context.Context)
	TTLs() service.CacheTTLs
}

// CacheHandler provides HTTP handlers for cache administration.
type CacheHandler struct {
	cache CacheAdmin
}

// NewCacheHandler creates a new CacheHandler instance.
func NewCacheHandler(cache CacheAdmin) *CacheHandler {
	return &CacheHandler{cache: cache}
}

// Stats handles GET /api/cache/stats requests.
//
// @Summary      Cache statistics
// @Description  Returns entry counts and serialized sizes per namespace, plus the configured TTLs.
// @Tags         Cache
// @Produce      json
// @Param        X-API-Key header string false "Admin API key (required when configured)"
// @Success      200 {object} dto.SuccessResponse{data=dto.CacheStatsResponse}
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Security     ApiKeyAuth
// @Router       /api/cache/stats [get]
func (h *CacheHandler) Stats(c *gin.Context) {
	ttls := h.cache.TTLs()
	NewResponseBuilder(c).SuccessOK(dto.CacheStatsResponse{
		Stats: h.cache.GetCacheStats(),
		TTLs: map[string]int64{
			string(model.NamespaceGeocoding): int64(ttls.Geocoding.Seconds()),
			string(model.NamespaceRouting):   int64(ttls.Routing.Seconds()),
			string(model.NamespacePlaces):    int64(ttls.Places.Seconds()),
		},
	})
}

// Cleanup handles POST /api/cache/cleanup requests.
//
// @Summary      Remove expired entries
// @Description  Sweeps every namespace and persists the result when anything was removed.
// @Tags         Cache
// @Produce      json
// @Param        X-API-Key header string false "Admin API key (required when configured)"
// @Success      200 {object} dto.SuccessResponse{data=dto.CleanupResponse}
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Security     ApiKeyAuth
// @Router       /api/cache/cleanup [post]
func (h *CacheHandler) Cleanup(c *gin.Context) {
	removed := h.cache.CleanExpiredEntries(c.Request.Context())
	NewResponseBuilder(c).SuccessOK(dto.CleanupResponse{Removed: removed})
}

// Clear handles DELETE /api/cache requests.
//
// @Summary      Clear all caches
// @Description  Empties every namespace and removes their persisted slots.
// @Tags         Cache
// @Produce      json
// @Param        X-API-Key header string false "Admin API key (required when configured)"
// @Success      200 {object} dto.SuccessResponse{data=dto.MessageResponse}
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Security     ApiKeyAuth
// @Router       /api/cache [delete]
func (h *CacheHandler) Clear(c *gin.Context) {
	h.cache.ClearAllCaches(c.Request.Context())
	message := i18n.GetTranslator().Translate(i18n.SuccessKeyCacheCleared, i18n.GetLocale(c))
	NewResponseBuilder(c).Success(http.StatusOK, dto.MessageResponse{Message: message})
}
