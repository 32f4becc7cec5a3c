package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/maps-cache-service/internal/middleware"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// MapsRoutes registers the public map lookup routes.
type MapsRoutes struct {
	handler *MapsHandler
}

// NewMapsRoutes creates a new MapsRoutes instance.
func NewMapsRoutes(handler *MapsHandler) *MapsRoutes {
	return &MapsRoutes{handler: handler}
}

// RegisterRoutes implements RouteGroup.
func (r *MapsRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.GET("/geocode", r.handler.Geocode)
	rg.GET("/reverse-geocode", r.handler.ReverseGeocode)
	rg.POST("/routes", r.handler.CalculateRoute)
	rg.GET("/places/:placeId", r.handler.GetPlace)
}

// CacheRoutes registers the cache administration routes behind the admin API keys.
type CacheRoutes struct {
	handler *CacheHandler
}

// NewCacheRoutes creates a new CacheRoutes instance.
func NewCacheRoutes(handler *CacheHandler) *CacheRoutes {
	return &CacheRoutes{handler: handler}
}

// RegisterRoutes implements RouteGroup.
func (r *CacheRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	admin := rg.Group("/cache", middleware.APIKeyAuth(cfg.AdminAPIKeys))
	admin.GET("/stats", r.handler.Stats)
	admin.POST("/cleanup", r.handler.Cleanup)
	admin.DELETE("", r.handler.Clear)
}
