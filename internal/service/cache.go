// Package service contains the maps cache and the provider adapters built on it.
package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/maps-cache-service/internal/domain/model"
	"github.com/guttosm/maps-cache-service/internal/metrics"
	"github.com/guttosm/maps-cache-service/internal/repository"
	"github.com/guttosm/maps-cache-service/internal/service/cache"
)

// Durable slot names, one per namespace.
const (
	SlotGeocoding = "gmaps_geocoding_cache"
	SlotRouting   = "gmaps_routing_cache"
	SlotPlaces    = "gmaps_places_cache"
)

const (
	// DefaultGeocodingTTL is the lifetime of geocoding entries.
	DefaultGeocodingTTL = 30 * 24 * time.Hour
	// DefaultRoutingTTL is the lifetime of routing entries.
	DefaultRoutingTTL = 7 * 24 * time.Hour
	// DefaultPlacesTTL is the lifetime of place entries.
	DefaultPlacesTTL = 24 * time.Hour
	// DefaultSweepInterval is how often expired entries are swept.
	DefaultSweepInterval = time.Hour
	// DefaultStorageTimeout bounds a single slot read or write.
	DefaultStorageTimeout = 5 * time.Second
)

// SlotName returns the durable slot a namespace is persisted under.
func SlotName(ns model.Namespace) string {
	switch ns {
	case model.NamespaceGeocoding:
		return SlotGeocoding
	case model.NamespaceRouting:
		return SlotRouting
	default:
		return SlotPlaces
	}
}

// CacheTTLs holds the default lifetime per namespace.
type CacheTTLs struct {
	Geocoding time.Duration
	Routing   time.Duration
	Places    time.Duration
}

// DefaultCacheTTLs returns 30 days, 7 days and 1 day.
func DefaultCacheTTLs() CacheTTLs {
	return CacheTTLs{
		Geocoding: DefaultGeocodingTTL,
		Routing:   DefaultRoutingTTL,
		Places:    DefaultPlacesTTL,
	}
}

// namespaceStore is the type-erased view of a cache.Namespace used for
// persistence and maintenance.
type namespaceStore interface {
	json.Marshaler
	json.Unmarshaler
	Name() model.Namespace
	Sweep(now time.Time) int
	Reset()
	Stats() model.NamespaceStats
}

// CacheOption configures a MapsCache.
type CacheOption func(*MapsCache)

// WithClock replaces time.Now.
func WithClock(clock func() time.Time) CacheOption {
	return func(c *MapsCache) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithTTLs overrides the default lifetimes. Zero fields keep their default.
func WithTTLs(ttls CacheTTLs) CacheOption {
	return func(c *MapsCache) {
		if ttls.Geocoding > 0 {
			c.ttls.Geocoding = ttls.Geocoding
		}
		if ttls.Routing > 0 {
			c.ttls.Routing = ttls.Routing
		}
		if ttls.Places > 0 {
			c.ttls.Places = ttls.Places
		}
	}
}

// WithSweepInterval sets the background sweep period. Zero or negative
// disables the background sweep.
func WithSweepInterval(interval time.Duration) CacheOption {
	return func(c *MapsCache) {
		c.sweepInterval = interval
	}
}

// WithStorageTimeout bounds each slot read, write and remove.
func WithStorageTimeout(timeout time.Duration) CacheOption {
	return func(c *MapsCache) {
		if timeout > 0 {
			c.storageTimeout = timeout
		}
	}
}

// MapsCache keeps geocoding, routing and place results in three independent
// TTL namespaces and mirrors them into a SlotStore.
//
// Every mutation rewrites all three slots. Storage failures are logged and
// never returned; the in-memory state stays authoritative until the next
// successful write.
type MapsCache struct {
	mu             sync.Mutex
	store          repository.SlotStore
	clock          func() time.Time
	ttls           CacheTTLs
	sweepInterval  time.Duration
	storageTimeout time.Duration

	geocoding *cache.Namespace[model.GeocodingResult]
	routing   *cache.Namespace[model.RouteResult]
	places    *cache.Namespace[model.PlaceResult]

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewMapsCache loads the persisted namespaces from store and starts the
// background sweep.
func NewMapsCache(ctx context.Context, store repository.SlotStore, opts ...CacheOption) *MapsCache {
	c := &MapsCache{
		store:          store,
		clock:          time.Now,
		ttls:           DefaultCacheTTLs(),
		sweepInterval:  DefaultSweepInterval,
		storageTimeout: DefaultStorageTimeout,
		geocoding:      cache.NewNamespace[model.GeocodingResult](model.NamespaceGeocoding),
		routing:        cache.NewNamespace[model.RouteResult](model.NamespaceRouting),
		places:         cache.NewNamespace[model.PlaceResult](model.NamespacePlaces),
		stopCh:         make(chan struct{}),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.load(ctx)

	if c.sweepInterval > 0 {
		c.wg.Add(1)
		go c.sweepLoop()
	}
	return c
}

// TTLs returns the configured default lifetimes.
func (c *MapsCache) TTLs() CacheTTLs {
	return c.ttls
}

// CacheGeocodingResult stores result under the normalized address. A ttl of
// zero uses the geocoding default.
func (c *MapsCache) CacheGeocodingResult(ctx context.Context, address string, result model.GeocodingResult, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.ttls.Geocoding
	}
	set(ctx, c, c.geocoding, cache.NormalizeKey(address), result, ttl)
}

// GetGeocodingResult returns the result cached under the normalized address.
func (c *MapsCache) GetGeocodingResult(ctx context.Context, address string) (model.GeocodingResult, bool) {
	return get(ctx, c, c.geocoding, cache.NormalizeKey(address))
}

// CacheRouteResult stores result under the normalized origin|destination key.
// A ttl of zero uses the routing default.
func (c *MapsCache) CacheRouteResult(ctx context.Context, origin, destination string, result model.RouteResult, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.ttls.Routing
	}
	set(ctx, c, c.routing, cache.RouteKey(origin, destination), result, ttl)
}

// GetRouteResult returns the result cached for origin and destination.
func (c *MapsCache) GetRouteResult(ctx context.Context, origin, destination string) (model.RouteResult, bool) {
	return get(ctx, c, c.routing, cache.RouteKey(origin, destination))
}

// CachePlaceResult stores result under the provider place id as given.
// A ttl of zero uses the places default.
func (c *MapsCache) CachePlaceResult(ctx context.Context, placeID string, result model.PlaceResult, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.ttls.Places
	}
	set(ctx, c, c.places, placeID, result, ttl)
}

// GetPlaceResult returns the result cached under placeID.
func (c *MapsCache) GetPlaceResult(ctx context.Context, placeID string) (model.PlaceResult, bool) {
	return get(ctx, c, c.places, placeID)
}

// CleanExpiredEntries removes every expired entry from all namespaces and
// returns how many were removed. Storage is written only when something
// was removed.
func (c *MapsCache) CleanExpiredEntries(ctx context.Context) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()
	total := 0
	for _, ns := range c.namespaces() {
		removed := ns.Sweep(now)
		metrics.RecordSweep(string(ns.Name()), removed)
		total += removed
	}

	if total > 0 {
		log.Info().Int("removed", total).Msg("Swept expired cache entries")
		c.persist(ctx)
	}
	return total
}

// ClearAllCaches empties every namespace and removes the persisted slots.
func (c *MapsCache) ClearAllCaches(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, ns := range c.namespaces() {
		ns.Reset()
		slot := SlotName(ns.Name())

		sctx, cancel := c.storageContext(ctx)
		err := c.store.Remove(sctx, slot)
		cancel()
		if err != nil {
			log.Error().Err(err).Str("slot", slot).Msg("Failed to remove cache slot")
		}
	}
	log.Info().Msg("Cleared all caches")
}

// GetCacheStats returns the entry count and serialized size per namespace
// and in total.
func (c *MapsCache) GetCacheStats() model.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := model.CacheStats{
		Geocoding: c.geocoding.Stats(),
		Routing:   c.routing.Stats(),
		Places:    c.places.Stats(),
	}
	for ns, s := range map[model.Namespace]model.NamespaceStats{
		model.NamespaceGeocoding: stats.Geocoding,
		model.NamespaceRouting:   stats.Routing,
		model.NamespacePlaces:    stats.Places,
	} {
		metrics.UpdateCacheMetrics(string(ns), s.Count, s.SizeBytes)
		stats.Total.Count += s.Count
		stats.Total.SizeBytes += s.SizeBytes
	}
	return stats
}

// Stop ends the background sweep. It is safe to call more than once.
func (c *MapsCache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
	c.wg.Wait()
}

func (c *MapsCache) sweepLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.CleanExpiredEntries(context.Background())
		case <-c.stopCh:
			return
		}
	}
}

func (c *MapsCache) namespaces() []namespaceStore {
	return []namespaceStore{c.geocoding, c.routing, c.places}
}

// load reads every slot independently. A missing, unreadable or corrupt
// slot leaves only its own namespace empty.
func (c *MapsCache) load(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, ns := range c.namespaces() {
		slot := SlotName(ns.Name())

		sctx, cancel := c.storageContext(ctx)
		value, found, err := c.store.Get(sctx, slot)
		cancel()

		switch {
		case err != nil:
			log.Error().Err(err).Str("slot", slot).Msg("Failed to read cache slot, starting empty")
		case !found:
			log.Debug().Str("slot", slot).Msg("No persisted cache slot")
		default:
			if err := ns.UnmarshalJSON([]byte(value)); err != nil {
				ns.Reset()
				log.Warn().Err(err).Str("slot", slot).Msg("Corrupt cache slot, starting empty")
				continue
			}
			log.Debug().Str("slot", slot).Int("entries", ns.Stats().Count).Msg("Loaded cache slot")
		}
	}
}

// persist rewrites all three slots. The caller holds c.mu.
func (c *MapsCache) persist(ctx context.Context) {
	for _, ns := range c.namespaces() {
		slot := SlotName(ns.Name())

		data, err := ns.MarshalJSON()
		if err != nil {
			log.Error().Err(err).Str("slot", slot).Msg("Failed to encode cache slot")
			continue
		}

		sctx, cancel := c.storageContext(ctx)
		err = c.store.Set(sctx, slot, string(data))
		cancel()

		metrics.RecordPersistence(slot, err)
		if err != nil {
			log.Error().Err(err).Str("slot", slot).Msg("Failed to persist cache slot")
		}
	}
}

// storageContext detaches storage I/O from caller cancellation so that a
// mutation, once applied in memory, is still written.
func (c *MapsCache) storageContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), c.storageTimeout)
}

func get[T any](ctx context.Context, c *MapsCache, ns *cache.Namespace[T], key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, lookup := ns.Get(key, c.clock())
	metrics.RecordCacheLookup(string(ns.Name()), lookup.String())
	if lookup == cache.Expired {
		c.persist(ctx)
	}
	return value, lookup == cache.Hit
}

func set[T any](ctx context.Context, c *MapsCache, ns *cache.Namespace[T], key string, value T, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ns.Set(key, value, c.clock(), ttl)
	metrics.RecordCacheWrite(string(ns.Name()))
	c.persist(ctx)
}
