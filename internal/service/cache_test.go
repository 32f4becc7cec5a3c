//go:build !integration

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/maps-cache-service/internal/domain/model"
	"github.com/guttosm/maps-cache-service/internal/mocks"
	"github.com/guttosm/maps-cache-service/internal/repository"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.UnixMilli(1_700_000_000_000)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newTestCache(t *testing.T, store repository.SlotStore, clock *fakeClock, opts ...CacheOption) *MapsCache {
	t.Helper()
	opts = append([]CacheOption{WithClock(clock.Now), WithSweepInterval(0)}, opts...)
	c := NewMapsCache(context.Background(), store, opts...)
	t.Cleanup(c.Stop)
	return c
}

var berlin = model.GeocodingResult{Lat: 52.52, Lng: 13.405, FormattedAddress: "Hauptstraße 1, 10117 Berlin"}

func sampleRoute() model.RouteResult {
	return model.RouteResult{
		DistanceMeters:  4200,
		DurationSeconds: 780,
		Polyline:        "_p~iF~ps|U",
		Steps: []model.RouteStep{
			{DistanceMeters: 1200, DurationSeconds: 200, Instructions: "Head north", Polyline: "a"},
			{DistanceMeters: 3000, DurationSeconds: 580, Instructions: "Turn right", Polyline: "b"},
		},
	}
}

func samplePlace() model.PlaceResult {
	return model.PlaceResult{
		Details: map[string]interface{}{"name": "Brandenburger Tor"},
		Photos:  []string{"photo-1", "photo-2"},
	}
}

func TestMapsCache_GeocodingNormalization(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t, repository.NewMemoryStore(), newFakeClock())

	c.CacheGeocodingResult(ctx, "  Hauptstraße 1, Berlin  ", berlin, 0)

	tests := []struct {
		name    string
		address string
		found   bool
	}{
		{name: "lowercase", address: "hauptstraße 1, berlin", found: true},
		{name: "extra inner whitespace", address: "HAUPTSTRASSE 1,   Berlin", found: false},
		{name: "case and whitespace", address: "Hauptstraße   1,  BERLIN", found: true},
		{name: "different address", address: "Hauptstraße 2, Berlin", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := c.GetGeocodingResult(ctx, tt.address)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, berlin, got)
			}
		})
	}
}

func TestMapsCache_RouteMissBeforeWrite(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t, repository.NewMemoryStore(), newFakeClock())

	got, found := c.GetRouteResult(ctx, "A", "B")

	assert.False(t, found)
	assert.Equal(t, model.RouteResult{}, got)

	c.CacheRouteResult(ctx, "A", "B", sampleRoute(), 0)

	got, found = c.GetRouteResult(ctx, " a ", "b")
	assert.True(t, found)
	assert.Equal(t, sampleRoute(), got)

	_, found = c.GetRouteResult(ctx, "B", "A")
	assert.False(t, found)
}

func TestMapsCache_PlacesKeyedVerbatim(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t, repository.NewMemoryStore(), newFakeClock())

	c.CachePlaceResult(ctx, "ChIJAVkDPzdOqEcRcDteW0YgIQQ", samplePlace(), 0)

	got, found := c.GetPlaceResult(ctx, "ChIJAVkDPzdOqEcRcDteW0YgIQQ")
	assert.True(t, found)
	assert.Equal(t, samplePlace(), got)

	_, found = c.GetPlaceResult(ctx, "chijavkdpzdoqecrcdtew0ygiqq")
	assert.False(t, found)
}

func TestMapsCache_ExpiryBoundary(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	store := repository.NewMemoryStore()
	c := newTestCache(t, store, clock)

	c.CacheGeocodingResult(ctx, "berlin", berlin, time.Minute)

	clock.Advance(time.Minute)
	_, found := c.GetGeocodingResult(ctx, "berlin")
	assert.True(t, found, "entry read at exactly its expiry is still valid")

	clock.Advance(time.Millisecond)
	_, found = c.GetGeocodingResult(ctx, "berlin")
	assert.False(t, found)

	value, ok, err := store.Get(ctx, SlotGeocoding)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{}`, value, "expired read deletes and persists")
}

func TestMapsCache_DefaultTTLs(t *testing.T) {
	tests := []struct {
		name  string
		write func(c *MapsCache)
		read  func(c *MapsCache) bool
		ttl   time.Duration
	}{
		{
			name:  "geocoding 30 days",
			write: func(c *MapsCache) { c.CacheGeocodingResult(context.Background(), "x", berlin, 0) },
			read: func(c *MapsCache) bool {
				_, ok := c.GetGeocodingResult(context.Background(), "x")
				return ok
			},
			ttl: 30 * 24 * time.Hour,
		},
		{
			name:  "routing 7 days",
			write: func(c *MapsCache) { c.CacheRouteResult(context.Background(), "a", "b", sampleRoute(), 0) },
			read: func(c *MapsCache) bool {
				_, ok := c.GetRouteResult(context.Background(), "a", "b")
				return ok
			},
			ttl: 7 * 24 * time.Hour,
		},
		{
			name:  "places 1 day",
			write: func(c *MapsCache) { c.CachePlaceResult(context.Background(), "p", samplePlace(), 0) },
			read: func(c *MapsCache) bool {
				_, ok := c.GetPlaceResult(context.Background(), "p")
				return ok
			},
			ttl: 24 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newFakeClock()
			c := newTestCache(t, repository.NewMemoryStore(), clock)

			tt.write(c)
			clock.Advance(tt.ttl)
			assert.True(t, tt.read(c))
			clock.Advance(time.Millisecond)
			assert.False(t, tt.read(c))
		})
	}
}

func TestMapsCache_WithTTLs(t *testing.T) {
	clock := newFakeClock()
	c := newTestCache(t, repository.NewMemoryStore(), clock, WithTTLs(CacheTTLs{Routing: time.Hour}))

	assert.Equal(t, CacheTTLs{Geocoding: DefaultGeocodingTTL, Routing: time.Hour, Places: DefaultPlacesTTL}, c.TTLs())
}

func TestMapsCache_CleanExpiredEntries(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	c := newTestCache(t, repository.NewMemoryStore(), clock)

	c.CacheGeocodingResult(ctx, "short", berlin, time.Minute)
	c.CacheGeocodingResult(ctx, "long", berlin, time.Hour)
	c.CacheRouteResult(ctx, "a", "b", sampleRoute(), time.Minute)
	c.CacheRouteResult(ctx, "c", "d", sampleRoute(), time.Hour)
	c.CachePlaceResult(ctx, "p1", samplePlace(), time.Hour)

	clock.Advance(30 * time.Minute)
	removed := c.CleanExpiredEntries(ctx)

	assert.Equal(t, 2, removed)
	stats := c.GetCacheStats()
	assert.Equal(t, 1, stats.Geocoding.Count)
	assert.Equal(t, 1, stats.Routing.Count)
	assert.Equal(t, 1, stats.Places.Count)
	assert.Equal(t, 3, stats.Total.Count)

	_, found := c.GetGeocodingResult(ctx, "long")
	assert.True(t, found)
	_, found = c.GetRouteResult(ctx, "c", "d")
	assert.True(t, found)
	_, found = c.GetPlaceResult(ctx, "p1")
	assert.True(t, found)
}

func TestMapsCache_CleanExpiredEntriesNoWriteWhenNothingRemoved(t *testing.T) {
	store := new(mocks.MockSlotStore)
	store.On("Get", mock.Anything, mock.Anything).Return("", false, nil)

	c := newTestCache(t, store, newFakeClock())

	assert.NotPanics(t, func() {
		assert.Equal(t, 0, c.CleanExpiredEntries(context.Background()))
	})
	store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	store.AssertNumberOfCalls(t, "Get", 3)
}

func TestMapsCache_ClearAllCaches(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	c := newTestCache(t, store, newFakeClock())

	c.CacheGeocodingResult(ctx, "berlin", berlin, 0)
	c.CacheRouteResult(ctx, "a", "b", sampleRoute(), 0)
	c.CachePlaceResult(ctx, "p1", samplePlace(), 0)
	require.Equal(t, 3, store.Len())

	c.ClearAllCaches(ctx)

	assert.Equal(t, model.CacheStats{}, c.GetCacheStats())
	assert.Equal(t, 0, store.Len())

	_, found := c.GetGeocodingResult(ctx, "berlin")
	assert.False(t, found)
	_, found = c.GetRouteResult(ctx, "a", "b")
	assert.False(t, found)
	_, found = c.GetPlaceResult(ctx, "p1")
	assert.False(t, found)

	reloaded := newTestCache(t, store, newFakeClock())
	assert.Equal(t, model.CacheStats{}, reloaded.GetCacheStats())
}

func TestMapsCache_PersistsAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	clock := newFakeClock()

	first := newTestCache(t, store, clock)
	first.CacheGeocodingResult(ctx, "Berlin", berlin, 0)
	first.CacheRouteResult(ctx, "a", "b", sampleRoute(), 0)
	first.CachePlaceResult(ctx, "p1", samplePlace(), 0)
	first.Stop()

	second := newTestCache(t, store, clock)

	got, found := second.GetGeocodingResult(ctx, "berlin")
	assert.True(t, found)
	assert.Equal(t, berlin, got)

	route, found := second.GetRouteResult(ctx, "A", "B")
	assert.True(t, found)
	assert.Equal(t, sampleRoute(), route)

	place, found := second.GetPlaceResult(ctx, "p1")
	assert.True(t, found)
	assert.Equal(t, "Brandenburger Tor", place.Details["name"])
	assert.Equal(t, []string{"photo-1", "photo-2"}, place.Photos)
}

func TestMapsCache_CorruptSlotIsIsolated(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	clock := newFakeClock()

	seed := newTestCache(t, store, clock)
	seed.CacheGeocodingResult(ctx, "berlin", berlin, 0)
	seed.CacheRouteResult(ctx, "a", "b", sampleRoute(), 0)
	seed.CachePlaceResult(ctx, "p1", samplePlace(), 0)
	seed.Stop()

	require.NoError(t, store.Set(ctx, SlotRouting, `{"a|b": {"data": [`))

	c := newTestCache(t, store, clock)

	_, found := c.GetGeocodingResult(ctx, "berlin")
	assert.True(t, found)
	_, found = c.GetRouteResult(ctx, "a", "b")
	assert.False(t, found)
	_, found = c.GetPlaceResult(ctx, "p1")
	assert.True(t, found)
}

func TestMapsCache_StorageFailuresAreAbsorbed(t *testing.T) {
	ctx := context.Background()
	storageErr := fmt.Errorf("%w: disk full", repository.ErrStorageIO)

	store := new(mocks.MockSlotStore)
	store.On("Get", mock.Anything, mock.Anything).Return("", false, storageErr)
	store.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(storageErr)
	store.On("Remove", mock.Anything, mock.Anything).Return(storageErr)

	c := newTestCache(t, store, newFakeClock())

	assert.NotPanics(t, func() {
		c.CacheGeocodingResult(ctx, "berlin", berlin, 0)
	})
	got, found := c.GetGeocodingResult(ctx, "berlin")
	assert.True(t, found)
	assert.Equal(t, berlin, got)

	c.ClearAllCaches(ctx)
	_, found = c.GetGeocodingResult(ctx, "berlin")
	assert.False(t, found)

	store.AssertNumberOfCalls(t, "Set", 3)
	store.AssertNumberOfCalls(t, "Remove", 3)
}

func TestMapsCache_CancelledCallerStillPersists(t *testing.T) {
	store := repository.NewMemoryStore()
	c := newTestCache(t, store, newFakeClock())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c.CacheGeocodingResult(ctx, "berlin", berlin, 0)

	_, ok, err := store.Get(context.Background(), SlotGeocoding)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMapsCache_StatsSizeMatchesPersistedSlot(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	c := newTestCache(t, store, newFakeClock())

	assert.Equal(t, model.CacheStats{}, c.GetCacheStats())

	c.CacheGeocodingResult(ctx, "berlin", berlin, 0)
	c.CacheRouteResult(ctx, "a", "b", sampleRoute(), 0)

	geocoding, _, err := store.Get(ctx, SlotGeocoding)
	require.NoError(t, err)
	routing, _, err := store.Get(ctx, SlotRouting)
	require.NoError(t, err)

	stats := c.GetCacheStats()
	assert.Equal(t, model.NamespaceStats{Count: 1, SizeBytes: len(geocoding)}, stats.Geocoding)
	assert.Equal(t, model.NamespaceStats{Count: 1, SizeBytes: len(routing)}, stats.Routing)
	assert.Equal(t, model.NamespaceStats{}, stats.Places)
	assert.Equal(t, model.NamespaceStats{Count: 2, SizeBytes: len(geocoding) + len(routing)}, stats.Total)
}

func TestMapsCache_PersistedFormat(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	clock := newFakeClock()
	c := newTestCache(t, store, clock)

	c.CacheGeocodingResult(ctx, "  Berlin ", berlin, time.Hour)

	value, ok, err := store.Get(ctx, SlotGeocoding)
	require.NoError(t, err)
	require.True(t, ok)

	var decoded map[string]model.CacheEntry[model.GeocodingResult]
	require.NoError(t, json.Unmarshal([]byte(value), &decoded))
	assert.Equal(t, model.CacheEntry[model.GeocodingResult]{
		Data:      berlin,
		Timestamp: clock.Now().UnixMilli(),
		Expiry:    time.Hour.Milliseconds(),
	}, decoded["berlin"])
}

func TestMapsCache_BackgroundSweep(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	store := repository.NewMemoryStore()
	c := newTestCache(t, store, clock, WithSweepInterval(10*time.Millisecond))

	c.CacheGeocodingResult(ctx, "berlin", berlin, time.Minute)
	clock.Advance(2 * time.Minute)

	assert.Eventually(t, func() bool {
		return c.GetCacheStats().Geocoding.Count == 0
	}, time.Second, 10*time.Millisecond)

	c.Stop()
	c.Stop()
}

func TestMapsCache_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t, repository.NewMemoryStore(), newFakeClock())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			address := fmt.Sprintf("street %d", i%5)
			c.CacheGeocodingResult(ctx, address, berlin, 0)
			_, _ = c.GetGeocodingResult(ctx, address)
			c.CleanExpiredEntries(ctx)
			_ = c.GetCacheStats()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, c.GetCacheStats().Geocoding.Count)
}

func TestSlotName(t *testing.T) {
	assert.Equal(t, "gmaps_geocoding_cache", SlotName(model.NamespaceGeocoding))
	assert.Equal(t, "gmaps_routing_cache", SlotName(model.NamespaceRouting))
	assert.Equal(t, "gmaps_places_cache", SlotName(model.NamespacePlaces))
}
