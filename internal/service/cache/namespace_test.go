package cache

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/maps-cache-service/internal/domain/model"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "trims and lowercases", input: "  Hauptstraße 1, Berlin  ", expected: "hauptstraße 1, berlin"},
		{name: "collapses whitespace runs", input: "Unter   den\tLinden\n 5", expected: "unter den linden 5"},
		{name: "already normalized", input: "berlin", expected: "berlin"},
		{name: "only whitespace", input: " \t ", expected: ""},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeKey(tt.input))
		})
	}
}

func TestRouteKey(t *testing.T) {
	assert.Equal(t, "a street|b street", RouteKey("  A   Street", "B Street "))
	assert.Equal(t, RouteKey("Berlin", "Hamburg"), RouteKey(" berlin", "HAMBURG"))
	assert.NotEqual(t, RouteKey("Berlin", "Hamburg"), RouteKey("Hamburg", "Berlin"))
}

func TestNamespace_GetSet(t *testing.T) {
	t0 := time.UnixMilli(1_700_000_000_000)
	ns := NewNamespace[model.GeocodingResult](model.NamespaceGeocoding)
	value := model.GeocodingResult{Lat: 52.52, Lng: 13.405, FormattedAddress: "Berlin"}

	_, lookup := ns.Get("berlin", t0)
	assert.Equal(t, Miss, lookup)

	ns.Set("berlin", value, t0, time.Hour)

	tests := []struct {
		name     string
		at       time.Time
		expected Lookup
	}{
		{name: "fresh", at: t0, expected: Hit},
		{name: "exactly at expiry", at: t0.Add(time.Hour), expected: Hit},
		{name: "one millisecond past expiry", at: t0.Add(time.Hour + time.Millisecond), expected: Expired},
		{name: "deleted after expired read", at: t0, expected: Miss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, lookup := ns.Get("berlin", tt.at)
			assert.Equal(t, tt.expected, lookup)
			if lookup == Hit {
				assert.Equal(t, value, got)
			}
		})
	}
}

func TestNamespace_Sweep(t *testing.T) {
	t0 := time.UnixMilli(1_700_000_000_000)
	ns := NewNamespace[string](model.NamespacePlaces)
	ns.Set("short", "a", t0, time.Minute)
	ns.Set("long", "b", t0, time.Hour)
	ns.Set("boundary", "c", t0, 2*time.Minute)

	removed := ns.Sweep(t0.Add(2 * time.Minute))

	assert.Equal(t, 1, removed)
	assert.Equal(t, 2, ns.Len())
	_, lookup := ns.Get("boundary", t0.Add(2*time.Minute))
	assert.Equal(t, Hit, lookup)
	assert.Equal(t, 0, ns.Sweep(t0.Add(2*time.Minute)))
}

func TestNamespace_JSONRoundTrip(t *testing.T) {
	t0 := time.UnixMilli(1_700_000_000_000)
	ns := NewNamespace[model.RouteResult](model.NamespaceRouting)
	route := model.RouteResult{
		DistanceMeters:  4200,
		DurationSeconds: 780,
		Polyline:        "abc",
		Steps: []model.RouteStep{
			{DistanceMeters: 100, DurationSeconds: 20, Instructions: "first", Polyline: "x"},
			{DistanceMeters: 200, DurationSeconds: 40, Instructions: "second", Polyline: "y"},
		},
	}
	ns.Set("a|b", route, t0, time.Hour)

	data, err := json.Marshal(ns)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a|b":{"data":{"distance_meters":4200,"duration_seconds":780,"polyline":"abc","steps":[
		{"distance_meters":100,"duration_seconds":20,"instructions":"first","polyline":"x"},
		{"distance_meters":200,"duration_seconds":40,"instructions":"second","polyline":"y"}]},
		"timestamp":1700000000000,"expiry":3600000}}`, string(data))

	loaded := NewNamespace[model.RouteResult](model.NamespaceRouting)
	require.NoError(t, json.Unmarshal(data, loaded))
	got, lookup := loaded.Get("a|b", t0)
	assert.Equal(t, Hit, lookup)
	assert.Equal(t, route, got)
}

func TestNamespace_UnmarshalCorruptKeepsEntries(t *testing.T) {
	t0 := time.UnixMilli(1_700_000_000_000)
	ns := NewNamespace[string](model.NamespacePlaces)
	ns.Set("id", "value", t0, time.Hour)

	err := json.Unmarshal([]byte(`{"id": [1,2`), ns)

	assert.Error(t, err)
	assert.Equal(t, 1, ns.Len())
}

func TestNamespace_Stats(t *testing.T) {
	t0 := time.UnixMilli(1_700_000_000_000)
	ns := NewNamespace[string](model.NamespacePlaces)

	assert.Equal(t, model.NamespaceStats{}, ns.Stats())

	ns.Set("id", "value", t0, time.Hour)
	data, err := json.Marshal(ns)
	require.NoError(t, err)

	stats := ns.Stats()
	assert.Equal(t, 1, stats.Count)
	assert.Equal(t, len(data), stats.SizeBytes)

	ns.Reset()
	assert.Equal(t, model.NamespaceStats{}, ns.Stats())
}

func TestLookup_String(t *testing.T) {
	assert.Equal(t, "hit", Hit.String())
	assert.Equal(t, "miss", Miss.String())
	assert.Equal(t, "expired", Expired.String())
}
