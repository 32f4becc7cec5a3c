package model

import "time"

// Namespace names one of the independent cache stores.
type Namespace string

// Cache namespaces.
const (
	NamespaceGeocoding Namespace = "geocoding"
	NamespaceRouting   Namespace = "routing"
	NamespacePlaces    Namespace = "places"
)

// CacheEntry is a stored value with its write time and lifetime, both in
// epoch milliseconds as persisted.
type CacheEntry[T any] struct {
	Data      T     `json:"data"`
	Timestamp int64 `json:"timestamp"`
	Expiry    int64 `json:"expiry"`
}

// NewCacheEntry stamps data with now and ttl.
func NewCacheEntry[T any](data T, now time.Time, ttl time.Duration) CacheEntry[T] {
	return CacheEntry[T]{
		Data:      data,
		Timestamp: now.UnixMilli(),
		Expiry:    ttl.Milliseconds(),
	}
}

// Expired reports whether the entry's age is strictly greater than its expiry.
// An entry read at exactly timestamp+expiry is still valid.
func (e CacheEntry[T]) Expired(now time.Time) bool {
	return now.UnixMilli()-e.Timestamp > e.Expiry
}

// NamespaceStats describes one namespace.
//
// @Description Entry count and serialized size of a cache namespace
type NamespaceStats struct {
	Count     int `json:"count" example:"42"`
	SizeBytes int `json:"size_bytes" example:"8192"`
}

// CacheStats aggregates all namespaces.
//
// @Description Cache statistics per namespace and in total
type CacheStats struct {
	Geocoding NamespaceStats `json:"geocoding"`
	Routing   NamespaceStats `json:"routing"`
	Places    NamespaceStats `json:"places"`
	Total     NamespaceStats `json:"total"`
}
