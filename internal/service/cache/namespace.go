// Package cache holds the keyed TTL stores the maps cache is built from.
package cache

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/guttosm/maps-cache-service/internal/domain/model"
)

// NormalizeKey trims s, lowercases it and collapses internal whitespace runs
// to a single space.
func NormalizeKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// RouteKey joins the independently normalized origin and destination.
func RouteKey(origin, destination string) string {
	return NormalizeKey(origin) + "|" + NormalizeKey(destination)
}

// Lookup is the outcome of a namespace read.
type Lookup int

// Lookup outcomes.
const (
	Miss Lookup = iota
	Hit
	Expired
)

// String returns the metric label of the outcome.
func (l Lookup) String() string {
	switch l {
	case Hit:
		return "hit"
	case Expired:
		return "expired"
	default:
		return "miss"
	}
}

// Namespace is a map of cache entries of one result type.
// It is not safe for concurrent use; the owner serializes access.
type Namespace[T any] struct {
	name    model.Namespace
	entries map[string]model.CacheEntry[T]
}

// NewNamespace returns an empty namespace.
func NewNamespace[T any](name model.Namespace) *Namespace[T] {
	return &Namespace[T]{
		name:    name,
		entries: make(map[string]model.CacheEntry[T]),
	}
}

// Name returns the namespace name.
func (n *Namespace[T]) Name() model.Namespace {
	return n.name
}

// Get returns the value stored under key. An expired entry is deleted and
// reported as Expired.
func (n *Namespace[T]) Get(key string, now time.Time) (T, Lookup) {
	var zero T
	entry, ok := n.entries[key]
	if !ok {
		return zero, Miss
	}
	if entry.Expired(now) {
		delete(n.entries, key)
		return zero, Expired
	}
	return entry.Data, Hit
}

// Set stores value under key with the given ttl.
func (n *Namespace[T]) Set(key string, value T, now time.Time, ttl time.Duration) {
	n.entries[key] = model.NewCacheEntry(value, now, ttl)
}

// Sweep deletes every entry older than its own expiry and returns how many
// were removed.
func (n *Namespace[T]) Sweep(now time.Time) int {
	removed := 0
	for key, entry := range n.entries {
		if entry.Expired(now) {
			delete(n.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored entries, expired or not.
func (n *Namespace[T]) Len() int {
	return len(n.entries)
}

// Reset drops every entry.
func (n *Namespace[T]) Reset() {
	n.entries = make(map[string]model.CacheEntry[T])
}

// MarshalJSON encodes the namespace as an object of key to entry.
func (n *Namespace[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.entries)
}

// UnmarshalJSON replaces the entries with the decoded object. On error the
// existing entries are kept.
func (n *Namespace[T]) UnmarshalJSON(data []byte) error {
	entries := make(map[string]model.CacheEntry[T])
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	n.entries = entries
	return nil
}

// Stats returns the entry count and serialized size. An empty namespace
// reports zero bytes.
func (n *Namespace[T]) Stats() model.NamespaceStats {
	if len(n.entries) == 0 {
		return model.NamespaceStats{}
	}
	data, err := json.Marshal(n.entries)
	if err != nil {
		return model.NamespaceStats{Count: len(n.entries)}
	}
	return model.NamespaceStats{Count: len(n.entries), SizeBytes: len(data)}
}
