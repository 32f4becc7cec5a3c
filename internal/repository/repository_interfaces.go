// Package repository provides the durable key-value substrate the maps cache
// persists its namespaces into.
package repository

import (
	"context"
	"errors"
)

// ErrStorageIO wraps every read, write or remove failure of a slot store.
var ErrStorageIO = errors.New("storage io error")

// SlotStore is a string-keyed store of named slots. Each slot holds one
// serialized value and is replaced as a whole on every write.
type SlotStore interface {
	// Get returns the slot value. found is false when the slot does not exist.
	Get(ctx context.Context, name string) (value string, found bool, err error)
	// Set creates or replaces the slot.
	Set(ctx context.Context, name, value string) error
	// Remove deletes the slot. Removing a missing slot is not an error.
	Remove(ctx context.Context, name string) error
}

// HealthChecker is implemented by stores that can verify their backend.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Closer is implemented by stores holding connections.
type Closer interface {
	Close(ctx context.Context) error
}
