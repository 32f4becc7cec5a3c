package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/maps-cache-service/internal/metrics"
)

// BootstrapState is the readiness state of a lazily built client.
type BootstrapState int

// Bootstrap states.
const (
	StateUninitialized BootstrapState = iota
	StateWaiting
	StateReady
)

// String returns the state name.
func (s BootstrapState) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

const (
	// DefaultBootstrapPollInterval is how often the readiness probe runs while waiting.
	DefaultBootstrapPollInterval = 200 * time.Millisecond
	// DefaultBootstrapTimeout bounds a single wait for readiness.
	DefaultBootstrapTimeout = 10 * time.Second
)

type bootstrapConfig struct {
	pollInterval time.Duration
	timeout      time.Duration
}

// BootstrapOption configures a Bootstrap.
type BootstrapOption func(*bootstrapConfig)

// WithPollInterval sets the readiness probe interval.
func WithPollInterval(d time.Duration) BootstrapOption {
	return func(c *bootstrapConfig) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

// WithLoadTimeout sets how long a wait for readiness may take.
func WithLoadTimeout(d time.Duration) BootstrapOption {
	return func(c *bootstrapConfig) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// pendingWait is shared by every caller waiting on the same readiness poll.
// err is written before done is closed.
type pendingWait struct {
	done chan struct{}
	err  error
}

// Bootstrap defers building a client until probe reports that its
// dependencies are available. All callers arriving while the client is not
// ready share one polling loop. A wait that times out resets the bootstrap
// so a later call polls again.
type Bootstrap[T any] struct {
	name  string
	probe func() bool
	build func() (T, error)
	cfg   bootstrapConfig

	mu      sync.Mutex
	state   BootstrapState
	client  T
	pending *pendingWait
}

// NewBootstrap creates a bootstrap in the Uninitialized state.
func NewBootstrap[T any](name string, probe func() bool, build func() (T, error), opts ...BootstrapOption) *Bootstrap[T] {
	cfg := bootstrapConfig{
		pollInterval: DefaultBootstrapPollInterval,
		timeout:      DefaultBootstrapTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &Bootstrap[T]{
		name:  name,
		probe: probe,
		build: build,
		cfg:   cfg,
	}
	metrics.SetBootstrapState(name, int(StateUninitialized))
	return b
}

// State returns the current state.
func (b *Bootstrap[T]) State() BootstrapState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Client returns the ready client, waiting for readiness if needed.
// A caller whose ctx ends first gets ctx.Err(); the shared wait continues
// for the others.
func (b *Bootstrap[T]) Client(ctx context.Context) (T, error) {
	var zero T

	b.mu.Lock()
	switch b.state {
	case StateReady:
		client := b.client
		b.mu.Unlock()
		return client, nil
	case StateUninitialized:
		if b.probe() {
			client, err := b.readyLocked()
			b.mu.Unlock()
			return client, err
		}
		b.pending = &pendingWait{done: make(chan struct{})}
		b.setStateLocked(StateWaiting)
		go b.wait(b.pending)
	}
	pending := b.pending
	b.mu.Unlock()

	select {
	case <-pending.done:
		if pending.err != nil {
			return zero, pending.err
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		return b.client, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func (b *Bootstrap[T]) wait(pending *pendingWait) {
	ticker := time.NewTicker(b.cfg.pollInterval)
	defer ticker.Stop()
	timer := time.NewTimer(b.cfg.timeout)
	defer timer.Stop()

	for {
		select {
		case <-ticker.C:
			if !b.probe() {
				continue
			}
			b.mu.Lock()
			_, pending.err = b.readyLocked()
			b.pending = nil
			b.mu.Unlock()
			close(pending.done)
			return
		case <-timer.C:
			b.mu.Lock()
			pending.err = fmt.Errorf("%w: %s after %s", ErrProviderLoadTimeout, b.name, b.cfg.timeout)
			b.pending = nil
			b.setStateLocked(StateUninitialized)
			b.mu.Unlock()
			log.Warn().Str("client", b.name).Dur("timeout", b.cfg.timeout).Msg("Provider client did not become ready")
			close(pending.done)
			return
		}
	}
}

// readyLocked builds the client. A build failure leaves the bootstrap
// Uninitialized. The caller holds b.mu.
func (b *Bootstrap[T]) readyLocked() (T, error) {
	client, err := b.build()
	if err != nil {
		var zero T
		b.setStateLocked(StateUninitialized)
		log.Error().Err(err).Str("client", b.name).Msg("Failed to build provider client")
		return zero, err
	}
	b.client = client
	b.setStateLocked(StateReady)
	return client, nil
}

func (b *Bootstrap[T]) setStateLocked(state BootstrapState) {
	if b.state == state {
		return
	}
	log.Debug().Str("client", b.name).Str("from", b.state.String()).Str("to", state.String()).Msg("Bootstrap state changed")
	b.state = state
	metrics.SetBootstrapState(b.name, int(state))
}
