package service

import (
	"context"
	"strings"

	"golang.org/x/sync/singleflight"
)

// ClientSource yields a provider client, waiting for it to become ready.
// *Bootstrap[T] is the production implementation.
type ClientSource[T any] interface {
	Client(ctx context.Context) (T, error)
}

const (
	// DefaultRegion biases geocoding results.
	DefaultRegion = "de"
	// DefaultLanguage is the language of provider responses.
	DefaultLanguage = "de"
)

type adapterConfig struct {
	region   string
	language string
}

func newAdapterConfig(opts []AdapterOption) adapterConfig {
	cfg := adapterConfig{region: DefaultRegion, language: DefaultLanguage}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// AdapterOption configures the geocoding, routing and places services.
type AdapterOption func(*adapterConfig)

// WithDefaultRegion sets the region used when a call leaves it empty.
func WithDefaultRegion(region string) AdapterOption {
	return func(c *adapterConfig) {
		if region != "" {
			c.region = region
		}
	}
}

// WithDefaultLanguage sets the language used when a call leaves it empty.
func WithDefaultLanguage(language string) AdapterOption {
	return func(c *adapterConfig) {
		if language != "" {
			c.language = language
		}
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// flightKey joins parts with a separator that cannot occur in normalized input.
func flightKey(parts ...string) string {
	return strings.Join(parts, "\x00")
}

// shared runs fn once per key among concurrent callers. fn runs detached from
// the caller's cancellation so an abandoned call may still fill the cache;
// the caller itself returns as soon as ctx is done.
func shared[T any](ctx context.Context, group *singleflight.Group, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	detached := context.WithoutCancel(ctx)

	ch := group.DoChan(key, func() (interface{}, error) {
		return fn(detached)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
