package provider

import (
	"os"
	"strings"
	"sync"
)

// KeyResolver finds the Google Maps API key either directly or in a secret
// file that may be mounted after start-up.
type KeyResolver struct {
	Key  string
	File string
}

// Resolve returns the key and whether one is available.
func (r KeyResolver) Resolve() (string, bool) {
	if key := strings.TrimSpace(r.Key); key != "" {
		return key, true
	}
	if r.File == "" {
		return "", false
	}
	data, err := os.ReadFile(r.File)
	if err != nil {
		return "", false
	}
	key := strings.TrimSpace(string(data))
	return key, key != ""
}

// Available reports whether a key can be resolved. It is the readiness probe
// of the Google client.
func (r KeyResolver) Available() bool {
	_, ok := r.Resolve()
	return ok
}

// GoogleFactory builds one shared Google client once a key is available.
type GoogleFactory struct {
	resolver KeyResolver
	cfg      GoogleConfig
	wrap     func(Maps) Maps

	mu     sync.Mutex
	client Maps
}

// NewGoogleFactory creates a factory. wrap, when not nil, decorates the built
// client, for example with a circuit breaker.
func NewGoogleFactory(resolver KeyResolver, cfg GoogleConfig, wrap func(Maps) Maps) *GoogleFactory {
	return &GoogleFactory{resolver: resolver, cfg: cfg, wrap: wrap}
}

// Ready reports whether the API key is resolvable.
func (f *GoogleFactory) Ready() bool {
	return f.resolver.Available()
}

// Client returns the shared client, building it on first success.
func (f *GoogleFactory) Client() (Maps, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.client != nil {
		return f.client, nil
	}

	key, ok := f.resolver.Resolve()
	if !ok {
		return nil, ErrMissingAPIKey
	}

	cfg := f.cfg
	cfg.APIKey = key
	google, err := NewGoogle(cfg)
	if err != nil {
		return nil, err
	}

	var client Maps = google
	if f.wrap != nil {
		client = f.wrap(client)
	}
	f.client = client
	return client, nil
}
