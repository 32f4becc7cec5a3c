//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"
)

// sharedBackend starts its container on first use and keeps it for the
// remaining tests of the package.
type sharedBackend struct {
	start func(context.Context) (*Backend, error)

	once    sync.Once
	backend *Backend
	err     error
}

func (s *sharedBackend) get(ctx context.Context) (*Backend, error) {
	s.once.Do(func() {
		s.backend, s.err = s.start(ctx)
	})
	return s.backend, s.err
}

func (s *sharedBackend) started() bool {
	return s.backend != nil
}

var (
	sharedMongo    = &sharedBackend{start: StartMongoDB}
	sharedPostgres = &sharedBackend{start: StartPostgres}
)

// RunWithMongoDB is meant for TestMain. MongoDB is started before the tests
// run. PostgreSQL is started only if a test asks for it. Both are terminated
// after m.Run.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.RunWithMongoDB(context.Background(), m))
//	}
func RunWithMongoDB(ctx context.Context, m *testing.M) int {
	if _, err := sharedMongo.get(ctx); err != nil {
		panic(err)
	}

	code := m.Run()

	for _, shared := range []*sharedBackend{sharedMongo, sharedPostgres} {
		if !shared.started() {
			continue
		}
		if err := shared.backend.Terminate(ctx); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}
	return code
}

// MongoURI returns the URI of the shared MongoDB container.
func MongoURI() string {
	if !sharedMongo.started() {
		panic("shared MongoDB container not started; use RunWithMongoDB in TestMain")
	}
	return sharedMongo.backend.Address
}

// PostgresDSN starts the shared PostgreSQL container if needed and returns its DSN.
func PostgresDSN(t *testing.T) string {
	t.Helper()
	backend, err := sharedPostgres.get(context.Background())
	if err != nil {
		t.Fatalf("postgres container: %v", err)
	}
	return backend.Address
}

var unsafeNameChars = regexp.MustCompile(`[^a-z0-9_]+`)

// DatabaseName derives a per-test name usable as a MongoDB database or a slot
// prefix. It is lowercase, at most 50 characters before the suffix, and
// unique across runs.
func DatabaseName(testName string) string {
	name := unsafeNameChars.ReplaceAllString(strings.ToLower(testName), "_")
	if len(name) > 50 {
		name = name[:50]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1000000)
}
