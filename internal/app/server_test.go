//go:build !integration

package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestNewServer(t *testing.T) {
	tests := []struct {
		name         string
		writeTimeout time.Duration
		want         time.Duration
	}{
		{name: "uses given write timeout", writeTimeout: 40 * time.Second, want: 40 * time.Second},
		{name: "defaults write timeout", writeTimeout: 0, want: 15 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer(okHandler, "8080", tt.writeTimeout)

			require.NotNil(t, server.httpServer)
			assert.Equal(t, ":8080", server.httpServer.Addr)
			assert.Equal(t, 15*time.Second, server.httpServer.ReadTimeout)
			assert.Equal(t, tt.want, server.httpServer.WriteTimeout)
			assert.Equal(t, 60*time.Second, server.httpServer.IdleTimeout)
			assert.Equal(t, 10*time.Second, server.shutdownTimeout)
		})
	}
}

func TestServer_Shutdown_NotStarted(t *testing.T) {
	server := NewServer(okHandler, "0", 0)

	assert.NoError(t, server.Shutdown())
}

func TestServer_Run_GracefulShutdown(t *testing.T) {
	server := NewServer(okHandler, "0", 0)
	ctx, cancel := context.WithCancel(context.Background())

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "Server did not shutdown gracefully")
	}
}

func TestServer_Run_WithError(t *testing.T) {
	server := NewServer(okHandler, "invalid-port", 0)

	select {
	case err := <-runAsync(server):
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "Run did not report the listen error")
	}
}

func runAsync(server *Server) <-chan error {
	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run(context.Background())
	}()
	return errChan
}
