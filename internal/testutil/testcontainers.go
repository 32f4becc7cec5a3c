//go:build integration

// Package testutil starts the storage backends used by integration tests.
package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	mongoImage    = "mongo:7.0"
	postgresImage = "postgres:16-alpine"

	postgresUser     = "maps"
	postgresPassword = "maps"
	postgresDatabase = "maps_cache"
)

// Backend is a running storage container and the address slot stores connect to.
type Backend struct {
	Container testcontainers.Container
	// Address is a MongoDB URI or a PostgreSQL DSN.
	Address string
}

// StartMongoDB starts a MongoDB container.
func StartMongoDB(ctx context.Context) (*Backend, error) {
	container, err := mongodb.Run(ctx, mongoImage)
	if err != nil {
		return nil, fmt.Errorf("failed to start MongoDB container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get MongoDB connection string: %w", err)
	}

	return &Backend{Container: container, Address: uri}, nil
}

// StartPostgres starts a PostgreSQL container for the SQL slot store.
func StartPostgres(ctx context.Context) (*Backend, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        postgresImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     postgresUser,
				"POSTGRES_PASSWORD": postgresPassword,
				"POSTGRES_DB":       postgresDatabase,
			},
			// The server restarts once after initdb, so the ready line appears twice.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start PostgreSQL container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get PostgreSQL host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get PostgreSQL port: %w", err)
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser, postgresPassword, host, port.Port(), postgresDatabase)
	return &Backend{Container: container, Address: dsn}, nil
}

// Terminate stops the container.
func (b *Backend) Terminate(ctx context.Context) error {
	if b == nil || b.Container == nil {
		return nil
	}
	if err := b.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("failed to terminate container: %w", err)
	}
	return nil
}
