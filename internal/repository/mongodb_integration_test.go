//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/maps-cache-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	uri := testutil.MongoURI()
	dbName := testutil.DatabaseName(t.Name())

	db, err := NewMongoDB(uri, dbName)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	t.Run("connection successful", func(t *testing.T) {
		assert.NotNil(t, db.Client)
		assert.NotNil(t, db.Database)
		assert.Equal(t, slotsCollection, db.CacheSlots.Name())
		assert.Equal(t, dbName, db.Database.Name())
	})

	t.Run("health check", func(t *testing.T) {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		assert.NoError(t, db.HealthCheck(pingCtx))
	})

	t.Run("updated_at index exists", func(t *testing.T) {
		cursor, err := db.CacheSlots.Indexes().List(ctx)
		require.NoError(t, err)

		var indexes []bson.M
		require.NoError(t, cursor.All(ctx, &indexes))

		names := make([]string, 0, len(indexes))
		for _, idx := range indexes {
			names = append(names, idx["name"].(string))
		}
		assert.Contains(t, names, "updated_at_desc")
	})

	t.Run("reconnect is idempotent on indexes", func(t *testing.T) {
		again, err := NewMongoDB(uri, dbName)
		require.NoError(t, err)
		assert.NoError(t, again.Close(ctx))
	})

	t.Run("unreachable server fails fast", func(t *testing.T) {
		_, err := NewMongoDB("mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=500", dbName)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to ping mongodb")
	})
}
