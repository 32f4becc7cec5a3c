package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	slotsCollection = "cache_slots"

	mongoConnectTimeout = 10 * time.Second
	mongoPingTimeout    = 2 * time.Second
)

// MongoDB is a connected client with the slot collection resolved.
type MongoDB struct {
	Client     *mongo.Client
	Database   *mongo.Database
	CacheSlots *mongo.Collection
}

// slotClientOptions sizes the pool for a store holding one document per
// cache namespace. Writes are whole-document replaces and safe to retry.
func slotClientOptions(uri string) *options.ClientOptions {
	return options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(10).
		SetMinPoolSize(1).
		SetMaxConnIdleTime(10 * time.Minute).
		SetConnectTimeout(mongoConnectTimeout).
		SetServerSelectionTimeout(5 * time.Second).
		SetSocketTimeout(30 * time.Second).
		SetRetryWrites(true).
		SetRetryReads(true).
		SetCompressors([]string{"zstd", "snappy", "zlib"})
}

// NewMongoDB connects to uri, pings the server and makes sure the slot
// collection carries its updated_at index.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, slotClientOptions(uri))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "failed to ping mongodb")
	}

	db := client.Database(databaseName)
	m := &MongoDB{
		Client:     client,
		Database:   db,
		CacheSlots: db.Collection(slotsCollection),
	}

	// Lets operators list slots by last write.
	updatedAt := mongo.IndexModel{
		Keys:    bson.D{{Key: "updated_at", Value: -1}},
		Options: options.Index().SetName("updated_at_desc"),
	}
	if _, err := m.CacheSlots.Indexes().CreateOne(ctx, updatedAt); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrapf(err, "failed to index %s", slotsCollection)
	}

	return m, nil
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck pings the server.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, mongoPingTimeout)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
