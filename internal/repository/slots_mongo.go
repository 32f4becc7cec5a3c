package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SlotDocument is the MongoDB representation of a slot.
type SlotDocument struct {
	Name      string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoSlotStore keeps slots as documents of the cache_slots collection.
type MongoSlotStore struct {
	db         *MongoDB
	collection *mongo.Collection
}

// NewMongoSlotStore creates a slot store on top of an open MongoDB connection.
func NewMongoSlotStore(db *MongoDB) *MongoSlotStore {
	return &MongoSlotStore{
		db:         db,
		collection: db.CacheSlots,
	}
}

// Get returns the slot value.
func (s *MongoSlotStore) Get(ctx context.Context, name string) (string, bool, error) {
	var doc SlotDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, ioError(err, "read", name)
	}
	return doc.Value, true, nil
}

// Set creates or replaces the slot document.
func (s *MongoSlotStore) Set(ctx context.Context, name, value string) error {
	doc := SlotDocument{Name: name, Value: value, UpdatedAt: time.Now().UTC()}
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": name}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return ioError(err, "write", name)
	}
	return nil
}

// Remove deletes the slot document.
func (s *MongoSlotStore) Remove(ctx context.Context, name string) error {
	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": name}); err != nil {
		return ioError(err, "remove", name)
	}
	return nil
}

// HealthCheck pings MongoDB.
func (s *MongoSlotStore) HealthCheck(ctx context.Context) error {
	return s.db.HealthCheck(ctx)
}

// Close disconnects from MongoDB.
func (s *MongoSlotStore) Close(ctx context.Context) error {
	return s.db.Close(ctx)
}
