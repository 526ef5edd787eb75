package listings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ahmad2493/real-estate-platform/internal/config"
)

// MongoSource reads listings from a MongoDB collection.
type MongoSource struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// ConnectMongo establishes a connection to the listings collection described
// by cfg and verifies it with a ping.
func ConnectMongo(ctx context.Context, cfg config.MongoConfig) (*MongoSource, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	return &MongoSource{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Close disconnects the underlying client.
func (s *MongoSource) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoSource) FindAll(ctx context.Context) ([]Listing, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("querying listings: %w", err)
	}
	defer cursor.Close(ctx)

	var results []Listing
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decoding listings: %w", err)
	}
	return results, nil
}

func (s *MongoSource) FindByID(ctx context.Context, id string) (*Listing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid listing id %q: %w", id, err)
	}

	var listing Listing
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&listing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying listing %s: %w", id, err)
	}
	return &listing, nil
}
