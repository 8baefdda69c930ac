package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"vstore-backend/internal/repository"
)

const connectTimeout = 10 * time.Second

// Connect dials uri and pings the primary so a bad URL fails at startup.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the unique indexes backing "one user per email" and
// "one cart/wishlist per user". Creating an existing index is a no-op. Every
// index is attempted; failures are joined into the returned error.
//
// A unique index cannot be built over existing duplicates, e.g. two cart
// documents for one user left by an older deployment. Remove the extra
// documents and restart to get the index.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	unique := func(field string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
	}

	indexes := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{repository.UsersCollection, unique("email")},
		{repository.CartCollection, unique("userId")},
		{repository.WishlistCollection, unique("userId")},
		{repository.OrdersCollection, unique("orderId")},
		{repository.OrdersCollection, mongo.IndexModel{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}}},
	}

	var errs []error
	for _, idx := range indexes {
		name, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model)
		if err != nil {
			errs = append(errs, fmt.Errorf("create index on %s: %w", idx.collection, err))
			continue
		}
		log.Printf("index %s.%s ready", idx.collection, name)
	}
	return errors.Join(errs...)
}
