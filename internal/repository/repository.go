// Package repository is the Document Store access layer. Each type wraps one
// Mongo collection; callers see only model types and the sentinel errors
// below.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ProductsCollection = "products"
	UsersCollection    = "users"
	CartCollection     = "cart"
	WishlistCollection = "wishlist"
	OrdersCollection   = "orders"
)

const (
	readTimeout  = 5 * time.Second
	writeTimeout = 5 * time.Second
	listTimeout  = 10 * time.Second
)

var (
	ErrNotFound  = errors.New("repository: document not found")
	ErrDuplicate = errors.New("repository: duplicate key")
)

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	default:
		return err
	}
}

// upsert runs an upserting UpdateOne. Two first writes for the same user can
// race and the loser hits the unique userId index; once the winner's document
// exists a retry is a plain update.
func upsert(ctx context.Context, coll *mongo.Collection, filter, update interface{}) error {
	opts := options.Update().SetUpsert(true)
	_, err := coll.UpdateOne(ctx, filter, update, opts)
	if mongo.IsDuplicateKeyError(err) {
		_, err = coll.UpdateOne(ctx, filter, update, opts)
	}
	return translate(err)
}
