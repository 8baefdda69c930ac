package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"vstore-backend/internal/models"
)

type WishlistRepository struct {
	collection *mongo.Collection
}

func NewWishlistRepository(db *mongo.Database) *WishlistRepository {
	return &WishlistRepository{collection: db.Collection(WishlistCollection)}
}

// AddProduct is idempotent: $addToSet never stores the same id twice.
func (r *WishlistRepository) AddProduct(ctx context.Context, userID, productID string) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	update := bson.M{
		"$addToSet": bson.M{"productIds": productID},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	}
	return upsert(ctx, r.collection, bson.M{"userId": userID}, update)
}

func (r *WishlistRepository) FindByUser(ctx context.Context, userID string) (*models.Wishlist, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var w models.Wishlist
	if err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&w); err != nil {
		return nil, translate(err)
	}
	if w.ProductIDs == nil {
		w.ProductIDs = []string{}
	}
	return &w, nil
}
