package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vstore-backend/internal/models"
)

type CartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{collection: db.Collection(CartCollection)}
}

func (r *CartRepository) FindByUser(ctx context.Context, userID string) (*models.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var cart models.Cart
	if err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart); err != nil {
		return nil, translate(err)
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}

// PushItem appends item with a single $push upsert, creating the cart on first
// use. Concurrent pushes are each atomic; their relative order is undefined.
func (r *CartRepository) PushItem(ctx context.Context, userID string, item models.CartItem) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"items": item},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	return upsert(ctx, r.collection, bson.M{"userId": userID}, update)
}

// SetQuantity updates every line matching product and size. It reports
// whether any line matched.
func (r *CartRepository) SetQuantity(ctx context.Context, userID, productID, size string, quantity int) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	filter := bson.M{
		"userId": userID,
		"items":  bson.M{"$elemMatch": bson.M{"productId": productID, "selectedSize": size}},
	}
	update := bson.M{
		"$set": bson.M{
			"items.$[line].quantity": quantity,
			"updatedAt":              time.Now().UTC(),
		},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"line.productId": productID, "line.selectedSize": size}},
	})

	res, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return false, translate(err)
	}
	return res.MatchedCount > 0, nil
}

// PullItem removes every line matching product and size.
func (r *CartRepository) PullItem(ctx context.Context, userID, productID, size string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"items": bson.M{"productId": productID, "selectedSize": size}},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	filter := bson.M{
		"userId": userID,
		"items":  bson.M{"$elemMatch": bson.M{"productId": productID, "selectedSize": size}},
	}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, translate(err)
	}
	return res.MatchedCount > 0, nil
}

// Clear empties the cart. A user without a cart is left without one.
func (r *CartRepository) Clear(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"items": []models.CartItem{}, "updatedAt": time.Now().UTC()}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"userId": userID}, update)
	return translate(err)
}
