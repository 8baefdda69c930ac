package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vstore-backend/internal/models"
)

type OrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{collection: db.Collection(OrdersCollection)}
}

func (r *OrderRepository) Insert(ctx context.Context, order *models.Order) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, order)
	return translate(err)
}

// FindByUser lists a user's orders, newest first.
func (r *OrderRepository) FindByUser(ctx context.Context, userID string) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(100)
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := make([]models.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) FindByOrderID(ctx context.Context, userID, orderID string) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var order models.Order
	if err := r.collection.FindOne(ctx, bson.M{"userId": userID, "orderId": orderID}).Decode(&order); err != nil {
		return nil, translate(err)
	}
	return &order, nil
}
