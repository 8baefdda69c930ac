package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vstore-backend/internal/models"
	"vstore-backend/internal/repository"
)

// Store contracts consumed by the services. The Mongo types in
// internal/repository satisfy them.

type ProductStore interface {
	Find(ctx context.Context, q repository.ProductQuery) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type CartStore interface {
	FindByUser(ctx context.Context, userID string) (*models.Cart, error)
	PushItem(ctx context.Context, userID string, item models.CartItem) error
	SetQuantity(ctx context.Context, userID, productID, size string, quantity int) (bool, error)
	PullItem(ctx context.Context, userID, productID, size string) (bool, error)
	Clear(ctx context.Context, userID string) error
}

type WishlistStore interface {
	AddProduct(ctx context.Context, userID, productID string) error
	FindByUser(ctx context.Context, userID string) (*models.Wishlist, error)
}

type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) error
	FindByUser(ctx context.Context, userID string) ([]models.Order, error)
	FindByOrderID(ctx context.Context, userID, orderID string) (*models.Order, error)
}

var (
	_ ProductStore  = (*repository.ProductRepository)(nil)
	_ UserStore     = (*repository.UserRepository)(nil)
	_ CartStore     = (*repository.CartRepository)(nil)
	_ WishlistStore = (*repository.WishlistRepository)(nil)
	_ OrderStore    = (*repository.OrderRepository)(nil)
)
