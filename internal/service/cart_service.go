package service

import (
	"context"
	"errors"

	"vstore-backend/internal/apperrors"
	"vstore-backend/internal/models"
	"vstore-backend/internal/repository"
)

// CartService mutates the per-user cart document.
//
// Add does not merge lines and does not check the product against the
// catalog: product existence and stock are not verified. Adding the same
// product and size twice yields two lines.
type CartService struct {
	carts CartStore
}

func NewCartService(carts CartStore) *CartService {
	return &CartService{carts: carts}
}

// Get never creates a document; a user without a cart gets an empty one.
func (s *CartService) Get(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
	}
	if err != nil {
		return nil, apperrors.Internal("could not load cart", err)
	}
	return cart, nil
}

func (s *CartService) Add(ctx context.Context, userID string, item models.CartItem) error {
	if item.ProductID == "" || item.SelectedSize == "" {
		return apperrors.InvalidArgument("productId and selectedSize are required")
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	if err := s.carts.PushItem(ctx, userID, item); err != nil {
		return apperrors.Internal("could not add item to cart", err)
	}
	return nil
}

// UpdateQuantity sets the quantity of the matching lines; zero removes them.
func (s *CartService) UpdateQuantity(ctx context.Context, userID string, req models.UpdateCartRequest) error {
	if req.Quantity < 0 {
		return apperrors.InvalidArgument("quantity must not be negative")
	}
	if req.Quantity == 0 {
		return s.Remove(ctx, userID, models.RemoveFromCartRequest{ProductID: req.ProductID, SelectedSize: req.SelectedSize})
	}

	matched, err := s.carts.SetQuantity(ctx, userID, req.ProductID, req.SelectedSize, req.Quantity)
	if err != nil {
		return apperrors.Internal("could not update cart", err)
	}
	if !matched {
		return apperrors.NotFound("item not in cart")
	}
	return nil
}

func (s *CartService) Remove(ctx context.Context, userID string, req models.RemoveFromCartRequest) error {
	removed, err := s.carts.PullItem(ctx, userID, req.ProductID, req.SelectedSize)
	if err != nil {
		return apperrors.Internal("could not update cart", err)
	}
	if !removed {
		return apperrors.NotFound("item not in cart")
	}
	return nil
}
