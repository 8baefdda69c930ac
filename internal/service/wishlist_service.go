package service

import (
	"context"
	"errors"

	"vstore-backend/internal/apperrors"
	"vstore-backend/internal/models"
	"vstore-backend/internal/repository"
)

type WishlistService struct {
	wishlists WishlistStore
}

func NewWishlistService(wishlists WishlistStore) *WishlistService {
	return &WishlistService{wishlists: wishlists}
}

// Add is idempotent per product.
func (s *WishlistService) Add(ctx context.Context, userID, productID string) error {
	if productID == "" {
		return apperrors.InvalidArgument("productId is required")
	}
	if err := s.wishlists.AddProduct(ctx, userID, productID); err != nil {
		return apperrors.Internal("could not update wishlist", err)
	}
	return nil
}

func (s *WishlistService) Get(ctx context.Context, userID string) (*models.Wishlist, error) {
	w, err := s.wishlists.FindByUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return &models.Wishlist{UserID: userID, ProductIDs: []string{}}, nil
	}
	if err != nil {
		return nil, apperrors.Internal("could not load wishlist", err)
	}
	return w, nil
}
