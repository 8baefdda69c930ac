package models

import "time"

type Wishlist struct {
	UserID     string    `bson:"userId" json:"userId,omitempty"`
	ProductIDs []string  `bson:"productIds" json:"productIds"`
	UpdatedAt  time.Time `bson:"updatedAt,omitempty" json:"-"`
}

type AddToWishlistRequest struct {
	ProductID string `json:"productId" binding:"required"`
}
