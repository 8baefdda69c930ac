package models

import "time"

// CartItem is one cart line. Repeated adds of the same product and size are
// kept as separate lines.
type CartItem struct {
	ProductID    string `bson:"productId" json:"productId" binding:"required"`
	SelectedSize string `bson:"selectedSize" json:"selectedSize" binding:"required"`
	Quantity     int    `bson:"quantity" json:"quantity" binding:"omitempty,min=1"`
}

// Cart is keyed by the owning user's id; at most one exists per user.
type Cart struct {
	UserID    string     `bson:"userId" json:"userId,omitempty"`
	Items     []CartItem `bson:"items" json:"items"`
	UpdatedAt time.Time  `bson:"updatedAt,omitempty" json:"-"`
}

type UpdateCartRequest struct {
	ProductID    string `json:"productId" binding:"required"`
	SelectedSize string `json:"selectedSize" binding:"required"`
	Quantity     int    `json:"quantity" binding:"gte=0"`
}

type RemoveFromCartRequest struct {
	ProductID    string `json:"productId" binding:"required"`
	SelectedSize string `json:"selectedSize" binding:"required"`
}
