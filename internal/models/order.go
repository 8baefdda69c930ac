package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
)

type ShippingAddress struct {
	FullName string `bson:"fullName" json:"fullName" binding:"required"`
	Email    string `bson:"email" json:"email" binding:"required"`
	Phone    string `bson:"phone" json:"phone" binding:"required"`
	Address  string `bson:"address" json:"address" binding:"required"`
	City     string `bson:"city" json:"city" binding:"required"`
	State    string `bson:"state" json:"state" binding:"required"`
	Pincode  string `bson:"pincode" json:"pincode" binding:"required"`
}

// OrderItem is a snapshot of the product taken by the client at checkout.
type OrderItem struct {
	ProductID    string  `bson:"productId" json:"productId" binding:"required"`
	ProductName  string  `bson:"productName" json:"productName" binding:"required"`
	ProductImage string  `bson:"productImage" json:"productImage"`
	SelectedSize string  `bson:"selectedSize" json:"selectedSize" binding:"required"`
	Quantity     int     `bson:"quantity" json:"quantity" binding:"min=1"`
	Price        float64 `bson:"price" json:"price" binding:"gte=0"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	OrderID         string             `bson:"orderId" json:"orderId"`
	UserID          string             `bson:"userId" json:"userId"`
	Items           []OrderItem        `bson:"items" json:"items"`
	ShippingAddress ShippingAddress    `bson:"shippingAddress" json:"shippingAddress"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`
	Subtotal        float64            `bson:"subtotal" json:"subtotal"`
	DeliveryCharge  float64            `bson:"deliveryCharge" json:"deliveryCharge"`
	TotalAmount     float64            `bson:"totalAmount" json:"totalAmount"`
	Status          OrderStatus        `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateOrderRequest is accepted as sent. Subtotal, DeliveryCharge and
// TotalAmount are computed by the client and are not checked against catalog
// prices; treat them as untrusted input.
type CreateOrderRequest struct {
	Items           []OrderItem     `json:"items" binding:"required,dive"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod" binding:"required"`
	Subtotal        float64         `json:"subtotal" binding:"gte=0"`
	DeliveryCharge  float64         `json:"deliveryCharge" binding:"gte=0"`
	TotalAmount     float64         `json:"totalAmount" binding:"gte=0"`
}
