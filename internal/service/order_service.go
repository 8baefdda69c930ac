package service

import (
	"context"
	"errors"
	"log"
	"time"

	"vstore-backend/internal/apperrors"
	"vstore-backend/internal/models"
	"vstore-backend/internal/repository"
)

const maxOrderIDAttempts = 3

type OrderService struct {
	orders OrderStore
	carts  CartStore
	ids    OrderIDGenerator
	now    func() time.Time
}

func NewOrderService(orders OrderStore, carts CartStore, ids OrderIDGenerator) *OrderService {
	if ids == nil {
		ids = RandomOrderIDs{}
	}
	return &OrderService{orders: orders, carts: carts, ids: ids, now: time.Now}
}

// Create stores the order as submitted and then empties the caller's cart.
//
// Totals in req are trusted verbatim. The order insert and the cart clear are
// two separate writes: a failure between them leaves a placed order next to
// a full cart, and an item added to the cart while the order is being placed
// is wiped by the clear. A failed clear is logged, not returned, because the
// order already exists and a retry by the client would place it twice.
func (s *OrderService) Create(ctx context.Context, userID string, req models.CreateOrderRequest) (string, error) {
	if userID == "" {
		return "", apperrors.Unauthenticated("missing user")
	}

	now := s.now().UTC()
	order := &models.Order{
		UserID:          userID,
		Items:           req.Items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Subtotal:        req.Subtotal,
		DeliveryCharge:  req.DeliveryCharge,
		TotalAmount:     req.TotalAmount,
		Status:          models.OrderStatusConfirmed,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if order.Items == nil {
		order.Items = []models.OrderItem{}
	}

	var err error
	for attempt := 0; attempt < maxOrderIDAttempts; attempt++ {
		order.OrderID = s.ids.NewOrderID()
		err = s.orders.Insert(ctx, order)
		if !errors.Is(err, repository.ErrDuplicate) {
			break
		}
		log.Printf("order id %s already taken, regenerating", order.OrderID)
	}
	if err != nil {
		return "", apperrors.Internal("could not place order", err)
	}

	if err := s.carts.Clear(ctx, userID); err != nil {
		log.Printf("order %s placed but cart of user %s not cleared: %v", order.OrderID, userID, err)
	}
	return order.OrderID, nil
}

func (s *OrderService) List(ctx context.Context, userID string) ([]models.Order, error) {
	orders, err := s.orders.FindByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("could not load orders", err)
	}
	return orders, nil
}

// Get only returns orders owned by userID.
func (s *OrderService) Get(ctx context.Context, userID, orderID string) (*models.Order, error) {
	order, err := s.orders.FindByOrderID(ctx, userID, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("order not found")
	}
	if err != nil {
		return nil, apperrors.Internal("could not load order", err)
	}
	return order, nil
}
