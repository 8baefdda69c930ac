package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vstore-backend/internal/middleware"
	"vstore-backend/internal/models"
)

type OrderHandler struct {
	orders Orders
}

func NewOrderHandler(orders Orders) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// POST /api/orders
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	orderID, err := h.orders.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orderId": orderID})
}

// GET /api/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GET /api/orders/:orderId
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orders.Get(c.Request.Context(), middleware.UserID(c), c.Param("orderId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
