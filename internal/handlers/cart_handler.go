package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vstore-backend/internal/middleware"
	"vstore-backend/internal/models"
)

type CartHandler struct {
	carts Carts
}

func NewCartHandler(carts Carts) *CartHandler {
	return &CartHandler{carts: carts}
}

// GET /api/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.carts.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// POST /api/cart/add
func (h *CartHandler) AddToCart(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c)
		return
	}
	if err := h.carts.Add(c.Request.Context(), middleware.UserID(c), item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Item added to cart"})
}

// PUT /api/cart/update
func (h *CartHandler) UpdateCart(c *gin.Context) {
	var req models.UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	if err := h.carts.UpdateQuantity(c.Request.Context(), middleware.UserID(c), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Cart updated"})
}

// POST /api/cart/remove
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	var req models.RemoveFromCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	if err := h.carts.Remove(c.Request.Context(), middleware.UserID(c), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Item removed from cart"})
}
