package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vstore-backend/internal/middleware"
	"vstore-backend/internal/models"
)

type WishlistHandler struct {
	wishlists Wishlists
}

func NewWishlistHandler(wishlists Wishlists) *WishlistHandler {
	return &WishlistHandler{wishlists: wishlists}
}

// GET /api/wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	w, err := h.wishlists.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// POST /api/wishlist/add
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	var req models.AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	if err := h.wishlists.Add(c.Request.Context(), middleware.UserID(c), req.ProductID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Wishlist updated"})
}
