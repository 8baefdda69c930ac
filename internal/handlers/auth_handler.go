package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vstore-backend/internal/middleware"
	"vstore-backend/internal/models"
)

type AuthHandler struct {
	accounts Accounts
}

func NewAuthHandler(accounts Accounts) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	res, err := h.accounts.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	res, err := h.accounts.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.accounts.Profile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
