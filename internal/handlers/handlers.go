package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"vstore-backend/internal/apperrors"
	"vstore-backend/internal/models"
)

//go:generate mockgen -destination=mock_services_test.go -package=handlers . Catalog,Accounts,Carts,Wishlists,Orders

type Catalog interface {
	List(ctx context.Context, category, search string) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
}

type Accounts interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Profile(ctx context.Context, userID string) (*models.User, error)
}

type Carts interface {
	Get(ctx context.Context, userID string) (*models.Cart, error)
	Add(ctx context.Context, userID string, item models.CartItem) error
	UpdateQuantity(ctx context.Context, userID string, req models.UpdateCartRequest) error
	Remove(ctx context.Context, userID string, req models.RemoveFromCartRequest) error
}

type Wishlists interface {
	Add(ctx context.Context, userID, productID string) error
	Get(ctx context.Context, userID string) (*models.Wishlist, error)
}

type Orders interface {
	Create(ctx context.Context, userID string, req models.CreateOrderRequest) (string, error)
	List(ctx context.Context, userID string) ([]models.Order, error)
	Get(ctx context.Context, userID, orderID string) (*models.Order, error)
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// statusFor maps an error kind to its HTTP status. Conflict shares 400 with
// InvalidArgument: duplicate signup is reported as a bad request on this API.
func statusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindInvalidArgument, apperrors.KindConflict:
		return http.StatusBadRequest
	case apperrors.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperrors.KindUnauthorized:
		return http.StatusForbidden
	case apperrors.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the status for err's kind and its client-safe reason.
// Internal causes are logged, never returned.
func respondError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	if kind == apperrors.KindInternal {
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	c.AbortWithStatusJSON(statusFor(kind), ErrorResponse{Error: apperrors.ReasonOf(err)})
}

func badRequest(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "invalid input"})
}
