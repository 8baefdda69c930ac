package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vstore-backend/internal/handlers"
	"vstore-backend/internal/middleware"
)

// Services is everything the HTTP surface depends on.
type Services struct {
	Catalog   handlers.Catalog
	Accounts  handlers.Accounts
	Carts     handlers.Carts
	Wishlists handlers.Wishlists
	Orders    handlers.Orders
	Tokens    middleware.TokenVerifier
}

func RegisterRoutes(router *gin.Engine, s Services) {
	products := handlers.NewProductHandler(s.Catalog)
	auth := handlers.NewAuthHandler(s.Accounts)
	cart := handlers.NewCartHandler(s.Carts)
	wishlist := handlers.NewWishlistHandler(s.Wishlists)
	orders := handlers.NewOrderHandler(s.Orders)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "Backend running"})
	})

	api := router.Group("/api")
	{
		api.GET("/products", products.ListProducts)
		api.GET("/products/:id", products.GetProduct)

		api.POST("/auth/signup", auth.Signup)
		api.POST("/auth/login", auth.Login)
	}

	protected := api.Group("", middleware.Auth(s.Tokens))
	{
		protected.GET("/auth/profile", auth.Profile)

		protected.GET("/cart", cart.GetCart)
		protected.POST("/cart/add", cart.AddToCart)
		protected.PUT("/cart/update", cart.UpdateCart)
		protected.POST("/cart/remove", cart.RemoveFromCart)

		protected.GET("/wishlist", wishlist.GetWishlist)
		protected.POST("/wishlist/add", wishlist.AddToWishlist)

		protected.POST("/orders", orders.PlaceOrder)
		protected.GET("/orders", orders.ListOrders)
		protected.GET("/orders/:orderId", orders.GetOrder)
	}
}
