package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"vstore-backend/internal/auth"
	"vstore-backend/internal/config"
	"vstore-backend/internal/database"
	"vstore-backend/internal/middleware"
	"vstore-backend/internal/repository"
	"vstore-backend/internal/routes"
	"vstore-backend/internal/seed"
	"vstore-backend/internal/service"
)

const catalogCacheTTL = 2 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	db := client.Database(cfg.MongoDB)
	log.Println("connected to MongoDB database", cfg.MongoDB)

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Printf("db indexes: %v", err)
	}

	products := repository.NewProductRepository(db)
	users := repository.NewUserRepository(db)
	carts := repository.NewCartRepository(db)
	wishlists := repository.NewWishlistRepository(db)
	orders := repository.NewOrderRepository(db)

	if n, err := seed.IfEmpty(ctx, products); err != nil {
		log.Printf("seed: %v", err)
	} else if n > 0 {
		log.Printf("seeded %d products (catalog %s)", n, seed.Version)
	}

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("tokens: %v", err)
	}

	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery(), middleware.CORS(cfg.CORSOrigins))
	routes.RegisterRoutes(router, routes.Services{
		Catalog:   service.NewCatalogService(products, catalogCacheTTL),
		Accounts:  service.NewAccountService(users, auth.NewPasswordHasher(bcrypt.DefaultCost), tokens),
		Carts:     service.NewCartService(carts),
		Wishlists: service.NewWishlistService(wishlists),
		Orders:    service.NewOrderService(orders, carts, nil),
		Tokens:    tokens,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("HTTP server Shutdown: %v", err)
		}
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("db disconnect: %v", err)
		}
		close(idleConnsClosed)
	}()

	log.Println("server running on port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("listen: %v", err)
	}

	<-idleConnsClosed
	log.Println("server stopped")
}
