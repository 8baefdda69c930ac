package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"vstore-backend/internal/config"
	"vstore-backend/internal/database"
	"vstore-backend/internal/repository"
	"vstore-backend/internal/seed"
)

func main() {
	force := flag.Bool("force", false, "insert the catalog even when products already exist")
	flag.Parse()

	if err := run(context.Background(), *force); err != nil {
		log.Fatalf("seed: %v", err)
	}
}

func run(ctx context.Context, force bool) error {
	cfg, err := config.LoadDatabase()
	if err != nil {
		return err
	}

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("db disconnect: %v", err)
		}
	}()

	products := repository.NewProductRepository(client.Database(cfg.MongoDB))

	var n int
	if force {
		n, err = seed.Force(ctx, products)
	} else {
		n, err = seed.IfEmpty(ctx, products)
	}
	if err != nil {
		return fmt.Errorf("after %d inserted: %w", n, err)
	}
	if n == 0 {
		log.Println("products collection not empty, nothing inserted (use -force to insert anyway)")
		return nil
	}
	log.Printf("inserted %d products (catalog %s)", n, seed.Version)
	return nil
}
