// Package seed holds the starter catalog loaded into an empty products
// collection.
package seed

import (
	"context"
	"fmt"

	"vstore-backend/internal/models"
)

// Version identifies the catalog below. Bump it when the list changes.
const Version = "2024.1"

type Store interface {
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, products []models.Product) (int, error)
}

// IfEmpty inserts Products when the collection has no documents and reports
// how many were inserted. A non-empty catalog is left untouched.
func IfEmpty(ctx context.Context, store Store) (int, error) {
	count, err := store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return 0, nil
	}
	return Force(ctx, store)
}

// Force inserts Products regardless of what is already stored.
func Force(ctx context.Context, store Store) (int, error) {
	n, err := store.InsertMany(ctx, Products())
	if err != nil {
		return n, fmt.Errorf("insert seed products: %w", err)
	}
	return n, nil
}
