package service

import (
	"context"
	"errors"
	"time"

	"github.com/patrickmn/go-cache"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vstore-backend/internal/apperrors"
	"vstore-backend/internal/models"
	"vstore-backend/internal/repository"
)

const (
	// AllCategories disables the category filter.
	AllCategories = "All"
	maxProducts   = 100
)

// CatalogService is the read-only product query surface. Products never
// change after seeding, so results are cached briefly when a TTL is given.
// Cached values are copied in and out; callers own what they receive.
type CatalogService struct {
	products ProductStore
	cache    *cache.Cache
}

func NewCatalogService(products ProductStore, cacheTTL time.Duration) *CatalogService {
	s := &CatalogService{products: products}
	if cacheTTL > 0 {
		s.cache = cache.New(cacheTTL, 2*cacheTTL)
	}
	return s
}

func (s *CatalogService) List(ctx context.Context, category, search string) ([]models.Product, error) {
	q := repository.ProductQuery{Search: search, Limit: maxProducts}
	if category != AllCategories {
		q.Category = category
	}

	key := "list:" + q.Category + "\x00" + q.Search
	if cached, ok := s.lookup(key); ok {
		return cloneProducts(cached.([]models.Product)), nil
	}

	products, err := s.products.Find(ctx, q)
	if err != nil {
		return nil, apperrors.Internal("could not fetch products", err)
	}
	s.store(key, cloneProducts(products))
	return products, nil
}

// Get fails with InvalidArgument for a malformed id and NotFound for a
// well-formed id with no product behind it.
func (s *CatalogService) Get(ctx context.Context, id string) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.InvalidArgument("invalid product ID")
	}

	key := "product:" + objID.Hex()
	if cached, ok := s.lookup(key); ok {
		p := cached.(models.Product).Clone()
		return &p, nil
	}

	product, err := s.products.FindByID(ctx, objID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("product not found")
	}
	if err != nil {
		return nil, apperrors.Internal("could not fetch product", err)
	}
	s.store(key, product.Clone())
	return product, nil
}

func cloneProducts(products []models.Product) []models.Product {
	out := make([]models.Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}

func (s *CatalogService) lookup(key string) (interface{}, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.Get(key)
}

func (s *CatalogService) store(key string, v interface{}) {
	if s.cache != nil {
		s.cache.SetDefault(key, v)
	}
}
