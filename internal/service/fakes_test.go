package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vstore-backend/internal/models"
	"vstore-backend/internal/repository"
)

// In-memory stores mirroring the single-document atomicity of the Mongo
// repositories: every method holds the lock for its whole update.

type memProducts struct {
	mu       sync.Mutex
	products []models.Product
	finds    int
	err      error
}

func (m *memProducts) Find(_ context.Context, q repository.ProductQuery) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.finds++
	if m.err != nil {
		return nil, m.err
	}
	out := []models.Product{}
	for _, stored := range m.products {
		p := stored.Clone()
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.Search != "" {
			term := strings.ToLower(q.Search)
			if !strings.Contains(strings.ToLower(p.Name), term) && !strings.Contains(strings.ToLower(p.Description), term) {
				continue
			}
		}
		p.ApplyDefaults()
		out = append(out, p)
		if q.Limit > 0 && int64(len(out)) == q.Limit {
			break
		}
	}
	return out, nil
}

func (m *memProducts) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.finds++
	if m.err != nil {
		return nil, m.err
	}
	for _, stored := range m.products {
		if stored.ID == id {
			p := stored.Clone()
			p.ApplyDefaults()
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memUsers struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[primitive.ObjectID]models.User{}}
}

func (m *memUsers) Create(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	m.users[user.ID] = *user
	return nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUsers) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (m *memUsers) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

type memCarts struct {
	mu       sync.Mutex
	carts    map[string][]models.CartItem
	clearErr error
}

func newMemCarts() *memCarts {
	return &memCarts{carts: map[string][]models.CartItem{}}
}

func (m *memCarts) FindByUser(_ context.Context, userID string) (*models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items, ok := m.carts[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &models.Cart{UserID: userID, Items: append([]models.CartItem{}, items...)}, nil
}

func (m *memCarts) PushItem(_ context.Context, userID string, item models.CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[userID] = append(m.carts[userID], item)
	return nil
}

func (m *memCarts) SetQuantity(_ context.Context, userID, productID, size string, quantity int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	matched := false
	for i, it := range m.carts[userID] {
		if it.ProductID == productID && it.SelectedSize == size {
			m.carts[userID][i].Quantity = quantity
			matched = true
		}
	}
	return matched, nil
}

func (m *memCarts) PullItem(_ context.Context, userID, productID, size string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items, ok := m.carts[userID]
	if !ok {
		return false, nil
	}
	kept := items[:0:0]
	for _, it := range items {
		if it.ProductID != productID || it.SelectedSize != size {
			kept = append(kept, it)
		}
	}
	m.carts[userID] = kept
	return len(kept) != len(items), nil
}

func (m *memCarts) Clear(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.clearErr != nil {
		return m.clearErr
	}
	if _, ok := m.carts[userID]; ok {
		m.carts[userID] = []models.CartItem{}
	}
	return nil
}

type memWishlists struct {
	mu    sync.Mutex
	lists map[string][]string
}

func newMemWishlists() *memWishlists {
	return &memWishlists{lists: map[string][]string{}}
}

func (m *memWishlists) AddProduct(_ context.Context, userID, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range m.lists[userID] {
		if id == productID {
			return nil
		}
	}
	m.lists[userID] = append(m.lists[userID], productID)
	return nil
}

func (m *memWishlists) FindByUser(_ context.Context, userID string) (*models.Wishlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids, ok := m.lists[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &models.Wishlist{UserID: userID, ProductIDs: append([]string{}, ids...)}, nil
}

type memOrders struct {
	mu     sync.Mutex
	orders []models.Order
	err    error
}

func (m *memOrders) Insert(_ context.Context, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, o := range m.orders {
		if o.OrderID == order.OrderID {
			return repository.ErrDuplicate
		}
	}
	order.ID = primitive.NewObjectID()
	m.orders = append(m.orders, *order)
	return nil
}

func (m *memOrders) FindByUser(_ context.Context, userID string) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Order{}
	for i := len(m.orders) - 1; i >= 0; i-- {
		if m.orders[i].UserID == userID {
			out = append(out, m.orders[i])
		}
	}
	return out, nil
}

func (m *memOrders) FindByOrderID(_ context.Context, userID, orderID string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.UserID == userID && o.OrderID == orderID {
			return &o, nil
		}
	}
	return nil, repository.ErrNotFound
}

// plainHasher keeps tests fast; the bcrypt hasher has its own tests.
type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "hashed:" + p, nil }
func (plainHasher) Verify(p, d string) bool      { return d == "hashed:"+p }

type failingHasher struct{}

func (failingHasher) Hash(string) (string, error) { return "", errors.New("hash failed") }
func (failingHasher) Verify(string, string) bool  { return false }

// sequenceIDs replays ids in order, then repeats the last one.
type sequenceIDs struct {
	mu  sync.Mutex
	ids []string
	i   int
}

func (s *sequenceIDs) NewOrderID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.ids[s.i]
	if s.i < len(s.ids)-1 {
		s.i++
	}
	return id
}
