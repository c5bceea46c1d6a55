package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/221FA04614/AuraShop-main/model"
)

// In-memory implementations of the store interfaces. They mirror the
// Postgres semantics (not-found, unique constraints, product population)
// and back the unit tests and local development without a database.

type MemoryUserStore struct {
	mu     sync.RWMutex
	nextID uint
	users  map[uint]model.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[uint]model.User)}
}

func (s *MemoryUserStore) Create(ctx context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return ErrDuplicate
		}
	}
	s.nextID++
	u.ID = s.nextID
	s.users[u.ID] = *u
	return nil
}

func (s *MemoryUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) GetByID(ctx context.Context, id uint) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := u
	return &out, nil
}

func (s *MemoryUserStore) Update(ctx context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return ErrNotFound
	}
	s.users[u.ID] = *u
	return nil
}

type MemoryProductStore struct {
	mu       sync.RWMutex
	nextID   uint
	products map[uint]model.Product
}

func NewMemoryProductStore() *MemoryProductStore {
	return &MemoryProductStore{products: make(map[uint]model.Product)}
}

func (s *MemoryProductStore) List(ctx context.Context, category string, featuredOnly bool) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Product
	for _, p := range s.products {
		if category != "" && p.Category != category {
			continue
		}
		if category == "" && featuredOnly && !p.Featured {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryProductStore) Get(ctx context.Context, id uint) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := p
	return &out, nil
}

func (s *MemoryProductStore) Categories(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]bool)
	var out []string
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (s *MemoryProductStore) Create(ctx context.Context, p *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	p.ID = s.nextID
	s.products[p.ID] = *p
	return nil
}

func (s *MemoryProductStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.products)), nil
}

func (s *MemoryProductStore) Search(ctx context.Context, query string) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q := strings.ToLower(query)
	var out []model.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Update replaces a product in place. Only the memory store needs it; the
// catalog is read-only from the request path, so it is not part of
// ProductStore.
func (s *MemoryProductStore) Update(p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

type MemoryCartStore struct {
	mu     sync.RWMutex
	nextID uint
	items  map[uint]model.CartItem

	// Products, when set, is used to populate CartItem.Product the way the
	// Postgres store preloads it.
	Products *MemoryProductStore
}

func NewMemoryCartStore(products *MemoryProductStore) *MemoryCartStore {
	return &MemoryCartStore{items: make(map[uint]model.CartItem), Products: products}
}

func (s *MemoryCartStore) ListByUser(ctx context.Context, userID uint) ([]model.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.CartItem
	for _, it := range s.items {
		if it.UserID != userID {
			continue
		}
		if s.Products != nil {
			if p, err := s.Products.Get(ctx, it.ProductID); err == nil {
				it.Product = *p
			}
		}
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryCartStore) Find(ctx context.Context, userID, productID uint, size, color string) (*model.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.UserID == userID && it.ProductID == productID && it.Size == size && it.Color == color {
			out := it
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryCartStore) Get(ctx context.Context, id, userID uint) (*model.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.items[id]
	if !ok || it.UserID != userID {
		return nil, ErrNotFound
	}
	out := it
	return &out, nil
}

func (s *MemoryCartStore) Create(ctx context.Context, item *model.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.UserID == item.UserID && it.ProductID == item.ProductID &&
			it.Size == item.Size && it.Color == item.Color {
			return ErrDuplicate
		}
	}
	s.nextID++
	item.ID = s.nextID
	s.items[item.ID] = *item
	return nil
}

func (s *MemoryCartStore) Update(ctx context.Context, item *model.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[item.ID]; !ok {
		return ErrNotFound
	}
	s.items[item.ID] = *item
	return nil
}

func (s *MemoryCartStore) Delete(ctx context.Context, id, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok || it.UserID != userID {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *MemoryCartStore) Clear(ctx context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, it := range s.items {
		if it.UserID == userID {
			delete(s.items, id)
		}
	}
	return nil
}

type MemoryOrderStore struct {
	mu     sync.RWMutex
	nextID uint
	orders map[uint]model.Order
}

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{orders: make(map[uint]model.Order)}
}

func (s *MemoryOrderStore) Create(ctx context.Context, o *model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.orders {
		if existing.StripeSessionID == o.StripeSessionID {
			return ErrDuplicate
		}
	}
	s.nextID++
	o.ID = s.nextID
	s.orders[o.ID] = *o
	return nil
}

func (s *MemoryOrderStore) ListByUser(ctx context.Context, userID uint) ([]model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *MemoryOrderStore) Get(ctx context.Context, id, userID uint) (*model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok || o.UserID != userID {
		return nil, ErrNotFound
	}
	out := o
	return &out, nil
}

func (s *MemoryOrderStore) GetBySessionID(ctx context.Context, sessionID string) (*model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.StripeSessionID == sessionID {
			out := o
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// Count returns the number of stored orders, used by tests asserting the
// idempotency gate.
func (s *MemoryOrderStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}
