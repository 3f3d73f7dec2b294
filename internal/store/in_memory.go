package store

import (
	"context"
	"math/rand/v2"
	"sync"

	perrors "github.com/prodmgmt/product-service/internal/errors"
)

// inMemory implements ProductStore using an in-memory map.
// It mirrors the all-or-nothing semantics of the Postgres store and is used by tests.
type inMemory struct {
	mu       sync.RWMutex
	rng      *rand.Rand
	products map[int32]Product
}

var _ ProductStore = (*inMemory)(nil)

// NewInMemoryStore creates a new instance of ProductStore backed by a map.
func NewInMemoryStore(rng *rand.Rand) ProductStore {
	return &inMemory{
		rng:      rng,
		products: make(map[int32]Product),
	}
}

// FindByID retrieves a product by its ID.
func (s *inMemory) FindByID(_ context.Context, id int32) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, perrors.ErrProductNotFound
	}
	return &p, nil
}

// FindAll retrieves all products. Map iteration order, deliberately unstable.
func (s *inMemory) FindAll(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		list = append(list, p)
	}
	return list, nil
}

// Create adds a new product under a freshly generated id and returns it.
func (s *inMemory) Create(_ context.Context, name string, price float64, stock int32) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := Product{
		ID:             s.generateUniqueIDLocked(),
		Name:           name,
		Price:          price,
		StockAvailable: stock,
	}
	s.products[product.ID] = product
	return &product, nil
}

// Update overwrites all non-id fields of an existing product.
func (s *inMemory) Update(_ context.Context, product Product) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[product.ID]; !ok {
		return nil, perrors.ErrProductNotFound
	}
	s.products[product.ID] = product
	return &product, nil
}

// DeleteByID removes a product by its ID.
func (s *inMemory) DeleteByID(_ context.Context, id int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return perrors.ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}

// DecrementStock subtracts quantity from a product's stock, all or nothing.
func (s *inMemory) DecrementStock(_ context.Context, id int32, quantity int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok || p.StockAvailable < quantity {
		return perrors.ErrProductNotFound
	}
	p.StockAvailable -= quantity
	s.products[id] = p
	return nil
}

// AddToStock adds quantity to a product's stock.
func (s *inMemory) AddToStock(_ context.Context, id int32, quantity int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return perrors.ErrProductNotFound
	}
	p.StockAvailable += quantity
	s.products[id] = p
	return nil
}

// Exists reports whether a product with the given ID currently exists.
func (s *inMemory) Exists(_ context.Context, id int32) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.products[id]
	return ok, nil
}

// GenerateUniqueID samples 6-digit ids until one is free.
func (s *inMemory) GenerateUniqueID(_ context.Context) (int32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generateUniqueIDLocked(), nil
}

func (s *inMemory) generateUniqueIDLocked() int32 {
	for {
		id := MinProductID + s.rng.Int32N(MaxProductID-MinProductID+1)
		if _, taken := s.products[id]; !taken {
			return id
		}
	}
}
