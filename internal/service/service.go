// Package service provides the implementation of product-related business logic.
package service

import (
	"context"
	"fmt"

	"github.com/prodmgmt/product-service/internal/store"
)

// ProductService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int32) (*ProductDto, error)

	// FindAll returns all available products.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]ProductDto, error)

	// Create adds a new product to the system; the stored product carries a
	// freshly generated id regardless of anything the caller supplied.
	Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// Update overwrites all non-id fields of an existing product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, product ProductDto) (*ProductDto, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id int32) error

	// DecrementStock subtracts quantity from a product's stock, all or nothing.
	// Returns ErrProductNotFound if the product is missing or stock is insufficient.
	DecrementStock(ctx context.Context, id int32, quantity int32) error

	// AddToStock adds quantity to a product's stock.
	// Returns ErrProductNotFound if no product exists with the given ID.
	AddToStock(ctx context.Context, id int32, quantity int32) error
}

// Service implements ProductService and provides methods to manage products.
type Service struct {
	repository store.ProductStore
}

var _ ProductService = (*Service)(nil)

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{
		repository: repo,
	}
}

// ProductCreateDto represents the data transfer object for creating a new product.
// It has no id field: ids are assigned by the store, so a caller-supplied id is
// dropped during decoding.
type ProductCreateDto struct {
	Name           string  `json:"name"           validate:"required"`
	Price          float64 `json:"price"`
	StockAvailable int32   `json:"stockAvailable" validate:"gte=0"`
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID             int32   `json:"id"`
	Name           string  `json:"name"           validate:"required"`
	Price          float64 `json:"price"`
	StockAvailable int32   `json:"stockAvailable" validate:"gte=0"`
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
func (s *Service) FindByID(ctx context.Context, id int32) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}
	return toDto(product), nil
}

// FindAll retrieves all products and returns them as ProductDTOs.
func (s *Service) FindAll(ctx context.Context) ([]ProductDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	productDTOs := make([]ProductDto, len(products))
	for i, item := range products {
		productDTOs[i] = *toDto(&item)
	}
	return productDTOs, nil
}

// Create creates a new product and returns it as a ProductDto.
func (s *Service) Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	p, err := s.repository.Create(ctx, product.Name, product.Price, product.StockAvailable)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return toDto(p), nil
}

// Update modifies an existing product's details and returns the updated product.
func (s *Service) Update(ctx context.Context, product ProductDto) (*ProductDto, error) {
	updated, err := s.repository.Update(ctx, store.Product{
		ID:             product.ID,
		Name:           product.Name,
		Price:          product.Price,
		StockAvailable: product.StockAvailable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %d: %w", product.ID, err)
	}
	return toDto(updated), nil
}

// DeleteByID deletes a product by its ID.
func (s *Service) DeleteByID(ctx context.Context, id int32) error {
	if err := s.repository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product with ID %d: %w", id, err)
	}
	return nil
}

// DecrementStock subtracts quantity from a product's stock.
func (s *Service) DecrementStock(ctx context.Context, id int32, quantity int32) error {
	if err := s.repository.DecrementStock(ctx, id, quantity); err != nil {
		return fmt.Errorf("failed to decrement stock for product with ID %d: %w", id, err)
	}
	return nil
}

// AddToStock adds quantity to a product's stock.
func (s *Service) AddToStock(ctx context.Context, id int32, quantity int32) error {
	if err := s.repository.AddToStock(ctx, id, quantity); err != nil {
		return fmt.Errorf("failed to add stock for product with ID %d: %w", id, err)
	}
	return nil
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		ID:             product.ID,
		Name:           product.Name,
		Price:          product.Price,
		StockAvailable: product.StockAvailable,
	}
}
