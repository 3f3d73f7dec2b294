// Package store provides an interface for product storage operations.
package store

import (
	"context"
)

// Product ids are random 6-digit integers assigned by the store, never by the
// caller and never by the database.
const (
	MinProductID int32 = 100000
	MaxProductID int32 = 999999
)

// Product represents a product row.
type Product struct {
	ID             int32
	Name           string
	Price          float64 // stored as NUMERIC(18,2)
	StockAvailable int32
}

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int32) (*Product, error)

	// FindAll returns all products in the store's natural scan order.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// Create adds a new product with a freshly generated unique id.
	// Any id supplied by the caller is irrelevant: the store always assigns its own.
	Create(ctx context.Context, name string, price float64, stock int32) (*Product, error)

	// Update overwrites all non-id fields of an existing product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, product Product) (*Product, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id int32) error

	// DecrementStock subtracts quantity from a product's stock, all or nothing.
	// Returns ErrProductNotFound if the product is missing or its stock is
	// lower than quantity. Quantity positivity is the caller's concern.
	DecrementStock(ctx context.Context, id int32, quantity int32) error

	// AddToStock adds quantity to a product's stock. No upper bound.
	// Returns ErrProductNotFound if no product exists with the given ID.
	AddToStock(ctx context.Context, id int32, quantity int32) error

	// Exists reports whether a product with the given ID currently exists.
	Exists(ctx context.Context, id int32) (bool, error)

	// GenerateUniqueID draws random 6-digit ids until one does not collide
	// with an existing row. Ids of deleted products may be handed out again.
	GenerateUniqueID(ctx context.Context) (int32, error)
}
