package store

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	perrors "github.com/prodmgmt/product-service/internal/errors"
)

const (
	sqlFindByID = `SELECT id, name, price, stock_available FROM products WHERE id = $1`
	sqlFindAll  = `SELECT id, name, price, stock_available FROM products`
	sqlInsert   = `INSERT INTO products (id, name, price, stock_available)
	               VALUES ($1, $2, $3, $4)
	               RETURNING id, name, price, stock_available`
	sqlUpdate = `UPDATE products SET name = $2, price = $3, stock_available = $4
	             WHERE id = $1
	             RETURNING id, name, price, stock_available`
	sqlDelete = `DELETE FROM products WHERE id = $1`
	// The stock guard lives in the WHERE clause so the decrement is a single
	// atomic statement: no row is touched unless the full quantity fits.
	sqlDecrementStock = `UPDATE products SET stock_available = stock_available - $2
	                     WHERE id = $1 AND stock_available >= $2`
	sqlAddToStock = `UPDATE products SET stock_available = stock_available + $2 WHERE id = $1`
	sqlExists     = `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`
)

// pgUniqueViolation is the SQLSTATE for duplicate key errors.
const pgUniqueViolation = "23505"

// PgStore implements ProductStore using PostgreSQL as the data store.
type PgStore struct {
	db *pgxpool.Pool

	// rng is the injected source for id generation; guarded because
	// math/rand/v2 sources are not safe for concurrent use.
	rngMu sync.Mutex
	rng   *rand.Rand
}

var _ ProductStore = (*PgStore)(nil)

// NewPgStore creates a new instance of ProductStore using a PostgreSQL connection pool
// and the given random source for id generation.
func NewPgStore(dbp *pgxpool.Pool, rng *rand.Rand) *PgStore {
	return &PgStore{
		db:  dbp,
		rng: rng,
	}
}

// FindByID retrieves a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) FindByID(ctx context.Context, id int32) (*Product, error) {
	var product Product
	err := p.db.QueryRow(ctx, sqlFindByID, id).
		Scan(&product.ID, &product.Name, &product.Price, &product.StockAvailable)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return &product, nil
}

// FindAll retrieves every product row. Order follows the table scan and is not guaranteed.
func (p *PgStore) FindAll(ctx context.Context) ([]Product, error) {
	rows, err := p.db.Query(ctx, sqlFindAll)
	if err != nil {
		return nil, fmt.Errorf("failed to find all products: %w", err)
	}
	products, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Product])
	if err != nil {
		return nil, fmt.Errorf("failed to collect products: %w", err)
	}
	return products, nil
}

// Create inserts a new product under a freshly generated id and returns the stored row.
// A concurrent creation can win the same id between the existence check and the
// insert; the unique-violation is caught and the id is sampled again.
func (p *PgStore) Create(ctx context.Context, name string, price float64, stock int32) (*Product, error) {
	for {
		id, err := p.GenerateUniqueID(ctx)
		if err != nil {
			return nil, err
		}
		var product Product
		err = p.db.QueryRow(ctx, sqlInsert, id, name, price, stock).
			Scan(&product.ID, &product.Name, &product.Price, &product.StockAvailable)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				continue
			}
			return nil, fmt.Errorf("failed to create product: %w", err)
		}
		return &product, nil
	}
}

// Update overwrites all non-id fields of an existing product.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) Update(ctx context.Context, product Product) (*Product, error) {
	var updated Product
	err := p.db.QueryRow(ctx, sqlUpdate, product.ID, product.Name, product.Price, product.StockAvailable).
		Scan(&updated.ID, &updated.Name, &updated.Price, &updated.StockAvailable)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &updated, nil
}

// DeleteByID removes a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) DeleteByID(ctx context.Context, id int32) error {
	ct, err := p.db.Exec(ctx, sqlDelete, id)
	if err != nil {
		return fmt.Errorf("failed to delete product by ID: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return perrors.ErrProductNotFound
	}
	return nil
}

// DecrementStock atomically subtracts quantity from a product's stock.
// Returns ErrProductNotFound when the product is missing or the stock is
// insufficient; the affected-row count cannot tell the two apart.
func (p *PgStore) DecrementStock(ctx context.Context, id int32, quantity int32) error {
	ct, err := p.db.Exec(ctx, sqlDecrementStock, id, quantity)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return perrors.ErrProductNotFound
	}
	return nil
}

// AddToStock atomically adds quantity to a product's stock.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) AddToStock(ctx context.Context, id int32, quantity int32) error {
	ct, err := p.db.Exec(ctx, sqlAddToStock, id, quantity)
	if err != nil {
		return fmt.Errorf("failed to add to stock: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return perrors.ErrProductNotFound
	}
	return nil
}

// Exists reports whether a product with the given ID currently exists.
func (p *PgStore) Exists(ctx context.Context, id int32) (bool, error) {
	var exists bool
	if err := p.db.QueryRow(ctx, sqlExists, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check product existence: %w", err)
	}
	return exists, nil
}

// GenerateUniqueID samples uniform 6-digit ids, re-checking existence and
// retrying on collision. There is no iteration cap; with at most 900000
// possible ids and low occupancy the loop terminates almost surely.
func (p *PgStore) GenerateUniqueID(ctx context.Context) (int32, error) {
	for {
		p.rngMu.Lock()
		id := MinProductID + p.rng.Int32N(MaxProductID-MinProductID+1)
		p.rngMu.Unlock()

		exists, err := p.Exists(ctx, id)
		if err != nil {
			return 0, err
		}
		if !exists {
			return id, nil
		}
	}
}
