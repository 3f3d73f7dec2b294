package service

import (
	"context"
	"errors"
	"testing"

	perrors "github.com/prodmgmt/product-service/internal/errors"
	"github.com/prodmgmt/product-service/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProductStore is a mock implementation of the ProductStore interface
type mockProductStore struct {
	products []store.Product
	product  store.Product
	error    error
}

func (m *mockProductStore) FindByID(_ context.Context, _ int32) (*store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.product, nil
}

func (m *mockProductStore) FindAll(_ context.Context) ([]store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.products, nil
}

func (m *mockProductStore) Create(_ context.Context, _ string, _ float64, _ int32) (*store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.product, nil
}

func (m *mockProductStore) Update(_ context.Context, _ store.Product) (*store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.product, nil
}

func (m *mockProductStore) DeleteByID(_ context.Context, _ int32) error {
	return m.error
}

func (m *mockProductStore) DecrementStock(_ context.Context, _ int32, _ int32) error {
	return m.error
}

func (m *mockProductStore) AddToStock(_ context.Context, _ int32, _ int32) error {
	return m.error
}

func (m *mockProductStore) Exists(_ context.Context, _ int32) (bool, error) {
	return false, m.error
}

func (m *mockProductStore) GenerateUniqueID(_ context.Context) (int32, error) {
	return m.product.ID, m.error
}

func Test_ProductService_FindByID(t *testing.T) {
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		productID   int32
		expected    *ProductDto
		expectError error
	}{
		{
			name: "Success - product found",
			mockStore: &mockProductStore{
				product: store.Product{ID: 123456, Name: "Toy", Price: 9.99, StockAvailable: 10},
			},
			productID:   123456,
			expected:    &ProductDto{ID: 123456, Name: "Toy", Price: 9.99, StockAvailable: 10},
			expectError: nil,
		},
		{
			name: "Error - product not found",
			mockStore: &mockProductStore{
				error: perrors.ErrProductNotFound,
			},
			productID:   123456,
			expected:    nil,
			expectError: perrors.ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			found, err := service.FindByID(context.Background(), tc.productID)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, found)
		})
	}
}

func Test_ProductService_FindAll(t *testing.T) {
	ErrStoreError := errors.New("store error")
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		expected    []ProductDto
		expectError error
	}{
		{
			name: "Success - products found",
			mockStore: &mockProductStore{
				products: []store.Product{{ID: 123456, Name: "Toy", Price: 9.99, StockAvailable: 10}},
			},
			expected:    []ProductDto{{ID: 123456, Name: "Toy", Price: 9.99, StockAvailable: 10}},
			expectError: nil,
		},
		{
			name: "Success - no products",
			mockStore: &mockProductStore{
				products: []store.Product{},
			},
			expected:    []ProductDto{},
			expectError: nil,
		},
		{
			name: "Error - store error",
			mockStore: &mockProductStore{
				error: ErrStoreError,
			},
			expected:    nil,
			expectError: ErrStoreError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			found, err := service.FindAll(context.Background())
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, found)
		})
	}
}

func Test_ProductService_Create(t *testing.T) {
	ErrStoreError := errors.New("store error")
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		product     ProductCreateDto
		expected    *ProductDto
		expectError error
	}{
		{
			name: "Success - product created with generated id",
			mockStore: &mockProductStore{
				product: store.Product{ID: 654321, Name: "Toy", Price: 100.50, StockAvailable: 10},
			},
			product:     ProductCreateDto{Name: "Toy", Price: 100.50, StockAvailable: 10},
			expected:    &ProductDto{ID: 654321, Name: "Toy", Price: 100.50, StockAvailable: 10},
			expectError: nil,
		},
		{
			name: "Error - store error",
			mockStore: &mockProductStore{
				error: ErrStoreError,
			},
			product:     ProductCreateDto{Name: "Toy", Price: 100.50, StockAvailable: 10},
			expected:    nil,
			expectError: ErrStoreError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			created, err := service.Create(context.Background(), tc.product)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, created)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, created)
		})
	}
}

func Test_ProductService_Update(t *testing.T) {
	ErrStoreError := errors.New("store error")
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		product     ProductDto
		expected    *ProductDto
		expectError error
	}{
		{
			name: "Success - product updated",
			mockStore: &mockProductStore{
				product: store.Product{ID: 123456, Name: "Updated Toy", Price: 150, StockAvailable: 20},
			},
			product:     ProductDto{ID: 123456, Name: "Updated Toy", Price: 150, StockAvailable: 20},
			expected:    &ProductDto{ID: 123456, Name: "Updated Toy", Price: 150, StockAvailable: 20},
			expectError: nil,
		},
		{
			name: "Error - product not found",
			mockStore: &mockProductStore{
				error: perrors.ErrProductNotFound,
			},
			product:     ProductDto{ID: 123456, Name: "Updated Toy", Price: 150, StockAvailable: 20},
			expected:    nil,
			expectError: perrors.ErrProductNotFound,
		},
		{
			name: "Error - store error",
			mockStore: &mockProductStore{
				error: ErrStoreError,
			},
			product:     ProductDto{ID: 123456, Name: "Updated Toy", Price: 150, StockAvailable: 20},
			expected:    nil,
			expectError: ErrStoreError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			updated, err := service.Update(context.Background(), tc.product)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, updated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, updated)
		})
	}
}

func Test_ProductService_DeleteByID(t *testing.T) {
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		expectError error
	}{
		{
			name:        "Success - product deleted",
			mockStore:   &mockProductStore{},
			expectError: nil,
		},
		{
			name: "Error - product not found",
			mockStore: &mockProductStore{
				error: perrors.ErrProductNotFound,
			},
			expectError: perrors.ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			err := service.DeleteByID(context.Background(), 123456)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_ProductService_DecrementStock(t *testing.T) {
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		expectError error
	}{
		{
			name:        "Success - stock decremented",
			mockStore:   &mockProductStore{},
			expectError: nil,
		},
		{
			name: "Error - missing product or insufficient stock",
			mockStore: &mockProductStore{
				error: perrors.ErrProductNotFound,
			},
			expectError: perrors.ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			err := service.DecrementStock(context.Background(), 123456, 5)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_ProductService_AddToStock(t *testing.T) {
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		expectError error
	}{
		{
			name:        "Success - stock added",
			mockStore:   &mockProductStore{},
			expectError: nil,
		},
		{
			name: "Error - product not found",
			mockStore: &mockProductStore{
				error: perrors.ErrProductNotFound,
			},
			expectError: perrors.ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			err := service.AddToStock(context.Background(), 123456, 5)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			require.NoError(t, err)
		})
	}
}
