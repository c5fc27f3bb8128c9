package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlListInStockProducts = `
SELECT id, name, description, image_url, price, in_stock, created_at, updated_at
FROM products
WHERE in_stock = TRUE
ORDER BY created_at, id
`

// ListInStockProducts returns every product currently available.
func (s *Store) ListInStockProducts(ctx context.Context) ([]Product, error) {
	products := []Product{}
	err := s.db.SelectContext(ctx, &products, sqlListInStockProducts)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

const sqlGetProductByID = `
SELECT id, name, description, image_url, price, in_stock, created_at, updated_at
FROM products
WHERE id = $1
`

func (s *Store) GetProductByID(ctx context.Context, productID uuid.UUID) (Product, error) {
	var product Product
	err := s.db.GetContext(ctx, &product, sqlGetProductByID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}
