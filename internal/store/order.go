package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const orderColumns = `id, user_id, product_id, credits_applied, credit_value, cash_payment,
	subtotal, shipping, tax, total, status, idempotency_key, created_at, updated_at`

type CreateOrderParams struct {
	UserID         uuid.UUID
	ProductID      uuid.UUID
	CreditsApplied int
	CreditValue    decimal.Decimal
	CashPayment    decimal.Decimal
	Subtotal       decimal.Decimal
	Shipping       decimal.Decimal
	Tax            decimal.Decimal
	Total          decimal.Decimal
	Status         string
	IdempotencyKey *string
}

const sqlCreateOrder = `
INSERT INTO orders (user_id, product_id, credits_applied, credit_value, cash_payment,
	subtotal, shipping, tax, total, status, idempotency_key)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + orderColumns

func createOrder(ctx context.Context, tx *sqlx.Tx, params CreateOrderParams) (Order, error) {
	var order Order
	err := tx.GetContext(ctx, &order, sqlCreateOrder,
		params.UserID,
		params.ProductID,
		params.CreditsApplied,
		params.CreditValue,
		params.CashPayment,
		params.Subtotal,
		params.Shipping,
		params.Tax,
		params.Total,
		params.Status,
		params.IdempotencyKey,
	)
	if err != nil {
		return Order{}, fmt.Errorf("failed to insert order: %w", err)
	}
	return order, nil
}

const sqlGetOrderByIdempotencyKey = `
SELECT ` + orderColumns + `
FROM orders
WHERE user_id = $1 AND idempotency_key = $2
`

// GetOrderByIdempotencyKey returns the order a user already settled under key.
func (s *Store) GetOrderByIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) (Order, error) {
	var order Order
	err := s.db.GetContext(ctx, &order, sqlGetOrderByIdempotencyKey, userID, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Order{}, ErrNotFound
		}
		return Order{}, fmt.Errorf("failed to get order by idempotency key: %w", err)
	}
	return order, nil
}

const sqlListOrdersByUserID = `
SELECT ` + orderColumns + `
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC, id
`

// ListOrdersByUserID returns a user's orders, newest first.
func (s *Store) ListOrdersByUserID(ctx context.Context, userID uuid.UUID) ([]Order, error) {
	orders := []Order{}
	err := s.db.SelectContext(ctx, &orders, sqlListOrdersByUserID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
