package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	reKeyLookup   = `FROM orders\s+WHERE user_id = \$1 AND idempotency_key = \$2`
	reDebit       = `UPDATE users\s+SET credits = credits - \$2`
	reInsertOrder = `INSERT INTO orders`
	reUpsertDay   = `INSERT INTO daily_metrics`
	reCredits     = `SELECT credits FROM users WHERE id = \$1`
)

func settleParams(userID, productID uuid.UUID, key string) SettleRedemptionParams {
	return SettleRedemptionParams{
		UserID:         userID,
		ProductID:      productID,
		CreditsApplied: 100,
		CreditValue:    decimal.RequireFromString("3.00"),
		CashPayment:    decimal.RequireFromString("28.9792"),
		Subtotal:       decimal.RequireFromString("24.99"),
		Shipping:       decimal.RequireFromString("4.99"),
		Tax:            decimal.RequireFromString("1.9992"),
		Total:          decimal.RequireFromString("31.9792"),
		IdempotencyKey: key,
		Day:            time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC),
	}
}

func orderRows(orderID, userID, productID uuid.UUID, credits int, key interface{}) *sqlmock.Rows {
	return sqlmock.NewRows(orderRowColumns).AddRow(
		orderID.String(), userID.String(), productID.String(), credits,
		"3.00", "28.9792", "24.99", "4.99", "1.9992", "31.9792",
		OrderStatusCompleted, key, fixedTime, fixedTime,
	)
}

func TestStore_SettleRedemption(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	orderID := uuid.New()

	t.Run("settles without an idempotency key", func(t *testing.T) {
		t.Parallel()
		store, mock := newMockStore(t)
		params := settleParams(userID, productID, "")

		mock.ExpectBegin()
		mock.ExpectQuery(reDebit).
			WithArgs(userID, 100).
			WillReturnRows(sqlmock.NewRows([]string{"credits"}).AddRow(1150))
		mock.ExpectQuery(reInsertOrder).
			WithArgs(userID, productID, 100,
				params.CreditValue, params.CashPayment, params.Subtotal,
				params.Shipping, params.Tax, params.Total,
				OrderStatusCompleted, nil).
			WillReturnRows(orderRows(orderID, userID, productID, 100, nil))
		mock.ExpectExec(reUpsertDay).
			WithArgs("2025-03-14").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		result, err := store.SettleRedemption(ctx, params)
		require.NoError(t, err)
		assert.False(t, result.Replayed)
		assert.Equal(t, 1150, result.RemainingCredits)
		assert.Equal(t, orderID, result.Order.ID)
		assert.Equal(t, OrderStatusCompleted, result.Order.Status)
		assert.True(t, result.Order.CashPayment.Equal(params.CashPayment))
		assert.Nil(t, result.Order.IdempotencyKey)
	})

	t.Run("settles with a fresh idempotency key", func(t *testing.T) {
		t.Parallel()
		store, mock := newMockStore(t)
		params := settleParams(userID, productID, "key-1")

		mock.ExpectBegin()
		mock.ExpectQuery(reKeyLookup).
			WithArgs(userID, "key-1").
			WillReturnRows(sqlmock.NewRows(orderRowColumns))
		mock.ExpectQuery(reDebit).
			WithArgs(userID, 100).
			WillReturnRows(sqlmock.NewRows([]string{"credits"}).AddRow(1150))
		mock.ExpectQuery(reInsertOrder).
			WithArgs(userID, productID, 100,
				params.CreditValue, params.CashPayment, params.Subtotal,
				params.Shipping, params.Tax, params.Total,
				OrderStatusCompleted, "key-1").
			WillReturnRows(orderRows(orderID, userID, productID, 100, "key-1"))
		mock.ExpectExec(reUpsertDay).
			WithArgs("2025-03-14").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		result, err := store.SettleRedemption(ctx, params)
		require.NoError(t, err)
		assert.False(t, result.Replayed)
		require.NotNil(t, result.Order.IdempotencyKey)
		assert.Equal(t, "key-1", *result.Order.IdempotencyKey)
	})

	t.Run("insufficient balance rolls back before any write", func(t *testing.T) {
		t.Parallel()
		store, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery(reDebit).
			WithArgs(userID, 100).
			WillReturnRows(sqlmock.NewRows([]string{"credits"}))
		mock.ExpectRollback()

		_, err := store.SettleRedemption(ctx, settleParams(userID, productID, ""))
		assert.ErrorIs(t, err, ErrInsufficientCredits)
	})

	t.Run("metrics failure rolls back the debit and order", func(t *testing.T) {
		t.Parallel()
		store, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery(reDebit).
			WithArgs(userID, 100).
			WillReturnRows(sqlmock.NewRows([]string{"credits"}).AddRow(1150))
		mock.ExpectQuery(reInsertOrder).
			WillReturnRows(orderRows(orderID, userID, productID, 100, nil))
		mock.ExpectExec(reUpsertDay).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		_, err := store.SettleRedemption(ctx, settleParams(userID, productID, ""))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "daily metrics")
	})

	t.Run("replays a settled key without charging again", func(t *testing.T) {
		t.Parallel()
		store, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery(reKeyLookup).
			WithArgs(userID, "key-1").
			WillReturnRows(orderRows(orderID, userID, productID, 100, "key-1"))
		mock.ExpectQuery(reCredits).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"credits"}).AddRow(1150))
		mock.ExpectCommit()

		result, err := store.SettleRedemption(ctx, settleParams(userID, productID, "key-1"))
		require.NoError(t, err)
		assert.True(t, result.Replayed)
		assert.Equal(t, orderID, result.Order.ID)
		assert.Equal(t, 1150, result.RemainingCredits)
	})

	t.Run("key reused for a different product conflicts", func(t *testing.T) {
		t.Parallel()
		store, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery(reKeyLookup).
			WithArgs(userID, "key-1").
			WillReturnRows(orderRows(orderID, userID, uuid.New(), 100, "key-1"))
		mock.ExpectRollback()

		_, err := store.SettleRedemption(ctx, settleParams(userID, productID, "key-1"))
		assert.ErrorIs(t, err, ErrIdempotencyConflict)
	})

	t.Run("concurrent insert of the same key replays the winner", func(t *testing.T) {
		t.Parallel()
		store, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery(reKeyLookup).
			WithArgs(userID, "key-1").
			WillReturnRows(sqlmock.NewRows(orderRowColumns))
		mock.ExpectQuery(reDebit).
			WithArgs(userID, 100).
			WillReturnRows(sqlmock.NewRows([]string{"credits"}).AddRow(1150))
		mock.ExpectQuery(reInsertOrder).
			WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})
		mock.ExpectRollback()
		mock.ExpectQuery(reKeyLookup).
			WithArgs(userID, "key-1").
			WillReturnRows(orderRows(orderID, userID, productID, 100, "key-1"))
		mock.ExpectQuery(reCredits).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"credits"}).AddRow(1150))

		result, err := store.SettleRedemption(ctx, settleParams(userID, productID, "key-1"))
		require.NoError(t, err)
		assert.True(t, result.Replayed)
		assert.Equal(t, orderID, result.Order.ID)
	})
}
