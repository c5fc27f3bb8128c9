package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const pgUniqueViolation = "23505"

// errIdempotencyRace means a concurrent request inserted an order under the
// same key after our replay check ran.
var errIdempotencyRace = errors.New("idempotency key inserted concurrently")

type SettleRedemptionParams struct {
	UserID         uuid.UUID
	ProductID      uuid.UUID
	CreditsApplied int
	CreditValue    decimal.Decimal
	CashPayment    decimal.Decimal
	Subtotal       decimal.Decimal
	Shipping       decimal.Decimal
	Tax            decimal.Decimal
	Total          decimal.Decimal
	// IdempotencyKey is optional. When set, a repeated settlement with the
	// same user and key returns the first order instead of charging again.
	IdempotencyKey string
	// Day is the metrics bucket the settlement counts towards.
	Day time.Time
}

type SettlementResult struct {
	Order            Order
	RemainingCredits int
	Replayed         bool
}

// SettleRedemption debits the user, records a completed order and bumps the
// day's purchase and redemption counters in a single transaction. Either all
// three writes land or none do.
//
// The debit only succeeds while the balance covers CreditsApplied, so two
// concurrent settlements can never overdraw a user; the loser gets
// ErrInsufficientCredits.
func (s *Store) SettleRedemption(ctx context.Context, params SettleRedemptionParams) (SettlementResult, error) {
	result, err := s.settleRedemption(ctx, params)
	if errors.Is(err, errIdempotencyRace) {
		return s.replayRedemption(ctx, params)
	}
	return result, err
}

const sqlGetUserCredits = `
SELECT credits FROM users WHERE id = $1
`

const sqlDebitUserCredits = `
UPDATE users
SET credits = credits - $2, updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND credits >= $2
RETURNING credits
`

func (s *Store) settleRedemption(ctx context.Context, params SettleRedemptionParams) (result SettlementResult, err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return SettlementResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error(ctx, "failed to rollback transaction", rbErr)
			}
		}
	}()

	var key *string
	if params.IdempotencyKey != "" {
		key = &params.IdempotencyKey

		var existing Order
		err = tx.GetContext(ctx, &existing, sqlGetOrderByIdempotencyKey, params.UserID, params.IdempotencyKey)
		switch {
		case err == nil:
			if !sameRedemption(existing, params) {
				err = ErrIdempotencyConflict
				return SettlementResult{}, err
			}
			var credits int
			if err = tx.GetContext(ctx, &credits, sqlGetUserCredits, params.UserID); err != nil {
				return SettlementResult{}, fmt.Errorf("failed to read user credits: %w", err)
			}
			if err = tx.Commit(); err != nil {
				return SettlementResult{}, fmt.Errorf("failed to commit transaction: %w", err)
			}
			return SettlementResult{Order: existing, RemainingCredits: credits, Replayed: true}, nil
		case errors.Is(err, sql.ErrNoRows):
			err = nil
		default:
			return SettlementResult{}, fmt.Errorf("failed to check idempotency key: %w", err)
		}
	}

	var remaining int
	err = tx.GetContext(ctx, &remaining, sqlDebitUserCredits, params.UserID, params.CreditsApplied)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrInsufficientCredits
			return SettlementResult{}, err
		}
		return SettlementResult{}, fmt.Errorf("failed to debit credits: %w", err)
	}

	order, err := createOrder(ctx, tx, CreateOrderParams{
		UserID:         params.UserID,
		ProductID:      params.ProductID,
		CreditsApplied: params.CreditsApplied,
		CreditValue:    params.CreditValue,
		CashPayment:    params.CashPayment,
		Subtotal:       params.Subtotal,
		Shipping:       params.Shipping,
		Tax:            params.Tax,
		Total:          params.Total,
		Status:         OrderStatusCompleted,
		IdempotencyKey: key,
	})
	if err != nil {
		if key != nil && isUniqueViolation(err) {
			err = errIdempotencyRace
		}
		return SettlementResult{}, err
	}

	if err = incrementRedemptionMetrics(ctx, tx, params.Day); err != nil {
		return SettlementResult{}, err
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return SettlementResult{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return SettlementResult{Order: order, RemainingCredits: remaining}, nil
}

// replayRedemption answers a request whose key was settled by a concurrent
// request that won the insert.
func (s *Store) replayRedemption(ctx context.Context, params SettleRedemptionParams) (SettlementResult, error) {
	existing, err := s.GetOrderByIdempotencyKey(ctx, params.UserID, params.IdempotencyKey)
	if err != nil {
		return SettlementResult{}, err
	}
	if !sameRedemption(existing, params) {
		return SettlementResult{}, ErrIdempotencyConflict
	}

	var credits int
	if err := s.db.GetContext(ctx, &credits, sqlGetUserCredits, params.UserID); err != nil {
		return SettlementResult{}, fmt.Errorf("failed to read user credits: %w", err)
	}
	return SettlementResult{Order: existing, RemainingCredits: credits, Replayed: true}, nil
}

func sameRedemption(order Order, params SettleRedemptionParams) bool {
	return order.ProductID == params.ProductID && order.CreditsApplied == params.CreditsApplied
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
