package processor

import (
	"context"
	"time"

	"redeem-server/internal/store"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

// MerchStore defines the database operations required by MerchProcessor
type MerchStore interface {
	ListInStockProducts(ctx context.Context) ([]store.Product, error)
	GetProductByID(ctx context.Context, productID uuid.UUID) (store.Product, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (store.User, error)
	GetOrderByIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) (store.Order, error)
	SettleRedemption(ctx context.Context, params store.SettleRedemptionParams) (store.SettlementResult, error)
}

// RedemptionLocker serializes settlements per user
type RedemptionLocker interface {
	AcquireLock(ctx context.Context, key string, ttl time.Duration) (string, bool, error)
	ReleaseLock(ctx context.Context, key, token string) error
}

// EventPublisher announces settled orders
type EventPublisher interface {
	PublishOrderCompleted(ctx context.Context, order store.Order) error
}
