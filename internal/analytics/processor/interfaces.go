package processor

import (
	"context"
	"time"

	"redeem-server/internal/store"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

// AnalyticsStore defines the database operations required by AnalyticsProcessor
type AnalyticsStore interface {
	ListDailyMetricsBetween(ctx context.Context, from, to time.Time) ([]store.DailyMetrics, error)
}
