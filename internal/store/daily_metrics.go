package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

const sqlListDailyMetricsBetween = `
SELECT day, bursts, wins, purchases, redemptions, referrals, created_at, updated_at
FROM daily_metrics
WHERE day >= $1::date AND day <= $2::date
ORDER BY day ASC
`

// ListDailyMetricsBetween returns the stored day rows in [from, to], both
// inclusive, oldest first. Only the calendar date of each bound is used.
func (s *Store) ListDailyMetricsBetween(ctx context.Context, from, to time.Time) ([]DailyMetrics, error) {
	rows := []DailyMetrics{}
	err := s.db.SelectContext(ctx, &rows, sqlListDailyMetricsBetween, dayString(from), dayString(to))
	if err != nil {
		return nil, fmt.Errorf("failed to list daily metrics: %w", err)
	}
	return rows, nil
}

const sqlIncrementRedemptionMetrics = `
INSERT INTO daily_metrics (day, purchases, redemptions)
VALUES ($1::date, 1, 1)
ON CONFLICT (day) DO UPDATE
SET purchases = daily_metrics.purchases + 1,
    redemptions = daily_metrics.redemptions + 1,
    updated_at = CURRENT_TIMESTAMP
`

func incrementRedemptionMetrics(ctx context.Context, tx *sqlx.Tx, day time.Time) error {
	if _, err := tx.ExecContext(ctx, sqlIncrementRedemptionMetrics, dayString(day)); err != nil {
		return fmt.Errorf("failed to upsert daily metrics: %w", err)
	}
	return nil
}

// dayString renders the calendar date of t in t's own location.
func dayString(t time.Time) string {
	return t.Format(time.DateOnly)
}
