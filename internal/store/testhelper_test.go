package store

import (
	"testing"
	"time"

	"redeem-server/internal/observability"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

// newMockStore returns a Store backed by sqlmock. Unmet expectations fail the
// test on cleanup.
func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sql expectations: %v", err)
		}
		db.Close()
	})

	store := NewWithDB(sqlx.NewDb(db, "pgx"), observability.NewNopLogger())
	return &store, mock
}

var fixedTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

var orderRowColumns = []string{
	"id", "user_id", "product_id", "credits_applied", "credit_value", "cash_payment",
	"subtotal", "shipping", "tax", "total", "status", "idempotency_key", "created_at", "updated_at",
}
