package processor

import (
	"context"

	"redeem-server/internal/store"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

// UserStore defines the database operations required by AuthProcessor
type UserStore interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (store.User, error)
}
