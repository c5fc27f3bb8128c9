package processor

import (
	"context"

	"redeem-server/internal/store"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

// LaneStore defines the database operations required by LaneProcessor
type LaneStore interface {
	ListLanesByImpact(ctx context.Context) ([]store.Lane, error)
	GetLaneByID(ctx context.Context, laneID uuid.UUID) (store.Lane, error)
	UpdateLaneState(ctx context.Context, laneID uuid.UUID, state string) (store.Lane, error)
}
