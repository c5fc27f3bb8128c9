package processor

import (
	"context"
	"errors"
	"strings"

	"redeem-server/internal/observability"
	"redeem-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrLaneNotFound = errors.New("lane not found")
	ErrInvalidState = errors.New("invalid lane state")
)

type LaneProcessor struct {
	store  LaneStore
	logger *observability.Logger
}

func New(store LaneStore, logger *observability.Logger) LaneProcessor {
	return LaneProcessor{
		store:  store,
		logger: logger,
	}
}

// ListByImpact returns every lane, highest impact first
func (p *LaneProcessor) ListByImpact(ctx context.Context) ([]store.Lane, error) {
	lanes, err := p.store.ListLanesByImpact(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list lanes", err)
		return nil, err
	}
	return lanes, nil
}

// GetLane returns a single lane
func (p *LaneProcessor) GetLane(ctx context.Context, laneID uuid.UUID) (store.Lane, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "lane_id", Value: laneID.String()})

	lane, err := p.store.GetLaneByID(ctx, laneID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Lane{}, ErrLaneNotFound
		}
		p.logger.Error(ctx, "failed to get lane", err)
		return store.Lane{}, err
	}
	return lane, nil
}

// TransitionState moves a lane to state. Any state may follow any other.
func (p *LaneProcessor) TransitionState(ctx context.Context, laneID uuid.UUID, state string) (store.Lane, error) {
	state = strings.ToLower(strings.TrimSpace(state))
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "lane_id", Value: laneID.String()},
		observability.Field{Key: "state", Value: state},
	)

	if !store.IsValidLaneState(state) {
		return store.Lane{}, ErrInvalidState
	}

	lane, err := p.store.UpdateLaneState(ctx, laneID, state)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Lane{}, ErrLaneNotFound
		}
		p.logger.Error(ctx, "failed to update lane state", err)
		return store.Lane{}, err
	}

	p.logger.Info(ctx, "lane state updated")
	return lane, nil
}
