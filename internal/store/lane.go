package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const laneColumns = `id, name, description, impact_score, state,
	metrics_users AS "metrics.users",
	metrics_engagement AS "metrics.engagement",
	metrics_retention AS "metrics.retention",
	created_at, updated_at`

var sqlListLanesByImpact = `
SELECT ` + laneColumns + `
FROM lanes
ORDER BY impact_score DESC, created_at, id
`

// ListLanesByImpact returns all lanes, highest impact first. Ties keep
// insertion order.
func (s *Store) ListLanesByImpact(ctx context.Context) ([]Lane, error) {
	lanes := []Lane{}
	err := s.db.SelectContext(ctx, &lanes, sqlListLanesByImpact)
	if err != nil {
		return nil, fmt.Errorf("failed to list lanes: %w", err)
	}
	return lanes, nil
}

var sqlGetLaneByID = `
SELECT ` + laneColumns + `
FROM lanes
WHERE id = $1
`

func (s *Store) GetLaneByID(ctx context.Context, laneID uuid.UUID) (Lane, error) {
	var lane Lane
	err := s.db.GetContext(ctx, &lane, sqlGetLaneByID, laneID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Lane{}, ErrNotFound
		}
		return Lane{}, fmt.Errorf("failed to get lane: %w", err)
	}
	return lane, nil
}

var sqlUpdateLaneState = `
UPDATE lanes
SET state = $2, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + laneColumns

// UpdateLaneState overwrites a lane's state regardless of its current value.
func (s *Store) UpdateLaneState(ctx context.Context, laneID uuid.UUID, state string) (Lane, error) {
	var lane Lane
	err := s.db.GetContext(ctx, &lane, sqlUpdateLaneState, laneID, state)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Lane{}, ErrNotFound
		}
		return Lane{}, fmt.Errorf("failed to update lane state: %w", err)
	}
	return lane, nil
}
