package ratelimit

import (
	"context"
	"fmt"
	"time"

	"redeem-server/internal/clients/redis"
	"redeem-server/internal/observability"

	"github.com/google/uuid"
)

const windowSize = time.Minute

// WindowStore records hits in a sliding window
type WindowStore interface {
	TakeFromWindow(ctx context.Context, key string, limit int, window time.Duration, now time.Time) (redis.WindowResult, error)
}

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"resetAt"`
	RetryAfterMs int       `json:"retryAfterMs,omitempty"`
}

// Service limits how many requests a user may make per minute
type Service struct {
	windows WindowStore
	limit   int
	logger  *observability.Logger
	now     func() time.Time
}

// NewService creates a limiter allowing limitPerMinute requests per user.
func NewService(windows WindowStore, limitPerMinute int, logger *observability.Logger) *Service {
	return &Service{
		windows: windows,
		limit:   limitPerMinute,
		logger:  logger,
		now:     time.Now,
	}
}

// CheckRateLimit records a request for userID and reports whether it fits
// in the current window.
func (s *Service) CheckRateLimit(ctx context.Context, userID uuid.UUID) (RateLimitResult, error) {
	now := s.now()
	key := fmt.Sprintf("rl:%s", userID.String())

	hits, err := s.windows.TakeFromWindow(ctx, key, s.limit, windowSize, now)
	if err != nil {
		return RateLimitResult{}, err
	}

	if !hits.Allowed {
		resetAt := hits.OldestAt.Add(windowSize)
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return RateLimitResult{
			Allowed:      false,
			Limit:        s.limit,
			Remaining:    0,
			ResetAt:      resetAt,
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}, nil
	}

	remaining := s.limit - hits.Count
	if remaining < 0 {
		remaining = 0
	}
	return RateLimitResult{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: remaining,
		ResetAt:   now.Add(windowSize),
	}, nil
}
