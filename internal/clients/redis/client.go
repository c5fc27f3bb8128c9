package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"redeem-server/internal/config"
	"redeem-server/internal/observability"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrClientNotInitialized = errors.New("redis client not initialized")

// releaseScript deletes the lock only if it still holds our token, so a
// holder whose TTL lapsed cannot free a lock someone else now owns.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// takeFromWindowScript trims, counts and conditionally records a hit on a
// sorted-set window. It replies {allowed, count, oldestMs}.
var takeFromWindowScript = redis.NewScript(`
redis.call("ZREMRANGEBYSCORE", KEYS[1], "-inf", ARGV[1])
local count = redis.call("ZCARD", KEYS[1])
if count >= tonumber(ARGV[2]) then
	local oldest = redis.call("ZRANGE", KEYS[1], 0, 0, "WITHSCORES")
	local oldestMs = tonumber(ARGV[3])
	if oldest[2] then
		oldestMs = tonumber(oldest[2])
	end
	return {0, count, oldestMs}
end
redis.call("ZADD", KEYS[1], ARGV[3], ARGV[4])
redis.call("PEXPIRE", KEYS[1], ARGV[5])
return {1, count + 1, tonumber(ARGV[3])}
`)

// Client wraps the Redis client with observability
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient creates a new Redis client. It returns nil, nil when Redis is
// disabled in config.
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if !cfg.Enabled {
		logger.Info(context.Background(), "Redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "host", Value: cfg.Host},
		observability.Field{Key: "port", Value: cfg.Port},
		observability.Field{Key: "db", Value: cfg.DB},
	)
	logger.Info(ctx, "successfully connected to Redis")

	return NewWithClient(client, logger), nil
}

// NewWithClient wraps an already configured go-redis client.
func NewWithClient(client *redis.Client, logger *observability.Logger) *Client {
	return &Client{
		client: client,
		logger: logger,
	}
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Ping checks connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return ErrClientNotInitialized
	}
	return c.client.Ping(ctx).Err()
}

// AcquireLock tries once to take key for ttl. It returns the token needed to
// release it and whether the lock was taken. It never blocks waiting.
func (c *Client) AcquireLock(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	if c == nil || c.client == nil {
		return "", false, ErrClientNotInitialized
	}

	token := uuid.New().String()
	ok, err := c.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// ReleaseLock frees key if token still owns it. A lock that already lapsed
// is logged, not treated as an error.
func (c *Client) ReleaseLock(ctx context.Context, key, token string) error {
	if c == nil || c.client == nil {
		return ErrClientNotInitialized
	}

	released, err := releaseScript.Run(ctx, c.client, []string{key}, token).Int()
	if err != nil {
		return fmt.Errorf("failed to release lock %s: %w", key, err)
	}
	if released == 0 {
		ctx = observability.WithFields(ctx, observability.Field{Key: "lock_key", Value: key})
		c.logger.Warn(ctx, "lock expired before release")
	}
	return nil
}

// WindowResult reports the state of a sliding window after a take.
type WindowResult struct {
	Allowed  bool
	Count    int
	OldestAt time.Time
}

// TakeFromWindow drops hits on key older than window, then records a hit at
// now unless limit hits are already inside the window. The steps run as one
// script so concurrent callers cannot both take the last slot.
func (c *Client) TakeFromWindow(ctx context.Context, key string, limit int, window time.Duration, now time.Time) (WindowResult, error) {
	if c == nil || c.client == nil {
		return WindowResult{}, ErrClientNotInitialized
	}

	member := fmt.Sprintf("%d-%s", now.UnixNano(), uuid.New().String())
	values, err := takeFromWindowScript.Run(ctx, c.client, []string{key},
		now.Add(-window).UnixMilli(),
		limit,
		now.UnixMilli(),
		member,
		(2 * window).Milliseconds(),
	).Int64Slice()
	if err != nil {
		return WindowResult{}, fmt.Errorf("failed to take from window %s: %w", key, err)
	}
	if len(values) != 3 {
		return WindowResult{}, fmt.Errorf("unexpected window reply for %s: %v", key, values)
	}

	return WindowResult{
		Allowed:  values[0] == 1,
		Count:    int(values[1]),
		OldestAt: time.UnixMilli(values[2]),
	}, nil
}
