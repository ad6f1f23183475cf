package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-accounts/internal/logger"
)

// RateLimitRepository keeps fixed-window request counters in Redis.
type RateLimitRepository struct {
	client *redis.Client
	window time.Duration
}

// NewRateLimitRepository creates a repository whose counters expire after window.
func NewRateLimitRepository(client *redis.Client, window time.Duration) *RateLimitRepository {
	return &RateLimitRepository{
		client: client,
		window: window,
	}
}

// Increment bumps the counter for key and returns its value within the current window.
// The window starts with the first hit; later hits do not extend it.
func (r *RateLimitRepository) Increment(ctx context.Context, key string) (int64, error) {
	fullKey := "rate_limit:" + key

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, fullKey)
	pipe.ExpireNX(ctx, fullKey, r.window)
	_, err := pipe.Exec(ctx)

	logger.Log.Debugw("rate limit increment",
		"key", fullKey,
		"result", incr.Val(),
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
