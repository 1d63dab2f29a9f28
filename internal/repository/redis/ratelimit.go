package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimitRepository implements the domain.RateLimiter interface using a
// fixed-window counter in Redis. Each bucket gets one counter per window;
// the counter expires on its own so exhausted windows clean themselves up.
type RateLimitRepository struct {
	client *redis.Client
	logger *slog.Logger
	limit  int
	window time.Duration
}

const rateLimitKeyPrefix = "ratelimit:" // ratelimit:<bucket>:<window>

// NewRateLimitRepository creates a Redis-backed rate limiter allowing limit
// requests per window for each bucket.
func NewRateLimitRepository(client *redis.Client, logger *slog.Logger, limit int, window time.Duration) *RateLimitRepository {
	return &RateLimitRepository{
		client: client,
		logger: logger,
		limit:  limit,
		window: window,
	}
}

// Allow consumes one slot from the bucket's current window.
func (r *RateLimitRepository) Allow(ctx context.Context, bucket string) (bool, error) {
	key := r.windowKey(bucket, time.Now())

	pipe := r.client.TxPipeline()
	count := pipe.Incr(ctx, key)
	// Expire a little after the window closes so a reader never sees a
	// stale counter reset mid-window
	pipe.Expire(ctx, key, r.window+time.Second)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}

	allowed := count.Val() <= int64(r.limit)
	if !allowed {
		r.logger.Warn("Rate limit exceeded",
			"bucket", bucket,
			"count", count.Val(),
			"limit", r.limit,
		)
	}

	return allowed, nil
}

// windowKey buckets time into fixed windows so all requests in the same
// window share one counter.
func (r *RateLimitRepository) windowKey(bucket string, now time.Time) string {
	window := now.Unix() / int64(r.window.Seconds())
	return fmt.Sprintf("%s%s:%d", rateLimitKeyPrefix, bucket, window)
}
