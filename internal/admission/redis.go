package admission

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCounters is a Counters implementation backed by Redis, for
// deployments that want one shared quota across server processes
// instead of the per-process quotas of Store.
//
// Windows are bucketized: every key lives in the bucket starting at
// now truncated to the window length, so all processes agree on window
// boundaries without coordination. Expired buckets are reclaimed by
// Redis TTLs; Prune is a no-op.
type RedisCounters struct {
	client *redis.Client
	prefix string
}

// NewRedisCounters creates a Redis-backed counter store.
func NewRedisCounters(client *redis.Client) *RedisCounters {
	return &RedisCounters{
		client: client,
		prefix: "admission:",
	}
}

// Apply increments the key's current window bucket and returns the
// decision. Unlike Store, this can fail; callers resolve failures via
// the action's FailMode.
func (r *RedisCounters) Apply(ctx context.Context, key string, cfg Config, now time.Time) (Decision, error) {
	windowStart := now.Truncate(cfg.Window)
	resetTime := windowStart.Add(cfg.Window)

	bucketKey := r.prefix + key + ":" + strconv.FormatInt(windowStart.UnixMilli(), 10)

	pipe := r.client.Pipeline()
	incr := pipe.Incr(ctx, bucketKey)
	// Keep the bucket one extra window beyond its end so late stragglers
	// still hit the same counter instead of resurrecting a fresh one.
	pipe.PExpire(ctx, bucketKey, resetTime.Sub(now)+cfg.Window)

	if _, err := pipe.Exec(ctx); err != nil {
		return Decision{}, err
	}

	count := incr.Val()

	allowed := count <= cfg.Limit

	remaining := cfg.Limit - count
	if remaining < 0 {
		remaining = 0
	}

	var retryAfter time.Duration
	if !allowed {
		if retryAfter = resetTime.Sub(now); retryAfter < 0 {
			retryAfter = 0
		}
	}

	return Decision{
		Allowed:    allowed,
		Limit:      cfg.Limit,
		Remaining:  remaining,
		ResetTime:  resetTime,
		RetryAfter: retryAfter,
	}, nil
}

// Prune is a no-op: Redis TTLs bound memory for this backend.
func (r *RedisCounters) Prune(_ time.Duration, _ time.Time) int {
	return 0
}
