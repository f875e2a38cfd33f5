package attempt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisTracker counts failures in Redis so lockout state is shared across
// replicas. Keys expire after Window, which resets the count for users who
// stop trying.
type RedisTracker struct {
	client *redis.Client
	max    int64
	window time.Duration
}

func NewRedisTracker(client *redis.Client, maxAttempts int, window time.Duration) *RedisTracker {
	return &RedisTracker{client: client, max: int64(maxAttempts), window: window}
}

func (t *RedisTracker) key(username string) string {
	return fmt.Sprintf("login_attempts:%s", username)
}

func (t *RedisTracker) RecordFailure(ctx context.Context, username string) error {
	key := t.key(username)

	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("attempt: incr %s: %w", key, err)
	}

	// Set the expiry on first failure only, so the window is measured
	// from the start of the streak.
	if n == 1 {
		if err := t.client.Expire(ctx, key, t.window).Err(); err != nil {
			return fmt.Errorf("attempt: expire %s: %w", key, err)
		}
	}
	return nil
}

func (t *RedisTracker) Exceeded(ctx context.Context, username string) (bool, error) {
	val, err := t.client.Get(ctx, t.key(username)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("attempt: get %s: %w", t.key(username), err)
	}

	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return false, fmt.Errorf("attempt: parse count %q: %w", val, err)
	}
	return n >= t.max, nil
}

func (t *RedisTracker) Evict(ctx context.Context, username string) error {
	if err := t.client.Del(ctx, t.key(username)).Err(); err != nil {
		return fmt.Errorf("attempt: del %s: %w", t.key(username), err)
	}
	return nil
}
