// Package usage tracks per-user API consumption. A search charges the user
// the moment the intent to query is registered, before interpretation runs.
package usage

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Recorder charges one search invocation to a user.
type Recorder interface {
	Record(ctx context.Context, userID string)
}

// RedisRecorder keeps monthly counters in Redis via atomic INCR. Recording
// failures are logged and never fail the pipeline.
type RedisRecorder struct {
	client *redis.Client
}

// NewRedisRecorder parses redisURL and verifies connectivity.
func NewRedisRecorder(ctx context.Context, redisURL string) (*RedisRecorder, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisRecorder{client: client}, nil
}

func (r *RedisRecorder) Record(ctx context.Context, userID string) {
	key := fmt.Sprintf("usage:%s:%s", userID, time.Now().UTC().Format("2006-01"))
	if err := r.client.Incr(ctx, key).Err(); err != nil {
		log.Printf("[Usage] Failed to record usage for user %s: %v", userID, err)
	}
}

// Count returns the user's usage for the current month.
func (r *RedisRecorder) Count(ctx context.Context, userID string) (int64, error) {
	key := fmt.Sprintf("usage:%s:%s", userID, time.Now().UTC().Format("2006-01"))
	n, err := r.client.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}

func (r *RedisRecorder) Close() error {
	return r.client.Close()
}

// NopRecorder is used when no REDIS_URL is configured.
type NopRecorder struct{}

func (NopRecorder) Record(ctx context.Context, userID string) {}
