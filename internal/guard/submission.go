package guard

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// SubmissionGuard rejects a second identical booking request while the
// first is still inside its TTL. A guard without a client allows
// everything.
type SubmissionGuard struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient parses a redis:// URL.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}

func NewSubmissionGuard(client *redis.Client, ttl time.Duration) *SubmissionGuard {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &SubmissionGuard{client: client, ttl: ttl}
}

func submissionKey(phone string, start time.Time) string {
	return fmt.Sprintf("booking_submit:%s:%d", phone, start.Unix())
}

// Acquire reports whether this is the first submission for phone at start.
func (g *SubmissionGuard) Acquire(ctx context.Context, phone string, start time.Time) (bool, error) {
	if g == nil || g.client == nil {
		return true, nil
	}

	ok, err := g.client.SetNX(ctx, submissionKey(phone, start), 1, g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("submission guard: %w", err)
	}
	return ok, nil
}

// Release frees the key so a failed attempt can be retried at once.
func (g *SubmissionGuard) Release(ctx context.Context, phone string, start time.Time) error {
	if g == nil || g.client == nil {
		return nil
	}
	if err := g.client.Del(ctx, submissionKey(phone, start)).Err(); err != nil {
		return fmt.Errorf("submission guard: %w", err)
	}
	return nil
}
