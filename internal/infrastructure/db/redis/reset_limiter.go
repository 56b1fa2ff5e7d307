package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	resetWindow      = 15 * time.Minute
	maxResetAttempts = 5
)

// ResetLimiter throttles password-reset attempts per email, backed by Redis.
// Key format: pwreset:<email>
type ResetLimiter struct {
	client *redis.Client
}

// NewResetLimiter creates a ResetLimiter wrapping the given Redis client.
func NewResetLimiter(client *redis.Client) *ResetLimiter {
	return &ResetLimiter{client: client}
}

// TooManyAttempts reports whether the email has exhausted its attempts in the
// current window.
func (l *ResetLimiter) TooManyAttempts(ctx context.Context, email string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(email)).Int64()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("reset limiter check: %w", err)
	}
	return n >= maxResetAttempts, nil
}

// RecordAttempt increments the attempt counter, starting the expiry window on
// the first attempt.
func (l *ResetLimiter) RecordAttempt(ctx context.Context, email string) error {
	key := l.key(email)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("reset limiter incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, resetWindow).Err(); err != nil {
			return fmt.Errorf("reset limiter expire: %w", err)
		}
	}
	return nil
}

func (l *ResetLimiter) key(email string) string {
	return "pwreset:" + email
}
