package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T) (*ResetLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewResetLimiter(client), mr
}

func TestResetLimiter_AllowsUnderLimit(t *testing.T) {
	l, _ := newTestLimiter(t)
	ctx := context.Background()

	for i := 0; i < maxResetAttempts-1; i++ {
		if err := l.RecordAttempt(ctx, "a@example.com"); err != nil {
			t.Fatalf("record attempt %d: %v", i, err)
		}
	}

	blocked, err := l.TooManyAttempts(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if blocked {
		t.Fatalf("should not be blocked under the limit")
	}
}

func TestResetLimiter_BlocksAtLimit(t *testing.T) {
	l, _ := newTestLimiter(t)
	ctx := context.Background()

	for i := 0; i < maxResetAttempts; i++ {
		if err := l.RecordAttempt(ctx, "a@example.com"); err != nil {
			t.Fatalf("record attempt %d: %v", i, err)
		}
	}

	blocked, err := l.TooManyAttempts(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !blocked {
		t.Fatalf("expected block at the limit")
	}
}

func TestResetLimiter_WindowExpires(t *testing.T) {
	l, mr := newTestLimiter(t)
	ctx := context.Background()

	for i := 0; i < maxResetAttempts; i++ {
		_ = l.RecordAttempt(ctx, "a@example.com")
	}

	mr.FastForward(resetWindow)

	blocked, err := l.TooManyAttempts(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if blocked {
		t.Fatalf("counter should reset after the window")
	}
}

func TestResetLimiter_KeysAreScopedPerEmail(t *testing.T) {
	l, _ := newTestLimiter(t)
	ctx := context.Background()

	for i := 0; i < maxResetAttempts; i++ {
		_ = l.RecordAttempt(ctx, "a@example.com")
	}

	blocked, err := l.TooManyAttempts(ctx, "b@example.com")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if blocked {
		t.Fatalf("limit must not leak across emails")
	}
}
