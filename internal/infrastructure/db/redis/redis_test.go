package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestClientOptionsDefaults(t *testing.T) {
	opts := clientOptions(Config{Addr: "localhost:6379", DB: 1})

	if opts.ClientName != clientName {
		t.Fatalf("ClientName = %q, want %q", opts.ClientName, clientName)
	}
	if opts.PoolSize != defaultPoolSize {
		t.Fatalf("PoolSize = %d, want %d", opts.PoolSize, defaultPoolSize)
	}
	if opts.DialTimeout != defaultTimeout {
		t.Fatalf("DialTimeout = %v, want %v", opts.DialTimeout, defaultTimeout)
	}
	if opts.DB != 1 {
		t.Fatalf("DB = %d, want 1", opts.DB)
	}
}

func TestClientOptionsOverrides(t *testing.T) {
	opts := clientOptions(Config{Addr: "localhost:6379", PoolSize: 3, Timeout: time.Second})

	if opts.PoolSize != 3 {
		t.Fatalf("PoolSize = %d, want 3", opts.PoolSize)
	}
	if opts.DialTimeout != time.Second {
		t.Fatalf("DialTimeout = %v, want %v", opts.DialTimeout, time.Second)
	}
}

func TestConnect_PingsServer(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer client.Close()

	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Fatalf("ping after connect: %v", err)
	}
}

func TestConnect_FailsWhenServerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := Connect(context.Background(), Config{Addr: addr, Timeout: 200 * time.Millisecond}); err == nil {
		t.Fatalf("expected connect to fail against a closed server")
	}
}
