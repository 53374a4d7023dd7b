package cache

import (
	"context"
	"testing"
	"time"

	"talent-match/internal/config"
)

// port 1 is reserved and refuses connections, so NewRedis fails its
// startup ping and degrades to the bypass client.
func newUnreachableRedis(t *testing.T) *Redis {
	t.Helper()
	return NewRedis(config.RedisConfig{Host: "127.0.0.1", Port: "1", TTL: time.Second}, nil)
}

func TestRedis_UnreachableServerBypassesReads(t *testing.T) {
	r := newUnreachableRedis(t)
	ctx := context.Background()

	var out []string
	hit, err := r.GetJSON(ctx, "candidates:position:42:limit:100", &out)
	if err != nil {
		t.Fatalf("degraded GetJSON must not error, got %v", err)
	}
	if hit {
		t.Fatalf("degraded GetJSON must report a miss")
	}
}

func TestRedis_UnreachableServerBypassesWrites(t *testing.T) {
	r := newUnreachableRedis(t)
	ctx := context.Background()

	if err := r.SetJSON(ctx, "k", []string{"v"}, time.Second); err != nil {
		t.Fatalf("degraded SetJSON must not error, got %v", err)
	}
	if err := r.Delete(ctx, "k"); err != nil {
		t.Fatalf("degraded Delete must not error, got %v", err)
	}
	if err := r.DeleteByPattern(ctx, "candidates:position:42:*"); err != nil {
		t.Fatalf("degraded DeleteByPattern must not error, got %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("degraded Close must not error, got %v", err)
	}
}

func TestRedis_UnreachableServerPingErrors(t *testing.T) {
	r := newUnreachableRedis(t)

	if err := r.Ping(context.Background()); err == nil {
		t.Fatalf("degraded Ping must report the outage")
	}
}

func TestRedis_NilReceiverIsSafe(t *testing.T) {
	var r *Redis
	ctx := context.Background()

	var out int
	hit, err := r.GetJSON(ctx, "k", &out)
	if err != nil || hit {
		t.Fatalf("nil cache GetJSON = (%v, %v), want miss without error", hit, err)
	}
	if err := r.SetJSON(ctx, "k", 1, time.Second); err != nil {
		t.Fatalf("nil cache SetJSON must not error, got %v", err)
	}
	if err := r.DeleteByPattern(ctx, "*"); err != nil {
		t.Fatalf("nil cache DeleteByPattern must not error, got %v", err)
	}
}
