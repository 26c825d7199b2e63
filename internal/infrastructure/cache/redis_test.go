package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestOpenRedis_Success(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()

	// non-zero DB to verify the option is honored
	c, err := OpenRedis(s.Addr(), 3)
	if err != nil {
		t.Fatalf("OpenRedis returned error: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if got := c.Options().DB; got != 3 {
		t.Fatalf("client DB = %d, want 3", got)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// round-trip a key the way the idempotency middleware does
	key := "idemp:pool:post:/loans:probe"
	if err := c.Set(ctx, key, `{"in_progress":true}`, time.Minute).Err(); err != nil {
		t.Fatalf("SET err: %v", err)
	}
	v, err := c.Get(ctx, key).Result()
	if err != nil {
		t.Fatalf("GET err: %v", err)
	}
	if v != `{"in_progress":true}` {
		t.Fatalf("GET value = %q", v)
	}
}

func TestOpenRedis_Failure(t *testing.T) {
	// unresolvable host: Ping fails well inside the timeout
	if _, err := OpenRedis("not-a-real-host:6379", 0); err == nil {
		t.Fatal("expected error, got nil")
	}
}
