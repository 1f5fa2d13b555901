package cache

import (
	"context"
	"testing"
	"time"

	"filmstrip/internal/raster"

	"github.com/alicebob/miniredis/v2"
)

// setupMiniRedis starts an in-process Redis and connects a cache to it.
func setupMiniRedis(t *testing.T) (*miniredis.Miniredis, *Redis) {
	t.Helper()

	mr := miniredis.NewMiniRedis()
	if err := mr.Start(); err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	c, err := NewRedis(context.Background(), RedisConfig{
		Addr: mr.Addr(),
		TTL:  time.Minute,
	})
	if err != nil {
		t.Fatalf("NewRedis: %v", err)
	}
	t.Cleanup(func() {
		if err := c.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})

	return mr, c
}

func TestRedisRoundTrip(t *testing.T) {
	ctx := context.Background()
	_, c := setupMiniRedis(t)

	img := testRaster(16, 9, red)
	c.Store(ctx, "a", img)

	got, ok := c.Fetch(ctx, "a")
	if !ok {
		t.Fatal("Fetch after Store reported a miss")
	}
	if !raster.Equal(img, got) {
		t.Error("fetched raster differs from stored raster")
	}
}

func TestRedisMiss(t *testing.T) {
	_, c := setupMiniRedis(t)
	if _, ok := c.Fetch(context.Background(), "nothing"); ok {
		t.Error("Fetch on empty cache reported a hit")
	}
}

func TestRedisOverwrite(t *testing.T) {
	ctx := context.Background()
	_, c := setupMiniRedis(t)

	c.Store(ctx, "a", testRaster(8, 8, red))
	c.Store(ctx, "a", testRaster(8, 8, green))

	got, ok := c.Fetch(ctx, "a")
	if !ok {
		t.Fatal("miss after overwrite")
	}
	if !raster.Equal(testRaster(8, 8, green), got) {
		t.Error("overwrite did not replace the stored raster")
	}
}

func TestRedisEntriesExpire(t *testing.T) {
	ctx := context.Background()
	mr, c := setupMiniRedis(t)

	c.Store(ctx, "a", testRaster(8, 8, red))
	if _, ok := c.Fetch(ctx, "a"); !ok {
		t.Fatal("entry missing before expiry")
	}

	mr.FastForward(2 * time.Minute)

	if _, ok := c.Fetch(ctx, "a"); ok {
		t.Error("entry should have expired after the TTL")
	}
}

func TestRedisServerGoneIsAMiss(t *testing.T) {
	ctx := context.Background()
	mr, c := setupMiniRedis(t)

	c.Store(ctx, "a", testRaster(8, 8, red))
	mr.Close()

	if _, ok := c.Fetch(ctx, "a"); ok {
		t.Error("fetch against a dead server should miss, not hang or panic")
	}
	// Store against a dead server must absorb the failure.
	c.Store(ctx, "b", testRaster(8, 8, green))
}

func TestRedisConnectionFailure(t *testing.T) {
	_, err := NewRedis(context.Background(), RedisConfig{Addr: "127.0.0.1:1"})
	if err == nil {
		t.Error("NewRedis should fail fast when the server is unreachable")
	}
}
