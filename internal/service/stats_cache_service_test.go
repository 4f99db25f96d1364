package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func newTestCache(t *testing.T) (*RedisStatsCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewRedisStatsCache(client, log, 30*time.Second), mr
}

type counts struct {
	Patients int `json:"patients"`
}

func TestStatsCacheRoundTrip(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	var got counts
	hit, err := cache.Get(ctx, "dashboard", &got)
	if err != nil || hit {
		t.Fatalf("expected miss, got hit=%v err=%v", hit, err)
	}

	if err := cache.Set(ctx, "dashboard", counts{Patients: 4}); err != nil {
		t.Fatal(err)
	}

	hit, err = cache.Get(ctx, "dashboard", &got)
	if err != nil || !hit {
		t.Fatalf("expected hit, got hit=%v err=%v", hit, err)
	}
	if got.Patients != 4 {
		t.Errorf("patients = %d", got.Patients)
	}

	if ttl := mr.TTL(StatsKeyPrefix + "dashboard"); ttl != 30*time.Second {
		t.Errorf("ttl = %v", ttl)
	}

	mr.FastForward(31 * time.Second)
	hit, _ = cache.Get(ctx, "dashboard", &got)
	if hit {
		t.Error("expected entry to expire")
	}
}

func TestStatsCacheInvalidate(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	for _, key := range []string{"dashboard", "patient-status"} {
		if err := cache.Set(ctx, key, counts{Patients: 1}); err != nil {
			t.Fatal(err)
		}
	}

	if err := cache.Invalidate(ctx); err != nil {
		t.Fatal(err)
	}

	if mr.Exists(StatsKeyPrefix+"dashboard") || mr.Exists(StatsKeyPrefix+"patient-status") {
		t.Error("expected cached entries removed")
	}
	if mr.Exists(statsIndexKey) {
		t.Error("expected index removed")
	}

	// Invalidating an empty cache is a no-op.
	if err := cache.Invalidate(ctx); err != nil {
		t.Fatal(err)
	}
}

func TestStatsCacheDropsCorruptEntry(t *testing.T) {
	cache, mr := newTestCache(t)
	mr.Set(StatsKeyPrefix+"dashboard", "{not json")

	var got counts
	hit, err := cache.Get(context.Background(), "dashboard", &got)
	if err != nil || hit {
		t.Fatalf("expected miss, got hit=%v err=%v", hit, err)
	}
	if mr.Exists(StatsKeyPrefix + "dashboard") {
		t.Error("expected corrupt entry removed")
	}
}
