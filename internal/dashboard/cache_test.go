package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client, time.Minute)
}

func TestCacheFetchJSONPopulatesOnce(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	key, err := cache.BuildKey(ctx, snapshotKey("store-1", time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, "dashboard:snapshot:store-1:2026-08-30:1", key)

	calls := 0
	loader := func(context.Context) (interface{}, error) {
		calls++
		return Snapshot{DailyStats: DailyStats{Sales: 150000}}, nil
	}

	var first Snapshot
	require.NoError(t, cache.FetchJSON(ctx, key, &first, loader))
	var second Snapshot
	require.NoError(t, cache.FetchJSON(ctx, key, &second, loader))

	assert.Equal(t, 1, calls, "second fetch must hit the cache")
	assert.Equal(t, int64(150000), second.DailyStats.Sales)
}

func TestCacheBumpChangesKey(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	before, err := cache.BuildKey(ctx, "dashboard", "snapshot", "s")
	require.NoError(t, err)
	require.NoError(t, cache.Bump(ctx))
	after, err := cache.BuildKey(ctx, "dashboard", "snapshot", "s")
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
}

func TestCacheEmptyFlagRoundTrips(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	loader := func(context.Context) (interface{}, error) {
		return Snapshot{Empty: true}, nil
	}
	var first Snapshot
	require.NoError(t, cache.FetchJSON(ctx, "k", &first, loader))

	var cached Snapshot
	require.NoError(t, cache.FetchJSON(ctx, "k", &cached, func(context.Context) (interface{}, error) {
		t.Fatal("loader must not run on a cache hit")
		return nil, nil
	}))
	assert.True(t, cached.Empty)
}

func TestNilCachePassesThrough(t *testing.T) {
	var cache *Cache

	key, err := cache.BuildKey(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "a:b", key)

	var snap Snapshot
	require.NoError(t, cache.FetchJSON(context.Background(), key, &snap, func(context.Context) (interface{}, error) {
		return Snapshot{DailyStats: DailyStats{Sales: 1}}, nil
	}))
	assert.Equal(t, int64(1), snap.DailyStats.Sales)
	require.NoError(t, cache.Bump(context.Background()))
}
