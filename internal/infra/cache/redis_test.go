//go:build unit

package cache_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/infra/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type view struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
}

func newCache(t *testing.T) (*cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return cache.NewRedisCache(rdb, "test"), mr
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()

	t.Run("success: miss then hit", func(t *testing.T) {
		c, mr := newCache(t)

		var got view
		hit, err := c.Get(ctx, "booking:id:1", &got)
		require.NoError(t, err)
		assert.False(t, hit)

		require.NoError(t, c.Set(ctx, "booking:id:1", view{ID: 1, Reference: "HRS_20250310093000_0001"}, time.Minute))
		assert.True(t, mr.Exists("test:cache:booking:id:1"))

		hit, err = c.Get(ctx, "booking:id:1", &got)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, view{ID: 1, Reference: "HRS_20250310093000_0001"}, got)
	})

	t.Run("success: entries expire after ttl", func(t *testing.T) {
		c, mr := newCache(t)
		require.NoError(t, c.Set(ctx, "k", view{ID: 2}, time.Minute))

		mr.FastForward(2 * time.Minute)

		var got view
		hit, err := c.Get(ctx, "k", &got)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("success: delete several keys", func(t *testing.T) {
		c, mr := newCache(t)
		require.NoError(t, c.Set(ctx, "a", view{ID: 1}, time.Minute))
		require.NoError(t, c.Set(ctx, "b", view{ID: 2}, time.Minute))

		require.NoError(t, c.Del(ctx, "a", "b", "missing"))
		require.NoError(t, c.Del(ctx))
		assert.False(t, mr.Exists("test:cache:a"))
		assert.False(t, mr.Exists("test:cache:b"))
	})

	t.Run("error: undecodable value", func(t *testing.T) {
		c, mr := newCache(t)
		require.NoError(t, mr.Set("test:cache:bad", "{oops"))

		var got view
		_, err := c.Get(ctx, "bad", &got)
		assert.Error(t, err)
	})

	t.Run("error: unreachable server", func(t *testing.T) {
		c, mr := newCache(t)
		mr.Close()

		var got view
		_, err := c.Get(ctx, "k", &got)
		assert.Error(t, err)
	})
}
