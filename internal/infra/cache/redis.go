package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hotel-booking/internal/infra/observability"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const cacheName = "booking"

type RedisCache struct {
	rdb    redis.UniversalClient
	prefix string
}

var _ shared.Cache = (*RedisCache)(nil)

func NewRedisCache(rdb redis.UniversalClient, keyPrefix string) *RedisCache {
	return &RedisCache{rdb: rdb, prefix: keyPrefix + ":cache:"}
}

func (c *RedisCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, err := c.rdb.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		observability.ObserveCache(cacheName, "miss")
		return false, nil
	}
	if err != nil {
		observability.ObserveCache(cacheName, "error")
		return false, errs.Wrapf(err, "cache get %s", key)
	}
	if err := json.Unmarshal(v, dst); err != nil {
		observability.ObserveCache(cacheName, "error")
		return false, errs.Wrapf(err, "cache decode %s", key)
	}
	observability.ObserveCache(cacheName, "hit")
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return errs.Wrapf(err, "cache encode %s", key)
	}
	observability.ObserveCache(cacheName, "set")
	return errs.Wrapf(c.rdb.Set(ctx, c.prefix+key, b, ttl).Err(), "cache set %s", key)
}

func (c *RedisCache) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.prefix + k
	}
	observability.ObserveCache(cacheName, "del")
	return errs.Wrap(c.rdb.Del(ctx, full...).Err(), "cache del")
}
