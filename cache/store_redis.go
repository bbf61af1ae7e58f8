package cache

import (
	"context"
	"time"

	"github.com/go-redis/cache/v9"
	"github.com/redis/go-redis/v9"
)

// redisEntry carries the value with its own expiry, like memEntry. The
// layered caches (redis expiration, the local TinyLFU front) keep entries
// around on their own schedules, so freshness is always decided against
// Expires on read, never against layer retention.
type redisEntry struct {
	Val     []byte
	Expires time.Time
}

// RedisStore is a Store shared across processes, with a small local TinyLFU
// layer in front of redis.
//
// Invalidation reaches the shared backend, but each process tracks its own
// issued list keys (see Keys), so a list variant only ever read by another
// process stays cached there until its TTL lapses.
type RedisStore struct {
	data *cache.Cache
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(redisURL string) (*RedisStore, error) {
	ctx := context.Background()
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opt)
	// check redis connection
	_, err = rdb.Ping(ctx).Result()
	if err != nil {
		return nil, err
	}
	return newRedisStore(rdb), nil
}

func newRedisStore(rdb *redis.Client) *RedisStore {
	data := cache.New(&cache.Options{
		Redis:      rdb,
		LocalCache: cache.NewTinyLFU(10_000, time.Minute),
	})
	return &RedisStore{data: data}
}

func redisKey(key string) string {
	return "freeagent/" + key
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var e redisEntry
	err := s.data.Get(ctx, redisKey(key), &e)
	if err == cache.ErrCacheMiss {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if time.Now().After(e.Expires) {
		_ = s.data.Delete(ctx, redisKey(key))
		return nil, false, nil
	}
	return e.Val, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	// redis expiry is only housekeeping; freshness is checked in Get.
	// go-redis/cache treats sub-second TTLs as misconfiguration, so round up.
	redisTTL := ttl
	if redisTTL < time.Second {
		redisTTL = time.Second
	}
	return s.data.Set(&cache.Item{
		Ctx:   ctx,
		Key:   redisKey(key),
		Value: &redisEntry{Val: val, Expires: time.Now().Add(ttl)},
		TTL:   redisTTL,
	})
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	err := s.data.Delete(ctx, redisKey(key))
	if err == cache.ErrCacheMiss {
		return nil
	}
	return err
}
