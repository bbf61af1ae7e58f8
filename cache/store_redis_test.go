package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestRedisStore(t *testing.T) *RedisStore {
	mr := miniredis.RunT(t)
	return newRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestRedisStoreRoundtrip(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	s := newTestRedisStore(t)

	_, ok, err := s.Get(ctx, "invoices_123")
	assert.NoError(err)
	assert.False(ok)

	assert.NoError(s.Set(ctx, "invoices_123", []byte(`{"a":1}`), time.Minute))
	val, ok, err := s.Get(ctx, "invoices_123")
	assert.NoError(err)
	assert.True(ok)
	assert.Equal([]byte(`{"a":1}`), val)
}

func TestRedisStoreExpiry(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	s := newTestRedisStore(t)

	// already expired on arrival
	assert.NoError(s.Set(ctx, "invoices_1", []byte(`{}`), -time.Second))
	_, ok, err := s.Get(ctx, "invoices_1")
	assert.NoError(err)
	assert.False(ok)

	// a TTL shorter than the local cache layer's retention must still
	// expire on time
	assert.NoError(s.Set(ctx, "invoices_123", []byte(`{}`), 50*time.Millisecond))
	_, ok, _ = s.Get(ctx, "invoices_123")
	assert.True(ok)
	time.Sleep(100 * time.Millisecond)
	_, ok, err = s.Get(ctx, "invoices_123")
	assert.NoError(err)
	assert.False(ok, "entry expired after its TTL must be a miss")
}

func TestRedisStoreRemove(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	s := newTestRedisStore(t)

	// removing an absent key is a no-op
	assert.NoError(s.Remove(ctx, "invoices_123"))

	assert.NoError(s.Set(ctx, "invoices_123", []byte(`{}`), time.Minute))
	assert.NoError(s.Remove(ctx, "invoices_123"))
	_, ok, _ := s.Get(ctx, "invoices_123")
	assert.False(ok)
}

func TestRedisStoreOverwrite(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	s := newTestRedisStore(t)

	assert.NoError(s.Set(ctx, "invoices_123", []byte(`old`), time.Minute))
	assert.NoError(s.Set(ctx, "invoices_123", []byte(`new`), time.Minute))
	val, ok, _ := s.Get(ctx, "invoices_123")
	assert.True(ok)
	assert.Equal([]byte(`new`), val)
}
