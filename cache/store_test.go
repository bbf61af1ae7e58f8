package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemStoreRoundtrip(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	s := NewMemStore(0)

	_, ok, err := s.Get(ctx, "contact_1")
	assert.NoError(err)
	assert.False(ok)

	assert.NoError(s.Set(ctx, "contact_1", []byte(`{"a":1}`), time.Minute))
	val, ok, err := s.Get(ctx, "contact_1")
	assert.NoError(err)
	assert.True(ok)
	assert.Equal([]byte(`{"a":1}`), val)
}

func TestMemStoreOverwrite(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	s := NewMemStore(0)

	assert.NoError(s.Set(ctx, "contact_1", []byte(`old`), time.Minute))
	assert.NoError(s.Set(ctx, "contact_1", []byte(`new`), time.Minute))
	val, ok, _ := s.Get(ctx, "contact_1")
	assert.True(ok)
	assert.Equal([]byte(`new`), val)
}

func TestMemStoreExpiry(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	s := NewMemStore(0)

	// already expired on arrival
	assert.NoError(s.Set(ctx, "contact_1", []byte(`{}`), -time.Second))
	_, ok, err := s.Get(ctx, "contact_1")
	assert.NoError(err)
	assert.False(ok)

	assert.NoError(s.Set(ctx, "contact_2", []byte(`{}`), 20*time.Millisecond))
	_, ok, _ = s.Get(ctx, "contact_2")
	assert.True(ok)
	time.Sleep(40 * time.Millisecond)
	_, ok, _ = s.Get(ctx, "contact_2")
	assert.False(ok)
}

func TestMemStoreRemove(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	s := NewMemStore(0)

	// removing an absent key is a no-op
	assert.NoError(s.Remove(ctx, "contact_1"))

	assert.NoError(s.Set(ctx, "contact_1", []byte(`{}`), time.Minute))
	assert.NoError(s.Remove(ctx, "contact_1"))
	_, ok, _ := s.Get(ctx, "contact_1")
	assert.False(ok)
}

func TestMemStoreCapacity(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	s := NewMemStore(2)

	assert.NoError(s.Set(ctx, "a", []byte(`1`), time.Minute))
	assert.NoError(s.Set(ctx, "b", []byte(`2`), time.Minute))
	assert.NoError(s.Set(ctx, "c", []byte(`3`), time.Minute))

	_, ok, _ := s.Get(ctx, "a")
	assert.False(ok, "oldest entry should have been evicted")
	_, ok, _ = s.Get(ctx, "c")
	assert.True(ok)
}
