package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type memEntry struct {
	val     []byte
	expires time.Time
}

// MemStore is an in-process Store bounded by an LRU. Entries carry their own
// expiry so callers can mix TTLs within one store; the LRU only bounds memory.
type MemStore struct {
	data *expirable.LRU[string, memEntry]
}

var _ Store = (*MemStore)(nil)

// NewMemStore returns a memory-backed store holding at most capacity entries.
// Capacity of zero means unlimited size.
func NewMemStore(capacity int) *MemStore {
	return &MemStore{
		data: expirable.NewLRU[string, memEntry](capacity, nil, 0),
	}
}

func (s *MemStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	e, ok := s.data.Get(key)
	if !ok {
		return nil, false, nil
	}
	if time.Now().After(e.expires) {
		s.data.Remove(key)
		return nil, false, nil
	}
	return e.val, true, nil
}

func (s *MemStore) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	s.data.Add(key, memEntry{val: val, expires: time.Now().Add(ttl)})
	return nil
}

func (s *MemStore) Remove(ctx context.Context, key string) error {
	s.data.Remove(key)
	return nil
}
