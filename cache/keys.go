package cache

import (
	"sync"

	"github.com/google/go-querystring/query"
)

// Keys builds the cache keys for one resource namespace and remembers every
// list key it has issued, so that invalidation after a mutation covers all
// list variants that could have been populated. Key construction is
// deterministic: equal filter values always encode to byte-identical keys.
//
// The registry is per-process. With a shared store (RedisStore), a mutation
// here cannot invalidate a list variant only ever read by another process;
// that entry stays until its TTL lapses.
type Keys struct {
	resource string

	mu       sync.Mutex
	listKeys map[string]struct{}
}

func NewKeys(resource string) *Keys {
	return &Keys{
		resource: resource,
		listKeys: map[string]struct{}{},
	}
}

// Entity returns the key for a single entity of this resource.
func (k *Keys) Entity(id string) string {
	return k.resource + "_" + id
}

// All returns the key for the unfiltered list of this resource.
func (k *Keys) All() string {
	return k.register(k.resource + "_all")
}

// List returns the key for a filtered list. The filter is a struct with url
// tags (or nil); zero-valued fields are omitted, and the encoded form is
// sorted by parameter name, so semantically equal filters collapse to one
// key. A filter that encodes to nothing is the unfiltered list.
func (k *Keys) List(filter interface{}) (string, error) {
	vals, err := query.Values(filter)
	if err != nil {
		return "", err
	}
	sig := vals.Encode()
	if sig == "" {
		return k.All(), nil
	}
	return k.register(k.resource + "_" + sig), nil
}

// Invalidation returns every key that could be stale after a mutation of the
// entity with the given id: the entity key plus all issued list keys.
func (k *Keys) Invalidation(id string) []string {
	return append([]string{k.Entity(id)}, k.ListKeys()...)
}

// CreateInvalidation returns the keys to drop after a create: only list keys,
// since the new entity has no prior cache entry.
func (k *Keys) CreateInvalidation() []string {
	return k.ListKeys()
}

// ListKeys returns every list key issued so far, in no particular order.
func (k *Keys) ListKeys() []string {
	k.mu.Lock()
	defer k.mu.Unlock()
	out := make([]string, 0, len(k.listKeys))
	for key := range k.listKeys {
		out = append(out, key)
	}
	return out
}

func (k *Keys) register(key string) string {
	k.mu.Lock()
	k.listKeys[key] = struct{}{}
	k.mu.Unlock()
	return key
}
