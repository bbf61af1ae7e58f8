package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

// Accessor is the per-resource cache-aside helper. It owns no state beyond a
// handle on the Store and a resource label for metrics; the slow fetch and
// mutate operations always run outside any lock held by the Store.
type Accessor struct {
	store    Store
	resource string
	log      *slog.Logger
}

func NewAccessor(store Store, resource string) *Accessor {
	return &Accessor{
		store:    store,
		resource: resource,
		log:      slog.Default().With("system", "cache", "resource", resource),
	}
}

// GetOrFetch returns the value cached under key if a fresh entry exists,
// without invoking fetch. Otherwise it invokes fetch; on success the result
// is cached under key for ttl and returned, on failure the error propagates
// and nothing is cached. Concurrent misses for the same key may each perform
// the fetch; the later Set simply overwrites the earlier one.
func GetOrFetch[V any](ctx context.Context, a *Accessor, key string, ttl time.Duration, fetch func(ctx context.Context) (V, error)) (V, error) {
	var val V

	data, ok, err := a.store.Get(ctx, key)
	if err != nil {
		// a broken store read is a miss, never a failure
		a.log.Warn("cache read failed", "key", key, "err", err)
	} else if ok {
		if err := json.Unmarshal(data, &val); err == nil {
			cacheHits.WithLabelValues(a.resource).Inc()
			return val, nil
		}
		// undecodable entry (schema drift); fall through to refetch
		a.log.Warn("discarding undecodable cache entry", "key", key)
	}
	cacheMisses.WithLabelValues(a.resource).Inc()

	val, err = fetch(ctx)
	if err != nil {
		var zero V
		return zero, err
	}

	data, err = json.Marshal(val)
	if err != nil {
		// still return the fetched value; it just goes uncached
		a.log.Warn("cache encode failed", "key", key, "err", err)
		return val, nil
	}
	if err := a.store.Set(ctx, key, data, ttl); err != nil {
		a.log.Warn("cache write failed", "key", key, "err", err)
	}
	return val, nil
}

// MutateAndInvalidate invokes mutate. On failure the error propagates and no
// invalidation is performed, leaving the cache at its last known-good state.
// On success every key in keys is removed from the store and the mutation's
// result is returned. Removals are not atomic across keys; a removal that
// fails only risks serving a stale entry until its TTL lapses.
func MutateAndInvalidate[V any](ctx context.Context, a *Accessor, mutate func(ctx context.Context) (V, error), keys ...string) (V, error) {
	val, err := mutate(ctx)
	if err != nil {
		var zero V
		return zero, err
	}

	for _, key := range keys {
		if err := a.store.Remove(ctx, key); err != nil {
			a.log.Warn("cache invalidation failed", "key", key, "err", err)
			continue
		}
		cacheInvalidations.WithLabelValues(a.resource).Inc()
	}
	return val, nil
}
