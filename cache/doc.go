// Package cache implements the cache-aside layer shared by every resource
// service in this client.
//
// It has two halves: a Store (a key/value container with per-entry TTL, with
// in-process memory and redis implementations) and an Accessor (get-or-fetch
// on the read path, mutate-then-invalidate on the write path). Values are
// cached as JSON.
//
// The Store knows nothing about HTTP or domain types; resource services never
// touch entries directly, only through the Accessor.
package cache
