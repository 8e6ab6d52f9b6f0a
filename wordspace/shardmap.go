package wordspace

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// shardCount is the number of stripes the term and context tables are
// split across. A power of two keeps the modulo in shardFor a mask.
const shardCount = 16

// shardedMap is a fixed-stripe concurrent map keyed by string, each
// stripe guarded independently so that lookups and inserts against
// different keys in different shards never contend. It mirrors
// core.Graph's muVert/muEdgeAdj split: many cheap RLocks, one Lock only
// for the shard actually being written.
type shardedMap[V any] struct {
	shards [shardCount]shard[V]
}

type shard[V any] struct {
	mu sync.RWMutex
	m  map[string]V
}

func newShardedMap[V any]() *shardedMap[V] {
	sm := &shardedMap[V]{}
	for i := range sm.shards {
		sm.shards[i].m = make(map[string]V)
	}
	return sm
}

func shardFor[V any](sm *shardedMap[V], key string) *shard[V] {
	h := xxhash.Sum64String(key)
	return &sm.shards[h%uint64(shardCount)]
}

// Lookup returns the value stored at key and whether it was present.
func (sm *shardedMap[V]) Lookup(key string) (V, bool) {
	sh := shardFor(sm, key)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	v, ok := sh.m[key]
	return v, ok
}

// Contains reports whether key is present.
func (sm *shardedMap[V]) Contains(key string) bool {
	_, ok := sm.Lookup(key)
	return ok
}

// Store unconditionally overwrites the value at key.
func (sm *shardedMap[V]) Store(key string, v V) {
	sh := shardFor(sm, key)
	sh.mu.Lock()
	sh.m[key] = v
	sh.mu.Unlock()
}

// LoadOrStore returns the existing value at key if present; otherwise it
// stores candidate and returns it. The boolean reports whether candidate
// was the one stored (false means another goroutine won the race and its
// value is returned instead).
func (sm *shardedMap[V]) LoadOrStore(key string, candidate V) (V, bool) {
	sh := shardFor(sm, key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if existing, ok := sh.m[key]; ok {
		return existing, false
	}
	sh.m[key] = candidate
	return candidate, true
}

// Len returns the total number of entries across all shards.
func (sm *shardedMap[V]) Len() int {
	total := 0
	for i := range sm.shards {
		sm.shards[i].mu.RLock()
		total += len(sm.shards[i].m)
		sm.shards[i].mu.RUnlock()
	}
	return total
}
