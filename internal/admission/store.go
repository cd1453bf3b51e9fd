package admission

import (
	"context"
	"hash/fnv"
	"sync"
	"time"
)

// Counters is the storage contract the gate runs against. Apply must
// make the read-decide-write sequence for a key indivisible with
// respect to concurrent callers of the same key.
type Counters interface {
	// Apply records one request for key under cfg and returns the decision.
	Apply(ctx context.Context, key string, cfg Config, now time.Time) (Decision, error)

	// Prune drops entries whose window closed more than staleAfter before
	// now. Returns the number of entries removed.
	Prune(staleAfter time.Duration, now time.Time) int
}

const (
	storeShards = 64

	// applyPruneCadence is how many applies a shard absorbs before it
	// opportunistically prunes itself, bounding memory even when no
	// background sweeper runs.
	applyPruneCadence = 256

	// DefaultStaleAfter is how long after its window closes an untouched
	// entry survives before pruning.
	DefaultStaleAfter = 10 * time.Minute
)

type shard struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
	windows map[string]time.Duration
	applies int
}

// Store is the process-local Counters implementation: a sharded map
// from admission key to window state. Shards lock independently, so
// distinct keys on distinct shards never contend.
//
// State is per process and not persisted; running multiple server
// processes yields independent quotas per process.
type Store struct {
	shards     [storeShards]*shard
	staleAfter time.Duration
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithStaleAfter overrides how long closed windows linger before
// opportunistic pruning removes them.
func WithStaleAfter(d time.Duration) StoreOption {
	return func(s *Store) {
		s.staleAfter = d
	}
}

// NewStore creates an empty counter store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{staleAfter: DefaultStaleAfter}

	for i := range s.shards {
		s.shards[i] = &shard{
			entries: make(map[string]*windowEntry),
			windows: make(map[string]time.Duration),
		}
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Store) shardFor(key string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))

	return s.shards[h.Sum32()%storeShards]
}

// Apply records one request for key and returns the fixed-window
// decision. The entry is created lazily on first sight. Denied requests
// are counted too: repeated attempts after a denial never reset or
// extend the window. Apply never fails; the error return satisfies
// Counters for the benefit of remote backends.
func (s *Store) Apply(_ context.Context, key string, cfg Config, now time.Time) (Decision, error) {
	sh := s.shardFor(key)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	entry, ok := sh.entries[key]
	if !ok {
		entry = &windowEntry{windowStart: now}
		sh.entries[key] = entry
	}

	// Remember the window so pruning can tell when this entry's window
	// closed without the store ever caching the rest of the config.
	sh.windows[key] = cfg.Window

	decision := step(entry, cfg, now)

	sh.applies++
	if sh.applies >= applyPruneCadence {
		sh.applies = 0
		sh.prune(s.staleAfter, now)
	}

	return decision, nil
}

// Prune removes entries whose window closed more than staleAfter before
// now across all shards and returns how many were dropped. A pruned key
// behaves exactly like a never-seen key on its next request.
func (s *Store) Prune(staleAfter time.Duration, now time.Time) int {
	removed := 0

	for _, sh := range s.shards {
		sh.mu.Lock()
		removed += sh.prune(staleAfter, now)
		sh.mu.Unlock()
	}

	return removed
}

// prune assumes the shard lock is held.
func (sh *shard) prune(staleAfter time.Duration, now time.Time) int {
	removed := 0

	for key, entry := range sh.entries {
		windowEnd := entry.windowStart.Add(sh.windows[key])
		if now.Sub(windowEnd) > staleAfter {
			delete(sh.entries, key)
			delete(sh.windows, key)
			removed++
		}
	}

	return removed
}

// Len returns the number of tracked keys, for health reporting.
func (s *Store) Len() int {
	total := 0

	for _, sh := range s.shards {
		sh.mu.Lock()
		total += len(sh.entries)
		sh.mu.Unlock()
	}

	return total
}
