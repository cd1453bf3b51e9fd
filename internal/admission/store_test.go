package admission_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/platemenu/platemenu/internal/admission"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Apply_Concurrency(t *testing.T) {
	// 2N concurrent calls against a key with limit N must admit exactly
	// N, never N+1, regardless of interleaving.
	const n = 50

	store := admission.NewStore()
	cfg := testConfig(n, time.Minute)
	now := time.Now()

	var allowed, denied atomic.Int64

	var wg sync.WaitGroup

	for range 2 * n {
		wg.Add(1)

		go func() {
			defer wg.Done()

			decision, err := store.Apply(context.Background(), "user1:get-menu", cfg, now)
			assert.NoError(t, err)

			if decision.Allowed {
				allowed.Add(1)
			} else {
				denied.Add(1)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, int64(n), allowed.Load())
	assert.Equal(t, int64(n), denied.Load())
}

func TestStore_Prune(t *testing.T) {
	t.Run("removes entries whose window closed long ago", func(t *testing.T) {
		store := admission.NewStore()
		cfg := testConfig(10, time.Minute)
		start := time.Now()

		_, err := store.Apply(context.Background(), "user1:get-menu", cfg, start)
		require.NoError(t, err)
		require.Equal(t, 1, store.Len())

		// Not yet stale: window closed but within the staleness threshold.
		removed := store.Prune(admission.DefaultStaleAfter, start.Add(2*time.Minute))
		assert.Equal(t, 0, removed)
		assert.Equal(t, 1, store.Len())

		removed = store.Prune(admission.DefaultStaleAfter, start.Add(time.Hour))
		assert.Equal(t, 1, removed)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("pruned key behaves like a never-seen key", func(t *testing.T) {
		store := admission.NewStore()
		cfg := testConfig(2, time.Minute)
		start := time.Now()

		for range 3 {
			_, err := store.Apply(context.Background(), "user1:get-menu", cfg, start)
			require.NoError(t, err)
		}

		store.Prune(admission.DefaultStaleAfter, start.Add(time.Hour))

		decision, err := store.Apply(context.Background(), "user1:get-menu", cfg, start.Add(time.Hour))

		require.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.Equal(t, int64(1), decision.Remaining)
	})

	t.Run("keeps entries still inside their window", func(t *testing.T) {
		store := admission.NewStore()
		cfg := testConfig(10, time.Hour)
		start := time.Now()

		_, err := store.Apply(context.Background(), "user1:get-menu", cfg, start)
		require.NoError(t, err)

		removed := store.Prune(admission.DefaultStaleAfter, start.Add(30*time.Minute))

		assert.Equal(t, 0, removed)
		assert.Equal(t, 1, store.Len())
	})
}

func TestStore_Len(t *testing.T) {
	store := admission.NewStore()
	cfg := testConfig(10, time.Minute)
	now := time.Now()

	keys := []string{"user1:get-menu", "user1:update-menu", "user2:get-menu"}
	for _, key := range keys {
		_, err := store.Apply(context.Background(), key, cfg, now)
		require.NoError(t, err)
	}

	assert.Equal(t, len(keys), store.Len())
}

func TestStore_ConfigTravelsPerCall(t *testing.T) {
	// Two call sites may gate different actions with different configs;
	// a limit change takes effect on the very next call.
	store := admission.NewStore()
	now := time.Now()

	strict := testConfig(1, time.Minute)
	relaxed := testConfig(100, time.Minute)

	first, err := store.Apply(context.Background(), "user1:export", strict, now)
	require.NoError(t, err)
	require.True(t, first.Allowed)

	denied, err := store.Apply(context.Background(), "user1:export", strict, now)
	require.NoError(t, err)
	require.False(t, denied.Allowed)

	raised, err := store.Apply(context.Background(), "user1:export", relaxed, now)

	require.NoError(t, err)
	assert.True(t, raised.Allowed, "raised limit applies immediately")
	assert.Equal(t, int64(98), raised.Remaining)
}
