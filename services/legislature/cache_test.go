package legislature

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSnapshotCacheServesFreshWithoutRefetch(t *testing.T) {
	source := &fakeSource{}
	cache := NewSnapshotCache(NewBuilder(source, testConfig()), time.Hour)

	first, err := cache.Get(context.Background(), false)
	require.NoError(t, err)
	require.Equal(t, int64(1), source.memberListCalls.Load())
	require.Equal(t, CacheFresh, cache.State())

	second, err := cache.Get(context.Background(), false)
	require.NoError(t, err)
	require.Same(t, first, second)
	require.Equal(t, int64(1), source.memberListCalls.Load())
}

func TestSnapshotCacheForceRebuilds(t *testing.T) {
	source := &fakeSource{}
	cache := NewSnapshotCache(NewBuilder(source, testConfig()), time.Hour)

	first, err := cache.Get(context.Background(), false)
	require.NoError(t, err)

	second, err := cache.Get(context.Background(), true)
	require.NoError(t, err)
	require.NotSame(t, first, second)
	require.Equal(t, int64(2), source.memberListCalls.Load())
}

func TestSnapshotCacheInvalidate(t *testing.T) {
	source := &fakeSource{}
	cache := NewSnapshotCache(NewBuilder(source, testConfig()), time.Hour)

	first, err := cache.Get(context.Background(), false)
	require.NoError(t, err)
	builtAt := first.BuiltAt

	cache.Invalidate()
	require.Equal(t, CacheStale, cache.State())
	// the snapshot a caller already holds is untouched
	require.Equal(t, builtAt, first.BuiltAt)

	_, err = cache.Get(context.Background(), false)
	require.NoError(t, err)
	require.Equal(t, int64(2), source.memberListCalls.Load())
}

func TestSnapshotCacheDeduplicatesConcurrentBuilds(t *testing.T) {
	source := &fakeSource{gate: make(chan struct{})}
	cache := NewSnapshotCache(NewBuilder(source, testConfig()), time.Hour)

	var wg sync.WaitGroup
	results := make([]*Snapshot, 8)
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			snapshot, err := cache.Get(context.Background(), false)
			require.NoError(t, err)
			results[i] = snapshot
		}()
	}

	// let every goroutine reach the cache before the build finishes
	time.Sleep(100 * time.Millisecond)
	require.Equal(t, CacheBuilding, cache.State())
	close(source.gate)
	wg.Wait()

	require.Equal(t, int64(1), source.memberListCalls.Load())
	for _, snapshot := range results[1:] {
		require.Same(t, results[0], snapshot)
	}
}

func TestSnapshotCacheServesStaleOnRebuildFailure(t *testing.T) {
	source := &fakeSource{}
	cache := NewSnapshotCache(NewBuilder(source, testConfig()), time.Hour)

	first, err := cache.Get(context.Background(), false)
	require.NoError(t, err)

	source.failMemberList.Store(true)
	second, err := cache.Get(context.Background(), true)

	var staleErr *StaleSnapshotError
	require.ErrorAs(t, err, &staleErr)
	require.Same(t, first, second)
	require.Equal(t, CacheStale, cache.State())
	require.Error(t, cache.LastError())

	// the failure sticks: a plain read within the TTL still surfaces it
	third, err := cache.Get(context.Background(), false)
	require.ErrorAs(t, err, &staleErr)
	require.Same(t, first, third)

	// and clears once a build succeeds again
	source.failMemberList.Store(false)
	fourth, err := cache.Get(context.Background(), false)
	require.NoError(t, err)
	require.NotSame(t, first, fourth)
	require.Equal(t, CacheFresh, cache.State())
	require.NoError(t, cache.LastError())
}

func TestSnapshotCacheFailsWhenNothingCached(t *testing.T) {
	source := &fakeSource{}
	source.failMemberList.Store(true)
	cache := NewSnapshotCache(NewBuilder(source, testConfig()), time.Hour)

	snapshot, err := cache.Get(context.Background(), false)
	require.Error(t, err)
	require.Nil(t, snapshot)
	require.False(t, errors.As(err, new(*StaleSnapshotError)))
	require.Equal(t, CacheEmpty, cache.State())
}
