package querycache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/screener/internal/engine/querycache"
)

type job struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// countingFetcher returns a fetcher that counts its calls and returns value.
func countingFetcher(calls *atomic.Int32, value any) querycache.Fetcher {
	return func(context.Context) (any, error) {
		calls.Add(1)
		return value, nil
	}
}

// gatedFetcher blocks every call until release is closed.
func gatedFetcher(calls *atomic.Int32, release <-chan struct{}, value any) querycache.Fetcher {
	return func(context.Context) (any, error) {
		calls.Add(1)
		<-release
		return value, nil
	}
}

func fill(t *testing.T, c *querycache.Cache, key domain.Key, value any) {
	t.Helper()
	var calls atomic.Int32
	_, err := c.Fetch(context.Background(), key, countingFetcher(&calls, value), querycache.Policy{})
	require.NoError(t, err)
}

func TestCache_ReadAbsent(t *testing.T) {
	c := querycache.New()

	entry, ok := c.Read(domain.JobListKey())
	assert.False(t, ok)
	assert.Equal(t, domain.StatusIdle, entry.Status)
	assert.Nil(t, entry.Value)
}

func TestCache_EnsureFresh_Coalesces(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		c := querycache.New()
		key := domain.JobDetailKey(1)
		release := make(chan struct{})
		var calls atomic.Int32
		want := &job{ID: 1, Title: "Backend Engineer"}

		results := make([]<-chan querycache.Result, 5)
		for i := range results {
			results[i] = c.EnsureFresh(key, gatedFetcher(&calls, release, want), querycache.Policy{})
		}
		synctest.Wait()

		entry, ok := c.Read(key)
		require.True(t, ok)
		assert.Equal(t, domain.StatusLoading, entry.Status)

		close(release)
		for _, ch := range results {
			r := <-ch
			require.NoError(t, r.Err)
			assert.Same(t, want, r.Entry.Value)
		}
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestCache_EnsureFresh_ServesFreshEntry(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		c := querycache.New(querycache.WithStaleTime(5 * time.Minute))
		key := domain.JobListKey()
		var calls atomic.Int32
		fetch := countingFetcher(&calls, []job{{ID: 1}})

		r := <-c.EnsureFresh(key, fetch, querycache.Policy{})
		require.True(t, r.Fetched)

		r = <-c.EnsureFresh(key, fetch, querycache.Policy{})
		assert.False(t, r.Fetched)
		assert.Equal(t, int32(1), calls.Load())

		time.Sleep(5*time.Minute + time.Second)

		r = <-c.EnsureFresh(key, fetch, querycache.Policy{})
		assert.True(t, r.Fetched)
		assert.Equal(t, int32(2), calls.Load())
	})
}

func TestCache_EnsureFresh_ForceRefetch(t *testing.T) {
	c := querycache.New()
	key := domain.SettingsKey()
	var calls atomic.Int32
	fetch := countingFetcher(&calls, "v")

	<-c.EnsureFresh(key, fetch, querycache.Policy{})
	<-c.EnsureFresh(key, fetch, querycache.Policy{ForceRefetch: true})

	assert.Equal(t, int32(2), calls.Load())
}

func TestCache_Invalidate_Prefix(t *testing.T) {
	c := querycache.New()
	fill(t, c, domain.JobListKey(), "list")
	fill(t, c, domain.JobDetailKey(1), "detail")
	fill(t, c, domain.JobStatsKey(1), "stats")
	fill(t, c, domain.CandidateListKey(1), "candidates")

	inv := c.Invalidate(domain.JobsKey())
	assert.Len(t, inv.Keys, 3)
	assert.Empty(t, inv.Refetched)

	for _, key := range []domain.Key{domain.JobListKey(), domain.JobDetailKey(1), domain.JobStatsKey(1)} {
		entry, _ := c.Read(key)
		assert.True(t, entry.Stale, key.Display())
	}
	entry, _ := c.Read(domain.CandidateListKey(1))
	assert.False(t, entry.Stale)
}

func TestCache_Invalidate_RefetchesObservedOnly(t *testing.T) {
	c := querycache.New()
	observed := domain.CandidateListKey(3)
	unobserved := domain.CandidateDetailKey(9)

	var observedCalls, unobservedCalls atomic.Int32
	var mu sync.Mutex
	var seen []domain.FetchStatus
	unsubscribe := c.Observe(observed, countingFetcher(&observedCalls, []string{"a"}), querycache.Policy{}, func(e domain.Entry) {
		mu.Lock()
		seen = append(seen, e.Status)
		mu.Unlock()
	})
	defer unsubscribe()

	_, err := c.Fetch(context.Background(), observed, nil, querycache.Policy{})
	require.NoError(t, err)
	fill(t, c, unobserved, "detail")
	_, err = c.Fetch(context.Background(), unobserved, countingFetcher(&unobservedCalls, "detail"), querycache.Policy{})
	require.NoError(t, err)

	inv := c.Invalidate(domain.CandidatesKey())
	require.NoError(t, inv.Wait(context.Background()))

	assert.Equal(t, int32(2), observedCalls.Load())
	assert.Equal(t, int32(0), unobservedCalls.Load())
	require.Len(t, inv.Refetched, 1)
	assert.True(t, inv.Refetched[0].Equal(observed))

	entry, _ := c.Read(observed)
	assert.False(t, entry.Stale)
	entry, _ = c.Read(unobserved)
	assert.True(t, entry.Stale)

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, seen, domain.StatusLoading)
	assert.Equal(t, domain.StatusSuccess, seen[len(seen)-1])
}

func TestCache_Unsubscribe_StopsEagerRefetch(t *testing.T) {
	c := querycache.New()
	key := domain.JobListKey()
	var calls atomic.Int32

	unsubscribe := c.Observe(key, countingFetcher(&calls, "x"), querycache.Policy{}, nil)
	_, err := c.Fetch(context.Background(), key, nil, querycache.Policy{})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Subscribers(key))

	unsubscribe()
	unsubscribe()
	assert.Equal(t, 0, c.Subscribers(key))

	inv := c.Invalidate(key)
	require.NoError(t, inv.Wait(context.Background()))
	assert.Equal(t, int32(1), calls.Load())
}

func TestCache_FailureKeepsLastGoodValue(t *testing.T) {
	c := querycache.New()
	key := domain.AnalysisStatusKey(4)
	other := domain.JobListKey()
	fill(t, c, other, "jobs")

	good := &job{ID: 4}
	_, err := c.Fetch(context.Background(), key, countingFetcher(new(atomic.Int32), good), querycache.Policy{})
	require.NoError(t, err)

	boom := errors.New("HTTP 500: Internal Server Error")
	failing := func(context.Context) (any, error) { return nil, boom }

	entry, err := c.Fetch(context.Background(), key, failing, querycache.Policy{ForceRefetch: true})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, domain.StatusError, entry.Status)
	assert.Same(t, good, entry.Value)
	assert.ErrorIs(t, entry.Err, boom)

	otherEntry, _ := c.Read(other)
	assert.Equal(t, domain.StatusSuccess, otherEntry.Status)
	assert.NoError(t, otherEntry.Err)
}

func TestCache_InvalidateDuringFetch(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		c := querycache.New()
		key := domain.AnalysisStatusKey(1)
		release := make(chan struct{})
		var calls atomic.Int32
		fetch := func(context.Context) (any, error) {
			if calls.Add(1) == 1 {
				<-release
				return "old", nil
			}
			return "new", nil
		}

		unsubscribe := c.Observe(key, fetch, querycache.Policy{}, nil)
		defer unsubscribe()
		synctest.Wait()

		inv := c.Invalidate(domain.NewKey("analysis"))
		assert.Empty(t, inv.Refetched)

		close(release)
		synctest.Wait()

		assert.Equal(t, int32(2), calls.Load())
		entry, _ := c.Read(key)
		assert.Equal(t, "new", entry.Value)
		assert.False(t, entry.Stale)
		assert.Equal(t, domain.StatusSuccess, entry.Status)
	})
}

func TestCache_InvalidateDuringFetch_Unobserved(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		c := querycache.New()
		key := domain.JobStatsKey(2)
		release := make(chan struct{})
		var calls atomic.Int32

		ch := c.EnsureFresh(key, gatedFetcher(&calls, release, "stats"), querycache.Policy{})
		synctest.Wait()

		c.Invalidate(key)
		close(release)
		r := <-ch
		synctest.Wait()

		require.NoError(t, r.Err)
		assert.True(t, r.Entry.Stale)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestCache_StructuralSharing(t *testing.T) {
	c := querycache.New()
	key := domain.JobDetailKey(5)
	first := &job{ID: 5, Title: "SRE"}

	_, err := c.Fetch(context.Background(), key, countingFetcher(new(atomic.Int32), first), querycache.Policy{})
	require.NoError(t, err)

	r := <-c.EnsureFresh(key, countingFetcher(new(atomic.Int32), &job{ID: 5, Title: "SRE"}), querycache.Policy{ForceRefetch: true})
	require.NoError(t, r.Err)
	assert.False(t, r.Changed)
	assert.Same(t, first, r.Entry.Value)

	r = <-c.EnsureFresh(key, countingFetcher(new(atomic.Int32), &job{ID: 5, Title: "Staff SRE"}), querycache.Policy{ForceRefetch: true})
	require.NoError(t, r.Err)
	assert.True(t, r.Changed)
	assert.Equal(t, "Staff SRE", r.Entry.Value.(*job).Title)
}

func TestCache_EvictDiscardsInflightResult(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		c := querycache.New()
		key := domain.CandidateDetailKey(8)
		release := make(chan struct{})

		ch := c.EnsureFresh(key, gatedFetcher(new(atomic.Int32), release, "late"), querycache.Policy{})
		synctest.Wait()

		assert.Equal(t, 1, c.Evict(domain.CandidatesKey()))
		close(release)
		<-ch

		_, ok := c.Read(key)
		assert.False(t, ok)
	})
}

func TestCache_Get(t *testing.T) {
	c := querycache.New()
	key := domain.JobDetailKey(3)

	got, err := querycache.Get(context.Background(), c, key, func(context.Context) (*job, error) {
		return &job{ID: 3}, nil
	}, querycache.Policy{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)

	_, err = querycache.Get(context.Background(), c, key, func(context.Context) (string, error) {
		return "", nil
	}, querycache.Policy{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected cache value type")
}

func TestCache_Close(t *testing.T) {
	c := querycache.New()
	c.Close()

	_, err := c.Fetch(context.Background(), domain.SettingsKey(), countingFetcher(new(atomic.Int32), "x"), querycache.Policy{})
	assert.ErrorIs(t, err, domain.ErrCacheClosed)
}

func TestCache_Fetch_ContextCanceled(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		c := querycache.New()
		release := make(chan struct{})
		defer close(release)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.Fetch(ctx, domain.SettingsKey(), gatedFetcher(new(atomic.Int32), release, "x"), querycache.Policy{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCache_Observe_FreshEntryNotifiesImmediately(t *testing.T) {
	c := querycache.New()
	key := domain.JobStatsKey(2)
	fill(t, c, key, "stats")

	var calls atomic.Int32
	var seen []domain.Entry
	unsubscribe := c.Observe(key, countingFetcher(&calls, "other"), querycache.Policy{}, func(e domain.Entry) {
		seen = append(seen, e)
	})
	defer unsubscribe()

	require.Len(t, seen, 1)
	assert.Equal(t, domain.StatusSuccess, seen[0].Status)
	assert.Equal(t, "stats", seen[0].Value)
	assert.Equal(t, int32(0), calls.Load())
	assert.Equal(t, 1, c.Subscribers(key))

	unsubscribe()
	assert.Equal(t, 0, c.Subscribers(key))
}
