package poller_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/screener/internal/core/ports/mocks"
	"go.trai.ch/screener/internal/engine/mutation"
	"go.trai.ch/screener/internal/engine/poller"
	"go.trai.ch/screener/internal/engine/querycache"
	"go.uber.org/mock/gomock"
)

func progress(jobID int64, state domain.AnalysisState, analyzed, pending int) *domain.AnalysisProgress {
	total := analyzed + pending
	pct := 0.0
	if total > 0 {
		pct = float64(analyzed) / float64(total) * 100
	}
	return &domain.AnalysisProgress{
		JobID:              jobID,
		AnalysisStatus:     state,
		ProgressPercentage: pct,
		TotalCandidates:    total,
		Analyzed:           analyzed,
		Pending:            pending,
	}
}

func TestPoller_RequiresCandidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAnalysisService(ctrl)
	p := poller.New(querycache.New(), api, 1)

	assert.False(t, p.Enable(0))
	assert.Equal(t, poller.Idle, p.State())
	assert.Nil(t, p.Progress())
}

func TestPoller_SchedulesOnlyWhileInProgress(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockAnalysisService(ctrl)
		gomock.InOrder(
			api.EXPECT().AnalysisStatus(gomock.Any(), int64(1)).Return(progress(1, domain.AnalysisPending, 0, 4), nil),
			api.EXPECT().AnalysisStatus(gomock.Any(), int64(1)).Return(progress(1, domain.AnalysisInProgress, 1, 3), nil),
			api.EXPECT().AnalysisStatus(gomock.Any(), int64(1)).Return(progress(1, domain.AnalysisInProgress, 3, 1), nil),
			api.EXPECT().AnalysisStatus(gomock.Any(), int64(1)).Return(progress(1, domain.AnalysisComplete, 4, 0), nil),
		)

		cache := querycache.New()
		p := poller.New(cache, api, 1)
		require.True(t, p.Enable(4))
		synctest.Wait()

		assert.Equal(t, poller.WatchingInactive, p.State())
		assert.Equal(t, 0, p.Scheduled())

		// Starting the analysis invalidates the observed status entry.
		require.NoError(t, cache.Invalidate(domain.AnalysisStatusKey(1)).Wait(context.Background()))
		synctest.Wait()
		assert.Equal(t, poller.WatchingActive, p.State())
		assert.Equal(t, 1, p.Scheduled())
		assert.True(t, p.IsAnalyzing())

		time.Sleep(2 * time.Second)
		synctest.Wait()
		assert.Equal(t, poller.WatchingActive, p.State())
		assert.Equal(t, 2, p.Scheduled())

		time.Sleep(2 * time.Second)
		synctest.Wait()
		assert.Equal(t, poller.WatchingInactive, p.State())
		assert.Equal(t, 2, p.Scheduled())
		assert.True(t, p.IsComplete())
		assert.False(t, p.IsAnalyzing())

		// No further fetch happens once complete.
		time.Sleep(time.Minute)
		synctest.Wait()
		p.Disable()
	})
}

func TestPoller_StartAnalysisScenario(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockAnalysisService(ctrl)

		var mu sync.Mutex
		var fetchedAt []time.Time
		status := func(p *domain.AnalysisProgress) func(context.Context, int64) (*domain.AnalysisProgress, error) {
			return func(context.Context, int64) (*domain.AnalysisProgress, error) {
				mu.Lock()
				fetchedAt = append(fetchedAt, time.Now())
				mu.Unlock()
				return p, nil
			}
		}

		gomock.InOrder(
			api.EXPECT().AnalysisStatus(gomock.Any(), int64(7)).DoAndReturn(status(progress(7, domain.AnalysisPending, 0, 5))),
			api.EXPECT().StartAnalysis(gomock.Any(), int64(7)).Return(&domain.AnalysisBatchResult{JobID: 7, Total: 5}, nil),
			api.EXPECT().AnalysisStatus(gomock.Any(), int64(7)).DoAndReturn(status(progress(7, domain.AnalysisInProgress, 2, 3))),
			api.EXPECT().AnalysisStatus(gomock.Any(), int64(7)).DoAndReturn(status(progress(7, domain.AnalysisInProgress, 4, 1))),
			api.EXPECT().AnalysisStatus(gomock.Any(), int64(7)).DoAndReturn(status(progress(7, domain.AnalysisComplete, 5, 0))),
		)

		cache := querycache.New()
		mutations := mutation.NewMutations(mutation.NewDispatcher(cache, mutation.WithAwaitRefetch(true)), api)

		var updates []poller.Update
		p := poller.New(cache, api, 7, poller.WithUpdates(func(u poller.Update) {
			mu.Lock()
			updates = append(updates, u)
			mu.Unlock()
		}))
		require.True(t, p.Enable(5))
		synctest.Wait()
		assert.Equal(t, domain.AnalysisPending, p.Progress().AnalysisStatus)

		_, err := mutations.StartAnalysis(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, poller.WatchingActive, p.State())

		time.Sleep(10 * time.Second)
		synctest.Wait()

		assert.Equal(t, poller.WatchingInactive, p.State())
		assert.Equal(t, 5, p.Progress().Analyzed)
		assert.True(t, p.IsComplete())

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, fetchedAt, 4)
		assert.Equal(t, 2*time.Second, fetchedAt[2].Sub(fetchedAt[1]))
		assert.Equal(t, 2*time.Second, fetchedAt[3].Sub(fetchedAt[2]))
		require.Len(t, updates, 4)
		assert.Equal(t, poller.WatchingInactive, updates[0].State)
		assert.Equal(t, poller.WatchingActive, updates[1].State)
		assert.Equal(t, poller.WatchingInactive, updates[3].State)

		p.Disable()
	})
}

func TestPoller_DisableCancelsPendingTick(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockAnalysisService(ctrl)
		api.EXPECT().AnalysisStatus(gomock.Any(), int64(2)).
			Return(progress(2, domain.AnalysisInProgress, 1, 1), nil).Times(1)

		cache := querycache.New()
		p := poller.New(cache, api, 2)
		require.True(t, p.Enable(2))
		synctest.Wait()
		require.Equal(t, poller.WatchingActive, p.State())

		p.Disable()
		assert.Equal(t, poller.Idle, p.State())
		assert.Equal(t, 0, cache.Subscribers(domain.AnalysisStatusKey(2)))

		time.Sleep(10 * time.Second)
		synctest.Wait()
	})
}

func TestPoller_DiscardsLateResult(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockAnalysisService(ctrl)
		release := make(chan struct{})
		api.EXPECT().AnalysisStatus(gomock.Any(), int64(3)).
			DoAndReturn(func(context.Context, int64) (*domain.AnalysisProgress, error) {
				<-release
				return progress(3, domain.AnalysisInProgress, 0, 3), nil
			})

		p := poller.New(querycache.New(), api, 3)
		require.True(t, p.Enable(3))
		synctest.Wait()

		p.Disable()
		close(release)
		synctest.Wait()

		assert.Equal(t, poller.Idle, p.State())
		assert.Nil(t, p.Progress())
		assert.Equal(t, 0, p.Scheduled())
	})
}

func TestPoller_FailedFetchUsesLastGoodSnapshot(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockAnalysisService(ctrl)
		outage := domain.NewTransportError(errors.New("connection refused"))
		gomock.InOrder(
			api.EXPECT().AnalysisStatus(gomock.Any(), int64(4)).Return(progress(4, domain.AnalysisInProgress, 1, 2), nil),
			api.EXPECT().AnalysisStatus(gomock.Any(), int64(4)).Return(nil, outage),
			api.EXPECT().AnalysisStatus(gomock.Any(), int64(4)).Return(progress(4, domain.AnalysisComplete, 3, 0), nil),
		)

		var mu sync.Mutex
		var errs []error
		p := poller.New(querycache.New(), api, 4, poller.WithInterval(time.Second), poller.WithUpdates(func(u poller.Update) {
			mu.Lock()
			errs = append(errs, u.Err)
			mu.Unlock()
		}))
		require.True(t, p.Enable(3))
		synctest.Wait()

		time.Sleep(time.Second)
		synctest.Wait()
		assert.Equal(t, poller.WatchingActive, p.State())
		assert.Equal(t, 1, p.Progress().Analyzed)

		time.Sleep(time.Second)
		synctest.Wait()
		assert.Equal(t, poller.WatchingInactive, p.State())

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, errs, 3)
		assert.NoError(t, errs[0])
		assert.ErrorIs(t, errs[1], domain.ErrRequestFailed)
		assert.NoError(t, errs[2])
		p.Disable()
	})
}

func TestPoller_UsesFreshCachedSnapshot(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockAnalysisService(ctrl)
		api.EXPECT().AnalysisStatus(gomock.Any(), int64(6)).Return(progress(6, domain.AnalysisComplete, 2, 0), nil)

		cache := querycache.New()
		_, err := cache.Fetch(context.Background(), domain.AnalysisStatusKey(6), func(context.Context) (any, error) {
			return progress(6, domain.AnalysisInProgress, 1, 1), nil
		}, querycache.Policy{})
		require.NoError(t, err)

		p := poller.New(cache, api, 6)
		require.True(t, p.Enable(2))
		assert.Equal(t, poller.WatchingActive, p.State())

		time.Sleep(2 * time.Second)
		synctest.Wait()
		assert.True(t, p.IsComplete())
		p.Disable()
	})
}

func TestPoller_EnableTwice(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockAnalysisService(ctrl)
		api.EXPECT().AnalysisStatus(gomock.Any(), int64(5)).Return(progress(5, domain.AnalysisPending, 0, 1), nil).Times(1)

		cache := querycache.New()
		p := poller.New(cache, api, 5)
		require.True(t, p.Enable(1))
		require.True(t, p.Enable(1))
		synctest.Wait()

		assert.Equal(t, 1, cache.Subscribers(domain.AnalysisStatusKey(5)))
		p.Disable()
	})
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", poller.Idle.String())
	assert.Equal(t, "watching", poller.WatchingInactive.String())
	assert.Equal(t, "polling", poller.WatchingActive.String())
}
