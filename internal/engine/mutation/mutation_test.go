package mutation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/screener/internal/core/ports"
	"go.trai.ch/screener/internal/core/ports/mocks"
	"go.trai.ch/screener/internal/engine/mutation"
	"go.trai.ch/screener/internal/engine/querycache"
	"go.uber.org/mock/gomock"
)

// recordingInvalidator captures invalidated prefixes.
type recordingInvalidator struct {
	prefixes []domain.Key
}

func (r *recordingInvalidator) Invalidate(prefix domain.Key) *querycache.Invalidation {
	r.prefixes = append(r.prefixes, prefix)
	return &querycache.Invalidation{Keys: []domain.Key{prefix}}
}

func (r *recordingInvalidator) displays() []string {
	out := make([]string, 0, len(r.prefixes))
	for _, p := range r.prefixes {
		out = append(out, p.Display())
	}
	return out
}

func seed(t *testing.T, c *querycache.Cache, key domain.Key, value any) {
	t.Helper()
	_, err := c.Fetch(context.Background(), key, func(context.Context) (any, error) {
		return value, nil
	}, querycache.Policy{})
	require.NoError(t, err)
}

func isStale(c *querycache.Cache, key domain.Key) bool {
	entry, _ := c.Read(key)
	return entry.Stale
}

func TestInvalidations_CoverEveryKind(t *testing.T) {
	for _, kind := range mutation.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			keys, ok := mutation.Invalidations(kind, mutation.Scope{JobID: 1, CandidateID: 2})
			require.True(t, ok)
			assert.NotEmpty(t, keys)
		})
	}

	_, ok := mutation.Invalidations(mutation.Kind("rename_job"), mutation.Scope{})
	assert.False(t, ok)
}

func TestInvalidations_Table(t *testing.T) {
	tests := []struct {
		kind  mutation.Kind
		scope mutation.Scope
		want  []string
	}{
		{mutation.CreateJob, mutation.Scope{}, []string{"[jobs, list]"}},
		{mutation.UpdateJob, mutation.Scope{JobID: 4}, []string{"[jobs, list]", "[jobs, detail, 4]"}},
		{mutation.DeleteJob, mutation.Scope{JobID: 4}, []string{
			"[jobs, list]", "[jobs, detail, 4]", "[candidates, list, 4]", "[analysis, status, 4]",
		}},
		{mutation.DeleteCandidate, mutation.Scope{JobID: 4, CandidateID: 9}, []string{
			"[candidates, list, 4]", "[jobs, detail, 4, stats]", "[jobs, list]", "[analysis, status, 4]", "[candidates, detail, 9]",
		}},
		{mutation.DeleteCandidates, mutation.Scope{JobID: 4, CandidateIDs: []int64{7, 8}}, []string{
			"[candidates, list, 4]", "[jobs, detail, 4, stats]", "[jobs, list]", "[analysis, status, 4]",
			"[candidates, detail, 7]", "[candidates, detail, 8]",
		}},
		{mutation.RetryAnalysis, mutation.Scope{JobID: 4, CandidateIDs: []int64{7}}, []string{
			"[analysis, status, 4]", "[candidates, list, 4]", "[jobs, detail, 4, stats]", "[jobs, list]",
			"[candidates, detail, 7]",
		}},
		{mutation.ReanalyzeCandidate, mutation.Scope{JobID: 4, CandidateID: 9}, []string{
			"[candidates, list, 4]", "[candidates, detail, 9]", "[jobs, detail, 4, stats]", "[analysis, status, 4]",
		}},
		{mutation.StartAnalysis, mutation.Scope{JobID: 4}, []string{
			"[analysis, status, 4]", "[candidates, list, 4]", "[jobs, detail, 4, stats]", "[jobs, list]",
		}},
		{mutation.UpdateSettings, mutation.Scope{}, []string{"[settings]", "[system, status]"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			keys, ok := mutation.Invalidations(tt.kind, tt.scope)
			require.True(t, ok)
			got := make([]string, 0, len(keys))
			for _, k := range keys {
				got = append(got, k.Display())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDispatch_InvalidatesOnSuccess(t *testing.T) {
	inv := &recordingInvalidator{}
	d := mutation.NewDispatcher(inv)

	got, result, err := mutation.Dispatch(context.Background(), d, mutation.UpdateSettings, mutation.Scope{},
		func(context.Context) (string, error) { return "saved", nil })

	require.NoError(t, err)
	assert.Equal(t, "saved", got)
	assert.Len(t, result.Keys, 2)
	assert.Equal(t, []string{"[settings]", "[system, status]"}, inv.displays())
}

func TestDispatch_NoInvalidationOnFailure(t *testing.T) {
	inv := &recordingInvalidator{}
	d := mutation.NewDispatcher(inv)
	failure := domain.NewRequestError(404, "Job 12 not found")
	calls := 0

	_, result, err := mutation.Dispatch(context.Background(), d, mutation.DeleteJob, mutation.Scope{JobID: 12},
		func(context.Context) (struct{}, error) {
			calls++
			return struct{}{}, failure
		})

	require.ErrorIs(t, err, domain.ErrRequestFailed)
	var reqErr *domain.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "Job 12 not found", reqErr.Message)
	assert.Nil(t, result)
	assert.Empty(t, inv.prefixes)
	assert.Equal(t, 1, calls, "failed mutations are not retried")
}

func TestDispatch_UnknownKind(t *testing.T) {
	d := mutation.NewDispatcher(&recordingInvalidator{})
	called := false

	_, _, err := mutation.Dispatch(context.Background(), d, mutation.Kind("archive_job"), mutation.Scope{},
		func(context.Context) (int, error) {
			called = true
			return 0, nil
		})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mutation kind")
	assert.False(t, called)
}

func TestDispatch_RecordsTelemetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	tel := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)
	failure := errors.New("boom")

	tel.EXPECT().Record(gomock.Any(), "mutation start_analysis").
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		})
	vertex.EXPECT().Complete(failure)

	d := mutation.NewDispatcher(&recordingInvalidator{}, mutation.WithTelemetry(tel))
	_, _, err := mutation.Dispatch(context.Background(), d, mutation.StartAnalysis, mutation.Scope{JobID: 1},
		func(context.Context) (int, error) { return 0, failure })
	require.ErrorIs(t, err, failure)
}

func TestMutations_DeleteCandidate_MarksListAndStatsStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAnalysisService(ctrl)
	cache := querycache.New()
	m := mutation.NewMutations(mutation.NewDispatcher(cache), api)

	seed(t, cache, domain.CandidateListKey(7), []domain.Candidate{{ID: 1}, {ID: 2}})
	seed(t, cache, domain.JobStatsKey(7), &domain.JobStats{JobID: 7})
	seed(t, cache, domain.CandidateListKey(8), []domain.Candidate{{ID: 3}})

	api.EXPECT().DeleteCandidate(gomock.Any(), int64(2)).Return(nil)

	require.NoError(t, m.DeleteCandidate(context.Background(), 7, 2))
	assert.True(t, isStale(cache, domain.CandidateListKey(7)))
	assert.True(t, isStale(cache, domain.JobStatsKey(7)))
	assert.False(t, isStale(cache, domain.CandidateListKey(8)))
}

func TestMutations_DeleteCandidates_MarksDetailsStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAnalysisService(ctrl)
	cache := querycache.New()
	m := mutation.NewMutations(mutation.NewDispatcher(cache), api)

	seed(t, cache, domain.CandidateListKey(7), []domain.Candidate{{ID: 1}, {ID: 2}, {ID: 3}})
	seed(t, cache, domain.CandidateDetailKey(1), &domain.CandidateWithJob{})
	seed(t, cache, domain.CandidateDetailKey(2), &domain.CandidateWithJob{})
	seed(t, cache, domain.CandidateDetailKey(3), &domain.CandidateWithJob{})

	api.EXPECT().DeleteCandidates(gomock.Any(), int64(7), []int64{1, 2}).
		Return(&domain.BulkDeleteResult{Deleted: 2}, nil)

	res, err := m.DeleteCandidates(context.Background(), 7, []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Deleted)
	assert.True(t, isStale(cache, domain.CandidateListKey(7)))
	assert.True(t, isStale(cache, domain.CandidateDetailKey(1)))
	assert.True(t, isStale(cache, domain.CandidateDetailKey(2)))
	assert.False(t, isStale(cache, domain.CandidateDetailKey(3)))
}

func TestMutations_CreateJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAnalysisService(ctrl)
	cache := querycache.New()
	m := mutation.NewMutations(mutation.NewDispatcher(cache), api)

	_, ok := cache.Read(domain.JobListKey())
	require.False(t, ok)
	seed(t, cache, domain.JobListKey(), []domain.Job{})

	req := domain.CreateJobRequest{
		Title:        "Engineer",
		Company:      "Acme",
		Description:  "...",
		Requirements: []string{"X"},
		Skills:       []string{"Y"},
	}
	created := &domain.Job{ID: 42, Title: "Engineer", Company: "Acme", Status: domain.JobActive}
	api.EXPECT().CreateJob(gomock.Any(), req).Return(created, nil)

	job, err := m.CreateJob(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(42), job.ID)
	assert.True(t, isStale(cache, domain.JobListKey()))

	api.EXPECT().ListJobs(gomock.Any(), domain.JobStatus("")).Return([]domain.Job{*created}, nil)
	entry, err := cache.Fetch(context.Background(), domain.JobListKey(), querycache.Typed(func(ctx context.Context) ([]domain.Job, error) {
		return api.ListJobs(ctx, "")
	}), querycache.Policy{})
	require.NoError(t, err)
	assert.False(t, entry.Stale)
	assert.Len(t, entry.Value, 1)
}

func TestMutations_UploadCVs_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAnalysisService(ctrl)
	cache := querycache.New()
	m := mutation.NewMutations(mutation.NewDispatcher(cache), api)
	seed(t, cache, domain.CandidateListKey(3), []domain.Candidate{})

	files := []domain.UploadFile{
		{Name: "a.pdf", Content: []byte("%PDF")},
		{Name: "b.pdf", Content: []byte("%PDF")},
		{Name: "c.exe", Content: []byte("MZ")},
	}
	api.EXPECT().UploadCVs(gomock.Any(), int64(3), files).Return(&domain.UploadResult{
		Uploaded: 2,
		Failed:   1,
		Candidates: []domain.UploadedCandidate{
			{ID: 10, Filename: "a.pdf", Status: "pending"},
			{ID: 11, Filename: "b.pdf", Status: "pending"},
		},
		Errors: []domain.UploadFailure{{Filename: "c.exe", Error: "Invalid file type"}},
	}, nil)

	res, err := m.UploadCVs(context.Background(), 3, files)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Uploaded)
	assert.Equal(t, 1, res.Failed)
	assert.Len(t, res.Candidates, 2)
	assert.Len(t, res.Errors, 1)
	assert.True(t, res.PartiallyFailed())
	assert.True(t, isStale(cache, domain.CandidateListKey(3)))
}

func TestMutations_FailureLeavesCacheUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAnalysisService(ctrl)
	cache := querycache.New()
	m := mutation.NewMutations(mutation.NewDispatcher(cache), api)
	seed(t, cache, domain.AnalysisStatusKey(5), &domain.AnalysisProgress{JobID: 5})

	api.EXPECT().StartAnalysis(gomock.Any(), int64(5)).
		Return(nil, domain.NewRequestError(503, "Cannot connect to Ollama LLM service"))

	_, err := m.StartAnalysis(context.Background(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot connect to Ollama LLM service")
	assert.False(t, isStale(cache, domain.AnalysisStatusKey(5)))
}

func TestMutations_InputValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAnalysisService(ctrl)
	m := mutation.NewMutations(mutation.NewDispatcher(&recordingInvalidator{}), api)

	_, err := m.UploadCVs(context.Background(), 1, nil)
	require.ErrorIs(t, err, domain.ErrNoFiles)

	_, err = m.PasteCV(context.Background(), 1, "   ")
	require.ErrorIs(t, err, domain.ErrEmptyCVText)
}

func TestMutations_AwaitRefetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAnalysisService(ctrl)
	cache := querycache.New()
	m := mutation.NewMutations(mutation.NewDispatcher(cache, mutation.WithAwaitRefetch(true)), api)

	settings := &domain.SettingsResponse{Settings: domain.Settings{OllamaModel: "llama3"}}
	fetches := 0
	unsubscribe := cache.Observe(domain.SettingsKey(), func(context.Context) (any, error) {
		fetches++
		return settings, nil
	}, querycache.Policy{}, nil)
	defer unsubscribe()
	_, err := cache.Fetch(context.Background(), domain.SettingsKey(), nil, querycache.Policy{})
	require.NoError(t, err)

	update := domain.Settings{OllamaModel: "mistral", Temperature: 0.2}
	api.EXPECT().UpdateSettings(gomock.Any(), update).Return(&update, nil)

	_, err = m.UpdateSettings(context.Background(), update)
	require.NoError(t, err)
	assert.Equal(t, 2, fetches)
	assert.False(t, isStale(cache, domain.SettingsKey()))
}
