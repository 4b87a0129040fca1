package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/screener/internal/core/domain"
)

func TestAnalysisProgress_DerivedFlags(t *testing.T) {
	tests := []struct {
		state     domain.AnalysisState
		analyzing bool
		complete  bool
	}{
		{domain.AnalysisInProgress, true, false},
		{domain.AnalysisComplete, false, true},
		{domain.AnalysisPending, false, false},
		{domain.AnalysisNoCandidates, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			p := &domain.AnalysisProgress{AnalysisStatus: tt.state}
			assert.Equal(t, tt.analyzing, p.IsAnalyzing())
			assert.Equal(t, tt.complete, p.IsComplete())
		})
	}

	var none *domain.AnalysisProgress
	assert.False(t, none.IsAnalyzing())
	assert.False(t, none.IsComplete())
}

func TestEntry_IsFresh(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	var empty domain.Entry
	assert.False(t, empty.IsFresh(now, time.Minute))

	e := domain.Entry{UpdatedAt: now.Add(-30 * time.Second), Status: domain.StatusSuccess}
	assert.True(t, e.IsFresh(now, time.Minute))
	assert.False(t, e.IsFresh(now, 10*time.Second))

	e.Stale = true
	assert.False(t, e.IsFresh(now, time.Minute))
}

func TestFetchStatus_String(t *testing.T) {
	assert.Equal(t, "idle", domain.StatusIdle.String())
	assert.Equal(t, "loading", domain.StatusLoading.String())
	assert.Equal(t, "success", domain.StatusSuccess.String())
	assert.Equal(t, "error", domain.StatusError.String())
}

func TestRequestError(t *testing.T) {
	t.Run("http failure", func(t *testing.T) {
		err := error(domain.NewRequestError(404, "Job 3 not found"))

		require.ErrorIs(t, err, domain.ErrRequestFailed)
		var reqErr *domain.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, 404, reqErr.Status)
		assert.Equal(t, "Job 3 not found", reqErr.Message)
		assert.False(t, reqErr.IsTransport())
		assert.Equal(t, "request failed (404): Job 3 not found", err.Error())
	})

	t.Run("transport failure", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := error(domain.NewTransportError(cause))

		require.ErrorIs(t, err, domain.ErrRequestFailed)
		require.ErrorIs(t, err, cause)
		var reqErr *domain.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.True(t, reqErr.IsTransport())
		assert.Equal(t, 0, reqErr.Status)
	})
}

func TestUploadResult_PartiallyFailed(t *testing.T) {
	assert.True(t, domain.UploadResult{Uploaded: 2, Failed: 1}.PartiallyFailed())
	assert.False(t, domain.UploadResult{Uploaded: 0, Failed: 3}.PartiallyFailed())
	assert.False(t, domain.UploadResult{Uploaded: 3}.PartiallyFailed())
}

func TestDefaultExportFilename(t *testing.T) {
	assert.Equal(t, "candidates-job-4.csv", domain.DefaultExportFilename(4, domain.ExportCSV))
	assert.Equal(t, "candidates-job-4.xlsx", domain.DefaultExportFilename(4, domain.ExportExcel))
}
