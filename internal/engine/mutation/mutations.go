package mutation

import (
	"context"
	"strings"

	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/screener/internal/core/ports"
)

// Mutations exposes every mutation of the Analysis Service with its
// invalidations applied.
type Mutations struct {
	d   *Dispatcher
	api ports.AnalysisService
}

// NewMutations creates the typed mutation set.
func NewMutations(d *Dispatcher, api ports.AnalysisService) *Mutations {
	return &Mutations{d: d, api: api}
}

// run dispatches call and settles its invalidation.
func run[T any](ctx context.Context, m *Mutations, kind Kind, scope Scope, call func(ctx context.Context) (T, error)) (T, error) {
	v, inv, err := Dispatch(ctx, m.d, kind, scope, call)
	if err != nil {
		return v, err
	}
	m.d.settle(ctx, inv)
	return v, nil
}

// unit adapts a call without payload.
func unit(call func(ctx context.Context) error) func(ctx context.Context) (struct{}, error) {
	return func(ctx context.Context) (struct{}, error) {
		return struct{}{}, call(ctx)
	}
}

// CreateJob creates a job posting.
func (m *Mutations) CreateJob(ctx context.Context, req domain.CreateJobRequest) (*domain.Job, error) {
	return run(ctx, m, CreateJob, Scope{}, func(ctx context.Context) (*domain.Job, error) {
		return m.api.CreateJob(ctx, req)
	})
}

// UpdateJob applies a partial update to a job.
func (m *Mutations) UpdateJob(ctx context.Context, id int64, req domain.UpdateJobRequest) (*domain.Job, error) {
	return run(ctx, m, UpdateJob, Scope{JobID: id}, func(ctx context.Context) (*domain.Job, error) {
		return m.api.UpdateJob(ctx, id, req)
	})
}

// DeleteJob removes a job.
func (m *Mutations) DeleteJob(ctx context.Context, id int64) error {
	_, err := run(ctx, m, DeleteJob, Scope{JobID: id}, unit(func(ctx context.Context) error {
		return m.api.DeleteJob(ctx, id)
	}))
	return err
}

// UploadCVs submits CV documents to a job. A partially failed batch is a
// success: its result lists the rejected files.
func (m *Mutations) UploadCVs(ctx context.Context, jobID int64, files []domain.UploadFile) (*domain.UploadResult, error) {
	if len(files) == 0 {
		return nil, domain.ErrNoFiles
	}
	return run(ctx, m, UploadCVs, Scope{JobID: jobID}, func(ctx context.Context) (*domain.UploadResult, error) {
		return m.api.UploadCVs(ctx, jobID, files)
	})
}

// PasteCV submits a plain-text CV to a job.
func (m *Mutations) PasteCV(ctx context.Context, jobID int64, cvText string) (*domain.Candidate, error) {
	if strings.TrimSpace(cvText) == "" {
		return nil, domain.ErrEmptyCVText
	}
	return run(ctx, m, PasteCV, Scope{JobID: jobID}, func(ctx context.Context) (*domain.Candidate, error) {
		return m.api.PasteCV(ctx, jobID, cvText)
	})
}

// ReanalyzeCandidate analyzes one candidate again.
func (m *Mutations) ReanalyzeCandidate(ctx context.Context, jobID, candidateID int64) (*domain.Candidate, error) {
	return run(ctx, m, ReanalyzeCandidate, Scope{JobID: jobID, CandidateID: candidateID},
		func(ctx context.Context) (*domain.Candidate, error) {
			return m.api.ReanalyzeCandidate(ctx, candidateID)
		})
}

// DeleteCandidate removes one candidate of a job.
func (m *Mutations) DeleteCandidate(ctx context.Context, jobID, candidateID int64) error {
	_, err := run(ctx, m, DeleteCandidate, Scope{JobID: jobID, CandidateID: candidateID},
		unit(func(ctx context.Context) error {
			return m.api.DeleteCandidate(ctx, candidateID)
		}))
	return err
}

// DeleteCandidates removes several candidates of a job.
func (m *Mutations) DeleteCandidates(ctx context.Context, jobID int64, ids []int64) (*domain.BulkDeleteResult, error) {
	return run(ctx, m, DeleteCandidates, Scope{JobID: jobID, CandidateIDs: ids}, func(ctx context.Context) (*domain.BulkDeleteResult, error) {
		return m.api.DeleteCandidates(ctx, jobID, ids)
	})
}

// StartAnalysis starts analyzing the pending candidates of a job.
func (m *Mutations) StartAnalysis(ctx context.Context, jobID int64) (*domain.AnalysisBatchResult, error) {
	return run(ctx, m, StartAnalysis, Scope{JobID: jobID}, func(ctx context.Context) (*domain.AnalysisBatchResult, error) {
		return m.api.StartAnalysis(ctx, jobID)
	})
}

// RetryAnalysis analyzes failed candidates of a job again.
func (m *Mutations) RetryAnalysis(ctx context.Context, jobID int64, ids []int64) (*domain.AnalysisBatchResult, error) {
	return run(ctx, m, RetryAnalysis, Scope{JobID: jobID, CandidateIDs: ids}, func(ctx context.Context) (*domain.AnalysisBatchResult, error) {
		return m.api.RetryAnalysis(ctx, jobID, ids)
	})
}

// UpdateSettings stores new analysis settings.
func (m *Mutations) UpdateSettings(ctx context.Context, settings domain.Settings) (*domain.Settings, error) {
	return run(ctx, m, UpdateSettings, Scope{}, func(ctx context.Context) (*domain.Settings, error) {
		return m.api.UpdateSettings(ctx, settings)
	})
}
