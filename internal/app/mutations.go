package app

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/zerr"
)

// CreateJob creates a job posting.
func (a *App) CreateJob(ctx context.Context, req domain.CreateJobRequest) (*domain.Job, error) {
	return a.mutations.CreateJob(ctx, req)
}

// UpdateJob applies a partial update to a job.
func (a *App) UpdateJob(ctx context.Context, id int64, req domain.UpdateJobRequest) (*domain.Job, error) {
	return a.mutations.UpdateJob(ctx, id, req)
}

// DeleteJob removes a job and its candidates.
func (a *App) DeleteJob(ctx context.Context, id int64) error {
	return a.mutations.DeleteJob(ctx, id)
}

// UploadCVs reads the files at paths and submits them to a job in one batch.
func (a *App) UploadCVs(ctx context.Context, jobID int64, paths []string) (*domain.UploadResult, error) {
	files := make([]domain.UploadFile, 0, len(paths))
	for _, p := range paths {
		//nolint:gosec // paths are chosen by the user
		content, err := os.ReadFile(p)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read cv file"), "path", p)
		}
		files = append(files, domain.UploadFile{Name: filepath.Base(p), Content: content})
	}

	res, err := a.mutations.UploadCVs(ctx, jobID, files)
	if err != nil {
		return nil, err
	}
	if res.PartiallyFailed() {
		a.logger.Warn("some files were not uploaded", "uploaded", res.Uploaded, "failed", res.Failed)
	}
	return res, nil
}

// PasteCV submits a plain-text CV to a job.
func (a *App) PasteCV(ctx context.Context, jobID int64, cvText string) (*domain.Candidate, error) {
	return a.mutations.PasteCV(ctx, jobID, cvText)
}

// ReanalyzeCandidate runs the analysis again for one candidate. The owning job
// is looked up first so its lists are invalidated.
func (a *App) ReanalyzeCandidate(ctx context.Context, candidateID int64) (*domain.Candidate, error) {
	jobID, err := a.jobOf(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	return a.mutations.ReanalyzeCandidate(ctx, jobID, candidateID)
}

// DeleteCandidate removes one candidate.
func (a *App) DeleteCandidate(ctx context.Context, candidateID int64) error {
	jobID, err := a.jobOf(ctx, candidateID)
	if err != nil {
		return err
	}
	return a.mutations.DeleteCandidate(ctx, jobID, candidateID)
}

// DeleteCandidates removes several candidates of a job.
func (a *App) DeleteCandidates(ctx context.Context, jobID int64, ids []int64) (*domain.BulkDeleteResult, error) {
	return a.mutations.DeleteCandidates(ctx, jobID, ids)
}

// StartAnalysis starts analyzing the pending candidates of a job.
func (a *App) StartAnalysis(ctx context.Context, jobID int64) (*domain.AnalysisBatchResult, error) {
	return a.mutations.StartAnalysis(ctx, jobID)
}

// RetryAnalysis analyzes failed candidates again. Empty ids retries all of them.
func (a *App) RetryAnalysis(ctx context.Context, jobID int64, ids []int64) (*domain.AnalysisBatchResult, error) {
	return a.mutations.RetryAnalysis(ctx, jobID, ids)
}

// UpdateSettings stores new analysis settings.
func (a *App) UpdateSettings(ctx context.Context, settings domain.Settings) (*domain.Settings, error) {
	return a.mutations.UpdateSettings(ctx, settings)
}

func (a *App) jobOf(ctx context.Context, candidateID int64) (int64, error) {
	c, err := a.Candidate(ctx, candidateID)
	if err != nil {
		return 0, err
	}
	return c.Candidate.JobID, nil
}
