package app

import (
	"context"

	"go.trai.ch/screener/internal/core/domain"
)

// Jobs returns the job list, filtered by status when set.
func (a *App) Jobs(ctx context.Context, status domain.JobStatus) ([]domain.Job, error) {
	return query(ctx, a, domain.JobListFilteredKey(status), func(ctx context.Context) ([]domain.Job, error) {
		return a.api.ListJobs(ctx, status)
	})
}

// Job returns one job.
func (a *App) Job(ctx context.Context, id int64) (*domain.Job, error) {
	return query(ctx, a, domain.JobDetailKey(id), func(ctx context.Context) (*domain.Job, error) {
		return a.api.GetJob(ctx, id)
	})
}

// JobStats returns the category counters of a job.
func (a *App) JobStats(ctx context.Context, id int64) (*domain.JobStats, error) {
	return query(ctx, a, domain.JobStatsKey(id), func(ctx context.Context) (*domain.JobStats, error) {
		return a.api.GetJobStats(ctx, id)
	})
}

// Candidates returns the candidates of a job.
func (a *App) Candidates(ctx context.Context, jobID int64, filter domain.CandidateFilter) ([]domain.Candidate, error) {
	return query(ctx, a, domain.CandidateFilterKey(jobID, filter), func(ctx context.Context) ([]domain.Candidate, error) {
		return a.api.ListCandidates(ctx, jobID, filter)
	})
}

// Candidate returns one candidate with its job summary.
func (a *App) Candidate(ctx context.Context, id int64) (*domain.CandidateWithJob, error) {
	return query(ctx, a, domain.CandidateDetailKey(id), func(ctx context.Context) (*domain.CandidateWithJob, error) {
		return a.api.GetCandidate(ctx, id)
	})
}

// Shortlist returns the candidates of a job scoring at least minScore.
func (a *App) Shortlist(ctx context.Context, jobID int64, minScore int) ([]domain.Candidate, error) {
	return query(ctx, a, domain.ShortlistKey(jobID, minScore), func(ctx context.Context) ([]domain.Candidate, error) {
		return a.api.Shortlist(ctx, jobID, minScore)
	})
}

// AnalysisStatus returns the analysis progress of a job.
func (a *App) AnalysisStatus(ctx context.Context, jobID int64) (*domain.AnalysisProgress, error) {
	return query(ctx, a, domain.AnalysisStatusKey(jobID), func(ctx context.Context) (*domain.AnalysisProgress, error) {
		return a.api.AnalysisStatus(ctx, jobID)
	})
}

// SystemStatus returns the global counters and model availability.
func (a *App) SystemStatus(ctx context.Context) (*domain.SystemStatus, error) {
	return query(ctx, a, domain.SystemStatusKey(), a.api.SystemStatus)
}

// Health returns the liveness report of the Analysis Service.
func (a *App) Health(ctx context.Context) (*domain.HealthCheck, error) {
	return query(ctx, a, domain.HealthKey(), a.api.Health)
}

// Settings returns the analysis settings and model catalog.
func (a *App) Settings(ctx context.Context) (*domain.SettingsResponse, error) {
	return query(ctx, a, domain.SettingsKey(), a.api.GetSettings)
}
