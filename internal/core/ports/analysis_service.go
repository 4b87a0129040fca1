package ports

import (
	"context"

	"go.trai.ch/screener/internal/core/domain"
)

// AnalysisService is the remote API that owns jobs, candidates and analysis runs.
// Every failed call returns a *domain.RequestError.
//
//go:generate mockgen -source=analysis_service.go -destination=mocks/mock_analysis_service.go -package=mocks
type AnalysisService interface {
	// ListJobs returns all jobs, optionally filtered by status.
	ListJobs(ctx context.Context, status domain.JobStatus) ([]domain.Job, error)
	// GetJob returns one job.
	GetJob(ctx context.Context, id int64) (*domain.Job, error)
	// CreateJob creates a job posting.
	CreateJob(ctx context.Context, req domain.CreateJobRequest) (*domain.Job, error)
	// UpdateJob applies a partial update to a job.
	UpdateJob(ctx context.Context, id int64, req domain.UpdateJobRequest) (*domain.Job, error)
	// DeleteJob removes a job and its candidates.
	DeleteJob(ctx context.Context, id int64) error
	// GetJobStats returns the category counters of a job.
	GetJobStats(ctx context.Context, id int64) (*domain.JobStats, error)

	// ListCandidates returns the candidates of a job.
	ListCandidates(ctx context.Context, jobID int64, filter domain.CandidateFilter) ([]domain.Candidate, error)
	// GetCandidate returns one candidate with its job summary.
	GetCandidate(ctx context.Context, id int64) (*domain.CandidateWithJob, error)
	// Shortlist returns the candidates of a job scoring at least minScore.
	Shortlist(ctx context.Context, jobID int64, minScore int) ([]domain.Candidate, error)
	// UploadCVs submits CV documents to a job. The batch may partially fail.
	UploadCVs(ctx context.Context, jobID int64, files []domain.UploadFile) (*domain.UploadResult, error)
	// PasteCV submits a plain-text CV to a job.
	PasteCV(ctx context.Context, jobID int64, cvText string) (*domain.Candidate, error)
	// ReanalyzeCandidate runs the analysis again for one candidate.
	ReanalyzeCandidate(ctx context.Context, id int64) (*domain.Candidate, error)
	// DeleteCandidate removes one candidate.
	DeleteCandidate(ctx context.Context, id int64) error
	// DeleteCandidates removes several candidates of a job.
	DeleteCandidates(ctx context.Context, jobID int64, ids []int64) (*domain.BulkDeleteResult, error)

	// StartAnalysis starts analyzing the pending candidates of a job.
	StartAnalysis(ctx context.Context, jobID int64) (*domain.AnalysisBatchResult, error)
	// RetryAnalysis analyzes failed candidates again. Empty ids retries all of them.
	RetryAnalysis(ctx context.Context, jobID int64, ids []int64) (*domain.AnalysisBatchResult, error)
	// AnalysisStatus returns the analysis progress of a job.
	AnalysisStatus(ctx context.Context, jobID int64) (*domain.AnalysisProgress, error)
	// Export downloads the candidates of a job as a document.
	Export(ctx context.Context, jobID int64, opts domain.ExportOptions) (*domain.ExportFile, error)

	// SystemStatus returns the global counters and model availability.
	SystemStatus(ctx context.Context) (*domain.SystemStatus, error)
	// Health returns the liveness report.
	Health(ctx context.Context) (*domain.HealthCheck, error)
	// GetSettings returns the analysis settings and model catalog.
	GetSettings(ctx context.Context) (*domain.SettingsResponse, error)
	// UpdateSettings stores new analysis settings.
	UpdateSettings(ctx context.Context, settings domain.Settings) (*domain.Settings, error)
}
