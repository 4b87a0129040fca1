package api

import (
	"bytes"
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/zerr"
)

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

// ListJobs implements ports.AnalysisService.
func (c *Client) ListJobs(ctx context.Context, status domain.JobStatus) ([]domain.Job, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", string(status))
	}
	return getJSON[[]domain.Job](ctx, c, c.endpoint(query, "jobs"))
}

// GetJob implements ports.AnalysisService.
func (c *Client) GetJob(ctx context.Context, jobID int64) (*domain.Job, error) {
	return getJSON[*domain.Job](ctx, c, c.endpoint(nil, "jobs", id(jobID)))
}

// CreateJob implements ports.AnalysisService.
func (c *Client) CreateJob(ctx context.Context, req domain.CreateJobRequest) (*domain.Job, error) {
	return sendJSON[*domain.Job](ctx, c, http.MethodPost, c.endpoint(nil, "jobs"), req)
}

// UpdateJob implements ports.AnalysisService.
func (c *Client) UpdateJob(ctx context.Context, jobID int64, req domain.UpdateJobRequest) (*domain.Job, error) {
	return sendJSON[*domain.Job](ctx, c, http.MethodPut, c.endpoint(nil, "jobs", id(jobID)), req)
}

// DeleteJob implements ports.AnalysisService.
func (c *Client) DeleteJob(ctx context.Context, jobID int64) error {
	_, err := c.call(ctx, http.MethodDelete, c.endpoint(nil, "jobs", id(jobID)), nil, "")
	return err
}

// GetJobStats implements ports.AnalysisService.
func (c *Client) GetJobStats(ctx context.Context, jobID int64) (*domain.JobStats, error) {
	return getJSON[*domain.JobStats](ctx, c, c.endpoint(nil, "jobs", id(jobID), "stats"))
}

// ListCandidates implements ports.AnalysisService.
func (c *Client) ListCandidates(ctx context.Context, jobID int64, filter domain.CandidateFilter) ([]domain.Candidate, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", string(filter.Category))
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	return getJSON[[]domain.Candidate](ctx, c, c.endpoint(query, "jobs", id(jobID), "candidates"))
}

// GetCandidate implements ports.AnalysisService.
func (c *Client) GetCandidate(ctx context.Context, candidateID int64) (*domain.CandidateWithJob, error) {
	return getJSON[*domain.CandidateWithJob](ctx, c, c.endpoint(nil, "candidates", id(candidateID)))
}

// Shortlist implements ports.AnalysisService.
func (c *Client) Shortlist(ctx context.Context, jobID int64, minScore int) ([]domain.Candidate, error) {
	query := url.Values{"min_score": {strconv.Itoa(minScore)}}
	return getJSON[[]domain.Candidate](ctx, c, c.endpoint(query, "jobs", id(jobID), "candidates", "shortlist"))
}

// UploadCVs implements ports.AnalysisService. Every file goes in one multipart
// request under the "files" field.
func (c *Client) UploadCVs(ctx context.Context, jobID int64, files []domain.UploadFile) (*domain.UploadResult, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := w.CreateFormFile("files", f.Name)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to encode upload"), "file", f.Name)
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to encode upload"), "file", f.Name)
		}
	}
	if err := w.Close(); err != nil {
		return nil, zerr.Wrap(err, "failed to encode upload")
	}

	target := c.endpoint(nil, "jobs", id(jobID), "candidates", "upload")
	return fetch[*domain.UploadResult](ctx, c, http.MethodPost, target, &buf, w.FormDataContentType())
}

// PasteCV implements ports.AnalysisService.
func (c *Client) PasteCV(ctx context.Context, jobID int64, cvText string) (*domain.Candidate, error) {
	payload := struct {
		CVText string `json:"cv_text"`
	}{CVText: cvText}
	return sendJSON[*domain.Candidate](ctx, c, http.MethodPost, c.endpoint(nil, "jobs", id(jobID), "candidates", "paste"), payload)
}

// ReanalyzeCandidate implements ports.AnalysisService.
func (c *Client) ReanalyzeCandidate(ctx context.Context, candidateID int64) (*domain.Candidate, error) {
	return fetch[*domain.Candidate](ctx, c, http.MethodPost, c.endpoint(nil, "candidates", id(candidateID), "analyze"), nil, "")
}

// DeleteCandidate implements ports.AnalysisService.
func (c *Client) DeleteCandidate(ctx context.Context, candidateID int64) error {
	_, err := c.call(ctx, http.MethodDelete, c.endpoint(nil, "candidates", id(candidateID)), nil, "")
	return err
}

type candidateIDs struct {
	IDs []int64 `json:"candidate_ids,omitempty"`
}

// DeleteCandidates implements ports.AnalysisService.
func (c *Client) DeleteCandidates(ctx context.Context, jobID int64, ids []int64) (*domain.BulkDeleteResult, error) {
	return sendJSON[*domain.BulkDeleteResult](ctx, c, http.MethodDelete, c.endpoint(nil, "jobs", id(jobID), "candidates"), candidateIDs{IDs: ids})
}

// StartAnalysis implements ports.AnalysisService.
func (c *Client) StartAnalysis(ctx context.Context, jobID int64) (*domain.AnalysisBatchResult, error) {
	return fetch[*domain.AnalysisBatchResult](ctx, c, http.MethodPost, c.endpoint(nil, "jobs", id(jobID), "analyze"), nil, "")
}

// RetryAnalysis implements ports.AnalysisService.
func (c *Client) RetryAnalysis(ctx context.Context, jobID int64, ids []int64) (*domain.AnalysisBatchResult, error) {
	return sendJSON[*domain.AnalysisBatchResult](ctx, c, http.MethodPost, c.endpoint(nil, "jobs", id(jobID), "analyze", "retry"), candidateIDs{IDs: ids})
}

// AnalysisStatus implements ports.AnalysisService.
func (c *Client) AnalysisStatus(ctx context.Context, jobID int64) (*domain.AnalysisProgress, error) {
	return getJSON[*domain.AnalysisProgress](ctx, c, c.endpoint(nil, "jobs", id(jobID), "analyze", "status"))
}

// Export implements ports.AnalysisService. The body is returned as is.
func (c *Client) Export(ctx context.Context, jobID int64, opts domain.ExportOptions) (*domain.ExportFile, error) {
	format := opts.Format
	if format == "" {
		format = domain.ExportCSV
	}
	if format != domain.ExportCSV && format != domain.ExportExcel {
		return nil, zerr.With(domain.ErrInvalidExportFormat, "format", string(format))
	}

	query := url.Values{"format": {string(format)}}
	if opts.Category != "" {
		query.Set("category", string(opts.Category))
	}
	if opts.MinScore != nil && *opts.MinScore > 0 {
		query.Set("min_score", strconv.Itoa(*opts.MinScore))
	}

	resp, err := c.send(ctx, http.MethodGet, c.endpoint(query, "jobs", id(jobID), "export"), nil, "")
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewTransportError(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, failure(resp, data)
	}

	filename := domain.DefaultExportFilename(jobID, format)
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil && params["filename"] != "" {
		filename = params["filename"]
	}
	return &domain.ExportFile{
		Filename:    filename,
		ContentType: resp.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// SystemStatus implements ports.AnalysisService.
func (c *Client) SystemStatus(ctx context.Context) (*domain.SystemStatus, error) {
	return getJSON[*domain.SystemStatus](ctx, c, c.endpoint(nil, "status"))
}

// Health implements ports.AnalysisService. The health report is not wrapped in
// an envelope.
func (c *Client) Health(ctx context.Context) (*domain.HealthCheck, error) {
	resp, err := c.send(ctx, http.MethodGet, c.endpoint(nil, "health"), nil, "")
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewTransportError(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, failure(resp, raw)
	}
	var hc domain.HealthCheck
	if err := jsonUnmarshal(raw, &hc); err != nil {
		return nil, err
	}
	return &hc, nil
}

// GetSettings implements ports.AnalysisService.
func (c *Client) GetSettings(ctx context.Context) (*domain.SettingsResponse, error) {
	return getJSON[*domain.SettingsResponse](ctx, c, c.endpoint(nil, "settings"))
}

// UpdateSettings implements ports.AnalysisService.
func (c *Client) UpdateSettings(ctx context.Context, settings domain.Settings) (*domain.Settings, error) {
	return sendJSON[*domain.Settings](ctx, c, http.MethodPost, c.endpoint(nil, "settings"), settings)
}
