package domain

// AnalysisState is the server-reported analysis state of a job.
type AnalysisState string

// Analysis states. Only AnalysisInProgress keeps the progress poller active.
const (
	AnalysisNoCandidates AnalysisState = "no_candidates"
	AnalysisPending      AnalysisState = "pending"
	AnalysisInProgress   AnalysisState = "in_progress"
	AnalysisComplete     AnalysisState = "complete"
)

// CategoryCounts holds the analyzed candidates per score band.
type CategoryCounts struct {
	Excellent    int `json:"excellent"`
	Good         int `json:"good"`
	Average      int `json:"average"`
	BelowAverage int `json:"below_average"`
}

// AnalysisProgress is a server snapshot of a job's analysis.
type AnalysisProgress struct {
	JobID              int64          `json:"job_id"`
	JobTitle           string         `json:"job_title"`
	AnalysisStatus     AnalysisState  `json:"analysis_status"`
	ProgressPercentage float64        `json:"progress_percentage"`
	TotalCandidates    int            `json:"total_candidates"`
	Analyzed           int            `json:"analyzed"`
	Pending            int            `json:"pending"`
	Errors             int            `json:"errors"`
	Categories         CategoryCounts `json:"categories"`
	AverageScore       float64        `json:"average_score"`
}

// IsAnalyzing reports whether the server is still working through the job.
func (p *AnalysisProgress) IsAnalyzing() bool {
	return p != nil && p.AnalysisStatus == AnalysisInProgress
}

// IsComplete reports whether nothing is left to analyze, either because every
// candidate was processed or because the job has none.
func (p *AnalysisProgress) IsComplete() bool {
	return p != nil && (p.AnalysisStatus == AnalysisComplete || p.AnalysisStatus == AnalysisNoCandidates)
}

// AnalysisBatchResult reports a started or retried analysis run.
type AnalysisBatchResult struct {
	JobID    int64          `json:"job_id"`
	Total    int            `json:"total"`
	Analyzed int            `json:"analyzed"`
	Errors   int            `json:"errors"`
	Stats    map[string]any `json:"stats,omitempty"`
}
