package domain

// JobStatus is the publication state of a job posting.
type JobStatus string

// Job posting states.
const (
	JobActive JobStatus = "active"
	JobClosed JobStatus = "closed"
	JobDraft  JobStatus = "draft"
)

// Job is a job posting with its candidate counters.
type Job struct {
	ID                int64     `json:"id"`
	Title             string    `json:"title"`
	Company           string    `json:"company,omitempty"`
	Description       string    `json:"description"`
	Requirements      []string  `json:"requirements"`
	Skills            []string  `json:"skills"`
	Location          string    `json:"location,omitempty"`
	SalaryRange       string    `json:"salary_range,omitempty"`
	Status            JobStatus `json:"status"`
	CreatedAt         string    `json:"created_at"`
	UpdatedAt         string    `json:"updated_at"`
	TotalCandidates   int       `json:"total_candidates"`
	ExcellentCount    int       `json:"excellent_count"`
	GoodCount         int       `json:"good_count"`
	AverageCount      int       `json:"average_count"`
	BelowAverageCount int       `json:"below_average_count"`
	PendingCount      int       `json:"pending_count"`
}

// JobStatistics holds the per-category counters of a job.
type JobStatistics struct {
	TotalCandidates int     `json:"total_candidates"`
	Excellent       int     `json:"excellent"`
	Good            int     `json:"good"`
	Average         int     `json:"average"`
	BelowAverage    int     `json:"below_average"`
	Pending         int     `json:"pending"`
	Analyzed        int     `json:"analyzed"`
	Errors          int     `json:"errors"`
	AvgScore        float64 `json:"avg_score"`
}

// JobStats is the statistics payload of a job.
type JobStats struct {
	JobID      int64         `json:"job_id"`
	JobTitle   string        `json:"job_title"`
	Statistics JobStatistics `json:"statistics"`
}

// CreateJobRequest is the payload of a job creation.
type CreateJobRequest struct {
	Title        string    `json:"title"                  validate:"required"`
	Company      string    `json:"company,omitempty"`
	Description  string    `json:"description"            validate:"required"`
	Requirements []string  `json:"requirements,omitempty"`
	Skills       []string  `json:"skills,omitempty"`
	Location     string    `json:"location,omitempty"`
	SalaryRange  string    `json:"salary_range,omitempty"`
	Status       JobStatus `json:"status,omitempty"       validate:"omitempty,oneof=active closed draft"`
}

// UpdateJobRequest is a partial job update. Nil fields are left untouched.
type UpdateJobRequest struct {
	Title        *string    `json:"title,omitempty"`
	Company      *string    `json:"company,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Requirements []string   `json:"requirements,omitempty"`
	Skills       []string   `json:"skills,omitempty"`
	Location     *string    `json:"location,omitempty"`
	SalaryRange  *string    `json:"salary_range,omitempty"`
	Status       *JobStatus `json:"status,omitempty"`
}
