package domain

// Category is the score band assigned to an analyzed candidate.
type Category string

// Score bands.
const (
	CategoryExcellent    Category = "excellent"
	CategoryGood         Category = "good"
	CategoryAverage      Category = "average"
	CategoryBelowAverage Category = "below_average"
	CategoryPending      Category = "pending"
)

// Recommendation is the hiring recommendation of an analysis.
type Recommendation string

// Recommendations.
const (
	RecommendShortlist Recommendation = "SHORTLIST"
	RecommendConsider  Recommendation = "CONSIDER"
	RecommendPass      Recommendation = "PASS"
	RecommendPending   Recommendation = "PENDING"
)

// CandidateStatus is the analysis state of a candidate.
type CandidateStatus string

// Candidate analysis states.
const (
	CandidatePending  CandidateStatus = "pending"
	CandidateAnalyzed CandidateStatus = "analyzed"
	CandidateError    CandidateStatus = "error"
)

// Education summarizes a candidate's education.
type Education struct {
	Summary    string `json:"summary,omitempty"`
	Degree     string `json:"degree,omitempty"`
	University string `json:"university,omitempty"`
}

// Candidate is a CV submitted for one job.
type Candidate struct {
	ID               int64           `json:"id"`
	JobID            int64           `json:"job_id"`
	Name             string          `json:"name"`
	Email            string          `json:"email,omitempty"`
	Phone            string          `json:"phone,omitempty"`
	Score            *float64        `json:"score"`
	Category         Category        `json:"category,omitempty"`
	Recommendation   Recommendation  `json:"recommendation,omitempty"`
	MatchedSkills    []string        `json:"matched_skills"`
	MissingSkills    []string        `json:"missing_skills"`
	ExperienceYears  *float64        `json:"experience_years"`
	Education        *Education      `json:"education"`
	Strengths        []string        `json:"strengths"`
	Concerns         []string        `json:"concerns"`
	Summary          string          `json:"summary,omitempty"`
	CVText           string          `json:"cv_text,omitempty"`
	OriginalFilename string          `json:"original_filename,omitempty"`
	Status           CandidateStatus `json:"status"`
	ErrorMessage     string          `json:"error_message,omitempty"`
	CreatedAt        string          `json:"created_at"`
	AnalyzedAt       string          `json:"analyzed_at,omitempty"`
}

// JobRef is the short job summary attached to a candidate detail.
type JobRef struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Company string `json:"company,omitempty"`
}

// CandidateWithJob is the candidate detail payload.
type CandidateWithJob struct {
	Candidate Candidate `json:"candidate"`
	Job       *JobRef   `json:"job"`
}

// CandidateFilter narrows a candidate list.
type CandidateFilter struct {
	Category Category
	Status   CandidateStatus
}

// UploadFile is one CV document handed to an upload.
type UploadFile struct {
	Name    string
	Content []byte
}

// UploadedCandidate reports one accepted file of an upload.
type UploadedCandidate struct {
	ID       int64  `json:"id"`
	Filename string `json:"filename"`
	Status   string `json:"status"`
}

// UploadFailure reports one rejected file of an upload.
type UploadFailure struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

// UploadResult reports a batch upload. A batch may partially fail.
type UploadResult struct {
	Uploaded   int                 `json:"uploaded"`
	Failed     int                 `json:"failed"`
	Candidates []UploadedCandidate `json:"candidates"`
	Errors     []UploadFailure     `json:"errors"`
}

// PartiallyFailed reports whether some but not all files were rejected.
func (r UploadResult) PartiallyFailed() bool {
	return r.Failed > 0 && r.Uploaded > 0
}

// BulkDeleteResult reports a bulk candidate deletion.
type BulkDeleteResult struct {
	Deleted int     `json:"deleted"`
	Failed  int     `json:"failed"`
	IDs     []int64 `json:"candidate_ids,omitempty"`
}
