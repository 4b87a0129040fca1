package mutation

import "go.trai.ch/screener/internal/core/domain"

// Kind names a state-changing operation on the Analysis Service.
type Kind string

// Mutation kinds.
const (
	CreateJob          Kind = "create_job"
	UpdateJob          Kind = "update_job"
	DeleteJob          Kind = "delete_job"
	UploadCVs          Kind = "upload_cvs"
	PasteCV            Kind = "paste_cv"
	DeleteCandidate    Kind = "delete_candidate"
	DeleteCandidates   Kind = "delete_candidates"
	ReanalyzeCandidate Kind = "reanalyze_candidate"
	StartAnalysis      Kind = "start_analysis"
	RetryAnalysis      Kind = "retry_analysis"
	UpdateSettings     Kind = "update_settings"
)

// Scope carries the identifiers a mutation's invalidations depend on.
type Scope struct {
	JobID       int64
	CandidateID int64
	// CandidateIDs lists the candidates touched by a bulk mutation.
	CandidateIDs []int64
}

// table maps every kind to the key prefixes it invalidates on success.
var table = map[Kind]func(Scope) []domain.Key{
	CreateJob: func(Scope) []domain.Key {
		return []domain.Key{domain.JobListKey()}
	},
	UpdateJob: func(s Scope) []domain.Key {
		return []domain.Key{domain.JobListKey(), domain.JobDetailKey(s.JobID)}
	},
	DeleteJob: func(s Scope) []domain.Key {
		return []domain.Key{
			domain.JobListKey(),
			domain.JobDetailKey(s.JobID),
			domain.CandidateListKey(s.JobID),
			domain.AnalysisStatusKey(s.JobID),
		}
	},
	UploadCVs:        candidateSetChanged,
	PasteCV:          candidateSetChanged,
	DeleteCandidates: func(s Scope) []domain.Key {
		return append(candidateSetChanged(s), candidateDetails(s.CandidateIDs)...)
	},
	DeleteCandidate: func(s Scope) []domain.Key {
		return append(candidateSetChanged(s), domain.CandidateDetailKey(s.CandidateID))
	},
	ReanalyzeCandidate: func(s Scope) []domain.Key {
		return []domain.Key{
			domain.CandidateListKey(s.JobID),
			domain.CandidateDetailKey(s.CandidateID),
			domain.JobStatsKey(s.JobID),
			domain.AnalysisStatusKey(s.JobID),
		}
	},
	StartAnalysis: analysisChanged,
	RetryAnalysis: func(s Scope) []domain.Key {
		return append(analysisChanged(s), candidateDetails(s.CandidateIDs)...)
	},
	UpdateSettings: func(Scope) []domain.Key {
		return []domain.Key{domain.SettingsKey(), domain.SystemStatusKey()}
	},
}

// candidateSetChanged covers mutations that add or remove candidates of a job.
func candidateSetChanged(s Scope) []domain.Key {
	return []domain.Key{
		domain.CandidateListKey(s.JobID),
		domain.JobStatsKey(s.JobID),
		domain.JobListKey(),
		domain.AnalysisStatusKey(s.JobID),
	}
}

func analysisChanged(s Scope) []domain.Key {
	return []domain.Key{
		domain.AnalysisStatusKey(s.JobID),
		domain.CandidateListKey(s.JobID),
		domain.JobStatsKey(s.JobID),
		domain.JobListKey(),
	}
}

func candidateDetails(ids []int64) []domain.Key {
	keys := make([]domain.Key, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, domain.CandidateDetailKey(id))
	}
	return keys
}

// Invalidations returns the prefixes invalidated by a successful mutation.
// ok is false for unknown kinds.
func Invalidations(kind Kind, scope Scope) (keys []domain.Key, ok bool) {
	fn, ok := table[kind]
	if !ok {
		return nil, false
	}
	return fn(scope), true
}

// Kinds returns every kind of the table.
func Kinds() []Kind {
	return []Kind{
		CreateJob, UpdateJob, DeleteJob,
		UploadCVs, PasteCV, DeleteCandidate, DeleteCandidates, ReanalyzeCandidate,
		StartAnalysis, RetryAnalysis,
		UpdateSettings,
	}
}
