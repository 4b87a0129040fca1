package domain

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

// Root segments of the key namespaces served by the Analysis Service.
const (
	segJobs       = "jobs"
	segCandidates = "candidates"
	segAnalysis   = "analysis"
	segSystem     = "system"
	segSettings   = "settings"
	segList       = "list"
	segDetail     = "detail"
	segStats      = "stats"
	segStatus     = "status"
)

// keySeparator joins segments into the canonical slot id. It cannot appear in
// segments produced by the key factories.
const keySeparator = "\x1f"

// Key addresses one cache slot. Keys are ordered segment lists compared
// structurally: two keys with identical segments address the same slot.
type Key []string

// NewKey builds a key from raw segments.
func NewKey(segments ...string) Key {
	return Key(slices.Clone(segments))
}

// String returns the canonical slot id of the key.
func (k Key) String() string {
	return strings.Join(k, keySeparator)
}

// Display renders the key for humans and logs.
func (k Key) Display() string {
	return "[" + strings.Join(k, ", ") + "]"
}

// LogValue renders the key in its display form.
func (k Key) LogValue() slog.Value {
	return slog.StringValue(k.Display())
}

// Equal reports whether both keys have identical segments.
func (k Key) Equal(other Key) bool {
	return slices.Equal(k, other)
}

// HasPrefix reports whether prefix matches the leading segments of k.
// An empty prefix matches every key.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	return slices.Equal(k[:len(prefix)], prefix)
}

// ParseKey is the inverse of Key.String.
func ParseKey(id string) Key {
	if id == "" {
		return Key{}
	}
	return Key(strings.Split(id, keySeparator))
}

func idSegment(id int64) string {
	return strconv.FormatInt(id, 10)
}

func filterSegment(name, value string) string {
	return name + "=" + value
}

// JobsKey is the prefix of every job-derived entry.
func JobsKey() Key { return Key{segJobs} }

// JobListKey addresses the unfiltered job list and prefixes the filtered ones.
func JobListKey() Key { return Key{segJobs, segList} }

// JobListFilteredKey addresses a job list filtered by job status.
func JobListFilteredKey(status JobStatus) Key {
	if status == "" {
		return JobListKey()
	}
	return Key{segJobs, segList, filterSegment("status", string(status))}
}

// JobDetailKey addresses a single job and prefixes its stats.
func JobDetailKey(id int64) Key { return Key{segJobs, segDetail, idSegment(id)} }

// JobStatsKey addresses the statistics of a single job.
func JobStatsKey(id int64) Key {
	return Key{segJobs, segDetail, idSegment(id), segStats}
}

// CandidatesKey is the prefix of every candidate-derived entry.
func CandidatesKey() Key { return Key{segCandidates} }

// CandidateListKey addresses all candidate lists of a job.
func CandidateListKey(jobID int64) Key {
	return Key{segCandidates, segList, idSegment(jobID)}
}

// CandidateListFilteredKey addresses a category filtered candidate list.
func CandidateListFilteredKey(jobID int64, category Category) Key {
	if category == "" {
		return CandidateListKey(jobID)
	}
	return Key{segCandidates, segList, idSegment(jobID), filterSegment("category", string(category))}
}

// ShortlistKey addresses the shortlist of a job above a minimum score.
func ShortlistKey(jobID int64, minScore int) Key {
	return Key{segCandidates, segList, idSegment(jobID), filterSegment("shortlist", strconv.Itoa(minScore))}
}

// CandidateDetailKey addresses a single candidate.
func CandidateDetailKey(id int64) Key {
	return Key{segCandidates, segDetail, idSegment(id)}
}

// AnalysisStatusKey addresses the analysis progress of a job.
func AnalysisStatusKey(jobID int64) Key {
	return Key{segAnalysis, segStatus, idSegment(jobID)}
}

// SystemStatusKey addresses the global system status.
func SystemStatusKey() Key { return Key{segSystem, segStatus} }

// SettingsKey addresses the analysis settings.
func SettingsKey() Key { return Key{segSettings} }

// CandidateFilterKey addresses a candidate list narrowed by filter. It extends
// CandidateListFilteredKey with a status segment when the status is set.
func CandidateFilterKey(jobID int64, filter CandidateFilter) Key {
	key := CandidateListFilteredKey(jobID, filter.Category)
	if filter.Status == "" {
		return key
	}
	return append(key, filterSegment("status", string(filter.Status)))
}

// HealthKey addresses the liveness report of the Analysis Service.
func HealthKey() Key { return Key{segSystem, "health"} }
