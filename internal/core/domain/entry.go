package domain

import "time"

// FetchStatus is the lifecycle state of a cache entry.
type FetchStatus uint8

const (
	// StatusIdle means no fetch has ever been issued for the key.
	StatusIdle FetchStatus = iota
	// StatusLoading means a fetch is in flight. The previous value stays readable.
	StatusLoading
	// StatusSuccess means the last fetch delivered the current value.
	StatusSuccess
	// StatusError means the last fetch failed. The previous value is retained.
	StatusError
)

func (s FetchStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Entry is a snapshot of one cache slot.
type Entry struct {
	Key Key
	// Value is the last successfully fetched value, nil before the first success.
	Value any
	// Status is the state of the most recent fetch.
	Status FetchStatus
	// UpdatedAt is the time of the last successful fetch.
	UpdatedAt time.Time
	// Stale is set by invalidation and cleared by a successful fetch.
	Stale bool
	// Err is the error of the last fetch when Status is StatusError.
	Err error
	// Fingerprint identifies Value's content. Equal fingerprints mean an
	// identical payload.
	Fingerprint uint64
}

// HasValue reports whether the entry ever received a successful fetch.
func (e Entry) HasValue() bool {
	return !e.UpdatedAt.IsZero()
}

// IsFresh reports whether the entry can be served without refetching.
func (e Entry) IsFresh(now time.Time, staleTime time.Duration) bool {
	if !e.HasValue() || e.Stale {
		return false
	}
	return now.Sub(e.UpdatedAt) < staleTime
}
