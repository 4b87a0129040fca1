package domain

import (
	"strconv"

	"go.trai.ch/zerr"
)

var (
	// ErrRequestFailed matches every *RequestError.
	ErrRequestFailed = zerr.New("request failed")

	// ErrEmptyResponse is returned when a successful response has an empty body.
	ErrEmptyResponse = zerr.New("response carries no data")

	// ErrDecodeResponse is returned when a response body is not valid JSON.
	ErrDecodeResponse = zerr.New("failed to decode response")

	// ErrNoCandidates is returned when progress watching is requested for a job
	// without candidates.
	ErrNoCandidates = zerr.New("job has no candidates")

	// ErrNoFiles is returned when an upload is requested without files.
	ErrNoFiles = zerr.New("no files to upload")

	// ErrEmptyCVText is returned when a pasted CV has no content.
	ErrEmptyCVText = zerr.New("cv text is empty")

	// ErrUnknownMutation is returned for a mutation kind missing from the
	// invalidation table.
	ErrUnknownMutation = zerr.New("unknown mutation kind")

	// ErrUnexpectedValue is returned when a cache entry holds a value of another type.
	ErrUnexpectedValue = zerr.New("unexpected cache value type")

	// ErrCacheClosed is returned when a fetch is requested after the cache was closed.
	ErrCacheClosed = zerr.New("query cache is closed")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the configuration file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the loaded configuration fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrInvalidInput is returned when command input fails validation.
	ErrInvalidInput = zerr.New("invalid input")

	// ErrInvalidExportFormat is returned for an unknown export format.
	ErrInvalidExportFormat = zerr.New("export format must be csv or excel")
)

// RequestError is a failed call to the Analysis Service.
// Status is the HTTP status code, or 0 when no response was received.
type RequestError struct {
	Status  int
	Message string
	cause   error
}

// NewRequestError creates a RequestError for a received HTTP response.
func NewRequestError(status int, message string) *RequestError {
	return &RequestError{Status: status, Message: message}
}

// NewTransportError creates a RequestError for a call that got no response.
func NewTransportError(cause error) *RequestError {
	return &RequestError{Message: cause.Error(), cause: cause}
}

func (e *RequestError) Error() string {
	if e.Status == 0 {
		return "request failed: " + e.Message
	}
	return "request failed (" + strconv.Itoa(e.Status) + "): " + e.Message
}

// Unwrap returns the transport error, if any.
func (e *RequestError) Unwrap() error {
	return e.cause
}

// Is makes every RequestError match ErrRequestFailed.
func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}

// IsTransport reports whether the request never received a response.
func (e *RequestError) IsTransport() bool {
	return e.Status == 0
}
