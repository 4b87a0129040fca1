// Package api implements the AnalysisService port over the JSON HTTP API of the
// screening backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/screener/internal/core/ports"
	"go.trai.ch/zerr"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// envelope is the wrapper of every JSON response.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`

	raw []byte
}

// payload returns the data field when present, else the whole body.
func (e *envelope) payload() []byte {
	data := bytes.TrimSpace(e.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return bytes.TrimSpace(e.raw)
	}
	return data
}

// Client implements ports.AnalysisService.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

var _ ports.AnalysisService = (*Client)(nil)

// New creates a Client for the API rooted at baseURL, e.g. http://localhost:5000/api.
// Requests carry no timeout of their own; cancellation comes from the caller's context.
func New(baseURL string) (*Client, error) {
	return newClientWithHTTP(baseURL, &http.Client{})
}

// newClientWithHTTP creates a Client with a custom http client (used for testing).
func newClientWithHTTP(baseURL string, hc *http.Client) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid api url"), "api_url", baseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, zerr.With(zerr.New("api url must be http or https"), "api_url", baseURL)
	}
	return &Client{baseURL: u, httpClient: hc}, nil
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) endpoint(query url.Values, segments ...string) string {
	u := c.baseURL.JoinPath(segments...)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// send performs one request. A nil response comes with a transport error.
func (c *Client) send(ctx context.Context, method, target string, body io.Reader, contentType string) (*http.Response, error) {
	if body == nil {
		body = http.NoBody
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if v, ok := ports.VertexFromContext(ctx); ok {
		status := "no response"
		if resp != nil {
			status = resp.Status
		}
		_, _ = fmt.Fprintf(v.Stdout(), "%s %s %s\n", method, req.URL.Path, status)
	}
	if err != nil {
		return nil, domain.NewTransportError(err)
	}
	return resp, nil
}

// call performs a request and returns the envelope of a successful response.
func (c *Client) call(ctx context.Context, method, target string, body io.Reader, contentType string) (*envelope, error) {
	resp, err := c.send(ctx, method, target, body, contentType)
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

	env := envelope{raw: raw}
	if len(bytes.TrimSpace(raw)) == 0 {
		return &env, nil
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		// A bare JSON value other than an object has no envelope.
		if !json.Valid(raw) {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrDecodeResponse.Error()), "url", target)
		}
	}
	return &env, nil
}

// failure builds the error of a non-success response. The message comes from
// the body's message or error field, else from the status line.
func failure(resp *http.Response, raw []byte) *domain.RequestError {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil {
		if env.Message != "" {
			return domain.NewRequestError(resp.StatusCode, env.Message)
		}
		if env.Error != "" {
			return domain.NewRequestError(resp.StatusCode, env.Error)
		}
	}
	return domain.NewRequestError(resp.StatusCode, fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)))
}

// fetch performs a request and decodes the envelope's data into T. A response
// without data is decoded as a whole.
func fetch[T any](ctx context.Context, c *Client, method, target string, body io.Reader, contentType string) (T, error) {
	var out T
	env, err := c.call(ctx, method, target, body, contentType)
	if err != nil {
		return out, err
	}
	data := env.payload()
	if len(data) == 0 {
		return out, zerr.With(domain.ErrEmptyResponse, "url", target)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, zerr.With(zerr.Wrap(err, domain.ErrDecodeResponse.Error()), "url", target)
	}
	return out, nil
}

func jsonUnmarshal(raw []byte, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return zerr.Wrap(err, domain.ErrDecodeResponse.Error())
	}
	return nil
}

func jsonBody(v any) (io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode request body")
	}
	return bytes.NewReader(data), nil
}

// getJSON is fetch for GET requests.
func getJSON[T any](ctx context.Context, c *Client, target string) (T, error) {
	return fetch[T](ctx, c, http.MethodGet, target, nil, "")
}

// sendJSON is fetch with a JSON encoded body.
func sendJSON[T any](ctx context.Context, c *Client, method, target string, payload any) (T, error) {
	body, err := jsonBody(payload)
	if err != nil {
		var zero T
		return zero, err
	}
	return fetch[T](ctx, c, method, target, body, "application/json")
}
