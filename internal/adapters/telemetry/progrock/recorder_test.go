package progrock_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	"go.trai.ch/screener/internal/core/ports"
	"go.trai.ch/screener/internal/core/ports/mocks"
	recorder "go.trai.ch/screener/internal/adapters/telemetry/progrock"
	"go.uber.org/mock/gomock"
)

// captureWriter keeps every status update written to it.
type captureWriter struct {
	mu      sync.Mutex
	updates []*progrock.StatusUpdate
	closed  bool
}

func (w *captureWriter) WriteStatus(u *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.updates = append(w.updates, u)
	return nil
}

func (w *captureWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func (w *captureWriter) vertices() []*progrock.Vertex {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []*progrock.Vertex
	for _, u := range w.updates {
		out = append(out, u.Vertexes...)
	}
	return out
}

func TestNew(t *testing.T) {
	rec := recorder.New()
	assert.NotNil(t, rec)
	require.NoError(t, rec.Close())
}

func TestRecorder_Record(t *testing.T) {
	w := &captureWriter{}
	rec := recorder.NewRecorder(w)

	ctx, vertex := rec.Record(context.Background(), "fetch [jobs, list]")
	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, fromCtx)

	_, err := vertex.Stdout().Write([]byte("GET /api/jobs 200 OK\n"))
	require.NoError(t, err)
	vertex.Complete(errors.New("boom"))

	var completed *progrock.Vertex
	for _, v := range w.vertices() {
		if v.Completed != nil {
			completed = v
		}
	}
	require.NotNil(t, completed)
	assert.Equal(t, "fetch [jobs, list]", completed.Name)
	require.NotNil(t, completed.Error)
	assert.Equal(t, "boom", *completed.Error)

	require.NoError(t, rec.Close())
	assert.True(t, w.closed)
}

func TestRecorder_DistinctVertices(t *testing.T) {
	w := &captureWriter{}
	rec := recorder.NewRecorder(w)

	_, a := rec.Record(context.Background(), "fetch [system, status]")
	a.Complete(nil)
	_, b := rec.Record(context.Background(), "fetch [system, status]")
	b.Cached()
	b.Complete(nil)

	ids := map[string]bool{}
	cached := false
	for _, v := range w.vertices() {
		ids[v.Id] = true
		cached = cached || v.Cached
	}
	assert.Len(t, ids, 2)
	assert.True(t, cached)
}

func TestLogWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug("mutation start_analysis", "cached", false, "duration", gomock.Any())

	rec := recorder.NewRecorder(recorder.NewLogWriter(log))
	_, v := rec.Record(context.Background(), "mutation start_analysis")
	v.Complete(nil)
	require.NoError(t, rec.Close())
}

func TestNoop(t *testing.T) {
	var tel ports.Telemetry = recorder.Noop{}
	ctx := context.Background()

	got, v := tel.Record(ctx, "anything")
	assert.Equal(t, ctx, got)
	n, err := v.Stdout().Write([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	v.Cached()
	v.Complete(nil)
	assert.NoError(t, tel.Close())
}
