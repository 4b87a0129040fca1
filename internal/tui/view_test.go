//nolint:testpackage // Test needs access to unexported fields
package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/screener/internal/engine/poller"
)

func TestModel_View_Waiting(t *testing.T) {
	m := NewModel(nil, "Data Engineer", false)

	out := m.View()
	assert.Contains(t, out, "Data Engineer")
	assert.Contains(t, out, "waiting for status")
}

func TestModel_View_Progress(t *testing.T) {
	m := NewModel(nil, "job", false)
	m.state = poller.WatchingActive
	m.progress = &domain.AnalysisProgress{
		JobTitle:           "Backend Engineer",
		AnalysisStatus:     domain.AnalysisInProgress,
		ProgressPercentage: 60,
		TotalCandidates:    5,
		Analyzed:           3,
		Errors:             1,
		Categories:         domain.CategoryCounts{Excellent: 1, Good: 1, BelowAverage: 1},
	}

	out := m.View()
	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "60%")
	assert.Contains(t, out, "3/5 analyzed")
	assert.Contains(t, out, "excellent")
	assert.Contains(t, out, "below_average")
	assert.Contains(t, out, "1 errors")
}

func TestModel_View_Complete(t *testing.T) {
	m := NewModel(nil, "job", false)
	m.state = poller.WatchingInactive
	m.progress = &domain.AnalysisProgress{AnalysisStatus: domain.AnalysisComplete, ProgressPercentage: 100, TotalCandidates: 2, Analyzed: 2}

	assert.Contains(t, m.View(), "✓")
}

func TestModel_View_NoCandidatesIsComplete(t *testing.T) {
	m := NewModel(nil, "job", false)
	m.state = poller.WatchingInactive
	m.progress = &domain.AnalysisProgress{AnalysisStatus: domain.AnalysisNoCandidates}

	assert.Contains(t, m.View(), "✓")
}

func TestModel_View_Failed(t *testing.T) {
	m := NewModel(nil, "job", false)
	m.progress = &domain.AnalysisProgress{AnalysisStatus: domain.AnalysisPending}
	m.err = errors.New("request failed (503): Cannot connect to Ollama LLM service")

	out := m.View()
	assert.Contains(t, out, "✗")
	assert.Contains(t, out, "Cannot connect to Ollama LLM service")
}
