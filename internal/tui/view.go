package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/screener/internal/engine/poller"
	"go.trai.ch/screener/internal/ui/style"
)

// View renders the current state of the model as a string.
func (m *Model) View() string {
	var s strings.Builder

	icon := m.spinner.View()
	switch {
	case m.err != nil:
		icon = m.styles.failed.Render(style.Cross)
	case m.progress.IsComplete():
		icon = m.styles.success.Render(style.Check)
	case m.state != poller.WatchingActive && !m.awaitingStart:
		icon = m.styles.muted.Render(style.Circle)
	}

	title := m.jobTitle
	if m.progress != nil && m.progress.JobTitle != "" {
		title = m.progress.JobTitle
	}
	fmt.Fprintf(&s, "%s %s\n", icon, m.styles.title.Render(title))

	if m.progress == nil {
		s.WriteString(m.styles.muted.Render("  waiting for status") + "\n")
		return s.String()
	}

	p := m.progress
	fmt.Fprintf(&s, "  %s %3.0f%%  %d/%d analyzed  %s\n",
		m.bar.ViewAs(p.ProgressPercentage/100),
		p.ProgressPercentage,
		p.Analyzed,
		p.TotalCandidates,
		m.styles.muted.Render(string(p.AnalysisStatus)),
	)
	s.WriteString("  " + renderCategories(p.Categories))
	if p.Errors > 0 {
		s.WriteString("  " + m.styles.failed.Render(fmt.Sprintf("%d errors", p.Errors)))
	}
	s.WriteString("\n")

	if m.fetchErr != nil {
		s.WriteString(m.styles.failed.Render("  "+style.Warning+" "+m.fetchErr.Error()) + "\n")
	}
	if m.err != nil {
		s.WriteString(m.styles.failed.Render("  "+m.err.Error()) + "\n")
	}
	return s.String()
}

func renderCategories(c domain.CategoryCounts) string {
	parts := []struct {
		category domain.Category
		count    int
	}{
		{domain.CategoryExcellent, c.Excellent},
		{domain.CategoryGood, c.Good},
		{domain.CategoryAverage, c.Average},
		{domain.CategoryBelowAverage, c.BelowAverage},
	}

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		label := lipgloss.NewStyle().Foreground(style.CategoryColor(part.category)).Render(string(part.category))
		out = append(out, fmt.Sprintf("%s %d", label, part.count))
	}
	return strings.Join(out, "  ")
}
