package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/screener/internal/engine/poller"
	"go.trai.ch/screener/internal/ui/style"
)

type styles struct {
	title   lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	failed  lipgloss.Style
}

// Model is the Bubble Tea model following the analysis of one job.
type Model struct {
	updates       <-chan poller.Update
	jobTitle      string
	state         poller.State
	progress      *domain.AnalysisProgress
	fetchErr      error
	awaitingStart bool
	started       *domain.AnalysisBatchResult
	err           error
	done          bool
	width         int
	spinner       spinner.Model
	bar           progress.Model
	styles        styles
}

// NewModel creates a model reading updates. With awaitingStart set the model
// keeps running until a MsgStarted arrives.
func NewModel(updates <-chan poller.Update, jobTitle string, awaitingStart bool) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(style.Yellow)

	return &Model{
		updates:       updates,
		jobTitle:      jobTitle,
		awaitingStart: awaitingStart,
		spinner:       s,
		bar:           progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		styles: styles{
			title:   lipgloss.NewStyle().Bold(true),
			muted:   lipgloss.NewStyle().Foreground(style.Slate),
			success: lipgloss.NewStyle().Foreground(style.Green),
			failed:  lipgloss.NewStyle().Foreground(style.Red),
		},
	}
}

// Init starts reading updates and the spinner.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForUpdate(m.updates),
		m.spinner.Tick,
	)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			m.done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = max(10, min(60, msg.Width-20))
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MsgProgress:
		return m.handleProgress(msg)
	case MsgStarted:
		return m.handleStarted(msg)
	case MsgUpdatesEnded:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleProgress(msg MsgProgress) (tea.Model, tea.Cmd) {
	m.state = msg.Update.State
	m.fetchErr = msg.Update.Err
	if msg.Update.Progress != nil {
		m.progress = msg.Update.Progress
	}
	if m.finished() {
		m.done = true
		return m, tea.Quit
	}
	return m, WaitForUpdate(m.updates)
}

func (m *Model) handleStarted(msg MsgStarted) (tea.Model, tea.Cmd) {
	m.awaitingStart = false
	m.started = msg.Result
	if msg.Snapshot.Progress != nil {
		m.state = msg.Snapshot.State
		m.progress = msg.Snapshot.Progress
	}
	if msg.Err != nil {
		m.err = msg.Err
		m.done = true
		return m, tea.Quit
	}
	if m.finished() {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// finished reports whether no further update can change the outcome: the
// poller went quiet and no start request is outstanding.
func (m *Model) finished() bool {
	return !m.awaitingStart && m.progress != nil && m.state == poller.WatchingInactive
}

// Err returns the error that ended the watch, if any.
func (m *Model) Err() error {
	return m.err
}

// Progress returns the last progress snapshot.
func (m *Model) Progress() *domain.AnalysisProgress {
	return m.progress
}
