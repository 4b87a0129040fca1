// Package tui renders the analysis progress of a job in the terminal.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/screener/internal/engine/poller"
)

// WaitForUpdate returns a command that reads the next poller update.
// It returns MsgUpdatesEnded once the channel is closed.
func WaitForUpdate(updates <-chan poller.Update) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-updates
		if !ok {
			return MsgUpdatesEnded{}
		}
		return MsgProgress{Update: u}
	}
}
