package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/screener/internal/engine/querycache"
	"go.trai.ch/screener/internal/ui/style"
	"go.trai.ch/zerr"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the Analysis Service counters and model availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			watch, _ := cmd.Flags().GetBool("watch")
			if watch {
				return c.watchStatus(cmd)
			}

			s, err := c.app.SystemStatus(cmd.Context())
			if err != nil {
				return err
			}
			return c.emit(cmd, s, func(w io.Writer) { printStatus(w, s) })
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Keep refreshing until interrupted")
	return cmd
}

func (c *CLI) watchStatus(cmd *cobra.Command) error {
	w := cmd.OutOrStdout()
	var last *domain.SystemStatus
	return c.app.WatchSystem(cmd.Context(), func(e domain.Entry) {
		if e.Status == domain.StatusError {
			_, _ = fmt.Fprintf(w, "%s %s\n", style.Warning, e.Err)
			return
		}
		s, ok, err := querycache.Value[*domain.SystemStatus](e)
		if err != nil || !ok || s == last {
			return
		}
		last = s
		_ = c.emit(cmd, s, func(w io.Writer) { printStatus(w, s) })
	})
}

func printStatus(w io.Writer, s *domain.SystemStatus) {
	ollama := lipgloss.NewStyle().Foreground(style.Red).Render(style.Cross + " unavailable")
	if s.Ollama.Available {
		ollama = lipgloss.NewStyle().Foreground(style.Green).Render(style.Check + " " + s.Ollama.Model)
	}
	_, _ = fmt.Fprintf(w, "jobs %d  candidates %d  analyzed %d  ollama %s\n",
		s.TotalJobs, s.TotalCandidates, s.TotalAnalyzed, ollama)
}

func (c *CLI) newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the Analysis Service and its dependencies are up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := c.app.Health(cmd.Context())
			if err != nil {
				return err
			}
			if err := c.emit(cmd, h, func(w io.Writer) {
				_, _ = fmt.Fprintf(w, "%s  api %s  database %s  ollama %s\n",
					h.Status, h.Services.API, h.Services.Database, h.Services.Ollama)
			}); err != nil {
				return err
			}
			if !h.Healthy() {
				return zerr.With(zerr.New("analysis service is not healthy"), "status", h.Status)
			}
			return nil
		},
	}
}
