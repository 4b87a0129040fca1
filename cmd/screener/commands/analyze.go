package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/screener/internal/adapters/detector"
	"go.trai.ch/screener/internal/app"
	"go.trai.ch/screener/internal/core/domain"
)

func (c *CLI) newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run and follow candidate analysis",
	}
	cmd.AddCommand(
		c.newAnalyzeWatchCmd("run", "Analyze the pending candidates of a job and follow the progress", true),
		c.newAnalyzeWatchCmd("watch", "Follow the analysis progress of a job", false),
		c.newAnalyzeStatusCmd(),
		c.newAnalyzeRetryCmd(),
	)
	return cmd
}

func (c *CLI) newAnalyzeWatchCmd(use, short string, start bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <job-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobID, err := parseID(args[0])
			if err != nil {
				return err
			}
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			// If --ci is set, override output-mode to "plain"
			if ci {
				outputMode = "plain"
			}
			mode, err := detector.ResolveMode(detector.DetectEnvironment(os.Stdout), outputMode)
			if err != nil {
				return err
			}

			progress, err := c.app.WatchAnalysis(cmd.Context(), jobID, app.WatchOptions{
				Start:       start,
				Interactive: mode == detector.ModeInteractive,
			})
			if err != nil {
				return err
			}
			if c.json {
				return c.emit(cmd, progress, nil)
			}
			return nil
		},
	}
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or plain")
	cmd.Flags().Bool("ci", false, "Use plain output mode (shorthand for --output-mode=plain)")
	return cmd
}

func (c *CLI) newAnalyzeStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <job-id>",
		Short: "Show the analysis progress of a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobID, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := c.app.AnalysisStatus(cmd.Context(), jobID)
			if err != nil {
				return err
			}
			return c.emit(cmd, p, func(w io.Writer) { printProgress(w, p) })
		},
	}
}

func printProgress(w io.Writer, p *domain.AnalysisProgress) {
	_, _ = fmt.Fprintf(w, "%s (#%d): %s\n", p.JobTitle, p.JobID, p.AnalysisStatus)
	_, _ = fmt.Fprintf(w, "%.0f%% analyzed (%d/%d), %d pending, %d errors\n",
		p.ProgressPercentage, p.Analyzed, p.TotalCandidates, p.Pending, p.Errors)
	cats := p.Categories
	_, _ = fmt.Fprintf(w, "%s %d  %s %d  %s %d  %s %d\n",
		formatCategory(domain.CategoryExcellent), cats.Excellent,
		formatCategory(domain.CategoryGood), cats.Good,
		formatCategory(domain.CategoryAverage), cats.Average,
		formatCategory(domain.CategoryBelowAverage), cats.BelowAverage)
}

func (c *CLI) newAnalyzeRetryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "retry <job-id> [candidate-id...]",
		Short: "Analyze failed candidates again, all of them when no id is given",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobID, err := parseID(args[0])
			if err != nil {
				return err
			}
			ids, err := parseIDs(args[1:])
			if err != nil {
				return err
			}
			res, err := c.app.RetryAnalysis(cmd.Context(), jobID, ids)
			if err != nil {
				return err
			}
			return c.emit(cmd, res, func(w io.Writer) {
				_, _ = fmt.Fprintf(w, "retried %d candidates: %d analyzed, %d errors\n", res.Total, res.Analyzed, res.Errors)
			})
		},
	}
}
