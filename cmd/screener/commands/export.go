package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <job-id>",
		Short: "Download the candidates of a job as csv or excel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobID, err := parseID(args[0])
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")
			category, _ := cmd.Flags().GetString("category")

			opts := domain.ExportOptions{
				Format:   domain.ExportFormat(format),
				Category: domain.Category(category),
			}
			if cmd.Flags().Changed("min-score") {
				minScore, _ := cmd.Flags().GetInt("min-score")
				if minScore < 0 || minScore > 100 {
					return zerr.With(domain.ErrInvalidInput, "min_score", minScore)
				}
				opts.MinScore = &minScore
			}

			path, err := c.app.Export(cmd.Context(), jobID, opts)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", string(domain.ExportCSV), "Export format: csv or excel")
	cmd.Flags().StringP("category", "c", "", "Only export candidates in this category")
	cmd.Flags().Int("min-score", 0, "Only export candidates scoring at least this")
	return cmd
}
