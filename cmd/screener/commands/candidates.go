package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newCandidatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "candidates",
		Aliases: []string{"cv"},
		Short:   "Manage the candidates of a job",
	}
	cmd.AddCommand(
		c.newCandidatesListCmd(),
		c.newCandidatesGetCmd(),
		c.newShortlistCmd(),
		c.newUploadCmd(),
		c.newPasteCmd(),
		c.newReanalyzeCmd(),
		c.newCandidatesDeleteCmd(),
	)
	return cmd
}

func (c *CLI) newCandidatesListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <job-id>",
		Short: "List the candidates of a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobID, err := parseID(args[0])
			if err != nil {
				return err
			}
			category, _ := cmd.Flags().GetString("category")
			status, _ := cmd.Flags().GetString("status")

			candidates, err := c.app.Candidates(cmd.Context(), jobID, domain.CandidateFilter{
				Category: domain.Category(category),
				Status:   domain.CandidateStatus(status),
			})
			if err != nil {
				return err
			}
			return c.emit(cmd, candidates, func(w io.Writer) { printCandidates(w, candidates) })
		},
	}
	cmd.Flags().StringP("category", "c", "", "Only list candidates in this category")
	cmd.Flags().StringP("status", "s", "", "Only list candidates in this status (pending, analyzed, error)")
	return cmd
}

func printCandidates(w io.Writer, candidates []domain.Candidate) {
	rows := make([][]string, 0, len(candidates))
	for _, cand := range candidates {
		rows = append(rows, []string{
			strconv.FormatInt(cand.ID, 10),
			cand.Name,
			formatScore(cand.Score),
			formatCategory(cand.Category),
			string(cand.Recommendation),
			string(cand.Status),
		})
	}
	renderTable(w, []string{"ID", "NAME", "SCORE", "CATEGORY", "RECOMMENDATION", "STATUS"}, rows)
}

func (c *CLI) newCandidatesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <candidate-id>",
		Short: "Show a candidate and its analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			detail, err := c.app.Candidate(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.emit(cmd, detail, func(w io.Writer) { printCandidate(w, detail) })
		},
	}
}

func printCandidate(w io.Writer, d *domain.CandidateWithJob) {
	cand := d.Candidate
	_, _ = fmt.Fprintf(w, "%s (#%d)\n", cand.Name, cand.ID)
	if d.Job != nil {
		_, _ = fmt.Fprintf(w, "Job:            %s (#%d)\n", d.Job.Title, d.Job.ID)
	}
	if cand.Email != "" {
		_, _ = fmt.Fprintf(w, "Email:          %s\n", cand.Email)
	}
	_, _ = fmt.Fprintf(w, "Status:         %s\n", cand.Status)
	_, _ = fmt.Fprintf(w, "Score:          %s\n", formatScore(cand.Score))
	_, _ = fmt.Fprintf(w, "Category:       %s\n", formatCategory(cand.Category))
	if cand.Recommendation != "" {
		_, _ = fmt.Fprintf(w, "Recommendation: %s\n", cand.Recommendation)
	}
	_, _ = fmt.Fprintf(w, "Matched skills: %s\n", joinOrDash(cand.MatchedSkills))
	_, _ = fmt.Fprintf(w, "Missing skills: %s\n", joinOrDash(cand.MissingSkills))
	if len(cand.Strengths) > 0 {
		_, _ = fmt.Fprintf(w, "Strengths:      %s\n", strings.Join(cand.Strengths, "; "))
	}
	if len(cand.Concerns) > 0 {
		_, _ = fmt.Fprintf(w, "Concerns:       %s\n", strings.Join(cand.Concerns, "; "))
	}
	if cand.ErrorMessage != "" {
		_, _ = fmt.Fprintf(w, "Error:          %s\n", cand.ErrorMessage)
	}
	if cand.Summary != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", cand.Summary)
	}
}

func (c *CLI) newShortlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shortlist <job-id>",
		Short: "List the candidates scoring at least --min-score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobID, err := parseID(args[0])
			if err != nil {
				return err
			}
			minScore, _ := cmd.Flags().GetInt("min-score")
			if minScore < 0 || minScore > 100 {
				return zerr.With(domain.ErrInvalidInput, "min_score", minScore)
			}
			candidates, err := c.app.Shortlist(cmd.Context(), jobID, minScore)
			if err != nil {
				return err
			}
			return c.emit(cmd, candidates, func(w io.Writer) { printCandidates(w, candidates) })
		},
	}
	cmd.Flags().Int("min-score", 70, "Minimum score (0-100)")
	return cmd
}

func (c *CLI) newUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <job-id> <file>...",
		Short: "Upload CV documents (pdf, docx, txt) to a job",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobID, err := parseID(args[0])
			if err != nil {
				return err
			}
			res, err := c.app.UploadCVs(cmd.Context(), jobID, args[1:])
			if err != nil {
				return err
			}
			return c.emit(cmd, res, func(w io.Writer) {
				_, _ = fmt.Fprintf(w, "uploaded %d, failed %d\n", res.Uploaded, res.Failed)
				for _, f := range res.Errors {
					_, _ = fmt.Fprintf(w, "  %s: %s\n", f.Filename, f.Error)
				}
			})
		},
	}
}

func (c *CLI) newPasteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paste <job-id>",
		Short: "Submit a plain-text CV read from --file or stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobID, err := parseID(args[0])
			if err != nil {
				return err
			}
			text, err := readCVText(cmd)
			if err != nil {
				return err
			}
			cand, err := c.app.PasteCV(cmd.Context(), jobID, text)
			if err != nil {
				return err
			}
			return c.emit(cmd, cand, func(w io.Writer) {
				_, _ = fmt.Fprintf(w, "added candidate #%d %s\n", cand.ID, cand.Name)
			})
		},
	}
	cmd.Flags().StringP("file", "f", "", "Read the CV text from this file instead of stdin")
	return cmd
}

func readCVText(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("file")
	if path != "" {
		//nolint:gosec // path is chosen by the user
		data, err := os.ReadFile(path)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to read cv file"), "path", path)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", zerr.Wrap(err, "failed to read cv text")
	}
	return string(data), nil
}

func (c *CLI) newReanalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reanalyze <candidate-id>",
		Short: "Run the analysis of a candidate again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			cand, err := c.app.ReanalyzeCandidate(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.emit(cmd, cand, func(w io.Writer) {
				_, _ = fmt.Fprintf(w, "%s scored %s (%s)\n", cand.Name, formatScore(cand.Score), formatCategory(cand.Category))
			})
		},
	}
}

func (c *CLI) newCandidatesDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <candidate-id>...",
		Short: "Delete candidates; several ids need --job",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			jobArg, _ := cmd.Flags().GetInt64("job")

			if len(ids) == 1 && jobArg == 0 {
				if err := c.app.DeleteCandidate(cmd.Context(), ids[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted candidate #%d\n", ids[0])
				return nil
			}
			if jobArg <= 0 {
				return zerr.With(domain.ErrInvalidInput, "reason", "--job is required to delete several candidates")
			}

			res, err := c.app.DeleteCandidates(cmd.Context(), jobArg, ids)
			if err != nil {
				return err
			}
			return c.emit(cmd, res, func(w io.Writer) {
				_, _ = fmt.Fprintf(w, "deleted %d, failed %d\n", res.Deleted, res.Failed)
			})
		},
	}
	cmd.Flags().Int64("job", 0, "Job owning the candidates")
	return cmd
}
