package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newJobsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Manage job postings",
	}
	cmd.AddCommand(
		c.newJobsListCmd(),
		c.newJobsGetCmd(),
		c.newJobsCreateCmd(),
		c.newJobsUpdateCmd(),
		c.newJobsDeleteCmd(),
		c.newJobsStatsCmd(),
	)
	return cmd
}

func (c *CLI) newJobsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List job postings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, _ := cmd.Flags().GetString("status")
			jobs, err := c.app.Jobs(cmd.Context(), domain.JobStatus(status))
			if err != nil {
				return err
			}
			return c.emit(cmd, jobs, func(w io.Writer) {
				rows := make([][]string, 0, len(jobs))
				for _, j := range jobs {
					rows = append(rows, []string{
						strconv.FormatInt(j.ID, 10),
						j.Title,
						j.Company,
						string(j.Status),
						strconv.Itoa(j.TotalCandidates),
						strconv.Itoa(j.PendingCount),
					})
				}
				renderTable(w, []string{"ID", "TITLE", "COMPANY", "STATUS", "CANDIDATES", "PENDING"}, rows)
			})
		},
	}
	cmd.Flags().StringP("status", "s", "", "Only list jobs in this status (active, closed, draft)")
	return cmd
}

func (c *CLI) newJobsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <job-id>",
		Short: "Show a job posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			job, err := c.app.Job(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.emit(cmd, job, func(w io.Writer) { printJob(w, job) })
		},
	}
}

func printJob(w io.Writer, j *domain.Job) {
	_, _ = fmt.Fprintf(w, "%s (#%d)\n", j.Title, j.ID)
	if j.Company != "" {
		_, _ = fmt.Fprintf(w, "Company:      %s\n", j.Company)
	}
	if j.Location != "" {
		_, _ = fmt.Fprintf(w, "Location:     %s\n", j.Location)
	}
	if j.SalaryRange != "" {
		_, _ = fmt.Fprintf(w, "Salary:       %s\n", j.SalaryRange)
	}
	_, _ = fmt.Fprintf(w, "Status:       %s\n", j.Status)
	_, _ = fmt.Fprintf(w, "Skills:       %s\n", joinOrDash(j.Skills))
	_, _ = fmt.Fprintf(w, "Requirements: %s\n", joinOrDash(j.Requirements))
	_, _ = fmt.Fprintf(w, "Candidates:   %d (%d pending)\n", j.TotalCandidates, j.PendingCount)
	if j.Description != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", j.Description)
	}
}

func (c *CLI) newJobsCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a job posting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			req := domain.CreateJobRequest{}
			req.Title, _ = flags.GetString("title")
			req.Company, _ = flags.GetString("company")
			req.Description, _ = flags.GetString("description")
			req.Requirements, _ = flags.GetStringSlice("requirement")
			req.Skills, _ = flags.GetStringSlice("skill")
			req.Location, _ = flags.GetString("location")
			req.SalaryRange, _ = flags.GetString("salary")
			status, _ := flags.GetString("status")
			req.Status = domain.JobStatus(status)

			if err := validator.New().Struct(req); err != nil {
				return zerr.Wrap(err, domain.ErrInvalidInput.Error())
			}

			job, err := c.app.CreateJob(cmd.Context(), req)
			if err != nil {
				return err
			}
			return c.emit(cmd, job, func(w io.Writer) {
				_, _ = fmt.Fprintf(w, "created job #%d %s\n", job.ID, job.Title)
			})
		},
	}
	addJobFlags(cmd)
	return cmd
}

func addJobFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("title", "t", "", "Job title")
	cmd.Flags().String("company", "", "Company name")
	cmd.Flags().StringP("description", "d", "", "Job description")
	cmd.Flags().StringSlice("requirement", nil, "Requirement, repeatable")
	cmd.Flags().StringSlice("skill", nil, "Required skill, repeatable")
	cmd.Flags().String("location", "", "Job location")
	cmd.Flags().String("salary", "", "Salary range")
	cmd.Flags().String("status", "", "Job status (active, closed, draft)")
}

func (c *CLI) newJobsUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <job-id>",
		Short: "Update fields of a job posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			req := updateRequest(cmd)
			if req.Status != nil {
				if err := validator.New().Var(string(*req.Status), "oneof=active closed draft"); err != nil {
					return zerr.With(domain.ErrInvalidInput, "status", string(*req.Status))
				}
			}

			job, err := c.app.UpdateJob(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			return c.emit(cmd, job, func(w io.Writer) {
				_, _ = fmt.Fprintf(w, "updated job #%d %s\n", job.ID, job.Title)
			})
		},
	}
	addJobFlags(cmd)
	return cmd
}

// updateRequest sets only the fields whose flag was given.
func updateRequest(cmd *cobra.Command) domain.UpdateJobRequest {
	flags := cmd.Flags()
	str := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}

	req := domain.UpdateJobRequest{
		Title:       str("title"),
		Company:     str("company"),
		Description: str("description"),
		Location:    str("location"),
		SalaryRange: str("salary"),
	}
	if flags.Changed("requirement") {
		req.Requirements, _ = flags.GetStringSlice("requirement")
	}
	if flags.Changed("skill") {
		req.Skills, _ = flags.GetStringSlice("skill")
	}
	if s := str("status"); s != nil {
		status := domain.JobStatus(*s)
		req.Status = &status
	}
	return req
}

func (c *CLI) newJobsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <job-id>",
		Short: "Delete a job posting and its candidates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := c.app.DeleteJob(cmd.Context(), id); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted job #%d\n", id)
			return nil
		},
	}
}

func (c *CLI) newJobsStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <job-id>",
		Short: "Show the candidate statistics of a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			stats, err := c.app.JobStats(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.emit(cmd, stats, func(w io.Writer) {
				s := stats.Statistics
				_, _ = fmt.Fprintf(w, "%s (#%d)\n", stats.JobTitle, stats.JobID)
				renderTable(w, []string{"CATEGORY", "CANDIDATES"}, [][]string{
					{formatCategory(domain.CategoryExcellent), strconv.Itoa(s.Excellent)},
					{formatCategory(domain.CategoryGood), strconv.Itoa(s.Good)},
					{formatCategory(domain.CategoryAverage), strconv.Itoa(s.Average)},
					{formatCategory(domain.CategoryBelowAverage), strconv.Itoa(s.BelowAverage)},
					{formatCategory(domain.CategoryPending), strconv.Itoa(s.Pending)},
				})
				_, _ = fmt.Fprintf(w, "%d candidates, %d analyzed, %d errors, average score %.1f\n",
					s.TotalCandidates, s.Analyzed, s.Errors, s.AvgScore)
			})
		},
	}
}
