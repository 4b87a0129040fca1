// Package commands implements the CLI commands for screener.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/screener/internal/app"
	"go.trai.ch/screener/internal/build"
	"go.trai.ch/screener/internal/core/domain"
)

// CLI represents the command line interface for screener.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	json    bool
	refresh bool
}

// Application represents the application logic interface.
type Application interface {
	Jobs(ctx context.Context, status domain.JobStatus) ([]domain.Job, error)
	Job(ctx context.Context, id int64) (*domain.Job, error)
	JobStats(ctx context.Context, id int64) (*domain.JobStats, error)
	Candidates(ctx context.Context, jobID int64, filter domain.CandidateFilter) ([]domain.Candidate, error)
	Candidate(ctx context.Context, id int64) (*domain.CandidateWithJob, error)
	Shortlist(ctx context.Context, jobID int64, minScore int) ([]domain.Candidate, error)
	AnalysisStatus(ctx context.Context, jobID int64) (*domain.AnalysisProgress, error)
	SystemStatus(ctx context.Context) (*domain.SystemStatus, error)
	Health(ctx context.Context) (*domain.HealthCheck, error)
	Settings(ctx context.Context) (*domain.SettingsResponse, error)

	CreateJob(ctx context.Context, req domain.CreateJobRequest) (*domain.Job, error)
	UpdateJob(ctx context.Context, id int64, req domain.UpdateJobRequest) (*domain.Job, error)
	DeleteJob(ctx context.Context, id int64) error
	UploadCVs(ctx context.Context, jobID int64, paths []string) (*domain.UploadResult, error)
	PasteCV(ctx context.Context, jobID int64, cvText string) (*domain.Candidate, error)
	ReanalyzeCandidate(ctx context.Context, candidateID int64) (*domain.Candidate, error)
	DeleteCandidate(ctx context.Context, candidateID int64) error
	DeleteCandidates(ctx context.Context, jobID int64, ids []int64) (*domain.BulkDeleteResult, error)
	RetryAnalysis(ctx context.Context, jobID int64, ids []int64) (*domain.AnalysisBatchResult, error)
	UpdateSettings(ctx context.Context, settings domain.Settings) (*domain.Settings, error)

	WatchAnalysis(ctx context.Context, jobID int64, opts app.WatchOptions) (*domain.AnalysisProgress, error)
	WatchSystem(ctx context.Context, fn func(domain.Entry)) error
	Export(ctx context.Context, jobID int64, opts domain.ExportOptions) (string, error)
}

// refresher is implemented by applications that can bypass fresh cache
// entries.
type refresher interface {
	WithRefresh(enable bool) *app.App
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "screener",
		Short:         "Screen CVs against job postings with the Analysis Service",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().BoolVar(&c.json, "json", false, "Print results as JSON")
	rootCmd.PersistentFlags().BoolVar(&c.refresh, "refresh", false, "Bypass cached results and refetch")
	rootCmd.PersistentPreRun = func(*cobra.Command, []string) {
		if r, ok := c.app.(refresher); ok && c.refresh {
			r.WithRefresh(true)
		}
	}

	rootCmd.AddCommand(c.newJobsCmd())
	rootCmd.AddCommand(c.newCandidatesCmd())
	rootCmd.AddCommand(c.newAnalyzeCmd())
	rootCmd.AddCommand(c.newExportCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newHealthCmd())
	rootCmd.AddCommand(c.newSettingsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetInput sets the input stream for the root command. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
