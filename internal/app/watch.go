package app

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/screener/internal/engine/poller"
	"go.trai.ch/screener/internal/tui"
	"go.trai.ch/zerr"
)

// WatchOptions configures WatchAnalysis.
type WatchOptions struct {
	// Start triggers the analysis of pending candidates before watching.
	Start bool
	// Interactive renders a terminal UI instead of plain progress lines.
	Interactive bool
}

type startResult struct {
	result   *domain.AnalysisBatchResult
	err      error
	snapshot poller.Update
}

// WatchAnalysis follows the analysis of a job until the server stops
// reporting it in progress. It returns the last progress snapshot. With
// opts.Start the analysis is started once the first status has been fetched.
func (a *App) WatchAnalysis(ctx context.Context, jobID int64, opts WatchOptions) (*domain.AnalysisProgress, error) {
	job, err := a.Job(ctx, jobID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	updates := make(chan poller.Update, 16)
	started := make(chan startResult, 1)
	var once sync.Once

	var p *poller.Poller
	p = poller.New(a.cache, a.api, jobID,
		poller.WithInterval(a.cfg.PollInterval),
		poller.WithLogger(a.logger),
		poller.WithUpdates(func(u poller.Update) {
			select {
			case updates <- u:
			case <-ctx.Done():
				return
			}
			if opts.Start {
				once.Do(func() { go a.start(ctx, jobID, p, started) })
			}
		}),
	)
	if !p.Enable(job.TotalCandidates) {
		return nil, zerr.With(domain.ErrNoCandidates, "job_id", jobID)
	}
	defer p.Disable()

	if opts.Interactive {
		return a.watchInteractive(ctx, job.Title, updates, started, opts.Start)
	}
	return a.watchPlain(ctx, updates, started, opts.Start)
}

// start runs the analysis and reports the result together with the poller
// state once the request and its refetch returned.
func (a *App) start(ctx context.Context, jobID int64, p *poller.Poller, started chan<- startResult) {
	res, err := a.StartAnalysis(ctx, jobID)
	started <- startResult{
		result:   res,
		err:      err,
		snapshot: poller.Update{State: p.State(), Progress: p.Progress()},
	}
}

func (a *App) watchInteractive(
	ctx context.Context,
	title string,
	updates <-chan poller.Update,
	started <-chan startResult,
	start bool,
) (*domain.AnalysisProgress, error) {
	model := tui.NewModel(updates, title, start)
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
	program := tea.NewProgram(model, opts...)

	if start {
		go func() {
			select {
			case r := <-started:
				program.Send(tui.MsgStarted{Result: r.result, Err: r.err, Snapshot: r.snapshot})
			case <-ctx.Done():
			}
		}()
	}

	if _, err := program.Run(); err != nil {
		return model.Progress(), zerr.Wrap(err, "failed to run progress view")
	}
	return model.Progress(), model.Err()
}

func (a *App) watchPlain(
	ctx context.Context,
	updates <-chan poller.Update,
	started <-chan startResult,
	start bool,
) (*domain.AnalysisProgress, error) {
	awaiting := start
	var last poller.Update
	seen := false

	for {
		select {
		case <-ctx.Done():
			return last.Progress, ctx.Err()

		case r := <-started:
			awaiting = false
			if r.snapshot.Progress != nil {
				last = r.snapshot
				seen = true
			}
			if r.err != nil {
				return last.Progress, r.err
			}
			_, _ = fmt.Fprintf(a.out, "analyzed %d of %d candidates, %d errors\n",
				r.result.Analyzed, r.result.Total, r.result.Errors)
			if seen && last.State == poller.WatchingInactive {
				return last.Progress, nil
			}

		case u := <-updates:
			last = u
			seen = true
			a.printProgress(u)
			if !awaiting && u.State == poller.WatchingInactive {
				return u.Progress, nil
			}
		}
	}
}

func (a *App) printProgress(u poller.Update) {
	if u.Err != nil {
		a.logger.Warn("analysis status refresh failed", "error", u.Err.Error())
	}
	p := u.Progress
	if p == nil {
		return
	}
	_, _ = fmt.Fprintf(a.out, "%-12s %3.0f%%  %d/%d analyzed  %d errors\n",
		p.AnalysisStatus, p.ProgressPercentage, p.Analyzed, p.TotalCandidates, p.Errors)
}

// WatchSystem refreshes the system status every status interval until ctx is
// done, handing every entry transition to fn.
func (a *App) WatchSystem(ctx context.Context, fn func(domain.Entry)) error {
	w := poller.NewSystemWatcher(a.cache, a.api,
		poller.WithSystemInterval(a.cfg.StatusInterval),
		poller.WithSystemLogger(a.logger),
		poller.WithSystemUpdates(fn),
	)
	return w.Run(ctx)
}
