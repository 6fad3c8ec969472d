package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/Cyclone1070/commitsearch/internal/command"
	"github.com/Cyclone1070/commitsearch/internal/config"
	"github.com/Cyclone1070/commitsearch/internal/orchestrator/models"
	"github.com/Cyclone1070/commitsearch/internal/search"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FailureMessage is the only text a user sees when a search flow fails.
const FailureMessage = "Unable to find commits. See the log for more details."

const targetPrompt = "Search for commits in which repository?"

// Collaborators are the services a search flow suspends on.
// Input is optional; a nil Input never prompts for search text.
type Collaborators struct {
	Target     models.TargetResolver
	Searcher   models.Searcher
	Progress   models.ProgressService
	Picker     models.Picker
	Viewer     models.Viewer
	Input      models.SearchInput
	Notifier   models.Notifier
	Dispatcher models.Dispatcher
}

// Orchestrator runs the search flow: resolve the target, build criteria,
// search, present the results and dispatch whatever the user picked.
type Orchestrator struct {
	cfg      *config.Config
	resolver *search.Resolver
	deps     Collaborators
	logger   *zap.Logger
}

// New creates a new Orchestrator instance
func New(cfg *config.Config, resolver *search.Resolver, deps Collaborators, logger *zap.Logger) *Orchestrator {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if resolver == nil {
		resolver = search.NewResolver()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		cfg:      cfg,
		resolver: resolver,
		deps:     deps,
		logger:   logger,
	}
}

// phaseError tags an error with the phase it came from.
type phaseError struct {
	phase string
	err   error
}

func (e *phaseError) Error() string { return fmt.Sprintf("%s: %v", e.phase, e.err) }
func (e *phaseError) Unwrap() error { return e.err }

// presentation is the result of the search and picker phases.
type presentation struct {
	log       *search.Log
	selection models.Selection
	picked    bool
}

// Run executes one search flow to completion. Failures are reported through
// the Notifier and returned as a StatusFailed outcome, never as a panic or retry.
func (o *Orchestrator) Run(ctx context.Context, inv Invocation) command.Outcome {
	logger := o.logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("origin", inv.Origin()),
	)
	args := inv.searchArgs()

	logger.Debug("resolving target", zap.String("hint", args.Repo))
	repo, ok, err := o.deps.Target.Resolve(ctx, models.TargetRequest{
		Hint:    args.Repo,
		WorkDir: inv.workDir(),
		Prompt:  targetPrompt,
		GoBack:  args.GoBack,
	})
	if err != nil {
		return o.fail(logger, &phaseError{phase: "target", err: err})
	}
	if !ok {
		logger.Debug("no repository selected")
		return command.Cancelled()
	}
	args.Repo = repo

	logger.Debug("building criteria")
	resolution := o.resolver.Resolve(args)
	if o.deps.Input != nil && (args.PrefillOnly || (args.Search == "" && !args.HasFilters())) {
		text, ok, err := o.deps.Input.ReadSearch(ctx, resolution.Search)
		if err != nil {
			return o.fail(logger, &phaseError{phase: "input", err: err})
		}
		if !ok {
			logger.Debug("search input dismissed")
			return command.Cancelled()
		}
		args.Search = text
		args.SearchBy = ""
		args.PrefillOnly = false
		resolution = o.resolver.Resolve(args)
	}
	logger.Debug("criteria resolved",
		zap.Stringer("criteria", resolution.Criteria),
		zap.String("search_by", string(resolution.SearchBy)),
	)

	label := fmt.Sprintf("Commits matching %s in %s", resolution.Criteria.String(), filepath.Base(repo))
	p, err := o.present(ctx, logger, args, resolution, label)
	if err != nil {
		return o.fail(logger, err)
	}

	if args.ShowInView {
		logger.Debug("showing results in view")
		err := o.deps.Viewer.Show(ctx, models.ViewRequest{
			Search:   resolution.Search,
			SearchBy: resolution.SearchBy,
			Log:      p.log,
			Label:    label,
		})
		if err != nil {
			return o.fail(logger, &phaseError{phase: "view", err: err})
		}
		return command.Completed()
	}

	if !p.picked {
		logger.Debug("picker dismissed")
		return command.Cancelled()
	}

	switch {
	case p.selection.Continuation != nil:
		c := *p.selection.Continuation
		logger.Debug("dispatching", zap.String("command", string(c.Command)))
		outcome, err := o.deps.Dispatcher.Dispatch(ctx, c)
		if err != nil {
			return o.fail(logger, &phaseError{phase: "dispatch", err: err})
		}
		return outcome
	case p.selection.Commit != nil:
		selected := *p.selection.Commit
		logger.Debug("commit selected", zap.String("sha", selected.Sha))
		return command.Outcome{Status: command.StatusCompleted, Selected: &selected}
	default:
		return command.Cancelled()
	}
}

// present runs the search and, unless the results go to the view, the picker.
// The progress scope spans both and is released before anything is dispatched.
func (o *Orchestrator) present(ctx context.Context, logger *zap.Logger, args search.Args, resolution search.Resolution, label string) (presentation, error) {
	progress := o.deps.Progress.Start(ctx, label)
	defer progress.Cancel()

	opts := search.Options{
		MaxCount:            o.cfg.Search.DefaultMaxCount,
		IncludeMergeCommits: args.ShowMergeCommits || o.cfg.Search.IncludeMergeCommits,
	}
	if args.MaxCount != nil {
		opts.MaxCount = *args.MaxCount
	}

	logger.Debug("searching",
		zap.String("repo", args.Repo),
		zap.Int("max_count", opts.MaxCount),
		zap.Bool("merges", opts.IncludeMergeCommits),
	)
	log, err := o.deps.Searcher.Search(ctx, args.Repo, resolution.Criteria, opts)
	if err != nil {
		return presentation{}, &phaseError{phase: "search", err: err}
	}
	if log != nil {
		logger.Debug("search finished", zap.Int("commits", len(log.Commits)), zap.Bool("truncated", log.Truncated))
	}

	if args.ShowInView {
		return presentation{log: log}, nil
	}

	goBack := command.GoBackFor(args)
	req := models.PickRequest{
		Log:      log,
		Label:    label,
		Search:   resolution.Search,
		Progress: progress,
		GoBack:   &goBack,
	}
	if log != nil && log.Truncated {
		showAll := command.ShowAll(args, goBack)
		req.ShowAll = &showAll
	}
	if log != nil {
		showInView := command.ShowInView(resolution.Search, resolution.SearchBy, log, label)
		req.ShowInView = &showInView
	}

	logger.Debug("presenting results")
	selection, picked, err := o.deps.Picker.Pick(ctx, req)
	if err != nil {
		return presentation{}, &phaseError{phase: "present", err: err}
	}
	return presentation{log: log, selection: selection, picked: picked}, nil
}

func (o *Orchestrator) fail(logger *zap.Logger, err error) command.Outcome {
	kind := models.ErrorKindSearch
	var pe *phaseError
	if errors.As(err, &pe) && pe.phase == "dispatch" {
		kind = models.ErrorKindDispatch
	}

	logger.Error("search flow failed", zap.Error(err))
	if o.deps.Notifier != nil {
		o.deps.Notifier.ShowError(kind, FailureMessage)
	}
	return command.Failed(err)
}
