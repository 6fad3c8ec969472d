// Package main provides the commitsearch command-line interface.
// It searches the commit history of a git repository and lets the user pick a result.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/Cyclone1070/commitsearch/internal/command"
	cmdmodels "github.com/Cyclone1070/commitsearch/internal/command/models"
	"github.com/Cyclone1070/commitsearch/internal/config"
	"github.com/Cyclone1070/commitsearch/internal/git"
	"github.com/Cyclone1070/commitsearch/internal/orchestrator"
	orchmodels "github.com/Cyclone1070/commitsearch/internal/orchestrator/models"
	"github.com/Cyclone1070/commitsearch/internal/search"
	"github.com/Cyclone1070/commitsearch/internal/ui"
	uiservices "github.com/Cyclone1070/commitsearch/internal/ui/services"
	"github.com/Cyclone1070/commitsearch/internal/ui/views"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// errSearchFailed is returned when the flow failed; the user was already told why.
var errSearchFailed = errors.New("search failed")

// options holds the command-line flags.
type options struct {
	repo     string
	searchBy string
	author   string
	branch   string
	sha      string
	since    string
	before   string
	after    string
	maxCount int
	merges   bool
	prefill  bool
	view     bool
	verbose  bool
}

// Streams are the terminal streams the application talks to.
type Streams struct {
	In  io.Reader
	Out io.Writer // Selected sha and the persistent view
	Err io.Writer // Interactive UI, progress and logs
}

func main() {
	cmd := newRootCmd(Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errSearchFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd(streams Streams) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "commitsearch [search text...]",
		Short: "Search the commit history of a git repository",
		Long: `commitsearch finds commits by message, author, sha, changed files or changed lines.

The search text may start with a prefix symbol that picks what to search:
  ` + views.SymbolLegend() + `

Without a prefix the text is matched against commit messages.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, positional []string) error {
			args, err := opts.searchArgs(positional, cmd.Flags().Changed("max-count"))
			if err != nil {
				return err
			}
			return run(cmd.Context(), streams, opts.verbose, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.repo, "repo", "C", "", "Repository to search (default: the one containing the working directory)")
	f.StringVar(&opts.searchBy, "search-by", "", "Dimension the search text applies to: message, author, sha, files, changes, changedLines")
	f.StringVar(&opts.author, "author", "", "Only commits by this author")
	f.StringVar(&opts.branch, "branch", "", "Search from this branch or revision instead of HEAD")
	f.StringVar(&opts.sha, "sha", "", "Commit hash prefix")
	f.StringVar(&opts.since, "since", "", `Lower date bound, e.g. "2 weeks ago" or 2024-01-31`)
	f.StringVar(&opts.before, "before", "", "Upper date bound (RFC 3339 or YYYY-MM-DD)")
	f.StringVar(&opts.after, "after", "", "Lower date bound (RFC 3339 or YYYY-MM-DD)")
	f.IntVarP(&opts.maxCount, "max-count", "n", 0, "Maximum number of commits, 0 for unlimited (default: from config)")
	f.BoolVar(&opts.merges, "merges", false, "Include merge commits")
	f.BoolVar(&opts.prefill, "prefill", false, "Open the search prompt prefilled instead of searching right away")
	f.BoolVar(&opts.view, "view", false, "Print the results instead of opening the picker")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

// searchArgs converts the flags and positional words into search arguments.
func (o options) searchArgs(positional []string, maxCountSet bool) (search.Args, error) {
	args := search.Args{
		Repo:             o.repo,
		Search:           strings.Join(positional, " "),
		SearchBy:         search.Dimension(o.searchBy),
		PrefillOnly:      o.prefill,
		ShowInView:       o.view,
		Sha:              o.sha,
		Branch:           o.branch,
		Author:           o.author,
		Since:            o.since,
		ShowMergeCommits: o.merges,
	}
	if maxCountSet {
		n := o.maxCount
		args.MaxCount = &n
	}

	var err error
	if args.Before, err = parseDateFlag("before", o.before); err != nil {
		return args, err
	}
	if args.After, err = parseDateFlag("after", o.after); err != nil {
		return args, err
	}

	if err := args.Validate(); err != nil {
		return args, err
	}
	return args, nil
}

func parseDateFlag(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid --%s date %q: expected RFC 3339 or YYYY-MM-DD", name, value)
}

// newLogger builds the production logger from the log config.
func newLogger(cfg config.LogConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{cfg.Path}
	zc.ErrorOutputPaths = []string{cfg.Path}

	return zc.Build()
}

// newApp wires the search flow and registers its commands.
func newApp(cfg *config.Config, logger *zap.Logger, streams Streams) (*orchestrator.Orchestrator, *command.Registry, error) {
	styles := views.NewStyles(cfg.UI)
	terminal := ui.NewUI(streams.In, streams.Err, styles)
	viewer := ui.NewViewer(streams.Out, cfg.UI.ViewFormat, uiservices.NewGlamourRenderer(cfg.UI.GlamourStyle))
	registry := command.NewRegistry(logger)

	orch := orchestrator.New(cfg, search.NewResolver(), orchestrator.Collaborators{
		Target:     git.NewTargetResolver(terminal, cfg.Search.Repositories),
		Searcher:   git.NewSearcher(),
		Progress:   ui.NewProgressService(streams.Err, time.Duration(cfg.UI.SpinnerIntervalMs)*time.Millisecond, styles),
		Picker:     terminal,
		Viewer:     viewer,
		Input:      terminal,
		Notifier:   terminal,
		Dispatcher: registry,
	}, logger)

	handlers := []command.Handler{
		command.NewAdapter(cmdmodels.SearchCommits, func(ctx context.Context, args search.Args) (command.Outcome, error) {
			return orch.Run(ctx, orchestrator.ContinuationInvocation{Args: args}), nil
		}),
		command.NewAdapter(cmdmodels.ShowSearchResultsInView, func(ctx context.Context, args command.ShowInViewArgs) (command.Outcome, error) {
			err := viewer.Show(ctx, orchmodels.ViewRequest{
				Search:   args.Search,
				SearchBy: args.SearchBy,
				Log:      args.Results,
				Label:    args.Label,
			})
			if err != nil {
				return command.Outcome{}, err
			}
			return command.Completed(), nil
		}),
	}
	for _, h := range handlers {
		if err := registry.Register(h); err != nil {
			return nil, nil, err
		}
	}

	return orch, registry, nil
}

func run(ctx context.Context, streams Streams, verbose bool, args search.Args) error {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(streams.Err, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(streams.Err, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}

	logger, err := newLogger(cfg.Log, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	orch, _, err := newApp(cfg, logger, streams)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		logger.Warn("failed to get working directory", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	outcome := orch.Run(ctx, orchestrator.PaletteInvocation{Args: args, WorkDir: workDir})
	return report(streams.Out, outcome)
}

// report prints the selected commit and maps the outcome to an exit error.
func report(out io.Writer, outcome command.Outcome) error {
	switch outcome.Status {
	case command.StatusFailed:
		return errSearchFailed
	case command.StatusCompleted:
		if outcome.Selected != nil {
			fmt.Fprintln(out, outcome.Selected.Sha)
		}
	}
	return nil
}
