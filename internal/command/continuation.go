package command

import (
	"slices"

	"github.com/Cyclone1070/commitsearch/internal/command/models"
	"github.com/Cyclone1070/commitsearch/internal/search"
)

// This file builds the continuations offered by the search picker.
// Building a continuation never runs it; dispatch goes through a Registry.

// Unlimited is the maxCount carried by a show-all continuation.
const Unlimited = 0

// GoBackFor returns the continuation that resumes the flow which produced args.
// A go-back already carried by args is passed through unchanged, so back history
// forms an unbounded chain. Otherwise the origin arguments are replayed as a
// prefilled search for re-editing.
func GoBackFor(args search.Args) models.Continuation {
	if args.GoBack != nil {
		return *args.GoBack
	}
	origin := args
	origin.PrefillOnly = true
	return models.Continuation{
		Command: models.SearchCommits,
		Args:    origin.Payload(),
	}
}

// ShowAll returns the continuation that re-runs the search without a result cap,
// keeping goBack as its back target.
func ShowAll(args search.Args, goBack models.Continuation) models.Continuation {
	next := args
	unlimited := Unlimited
	next.MaxCount = &unlimited
	next.GoBack = &goBack
	return models.Continuation{
		Command: models.SearchCommits,
		Args:    next.Payload(),
	}
}

// ShowInViewArgs is the payload of a show-in-view continuation.
type ShowInViewArgs struct {
	Search   string           `mapstructure:"search"`
	SearchBy search.Dimension `mapstructure:"searchBy"`
	Results  *search.Log      `mapstructure:"results"`
	Label    string           `mapstructure:"label"`
}

// ShowInView returns the terminal continuation that hands log to the persistent
// view instead of searching again. The log is copied into the payload.
func ShowInView(searchText string, searchBy search.Dimension, log *search.Log, label string) models.Continuation {
	payload := map[string]any{
		"search":   searchText,
		"searchBy": string(searchBy),
		"label":    label,
	}
	if log != nil {
		results := *log
		results.Commits = slices.Clone(log.Commits)
		payload["results"] = results
	}
	return models.Continuation{
		Command: models.ShowSearchResultsInView,
		Args:    payload,
	}
}
