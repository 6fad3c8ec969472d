package models

import (
	"context"

	"github.com/Cyclone1070/commitsearch/internal/command"
	cmdmodels "github.com/Cyclone1070/commitsearch/internal/command/models"
	"github.com/Cyclone1070/commitsearch/internal/search"
)

// TargetResolver decides which repository to search.
// A false result with a nil error means the user chose nothing.
type TargetResolver interface {
	Resolve(ctx context.Context, req TargetRequest) (string, bool, error)
}

// Searcher executes a commit search. A nil log with a nil error means no result set.
type Searcher interface {
	Search(ctx context.Context, repoPath string, criteria search.Criteria, opts search.Options) (*search.Log, error)
}

// Progress is a scoped progress indication.
type Progress interface {
	// Cancel releases the scope and fires Done. Safe to call more than once.
	Cancel()

	// Done is closed once the scope is cancelled.
	Done() <-chan struct{}
}

// ProgressService opens progress scopes.
type ProgressService interface {
	Start(ctx context.Context, label string) Progress
}

// Picker presents search results. A false result with a nil error means dismissed.
type Picker interface {
	Pick(ctx context.Context, req PickRequest) (Selection, bool, error)
}

// Viewer renders a result log on a persistent surface, independent of the picker.
type Viewer interface {
	Show(ctx context.Context, req ViewRequest) error
}

// SearchInput lets the user edit the raw search text.
// A false result with a nil error means dismissed.
type SearchInput interface {
	ReadSearch(ctx context.Context, prefill string) (string, bool, error)
}

// Notifier shows one-line, non-technical messages to the user.
type Notifier interface {
	ShowError(kind ErrorKind, message string)
}

// Dispatcher runs a continuation.
type Dispatcher interface {
	Dispatch(ctx context.Context, c cmdmodels.Continuation) (command.Outcome, error)
}
