package models

import "github.com/google/go-cmp/cmp"

// ID identifies a registered command handler.
type ID string

const (
	// SearchCommits runs the commit search flow.
	SearchCommits ID = "searchCommits"
	// ShowSearchResultsInView hands an already computed result log to the persistent view.
	ShowSearchResultsInView ID = "showCommitSearchResultsInView"
)

// Continuation is a replayable command descriptor: the command to run and the exact
// arguments it needs. It holds plain data only, so it can outlive the picker that
// produced it and be serialised.
type Continuation struct {
	Command ID             `json:"command" mapstructure:"command"`
	Args    map[string]any `json:"args,omitempty" mapstructure:"args"`
}

// Equal reports whether two continuations capture the same command and arguments.
func (c Continuation) Equal(other Continuation) bool {
	return c.Command == other.Command && cmp.Equal(c.Args, other.Args)
}
