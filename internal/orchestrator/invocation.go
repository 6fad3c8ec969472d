package orchestrator

import "github.com/Cyclone1070/commitsearch/internal/search"

// Invocation is where a search flow was started from. The set of variants is closed.
type Invocation interface {
	// Origin is the label used when logging failures of this flow.
	Origin() string

	searchArgs() search.Args
	workDir() string
}

// ViewInvocation starts a search from a node of a repository view.
type ViewInvocation struct {
	RepoPath string
	Search   string
	SearchBy search.Dimension
	Author   string
	Branch   string
	Sha      string
}

func (ViewInvocation) Origin() string { return "view" }

func (v ViewInvocation) searchArgs() search.Args {
	return search.Args{
		Repo:     v.RepoPath,
		Search:   v.Search,
		SearchBy: v.SearchBy,
		Author:   v.Author,
		Branch:   v.Branch,
		Sha:      v.Sha,
	}
}

func (ViewInvocation) workDir() string { return "" }

// PaletteInvocation starts a search from the command line.
type PaletteInvocation struct {
	Args search.Args
	// WorkDir is the directory the user invoked the command from.
	WorkDir string
}

func (PaletteInvocation) Origin() string { return "palette" }

func (p PaletteInvocation) searchArgs() search.Args { return p.Args }
func (p PaletteInvocation) workDir() string         { return p.WorkDir }

// ContinuationInvocation re-enters the flow from a dispatched continuation.
type ContinuationInvocation struct {
	Args search.Args
}

func (ContinuationInvocation) Origin() string { return "continuation" }

func (c ContinuationInvocation) searchArgs() search.Args { return c.Args }
func (ContinuationInvocation) workDir() string           { return "" }
