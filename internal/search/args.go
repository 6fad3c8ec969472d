package search

import (
	"time"

	"github.com/Cyclone1070/commitsearch/internal/command/models"
)

// SinceUnset is the sentinel "since" value meaning no relative lower bound.
const SinceUnset = "-1"

// Args is the input of a commit search. It is a value type; callers and the
// resolver only ever work on copies. Empty strings count as absent.
type Args struct {
	Repo string `mapstructure:"repoPath"`

	Search   string    `mapstructure:"search"`
	SearchBy Dimension `mapstructure:"searchBy"`
	// MaxCount caps the result set. Nil uses the configured default, 0 means unlimited.
	MaxCount    *int `mapstructure:"maxCount"`
	PrefillOnly bool `mapstructure:"prefillOnly"`
	ShowInView  bool `mapstructure:"showInView"`

	GoBack *models.Continuation `mapstructure:"goBackCommand"`

	Sha              string     `mapstructure:"sha"`
	Branch           string     `mapstructure:"branch"`
	Author           string     `mapstructure:"author"`
	Since            string     `mapstructure:"since"`
	Before           *time.Time `mapstructure:"before"`
	After            *time.Time `mapstructure:"after"`
	ShowMergeCommits bool       `mapstructure:"showMergeCommits"`
}

// HasFilters reports whether any structured filter is set.
func (a Args) HasFilters() bool {
	return a.Sha != "" || a.Branch != "" || a.Author != "" ||
		(a.Since != "" && a.Since != SinceUnset) || a.Before != nil || a.After != nil
}

// Payload encodes the set fields as a continuation payload keyed by their
// mapstructure names. Pointer fields are stored by value so the payload shares
// no memory with a.
func (a Args) Payload() map[string]any {
	p := make(map[string]any)
	putString := func(key, v string) {
		if v != "" {
			p[key] = v
		}
	}
	putBool := func(key string, v bool) {
		if v {
			p[key] = true
		}
	}

	putString("repoPath", a.Repo)
	putString("search", a.Search)
	putString("searchBy", string(a.SearchBy))
	if a.MaxCount != nil {
		p["maxCount"] = *a.MaxCount
	}
	putBool("prefillOnly", a.PrefillOnly)
	putBool("showInView", a.ShowInView)
	if a.GoBack != nil {
		p["goBackCommand"] = *a.GoBack
	}
	putString("sha", a.Sha)
	putString("branch", a.Branch)
	putString("author", a.Author)
	putString("since", a.Since)
	if a.Before != nil {
		p["before"] = *a.Before
	}
	if a.After != nil {
		p["after"] = *a.After
	}
	putBool("showMergeCommits", a.ShowMergeCommits)
	return p
}

// Validate rejects arguments that could never have been produced by a caller.
func (a Args) Validate() error {
	if a.SearchBy != "" && !a.SearchBy.Valid() {
		return &UnknownDimensionError{Value: string(a.SearchBy)}
	}
	if a.MaxCount != nil && *a.MaxCount < 0 {
		return &NegativeMaxCountError{Value: *a.MaxCount}
	}
	return nil
}
