package search

import "time"

// Commit is a single search hit.
type Commit struct {
	Sha     string    `json:"sha" yaml:"sha" mapstructure:"sha"`
	Author  string    `json:"author" yaml:"author" mapstructure:"author"`
	Email   string    `json:"email" yaml:"email" mapstructure:"email"`
	Date    time.Time `json:"date" yaml:"date" mapstructure:"date"`
	Summary string    `json:"summary" yaml:"summary" mapstructure:"summary"`
	Message string    `json:"message" yaml:"message" mapstructure:"message"`
	Parents int       `json:"parents" yaml:"parents" mapstructure:"parents"`
}

// ShortSha returns the abbreviated hash.
func (c Commit) ShortSha() string {
	if len(c.Sha) > 7 {
		return c.Sha[:7]
	}
	return c.Sha
}

// Log is the result set of a search.
type Log struct {
	Repo     string   `json:"repo" yaml:"repo" mapstructure:"repo"`
	Commits  []Commit `json:"commits" yaml:"commits" mapstructure:"commits"`
	MaxCount int      `json:"max_count" yaml:"max_count" mapstructure:"max_count"`
	// Truncated is set when the cap was hit before all matches were exhausted.
	Truncated bool `json:"truncated" yaml:"truncated" mapstructure:"truncated"`
}

// Options carries the search execution knobs that are not predicates.
type Options struct {
	// MaxCount of 0 means unlimited.
	MaxCount            int
	IncludeMergeCommits bool
}
