package search

import (
	"strings"
	"sync"
	"time"
)

// Resolution is the canonical form of a search request.
type Resolution struct {
	Criteria Criteria
	// Search is the canonical raw search text, including any prefix symbol.
	Search   string
	SearchBy Dimension
}

// Resolver turns search arguments into criteria. It owns the last-search slot,
// so one Resolver should be shared by every entry point of the search flow.
type Resolver struct {
	mu   sync.Mutex
	last string
}

// NewResolver creates a Resolver with an empty last-search slot.
func NewResolver() *Resolver {
	return &Resolver{}
}

// LastSearch returns the most recently resolved raw search text.
//
// NOTE: Resolve never falls back to this value when no search text is given.
// The fallback is a known gap and stays disabled.
func (r *Resolver) LastSearch() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

func (r *Resolver) setLast(s string) {
	r.mu.Lock()
	r.last = s
	r.mu.Unlock()
}

// Resolve merges the raw search text and the structured filters of args into
// criteria. It never fails: malformed input degrades to a plain message predicate.
// args is taken by value and is never modified.
func (r *Resolver) Resolve(args Args) Resolution {
	var criteria Criteria
	search := args.Search
	searchBy := args.SearchBy

	if args.Search == "" || args.SearchBy == "" || args.PrefillOnly {
		// Re-encode an already structured search so it can be edited as text.
		if args.PrefillOnly && args.Search != "" && args.SearchBy != "" {
			if symbol, ok := DimensionToSymbol(args.SearchBy); ok {
				args.Search = string(symbol) + args.Search
			}
			args.SearchBy = ""
		}

		// A bare symbol positions the input cursor after the prefix.
		if args.Search == "" && args.SearchBy != "" {
			if symbol, ok := DimensionToSymbol(args.SearchBy); ok {
				args.Search = string(symbol)
			}
		}

		search = args.Search
		searchBy = args.SearchBy
		r.setLast(search)

		if d, value, ok := parsePrefix(search); ok {
			searchBy = d
			criteria.Set(d, value)
		}
		// The literal text is always matched as well.
		criteria.Set(DimensionMessage, search)
	} else {
		criteria.Set(args.SearchBy, args.Search)
	}

	if args.Sha != "" {
		criteria.Set(DimensionSha, args.Sha)
	}
	if args.Author != "" && !criteria.Has(DimensionAuthor) {
		criteria.Set(DimensionAuthor, args.Author)
	}
	if args.Branch != "" {
		criteria.Set(DimensionBranch, args.Branch)
	}

	if searchBy == "" {
		searchBy = DimensionMessage
	}

	if args.Since != "" && args.Since != SinceUnset {
		criteria.Set(DimensionSince, args.Since)
	} else {
		if args.Before != nil {
			criteria.Set(DimensionBefore, FormatDate(*args.Before))
		}
		if args.After != nil {
			criteria.Set(DimensionAfter, FormatDate(*args.After))
		}
	}

	if criteria.Len() == 0 {
		criteria.Set(DimensionMessage, search)
	}

	return Resolution{
		Criteria: criteria,
		Search:   search,
		SearchBy: searchBy,
	}
}

// parsePrefix splits a leading prefix symbol, optionally followed by a single
// space, from s. Unknown symbols are not prefixes.
func parsePrefix(s string) (Dimension, string, bool) {
	if s == "" {
		return "", "", false
	}
	d, ok := SymbolToDimension(s[0])
	if !ok {
		return "", "", false
	}
	return d, strings.TrimPrefix(s[1:], " "), true
}

// FormatDate is the canonical representation of a date bound.
func FormatDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
