package git

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/Cyclone1070/commitsearch/internal/search"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/diff"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// Searcher runs commit searches against local repositories with go-git.
type Searcher struct {
	now func() time.Time
}

// NewSearcher creates a Searcher that evaluates relative dates against the wall clock.
func NewSearcher() *Searcher {
	return &Searcher{now: time.Now}
}

// scope holds the AND-combined constraints of a search.
type scope struct {
	branch string
	since  *time.Time
	until  *time.Time
}

// predicates holds the OR-combined text predicates of a search.
type predicates struct {
	message      string
	author       string
	sha          string
	files        string
	changes      string
	changedLines *regexp.Regexp
}

func (p predicates) empty() bool {
	return p.message == "" && p.author == "" && p.sha == "" && !p.needsTree()
}

func (p predicates) needsTree() bool {
	return p.files != "" || p.needsPatch()
}

func (p predicates) needsPatch() bool {
	return p.changes != "" || p.changedLines != nil
}

// Search walks the history of repoPath and returns the commits matching criteria.
func (s *Searcher) Search(ctx context.Context, repoPath string, criteria search.Criteria, opts search.Options) (*search.Log, error) {
	sc, preds, err := s.compile(criteria)
	if err != nil {
		return nil, err
	}

	repo, err := openRepository(repoPath)
	if err != nil {
		return nil, &RepositoryNotFoundError{Path: repoPath, Cause: err}
	}

	result := &search.Log{
		Repo:     repoPath,
		Commits:  []search.Commit{},
		MaxCount: opts.MaxCount,
	}

	from, err := startingPoint(repo, sc.branch)
	if err != nil {
		var revErr *RevisionNotFoundError
		if !errors.As(err, &revErr) && errors.Is(err, plumbing.ErrReferenceNotFound) {
			return result, nil // Empty repository
		}
		return nil, err
	}

	iter, err := repo.Log(&gogit.LogOptions{
		From:  from,
		Order: gogit.LogOrderCommitterTime,
		Since: sc.since,
		Until: sc.until,
	})
	if err != nil {
		return nil, &LogError{Repo: repoPath, Cause: err}
	}
	defer iter.Close()

	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.NumParents() > 1 && !opts.IncludeMergeCommits {
			return nil
		}

		ok, err := matches(ctx, c, preds)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if opts.MaxCount > 0 && len(result.Commits) >= opts.MaxCount {
			result.Truncated = true
			return storer.ErrStop
		}
		result.Commits = append(result.Commits, toCommit(c))
		return nil
	})
	if err != nil {
		return nil, &LogError{Repo: repoPath, Cause: err}
	}

	return result, nil
}

func (s *Searcher) compile(criteria search.Criteria) (scope, predicates, error) {
	var sc scope
	var p predicates

	for _, e := range criteria.Entries() {
		v := e.Value
		switch e.Dimension {
		case search.DimensionBranch:
			sc.branch = v
		case search.DimensionSince:
			if v == "" || v == search.SinceUnset {
				continue
			}
			t, err := parseSince(v, s.now())
			if err != nil {
				return sc, p, err
			}
			sc.since = later(sc.since, t)
		case search.DimensionAfter:
			t, err := parseBound(v)
			if err != nil {
				return sc, p, err
			}
			sc.since = later(sc.since, t)
		case search.DimensionBefore:
			t, err := parseBound(v)
			if err != nil {
				return sc, p, err
			}
			sc.until = &t
		case search.DimensionMessage:
			p.message = strings.ToLower(v)
		case search.DimensionAuthor:
			p.author = strings.ToLower(v)
		case search.DimensionSha:
			p.sha = strings.ToLower(v)
		case search.DimensionFiles:
			p.files = v
		case search.DimensionChanges:
			p.changes = v
		case search.DimensionChangedLines:
			if v == "" {
				continue
			}
			re, err := regexp.Compile(v)
			if err != nil {
				re = regexp.MustCompile(regexp.QuoteMeta(v))
			}
			p.changedLines = re
		}
	}
	return sc, p, nil
}

func later(current *time.Time, t time.Time) *time.Time {
	if current == nil || t.After(*current) {
		return &t
	}
	return current
}

func startingPoint(repo *gogit.Repository, branch string) (plumbing.Hash, error) {
	if branch != "" {
		hash, err := repo.ResolveRevision(plumbing.Revision(branch))
		if err != nil {
			return plumbing.ZeroHash, &RevisionNotFoundError{Revision: branch, Cause: err}
		}
		return *hash, nil
	}

	head, err := repo.Head()
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return head.Hash(), nil
}

func matches(ctx context.Context, c *object.Commit, p predicates) (bool, error) {
	if p.empty() {
		return true, nil
	}

	if p.message != "" && strings.Contains(strings.ToLower(c.Message), p.message) {
		return true, nil
	}
	if p.author != "" &&
		(strings.Contains(strings.ToLower(c.Author.Name), p.author) ||
			strings.Contains(strings.ToLower(c.Author.Email), p.author)) {
		return true, nil
	}
	if p.sha != "" && strings.HasPrefix(c.Hash.String(), p.sha) {
		return true, nil
	}
	if !p.needsTree() {
		return false, nil
	}

	changes, err := treeChanges(ctx, c)
	if err != nil {
		return false, err
	}
	if p.files != "" && matchesFiles(changes, p.files) {
		return true, nil
	}
	if !p.needsPatch() {
		return false, nil
	}

	patch, err := changes.PatchContext(ctx)
	if err != nil {
		return false, &DiffError{Sha: c.Hash.String(), Cause: err}
	}
	for _, fp := range patch.FilePatches() {
		if p.changes != "" && pickaxe(fp, p.changes) {
			return true, nil
		}
		if p.changedLines != nil && grepLines(fp, p.changedLines) {
			return true, nil
		}
	}
	return false, nil
}

// treeChanges diffs c against its first parent, or against nothing for a root commit.
func treeChanges(ctx context.Context, c *object.Commit) (object.Changes, error) {
	tree, err := c.Tree()
	if err != nil {
		return nil, &DiffError{Sha: c.Hash.String(), Cause: err}
	}

	var parentTree *object.Tree
	if c.NumParents() > 0 {
		parent, err := c.Parent(0)
		if err != nil {
			return nil, &DiffError{Sha: c.Hash.String(), Cause: err}
		}
		if parentTree, err = parent.Tree(); err != nil {
			return nil, &DiffError{Sha: c.Hash.String(), Cause: err}
		}
	}

	changes, err := object.DiffTreeWithOptions(ctx, parentTree, tree, object.DefaultDiffTreeOptions)
	if err != nil {
		return nil, &DiffError{Sha: c.Hash.String(), Cause: err}
	}
	return changes, nil
}

func matchesFiles(changes object.Changes, pattern string) bool {
	matcher := gitignore.ParsePattern(pattern, nil)
	for _, ch := range changes {
		for _, name := range []string{ch.From.Name, ch.To.Name} {
			if name == "" {
				continue
			}
			if strings.Contains(name, pattern) ||
				matcher.Match(strings.Split(name, "/"), false) == gitignore.Exclude {
				return true
			}
		}
	}
	return false
}

// pickaxe reports whether the number of occurrences of term differs between
// the removed and added sides of a file patch.
func pickaxe(fp diff.FilePatch, term string) bool {
	var removed, added int
	for _, chunk := range fp.Chunks() {
		switch chunk.Type() {
		case diff.Add:
			added += strings.Count(chunk.Content(), term)
		case diff.Delete:
			removed += strings.Count(chunk.Content(), term)
		}
	}
	return added != removed
}

func grepLines(fp diff.FilePatch, re *regexp.Regexp) bool {
	for _, chunk := range fp.Chunks() {
		if chunk.Type() == diff.Equal {
			continue
		}
		for _, line := range strings.Split(chunk.Content(), "\n") {
			if re.MatchString(line) {
				return true
			}
		}
	}
	return false
}

func toCommit(c *object.Commit) search.Commit {
	summary, _, _ := strings.Cut(strings.TrimSpace(c.Message), "\n")
	return search.Commit{
		Sha:     c.Hash.String(),
		Author:  c.Author.Name,
		Email:   c.Author.Email,
		Date:    c.Author.When,
		Summary: summary,
		Message: c.Message,
		Parents: c.NumParents(),
	}
}
