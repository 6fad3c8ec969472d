package git

import (
	"context"
	"errors"
	"path/filepath"
	"slices"

	orchmodels "github.com/Cyclone1070/commitsearch/internal/orchestrator/models"
	gogit "github.com/go-git/go-git/v5"
)

// Chooser asks the user to pick one of several options.
// This is a consumer-defined interface; the ui package provides the real one.
type Chooser interface {
	Choose(ctx context.Context, prompt string, options []string) (string, bool, error)
}

// TargetResolver finds the repository a search should run against.
type TargetResolver struct {
	chooser    Chooser
	candidates []string
}

// NewTargetResolver creates a resolver. Candidates are consulted when neither the
// hint nor the working directory is inside a repository.
func NewTargetResolver(chooser Chooser, candidates []string) *TargetResolver {
	return &TargetResolver{
		chooser:    chooser,
		candidates: slices.Clone(candidates),
	}
}

// Resolve returns the repository root for req.
//
// An explicit hint must point into a repository. Otherwise the working directory
// is tried, then the configured candidates; more than one usable candidate is
// offered to the chooser. No repository is not an error.
func (r *TargetResolver) Resolve(ctx context.Context, req orchmodels.TargetRequest) (string, bool, error) {
	if req.Hint != "" {
		root, err := OpenRoot(req.Hint)
		if err != nil {
			return "", false, err
		}
		return root, true, nil
	}

	if req.WorkDir != "" {
		if root, err := OpenRoot(req.WorkDir); err == nil {
			return root, true, nil
		}
	}

	var roots []string
	for _, candidate := range r.candidates {
		root, err := OpenRoot(candidate)
		if err != nil {
			continue // Stale config entries are skipped
		}
		if !slices.Contains(roots, root) {
			roots = append(roots, root)
		}
	}

	switch len(roots) {
	case 0:
		return "", false, nil
	case 1:
		return roots[0], true, nil
	}

	if r.chooser == nil {
		return "", false, nil
	}
	return r.chooser.Choose(ctx, req.Prompt, roots)
}

// OpenRoot returns the top-level directory of the repository containing path.
// Bare repositories resolve to their own directory.
func OpenRoot(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &RepositoryNotFoundError{Path: path, Cause: err}
	}

	repo, err := openRepository(abs)
	if err != nil {
		return "", &RepositoryNotFoundError{Path: abs, Cause: err}
	}

	wt, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, gogit.ErrIsBareRepository) {
			return abs, nil
		}
		return "", &RepositoryNotFoundError{Path: abs, Cause: err}
	}
	return wt.Filesystem.Root(), nil
}

// openRepository opens the repository containing path. Detection walks up to
// the nearest .git entry; bare repositories have none and are opened in place.
func openRepository(path string) (*gogit.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		if bare, bareErr := gogit.PlainOpen(path); bareErr == nil {
			return bare, nil
		}
	}
	return repo, err
}
