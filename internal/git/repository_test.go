package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	orchmodels "github.com/Cyclone1070/commitsearch/internal/orchestrator/models"
	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockChooser records the options it was offered.
type MockChooser struct {
	ChooseFunc func(ctx context.Context, prompt string, options []string) (string, bool, error)
	Offered    []string
}

func (m *MockChooser) Choose(ctx context.Context, prompt string, options []string) (string, bool, error) {
	m.Offered = options
	if m.ChooseFunc != nil {
		return m.ChooseFunc(ctx, prompt, options)
	}
	return "", false, nil
}

func initRepo(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	_, err = gogit.PlainInit(dir, false)
	require.NoError(t, err)
	return dir
}

func TestOpenRoot(t *testing.T) {
	root := initRepo(t)
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := OpenRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, root, got)

	bare, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	_, err = gogit.PlainInit(bare, true)
	require.NoError(t, err)
	got, err = OpenRoot(bare)
	require.NoError(t, err)
	assert.Equal(t, bare, got)

	_, err = OpenRoot(t.TempDir())
	var notFound *RepositoryNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestTargetResolver_Resolve(t *testing.T) {
	repoA := initRepo(t)
	repoB := initRepo(t)
	plain := t.TempDir()
	ctx := context.Background()

	t.Run("hint wins", func(t *testing.T) {
		r := NewTargetResolver(nil, []string{repoB})
		got, ok, err := r.Resolve(ctx, orchmodels.TargetRequest{Hint: repoA, WorkDir: repoB})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, repoA, got)
	})

	t.Run("invalid hint is an error", func(t *testing.T) {
		r := NewTargetResolver(nil, []string{repoB})
		_, ok, err := r.Resolve(ctx, orchmodels.TargetRequest{Hint: plain})
		assert.False(t, ok)
		var notFound *RepositoryNotFoundError
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("work dir", func(t *testing.T) {
		r := NewTargetResolver(nil, nil)
		got, ok, err := r.Resolve(ctx, orchmodels.TargetRequest{WorkDir: repoB})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, repoB, got)
	})

	t.Run("no candidates is absent", func(t *testing.T) {
		r := NewTargetResolver(&MockChooser{}, []string{plain})
		got, ok, err := r.Resolve(ctx, orchmodels.TargetRequest{WorkDir: plain})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, got)
	})

	t.Run("single candidate used without asking", func(t *testing.T) {
		chooser := &MockChooser{}
		r := NewTargetResolver(chooser, []string{plain, repoA, repoA})
		got, ok, err := r.Resolve(ctx, orchmodels.TargetRequest{WorkDir: plain})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, repoA, got)
		assert.Nil(t, chooser.Offered)
	})

	t.Run("several candidates go to the chooser", func(t *testing.T) {
		chooser := &MockChooser{
			ChooseFunc: func(ctx context.Context, prompt string, options []string) (string, bool, error) {
				assert.Equal(t, "Choose a repository", prompt)
				return options[1], true, nil
			},
		}
		r := NewTargetResolver(chooser, []string{repoA, repoB})
		got, ok, err := r.Resolve(ctx, orchmodels.TargetRequest{Prompt: "Choose a repository"})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, repoB, got)
		assert.Equal(t, []string{repoA, repoB}, chooser.Offered)
	})

	t.Run("chooser dismissal is absent", func(t *testing.T) {
		r := NewTargetResolver(&MockChooser{}, []string{repoA, repoB})
		_, ok, err := r.Resolve(ctx, orchmodels.TargetRequest{})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("chooser error propagates", func(t *testing.T) {
		boom := errors.New("boom")
		chooser := &MockChooser{
			ChooseFunc: func(context.Context, string, []string) (string, bool, error) { return "", false, boom },
		}
		r := NewTargetResolver(chooser, []string{repoA, repoB})
		_, _, err := r.Resolve(ctx, orchmodels.TargetRequest{})
		assert.ErrorIs(t, err, boom)
	})
}
