package config

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockFileSystem implements FileSystem for testing.
type MockFileSystem struct {
	HomeDir     string
	HomeDirErr  error
	Files       map[string][]byte
	ReadFileErr error
}

func (m *MockFileSystem) UserHomeDir() (string, error) {
	return m.HomeDir, m.HomeDirErr
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadFileErr != nil {
		return nil, m.ReadFileErr
	}
	data, ok := m.Files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

const testConfigPath = "/home/user/.config/commitsearch/config.json"

func loaderWith(configJSON string) *Loader {
	return NewLoaderWithFS(&MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			testConfigPath: []byte(configJSON),
		},
	})
}

// --- HAPPY PATH TESTS ---

func TestLoad_NoConfigFile_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Search.DefaultMaxCount)
	assert.False(t, cfg.Search.IncludeMergeCommits)
	assert.Equal(t, ViewFormatMarkdown, cfg.UI.ViewFormat)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_FullOverride_AllValuesReplaced(t *testing.T) {
	configJSON := `{
		"search": {"default_max_count": 25, "include_merge_commits": true, "repositories": ["/src/a", "/src/b"]},
		"ui": {"color_primary": "99", "glamour_style": "light", "view_format": "yaml", "spinner_interval_ms": 50},
		"log": {"level": "debug", "path": "/tmp/commitsearch.log"}
	}`

	cfg, err := loaderWith(configJSON).Load()

	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Search.DefaultMaxCount)
	assert.True(t, cfg.Search.IncludeMergeCommits)
	assert.Equal(t, []string{"/src/a", "/src/b"}, cfg.Search.Repositories)
	assert.Equal(t, "99", cfg.UI.ColorPrimary)
	assert.Equal(t, "light", cfg.UI.GlamourStyle)
	assert.Equal(t, ViewFormatYAML, cfg.UI.ViewFormat)
	assert.Equal(t, 50, cfg.UI.SpinnerIntervalMs)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/commitsearch.log", cfg.Log.Path)
}

func TestLoad_PartialOverride_MergesWithDefaults(t *testing.T) {
	cfg, err := loaderWith(`{"ui": {"color_primary": "255"}}`).Load()

	require.NoError(t, err)
	assert.Equal(t, "255", cfg.UI.ColorPrimary) // Overridden
	assert.Equal(t, "241", cfg.UI.ColorMuted)   // Default preserved
	assert.Equal(t, 100, cfg.Search.DefaultMaxCount)
}

func TestLoad_EmptyConfigFile_ReturnsDefaults(t *testing.T) {
	cfg, err := loaderWith(`{}`).Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

// --- UNHAPPY PATH TESTS ---

func TestLoad_MalformedJSON_ReturnsError(t *testing.T) {
	cfg, err := loaderWith(`{invalid json`).Load()

	assert.Nil(t, cfg)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, testConfigPath, parseErr.Path)
}

func TestLoad_PermissionDenied_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir:     "/home/user",
		ReadFileErr: os.ErrPermission,
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, os.ErrPermission))
	var readErr *ReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestLoad_HomeDirError_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDirErr: errors.New("homeless"),
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Search.DefaultMaxCount)
}

func TestLoad_WrongJSONType_ReturnsError(t *testing.T) {
	cfg, err := loaderWith(`["not", "an", "object"]`).Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidValues_FailValidation(t *testing.T) {
	cfg, err := loaderWith(`{"ui": {"view_format": "html"}}`).Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "view_format")
}

// --- EDGE CASE TESTS ---

func TestLoad_ExplicitZeroMaxCount_Overrides(t *testing.T) {
	// 0 is meaningful (unlimited) and must replace the default
	cfg, err := loaderWith(`{"search": {"default_max_count": 0}}`).Load()

	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Search.DefaultMaxCount)
}

func TestLoad_EmptyRepositoryArray_ReplacesDefault(t *testing.T) {
	cfg, err := loaderWith(`{"search": {"repositories": []}}`).Load()

	require.NoError(t, err)
	assert.Empty(t, cfg.Search.Repositories)
}

func TestLoader_Path(t *testing.T) {
	path, err := NewLoaderWithFS(&MockFileSystem{HomeDir: "/home/user"}).Path()

	require.NoError(t, err)
	assert.Equal(t, testConfigPath, path)
}

func TestLoad_ExpandsHomeInRepositories(t *testing.T) {
	cfg, err := loaderWith(`{"search": {"repositories": ["~/src/app", "/abs/lib", "~other/x"]}}`).Load()

	require.NoError(t, err)
	assert.Equal(t, []string{"/home/user/src/app", "/abs/lib", "~other/x"}, cfg.Search.Repositories)
}
