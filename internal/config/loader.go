package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "commitsearch"
	// ConfigFile is the config file name
	ConfigFile = "config.json"
)

// FileSystem abstracts file operations for testability
type FileSystem interface {
	UserHomeDir() (string, error)
	ReadFile(path string) ([]byte, error)
}

// ConfigFileReader implements FileSystem using the real OS for config loading
type ConfigFileReader struct{}

func (ConfigFileReader) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (ConfigFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Loader reads the commitsearch dotfile through an injected FileSystem.
type Loader struct {
	fs FileSystem
}

// NewLoader creates a Loader backed by the real filesystem.
func NewLoader() *Loader {
	return &Loader{fs: ConfigFileReader{}}
}

// NewLoaderWithFS creates a Loader over fs.
func NewLoaderWithFS(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// Load returns DefaultConfig overlaid with ~/.config/commitsearch/config.json.
//
// Keys present in the file replace their default even when zero, so
// "default_max_count": 0 turns the result cap off and "repositories": []
// clears the candidate list. A missing file or home directory yields the
// defaults. Read, parse and validation failures are returned; callers fall
// back to DefaultConfig themselves.
//
// Entries in search.repositories starting with "~/" are expanded against
// the home directory.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	homeDir, err := l.fs.UserHomeDir()
	if err != nil {
		return cfg, nil
	}
	configPath := configPathIn(homeDir)

	data, err := l.fs.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, &ReadError{Path: configPath, Cause: err}
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, &ParseError{Path: configPath, Cause: err}
	}
	cfg.Search.Repositories = expandHome(cfg.Search.Repositories, homeDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the dotfile location for the current user.
func (l *Loader) Path() (string, error) {
	homeDir, err := l.fs.UserHomeDir()
	if err != nil {
		return "", err
	}
	return configPathIn(homeDir), nil
}

func configPathIn(homeDir string) string {
	return filepath.Join(homeDir, ".config", ConfigDir, ConfigFile)
}

func expandHome(paths []string, homeDir string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if rest, ok := strings.CutPrefix(p, "~/"); ok {
			p = filepath.Join(homeDir, rest)
		}
		out = append(out, p)
	}
	return out
}
