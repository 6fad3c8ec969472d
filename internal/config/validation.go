package config

import (
	"fmt"
	"slices"

	"go.uber.org/zap/zapcore"
)

const (
	ViewFormatMarkdown = "markdown"
	ViewFormatJSON     = "json"
	ViewFormatYAML     = "yaml"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	if c.Search.DefaultMaxCount < 0 {
		errs = append(errs, "search.default_max_count must be >= 0")
	}
	for i, repo := range c.Search.Repositories {
		if repo == "" {
			errs = append(errs, fmt.Sprintf("search.repositories[%d] must not be empty", i))
		}
	}

	if c.UI.SpinnerIntervalMs < 1 {
		errs = append(errs, "ui.spinner_interval_ms must be >= 1")
	}
	if !slices.Contains([]string{ViewFormatMarkdown, ViewFormatJSON, ViewFormatYAML}, c.UI.ViewFormat) {
		errs = append(errs, fmt.Sprintf("ui.view_format must be one of markdown, json, yaml (got %q)", c.UI.ViewFormat))
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("log.level is invalid: %v", err))
	}
	if c.Log.Path == "" {
		errs = append(errs, "log.path must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
