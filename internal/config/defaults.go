package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Search SearchConfig `json:"search"`
	UI     UIConfig     `json:"ui"`
	Log    LogConfig    `json:"log"`
}

type SearchConfig struct {
	DefaultMaxCount     int  `json:"default_max_count"`     // Default: 100 (0 = unlimited)
	IncludeMergeCommits bool `json:"include_merge_commits"` // Default: false

	// Candidate repositories offered when the working directory is not inside one
	Repositories []string `json:"repositories"`
}

type UIConfig struct {
	ColorPrimary string `json:"color_primary"` // Default: "205"
	ColorMuted   string `json:"color_muted"`   // Default: "241"
	ColorError   string `json:"color_error"`   // Default: "196"

	GlamourStyle      string `json:"glamour_style"`       // Default: "dark"
	ViewFormat        string `json:"view_format"`         // Default: "markdown" (markdown, json, yaml)
	SpinnerIntervalMs int    `json:"spinner_interval_ms"` // Default: 100
}

type LogConfig struct {
	Level string `json:"level"` // Default: "warn"
	Path  string `json:"path"`  // Default: "stderr"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			DefaultMaxCount:     100,
			IncludeMergeCommits: false,
			Repositories:        []string{},
		},
		UI: UIConfig{
			ColorPrimary:      "205",
			ColorMuted:        "241",
			ColorError:        "196",
			GlamourStyle:      "dark",
			ViewFormat:        ViewFormatMarkdown,
			SpinnerIntervalMs: 100,
		},
		Log: LogConfig{
			Level: "warn",
			Path:  "stderr",
		},
	}
}
