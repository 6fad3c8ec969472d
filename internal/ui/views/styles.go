package views

import (
	"github.com/Cyclone1070/commitsearch/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// Styles is the palette every view renders with.
type Styles struct {
	Title    lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Action   lipgloss.Style
	Error    lipgloss.Style
	Progress lipgloss.Style
	Box      lipgloss.Style
}

// NewStyles builds the palette from the configured colors.
func NewStyles(cfg config.UIConfig) Styles {
	primary := lipgloss.Color(cfg.ColorPrimary)
	muted := lipgloss.Color(cfg.ColorMuted)
	errColor := lipgloss.Color(cfg.ColorError)

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Selected: lipgloss.NewStyle().Foreground(primary).Bold(true),
		Normal:   lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Action:   lipgloss.NewStyle().Italic(true),
		Error:    lipgloss.NewStyle().Foreground(errColor).Bold(true),
		Progress: lipgloss.NewStyle().Foreground(primary),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),
	}
}

// DefaultStyles uses the default configuration colors.
func DefaultStyles() Styles {
	return NewStyles(config.DefaultConfig().UI)
}
