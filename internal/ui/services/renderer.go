package services

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown for the terminal.
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer renders markdown with a glamour standard style.
type GlamourRenderer struct {
	style string
}

// NewGlamourRenderer creates a renderer for the named glamour style ("dark", "light", "notty", ...).
func NewGlamourRenderer(style string) *GlamourRenderer {
	return &GlamourRenderer{style: style}
}

// Render implements MarkdownRenderer
func (g *GlamourRenderer) Render(content string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(g.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(content)
}

// RenderMarkdown renders content, falling back to the raw text on failure.
func RenderMarkdown(content string, width int, renderer MarkdownRenderer) string {
	if renderer == nil {
		return content
	}
	out, err := renderer.Render(content, width)
	if err != nil {
		return content
	}
	return out
}
