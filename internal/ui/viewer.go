package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/Cyclone1070/commitsearch/internal/config"
	orchmodels "github.com/Cyclone1070/commitsearch/internal/orchestrator/models"
	"github.com/Cyclone1070/commitsearch/internal/ui/services"
	"github.com/Cyclone1070/commitsearch/internal/ui/views"
)

const defaultViewWidth = 100

// Viewer writes result logs to out as rendered markdown, JSON or YAML.
type Viewer struct {
	out      io.Writer
	format   string
	width    int
	renderer services.MarkdownRenderer
}

// NewViewer creates a Viewer for one of the config.ViewFormat* formats.
func NewViewer(out io.Writer, format string, renderer services.MarkdownRenderer) *Viewer {
	return &Viewer{
		out:      out,
		format:   format,
		width:    defaultViewWidth,
		renderer: renderer,
	}
}

// Show implements orchestrator.Viewer
func (v *Viewer) Show(ctx context.Context, req orchmodels.ViewRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if v.format == config.ViewFormatMarkdown {
		md := views.FormatLogMarkdown(req.Search, req.SearchBy, req.Log, req.Label)
		_, err := fmt.Fprintln(v.out, services.RenderMarkdown(md, v.width, v.renderer))
		return err
	}

	data, err := services.EncodeLog(req.Log, v.format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(v.out, string(data))
	return err
}
