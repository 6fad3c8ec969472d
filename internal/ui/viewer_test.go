package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/Cyclone1070/commitsearch/internal/config"
	orchmodels "github.com/Cyclone1070/commitsearch/internal/orchestrator/models"
	"github.com/Cyclone1070/commitsearch/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func viewRequest() orchmodels.ViewRequest {
	return orchmodels.ViewRequest{
		Search:   "@jane",
		SearchBy: search.DimensionAuthor,
		Log:      testLog(),
		Label:    "Commits by jane",
	}
}

func TestViewer_Markdown(t *testing.T) {
	var out bytes.Buffer
	var rendered string
	renderer := &MockMarkdownRenderer{RenderFunc: func(content string, width int) (string, error) {
		rendered = content
		assert.Equal(t, defaultViewWidth, width)
		return "RENDERED", nil
	}}

	err := NewViewer(&out, config.ViewFormatMarkdown, renderer).Show(context.Background(), viewRequest())

	require.NoError(t, err)
	assert.Equal(t, "RENDERED\n", out.String())
	assert.Contains(t, rendered, "# Commits by jane")
	assert.Contains(t, rendered, "1111111")
}

func TestViewer_JSON(t *testing.T) {
	var out bytes.Buffer

	err := NewViewer(&out, config.ViewFormatJSON, nil).Show(context.Background(), viewRequest())

	require.NoError(t, err)
	var got search.Log
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Len(t, got.Commits, 2)
	assert.Equal(t, "/repo", got.Repo)
}

func TestViewer_YAML(t *testing.T) {
	var out bytes.Buffer

	err := NewViewer(&out, config.ViewFormatYAML, nil).Show(context.Background(), viewRequest())

	require.NoError(t, err)
	var got search.Log
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 2, got.MaxCount)
	assert.Equal(t, "second", got.Commits[1].Summary)
}

func TestViewer_UnknownFormat(t *testing.T) {
	err := NewViewer(&bytes.Buffer{}, "xml", nil).Show(context.Background(), viewRequest())

	assert.Error(t, err)
}

func TestViewer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewViewer(&bytes.Buffer{}, config.ViewFormatJSON, nil).Show(ctx, viewRequest())

	assert.ErrorIs(t, err, context.Canceled)
}
