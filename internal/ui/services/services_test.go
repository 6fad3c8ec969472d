package services

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/Cyclone1070/commitsearch/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	out string
	err error
}

func (s stubRenderer) Render(string, int) (string, error) { return s.out, s.err }

func TestRenderMarkdown_Fallbacks(t *testing.T) {
	assert.Equal(t, "rendered", RenderMarkdown("# x", 80, stubRenderer{out: "rendered"}))
	assert.Equal(t, "# x", RenderMarkdown("# x", 80, stubRenderer{err: errors.New("bad style")}))
	assert.Equal(t, "# x", RenderMarkdown("# x", 80, nil))
}

func TestGlamourRenderer(t *testing.T) {
	out, err := NewGlamourRenderer("notty").Render("# Title\n\nsome **bold** text", 80)

	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "bold")
}

func TestEncodeLog(t *testing.T) {
	log := &search.Log{Repo: "/r", MaxCount: 5, Commits: []search.Commit{{Sha: "abc"}}}

	data, err := EncodeLog(log, "json")
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, float64(5), decoded["max_count"])

	data, err = EncodeLog(log, "yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "max_count: 5")
	assert.Contains(t, string(data), "sha: abc")
}

func TestEncodeLog_NilLog(t *testing.T) {
	data, err := EncodeLog(nil, "json")

	require.NoError(t, err)
	assert.Contains(t, string(data), `"commits": []`)
}

func TestEncodeLog_UnsupportedFormat(t *testing.T) {
	_, err := EncodeLog(&search.Log{}, "toml")

	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.True(t, unsupported.InvalidInput())
}
