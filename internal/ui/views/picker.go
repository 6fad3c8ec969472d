package views

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/commitsearch/internal/ui/models"
)

const pickerHelp = "↑/↓: Navigate  Enter: Select  Esc: Cancel"

// RenderPicker renders a list picker with the cursor row highlighted.
// Only a window of rows around the cursor is shown when Height is set.
func RenderPicker(s models.PickerState, st Styles) string {
	var lines []string
	if s.Title != "" {
		lines = append(lines, st.Title.Render(s.Title), "")
	}

	start, end := visibleRange(s)
	for i := start; i < end; i++ {
		lines = append(lines, renderItem(s.Items[i], i == s.Index, st))
	}
	if len(s.Items) == 0 {
		lines = append(lines, st.Muted.Render("  Nothing to choose from"))
	}

	lines = append(lines, "", st.Muted.Render(pickerHelp))
	return st.Box.Render(strings.Join(lines, "\n"))
}

func renderItem(item models.Item, selected bool, st Styles) string {
	label := item.Label
	if item.Detail != "" {
		label = fmt.Sprintf("%s  %s", label, st.Muted.Render(item.Detail))
	}

	switch {
	case !item.Selectable():
		return st.Muted.Render("  " + item.Label)
	case selected:
		return st.Selected.Render("▸ ") + st.Selected.Render(item.Label) + detailSuffix(item, st)
	case item.Kind == models.ItemContinuation:
		return "  " + st.Action.Render(item.Label) + detailSuffix(item, st)
	default:
		return "  " + label
	}
}

func detailSuffix(item models.Item, st Styles) string {
	if item.Detail == "" {
		return ""
	}
	return "  " + st.Muted.Render(item.Detail)
}

// visibleRange returns the window of items that fits the terminal height.
func visibleRange(s models.PickerState) (int, int) {
	n := len(s.Items)
	// Title, blank, blank, help and the box border take six rows.
	rows := s.Height - 6
	if s.Height <= 0 || rows >= n || rows <= 0 {
		return 0, n
	}

	start := s.Index - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > n {
		start = n - rows
	}
	return start, start + rows
}
