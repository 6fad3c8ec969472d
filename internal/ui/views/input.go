package views

import (
	"strings"

	"github.com/Cyclone1070/commitsearch/internal/search"
	"github.com/Cyclone1070/commitsearch/internal/ui/models"
)

// RenderInput renders the search text prompt with the prefix symbol legend.
func RenderInput(s models.InputState, st Styles) string {
	lines := []string{
		st.Title.Render(s.Title),
		s.Input.View(),
		"",
		st.Muted.Render(SymbolLegend()),
		st.Muted.Render("Enter: Search  Esc: Cancel"),
	}
	return st.Box.Render(strings.Join(lines, "\n"))
}

// SymbolLegend lists the prefix symbols, e.g. "@ author  ~ changedLines".
func SymbolLegend() string {
	symbols := search.Symbols()
	parts := make([]string, 0, len(symbols))
	for _, s := range symbols {
		d, _ := search.SymbolToDimension(s)
		parts = append(parts, string(s)+" "+string(d))
	}
	return strings.Join(parts, "  ")
}
