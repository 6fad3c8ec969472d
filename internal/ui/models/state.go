package models

import (
	cmdmodels "github.com/Cyclone1070/commitsearch/internal/command/models"
	"github.com/Cyclone1070/commitsearch/internal/search"
	"github.com/charmbracelet/bubbles/textinput"
)

// ItemKind distinguishes the rows of a picker.
type ItemKind int

const (
	ItemCommit ItemKind = iota
	ItemContinuation
	ItemOption
	ItemInfo // Not selectable
)

// Item is one row of a picker.
type Item struct {
	Kind   ItemKind
	Label  string
	Detail string

	Commit       *search.Commit
	Continuation *cmdmodels.Continuation
	Option       string
}

// Selectable reports whether the cursor may stop on the item.
func (i Item) Selectable() bool {
	return i.Kind != ItemInfo
}

// PickerState holds the state of a list picker.
type PickerState struct {
	Title string
	Items []Item
	Index int

	Width  int
	Height int

	// Chosen is the selected index once the user pressed enter, -1 otherwise.
	Chosen   int
	Quitting bool
}

// InputState holds the state of the search text prompt.
type InputState struct {
	Title     string
	Input     textinput.Model
	Submitted bool
	Quitting  bool
}
