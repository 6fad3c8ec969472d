package models

import (
	cmdmodels "github.com/Cyclone1070/commitsearch/internal/command/models"
	"github.com/Cyclone1070/commitsearch/internal/search"
)

// TargetRequest asks for the repository a search runs against.
type TargetRequest struct {
	Hint    string // Explicit repository path, if the invocation carried one
	WorkDir string // Editor/working directory context
	Prompt  string // Label shown if the user has to choose
	GoBack  *cmdmodels.Continuation
}

// PickRequest seeds the interactive results picker.
// ShowAll and ShowInView are nil when they are not offered.
type PickRequest struct {
	Log        *search.Log
	Label      string
	Search     string
	Progress   Progress
	GoBack     *cmdmodels.Continuation
	ShowAll    *cmdmodels.Continuation
	ShowInView *cmdmodels.Continuation
}

// Selection is what the user picked. At most one field is set.
type Selection struct {
	Continuation *cmdmodels.Continuation
	Commit       *search.Commit
}

// ViewRequest hands a result log to the persistent view.
type ViewRequest struct {
	Search   string
	SearchBy search.Dimension
	Log      *search.Log
	Label    string
}

// ErrorKind classifies user-facing failure messages.
type ErrorKind string

const (
	ErrorKindSearch   ErrorKind = "search"
	ErrorKindDispatch ErrorKind = "dispatch"
)
