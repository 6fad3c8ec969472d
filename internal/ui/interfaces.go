package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// ProgramRunner runs a Bubble Tea model until it quits and returns the final model.
// Tests substitute a runner that feeds messages to the model directly.
type ProgramRunner func(ctx context.Context, model tea.Model) (tea.Model, error)

// Suspender is implemented by progress scopes that can stop drawing while a
// full-screen prompt owns the terminal. Suspending does not cancel the scope.
type Suspender interface {
	Suspend()
}
