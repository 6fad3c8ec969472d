package command

import (
	"fmt"

	"github.com/Cyclone1070/commitsearch/internal/command/models"
)

// UnknownCommandError is returned when no handler is registered for a command.
type UnknownCommandError struct {
	Command models.ID
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command '%s'", e.Command)
}

func (e *UnknownCommandError) NotFound() bool { return true }

// DuplicateCommandError is returned when a command is registered twice.
type DuplicateCommandError struct {
	Command models.ID
}

func (e *DuplicateCommandError) Error() string {
	return fmt.Sprintf("command '%s' is already registered", e.Command)
}

// InvalidArgumentsError is returned when a payload cannot be decoded or validated.
type InvalidArgumentsError struct {
	Command models.ID
	Cause   error
}

func (e *InvalidArgumentsError) Error() string {
	return fmt.Sprintf("invalid arguments for '%s': %v", e.Command, e.Cause)
}

func (e *InvalidArgumentsError) Unwrap() error      { return e.Cause }
func (e *InvalidArgumentsError) InvalidInput() bool { return true }
