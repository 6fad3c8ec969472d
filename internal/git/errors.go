package git

import "fmt"

// RepositoryNotFoundError is returned when a path is not inside a git repository.
type RepositoryNotFoundError struct {
	Path  string
	Cause error
}

func (e *RepositoryNotFoundError) Error() string {
	return fmt.Sprintf("no git repository at %s: %v", e.Path, e.Cause)
}
func (e *RepositoryNotFoundError) Unwrap() error  { return e.Cause }
func (e *RepositoryNotFoundError) NotFound() bool { return true }

// RevisionNotFoundError is returned when a branch filter does not resolve.
type RevisionNotFoundError struct {
	Revision string
	Cause    error
}

func (e *RevisionNotFoundError) Error() string {
	return fmt.Sprintf("revision %q not found: %v", e.Revision, e.Cause)
}
func (e *RevisionNotFoundError) Unwrap() error  { return e.Cause }
func (e *RevisionNotFoundError) NotFound() bool { return true }

// InvalidDateError is returned when a date predicate cannot be parsed.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date: %q", e.Value)
}

func (e *InvalidDateError) InvalidInput() bool { return true }

// LogError is returned when walking the commit history fails.
type LogError struct {
	Repo  string
	Cause error
}

func (e *LogError) Error() string {
	return fmt.Sprintf("failed to read log of %s: %v", e.Repo, e.Cause)
}
func (e *LogError) Unwrap() error { return e.Cause }
func (e *LogError) IOError() bool { return true }

// DiffError is returned when a commit diff cannot be computed.
type DiffError struct {
	Sha   string
	Cause error
}

func (e *DiffError) Error() string {
	return fmt.Sprintf("failed to diff commit %s: %v", e.Sha, e.Cause)
}
func (e *DiffError) Unwrap() error { return e.Cause }
func (e *DiffError) IOError() bool { return true }
