package command

import "github.com/Cyclone1070/commitsearch/internal/search"

// Status is the terminal state of a command run.
type Status int

const (
	// StatusCancelled means the user backed out. It is never reported as an error.
	StatusCancelled Status = iota
	StatusCompleted
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusCancelled:
		return "cancelled"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is what a command run returns to its caller.
type Outcome struct {
	Status Status
	// Selected is the commit the user picked, if any. Picking a commit triggers no further action.
	Selected *search.Commit
	// Err is the underlying failure when Status is StatusFailed.
	Err error
}

// Cancelled returns the no-op outcome.
func Cancelled() Outcome {
	return Outcome{Status: StatusCancelled}
}

// Completed returns a successful outcome.
func Completed() Outcome {
	return Outcome{Status: StatusCompleted}
}

// Failed returns a failure outcome wrapping err.
func Failed(err error) Outcome {
	return Outcome{Status: StatusFailed, Err: err}
}
