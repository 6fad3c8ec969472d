package search

import "fmt"

// UnknownDimensionError is returned when a searchBy value is not a known dimension.
type UnknownDimensionError struct {
	Value string
}

func (e *UnknownDimensionError) Error() string {
	return fmt.Sprintf("unknown search dimension: %q", e.Value)
}

func (e *UnknownDimensionError) InvalidInput() bool { return true }

// NegativeMaxCountError is returned when maxCount is negative.
type NegativeMaxCountError struct {
	Value int
}

func (e *NegativeMaxCountError) Error() string {
	return fmt.Sprintf("maxCount cannot be negative: %d", e.Value)
}

func (e *NegativeMaxCountError) InvalidInput() bool { return true }
