package repsample

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrFormat     = errors.New("repsample: malformed input")
	ErrData       = errors.New("repsample: invalid data")
	ErrInfeasible = errors.New("repsample: infeasible constraint")
)

// FormatError reports malformed matrix or metadata text.
type FormatError struct {
	// Source is the file path (or a short description) of the offending input.
	Source string
	// Line is the 1-based physical line number, or 0 when not applicable.
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("repsample: %s:%d: %s", e.Source, e.Line, e.Msg)
	}
	return fmt.Sprintf("repsample: %s: %s", e.Source, e.Msg)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// DataError reports input that parses but violates numeric preconditions,
// such as NaN or negative distances.
type DataError struct {
	Source string
	Msg    string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("repsample: %s: %s", e.Source, e.Msg)
}

func (e *DataError) Is(target error) bool { return target == ErrData }

// InfeasibleConstraintError reports a priority group larger than the target.
type InfeasibleConstraintError struct {
	Priority int
	Target   int
}

func (e *InfeasibleConstraintError) Error() string {
	return fmt.Sprintf("repsample: priority samples alone (%d) exceed target %d", e.Priority, e.Target)
}

func (e *InfeasibleConstraintError) Is(target error) bool { return target == ErrInfeasible }
