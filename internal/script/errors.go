package script

import "errors"

// Errors for script state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("script: lua state is closed")

	// ErrExecutionTimeout is returned when a chunk runs past the execution timeout.
	ErrExecutionTimeout = errors.New("script: execution timeout")
)
