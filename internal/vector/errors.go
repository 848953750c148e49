package vector

import (
	"errors"
	"fmt"
)

// Errors returned by array operations.
var (
	// ErrIndexOutOfRange indicates an index outside the live range of the array.
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrEmpty indicates a query that needs at least one element.
	ErrEmpty = errors.New("vector: array is empty")
)

// IndexError describes a rejected index.
type IndexError struct {
	Op    string
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vector: %s: index %d out of range [0, %d)", e.Op, e.Index, e.Size)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

func indexError(op string, index, size int) error {
	return &IndexError{Op: op, Index: index, Size: size}
}

func emptyError(op string) error {
	return fmt.Errorf("%s: %w", op, ErrEmpty)
}
