package numbuf

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHandle is returned when an operation receives something
	// other than a live array buffer (nil or already released).
	ErrInvalidHandle = errors.New("invalid array handle")
)

// ErrIndexOutOfRange indicates an index outside the valid [1, size] range.
type ErrIndexOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d (valid range [1, %d])", e.Index, e.Size)
}

// ErrInvalidArgument indicates a value of the wrong runtime shape passed
// to New, Dump or DumpTo.
type ErrInvalidArgument struct {
	Expected string
	Value    any
}

func (e *ErrInvalidArgument) Error() string {
	return fmt.Sprintf("invalid argument: expected %s, got %T", e.Expected, e.Value)
}
