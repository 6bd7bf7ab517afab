package objfile

import (
	"errors"
	"fmt"
)

// Sentinel errors for objfile package.
var (
	// ErrTooFewFields is returned when an element lacks required values.
	ErrTooFewFields = errors.New("objfile: too few fields")

	// ErrIndexOutOfRange is returned when a face references a missing
	// position, texture coordinate or normal.
	ErrIndexOutOfRange = errors.New("objfile: index out of range")
)

// ParseError locates a failure within the input.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("objfile: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
