package core

import (
	"errors"
	"fmt"
)

// ErrInvalidRecord is wrapped by every ValidationError.
var ErrInvalidRecord = errors.New("invalid record")

// NotFoundError is returned when an input file does not exist.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file %s not found: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ParseError is returned when an input file is not well-formed JSON.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("file %s contains invalid JSON: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError is returned when a record lacks a required key or holds a
// value of the wrong type. Index is the zero-based position of the record in
// the document, or -1 when the offending element cannot be determined.
type ValidationError struct {
	Path   string
	Index  int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("file %s: field %s %s", e.Path, e.Field, e.Reason)
	}
	return fmt.Sprintf("file %s: record %d: field %s %s", e.Path, e.Index, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidRecord }

// WriteError is returned when the report destination cannot be opened or written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("unable to write to file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
