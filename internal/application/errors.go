package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrMalformedDocument = errors.New("malformed GPX document")
	ErrInvalidPalette    = errors.New("invalid palette")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PaletteError represents a rejected keyword table
type PaletteError struct {
	Reason string
}

func (e *PaletteError) Error() string {
	return fmt.Sprintf("invalid palette: %s", e.Reason)
}

func (e *PaletteError) Is(target error) bool {
	return target == ErrInvalidPalette
}

// ParseError represents a document parse failure. It is recoverable:
// no output file is produced and the reason is carried to the caller.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedDocument
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// WriteError represents a failure writing the output file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
