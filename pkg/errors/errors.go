package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrMissingInput is matched by every MissingInputError through errors.Is.
var ErrMissingInput = stdErrors.New("missing required input")

// ParseError represents a dataset or style sheet decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration and dataset validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// MissingInputError reports a widget prop that the caller was required to
// supply but did not. Widgets substitute a default and keep rendering.
type MissingInputError struct {
	Component string
	Field     string
	Tag       string
}

// NewMissingInputError constructs a MissingInputError for the given widget prop.
func NewMissingInputError(component, field, tag string) error {
	return &MissingInputError{Component: component, Field: field, Tag: tag}
}

func (e *MissingInputError) Error() string {
	if e == nil {
		return ""
	}
	if e.Tag != "" && e.Tag != "required" {
		return fmt.Sprintf("%s: invalid input %s (%s)", e.Component, e.Field, e.Tag)
	}
	return fmt.Sprintf("%s: missing required input %s", e.Component, e.Field)
}

// Is reports whether target is ErrMissingInput.
func (e *MissingInputError) Is(target error) bool {
	return target == ErrMissingInput
}
