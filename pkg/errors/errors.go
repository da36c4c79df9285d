package errors

import (
	"fmt"
)

// ParseError represents a JSON or YAML parsing failure with optional position metadata.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	return NewParseErrorAt(path, line, 0, err)
}

// NewParseErrorAt constructs a ParseError that also records the column.
func NewParseErrorAt(path string, line, column int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Column: column, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("parse error: %s:%d:%d: %s", e.Path, e.Line, e.Column, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	default:
		return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
	}
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration and props validation issues.
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

// MountError reports that the interface could not be attached to its output target.
type MountError struct {
	Target string
	Err    error
}

// NewMountError constructs a MountError for the given target.
func NewMountError(target string, err error) error {
	return &MountError{Target: target, Err: err}
}

func (e *MountError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("could not find %s to mount to: %v", e.Target, e.Err)
	}
	return fmt.Sprintf("could not find %s to mount to", e.Target)
}

// Unwrap exposes the root error.
func (e *MountError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError indicates a component could not be rendered with the supplied props.
type RenderError struct {
	Component string
	Message   string
	Err       error
}

// NewRenderError constructs a RenderError for the given component.
func NewRenderError(component string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &RenderError{Component: component, Message: message, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Component != "" {
		return fmt.Sprintf("render error [%s]: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
