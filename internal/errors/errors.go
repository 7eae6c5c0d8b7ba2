// internal/errors/errors.go
package errors

import (
	"fmt"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	SyntaxError    ErrorType = "SyntaxError"
	RuntimeError   ErrorType = "RuntimeError"
	TypeError      ErrorType = "TypeError"
	ReferenceError ErrorType = "ReferenceError"
	ImportError    ErrorType = "ImportError"
	CompileError   ErrorType = "CompileError"
	EncodeError    ErrorType = "EncodeError"
)

// SourceLocation represents a location in source code
type SourceLocation struct {
	File   string
	Line   int
	Column int
}

// String renders the location as file:line:column
func (l SourceLocation) String() string {
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// QuillError represents an error with source location information
type QuillError struct {
	Type     ErrorType
	Message  string
	Location SourceLocation
	Source   string // The source line where error occurred
}

// Error implements the error interface
func (e *QuillError) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s: %s\n", e.Type, e.Message))

	if e.Location.Line > 0 || e.Location.File != "" {
		sb.WriteString(fmt.Sprintf("  at %s\n", e.Location))

		// Show source line if available
		if e.Source != "" {
			sb.WriteString(fmt.Sprintf("\n  %d | %s\n", e.Location.Line, e.Source))
			sb.WriteString(fmt.Sprintf("  %s", strings.Repeat(" ", len(fmt.Sprintf("%d | ", e.Location.Line)))))
			if e.Location.Column > 0 {
				sb.WriteString(strings.Repeat(" ", e.Location.Column-1))
			}
			sb.WriteString("^\n")
		}
	}

	return sb.String()
}

// WithSource adds source code context to the error
func (e *QuillError) WithSource(source string) *QuillError {
	e.Source = source
	return e
}

// NewSyntaxError creates a new syntax error
func NewSyntaxError(message string, file string, line, column int) *QuillError {
	return &QuillError{
		Type:    SyntaxError,
		Message: message,
		Location: SourceLocation{
			File:   file,
			Line:   line,
			Column: column,
		},
	}
}

// NewRuntimeError creates a new runtime error
func NewRuntimeError(message string, file string, line, column int) *QuillError {
	return &QuillError{
		Type:    RuntimeError,
		Message: message,
		Location: SourceLocation{
			File:   file,
			Line:   line,
			Column: column,
		},
	}
}

// ModuleNotFoundError is returned by module resolution when no module
// exists for an imported path. It carries the unresolved path and the
// position of the import statement so the evaluator can report it as a
// script error rather than aborting.
type ModuleNotFoundError struct {
	Path     string
	Position SourceLocation
}

// Error implements the error interface
func (e *ModuleNotFoundError) Error() string {
	return fmt.Sprintf("%s: module not found: %s\n  at %s\n", ImportError, e.Path, e.Position)
}

// NewModuleNotFound creates a module-not-found error for the given
// import path and position
func NewModuleNotFound(path string, pos SourceLocation) *ModuleNotFoundError {
	return &ModuleNotFoundError{
		Path:     path,
		Position: pos,
	}
}
