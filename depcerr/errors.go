package depcerr

import (
	"fmt"
	"strings"
)

// ErrorType defines the category of the error.
type ErrorType string

const (
	TypeSyntax      ErrorType = "SyntaxError"
	TypeUnbound     ErrorType = "UnboundVariable"
	TypeUnification ErrorType = "UnificationFailure"
	TypeInvariant   ErrorType = "InvariantViolation"
)

// DepcError is the interface for all depc-related errors.
type DepcError interface {
	error
	Type() ErrorType
}

// SyntaxError represents an error during the parsing phase.
type SyntaxError struct {
	Msg    string
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d:%d %s", e.Line, e.Column, e.Msg)
}

func (e *SyntaxError) Type() ErrorType {
	return TypeSyntax
}

// UnboundError reports a name reference that resolved against a context
// lacking that name. Its message is part of the checker's output contract.
type UnboundError struct {
	Name string
}

func (e *UnboundError) Error() string {
	return fmt.Sprintf("Unbound variable: %s", e.Name)
}

func (e *UnboundError) Type() ErrorType {
	return TypeUnbound
}

// UnificationError reports that application could not reconcile the callee's
// classifier with the required arrow classifier. Left and Right are the
// renderings of the two classifiers.
type UnificationError struct {
	Left  string
	Right string
}

func (e *UnificationError) Error() string {
	return fmt.Sprintf("Failed unification of function types: '%s' and '%s'", e.Left, e.Right)
}

func (e *UnificationError) Type() ErrorType {
	return TypeUnification
}

// InvariantError signals corrupted trusted input rather than a user type
// error: a declaration's annotated classifier disagrees with the inferred
// one. Callers treat it as fatal, never as a recoverable inference error.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violation: %s", e.Msg)
}

func (e *InvariantError) Type() ErrorType {
	return TypeInvariant
}

// MultiError collects multiple depc errors.
type MultiError struct {
	Errors []error
}

func (m *MultiError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d error(s) occurred:\n", len(m.Errors)))
	for _, err := range m.Errors {
		sb.WriteString(fmt.Sprintf("- %v\n", err))
	}
	return sb.String()
}

func (m *MultiError) Type() ErrorType {
	if len(m.Errors) > 0 {
		if de, ok := m.Errors[0].(DepcError); ok {
			return de.Type()
		}
	}
	return "MultiError"
}

// NewSyntaxError creates a new SyntaxError.
func NewSyntaxError(line, column int, msg string) *SyntaxError {
	return &SyntaxError{
		Msg:    msg,
		Line:   line,
		Column: column,
	}
}

// NewUnboundError creates a new UnboundError for the given name.
func NewUnboundError(name string) *UnboundError {
	return &UnboundError{Name: name}
}

// NewUnificationError creates a new UnificationError from two renderings.
func NewUnificationError(left, right string) *UnificationError {
	return &UnificationError{Left: left, Right: right}
}

// NewInvariantError creates a new InvariantError.
func NewInvariantError(format string, args ...any) *InvariantError {
	return &InvariantError{Msg: fmt.Sprintf(format, args...)}
}
