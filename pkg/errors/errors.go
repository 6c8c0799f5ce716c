// Package errors provides the error types delivered on an observable's
// error channel. They support errors.Is so observers can tell an explicit
// source failure apart from a recovered operator panic.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Sentinel errors matched by the typed errors below.
var (
	// ErrSourceFailed indicates a source that terminated with an explicit error.
	ErrSourceFailed = errors.New("source failed")

	// ErrOperatorPanic indicates a projection or predicate that panicked.
	ErrOperatorPanic = errors.New("operator panic")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")
)

// SourceError is the error emitted by a failing source. Its message is
// exactly the message the source was built with.
type SourceError struct {
	Message string
}

// Error implements the error interface
func (e *SourceError) Error() string {
	return e.Message
}

// Is implements errors.Is support
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceFailed
}

// NewSourceError creates a new SourceError
func NewSourceError(message string) *SourceError {
	return &SourceError{Message: message}
}

// PanicError wraps a value recovered from a panicking projection or predicate.
type PanicError struct {
	Value any
}

// Error implements the error interface
func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(e.Value)
}

// Unwrap returns the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Is implements errors.Is support
func (e *PanicError) Is(target error) bool {
	return target == ErrOperatorPanic
}

// NewPanicError creates a new PanicError
func NewPanicError(value any) *PanicError {
	return &PanicError{Value: value}
}

// ValidationError represents invalid user input, such as an unknown CLI
// operator name.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// IsSourceFailed checks if an error came from a failing source
func IsSourceFailed(err error) bool {
	return errors.Is(err, ErrSourceFailed)
}

// IsOperatorPanic checks if an error is a recovered operator panic
func IsOperatorPanic(err error) bool {
	return errors.Is(err, ErrOperatorPanic)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
