// Package domainerrors carries coded errors across layers. Services return
// these so the command surface can map a failure to a stable reason and exit
// status without inspecting message text.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a failure. Codes are stable identifiers; messages are not.
type Code string

const (
	// CodeValidation marks a field or cross-field constraint violation.
	CodeValidation Code = "validation_error"
	// CodeNotFound marks a missing person, address, employment or relationship.
	CodeNotFound Code = "not_found"
	// CodeConflict marks an id supplied where it must be absent, or an id collision.
	CodeConflict Code = "conflict"
	// CodeBadRequest marks a disallowed combination of request fields or filters.
	CodeBadRequest Code = "bad_request"
	// CodeInvalidInput marks a boundary value that could not be parsed.
	CodeInvalidInput Code = "invalid_input"
	// CodeInternal marks an unexpected failure in a lower layer.
	CodeInternal Code = "internal_error"
)

// Error is a coded domain error.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds a coded error with a human-readable message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Newf is New with fmt formatting.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether any error in err's chain is a domain error with code.
func HasCode(err error, code Code) bool {
	var de *Error
	for err != nil {
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// Is is shorthand for HasCode.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// CodeOf returns the outermost code in err's chain, or CodeInternal for
// errors that never passed through this package.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// Message returns the outermost domain message, falling back to err.Error().
func Message(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
