// Package errors provides standardized error handling for the flux-mini
// client. It implements structured error types with proper wrapping and
// classification following Go 1.20+ error handling best practices.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrInvalidRequest covers malformed user input detected before any
	// RPC: an empty command, a missing '=' in --setattr, an unknown
	// submission flag, a malformed duration.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrTransport covers failures reaching the resource manager or
	// service-side rejections of a submission. Never retried.
	ErrTransport = errors.New("transport failure")

	// ErrExecFailed covers a failed process-image replacement: the attach
	// program could not be located or executed.
	ErrExecFailed = errors.New("exec failed")
)

// RequestError represents malformed user input on a specific input field
type RequestError struct {
	Field string
	Err   error
}

func (e *RequestError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return e.Err.Error()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func (e *RequestError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// TransportError represents a failure talking to the resource manager
type TransportError struct {
	Address   string
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Operation, e.Address, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// ExecError represents a failed replacement of the process image
type ExecError struct {
	Program string
	Err     error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("exec %s: %v", e.Program, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

func (e *ExecError) Is(target error) bool {
	return target == ErrExecFailed
}

// NewInvalidRequest creates a RequestError with a formatted message
func NewInvalidRequest(format string, args ...interface{}) error {
	return &RequestError{Err: fmt.Errorf(format, args...)}
}

// NewInvalidRequestField creates a RequestError attributed to an input field
func NewInvalidRequestField(field, format string, args ...interface{}) error {
	return &RequestError{Field: field, Err: fmt.Errorf(format, args...)}
}

// NewTransportError wraps a failed resource-manager operation
func NewTransportError(operation, address string, err error) error {
	return &TransportError{Address: address, Operation: operation, Err: err}
}

// NewExecError wraps a failed process replacement
func NewExecError(program string, err error) error {
	return &ExecError{Program: program, Err: err}
}

// IsInvalidRequest checks if the error is malformed user input
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsTransport checks if the error came from the resource-manager transport
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsExecFailed checks if the error came from a failed process replacement
func IsExecFailed(err error) bool {
	return errors.Is(err, ErrExecFailed)
}
