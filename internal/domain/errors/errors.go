// Package errors provides standardized error types for the domain layer,
// enabling consistent categorization at the request boundary.
package errors

import (
	"errors"
	"fmt"
)

// Standard error categories
var (
	// ErrInvalidInput indicates invalid input was provided
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal indicates an internal server error
	ErrInternal = errors.New("internal error")

	// ErrServiceUnavailable indicates an upstream dependency is temporarily
	// unavailable
	ErrServiceUnavailable = errors.New("service unavailable")
)

// DomainError represents a domain-specific error with additional context
type DomainError struct {
	Err       error
	Code      string
	Message   string
	Details   map[string]interface{}
	Retryable bool
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Code
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target
func (e *DomainError) Is(target error) bool {
	if e.Err != nil {
		return errors.Is(e.Err, target)
	}
	return false
}

// NewDomainError creates a new domain error
func NewDomainError(err error, code, message string) *DomainError {
	return &DomainError{
		Err:     err,
		Code:    code,
		Message: message,
	}
}

// WithRetryable marks the error as retryable
func (e *DomainError) WithRetryable(retryable bool) *DomainError {
	e.Retryable = retryable
	return e
}

// ValidationError creates a validation error
func ValidationError(field, message string) *DomainError {
	return &DomainError{
		Err:     ErrInvalidInput,
		Code:    "VALIDATION_ERROR",
		Message: message,
		Details: map[string]interface{}{
			"field": field,
		},
	}
}

// UpstreamError creates a retryable upstream-dependency error
func UpstreamError(dependency string, err error) *DomainError {
	return &DomainError{
		Err:       ErrServiceUnavailable,
		Code:      "UPSTREAM_UNAVAILABLE",
		Message:   fmt.Sprintf("%s is unavailable: %v", dependency, err),
		Retryable: true,
	}
}
