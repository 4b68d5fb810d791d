// Package errors provides application-level error types and utilities.
// Every failure surfaced to a Discord user is one of the six types below.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeNotConfigured ErrorType = "not_configured"
	ErrorTypeNotFound      ErrorType = "not_found"
	ErrorTypeForbidden     ErrorType = "forbidden"
	ErrorTypeInvalidState  ErrorType = "invalid_state"
	ErrorTypeValidation    ErrorType = "validation_error"
	ErrorTypeUpstream      ErrorType = "upstream_failure"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	Cause   error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the collaborator error behind an upstream failure.
func (e *AppError) Unwrap() error {
	return e.Cause
}

func newAppError(t ErrorType, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    t,
		Message: message,
		Details: detail,
	}
}

// NewNotConfiguredError reports missing guild settings or a missing staff role.
func NewNotConfiguredError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotConfigured, message, details)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, message, details)
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, message, details)
}

// NewInvalidStateError reports a transition attempted from a disallowed status.
func NewInvalidStateError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInvalidState, message, details)
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, message, details)
}

// NewUpstreamError wraps a persistence or gateway failure.
func NewUpstreamError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeUpstream,
		Message: message,
		Cause:   cause,
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// TypeOf returns the error type, treating anything that is not an AppError as
// an upstream failure.
func TypeOf(err error) ErrorType {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Type
	}
	return ErrorTypeUpstream
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

// IsNotConfiguredError checks if the error is a not configured error
func IsNotConfiguredError(err error) bool { return isType(err, ErrorTypeNotConfigured) }

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool { return isType(err, ErrorTypeNotFound) }

// IsForbiddenError checks if the error is a forbidden error
func IsForbiddenError(err error) bool { return isType(err, ErrorTypeForbidden) }

// IsInvalidStateError checks if the error is an invalid state error
func IsInvalidStateError(err error) bool { return isType(err, ErrorTypeInvalidState) }

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool { return isType(err, ErrorTypeValidation) }

// IsUpstreamError checks if the error is an upstream failure
func IsUpstreamError(err error) bool { return isType(err, ErrorTypeUpstream) }
