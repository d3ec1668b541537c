package errors

import (
	"net/http"

	"bloodbank/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	cause     error
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business error code, so copies made by
// WithDetails and WithCause still compare equal to the predefined values.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// Unwrap exposes the cause attached by WithCause.
func (e *BaseError) Unwrap() error {
	return e.cause
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		cause:     e.cause,
	}
}

// WithCause attaches the underlying reason and uses its text as the details.
func (e *BaseError) WithCause(cause error) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   cause.Error(),
		cause:     cause,
	}
}

// Predefined error kinds
var (
	// ErrValidationFailed marks malformed input on a write path.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// ErrNotFound marks a reference to a record that does not exist.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	// ErrPreconditionFailed marks a lifecycle operation whose preconditions no longer hold
	// at commit time. Callers should re-fetch current state and retry.
	ErrPreconditionFailed = NewBaseError(
		http.StatusConflict,
		"PRECONDITION_FAILED",
		"precondition failed",
		"",
	)

	// ErrIOFailure marks a failed read or write against the record store.
	ErrIOFailure = NewBaseError(
		http.StatusServiceUnavailable,
		"IO_FAILURE",
		"record store unavailable",
		"",
	)

	// ErrForbidden marks a caller without the required role.
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	// ErrInternalError is anything not covered above.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// StoreError represents a record store failure, implementing the AppError interface.
// It reports as ErrIOFailure for errors.Is.
type StoreError struct {
	err     error
	details string
}

// NewStoreError wraps a driver error as an IOFailure.
func NewStoreError(err error, details string) AppError {
	return &StoreError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap returns the driver error.
func (e *StoreError) Unwrap() error {
	return e.err
}

// Is reports true for ErrIOFailure.
func (e *StoreError) Is(target error) bool {
	return ErrIOFailure.Is(target)
}

// HTTPCode returns the HTTP status code
func (e *StoreError) HTTPCode() int {
	return ErrIOFailure.httpCode
}

// ErrorCode returns the business error code
func (e *StoreError) ErrorCode() string {
	return ErrIOFailure.errorCode
}

// Message returns the user-friendly error message
func (e *StoreError) Message() string {
	return ErrIOFailure.message
}

// Details returns detailed error information
func (e *StoreError) Details() string {
	return e.details
}
