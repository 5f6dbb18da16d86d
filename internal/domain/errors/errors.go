// Package errors defines the application error taxonomy shared by the domain,
// the use cases and the delivery layer.
package errors

import (
	"net/http"

	"clientaccount/internal/errors"
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
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError carrying the same business error code, so a
// detailed copy still satisfies errors.Is against its predefined sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
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
	}
}

// Predefined error types
var (
	// Identity errors
	ErrMalformedIdentifier = NewBaseError(
		http.StatusBadRequest,
		"MALFORMED_IDENTIFIER",
		"The identifier is not a valid UUID",
		"",
	)

	// Geo errors
	ErrInvalidLatitude = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_LATITUDE",
		"The latitude has to be between -90º and 90º",
		"",
	)

	ErrInvalidLongitude = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_LONGITUDE",
		"The longitude has to be between -180º and 180º",
		"",
	)

	// Address errors
	ErrInvalidLocationAddress = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_LOCATION_ADDRESS",
		"The address location must be provided",
		"",
	)

	// Client errors
	ErrInvalidClientName = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_CLIENT_NAME",
		"The client name must have at least two words",
		"",
	)

	ErrInvalidClientContact = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_CLIENT_CONTACT",
		"The client contact must have at least 9 characters",
		"",
	)

	ErrInvalidClientCpf = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_CLIENT_CPF",
		"The client CPF must be valid",
		"",
	)

	// Account errors
	ErrClientAccountEmailExists = NewBaseError(
		http.StatusConflict,
		"CLIENT_ACCOUNT_EMAIL_EXISTS",
		"A client account with this email already exists",
		"",
	)

	ErrClientAccountUsernameExists = NewBaseError(
		http.StatusConflict,
		"CLIENT_ACCOUNT_USERNAME_EXISTS",
		"A client account with this username already exists",
		"",
	)

	ErrClientAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"CLIENT_ACCOUNT_NOT_FOUND",
		"Client account not found",
		"",
	)

	ErrClientAccountCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"CLIENT_ACCOUNT_CREATION_FAILED",
		"Failed to create client account",
		"",
	)

	// Authentication-related errors
	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
