// Package errors defines the application error taxonomy shared by the
// usecase and delivery layers. Every AppError maps a business condition to
// an HTTP status code, a stable business code, and a short user message.
package errors

import (
	"net/http"

	"matrimony/internal/errors"
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
	return e.message
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
	// Session-related errors
	ErrAuthRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_REQUIRED",
		"sign in to continue",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"invalid or expired session",
		"",
	)

	// Authorization errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"forbidden access",
		"",
	)

	// Resource errors
	ErrBiodataNotFound = NewBaseError(
		http.StatusNotFound,
		"BIODATA_NOT_FOUND",
		"biodata not found",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrPaymentNotFound = NewBaseError(
		http.StatusNotFound,
		"PAYMENT_NOT_FOUND",
		"payment record not found",
		"",
	)

	ErrFavoriteNotFound = NewBaseError(
		http.StatusNotFound,
		"FAVORITE_NOT_FOUND",
		"favourite not found",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	// Premium workflow errors
	ErrPremiumAlreadyRequested = NewBaseError(
		http.StatusConflict,
		"PREMIUM_ALREADY_REQUESTED",
		"premium request already submitted",
		"",
	)

	ErrPremiumNotPending = NewBaseError(
		http.StatusConflict,
		"PREMIUM_NOT_PENDING",
		"no pending premium request for this user",
		"",
	)

	// Payment workflow errors
	ErrPaymentAlreadySettled = NewBaseError(
		http.StatusConflict,
		"PAYMENT_ALREADY_SETTLED",
		"payment is already in a final state",
		"",
	)

	ErrGatewayRejected = NewBaseError(
		http.StatusBadRequest,
		"GATEWAY_REJECTED",
		"invalid request",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
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
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
