// Package errors defines the application error taxonomy surfaced by the
// lifecycle engine. Every command returns either a success value or one of
// these tagged failures; nothing is thrown or retried.
package errors

import (
	"net/http"

	"descya/internal/errors"
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

// WithDetails returns a copy of the error carrying detailed information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Lifecycle error taxonomy. SoldOut and AlreadyClaimed are terminal business
// outcomes, not transient faults.
var (
	// ErrNotFound covers lookups of deals, coupons and businesses alike.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"The requested resource does not exist",
		"",
	)

	// ErrInvalidTransition signals approval workflow misuse, e.g. approving
	// a deal that already left the pending state.
	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"The deal is not in a state that allows this transition",
		"",
	)

	// ErrNotEligible means the deal is not publicly claimable right now.
	ErrNotEligible = NewBaseError(
		http.StatusConflict,
		"NOT_ELIGIBLE",
		"This deal is not available for claiming",
		"",
	)

	// ErrSoldOut means every unit of the deal has been claimed.
	ErrSoldOut = NewBaseError(
		http.StatusConflict,
		"SOLD_OUT",
		"All coupons for this deal have been claimed",
		"",
	)

	// ErrAlreadyClaimed means the user already holds an active coupon for the deal.
	ErrAlreadyClaimed = NewBaseError(
		http.StatusConflict,
		"ALREADY_CLAIMED",
		"You already hold an active coupon for this deal",
		"",
	)

	// ErrAlreadyUsed means the coupon was redeemed before; details carry the
	// original redemption time for display.
	ErrAlreadyUsed = NewBaseError(
		http.StatusConflict,
		"ALREADY_USED",
		"This coupon has already been used",
		"",
	)

	// ErrExpired means the coupon (or its deal) expired before redemption.
	ErrExpired = NewBaseError(
		http.StatusConflict,
		"EXPIRED",
		"This coupon has expired",
		"",
	)

	// ErrWrongBusiness means a business tried to redeem another business's coupon.
	ErrWrongBusiness = NewBaseError(
		http.StatusForbidden,
		"WRONG_BUSINESS",
		"This coupon does not belong to your business",
		"",
	)

	// ErrValidation covers malformed submission input.
	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"Submitted data failed validation",
		"",
	)

	// Account errors, used by the auth service.
	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"This email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// StorageError represents a persistence failure, implementing the AppError interface
type StorageError struct {
	err     error
	details string
}

// NewStorageError creates a persistence-related error
func NewStorageError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "storage operation failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageError) ErrorCode() string {
	return "STORAGE_FAILED"
}

// Message returns the user-friendly error message
func (e *StorageError) Message() string {
	return "Storage operation failed"
}

// Details returns detailed error information
func (e *StorageError) Details() string {
	return e.details
}
