package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidStateTransition indicates a trip lifecycle move that is illegal from the current status.
var ErrInvalidStateTransition = errors.New("invalid state transition")

// ErrResourceUnavailable indicates a truck or driver is already committed to an overlapping window.
var ErrResourceUnavailable = errors.New("resource unavailable for the requested window")

// ErrInactiveResource indicates a truck, driver or client flagged inactive at assignment time.
var ErrInactiveResource = errors.New("resource is inactive")

// ErrInvalidAmount indicates a non-positive charge or an advance exceeding charges.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrExceedsBalance indicates a payment larger than the remaining invoice balance.
var ErrExceedsBalance = errors.New("payment exceeds invoice balance")

// ErrAlreadyReversed indicates a duplicate reversal of the same payment.
var ErrAlreadyReversed = errors.New("payment already reversed")

// ErrConflict indicates the operation conflicts with the current state of the resource.
var ErrConflict = errors.New("conflict with current resource state")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller lacks permission for the operation.
var ErrForbidden = errors.New("forbidden")

// ErrRefreshTokenExpired indicates the presented refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrTransient indicates a store-level failure that the caller may retry with the
// same idempotency key. Writes are never retried silently.
var ErrTransient = errors.New("transient store failure")

// AppError carries an HTTP-ish status code alongside a message and the wrapped cause.
// Repositories use it to surface store failures without leaking driver errors upward.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
