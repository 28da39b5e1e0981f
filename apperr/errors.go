// Package apperr holds the error taxonomy shared by services, repositories
// and controllers. Sentinel errors are matched with errors.Is; the structured
// types carry context and unwrap to their sentinel.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientStock is returned by a conditional stock decrement when
	// the available stock is below the requested quantity.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidCredentials deliberately does not say which part was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken covers malformed, tampered and expired tokens alike.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrForbidden is returned when an authenticated role is not allowed.
	ErrForbidden = errors.New("forbidden")

	// ErrTransactionFailed marks an atomic unit that was discarded. Safe to
	// retry from scratch; nothing was persisted.
	ErrTransactionFailed = errors.New("transaction failed")
)

// ValidationError is a business-rule violation in caller input. It is never
// retried and never leaves partial effects.
type ValidationError struct {
	Msg string
	Err error
}

func (e *ValidationError) Error() string { return e.Msg }
func (e *ValidationError) Unwrap() error { return e.Err }

// Validationf builds a plain ValidationError.
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError identifies which entity was missing.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// AuthError wraps one of the auth sentinels with a caller-safe message.
type AuthError struct {
	Msg string
	Err error
}

func (e *AuthError) Error() string { return e.Msg }
func (e *AuthError) Unwrap() error { return e.Err }

// TransactionFailedError reports a discarded atomic unit with its cause.
type TransactionFailedError struct {
	Cause error
}

func (e *TransactionFailedError) Error() string {
	return fmt.Sprintf("transaction failed: %v", e.Cause)
}

func (e *TransactionFailedError) Unwrap() error { return ErrTransactionFailed }

// IsValidation reports whether err is a ValidationError anywhere in its chain.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err means a missing entity.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsAuth reports whether err is an AuthError anywhere in its chain.
func IsAuth(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}
