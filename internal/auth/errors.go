package auth

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes auth envelope errors.
type ErrorCode string

const (
	// ErrCodeUserNotFound indicates no users row matches the email.
	ErrCodeUserNotFound ErrorCode = "USER_NOT_FOUND"

	// ErrCodeBadPassword indicates the demo password gate rejected the
	// attempt (sign-in or registration).
	ErrCodeBadPassword ErrorCode = "INCORRECT_PASSWORD"

	// ErrCodeNoSession indicates an operation that requires an active
	// session was called while signed out.
	ErrCodeNoSession ErrorCode = "NO_SESSION"

	// ErrCodeStorage indicates the backing store failed.
	ErrCodeStorage ErrorCode = "STORAGE_FAILURE"
)

// Error is the error-as-value returned in auth envelopes. These are
// recoverable, user-facing conditions the caller surfaces (e.g.
// "incorrect password"), never panics or rejected operations.
type Error struct {
	Code    ErrorCode `json:"code,omitempty"`
	Message string    `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// IsNotFound reports whether err is a user-not-found rejection.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code == ErrCodeUserNotFound
	}
	return false
}

// IsBadPassword reports whether err is a demo-password rejection.
func IsBadPassword(err error) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code == ErrCodeBadPassword
	}
	return false
}

// storageError wraps a backing-store failure into the envelope form.
func storageError(err error) *Error {
	return &Error{Code: ErrCodeStorage, Message: err.Error()}
}
