package query

import (
	"errors"
	"fmt"

	"github.com/roach88/localbase/internal/record"
)

// ErrorCode categorizes result-envelope errors.
type ErrorCode string

const (
	// ErrCodeStorage indicates the backing store failed (I/O, quota).
	ErrCodeStorage ErrorCode = "STORAGE_FAILURE"

	// ErrCodeCanceled indicates the caller's context was canceled
	// before resolution.
	ErrCodeCanceled ErrorCode = "CANCELED"
)

// Error is the error-as-value carried in the result envelope, mirroring
// the hosted client's convention. Callers written against the real
// client ("if error != nil, surface it") work unmodified.
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

// IsStorageError reports whether err is a result-envelope storage fault.
// Uses errors.As to handle wrapped errors.
func IsStorageError(err error) bool {
	var qe *Error
	if errors.As(err, &qe) {
		return qe.Code == ErrCodeStorage
	}
	return false
}

// Result is the {data, error, count} envelope every query resolves to.
//
// Data is record.Null{} when the query requested no returning data
// (head, or a mutation without Select), a single Object (or Null) when
// Single was set, and an Array otherwise. Count is non-nil only when
// requested via WithCount or WithHead.
type Result struct {
	Data  record.Value
	Count *int
	Err   *Error
}

// storageFailure builds the envelope for a backing-store fault.
func storageFailure(err error) Result {
	return Result{
		Data: record.Null{},
		Err:  &Error{Code: ErrCodeStorage, Message: err.Error()},
	}
}
