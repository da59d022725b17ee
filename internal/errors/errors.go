package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents an el error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400
	ErrNotFound       ErrorCode = "NOT_FOUND"       // 404
	ErrDatasetInvalid ErrorCode = "DATASET_INVALID" // 500
	ErrInternal       ErrorCode = "INTERNAL"        // 500
)

// ElError represents a structured error with code, status, and details.
type ElError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *ElError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *ElError {
	return &ElError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for a query that matched no element.
func NewNotFound(query string) *ElError {
	return &ElError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("no element matches %q", query),
		Details: map[string]any{"query": query},
	}
}

// NewDatasetInvalid creates an error for an embedded dataset that breaks an invariant.
// index is the position of the offending entry, or -1 when the document itself is bad.
func NewDatasetInvalid(index int, reason string) *ElError {
	msg := fmt.Sprintf("dataset invalid: %s", reason)
	var details map[string]any
	if index >= 0 {
		msg = fmt.Sprintf("dataset invalid: element #%d: %s", index, reason)
		details = map[string]any{"index": index}
	}
	return &ElError{
		Code:    ErrDatasetInvalid,
		Status:  500,
		Message: msg,
		Details: details,
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *ElError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &ElError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if err, or anything it wraps, is an ElError with the given code.
func Is(err error, code ErrorCode) bool {
	var elErr *ElError
	if stderrors.As(err, &elErr) {
		return elErr.Code == code
	}
	return false
}
