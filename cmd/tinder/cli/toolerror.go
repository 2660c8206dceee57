// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bureau-foundation/tinder/tinder"
)

// ErrorCategory classifies command errors so that scripts can branch on
// the exit code without parsing error text.
type ErrorCategory string

const (
	// CategoryValidation indicates invalid input: missing arguments,
	// unparseable values, unknown commands or flags.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a referenced resource does not exist.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryForbidden indicates a missing, expired or revoked session.
	// Running "tinder login" again is the fix.
	CategoryForbidden ErrorCategory = "forbidden"

	// CategoryConflict indicates the operation conflicts with remote
	// state, e.g. a username that is already taken.
	CategoryConflict ErrorCategory = "conflict"

	// CategoryTransient indicates a temporary failure: network error,
	// timeout, 5xx or rate limit. Retrying later may succeed.
	CategoryTransient ErrorCategory = "transient"

	// CategoryRemote indicates the API accepted the request but reported
	// an application-level error in the response body.
	CategoryRemote ErrorCategory = "remote"

	// CategoryInternal indicates an unexpected error: local I/O
	// failures, undecodable responses.
	CategoryInternal ErrorCategory = "internal"
)

// exitCodes maps categories to process exit codes. 1 is left for
// uncategorized errors and ExitError.
var exitCodes = map[ErrorCategory]int{
	CategoryValidation: 2,
	CategoryNotFound:   3,
	CategoryForbidden:  4,
	CategoryConflict:   5,
	CategoryTransient:  6,
	CategoryRemote:     7,
	CategoryInternal:   8,
}

// ToolError is a categorized error returned by CLI commands. It wraps
// an inner error, preserving the full chain for errors.Is and errors.As.
// Use the category-specific constructors or [Classify] rather than
// constructing ToolError directly.
type ToolError struct {
	// Category classifies the error for programmatic handling.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error
}

// Error returns the underlying error message. The category travels in
// the exit code, not the text.
func (e *ToolError) Error() string { return e.Err.Error() }

func (e *ToolError) Unwrap() error { return e.Err }

// ExitCode returns the process exit code for the error's category.
func (e *ToolError) ExitCode() int {
	if code, ok := exitCodes[e.Category]; ok {
		return code
	}
	return 1
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced resource does not exist.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Forbidden creates a forbidden error: the session is missing or rejected.
func Forbidden(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryForbidden, Err: fmt.Errorf(format, args...)}
}

// Transient creates a transient error: a temporary failure that may succeed on retry.
func Transient(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryTransient, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure, bug, or I/O error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// Classify wraps err in a ToolError whose category is derived from the
// tinder client's error types. Errors that are already ToolErrors, and
// nil, are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var toolError *ToolError
	if errors.As(err, &toolError) {
		return err
	}

	var requestFailed *tinder.RequestFailedError
	var apiError *tinder.APIError
	var decodeError *tinder.DecodeError
	switch {
	case errors.Is(err, tinder.ErrTimeout):
		return &ToolError{Category: CategoryTransient, Err: err}
	case errors.Is(err, tinder.ErrInvalidState):
		return &ToolError{Category: CategoryValidation, Err: fmt.Errorf("%w (run \"tinder login\" first)", err)}
	case errors.As(err, &requestFailed):
		return &ToolError{Category: statusCategory(requestFailed.StatusCode), Err: err}
	case errors.As(err, &apiError):
		return &ToolError{Category: CategoryRemote, Err: err}
	case errors.As(err, &decodeError):
		return &ToolError{Category: CategoryInternal, Err: err}
	case errors.Is(err, context.Canceled):
		return err
	}
	// Anything else from a request is a transport failure.
	return &ToolError{Category: CategoryTransient, Err: err}
}

func statusCategory(status int) ErrorCategory {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return CategoryForbidden
	case status == http.StatusNotFound:
		return CategoryNotFound
	case status == http.StatusConflict:
		return CategoryConflict
	case status == http.StatusTooManyRequests || status >= 500:
		return CategoryTransient
	case status >= 400:
		return CategoryValidation
	}
	return CategoryInternal
}
