// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tinder

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidState is returned when an operation's session precondition
// is unmet, e.g. uploading a picture before the authenticated user id is
// known. The operation performs no network I/O.
var ErrInvalidState = errors.New("tinder: invalid session state")

// ErrTimeout matches every *TimeoutError via errors.Is.
var ErrTimeout = errors.New("tinder: request timed out")

// RequestFailedError is a non-2xx HTTP response. Body holds the raw
// response body as text.
type RequestFailedError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("tinder: %s %s: HTTP %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// APIError is a 2xx response whose JSON body has a top-level "error"
// member. Value is that member verbatim; Message is its string form
// (the unquoted string when the member is a JSON string, the raw JSON
// otherwise).
type APIError struct {
	Method  string
	Path    string
	Value   json.RawMessage
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tinder: %s %s: API error: %s", e.Method, e.Path, e.Message)
}

func newAPIError(method, path string, value json.RawMessage) *APIError {
	message := string(value)
	var text string
	if json.Unmarshal(value, &text) == nil {
		message = text
	}
	return &APIError{Method: method, Path: path, Value: value, Message: message}
}

// TimeoutError reports that a request did not complete within the
// client's configured timeout.
type TimeoutError struct {
	Method  string
	Path    string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("tinder: %s %s: no response within %s", e.Method, e.Path, e.Timeout)
}

// Is makes errors.Is(err, ErrTimeout) true for every TimeoutError.
func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

// DecodeError reports a response body that could not be decoded into
// the shape the operation expects (invalid JSON, a required field
// missing, a malformed timestamp).
type DecodeError struct {
	// What names the response being decoded (e.g. "auth response").
	What string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("tinder: decoding %s: %v", e.What, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsRequestFailed reports whether err is a non-2xx response.
func IsRequestFailed(err error) bool {
	var requestFailed *RequestFailedError
	return errors.As(err, &requestFailed)
}

// IsUnauthorized reports whether err is a 401 response, which the API
// returns for a missing, expired, or revoked auth token.
func IsUnauthorized(err error) bool {
	var requestFailed *RequestFailedError
	return errors.As(err, &requestFailed) && requestFailed.StatusCode == 401
}

// IsAPIError reports whether err is an application-level error whose
// message equals message. An empty message matches any APIError.
func IsAPIError(err error, message string) bool {
	var apiError *APIError
	if !errors.As(err, &apiError) {
		return false
	}
	return message == "" || apiError.Message == message
}
