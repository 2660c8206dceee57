// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tinder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/bureau-foundation/tinder/lib/clock"
	"github.com/bureau-foundation/tinder/lib/netutil"
)

const (
	// DefaultAPIURL is the origin of every JSON endpoint.
	DefaultAPIURL = "https://api.gotinder.com"

	// DefaultImageURL is the origin of the picture upload endpoint.
	DefaultImageURL = "https://imageupload.gotinder.com"

	// DefaultTimeout bounds each request issued through a Client.
	DefaultTimeout = 10 * time.Second

	// DefaultLocale is sent as Accept-Language and as the locale of the
	// authorization request.
	DefaultLocale = "en"
)

// Identity is the client fingerprint sent on every request. The API
// rejects or degrades clients it does not recognize, so the defaults
// mirror a released Android build.
type Identity struct {
	UserAgent  string `yaml:"user_agent"`
	OSVersion  string `yaml:"os_version"`
	Platform   string `yaml:"platform"`
	AppVersion string `yaml:"app_version"`
}

// DefaultIdentity returns the Android client fingerprint.
func DefaultIdentity() Identity {
	return Identity{
		UserAgent:  "Tinder Android Version 4.5.5",
		OSVersion:  "23",
		Platform:   "android",
		AppVersion: "854",
	}
}

// withDefaults fills empty fields from DefaultIdentity.
func (identity Identity) withDefaults() Identity {
	defaults := DefaultIdentity()
	if identity.UserAgent == "" {
		identity.UserAgent = defaults.UserAgent
	}
	if identity.OSVersion == "" {
		identity.OSVersion = defaults.OSVersion
	}
	if identity.Platform == "" {
		identity.Platform = defaults.Platform
	}
	if identity.AppVersion == "" {
		identity.AppVersion = defaults.AppVersion
	}
	return identity
}

// Config holds configuration for creating a Client. The zero value is
// usable and talks to the production API.
type Config struct {
	// APIURL is the origin for JSON endpoints. Defaults to DefaultAPIURL.
	APIURL string

	// ImageURL is the origin for picture uploads. Defaults to
	// DefaultImageURL.
	ImageURL string

	// HTTPClient is used for all requests. Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Timeout bounds each request. Defaults to DefaultTimeout.
	Timeout time.Duration

	// Locale is sent as Accept-Language. Defaults to DefaultLocale.
	Locale string

	// Identity overrides individual identification headers. Empty
	// fields keep their DefaultIdentity values.
	Identity Identity

	// LastActivity seeds the timestamp sent by Updates. Defaults to the
	// clock's current time.
	LastActivity time.Time

	// Session restores a previously saved session (see Client.Session).
	// A non-zero Session.LastActivity takes precedence over LastActivity.
	Session *Session

	// Clock provides the current time. Defaults to clock.Real().
	Clock clock.Clock

	// Logger receives one Debug record per request. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Client is a stateful Tinder API client. Create one with NewClient.
type Client struct {
	apiURL     string
	imageURL   string
	httpClient *http.Client
	timeout    time.Duration
	locale     string
	identity   Identity
	clock      clock.Clock
	logger     *slog.Logger

	// mu guards the session fields below. It is never held across a
	// network call.
	mu           sync.Mutex
	authToken    string
	userID       string
	lastActivity time.Time
	defaults     json.RawMessage
}

// NewClient creates a Client from config. Returns an error only for
// malformed origins.
func NewClient(config Config) (*Client, error) {
	apiURL, err := resolveOrigin(config.APIURL, DefaultAPIURL)
	if err != nil {
		return nil, fmt.Errorf("tinder: invalid APIURL: %w", err)
	}
	imageURL, err := resolveOrigin(config.ImageURL, DefaultImageURL)
	if err != nil {
		return nil, fmt.Errorf("tinder: invalid ImageURL: %w", err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	locale := config.Locale
	if locale == "" {
		locale = DefaultLocale
	}

	clk := config.Clock
	if clk == nil {
		clk = clock.Real()
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	client := &Client{
		apiURL:       apiURL,
		imageURL:     imageURL,
		httpClient:   httpClient,
		timeout:      timeout,
		locale:       locale,
		identity:     config.Identity.withDefaults(),
		clock:        clk,
		logger:       logger,
		lastActivity: config.LastActivity,
	}

	if config.Session != nil {
		client.authToken = config.Session.AuthToken
		client.userID = config.Session.UserID
		if !config.Session.LastActivity.IsZero() {
			client.lastActivity = config.Session.LastActivity
		}
	}
	if client.lastActivity.IsZero() {
		client.lastActivity = clk.Now()
	}

	return client, nil
}

// resolveOrigin validates an http(s) origin and strips trailing slashes
// so request URLs can be built by concatenation.
func resolveOrigin(value, fallback string) (string, error) {
	if value == "" {
		value = fallback
	}
	parsed, err := url.Parse(value)
	if err != nil {
		return "", err
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return "", fmt.Errorf("%q: scheme must be http or https", value)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("%q: missing host", value)
	}
	return strings.TrimRight(value, "/"), nil
}

// requestHeaders returns the identification headers for a JSON request
// given the current session. Pure: a fresh header set on every call.
func (c *Client) requestHeaders() http.Header {
	return buildHeaders(c.identity, c.locale, c.AuthToken(), "application/json")
}

// imageHeaders returns the upload variant of requestHeaders, carrying
// the multipart content type (including its boundary).
func (c *Client) imageHeaders(contentType string) http.Header {
	return buildHeaders(c.identity, c.locale, c.AuthToken(), contentType)
}

// buildHeaders assembles the fixed header set. The lowercase names are
// what the mobile app sends; they are assigned directly to keep them
// out of http.Header's canonicalization.
func buildHeaders(identity Identity, locale, authToken, contentType string) http.Header {
	header := http.Header{}
	header.Set("User-Agent", identity.UserAgent)
	header["os_version"] = []string{identity.OSVersion}
	header["platform"] = []string{identity.Platform}
	header["app-version"] = []string{identity.AppVersion}
	header.Set("Accept-Language", locale)
	header.Set("Accept-Encoding", "gzip")
	header.Set("Content-Type", contentType)
	if authToken != "" {
		header.Set("X-Auth-Token", authToken)
	}
	return header
}

// do is the executor for every JSON endpoint. path is relative to the
// API origin. A non-nil payload is JSON-encoded into the body for every
// method, GET and DELETE included; a nil payload sends no body.
//
// Returns the raw 2xx body after checking it for an "error" member.
func (c *Client) do(ctx context.Context, method, path string, payload any) (json.RawMessage, error) {
	path = strings.TrimLeft(path, "/")

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("tinder: encoding %s %s payload: %w", method, path, err)
		}
		body = bytes.NewReader(encoded)
	}

	return c.send(ctx, method, path, c.apiURL+"/"+path, c.requestHeaders(), body)
}

// send issues one request under the client timeout and maps the
// response. path is only used for error messages and logs.
func (c *Client) send(ctx context.Context, method, path, requestURL string, header http.Header, body io.Reader) (json.RawMessage, error) {
	requestContext, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	request, err := http.NewRequestWithContext(requestContext, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("tinder: creating %s %s request: %w", method, path, err)
	}
	request.Header = header

	start := c.clock.Now()
	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, c.requestError(ctx, requestContext, method, path, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		errorBody := netutil.DecodedErrorBody(response)
		c.logRequest(method, path, response.StatusCode, start)
		return nil, &RequestFailedError{
			Method:     method,
			Path:       path,
			StatusCode: response.StatusCode,
			Body:       errorBody,
		}
	}

	responseBody, err := netutil.ReadDecoded(response)
	if err != nil {
		return nil, c.requestError(ctx, requestContext, method, path, fmt.Errorf("reading response body: %w", err))
	}
	c.logRequest(method, path, response.StatusCode, start)

	return checkResponse(method, path, responseBody)
}

func (c *Client) logRequest(method, path string, status int, start time.Time) {
	c.logger.Debug("tinder request",
		"method", method,
		"path", path,
		"status", status,
		"duration", c.clock.Now().Sub(start),
	)
}

// requestError classifies a failure to obtain a response. Expiry of the
// client's own deadline becomes a TimeoutError; cancellation or expiry
// of the caller's context is reported as that context error.
func (c *Client) requestError(callerContext, requestContext context.Context, method, path string, err error) error {
	if callerContext.Err() == nil && errors.Is(requestContext.Err(), context.DeadlineExceeded) {
		return &TimeoutError{Method: method, Path: path, Timeout: c.timeout}
	}
	return fmt.Errorf("tinder: %s %s: %w", method, path, err)
}

// checkResponse validates a 2xx body as JSON and turns a top-level
// "error" member into an APIError. Bodies that are valid JSON but not
// objects carry no error member and pass through.
func checkResponse(method, path string, body []byte) (json.RawMessage, error) {
	if !json.Valid(body) {
		return nil, &DecodeError{
			What: fmt.Sprintf("%s %s response", method, path),
			Err:  fmt.Errorf("invalid JSON body: %q", truncate(body, 200)),
		}
	}

	var envelope map[string]json.RawMessage
	if json.Unmarshal(body, &envelope) == nil {
		if value, present := envelope["error"]; present {
			return nil, newAPIError(method, path, value)
		}
	}

	return json.RawMessage(body), nil
}

// decode unmarshals a checked response body into T.
func decode[T any](body json.RawMessage, what string) (*T, error) {
	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &DecodeError{What: what, Err: err}
	}
	return &result, nil
}

func truncate(data []byte, limit int) string {
	if len(data) <= limit {
		return string(data)
	}
	return string(data[:limit]) + "..."
}
