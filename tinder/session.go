// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tinder

import (
	"encoding/json"
	"time"
)

// Session is a snapshot of a Client's authentication state, suitable
// for persisting between processes and restoring through
// Config.Session.
type Session struct {
	AuthToken    string    `json:"auth_token"`
	UserID       string    `json:"user_id,omitempty"`
	LastActivity time.Time `json:"last_activity"`
}

// Session returns a snapshot of the current session state.
func (c *Client) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Session{
		AuthToken:    c.authToken,
		UserID:       c.userID,
		LastActivity: c.lastActivity,
	}
}

// AuthToken returns the X-Auth-Token in use, or "" before authorization.
func (c *Client) AuthToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authToken
}

// SetAuthToken installs a token obtained elsewhere. Subsequent requests
// carry it. The authenticated user id is left unchanged.
func (c *Client) SetAuthToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authToken = token
}

// UserID returns the id of the authenticated user, or "" when unknown.
func (c *Client) UserID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.userID
}

// LastActivity returns the timestamp Updates will send next.
func (c *Client) LastActivity() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastActivity
}

// Defaults returns the raw body of the last successful Authorize, or nil.
func (c *Client) Defaults() json.RawMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.defaults
}

// establish installs the result of a successful authorization. All
// three fields change together.
func (c *Client) establish(token, userID string, defaults json.RawMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authToken = token
	c.userID = userID
	c.defaults = defaults
}

// advanceLastActivity moves the last-activity timestamp to candidate if
// candidate is strictly later. Reports whether it moved.
func (c *Client) advanceLastActivity(candidate time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !candidate.After(c.lastActivity) {
		return false
	}
	c.lastActivity = candidate
	return true
}
