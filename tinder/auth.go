// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tinder

import (
	"context"
	"errors"
	"net/http"
)

// Authorize exchanges a Facebook access token and Facebook user id for
// an X-Auth-Token. On success the token, the authenticated user id
// (user._id), and the full response body (see Defaults) are installed
// together. On any failure, including a 2xx body that lacks the token
// or the user id, the session is left exactly as it was.
func (c *Client) Authorize(ctx context.Context, facebookToken, facebookID string) (*AuthResponse, error) {
	body, err := c.do(ctx, http.MethodPost, pathAuth, map[string]string{
		"facebook_token": facebookToken,
		"facebook_id":    facebookID,
		"locale":         DefaultLocale,
	})
	if err != nil {
		return nil, err
	}

	response, err := decode[AuthResponse](body, "auth response")
	if err != nil {
		return nil, err
	}
	if response.Token == "" {
		return nil, &DecodeError{What: "auth response", Err: errors.New("missing token")}
	}
	if response.User == nil || response.User.ID == "" {
		return nil, &DecodeError{What: "auth response", Err: errors.New("missing user._id")}
	}
	response.Raw = body

	c.establish(response.Token, response.User.ID, body)

	c.logger.Info("authorized tinder session", "user_id", response.User.ID)

	return response, nil
}
