// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tinder

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// activityLayout is the timestamp format the updates endpoint accepts:
// UTC with millisecond precision.
const activityLayout = "2006-01-02T15:04:05.000Z"

// Updates fetches matches, messages, and blocks since LastActivity. If
// the response carries a last_activity_date later than the current
// value, the session advances to it; an absent or older value leaves it
// unchanged.
func (c *Client) Updates(ctx context.Context) (*UpdatesResponse, error) {
	since := c.LastActivity().UTC().Format(activityLayout)

	response, err := c.fetchUpdates(ctx, since)
	if err != nil {
		return nil, err
	}

	if response.LastActivityDate != "" {
		reported, err := time.Parse(time.RFC3339Nano, response.LastActivityDate)
		if err != nil {
			return nil, &DecodeError{
				What: "updates response",
				Err:  fmt.Errorf("last_activity_date %q: %w", response.LastActivityDate, err),
			}
		}
		c.advanceLastActivity(reported)
	}

	return response, nil
}

// History fetches the full activity history. It sends an empty
// timestamp and never changes LastActivity.
func (c *Client) History(ctx context.Context) (*UpdatesResponse, error) {
	return c.fetchUpdates(ctx, "")
}

func (c *Client) fetchUpdates(ctx context.Context, since string) (*UpdatesResponse, error) {
	body, err := c.do(ctx, http.MethodPost, pathUpdates, map[string]string{
		"last_activity_date": since,
	})
	if err != nil {
		return nil, err
	}

	response, err := decode[UpdatesResponse](body, "updates response")
	if err != nil {
		return nil, err
	}
	response.Raw = body
	return response, nil
}
