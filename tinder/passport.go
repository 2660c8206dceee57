// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tinder

import (
	"context"
	"encoding/json"
	"net/http"
)

// Passport moves the discovery location without moving the device.
// Both operations require a subscription that includes it; the API
// answers with an error otherwise.

// UpdatePassport sets the simulated location.
func (c *Client) UpdatePassport(ctx context.Context, lat, lon float64) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, pathPassportTravel, coordinates{Lat: lat, Lon: lon})
}

// ResetPassport returns discovery to the device location.
func (c *Client) ResetPassport(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, pathPassportReset, nil)
}
