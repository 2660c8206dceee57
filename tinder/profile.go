// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tinder

import (
	"context"
	"encoding/json"
	"net/http"
)

// coordinates is the payload of position and Passport updates.
type coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// UpdatePosition reports the device location.
func (c *Client) UpdatePosition(ctx context.Context, lat, lon float64) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, pathPing, coordinates{Lat: lat, Lon: lon})
}

// Account fetches the metadata of the authenticated account.
func (c *Client) Account(ctx context.Context) (*MetaResponse, error) {
	body, err := c.do(ctx, http.MethodGet, pathMeta, nil)
	if err != nil {
		return nil, err
	}
	response, err := decode[MetaResponse](body, "meta response")
	if err != nil {
		return nil, err
	}
	response.Raw = body
	return response, nil
}

// UpdateGender sets the profile gender. The code is sent as given.
func (c *Client) UpdateGender(ctx context.Context, gender Gender) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, pathProfile, map[string]Gender{"gender": gender})
}

// UpdateBio replaces the profile bio.
func (c *Client) UpdateBio(ctx context.Context, bio string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, pathProfile, map[string]string{"bio": bio})
}

// UpdatePreferences replaces the discovery settings. Ranges are not
// validated locally.
func (c *Client) UpdatePreferences(ctx context.Context, preferences Preferences) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, pathProfile, map[string]any{
		"discoverable":    preferences.Discoverable,
		"age_filter_min":  preferences.AgeMin,
		"age_filter_max":  preferences.AgeMax,
		"gender_filter":   preferences.GenderFilter,
		"distance_filter": preferences.DistanceMiles,
	})
}

// DeleteAccount permanently deletes the authenticated account.
func (c *Client) DeleteAccount(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, pathProfile, nil)
}

// UpdateJob sets the profile employer by company id.
func (c *Client) UpdateJob(ctx context.Context, companyID string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, pathJob, map[string]any{
		"company": map[string]string{"id": companyID},
	})
}

// DeleteJob clears the profile employer.
func (c *Client) DeleteJob(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, pathJob, nil)
}

// UpdateSchool sets the profile school by school id.
func (c *Client) UpdateSchool(ctx context.Context, schoolID string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, pathSchool, map[string]any{
		"schools": []map[string]string{{"id": schoolID}},
	})
}

// DeleteSchool clears the profile school.
func (c *Client) DeleteSchool(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, pathSchool, nil)
}

// CreateUsername claims a username for the profile's web link.
func (c *Client) CreateUsername(ctx context.Context, username string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, pathUsername, map[string]string{"username": username})
}

// ChangeUsername replaces the claimed username.
func (c *Client) ChangeUsername(ctx context.Context, username string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, pathUsername, map[string]string{"username": username})
}

// DeleteUsername releases the claimed username.
func (c *Client) DeleteUsername(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, pathUsername, nil)
}
