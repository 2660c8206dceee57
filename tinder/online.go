// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tinder

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// DefaultOnlineTimeout bounds IsOnline when OnlineConfig.Timeout is zero.
const DefaultOnlineTimeout = 5 * time.Second

// OnlineConfig configures IsOnline. The zero value checks the production
// API with http.DefaultClient.
type OnlineConfig struct {
	// BaseURL is the API origin. Defaults to DefaultAPIURL.
	BaseURL string

	// HTTPClient defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Timeout defaults to DefaultOnlineTimeout.
	Timeout time.Duration
}

// IsOnline reports whether the API is reachable. It sends an
// unauthenticated GET to the metadata endpoint: a healthy server must
// reject it with 401, so 401 means online. Any other status, a
// transport error, or a timeout means offline.
func IsOnline(ctx context.Context, config OnlineConfig) bool {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultOnlineTimeout
	}

	onlineContext, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	request, err := http.NewRequestWithContext(onlineContext, http.MethodGet, strings.TrimRight(baseURL, "/")+"/"+pathMeta, nil)
	if err != nil {
		return false
	}

	response, err := httpClient.Do(request)
	if err != nil {
		return false
	}
	response.Body.Close()

	return response.StatusCode == http.StatusUnauthorized
}
