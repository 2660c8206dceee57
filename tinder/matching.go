// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tinder

import (
	"context"
	"encoding/json"
	"net/http"
)

// Recommendations fetches up to limit candidate profiles.
func (c *Client) Recommendations(ctx context.Context, limit int) (*RecommendationsResponse, error) {
	body, err := c.do(ctx, http.MethodGet, pathRecommendations, map[string]int{"limit": limit})
	if err != nil {
		return nil, err
	}
	response, err := decode[RecommendationsResponse](body, "recommendations response")
	if err != nil {
		return nil, err
	}
	response.Raw = body
	return response, nil
}

// Like swipes right on userID.
func (c *Client) Like(ctx context.Context, userID string) (*LikeResponse, error) {
	return c.swipe(ctx, pathLike(userID))
}

// SuperLike super-likes userID.
func (c *Client) SuperLike(ctx context.Context, userID string) (*LikeResponse, error) {
	return c.swipe(ctx, pathSuperLike(userID))
}

func (c *Client) swipe(ctx context.Context, path string) (*LikeResponse, error) {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	response, err := decode[LikeResponse](body, "like response")
	if err != nil {
		return nil, err
	}
	response.Raw = body
	return response, nil
}

// Pass swipes left on userID.
func (c *Client) Pass(ctx context.Context, userID string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, pathPass(userID), nil)
}

// Unmatch dissolves a match.
func (c *Client) Unmatch(ctx context.Context, matchID string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, pathMatch(matchID), nil)
}

// SendMessage posts a chat message to a match.
func (c *Client) SendMessage(ctx context.Context, matchID, message string) (*Message, error) {
	body, err := c.do(ctx, http.MethodPost, pathMatch(matchID), map[string]string{"message": message})
	if err != nil {
		return nil, err
	}
	return decode[Message](body, "message response")
}

// User fetches a profile by id.
func (c *Client) User(ctx context.Context, userID string) (*UserResponse, error) {
	body, err := c.do(ctx, http.MethodGet, pathUser(userID), nil)
	if err != nil {
		return nil, err
	}
	response, err := decode[UserResponse](body, "user response")
	if err != nil {
		return nil, err
	}
	response.Raw = body
	return response, nil
}

// ShareLink requests a shareable link to userID's profile.
func (c *Client) ShareLink(ctx context.Context, userID string) (*ShareLinkResponse, error) {
	body, err := c.do(ctx, http.MethodPost, pathShare(userID), nil)
	if err != nil {
		return nil, err
	}
	response, err := decode[ShareLinkResponse](body, "share link response")
	if err != nil {
		return nil, err
	}
	response.Raw = body
	return response, nil
}

// Report files a report against userID. text is sent, even when empty,
// only with ReportOther; other causes carry no text.
func (c *Client) Report(ctx context.Context, userID string, cause ReportCause, text string) (json.RawMessage, error) {
	payload := map[string]any{"cause": cause}
	if cause == ReportOther {
		payload["text"] = text
	}
	return c.do(ctx, http.MethodPost, pathReport(userID), payload)
}
