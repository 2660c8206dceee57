// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tinder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

// UploadPicture uploads an image file as a new profile picture. The
// authenticated user id must be known (after Authorize, or restored via
// Config.Session); otherwise ErrInvalidState is returned and nothing is
// sent.
//
// The request goes to the image origin rather than through the JSON
// executor, with a client_photo_id derived from the current time.
// Response mapping is the same as for JSON endpoints.
func (c *Client) UploadPicture(ctx context.Context, filename string, file io.Reader) (json.RawMessage, error) {
	userID := c.UserID()
	if userID == "" {
		return nil, fmt.Errorf("tinder: upload picture: no authenticated user id: %w", ErrInvalidState)
	}
	if filename == "" {
		filename = "photo.jpg"
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("userId", userID); err != nil {
		return nil, fmt.Errorf("tinder: upload picture: %w", err)
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("tinder: upload picture: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("tinder: upload picture: reading %s: %w", filename, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("tinder: upload picture: %w", err)
	}

	query := url.Values{"client_photo_id": {c.photoID()}}
	requestURL := c.imageURL + "/" + pathImage + "?" + query.Encode()

	return c.send(ctx, http.MethodPost, pathImage, requestURL, c.imageHeaders(writer.FormDataContentType()), &body)
}

// photoID returns the one-shot identifier the upload endpoint expects.
func (c *Client) photoID() string {
	return fmt.Sprintf("ProfilePhoto%d", c.clock.Now().UnixMilli())
}

// UploadFacebookPicture attaches a photo already on Facebook as a
// profile picture.
func (c *Client) UploadFacebookPicture(ctx context.Context, picture FacebookPicture) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, pathMedia, map[string]any{
		"transmit": "fb",
		"assets": []map[string]any{{
			"id":                picture.PictureID,
			"xdistance_percent": picture.XDistancePercent,
			"ydistance_percent": picture.YDistancePercent,
			"xoffset_percent":   picture.XOffsetPercent,
			"yoffset_percent":   picture.YOffsetPercent,
		}},
	})
}

// DeletePicture removes a profile picture by id.
func (c *Client) DeletePicture(ctx context.Context, pictureID string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, pathMedia, map[string][]string{"assets": {pictureID}})
}
