// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides HTTP response I/O helpers for the tinder
// client.
//
// ReadResponse and ErrorBody bound every body read at MaxResponseSize so
// that a misbehaving server cannot exhaust memory. ResponseBody undoes
// gzip Content-Encoding: the client advertises gzip explicitly (as the
// mobile app does), which turns off net/http's transparent
// decompression, so decoding happens here.
package netutil

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// MaxResponseSize is the bound on API response body reads: 64 MB.
// Recommendation batches with embedded photo metadata are the largest
// responses the API produces and stay well below this.
const MaxResponseSize int64 = 64 << 20

// ReadResponse reads an API response body up to MaxResponseSize bytes.
// Use instead of io.ReadAll when reading HTTP response bodies.
func ReadResponse(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, MaxResponseSize))
}

// ErrorBody reads an HTTP error response body and returns it as a
// string. Read errors are ignored: a partial or empty body is still
// useful in an error message.
func ErrorBody(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, MaxResponseSize))
	return string(data)
}

// DecodedErrorBody returns the body of an error response as a string,
// decoded like ResponseBody. Failures are ignored as in ErrorBody: an
// unsupported encoding yields the raw body, and a corrupt gzip stream
// yields whatever decoded before the corruption.
func DecodedErrorBody(response *http.Response) string {
	body, err := ResponseBody(response)
	if err != nil {
		return ErrorBody(response.Body)
	}
	defer body.Close()
	return ErrorBody(body)
}

// ResponseBody returns a reader over the decoded body of response. When
// the server applied gzip Content-Encoding the body is decompressed;
// otherwise response.Body is returned as-is. The caller closes the
// returned reader (closing it does not close response.Body).
func ResponseBody(response *http.Response) (io.ReadCloser, error) {
	encoding := strings.ToLower(strings.TrimSpace(response.Header.Get("Content-Encoding")))
	switch encoding {
	case "", "identity":
		return io.NopCloser(response.Body), nil
	case "gzip", "x-gzip":
		reader, err := gzip.NewReader(response.Body)
		if err != nil {
			return nil, fmt.Errorf("opening gzip response body: %w", err)
		}
		return reader, nil
	default:
		return nil, fmt.Errorf("unsupported response Content-Encoding %q", encoding)
	}
}

// ReadDecoded reads the decoded body of response up to MaxResponseSize
// bytes.
func ReadDecoded(response *http.Response) ([]byte, error) {
	body, err := ResponseBody(response)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return ReadResponse(body)
}
