// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tinder is a client for the Tinder REST API: authorization via
// a Facebook access token, recommendations and swiping, matches and
// messages, profile and account settings, picture management, and
// Passport (simulated location).
//
// [Client] owns one session: the X-Auth-Token obtained by
// [Client.Authorize] (or set with [Client.SetAuthToken]), the id of the
// authenticated user, the timestamp of the last activity fetch, and the
// raw body of the last authorization. Every endpoint method maps its
// arguments to one request (relative path, method, optional JSON
// payload) and hands it to a single executor, which attaches the
// identification headers, applies the per-request timeout, and maps the
// response:
//
//   - non-2xx status: [*RequestFailedError] carrying the body text
//   - 2xx with a top-level "error" member: [*APIError]
//   - request exceeded Config.Timeout: [*TimeoutError] (errors.Is ErrTimeout)
//   - precondition unmet (upload before authorization): [ErrInvalidState]
//   - body that does not decode: [*DecodeError]
//
// Nothing is retried, cached, or rate limited. Transport failures (DNS,
// refused connections, TLS) are returned wrapped but unclassified.
//
// Session fields are guarded against data races, but calls are not
// serialized: an Authorize racing with other calls on the same Client
// has no defined ordering. Callers that need ordering use one Client per
// goroutine or synchronize externally.
//
// [IsOnline] is a free function that needs no session: it treats a 401
// from the unauthenticated metadata endpoint as proof that the service
// is up, and every other outcome as down.
package tinder
