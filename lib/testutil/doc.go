// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for packages that talk
// to the dating-app API.
//
// [NewRecordingServer] starts an httptest server that records every
// request it receives (method, path, query, headers, body) and answers
// with a canned [Reply]. Tests assert on the recorded requests to check
// the exact path/verb/payload mapping of each endpoint method.
//
// [UniqueID] generates monotonically increasing identifiers for test
// disambiguation (user ids, match ids) so tests never depend on
// wall-clock time.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
package testutil
