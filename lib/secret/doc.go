// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret holds credentials the tinder CLI handles (the Facebook
// access token exchanged at login, the API auth token loaded from the
// session file) in memory outside the Go heap.
//
// [Buffer] is backed by an anonymous mmap region locked into RAM with
// mlock and, where the kernel supports it, excluded from core dumps.
// Close zeros and releases the region. Credentials are converted to Go
// strings only at the JSON/HTTP boundary, where the tinder client needs
// them.
//
// [ReadFromPath] reads a credential from a file or stdin and [Prompt]
// reads one interactively without echo.
package secret
