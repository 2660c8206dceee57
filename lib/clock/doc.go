// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable source of the current time.
//
// The tinder client reads the clock in two places: the default
// last-activity timestamp of a new session, and the one-shot photo id
// attached to picture uploads. Production code uses Real(); tests use
// Fake() so both values are deterministic:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	client, _ := tinder.NewClient(tinder.Config{Clock: c})
//	c.Advance(5 * time.Second)
package clock
