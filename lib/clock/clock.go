// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock abstracts time reads for testability. Functions that would
// call time.Now directly take a Clock (or live on a struct with a
// Clock field) instead.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}
