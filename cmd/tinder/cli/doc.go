// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command framework for the tinder binary.
//
// A [Command] tree dispatches on the first positional argument, parses
// flags with pflag (bound from tagged parameter structs by
// [FlagsFromParams]), and suggests the closest command or flag on a
// typo. Run functions receive a context cancelled on interrupt and the
// process logger.
//
// Supporting pieces:
//
//   - [ToolError] and [Classify] -- categorized errors, derived from the
//     tinder client's error types, which map to exit codes
//   - [ExitError] -- a non-zero exit without an extra error line
//   - [JSONOutput] -- the shared --json flag
//   - [NewCommandLogger] -- text on a terminal, JSON otherwise
//   - [LoadSession] and [SaveSession] -- the persisted client session
package cli
