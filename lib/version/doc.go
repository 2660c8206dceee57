// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the tinder
// command.
//
// Four package-level variables are injected at build time via
// -ldflags -X:
//
//   - [GitCommit] -- short git SHA of the build
//   - [GitDirty] -- "true" if there were uncommitted changes
//   - [BuildTime] -- UTC timestamp of the build
//   - [Version] -- semantic version string (set manually for releases)
//
// When the linker did not set them (go install, go run), [Resolve]
// fills GitCommit, GitDirty and BuildTime from the VCS stamp in the
// binary's embedded build info.
//
//   - [Info] -- "0.1.0-dev (abc1234, 2026-02-10T...)" for "tinder version"
//   - [Full] -- Info plus Go version and GOOS/GOARCH
//   - [Short] -- just the version number
//   - [Commit] -- just the git SHA
package version
