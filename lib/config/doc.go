// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the tinder
// command-line tool.
//
// Configuration comes from at most one file, named by the TINDER_CONFIG
// environment variable (via [Load]) or a --config flag (via
// [LoadFile]). Unlike a server deployment the CLI is usable with no file
// at all: [Load] returns [Default] when TINDER_CONFIG is unset.
//
// The file may carry environment sections (development, staging,
// production) whose non-empty values override the base values when
// [Config].Environment matches. A typical development section points
// api.url at a local stub server.
//
// ${HOME}, ${CONFIG_DIR} and ${VAR:-default} patterns are expanded in
// URL and path fields after loading. No other environment variables
// override config values.
//
// Key exports:
//
//   - [Config] -- API origins, client identity, session file, logging
//   - [Default] -- production API with the stock Android identity
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.ClientConfig] -- translation to a tinder.Config
package config
