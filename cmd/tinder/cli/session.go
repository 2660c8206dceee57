// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bureau-foundation/tinder/tinder"
)

// ErrNoSession is returned by LoadSession when no session file exists.
var ErrNoSession = errors.New("no tinder session")

// SessionFilePath returns the path of the session file: the
// TINDER_SESSION_FILE environment variable if set, then configured (the
// config file's session.file), then $XDG_CONFIG_HOME/tinder/session.json
// or ~/.config/tinder/session.json.
func SessionFilePath(configured string) string {
	if envPath := os.Getenv("TINDER_SESSION_FILE"); envPath != "" {
		return envPath
	}
	if configured != "" {
		return configured
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "tinder-session.json")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "tinder", "session.json")
}

// LoadSession reads a session from path. A missing file yields an error
// wrapping ErrNoSession that tells the user to run "tinder login".
func LoadSession(path string) (*tinder.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s: run \"tinder login\" first", ErrNoSession, path)
		}
		return nil, fmt.Errorf("reading session file %s: %w", path, err)
	}

	var session tinder.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("parsing session file %s: %w", path, err)
	}

	if session.AuthToken == "" {
		return nil, fmt.Errorf("session file %s has no auth_token", path)
	}

	return &session, nil
}

// SaveSession writes session to path. The parent directory is created
// with mode 0700 and the file is written with mode 0600, replacing any
// previous file atomically.
func SaveSession(session tinder.Session, path string) error {
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("creating session directory %s: %w", directory, err)
	}

	temporary, err := os.CreateTemp(directory, ".session-*.json")
	if err != nil {
		return fmt.Errorf("writing session file %s: %w", path, err)
	}
	temporaryPath := temporary.Name()
	defer os.Remove(temporaryPath)

	if err := temporary.Chmod(0600); err != nil {
		temporary.Close()
		return fmt.Errorf("writing session file %s: %w", path, err)
	}
	if _, err := temporary.Write(data); err != nil {
		temporary.Close()
		return fmt.Errorf("writing session file %s: %w", path, err)
	}
	if err := temporary.Close(); err != nil {
		return fmt.Errorf("writing session file %s: %w", path, err)
	}
	if err := os.Rename(temporaryPath, path); err != nil {
		return fmt.Errorf("writing session file %s: %w", path, err)
	}

	return nil
}
