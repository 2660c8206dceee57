// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"log/slog"

	"github.com/bureau-foundation/tinder/cmd/tinder/cli"
	"github.com/bureau-foundation/tinder/lib/config"
	"github.com/bureau-foundation/tinder/tinder"
)

// Connection holds the flags every API command shares. It is embedded
// in each command's parameter struct.
type Connection struct {
	ConfigPath  string `json:"-" flag:"config" desc:"path to tinder.yaml" env:"TINDER_CONFIG"`
	SessionFile string `json:"-" flag:"session-file" desc:"session file (default: $TINDER_SESSION_FILE, then session.file from the config)"`
}

// environment is a loaded configuration plus a client restored from
// the session file.
type environment struct {
	config      *config.Config
	client      *tinder.Client
	sessionPath string
	logger      *slog.Logger

	// restored is the client session as first constructed; finish saves
	// only when it changed.
	restored tinder.Session
}

// open loads configuration and the saved session and builds a client.
// When requireSession is set, a missing session file is an error
// pointing at "tinder login".
func (a *App) open(conn Connection, logger *slog.Logger, requireSession bool) (*environment, error) {
	cfg, err := loadConfig(conn.ConfigPath)
	if err != nil {
		return nil, err
	}

	level, _ := cli.ParseLevel(cfg.Log.Level)
	if a.Level != nil {
		a.Level.Set(level)
	}

	clientConfig, err := cfg.ClientConfig()
	if err != nil {
		return nil, cli.Validation("invalid config: %w", err)
	}

	sessionPath := conn.SessionFile
	if sessionPath == "" {
		sessionPath = cli.SessionFilePath(cfg.Session.File)
	}

	session, err := cli.LoadSession(sessionPath)
	switch {
	case err == nil:
		clientConfig.Session = session
	case errors.Is(err, cli.ErrNoSession) && !requireSession:
	case errors.Is(err, cli.ErrNoSession):
		return nil, cli.Forbidden("%w", err)
	default:
		return nil, cli.Internal("%w", err)
	}

	clientConfig.HTTPClient = a.HTTPClient
	clientConfig.Clock = a.Clock
	clientConfig.Logger = logger

	client, err := tinder.NewClient(clientConfig)
	if err != nil {
		return nil, cli.Validation("%w", err)
	}

	return &environment{
		config:      cfg,
		client:      client,
		sessionPath: sessionPath,
		logger:      logger,
		restored:    client.Session(),
	}, nil
}

// loadConfig loads and validates the configuration. An empty path
// falls back to TINDER_CONFIG, then to the defaults.
func loadConfig(path string) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, cli.Validation("%w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, cli.Validation("invalid config: %w", err)
	}
	return cfg, nil
}

// finish persists the session if the command changed it and classifies
// err for the exit code. A save failure is reported only when the
// command itself succeeded.
func (e *environment) finish(err error) error {
	current := e.client.Session()
	if current.AuthToken != "" && current != e.restored {
		if saveErr := cli.SaveSession(current, e.sessionPath); saveErr != nil {
			if err == nil {
				return cli.Internal("%w", saveErr)
			}
			e.logger.Warn("saving session failed", "path", e.sessionPath, "error", saveErr)
		} else {
			e.logger.Debug("saved session", "path", e.sessionPath)
		}
	}
	return cli.Classify(err)
}
