// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the tinder CLI command tree on top of the
// tinder client library.
//
// Every command that talks to the API loads the YAML configuration
// (--config or TINDER_CONFIG), restores the saved session, runs one
// client operation, and saves the session back when it changed (after
// "login", "token set" and "updates").
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/bureau-foundation/tinder/cmd/tinder/cli"
	"github.com/bureau-foundation/tinder/lib/clock"
	"github.com/bureau-foundation/tinder/lib/version"
)

// App carries the process-wide dependencies shared by every command.
// Tests substitute the writers, HTTP client and clock.
type App struct {
	// Stdout receives command results.
	Stdout io.Writer

	// Stderr receives prompts.
	Stderr io.Writer

	// Level is the logger's level, set from log.level once the
	// configuration is loaded.
	Level *slog.LevelVar

	// HTTPClient is passed to the tinder client. nil means
	// http.DefaultClient.
	HTTPClient *http.Client

	// Clock is passed to the tinder client.
	Clock clock.Clock
}

// NewApp returns an App wired to the real process environment.
func NewApp() *App {
	return &App{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Level:  new(slog.LevelVar),
		Clock:  clock.Real(),
	}
}

// Root builds and returns the complete tinder command tree.
func Root(app *App) *cli.Command {
	return &cli.Command{
		Name: "tinder",
		Description: `tinder: command-line client for the Tinder API.

Log in once with a Facebook access token; the resulting session is saved
to ~/.config/tinder/session.json (mode 0600) and used by every other
command.`,
		Subcommands: []*cli.Command{
			app.loginCommand(),
			app.onlineCommand(),
			app.tokenCommand(),
			app.recsCommand(),
			app.likeCommand(),
			app.superLikeCommand(),
			app.passCommand(),
			app.unmatchCommand(),
			app.messageCommand(),
			app.userCommand(),
			app.updatesCommand(),
			app.historyCommand(),
			app.accountCommand(),
			app.positionCommand(),
			app.profileCommand(),
			app.usernameCommand(),
			app.photoCommand(),
			app.shareCommand(),
			app.reportCommand(),
			app.passportCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					if err := cli.ExactArgs(args); err != nil {
						return err
					}
					fmt.Fprintf(app.Stdout, "tinder %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Log in (prompts for the Facebook access token)",
				Command:     "tinder login 100004329431245",
			},
			{
				Description: "Check that the API is reachable",
				Command:     "tinder online",
			},
			{
				Description: "List ten recommended profiles",
				Command:     "tinder recs --limit 10",
			},
			{
				Description: "Fetch new matches and messages since the last check",
				Command:     "tinder updates --json",
			},
			{
				Description: "Apply a profile document",
				Command:     "tinder profile apply profile.jsonc",
			},
		},
	}
}
