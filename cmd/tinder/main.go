// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Command tinder is a command-line client for the Tinder API.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bureau-foundation/tinder/cmd/tinder/cli"
	"github.com/bureau-foundation/tinder/cmd/tinder/commands"
)

func main() {
	if err := run(); err != nil {
		code := 1
		var coder interface{ ExitCode() int }
		if errors.As(err, &coder) {
			code = coder.ExitCode()
		}
		// Commands that print their own verdict (like "online") return an
		// ExitError; don't add a redundant "error:" line for those.
		if !cli.Silent(err) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(code)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := commands.NewApp()
	logger := cli.NewCommandLogger(app.Level)
	return commands.Root(app).Execute(ctx, os.Args[1:], logger)
}
