// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/tinder/cmd/tinder/cli"
	"github.com/bureau-foundation/tinder/lib/secret"
	"github.com/bureau-foundation/tinder/tinder"
)

type loginParams struct {
	Connection
	cli.JSONOutput
	TokenFile string `json:"-" flag:"token-file" desc:"read the Facebook access token from a file (- for stdin) instead of prompting"`
}

func (a *App) loginCommand() *cli.Command {
	var params loginParams
	return &cli.Command{
		Name:    "login",
		Summary: "Exchange a Facebook access token for an API session",
		Description: `Authorize with a Facebook user id and access token. The returned API
token and user id are saved to the session file for later commands.

The access token is read from --token-file, or prompted for without
echo when stdin is a terminal.`,
		Usage: "tinder login <facebook-id> [flags]",
		Examples: []cli.Example{
			{
				Description: "Log in, prompting for the token",
				Command:     "tinder login 100004329431245",
			},
			{
				Description: "Log in with the token on stdin",
				Command:     "fb-token | tinder login 100004329431245 --token-file -",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("login", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExactArgs(args, "facebook-id"); err != nil {
				return err
			}

			env, err := a.open(params.Connection, logger, false)
			if err != nil {
				return err
			}

			token, err := a.readToken(params.TokenFile, "Facebook access token: ")
			if err != nil {
				return err
			}
			defer token.Close()

			response, err := env.client.Authorize(ctx, token.String(), args[0])
			if err := env.finish(err); err != nil {
				return err
			}

			if done, err := params.EmitJSON(a.Stdout, response.Raw); done {
				return err
			}
			fmt.Fprintf(a.Stdout, "logged in as %s\n", response.User.ID)
			fmt.Fprintf(a.Stdout, "session saved to %s\n", env.sessionPath)
			return nil
		},
	}
}

// readToken reads a credential from path, or prompts on a.Stderr when
// path is empty.
func (a *App) readToken(path, prompt string) (*secret.Buffer, error) {
	if path != "" {
		token, err := secret.ReadFromPath(path)
		if err != nil {
			return nil, cli.Validation("reading token from %s: %w", path, err)
		}
		return token, nil
	}
	token, err := secret.Prompt(prompt, a.Stderr)
	if err != nil {
		return nil, cli.Validation("reading token: %w", err)
	}
	return token, nil
}

func (a *App) tokenCommand() *cli.Command {
	return &cli.Command{
		Name:    "token",
		Summary: "Show or replace the saved API token",
		Subcommands: []*cli.Command{
			a.tokenShowCommand(),
			a.tokenSetCommand(),
		},
	}
}

type tokenShowParams struct {
	Connection
	cli.JSONOutput
}

func (a *App) tokenShowCommand() *cli.Command {
	var params tokenShowParams
	return &cli.Command{
		Name:    "show",
		Summary: "Print the saved API token",
		Description: `Print the API token from the session file. With --json, print the
whole session (token, user id and last activity time).`,
		Usage: "tinder token show [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("show", &params)
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExactArgs(args); err != nil {
				return err
			}
			env, err := a.open(params.Connection, logger, true)
			if err != nil {
				return err
			}
			session := env.client.Session()
			if done, err := params.EmitJSON(a.Stdout, session); done {
				return err
			}
			fmt.Fprintln(a.Stdout, session.AuthToken)
			return nil
		},
	}
}

type tokenSetParams struct {
	Connection
	TokenFile string `json:"-" flag:"token-file" desc:"read the API token from a file (- for stdin) instead of prompting"`
}

func (a *App) tokenSetCommand() *cli.Command {
	var params tokenSetParams
	return &cli.Command{
		Name:    "set",
		Summary: "Save an API token obtained elsewhere",
		Description: `Replace the saved API token, for example with one copied from another
device. The saved user id and last activity time are kept.`,
		Usage: "tinder token set [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("set", &params)
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExactArgs(args); err != nil {
				return err
			}
			env, err := a.open(params.Connection, logger, false)
			if err != nil {
				return err
			}
			token, err := a.readToken(params.TokenFile, "API token: ")
			if err != nil {
				return err
			}
			defer token.Close()

			env.client.SetAuthToken(token.String())
			if err := env.finish(nil); err != nil {
				return err
			}
			fmt.Fprintf(a.Stdout, "token saved to %s\n", env.sessionPath)
			return nil
		},
	}
}

type onlineParams struct {
	ConfigPath string `json:"-" flag:"config" desc:"path to tinder.yaml" env:"TINDER_CONFIG"`
}

func (a *App) onlineCommand() *cli.Command {
	var params onlineParams
	return &cli.Command{
		Name:    "online",
		Summary: "Check whether the API is reachable",
		Description: `Send an unauthenticated request to the API. A healthy API rejects it
with 401; that prints "online" and exits 0. Anything else prints
"offline" and exits 1. Bounded by api.online_timeout (default 5s).`,
		Usage: "tinder online [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("online", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExactArgs(args); err != nil {
				return err
			}
			cfg, err := loadConfig(params.ConfigPath)
			if err != nil {
				return err
			}

			online := tinder.IsOnline(ctx, tinder.OnlineConfig{
				BaseURL:    cfg.API.URL,
				HTTPClient: a.HTTPClient,
				Timeout:    cfg.OnlineTimeout(),
			})
			if !online {
				fmt.Fprintln(a.Stdout, "offline")
				return &cli.ExitError{Code: 1}
			}
			fmt.Fprintln(a.Stdout, "online")
			return nil
		},
	}
}
