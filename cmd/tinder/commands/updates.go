// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/tinder/cmd/tinder/cli"
	"github.com/bureau-foundation/tinder/tinder"
)

type updatesParams struct {
	Connection
	cli.JSONOutput
}

func (a *App) updatesCommand() *cli.Command {
	var params updatesParams
	return &cli.Command{
		Name:    "updates",
		Summary: "Fetch matches and messages since the last check",
		Description: `Fetch activity newer than the session's last activity time, then
advance that time to the newest activity the server reported. Running
updates twice in a row returns only what arrived in between.`,
		Usage: "tinder updates [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("updates", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExactArgs(args); err != nil {
				return err
			}
			env, err := a.open(params.Connection, logger, true)
			if err != nil {
				return err
			}
			response, err := env.client.Updates(ctx)
			if err := env.finish(err); err != nil {
				return err
			}
			if done, err := params.EmitJSON(a.Stdout, response.Raw); done {
				return err
			}
			writeUpdates(a.Stdout, response)
			fmt.Fprintf(a.Stdout, "last activity: %s\n", env.client.LastActivity().UTC().Format(time.RFC3339))
			return nil
		},
	}
}

type historyParams struct {
	Connection
	cli.JSONOutput
}

func (a *App) historyCommand() *cli.Command {
	var params historyParams
	return &cli.Command{
		Name:    "history",
		Summary: "Fetch the full match and message history",
		Description: `Fetch every match and message regardless of the session's last
activity time. The last activity time is not changed.`,
		Usage: "tinder history [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("history", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExactArgs(args); err != nil {
				return err
			}
			env, err := a.open(params.Connection, logger, true)
			if err != nil {
				return err
			}
			response, err := env.client.History(ctx)
			if err := env.finish(err); err != nil {
				return err
			}
			if done, err := params.EmitJSON(a.Stdout, response.Raw); done {
				return err
			}
			writeUpdates(a.Stdout, response)
			return nil
		},
	}
}

// writeUpdates prints a summary line followed by one line per match
// with its newest message.
func writeUpdates(w io.Writer, response *tinder.UpdatesResponse) {
	fmt.Fprintf(w, "%d matches, %d blocks\n", len(response.Matches), len(response.Blocks))
	for _, match := range response.Matches {
		name := ""
		if match.Person != nil {
			name = match.Person.Name
		}
		line := fmt.Sprintf("%s %s (%d messages)", match.ID, name, len(match.Messages))
		if count := len(match.Messages); count > 0 {
			line += ": " + oneLine(match.Messages[count-1].Message, 60)
		}
		fmt.Fprintln(w, line)
	}
}
