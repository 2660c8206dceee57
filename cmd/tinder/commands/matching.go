// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/tinder/cmd/tinder/cli"
	"github.com/bureau-foundation/tinder/tinder"
)

type recsParams struct {
	Connection
	cli.JSONOutput
	Limit int `json:"limit" flag:"limit,n" desc:"maximum number of profiles to request" default:"10"`
}

func (a *App) recsCommand() *cli.Command {
	var params recsParams
	return &cli.Command{
		Name:    "recs",
		Summary: "List recommended profiles",
		Usage:   "tinder recs [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("recs", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExactArgs(args); err != nil {
				return err
			}
			env, err := a.open(params.Connection, logger, true)
			if err != nil {
				return err
			}
			response, err := env.client.Recommendations(ctx, params.Limit)
			if err := env.finish(err); err != nil {
				return err
			}

			if done, err := params.EmitJSON(a.Stdout, response.Raw); done {
				return err
			}
			if len(response.Results) == 0 {
				if response.Message != "" {
					fmt.Fprintf(a.Stdout, "no recommendations: %s\n", response.Message)
				} else {
					fmt.Fprintln(a.Stdout, "no recommendations")
				}
				return nil
			}
			writeUsers(a.Stdout, response.Results)
			return nil
		},
	}
}

// writeUsers prints one tab-aligned row per user.
func writeUsers(w io.Writer, users []tinder.User) {
	table := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(table, "ID\tNAME\tDISTANCE\tBIO")
	for _, user := range users {
		distance := "-"
		if user.DistanceMiles != nil {
			distance = fmt.Sprintf("%.0f mi", *user.DistanceMiles)
		}
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\n", user.ID, user.Name, distance, oneLine(user.Bio, 40))
	}
	table.Flush()
}

// oneLine collapses whitespace and truncates to limit runes.
func oneLine(text string, limit int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-3]) + "..."
}

type swipeParams struct {
	Connection
	cli.JSONOutput
}

func (a *App) likeCommand() *cli.Command {
	return a.swipeCommand("like", "Like a profile", (*tinder.Client).Like)
}

func (a *App) superLikeCommand() *cli.Command {
	return a.swipeCommand("superlike", "Super like a profile", (*tinder.Client).SuperLike)
}

func (a *App) swipeCommand(name, summary string, swipe func(*tinder.Client, context.Context, string) (*tinder.LikeResponse, error)) *cli.Command {
	var params swipeParams
	return &cli.Command{
		Name:    name,
		Summary: summary,
		Usage:   "tinder " + name + " <user-id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams(name, &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExactArgs(args, "user-id"); err != nil {
				return err
			}
			env, err := a.open(params.Connection, logger, true)
			if err != nil {
				return err
			}
			response, err := swipe(env.client, ctx, args[0])
			if err := env.finish(err); err != nil {
				return err
			}

			if done, err := params.EmitJSON(a.Stdout, response.Raw); done {
				return err
			}
			if response.Matched() {
				fmt.Fprintf(a.Stdout, "matched with %s\n", args[0])
			} else {
				fmt.Fprintf(a.Stdout, "no match with %s\n", args[0])
			}
			if response.LimitExceeded {
				fmt.Fprintln(a.Stdout, "like limit exceeded")
			}
			if response.LikesRemaining != nil {
				fmt.Fprintf(a.Stdout, "likes remaining: %d\n", *response.LikesRemaining)
			}
			if response.SuperLikes != nil {
				fmt.Fprintf(a.Stdout, "super likes remaining: %d\n", response.SuperLikes.Remaining)
			}
			return nil
		},
	}
}

// rawParams is the parameter struct of commands whose response has no
// stable shape: they print the body as JSON regardless of --json.
type rawParams struct {
	Connection
}

// rawCommand builds a command that takes exactly the named positional
// arguments, calls one client operation, and prints its raw JSON result.
// path is the command's position below the root, e.g. "profile bio".
func (a *App) rawCommand(path, summary string, argNames []string, call func(ctx context.Context, client *tinder.Client, args []string) (json.RawMessage, error)) *cli.Command {
	var params rawParams
	name := path[strings.LastIndex(path, " ")+1:]
	usage := "tinder " + path
	for _, argName := range argNames {
		usage += " <" + argName + ">"
	}
	return &cli.Command{
		Name:    name,
		Summary: summary,
		Usage:   usage + " [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams(name, &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExactArgs(args, argNames...); err != nil {
				return err
			}
			env, err := a.open(params.Connection, logger, true)
			if err != nil {
				return err
			}
			result, err := call(ctx, env.client, args)
			if err := env.finish(err); err != nil {
				return err
			}
			return cli.WriteJSON(a.Stdout, result)
		},
	}
}

func (a *App) passCommand() *cli.Command {
	return a.rawCommand("pass", "Pass on a profile", []string{"user-id"},
		func(ctx context.Context, client *tinder.Client, args []string) (json.RawMessage, error) {
			return client.Pass(ctx, args[0])
		})
}

func (a *App) unmatchCommand() *cli.Command {
	return a.rawCommand("unmatch", "Remove a match", []string{"match-id"},
		func(ctx context.Context, client *tinder.Client, args []string) (json.RawMessage, error) {
			return client.Unmatch(ctx, args[0])
		})
}

type messageParams struct {
	Connection
	cli.JSONOutput
}

func (a *App) messageCommand() *cli.Command {
	var params messageParams
	return &cli.Command{
		Name:    "message",
		Summary: "Send a chat message to a match",
		Usage:   "tinder message <match-id> <text> [flags]",
		Examples: []cli.Example{
			{
				Description: "Send a message",
				Command:     `tinder message 52b4d9ed6c5685412c0002a1 "hello there"`,
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("message", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExactArgs(args, "match-id", "text"); err != nil {
				return err
			}
			env, err := a.open(params.Connection, logger, true)
			if err != nil {
				return err
			}
			message, err := env.client.SendMessage(ctx, args[0], args[1])
			if err := env.finish(err); err != nil {
				return err
			}
			if done, err := params.EmitJSON(a.Stdout, message); done {
				return err
			}
			if message.ID != "" {
				fmt.Fprintf(a.Stdout, "sent message %s\n", message.ID)
			} else {
				fmt.Fprintln(a.Stdout, "sent")
			}
			return nil
		},
	}
}

type userParams struct {
	Connection
	cli.JSONOutput
}

func (a *App) userCommand() *cli.Command {
	var params userParams
	return &cli.Command{
		Name:    "user",
		Summary: "Show another user's profile",
		Usage:   "tinder user <user-id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("user", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExactArgs(args, "user-id"); err != nil {
				return err
			}
			env, err := a.open(params.Connection, logger, true)
			if err != nil {
				return err
			}
			response, err := env.client.User(ctx, args[0])
			if err := env.finish(err); err != nil {
				return err
			}
			if done, err := params.EmitJSON(a.Stdout, response.Raw); done {
				return err
			}
			if response.Results == nil {
				return cli.NotFound("user %s: no profile in response", args[0])
			}
			writeProfile(a.Stdout, response.Results)
			return nil
		},
	}
}

// writeProfile prints the modeled fields of one profile.
func writeProfile(w io.Writer, user *tinder.User) {
	fmt.Fprintf(w, "id:       %s\n", user.ID)
	if user.Name != "" {
		fmt.Fprintf(w, "name:     %s\n", user.Name)
	}
	if user.Username != "" {
		fmt.Fprintf(w, "username: %s\n", user.Username)
	}
	if user.BirthDate != "" {
		fmt.Fprintf(w, "born:     %s\n", user.BirthDate)
	}
	if user.DistanceMiles != nil {
		fmt.Fprintf(w, "distance: %.0f mi\n", *user.DistanceMiles)
	}
	if user.Bio != "" {
		fmt.Fprintf(w, "bio:      %s\n", oneLine(user.Bio, 200))
	}
	for _, photo := range user.Photos {
		fmt.Fprintf(w, "photo:    %s %s\n", photo.ID, photo.URL)
	}
}

type shareParams struct {
	Connection
	cli.JSONOutput
}

func (a *App) shareCommand() *cli.Command {
	var params shareParams
	return &cli.Command{
		Name:    "share",
		Summary: "Create a shareable link to a profile",
		Usage:   "tinder share <user-id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("share", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExactArgs(args, "user-id"); err != nil {
				return err
			}
			env, err := a.open(params.Connection, logger, true)
			if err != nil {
				return err
			}
			response, err := env.client.ShareLink(ctx, args[0])
			if err := env.finish(err); err != nil {
				return err
			}
			if done, err := params.EmitJSON(a.Stdout, response.Raw); done {
				return err
			}
			fmt.Fprintln(a.Stdout, response.Link)
			return nil
		},
	}
}

type reportParams struct {
	Connection
	Cause string `json:"cause" flag:"cause" desc:"report reason: spam, photos, other, or a numeric code" default:"other"`
	Text  string `json:"text" flag:"text" desc:"free-text explanation (sent only with --cause other)"`
}

func (a *App) reportCommand() *cli.Command {
	var params reportParams
	return &cli.Command{
		Name:    "report",
		Summary: "Report a user",
		Usage:   "tinder report <user-id> [flags]",
		Examples: []cli.Example{
			{
				Description: "Report a spam account",
				Command:     "tinder report 52b4d9ed6c5685412c0002a1 --cause spam",
			},
			{
				Description: "Report with an explanation",
				Command:     `tinder report 52b4d9ed6c5685412c0002a1 --text "fake profile"`,
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("report", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExactArgs(args, "user-id"); err != nil {
				return err
			}
			cause, err := parseCause(params.Cause)
			if err != nil {
				return err
			}
			if params.Text != "" && cause != tinder.ReportOther {
				logger.Warn("--text is only sent with --cause other", "cause", params.Cause)
			}
			env, err := a.open(params.Connection, logger, true)
			if err != nil {
				return err
			}
			result, err := env.client.Report(ctx, args[0], cause, params.Text)
			if err := env.finish(err); err != nil {
				return err
			}
			return cli.WriteJSON(a.Stdout, result)
		},
	}
}
