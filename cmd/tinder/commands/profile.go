// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/tinder/cmd/tinder/cli"
	"github.com/bureau-foundation/tinder/tinder"
)

type accountParams struct {
	Connection
	cli.JSONOutput
}

func (a *App) accountCommand() *cli.Command {
	var params accountParams
	return &cli.Command{
		Name:    "account",
		Summary: "Show the logged-in account",
		Usage:   "tinder account [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("account", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExactArgs(args); err != nil {
				return err
			}
			env, err := a.open(params.Connection, logger, true)
			if err != nil {
				return err
			}
			response, err := env.client.Account(ctx)
			if err := env.finish(err); err != nil {
				return err
			}
			if done, err := params.EmitJSON(a.Stdout, response.Raw); done {
				return err
			}
			if response.User == nil {
				return cli.WriteJSON(a.Stdout, response.Raw)
			}
			writeProfile(a.Stdout, response.User)
			return nil
		},
	}
}

// coordinateParams takes latitude and longitude as flags so negative
// values are not mistaken for shorthand flags.
type coordinateParams struct {
	Connection
	Lat string `json:"lat" flag:"lat" desc:"latitude in degrees (required)"`
	Lon string `json:"lon" flag:"lon" desc:"longitude in degrees (required)"`
}

func (p *coordinateParams) coordinates() (float64, float64, error) {
	if p.Lat == "" || p.Lon == "" {
		return 0, 0, cli.Validation("--lat and --lon are required")
	}
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return 0, 0, cli.Validation("invalid --lat %q: %w", p.Lat, err)
	}
	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return 0, 0, cli.Validation("invalid --lon %q: %w", p.Lon, err)
	}
	return lat, lon, nil
}

// coordinateCommand builds a command that sends a position.
func (a *App) coordinateCommand(name, summary, usage string, call func(*tinder.Client, context.Context, float64, float64) (json.RawMessage, error)) *cli.Command {
	var params coordinateParams
	return &cli.Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams(name, &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExactArgs(args); err != nil {
				return err
			}
			lat, lon, err := params.coordinates()
			if err != nil {
				return err
			}
			env, err := a.open(params.Connection, logger, true)
			if err != nil {
				return err
			}
			result, err := call(env.client, ctx, lat, lon)
			if err := env.finish(err); err != nil {
				return err
			}
			return cli.WriteJSON(a.Stdout, result)
		},
	}
}

func (a *App) positionCommand() *cli.Command {
	command := a.coordinateCommand("position", "Report the current position",
		"tinder position --lat <degrees> --lon <degrees> [flags]", (*tinder.Client).UpdatePosition)
	command.Examples = []cli.Example{
		{
			Description: "Move to Sydney",
			Command:     "tinder position --lat -33.8688 --lon 151.2093",
		},
	}
	return command
}

func (a *App) passportCommand() *cli.Command {
	return &cli.Command{
		Name:    "passport",
		Summary: "Swipe from another location",
		Subcommands: []*cli.Command{
			a.coordinateCommand("set", "Travel to a location",
				"tinder passport set --lat <degrees> --lon <degrees> [flags]", (*tinder.Client).UpdatePassport),
			a.rawCommand("passport reset", "Return to the real location", nil,
				func(ctx context.Context, client *tinder.Client, _ []string) (json.RawMessage, error) {
					return client.ResetPassport(ctx)
				}),
		},
	}
}

func (a *App) profileCommand() *cli.Command {
	return &cli.Command{
		Name:    "profile",
		Summary: "Edit the logged-in profile",
		Subcommands: []*cli.Command{
			a.rawCommand("profile gender", "Set the profile gender (male or female)", []string{"gender"},
				func(ctx context.Context, client *tinder.Client, args []string) (json.RawMessage, error) {
					gender, err := parseGender(args[0], false)
					if err != nil {
						return nil, err
					}
					return client.UpdateGender(ctx, gender)
				}),
			a.rawCommand("profile bio", "Set the profile bio", []string{"text"},
				func(ctx context.Context, client *tinder.Client, args []string) (json.RawMessage, error) {
					return client.UpdateBio(ctx, args[0])
				}),
			a.clearableCommand("job", "company-id", "Set or clear the employer",
				(*tinder.Client).UpdateJob, (*tinder.Client).DeleteJob),
			a.clearableCommand("school", "school-id", "Set or clear the school",
				(*tinder.Client).UpdateSchool, (*tinder.Client).DeleteSchool),
			a.preferencesCommand(),
			a.deleteAccountCommand(),
			a.applyCommand(),
		},
	}
}

type clearableParams struct {
	Connection
	Clear bool `json:"clear" flag:"clear" desc:"remove the entry instead of setting it"`
}

// clearableCommand builds "profile job" and "profile school": one
// positional id sets the entry, --clear removes it.
func (a *App) clearableCommand(name, argName, summary string,
	set func(*tinder.Client, context.Context, string) (json.RawMessage, error),
	remove func(*tinder.Client, context.Context) (json.RawMessage, error),
) *cli.Command {
	var params clearableParams
	return &cli.Command{
		Name:    name,
		Summary: summary,
		Usage:   fmt.Sprintf("tinder profile %s <%s> | --clear [flags]", name, argName),
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams(name, &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			expected := []string{argName}
			if params.Clear {
				expected = nil
			}
			if err := cli.ExactArgs(args, expected...); err != nil {
				return err
			}
			env, err := a.open(params.Connection, logger, true)
			if err != nil {
				return err
			}
			var result json.RawMessage
			if params.Clear {
				result, err = remove(env.client, ctx)
			} else {
				result, err = set(env.client, ctx, args[0])
			}
			if err := env.finish(err); err != nil {
				return err
			}
			return cli.WriteJSON(a.Stdout, result)
		},
	}
}

type preferencesParams struct {
	Connection
	Discoverable bool   `json:"discoverable" flag:"discoverable" desc:"show the profile to others" default:"true"`
	AgeMin       int    `json:"age_min" flag:"age-min" desc:"youngest age to show" default:"18"`
	AgeMax       int    `json:"age_max" flag:"age-max" desc:"oldest age to show" default:"55"`
	Gender       string `json:"gender" flag:"gender" desc:"gender to show: male, female, or any" default:"any"`
	Distance     int    `json:"distance" flag:"distance" desc:"maximum distance in miles" default:"50"`
}

func (a *App) preferencesCommand() *cli.Command {
	var params preferencesParams
	return &cli.Command{
		Name:    "preferences",
		Summary: "Set discovery preferences",
		Description: `Replace all discovery preferences. Flags that are not given are sent
with their default values. Values are not range-checked.`,
		Usage: "tinder profile preferences [flags]",
		Examples: []cli.Example{
			{
				Description: "Hide the profile from discovery",
				Command:     "tinder profile preferences --discoverable=false",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("preferences", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExactArgs(args); err != nil {
				return err
			}
			gender, err := parseGender(params.Gender, true)
			if err != nil {
				return err
			}
			env, err := a.open(params.Connection, logger, true)
			if err != nil {
				return err
			}
			result, err := env.client.UpdatePreferences(ctx, tinder.Preferences{
				Discoverable:  params.Discoverable,
				AgeMin:        params.AgeMin,
				AgeMax:        params.AgeMax,
				GenderFilter:  gender,
				DistanceMiles: params.Distance,
			})
			if err := env.finish(err); err != nil {
				return err
			}
			return cli.WriteJSON(a.Stdout, result)
		},
	}
}

type deleteAccountParams struct {
	Connection
	Yes bool `json:"-" flag:"yes" desc:"confirm deletion"`
}

func (a *App) deleteAccountCommand() *cli.Command {
	var params deleteAccountParams
	return &cli.Command{
		Name:    "delete",
		Summary: "Delete the account",
		Description: `Permanently delete the logged-in account and remove the local session
file. Requires --yes.`,
		Usage: "tinder profile delete --yes [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("delete", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExactArgs(args); err != nil {
				return err
			}
			if !params.Yes {
				return cli.Validation("refusing to delete the account without --yes")
			}
			env, err := a.open(params.Connection, logger, true)
			if err != nil {
				return err
			}
			result, err := env.client.DeleteAccount(ctx)
			if err := env.finish(err); err != nil {
				return err
			}
			if err := os.Remove(env.sessionPath); err != nil && !errors.Is(err, os.ErrNotExist) {
				logger.Warn("removing session file failed", "path", env.sessionPath, "error", err)
			}
			return cli.WriteJSON(a.Stdout, result)
		},
	}
}

func (a *App) usernameCommand() *cli.Command {
	return &cli.Command{
		Name:    "username",
		Summary: "Manage the profile username",
		Subcommands: []*cli.Command{
			a.rawCommand("username create", "Claim a username", []string{"username"},
				func(ctx context.Context, client *tinder.Client, args []string) (json.RawMessage, error) {
					return client.CreateUsername(ctx, args[0])
				}),
			a.rawCommand("username change", "Change the username", []string{"username"},
				func(ctx context.Context, client *tinder.Client, args []string) (json.RawMessage, error) {
					return client.ChangeUsername(ctx, args[0])
				}),
			a.rawCommand("username delete", "Release the username", nil,
				func(ctx context.Context, client *tinder.Client, _ []string) (json.RawMessage, error) {
					return client.DeleteUsername(ctx)
				}),
		},
	}
}
