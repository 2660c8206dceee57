// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/tinder/cmd/tinder/cli"
	"github.com/bureau-foundation/tinder/tinder"
)

func (a *App) photoCommand() *cli.Command {
	return &cli.Command{
		Name:    "photo",
		Summary: "Manage profile pictures",
		Subcommands: []*cli.Command{
			a.photoUploadCommand(),
			a.photoFacebookCommand(),
			a.rawCommand("photo delete", "Remove a profile picture", []string{"picture-id"},
				func(ctx context.Context, client *tinder.Client, args []string) (json.RawMessage, error) {
					return client.DeletePicture(ctx, args[0])
				}),
		},
	}
}

type photoUploadParams struct {
	Connection
}

func (a *App) photoUploadCommand() *cli.Command {
	var params photoUploadParams
	return &cli.Command{
		Name:    "upload",
		Summary: "Upload a picture file",
		Description: `Upload a local image as a profile picture. Requires a session with a
user id, which "tinder login" records.`,
		Usage: "tinder photo upload <file> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("upload", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExactArgs(args, "file"); err != nil {
				return err
			}
			file, err := os.Open(args[0])
			if err != nil {
				return cli.Validation("opening picture: %w", err)
			}
			defer file.Close()

			env, err := a.open(params.Connection, logger, true)
			if err != nil {
				return err
			}
			result, err := env.client.UploadPicture(ctx, filepath.Base(args[0]), file)
			if err := env.finish(err); err != nil {
				return err
			}
			return cli.WriteJSON(a.Stdout, result)
		},
	}
}

type photoFacebookParams struct {
	Connection
	XDistance float64 `json:"xdistance_percent" flag:"xdistance" desc:"crop width as a fraction of the picture" default:"1"`
	YDistance float64 `json:"ydistance_percent" flag:"ydistance" desc:"crop height as a fraction of the picture" default:"1"`
	XOffset   float64 `json:"xoffset_percent" flag:"xoffset" desc:"crop left edge as a fraction of the picture" default:"0"`
	YOffset   float64 `json:"yoffset_percent" flag:"yoffset" desc:"crop top edge as a fraction of the picture" default:"0"`
}

func (a *App) photoFacebookCommand() *cli.Command {
	var params photoFacebookParams
	return &cli.Command{
		Name:    "facebook",
		Summary: "Use a Facebook photo as a profile picture",
		Description: `Attach a photo already on Facebook, cropped by the given fractions.
The defaults keep the whole picture.`,
		Usage: "tinder photo facebook <picture-id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("facebook", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExactArgs(args, "picture-id"); err != nil {
				return err
			}
			env, err := a.open(params.Connection, logger, true)
			if err != nil {
				return err
			}
			result, err := env.client.UploadFacebookPicture(ctx, tinder.FacebookPicture{
				PictureID:        args[0],
				XDistancePercent: params.XDistance,
				YDistancePercent: params.YDistance,
				XOffsetPercent:   params.XOffset,
				YOffsetPercent:   params.YOffset,
			})
			if err := env.finish(err); err != nil {
				return err
			}
			return cli.WriteJSON(a.Stdout, result)
		},
	}
}
