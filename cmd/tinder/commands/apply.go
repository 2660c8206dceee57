// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/tinder/cmd/tinder/cli"
	"github.com/bureau-foundation/tinder/tinder"
)

// profileDocument is the file format of "tinder profile apply": JSON
// with comments and trailing commas. Absent fields are left alone.
type profileDocument struct {
	Bio    *string `json:"bio"`
	Gender *string `json:"gender"`
	// Job and School hold an id; an empty string clears the entry.
	Job         *string              `json:"job"`
	School      *string              `json:"school"`
	Preferences *preferencesDocument `json:"preferences"`
}

// preferencesDocument mirrors the "profile preferences" flags, with the
// same defaults for absent fields.
type preferencesDocument struct {
	Discoverable  *bool   `json:"discoverable"`
	AgeMin        *int    `json:"age_min"`
	AgeMax        *int    `json:"age_max"`
	Gender        *string `json:"gender"`
	DistanceMiles *int    `json:"distance_miles"`
}

// profileStep is one API call derived from a profileDocument.
type profileStep struct {
	name string
	run  func(ctx context.Context, client *tinder.Client) (json.RawMessage, error)
}

// parseProfileDocument strips comments and trailing commas and decodes
// the result strictly: unknown fields are an error.
func parseProfileDocument(data []byte) (*profileDocument, error) {
	decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	decoder.DisallowUnknownFields()

	var document profileDocument
	if err := decoder.Decode(&document); err != nil {
		return nil, err
	}
	return &document, nil
}

// plan converts the document into API calls in a fixed order. All
// values are parsed here so a bad document fails before any request.
func (d *profileDocument) plan() ([]profileStep, error) {
	var steps []profileStep

	if d.Gender != nil {
		gender, err := parseGender(*d.Gender, false)
		if err != nil {
			return nil, err
		}
		steps = append(steps, profileStep{"gender", func(ctx context.Context, client *tinder.Client) (json.RawMessage, error) {
			return client.UpdateGender(ctx, gender)
		}})
	}

	if d.Bio != nil {
		bio := *d.Bio
		steps = append(steps, profileStep{"bio", func(ctx context.Context, client *tinder.Client) (json.RawMessage, error) {
			return client.UpdateBio(ctx, bio)
		}})
	}

	if d.Job != nil {
		if id := *d.Job; id == "" {
			steps = append(steps, profileStep{"job (clear)", func(ctx context.Context, client *tinder.Client) (json.RawMessage, error) {
				return client.DeleteJob(ctx)
			}})
		} else {
			steps = append(steps, profileStep{"job", func(ctx context.Context, client *tinder.Client) (json.RawMessage, error) {
				return client.UpdateJob(ctx, id)
			}})
		}
	}

	if d.School != nil {
		if id := *d.School; id == "" {
			steps = append(steps, profileStep{"school (clear)", func(ctx context.Context, client *tinder.Client) (json.RawMessage, error) {
				return client.DeleteSchool(ctx)
			}})
		} else {
			steps = append(steps, profileStep{"school", func(ctx context.Context, client *tinder.Client) (json.RawMessage, error) {
				return client.UpdateSchool(ctx, id)
			}})
		}
	}

	if d.Preferences != nil {
		preferences, err := d.Preferences.resolve()
		if err != nil {
			return nil, err
		}
		steps = append(steps, profileStep{"preferences", func(ctx context.Context, client *tinder.Client) (json.RawMessage, error) {
			return client.UpdatePreferences(ctx, preferences)
		}})
	}

	return steps, nil
}

func (p *preferencesDocument) resolve() (tinder.Preferences, error) {
	preferences := tinder.Preferences{
		Discoverable:  true,
		AgeMin:        18,
		AgeMax:        55,
		GenderFilter:  tinder.GenderAny,
		DistanceMiles: 50,
	}
	if p.Discoverable != nil {
		preferences.Discoverable = *p.Discoverable
	}
	if p.AgeMin != nil {
		preferences.AgeMin = *p.AgeMin
	}
	if p.AgeMax != nil {
		preferences.AgeMax = *p.AgeMax
	}
	if p.DistanceMiles != nil {
		preferences.DistanceMiles = *p.DistanceMiles
	}
	if p.Gender != nil {
		gender, err := parseGender(*p.Gender, true)
		if err != nil {
			return tinder.Preferences{}, err
		}
		preferences.GenderFilter = gender
	}
	return preferences, nil
}

type applyParams struct {
	Connection
	DryRun bool `json:"-" flag:"dry-run" desc:"print the changes without sending them"`
}

func (a *App) applyCommand() *cli.Command {
	var params applyParams
	return &cli.Command{
		Name:    "apply",
		Summary: "Apply a profile document",
		Description: `Read a JSONC profile document and send one update per field present.
Fields: bio, gender, job, school (an empty string clears job or
school), and preferences {discoverable, age_min, age_max, gender,
distance_miles}. Updates are sent in that order; the first failure
stops the run.`,
		Usage: "tinder profile apply <file> [flags]",
		Examples: []cli.Example{
			{
				Description: "Preview the updates a document makes",
				Command:     "tinder profile apply profile.jsonc --dry-run",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("apply", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExactArgs(args, "file"); err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return cli.Validation("reading profile document: %w", err)
			}
			document, err := parseProfileDocument(data)
			if err != nil {
				return cli.Validation("parsing %s: %w", args[0], err)
			}
			steps, err := document.plan()
			if err != nil {
				return err
			}
			if len(steps) == 0 {
				fmt.Fprintf(a.Stdout, "%s: nothing to apply\n", args[0])
				return nil
			}

			if params.DryRun {
				for _, step := range steps {
					fmt.Fprintf(a.Stdout, "would update %s\n", step.name)
				}
				return nil
			}

			env, err := a.open(params.Connection, logger, true)
			if err != nil {
				return err
			}
			for _, step := range steps {
				if _, err := step.run(ctx, env.client); err != nil {
					return env.finish(fmt.Errorf("updating %s: %w", step.name, err))
				}
				fmt.Fprintf(a.Stdout, "updated %s\n", step.name)
			}
			return env.finish(nil)
		},
	}
}
