// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"strconv"
	"strings"

	"github.com/bureau-foundation/tinder/cmd/tinder/cli"
	"github.com/bureau-foundation/tinder/tinder"
)

// parseGender accepts male, female, any (when allowAny), or a numeric
// code. Numeric codes are passed through unchecked.
func parseGender(value string, allowAny bool) (tinder.Gender, error) {
	switch strings.ToLower(value) {
	case "male", "m":
		return tinder.GenderMale, nil
	case "female", "f":
		return tinder.GenderFemale, nil
	case "any", "all", "both":
		if allowAny {
			return tinder.GenderAny, nil
		}
		return 0, cli.Validation("gender %q is only valid as a discovery filter", value)
	}
	code, err := strconv.Atoi(value)
	if err != nil {
		if allowAny {
			return 0, cli.Validation("gender must be male, female, any, or a numeric code (got %q)", value)
		}
		return 0, cli.Validation("gender must be male, female, or a numeric code (got %q)", value)
	}
	return tinder.Gender(code), nil
}

// parseCause accepts other, spam, photos, or a numeric cause code.
func parseCause(value string) (tinder.ReportCause, error) {
	switch strings.ToLower(value) {
	case "other":
		return tinder.ReportOther, nil
	case "spam":
		return tinder.ReportSpam, nil
	case "photos", "inappropriate-photos":
		return tinder.ReportInappropriatePhotos, nil
	}
	code, err := strconv.Atoi(value)
	if err != nil {
		return 0, cli.Validation("cause must be other, spam, photos, or a numeric code (got %q)", value)
	}
	return tinder.ReportCause(code), nil
}
