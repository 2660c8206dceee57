// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tinder

import "net/url"

// Endpoint paths, relative to the API origin.
const (
	pathAuth            = "auth"
	pathRecommendations = "user/recs"
	pathUpdates         = "updates"
	pathPing            = "user/ping"
	pathMeta            = "meta"
	pathProfile         = "profile"
	pathJob             = "profile/job"
	pathSchool          = "profile/school"
	pathUsername        = "profile/username"
	pathMedia           = "media"
	pathPassportTravel  = "passport/user/travel"
	pathPassportReset   = "passport/user/reset"

	// pathImage is relative to the image origin.
	pathImage = "image"
)

func pathMatch(matchID string) string { return "user/matches/" + url.PathEscape(matchID) }

func pathLike(userID string) string { return "like/" + url.PathEscape(userID) }

func pathSuperLike(userID string) string { return "like/" + url.PathEscape(userID) + "/super" }

func pathPass(userID string) string { return "pass/" + url.PathEscape(userID) }

func pathUser(userID string) string { return "user/" + url.PathEscape(userID) }

func pathShare(userID string) string { return "user/" + url.PathEscape(userID) + "/share" }

func pathReport(userID string) string { return "report/" + url.PathEscape(userID) }
