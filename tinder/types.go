// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tinder

import (
	"bytes"
	"encoding/json"
)

// Response types decode the fields this package or its callers rely on.
// The remote contract is not published, so every field is optional and
// each *Response keeps the full body in Raw for anything not modeled.

// Gender is the API's gender code. GenderAny is valid only as a
// discovery filter.
type Gender int

const (
	GenderMale   Gender = 0
	GenderFemale Gender = 1
	GenderAny    Gender = -1
)

// ReportCause is the reason code attached to a report.
type ReportCause int

const (
	// ReportOther is the only cause that carries free text.
	ReportOther               ReportCause = 0
	ReportSpam                ReportCause = 1
	ReportInappropriatePhotos ReportCause = 4
)

// AuthResponse is the body of a successful authorization.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`

	Raw json.RawMessage `json:"-"`
}

// User is a profile as returned in recommendations, matches, and user
// lookups.
type User struct {
	ID            string   `json:"_id"`
	Name          string   `json:"name,omitempty"`
	Bio           string   `json:"bio,omitempty"`
	BirthDate     string   `json:"birth_date,omitempty"`
	Gender        *Gender  `json:"gender,omitempty"`
	DistanceMiles *float64 `json:"distance_mi,omitempty"`
	PingTime      string   `json:"ping_time,omitempty"`
	Photos        []Photo  `json:"photos,omitempty"`
	Jobs          []Job    `json:"jobs,omitempty"`
	Schools       []School `json:"schools,omitempty"`
	Username      string   `json:"username,omitempty"`
}

// Photo is one profile picture.
type Photo struct {
	ID             string          `json:"id"`
	URL            string          `json:"url,omitempty"`
	ProcessedFiles []ProcessedFile `json:"processedFiles,omitempty"`
}

// ProcessedFile is one server-side rendition of a Photo.
type ProcessedFile struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Job is an employment entry on a profile.
type Job struct {
	Company *NamedEntity `json:"company,omitempty"`
	Title   *NamedEntity `json:"title,omitempty"`
}

// School is an education entry on a profile.
type School struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// NamedEntity is the {id, name} pair the API uses for companies and
// job titles.
type NamedEntity struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// RecommendationsResponse is a batch of candidate profiles. When the
// pool is exhausted or the server times out building it, Results is
// empty and Message explains why.
type RecommendationsResponse struct {
	Status  int    `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
	Results []User `json:"results"`

	Raw json.RawMessage `json:"-"`
}

// LikeResponse is the result of a like or super like.
type LikeResponse struct {
	// Match is false when no match formed, or the match object when the
	// other user had already liked back.
	Match          json.RawMessage `json:"match,omitempty"`
	LikesRemaining *int            `json:"likes_remaining,omitempty"`
	LimitExceeded  bool            `json:"limit_exceeded,omitempty"`
	SuperLikes     *SuperLikes     `json:"super_likes,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// Matched reports whether the swipe produced a match.
func (r *LikeResponse) Matched() bool {
	trimmed := bytes.TrimSpace(r.Match)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("false")) && !bytes.Equal(trimmed, []byte("null"))
}

// SuperLikes is the remaining super like allowance.
type SuperLikes struct {
	Remaining int    `json:"remaining"`
	ResetsAt  string `json:"resets_at,omitempty"`
}

// Message is one chat message in a match.
type Message struct {
	ID        string `json:"_id"`
	MatchID   string `json:"match_id,omitempty"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	Message   string `json:"message"`
	SentDate  string `json:"sent_date,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// Match is a mutual like with its conversation.
type Match struct {
	ID               string    `json:"_id"`
	Person           *User     `json:"person,omitempty"`
	Messages         []Message `json:"messages,omitempty"`
	LastActivityDate string    `json:"last_activity_date,omitempty"`
	Closed           bool      `json:"closed,omitempty"`
}

// UpdatesResponse is the activity delta since a timestamp.
type UpdatesResponse struct {
	Matches          []Match  `json:"matches"`
	Blocks           []string `json:"blocks,omitempty"`
	LastActivityDate string   `json:"last_activity_date,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// UserResponse is the body of a user lookup.
type UserResponse struct {
	Status  int   `json:"status,omitempty"`
	Results *User `json:"results"`

	Raw json.RawMessage `json:"-"`
}

// MetaResponse is the account metadata of the authenticated user.
type MetaResponse struct {
	Status int   `json:"status,omitempty"`
	User   *User `json:"user,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// ShareLinkResponse carries a shareable profile link.
type ShareLinkResponse struct {
	Link string `json:"link"`

	Raw json.RawMessage `json:"-"`
}

// Preferences are the discovery settings.
type Preferences struct {
	Discoverable  bool
	AgeMin        int
	AgeMax        int
	GenderFilter  Gender
	DistanceMiles int
}

// FacebookPicture attaches an already-uploaded Facebook photo as a
// profile picture, cropped by the given percentages.
type FacebookPicture struct {
	PictureID        string
	XDistancePercent float64
	YDistancePercent float64
	XOffsetPercent   float64
	YOffsetPercent   float64
}
