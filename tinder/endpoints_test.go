// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tinder

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"testing"

	"github.com/bureau-foundation/tinder/lib/testutil"
)

// endpointReply decodes into every typed response except UserResponse,
// whose results member is an object; rows override it through reply.
const endpointReply = `{"token":"T","user":{"_id":"U1"},"matches":[],"results":[]}`

func TestEndpoints(t *testing.T) {
	tests := []struct {
		name       string
		call       func(ctx context.Context, client *Client) error
		wantMethod string
		wantPath   string
		// wantBody is the expected JSON payload, or "" for no body.
		wantBody string
		// reply is the response body; "" means endpointReply.
		reply string
	}{
		{
			name: "Authorize",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.Authorize(ctx, "fbt", "fbi")
				return err
			},
			wantMethod: http.MethodPost, wantPath: "auth",
			wantBody: `{"facebook_token":"fbt","facebook_id":"fbi","locale":"en"}`,
		},
		{
			name: "Recommendations",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.Recommendations(ctx, 10)
				return err
			},
			wantMethod: http.MethodGet, wantPath: "user/recs",
			wantBody: `{"limit":10}`,
		},
		{
			name: "SendMessage",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.SendMessage(ctx, "M1", "hello")
				return err
			},
			wantMethod: http.MethodPost, wantPath: "user/matches/M1",
			wantBody: `{"message":"hello"}`,
		},
		{
			name: "Like",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.Like(ctx, "U2")
				return err
			},
			wantMethod: http.MethodGet, wantPath: "like/U2",
		},
		{
			name: "SuperLike",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.SuperLike(ctx, "U2")
				return err
			},
			wantMethod: http.MethodGet, wantPath: "like/U2/super",
		},
		{
			name: "Pass",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.Pass(ctx, "U2")
				return err
			},
			wantMethod: http.MethodGet, wantPath: "pass/U2",
		},
		{
			name: "Unmatch",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.Unmatch(ctx, "M1")
				return err
			},
			wantMethod: http.MethodDelete, wantPath: "user/matches/M1",
		},
		{
			name: "Updates",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.Updates(ctx)
				return err
			},
			wantMethod: http.MethodPost, wantPath: "updates",
			wantBody: `{"last_activity_date":"2026-03-14T15:09:26.535Z"}`,
		},
		{
			name: "History",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.History(ctx)
				return err
			},
			wantMethod: http.MethodPost, wantPath: "updates",
			wantBody: `{"last_activity_date":""}`,
		},
		{
			name: "UpdatePosition",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.UpdatePosition(ctx, 40.7128, -74.006)
				return err
			},
			wantMethod: http.MethodPost, wantPath: "user/ping",
			wantBody: `{"lat":40.7128,"lon":-74.006}`,
		},
		{
			name: "Account",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.Account(ctx)
				return err
			},
			wantMethod: http.MethodGet, wantPath: "meta",
		},
		{
			name: "UpdateGender",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.UpdateGender(ctx, GenderFemale)
				return err
			},
			wantMethod: http.MethodPost, wantPath: "profile",
			wantBody: `{"gender":1}`,
		},
		{
			name: "UpdateBio",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.UpdateBio(ctx, "climber, cook")
				return err
			},
			wantMethod: http.MethodPost, wantPath: "profile",
			wantBody: `{"bio":"climber, cook"}`,
		},
		{
			name: "UpdateJob",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.UpdateJob(ctx, "C1")
				return err
			},
			wantMethod: http.MethodPut, wantPath: "profile/job",
			wantBody: `{"company":{"id":"C1"}}`,
		},
		{
			name: "DeleteJob",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.DeleteJob(ctx)
				return err
			},
			wantMethod: http.MethodDelete, wantPath: "profile/job",
		},
		{
			name: "UpdateSchool",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.UpdateSchool(ctx, "S1")
				return err
			},
			wantMethod: http.MethodPut, wantPath: "profile/school",
			wantBody: `{"schools":[{"id":"S1"}]}`,
		},
		{
			name: "DeleteSchool",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.DeleteSchool(ctx)
				return err
			},
			wantMethod: http.MethodDelete, wantPath: "profile/school",
		},
		{
			name: "UpdatePreferences",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.UpdatePreferences(ctx, Preferences{
					Discoverable:  true,
					AgeMin:        21,
					AgeMax:        35,
					GenderFilter:  GenderAny,
					DistanceMiles: 50,
				})
				return err
			},
			wantMethod: http.MethodPost, wantPath: "profile",
			wantBody: `{"discoverable":true,"age_filter_min":21,"age_filter_max":35,"gender_filter":-1,"distance_filter":50}`,
		},
		{
			name: "DeleteAccount",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.DeleteAccount(ctx)
				return err
			},
			wantMethod: http.MethodDelete, wantPath: "profile",
		},
		{
			name: "User",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.User(ctx, "U2")
				return err
			},
			wantMethod: http.MethodGet, wantPath: "user/U2",
			reply:      `{"status":200,"results":{"_id":"U2"}}`,
		},
		{
			name: "UploadFacebookPicture",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.UploadFacebookPicture(ctx, FacebookPicture{
					PictureID:        "P1",
					XDistancePercent: 1,
					YDistancePercent: 0.8,
					XOffsetPercent:   0,
					YOffsetPercent:   0.1,
				})
				return err
			},
			wantMethod: http.MethodPost, wantPath: "media",
			wantBody: `{"transmit":"fb","assets":[{"id":"P1","xdistance_percent":1,"ydistance_percent":0.8,"xoffset_percent":0,"yoffset_percent":0.1}]}`,
		},
		{
			name: "DeletePicture",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.DeletePicture(ctx, "P1")
				return err
			},
			wantMethod: http.MethodDelete, wantPath: "media",
			wantBody: `{"assets":["P1"]}`,
		},
		{
			name: "ShareLink",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.ShareLink(ctx, "U2")
				return err
			},
			wantMethod: http.MethodPost, wantPath: "user/U2/share",
		},
		{
			name: "Report with text",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.Report(ctx, "U2", ReportOther, "fake profile")
				return err
			},
			wantMethod: http.MethodPost, wantPath: "report/U2",
			wantBody: `{"cause":0,"text":"fake profile"}`,
		},
		{
			name: "Report other with empty text",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.Report(ctx, "U2", ReportOther, "")
				return err
			},
			wantMethod: http.MethodPost, wantPath: "report/U2",
			wantBody: `{"cause":0,"text":""}`,
		},
		{
			name: "Report spam drops text",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.Report(ctx, "U2", ReportSpam, "ignored")
				return err
			},
			wantMethod: http.MethodPost, wantPath: "report/U2",
			wantBody: `{"cause":1}`,
		},
		{
			name: "CreateUsername",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.CreateUsername(ctx, "ada")
				return err
			},
			wantMethod: http.MethodPost, wantPath: "profile/username",
			wantBody: `{"username":"ada"}`,
		},
		{
			name: "ChangeUsername",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.ChangeUsername(ctx, "ada2")
				return err
			},
			wantMethod: http.MethodPut, wantPath: "profile/username",
			wantBody: `{"username":"ada2"}`,
		},
		{
			name: "DeleteUsername",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.DeleteUsername(ctx)
				return err
			},
			wantMethod: http.MethodDelete, wantPath: "profile/username",
		},
		{
			name: "UpdatePassport",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.UpdatePassport(ctx, 48.8566, 2.3522)
				return err
			},
			wantMethod: http.MethodPost, wantPath: "passport/user/travel",
			wantBody: `{"lat":48.8566,"lon":2.3522}`,
		},
		{
			name: "ResetPassport",
			call: func(ctx context.Context, client *Client) error {
				_, err := client.ResetPassport(ctx)
				return err
			},
			wantMethod: http.MethodPost, wantPath: "passport/user/reset",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			reply := test.reply
			if reply == "" {
				reply = endpointReply
			}
			server := testutil.NewRecordingServer(t, testutil.Reply{Body: reply})
			client := newTestClient(t, server)

			if err := test.call(context.Background(), client); err != nil {
				t.Fatalf("call: %v", err)
			}

			requests := server.Requests()
			if len(requests) != 1 {
				t.Fatalf("got %d requests, want 1", len(requests))
			}
			request := requests[0]
			if request.Method != test.wantMethod {
				t.Errorf("method = %s, want %s", request.Method, test.wantMethod)
			}
			if request.Path != test.wantPath {
				t.Errorf("path = %q, want %q", request.Path, test.wantPath)
			}
			assertJSONBody(t, request.Body, test.wantBody)
		})
	}
}

// assertJSONBody compares a request body against the expected JSON
// structurally. An empty want requires an empty body.
func assertJSONBody(t *testing.T, got []byte, want string) {
	t.Helper()
	if want == "" {
		if len(got) != 0 {
			t.Errorf("body = %s, want none", got)
		}
		return
	}
	var gotValue, wantValue any
	if err := json.Unmarshal(got, &gotValue); err != nil {
		t.Fatalf("request body %q: %v", got, err)
	}
	if err := json.Unmarshal([]byte(want), &wantValue); err != nil {
		t.Fatalf("expected body %q: %v", want, err)
	}
	if !reflect.DeepEqual(gotValue, wantValue) {
		t.Errorf("body = %s, want %s", got, want)
	}
}

func TestPathsEscapeIdentifiers(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{got: pathLike("a/b"), want: "like/a%2Fb"},
		{got: pathSuperLike("a b"), want: "like/a%20b/super"},
		{got: pathMatch("m?1"), want: "user/matches/m%3F1"},
		{got: pathShare("U1"), want: "user/U1/share"},
		{got: pathReport("U1"), want: "report/U1"},
		{got: pathUser("U1"), want: "user/U1"},
		{got: pathPass("U1"), want: "pass/U1"},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("path = %q, want %q", test.got, test.want)
		}
	}
}

func TestRecommendations_DecodesResults(t *testing.T) {
	server := testutil.NewRecordingServer(t, testutil.Reply{
		Body: `{"status":200,"results":[{"_id":"U2","name":"Grace","distance_mi":3,"photos":[{"id":"P1","url":"https://images/p1.jpg"}]}]}`,
	})
	client := newTestClient(t, server)

	recs, err := client.Recommendations(context.Background(), 1)
	if err != nil {
		t.Fatalf("Recommendations: %v", err)
	}
	if len(recs.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(recs.Results))
	}
	user := recs.Results[0]
	if user.ID != "U2" || user.Name != "Grace" || user.DistanceMiles == nil || *user.DistanceMiles != 3 {
		t.Errorf("user = %+v", user)
	}
	if len(user.Photos) != 1 || user.Photos[0].URL != "https://images/p1.jpg" {
		t.Errorf("photos = %+v", user.Photos)
	}
	if len(recs.Raw) == 0 {
		t.Error("Raw not populated")
	}
}

func TestLike_Match(t *testing.T) {
	server := testutil.NewRecordingServer(t, testutil.Reply{
		Body: `{"match":{"_id":"M1"},"likes_remaining":99}`,
	})
	client := newTestClient(t, server)

	like, err := client.Like(context.Background(), "U2")
	if err != nil {
		t.Fatalf("Like: %v", err)
	}
	if !like.Matched() {
		t.Error("Matched = false, want true")
	}
	if like.LikesRemaining == nil || *like.LikesRemaining != 99 {
		t.Errorf("LikesRemaining = %v, want 99", like.LikesRemaining)
	}
}

func TestUser_DecodesProfileObject(t *testing.T) {
	server := testutil.NewRecordingServer(t, testutil.Reply{
		Body: `{"status":200,"results":{"_id":"U2","name":"Grace","bio":"compilers"}}`,
	})
	client := newTestClient(t, server)

	response, err := client.User(context.Background(), "U2")
	if err != nil {
		t.Fatalf("User: %v", err)
	}
	if response.Results == nil {
		t.Fatal("Results is nil, want the profile")
	}
	if response.Results.ID != "U2" || response.Results.Name != "Grace" || response.Results.Bio != "compilers" {
		t.Errorf("Results = %+v, want U2/Grace/compilers", response.Results)
	}
	if len(response.Raw) == 0 {
		t.Error("Raw is empty, want the response body")
	}
}

func TestUser_ArrayResultsIsDecodeError(t *testing.T) {
	server := testutil.NewRecordingServer(t, testutil.Reply{Body: `{"results":[]}`})
	client := newTestClient(t, server)

	_, err := client.User(context.Background(), "U2")
	var decodeError *DecodeError
	if !errors.As(err, &decodeError) {
		t.Fatalf("error = %v, want *DecodeError", err)
	}
}
