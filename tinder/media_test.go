// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tinder

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/bureau-foundation/tinder/lib/testutil"
)

func TestUploadPicture_RequiresUserID(t *testing.T) {
	server := testutil.NewRecordingServer(t, testutil.Reply{Body: `{}`})
	client := newTestClient(t, server)
	client.SetAuthToken("T")

	_, err := client.UploadPicture(context.Background(), "me.jpg", strings.NewReader("jpeg"))
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("error = %v, want ErrInvalidState", err)
	}
	if count := len(server.Requests()); count != 0 {
		t.Errorf("sent %d requests, want none", count)
	}
}

func TestUploadPicture_Multipart(t *testing.T) {
	apiServer := testutil.NewRecordingServer(t, testutil.Reply{Body: `{}`})
	imageServer := testutil.NewRecordingServer(t, testutil.Reply{Body: `{"status":"ok","assets":["P9"]}`})
	client := newTestClientWithConfig(t, apiServer, Config{
		ImageURL: imageServer.URL,
		Session:  &Session{AuthToken: "T", UserID: "U1"},
	})

	body, err := client.UploadPicture(context.Background(), "me.jpg", strings.NewReader("jpeg bytes"))
	if err != nil {
		t.Fatalf("UploadPicture: %v", err)
	}
	if string(body) != `{"status":"ok","assets":["P9"]}` {
		t.Errorf("body = %s", body)
	}
	if count := len(apiServer.Requests()); count != 0 {
		t.Errorf("API origin received %d requests, want none", count)
	}

	request := imageServer.Last(t)
	if request.Method != http.MethodPost || request.Path != "image" {
		t.Errorf("request = %s %s, want POST image", request.Method, request.Path)
	}

	query, err := url.ParseQuery(request.Query)
	if err != nil {
		t.Fatalf("query %q: %v", request.Query, err)
	}
	wantPhotoID := "ProfilePhoto" + strconv.FormatInt(testEpoch.UnixMilli(), 10)
	if got := query.Get("client_photo_id"); got != wantPhotoID {
		t.Errorf("client_photo_id = %q, want %q", got, wantPhotoID)
	}

	if got := request.Header.Get("X-Auth-Token"); got != "T" {
		t.Errorf("X-Auth-Token = %q, want T", got)
	}
	if got := request.Header.Get("User-Agent"); got != "Tinder Android Version 4.5.5" {
		t.Errorf("User-Agent = %q", got)
	}

	mediaType, params, err := mime.ParseMediaType(request.Header.Get("Content-Type"))
	if err != nil {
		t.Fatalf("Content-Type: %v", err)
	}
	if mediaType != "multipart/form-data" {
		t.Fatalf("media type = %q, want multipart/form-data", mediaType)
	}
	form, err := multipart.NewReader(bytes.NewReader(request.Body), params["boundary"]).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("ReadForm: %v", err)
	}
	defer form.RemoveAll()

	if got := form.Value["userId"]; len(got) != 1 || got[0] != "U1" {
		t.Errorf("userId = %v, want [U1]", got)
	}
	files := form.File["file"]
	if len(files) != 1 {
		t.Fatalf("got %d file parts, want 1", len(files))
	}
	if files[0].Filename != "me.jpg" {
		t.Errorf("filename = %q, want me.jpg", files[0].Filename)
	}
	part, err := files[0].Open()
	if err != nil {
		t.Fatalf("open part: %v", err)
	}
	defer part.Close()
	content, _ := io.ReadAll(part)
	if string(content) != "jpeg bytes" {
		t.Errorf("file content = %q, want %q", content, "jpeg bytes")
	}
}

func TestUploadPicture_DefaultFilename(t *testing.T) {
	server := testutil.NewRecordingServer(t, testutil.Reply{Body: `{}`})
	client := newTestClientWithConfig(t, server, Config{Session: &Session{UserID: "U1"}})

	if _, err := client.UploadPicture(context.Background(), "", strings.NewReader("x")); err != nil {
		t.Fatalf("UploadPicture: %v", err)
	}
	if body := string(server.Last(t).Body); !strings.Contains(body, `filename="photo.jpg"`) {
		t.Errorf("body lacks default filename: %q", body)
	}
}

func TestUploadPicture_FailureMapping(t *testing.T) {
	tests := []struct {
		name  string
		reply testutil.Reply
		check func(error) bool
	}{
		{name: "server error", reply: testutil.Reply{Status: http.StatusRequestEntityTooLarge, Body: "too big"}, check: IsRequestFailed},
		{name: "error member", reply: testutil.Reply{Body: `{"error":"bad image"}`}, check: func(err error) bool { return IsAPIError(err, "bad image") }},
		{name: "invalid JSON", reply: testutil.Reply{Body: `OK`}, check: isDecodeError},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			server := testutil.NewRecordingServer(t, test.reply)
			client := newTestClientWithConfig(t, server, Config{Session: &Session{UserID: "U1"}})

			_, err := client.UploadPicture(context.Background(), "me.jpg", strings.NewReader("x"))
			if err == nil || !test.check(err) {
				t.Errorf("error = %v, wrong kind", err)
			}
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestUploadPicture_ReadErrorSendsNothing(t *testing.T) {
	server := testutil.NewRecordingServer(t, testutil.Reply{Body: `{}`})
	client := newTestClientWithConfig(t, server, Config{Session: &Session{UserID: "U1"}})

	if _, err := client.UploadPicture(context.Background(), "me.jpg", failingReader{}); err == nil {
		t.Fatal("expected error from failing reader")
	}
	if count := len(server.Requests()); count != 0 {
		t.Errorf("sent %d requests, want none", count)
	}
}
