// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// RecordedRequest is a snapshot of one request received by a
// RecordingServer.
type RecordedRequest struct {
	Method string
	// Path is the request path with the leading slash removed, so it
	// compares directly against the relative paths the client uses.
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

// Reply is the canned response a RecordingServer writes.
type Reply struct {
	// Status defaults to 200.
	Status int
	// Body is written verbatim.
	Body string
	// Header values are set before WriteHeader.
	Header map[string]string
}

// RecordingServer is an httptest.Server that records requests.
type RecordingServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
	reply    func(RecordedRequest) Reply
}

// NewRecordingServer starts a server answering every request with
// reply. The server is closed when the test completes.
func NewRecordingServer(t *testing.T, reply Reply) *RecordingServer {
	t.Helper()
	return NewRecordingServerFunc(t, func(RecordedRequest) Reply { return reply })
}

// NewRecordingServerFunc starts a server whose reply depends on the
// request. The server is closed when the test completes.
func NewRecordingServerFunc(t *testing.T, reply func(RecordedRequest) Reply) *RecordingServer {
	t.Helper()
	server := &RecordingServer{reply: reply}
	server.Server = httptest.NewServer(http.HandlerFunc(server.handle))
	t.Cleanup(server.Close)
	return server
}

func (s *RecordingServer) handle(writer http.ResponseWriter, request *http.Request) {
	body, _ := io.ReadAll(request.Body)

	path := request.URL.Path
	if len(path) > 0 && path[0] == '/' {
		path = path[1:]
	}

	s.mu.Lock()
	recorded := RecordedRequest{
		Method: request.Method,
		Path:   path,
		Query:  request.URL.RawQuery,
		Header: request.Header.Clone(),
		Body:   body,
	}
	s.requests = append(s.requests, recorded)
	s.mu.Unlock()

	reply := s.reply(recorded)
	for key, value := range reply.Header {
		writer.Header().Set(key, value)
	}
	if reply.Status == 0 {
		reply.Status = http.StatusOK
	}
	writer.WriteHeader(reply.Status)
	io.WriteString(writer, reply.Body)
}

// Requests returns a copy of every request received so far.
func (s *RecordingServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// Last returns the most recent request, failing the test if none has
// been received.
func (s *RecordingServer) Last(t *testing.T) RecordedRequest {
	t.Helper()
	requests := s.Requests()
	if len(requests) == 0 {
		t.Fatalf("no requests received by %s", s.URL)
	}
	return requests[len(requests)-1]
}
