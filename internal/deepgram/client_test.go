package deepgram

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func newTestClient(t *testing.T, baseURL, projectID string) *Client {
	t.Helper()
	c, err := NewClient(Config{APIKey: "test-key", ProjectID: projectID, BaseURL: baseURL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestSubmit_QueryFlags(t *testing.T) {
	var gotQuery map[string][]string
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/listen" {
			t.Errorf("expected /listen, got %s", r.URL.Path)
		}
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")

		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["url"] != "https://ex.com/a.mp3" {
			t.Errorf("expected source URL in body, got %v", body)
		}

		json.NewEncoder(w).Encode(SubmitResponse{RequestID: "req-123"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "")

	result, err := c.Submit(context.Background(), TranscriptionOptions{
		URL:         "https://ex.com/a.mp3",
		Diarize:     Bool(true),
		FillerWords: Bool(false),
		Model:       "nova-3",
		Callback:    "https://relay.example.dev/callback",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RequestID != "req-123" {
		t.Errorf("expected req-123, got %s", result.RequestID)
	}
	if gotAuth != "Token test-key" {
		t.Errorf("expected Token auth, got %q", gotAuth)
	}

	// Set flags are present with their literal value.
	if got := gotQuery["diarize"]; len(got) != 1 || got[0] != "true" {
		t.Errorf("expected diarize=true, got %v", got)
	}
	if got := gotQuery["filler_words"]; len(got) != 1 || got[0] != "false" {
		t.Errorf("expected filler_words=false, got %v", got)
	}
	if got := gotQuery["model"]; len(got) != 1 || got[0] != "nova-3" {
		t.Errorf("expected model=nova-3, got %v", got)
	}
	if got := gotQuery["callback"]; len(got) != 1 || got[0] != "https://relay.example.dev/callback" {
		t.Errorf("expected callback param, got %v", got)
	}

	// Unset flags never appear. The client applies no defaults of its own.
	for _, name := range []string{"smart_format", "punctuate", "paragraphs", "utterances", "sentiment", "summarize", "topics", "detect_entities", "language"} {
		if _, ok := gotQuery[name]; ok {
			t.Errorf("unset flag %s should be omitted, got %v", name, gotQuery[name])
		}
	}
}

func TestSubmit_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(400)
		w.Write([]byte(`{"err_msg":"bad media url"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "")

	_, err := c.Submit(context.Background(), TranscriptionOptions{URL: "https://ex.com/a.mp3"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsUpstream(err) {
		t.Fatalf("expected upstream error, got %v", err)
	}

	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("expected *Error")
	}
	if e.StatusCode != 400 {
		t.Errorf("expected status 400, got %d", e.StatusCode)
	}
	if !strings.Contains(string(e.Body), "bad media url") {
		t.Errorf("body should pass through verbatim, got %s", string(e.Body))
	}
}

func TestResolveProjectID_Explicit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no API call should be made when project_id is configured")
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "proj-configured")

	id, err := c.ResolveProjectID(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "proj-configured" {
		t.Errorf("expected proj-configured, got %s", id)
	}
}

func TestResolveProjectID_Memoized(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		json.NewEncoder(w).Encode(listProjectsResponse{Projects: []Project{
			{ProjectID: "proj-1", Name: "First"},
			{ProjectID: "proj-2", Name: "Second"},
		}})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "")

	for i := 0; i < 3; i++ {
		id, err := c.ResolveProjectID(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "proj-1" {
			t.Errorf("expected first project, got %s", id)
		}
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("expected exactly one listing call, got %d", got)
	}
}

func TestResolveProjectID_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(403)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "")

	_, err := c.ResolveProjectID(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsPermission(err) {
		t.Fatalf("expected permission error, got %v", err)
	}
	if !strings.Contains(err.Error(), "Member role") {
		t.Errorf("expected role-upgrade guidance, got %v", err)
	}
}

func TestResolveProjectID_NoProjects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(listProjectsResponse{})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "")

	_, err := c.ResolveProjectID(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNotConfigured(err) {
		t.Errorf("expected not-configured error, got %v", err)
	}
}

func TestFetchRequestStatus_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects/proj-1/requests/req-42" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(getRequestResponse{Request: RequestStatus{
			RequestID: "req-42",
			Path:      "/v1/listen",
			Code:      200,
		}})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "proj-1")

	status, err := c.FetchRequestStatus(context.Background(), "req-42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.RequestID != "req-42" || status.Code != 200 {
		t.Errorf("unexpected status: %+v", status)
	}
}

func TestFetchRequestStatus_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "proj-1")

	_, err := c.FetchRequestStatus(context.Background(), "req-missing")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if !strings.Contains(err.Error(), "req-missing") || !strings.Contains(err.Error(), "proj-1") {
		t.Errorf("message should embed request id and project id, got %v", err)
	}

	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("expected *Error")
	}
	if e.RequestID != "req-missing" || e.ProjectID != "proj-1" {
		t.Errorf("expected ids on error, got %+v", e)
	}
}

func TestFetchRequestStatus_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(403)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "proj-1")

	_, err := c.FetchRequestStatus(context.Background(), "req-42")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsPermission(err) {
		t.Fatalf("expected permission error, got %v", err)
	}
	if !strings.Contains(err.Error(), "usage:read") {
		t.Errorf("expected usage:read guidance, got %v", err)
	}
}

func TestTestConnection(t *testing.T) {
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(listProjectsResponse{Projects: []Project{{ProjectID: "p"}}})
	}))
	defer ok.Close()

	if c := newTestClient(t, ok.URL, ""); !c.TestConnection(context.Background()) {
		t.Error("expected true against healthy endpoint")
	}

	denied := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(401)
	}))
	defer denied.Close()

	if c := newTestClient(t, denied.URL, ""); c.TestConnection(context.Background()) {
		t.Error("expected false on auth failure")
	}

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	down.Close()

	if c := newTestClient(t, down.URL, ""); c.TestConnection(context.Background()) {
		t.Error("expected false on connection failure")
	}
}
