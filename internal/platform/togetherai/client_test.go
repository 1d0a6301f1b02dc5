package togetherai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/grindlog/grindlog-backend/internal/platform/logger"
)

func newTestClient(t *testing.T, serverURL string) Client {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	t.Cleanup(func() { log.Sync() })

	t.Setenv("TOGETHER_API_KEY", "test-key")
	t.Setenv("TOGETHER_BASE_URL", serverURL)
	t.Setenv("TOGETHER_MODEL", "test-model")

	c, err := NewClient(log)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	t.Cleanup(func() { log.Sync() })

	t.Setenv("TOGETHER_API_KEY", "")
	if _, err := NewClient(log); err == nil {
		t.Fatalf("expected error without TOGETHER_API_KEY")
	}
}

func TestCompleteSuccess(t *testing.T) {
	var gotPath, gotAuth string
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"  Day 1: Solve two easy problems.  "}}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	out, err := c.Complete(context.Background(), "make a plan", 200)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out != "Day 1: Solve two easy problems." {
		t.Fatalf("content not trimmed: %q", out)
	}
	if gotPath != "/v1/chat/completions" {
		t.Fatalf("path: got %q", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("authorization header: got %q", gotAuth)
	}
	if gotReq.Model != "test-model" || gotReq.MaxTokens != 200 {
		t.Fatalf("request body: model=%q max_tokens=%d", gotReq.Model, gotReq.MaxTokens)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" || gotReq.Messages[0].Content != "make a plan" {
		t.Fatalf("request messages: %+v", gotReq.Messages)
	}
}

func TestCompleteNon2xxStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if _, err := c.Complete(context.Background(), "p", 10); err == nil {
		t.Fatalf("expected error on 429 response")
	} else if !strings.Contains(err.Error(), "429") {
		t.Fatalf("error should carry the status code, got %v", err)
	}
}

func TestCompleteMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": [`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if _, err := c.Complete(context.Background(), "p", 10); err == nil {
		t.Fatalf("expected error on malformed JSON")
	}
}

func TestCompleteMissingChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if _, err := c.Complete(context.Background(), "p", 10); err == nil {
		t.Fatalf("expected error when choices are empty")
	}
}

func TestCompleteEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"   "}}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if _, err := c.Complete(context.Background(), "p", 10); err == nil {
		t.Fatalf("expected error when content is blank")
	}
}
