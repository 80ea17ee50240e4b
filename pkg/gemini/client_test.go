package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	t.Run("missing API key", func(t *testing.T) {
		cfg := Config{}
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for missing API key")
		}
	})

	t.Run("defaults filled", func(t *testing.T) {
		cfg := Config{APIKey: "test-key"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Model != DefaultModel {
			t.Errorf("expected model %q, got %q", DefaultModel, cfg.Model)
		}
		if cfg.APIURL != DefaultAPIURL {
			t.Errorf("expected API URL %q, got %q", DefaultAPIURL, cfg.APIURL)
		}
		if cfg.HTTPClient == nil {
			t.Error("expected HTTP client to be set")
		}
	})
}

func TestChat(t *testing.T) {
	var captured geminiRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "generateContent") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if key := r.URL.Query().Get("key"); key != "test-key" {
			t.Errorf("expected key query param, got %q", key)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []geminiCandidate{
				{Content: geminiContent{Role: "model", Parts: []geminiPart{{Text: "hello back"}}}},
			},
		})
	}))
	defer srv.Close()

	client, err := New(Config{APIKey: "test-key", APIURL: srv.URL})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	resp, err := client.Chat(context.Background(), &Request{
		Messages: []Message{
			{Role: "system", Content: "You are helpful."},
			{Role: "user", Content: "hi"},
			{Role: "assistant", Content: "hello"},
			{Role: "user", Content: "how are you"},
		},
	})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if resp.Text != "hello back" {
		t.Errorf("expected %q, got %q", "hello back", resp.Text)
	}

	// System message folds into the first user turn, not a separate entry.
	if len(captured.Contents) != 3 {
		t.Fatalf("expected 3 contents, got %d", len(captured.Contents))
	}
	first := captured.Contents[0]
	if first.Role != "user" {
		t.Errorf("expected first role user, got %q", first.Role)
	}
	if !strings.Contains(first.Parts[0].Text, "You are helpful.") {
		t.Errorf("expected system text folded into first turn, got %q", first.Parts[0].Text)
	}
	if !strings.Contains(first.Parts[0].Text, "hi") {
		t.Errorf("expected original user text preserved, got %q", first.Parts[0].Text)
	}
	if captured.Contents[1].Role != "model" {
		t.Errorf("expected assistant mapped to model, got %q", captured.Contents[1].Role)
	}
}

func TestChatAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer srv.Close()

	client, err := New(Config{APIKey: "test-key", APIURL: srv.URL})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	_, err = client.Chat(context.Background(), &Request{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("expected status code in error, got %v", err)
	}
}

func TestChatEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiResponse{})
	}))
	defer srv.Close()

	client, err := New(Config{APIKey: "test-key", APIURL: srv.URL})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	_, err = client.Chat(context.Background(), &Request{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error for empty candidates")
	}
	if !strings.Contains(err.Error(), "no candidates") {
		t.Errorf("expected descriptive error, got %v", err)
	}
}
