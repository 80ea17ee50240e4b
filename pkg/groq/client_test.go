package groq

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
		cfg := Config{APIKey: "gsk-test"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Model != DefaultModel {
			t.Errorf("expected model %q, got %q", DefaultModel, cfg.Model)
		}
		if cfg.BaseURL != DefaultBaseURL {
			t.Errorf("expected base URL %q, got %q", DefaultBaseURL, cfg.BaseURL)
		}
	})
}

func TestChatCompletion(t *testing.T) {
	var captured Request

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer gsk-test" {
			t.Errorf("unexpected authorization header: %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		json.NewEncoder(w).Encode(Response{
			ID:    "chatcmpl-1",
			Model: captured.Model,
			Choices: []Choice{
				{Message: Message{Role: "assistant", Content: "pong"}, FinishReason: "stop"},
			},
		})
	}))
	defer srv.Close()

	client, err := New(Config{APIKey: "gsk-test", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	resp, err := client.ChatCompletion(context.Background(), &Request{
		Messages: []Message{{Role: "user", Content: "ping"}},
	})
	if err != nil {
		t.Fatalf("ChatCompletion failed: %v", err)
	}

	if len(resp.Choices) != 1 || resp.Choices[0].Message.Content != "pong" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if captured.Model != DefaultModel {
		t.Errorf("expected default model filled, got %q", captured.Model)
	}
	if captured.Temperature != DefaultTemperature {
		t.Errorf("expected default temperature filled, got %v", captured.Temperature)
	}
	if captured.MaxTokens != DefaultMaxTokens {
		t.Errorf("expected default max tokens filled, got %v", captured.MaxTokens)
	}
}

func TestChatCompletionAPIError(t *testing.T) {
	t.Run("structured error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"invalid api key","type":"auth"}}`))
		}))
		defer srv.Close()

		client, _ := New(Config{APIKey: "bad", BaseURL: srv.URL})
		_, err := client.ChatCompletion(context.Background(), &Request{
			Messages: []Message{{Role: "user", Content: "hi"}},
		})
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "invalid api key") {
			t.Errorf("expected upstream message in error, got %v", err)
		}
	})

	t.Run("unstructured error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream unavailable"))
		}))
		defer srv.Close()

		client, _ := New(Config{APIKey: "gsk-test", BaseURL: srv.URL})
		_, err := client.ChatCompletion(context.Background(), &Request{
			Messages: []Message{{Role: "user", Content: "hi"}},
		})
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "upstream unavailable") {
			t.Errorf("expected raw body in error, got %v", err)
		}
	})
}
