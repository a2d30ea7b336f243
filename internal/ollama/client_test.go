package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerate_Success(t *testing.T) {
	var gotBody generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected Content-Type application/json, got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}
		_, _ = w.Write([]byte(`{"response":"You logged 3.5 hours."}`))
	}))
	defer server.Close()

	client := NewClient(WithURL(server.URL))
	answer, err := client.Generate(context.Background(), "llama3", "prompt text")
	if err != nil {
		t.Fatalf("Generate() returned unexpected error: %v", err)
	}
	if answer != "You logged 3.5 hours." {
		t.Errorf("Generate() = %q, expected answer text", answer)
	}

	if gotBody.Model != "llama3" {
		t.Errorf("Request model = %q, expected %q", gotBody.Model, "llama3")
	}
	if gotBody.Prompt != "prompt text" {
		t.Errorf("Request prompt = %q, expected %q", gotBody.Prompt, "prompt text")
	}
	if gotBody.Stream {
		t.Error("Request stream = true, expected false")
	}
}

func TestGenerate_RequestDisablesStreaming(t *testing.T) {
	var raw string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		raw = string(body)
		_, _ = w.Write([]byte(`{"response":"ok"}`))
	}))
	defer server.Close()

	client := NewClient(WithURL(server.URL))
	if _, err := client.Generate(context.Background(), "llama3", "p"); err != nil {
		t.Fatalf("Generate() returned unexpected error: %v", err)
	}

	// stream:false must be serialized explicitly, not omitted
	if !strings.Contains(raw, `"stream":false`) {
		t.Errorf("Request body missing \"stream\":false, got %q", raw)
	}
}

func TestGenerate_MissingResponseField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"model":"llama3","done":true}`))
	}))
	defer server.Close()

	client := NewClient(WithURL(server.URL))
	answer, err := client.Generate(context.Background(), "llama3", "p")
	if err != nil {
		t.Fatalf("Generate() returned unexpected error: %v", err)
	}
	if answer != NoResponse {
		t.Errorf("Generate() = %q, expected NoResponse placeholder %q", answer, NoResponse)
	}
}

func TestGenerate_EmptyAnswerIsNotMissing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response":""}`))
	}))
	defer server.Close()

	client := NewClient(WithURL(server.URL))
	answer, err := client.Generate(context.Background(), "llama3", "p")
	if err != nil {
		t.Fatalf("Generate() returned unexpected error: %v", err)
	}
	if answer != "" {
		t.Errorf("Generate() = %q, expected empty answer", answer)
	}
}

func TestGenerate_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := NewClient(WithURL(server.URL))
	_, err := client.Generate(context.Background(), "llama3", "p")
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("Generate() error = %v, expected ErrInvalidResponse", err)
	}
}

func TestGenerate_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(WithURL(server.URL))
	_, err := client.Generate(context.Background(), "missing-model", "p")
	if err == nil {
		t.Fatal("Generate() expected error for non-200 status, got nil")
	}
	if errors.Is(err, ErrUnreachable) || errors.Is(err, ErrInvalidResponse) {
		t.Errorf("Generate() error = %v, expected generic transport error", err)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("Generate() error = %v, expected status code in message", err)
	}
}

func TestGenerate_ConnectionRefused(t *testing.T) {
	// Start and immediately close a server so the port is known-unreachable
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(WithURL(url))
	_, err := client.Generate(context.Background(), "llama3", "p")
	if !errors.Is(err, ErrUnreachable) {
		t.Errorf("Generate() error = %v, expected ErrUnreachable", err)
	}
}
