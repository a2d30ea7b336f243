// Package ollama implements a client for the Ollama generate API.
// It sends exactly one synchronous request per call: no retries, no
// streaming, no timeout beyond the transport default.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"syscall"
)

// DefaultURL is the generate endpoint of a local Ollama server.
const DefaultURL = "http://localhost:11434/api/generate"

// DefaultModel is the model used when none is specified.
const DefaultModel = "llama3"

// NoResponse is substituted when a successful response carries no answer field.
const NoResponse = "No response received from Ollama."

// Failure taxonomy for a generate call. Callers match with errors.Is.
var (
	// ErrUnreachable means the server refused the connection.
	ErrUnreachable = errors.New("ollama server unreachable")
	// ErrInvalidResponse means the response body was not valid JSON.
	ErrInvalidResponse = errors.New("invalid response from ollama")
)

// Client talks to an Ollama-compatible generate endpoint.
type Client struct {
	url    string
	client *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithURL sets the generate endpoint URL.
func WithURL(url string) Option {
	return func(c *Client) { c.url = url }
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// NewClient creates a client for an Ollama generate endpoint.
// Defaults to http://localhost:11434/api/generate.
func NewClient(opts ...Option) *Client {
	c := &Client{
		url:    DefaultURL,
		client: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// generateRequest is the Ollama /api/generate request body.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// generateResponse is the Ollama /api/generate response body.
// Response is a pointer so a missing field can be told apart from an
// empty answer.
type generateResponse struct {
	Response *string `json:"response"`
}

// Generate sends the prompt to the inference service and returns its answer.
// A successful response without an answer field yields NoResponse.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	reqBody := generateRequest{
		Model:  model,
		Prompt: prompt,
		Stream: false,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, syscall.ECONNREFUSED) {
			return "", fmt.Errorf("%w: %v", ErrUnreachable, err)
		}
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama error (%d): %s", resp.StatusCode, string(respBody))
	}

	var genResp generateResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if genResp.Response == nil {
		return NoResponse, nil
	}
	return *genResp.Response, nil
}
