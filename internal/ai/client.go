// Package ai turns a user's free-text learning goal into a roadmap via an
// external text-generation endpoint. One request per invocation, no
// retries; all failures map onto the sentinel errors in errors.go.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/ML-With-Roshan/TrackMap/internal/config"
	"github.com/ML-With-Roshan/TrackMap/internal/roadmap"
)

const (
	apiVersion     = "2023-06-01"
	defaultTimeout = 2 * time.Minute
)

// generationRequest is the request body of the generation endpoint.
type generationRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// generationResponse is the vendor envelope around the model's raw text.
type generationResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Client calls the generation endpoint and decodes replies into roadmaps.
type Client struct {
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	baseURL     string
	httpClient  *http.Client
	log         zerolog.Logger
}

// NewClient builds a client from configuration. The key is checked at
// call time, not here, so a keyless client can still be constructed.
func NewClient(cfg config.Config, log zerolog.Logger) *Client {
	return &Client{
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		baseURL:     cfg.BaseURL,
		httpClient:  &http.Client{Timeout: defaultTimeout},
		log:         log,
	}
}

// GenerateRoadmap asks the model for a learning roadmap and returns a
// fully hydrated entity: fresh ids everywhere, every completion flag
// false. The result is ready for insertion into the store.
func (c *Client) GenerateRoadmap(ctx context.Context, name, description, prompt string) (*roadmap.Roadmap, error) {
	if c.apiKey == "" {
		return nil, ErrMissingCredential
	}

	text, err := c.requestText(ctx, buildPrompt(name, description, prompt))
	if err != nil {
		return nil, err
	}

	var gen generatedRoadmap
	if err := json.Unmarshal([]byte(extractRoadmapJSON(text)), &gen); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsing, err)
	}

	r := hydrate(name, description, gen)
	c.log.Info().Str("title", r.Title).Int("phases", len(r.Phases)).Msg("roadmap generated")
	return &r, nil
}

// requestText performs the single POST and unwraps the vendor envelope
// down to the model's raw reply text.
func (c *Client) requestText(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generationRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Messages:    []message{{Role: "user", Content: prompt}},
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Msg("generation request failed")
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	c.log.Debug().Int("status", resp.StatusCode).Dur("elapsed", time.Since(start)).Msg("generation response")

	if resp.StatusCode == http.StatusUnauthorized {
		return "", ErrAuthentication
	}

	var envelope generationResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return "", fmt.Errorf("%w: undecodable body (status %d)", ErrInvalidResponse, resp.StatusCode)
	}
	if envelope.Error != nil && envelope.Error.Message != "" {
		return "", fmt.Errorf("%w: %s", ErrVendor, envelope.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", ErrInvalidResponse, resp.StatusCode)
	}
	if len(envelope.Content) == 0 || envelope.Content[0].Text == "" {
		return "", fmt.Errorf("%w: no text content", ErrInvalidResponse)
	}

	return envelope.Content[0].Text, nil
}

// buildPrompt assembles the instruction string sent to the model.
func buildPrompt(name, description, userInput string) string {
	return fmt.Sprintf(`You are an expert in learning path design and curriculum development.

Please create a comprehensive learning roadmap for: "%s"

Additional description: "%s"

User's learning goals: "%s"

Your task is to create a well-structured roadmap with the following components:

1. 4-6 learning phases, each with a clear name and purpose
2. 3-5 tasks per phase that represent key skills or knowledge areas
3. 2-4 specific, actionable subtasks per task

Format your response as a JSON object with this exact structure:

{
  "phases": [
    {
      "name": "Phase name",
      "tasks": [
        {
          "name": "Task name",
          "subTasks": [
            { "name": "Subtask name" }
          ]
        }
      ]
    }
  ]
}

The response must be a valid JSON object containing only the roadmap data, with no additional explanation or commentary.`, name, description, userInput)
}
