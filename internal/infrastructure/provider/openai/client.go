// Package openai implements the outbound content-generation port against an
// OpenAI-compatible chat completions API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkworks/contentforge/internal/core/domain"
)

const (
	defaultModel     = "gpt-4o"
	defaultMaxTokens = 1024
	defaultTimeout   = 60 * time.Second
	temperature      = 0.7

	systemPrompt = "You are a professional writer creating high-quality blog posts. " +
		"Your output should be well-structured, engaging, and informative."
)

// Config captures the settings for the provider client.
type Config struct {
	APIKey  string
	BaseURL string
	// Models is the ordered fallback roster. Each model is tried once per
	// request, in order, until one returns output that parses.
	Models    []string
	MaxTokens int
	Timeout   time.Duration
}

// Client calls the chat completions endpoint and parses the model output into
// a {title, content} pair. It never returns partial output: either the full
// pair parses, or the call fails.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	models     []string
	maxTokens  int
	log        zerolog.Logger
}

func NewClient(cfg Config, log zerolog.Logger) *Client {
	models := cfg.Models
	if len(models) == 0 {
		models = []string{defaultModel}
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		models:     models,
		maxTokens:  maxTokens,
		log:        log,
	}
}

// --- wire types ---

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// generatedPayload is the strict output schema requested from the model.
type generatedPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Generate tries each model in the roster once, in order. A model "succeeds"
// only when its output parses as JSON with non-empty title and content; any
// network error, non-2xx status, empty body or parse failure moves on to the
// next model. Once the roster is exhausted the error wraps
// domain.ErrGenerationFailed.
func (c *Client) Generate(ctx context.Context, prompt string) (*domain.GeneratedContent, error) {
	var lastErr error
	for _, model := range c.models {
		content, err := c.generateWith(ctx, model, prompt)
		if err != nil {
			c.log.Warn().Err(err).Str("model", model).Msg("model attempt failed")
			lastErr = err
			continue
		}
		return content, nil
	}
	return nil, fmt.Errorf("%w: all models failed (%s): %v",
		domain.ErrGenerationFailed, strings.Join(c.models, ", "), lastErr)
}

func (c *Client) generateWith(ctx context.Context, model, prompt string) (*domain.GeneratedContent, error) {
	body, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
		Temperature:    temperature,
		MaxTokens:      c.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little of the body for the log, never for the client.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("provider status %d: %s", resp.StatusCode, string(snippet))
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("empty completion from %s", model)
	}

	var payload generatedPayload
	if err := json.Unmarshal([]byte(cr.Choices[0].Message.Content), &payload); err != nil {
		return nil, fmt.Errorf("completion is not valid JSON: %w", err)
	}
	if payload.Title == "" || payload.Content == "" {
		return nil, fmt.Errorf("completion missing title or content")
	}

	return &domain.GeneratedContent{Title: payload.Title, Content: payload.Content}, nil
}
