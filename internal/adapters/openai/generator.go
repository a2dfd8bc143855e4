// Package openai generates persona messages with the OpenAI chat completions API.
package openai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"focusboss/internal/logging"
	"focusboss/internal/ports"
)

const (
	DefaultBaseURL     = "https://api.openai.com/v1"
	DefaultMaxTokens   = 150
	DefaultModel       = "gpt-3.5-turbo"
	DefaultTemperature = 0.7
)

// Config configures the generator. An empty APIKey disables generation.
type Config struct {
	APIKey      string
	BaseURL     string
	MaxTokens   int
	Model       string
	Temperature *float64 // nil uses DefaultTemperature
	Timeout     time.Duration
}

// Generator implements ports.MessageGenerator
type Generator struct {
	cfg         Config
	httpClient  *http.Client
	temperature float64
}

var _ ports.MessageGenerator = (*Generator)(nil)

// NewGenerator creates a new Generator, filling unset config with defaults
func NewGenerator(cfg Config) *Generator {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	temperature := DefaultTemperature
	if cfg.Temperature != nil {
		temperature = *cfg.Temperature
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Generator{
		cfg:         cfg,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		temperature: temperature,
	}
}

// Available reports whether an API key is configured
func (g *Generator) Available() bool {
	return g.cfg.APIKey != ""
}

type chatMessage struct {
	Content string `json:"content"`
	Role    string `json:"role"`
}

type chatRequest struct {
	MaxTokens   int           `json:"max_tokens"`
	Messages    []chatMessage `json:"messages"`
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate implements MessageGenerator.Generate
func (g *Generator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !g.Available() {
		return "", ports.ErrGeneratorUnavailable
	}

	body, err := json.Marshal(chatRequest{
		MaxTokens: g.cfg.MaxTokens,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Model:       g.cfg.Model,
		Temperature: g.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read chat completion: %w", err)
	}

	var result chatResponse
	decodeErr := json.Unmarshal(raw, &result)

	if resp.StatusCode != http.StatusOK {
		if decodeErr == nil && result.Error != nil {
			return "", fmt.Errorf("chat completion failed: %s: %s", resp.Status, result.Error.Message)
		}
		return "", fmt.Errorf("chat completion failed: %s", resp.Status)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("failed to decode chat completion: %w", decodeErr)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	logging.Logger.Debug("Chat completion", "model", g.cfg.Model, "duration", time.Since(start).String())

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}
