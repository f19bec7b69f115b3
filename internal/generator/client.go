// Package generator is the boundary to the external content-generation
// API. The workspace treats the call as opaque: it sends a prompt and
// receives text, and nothing is inserted into the ledger unless the call
// succeeds.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/curricuforge/curricuforge/internal"
)

// Request is one generation call.
type Request struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model,omitempty"`
}

// GeneratorAPI is the interface the content handlers depend on; tests
// substitute a canned implementation.
type GeneratorAPI interface {
	Generate(ctx context.Context, req Request) (string, error)
}

type Client struct {
	apiURL  string
	apiKey  string
	model   string
	timeout time.Duration
	http    *http.Client
	logger  *slog.Logger
}

type Config struct {
	APIURL  string
	APIKey  string
	Model   string
	Timeout time.Duration
}

func NewClient(config Config, logger *slog.Logger) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &Client{
		apiURL:  config.APIURL,
		apiKey:  config.APIKey,
		model:   config.Model,
		timeout: timeout,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Generate sends the prompt and returns the generated text. Failures
// surface as external errors; the caller inserts nothing on error.
func (c *Client) Generate(ctx context.Context, req Request) (string, error) {
	if req.Prompt == "" {
		return "", internal.NewValidationError("prompt is required", internal.ErrCodeValidationFailed)
	}

	model := req.Model
	if model == "" {
		model = c.model
	}

	payload := map[string]interface{}{
		"prompt": req.Prompt,
		"model":  model,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal generation request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/generate", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Error("generation request failed", "error", err)
		return "", internal.NewExternalError("generation request failed", internal.ErrCodeGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("generation API returned error", "status", resp.StatusCode)
		return "", internal.NewExternalError(
			fmt.Sprintf("generation API returned status %d", resp.StatusCode),
			internal.ErrCodeGenerationFailed, nil)
	}

	var apiResponse struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return "", internal.NewExternalError("failed to decode generation response", internal.ErrCodeGenerationFailed, err)
	}

	c.logger.Info("content generated",
		"model", model,
		"duration_ms", time.Since(start).Milliseconds(),
		"chars", len(apiResponse.Text))

	return apiResponse.Text, nil
}
