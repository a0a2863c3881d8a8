package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"pay-assist/pkg/config"

	"go.uber.org/zap"
)

// OpenAIClient talks to any OpenAI-compatible chat/completions endpoint.
type OpenAIClient struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	logger      *zap.Logger
}

func NewOpenAIClient(cfg *config.OpenAIConfig, temperature float64, timeout time.Duration, logger *zap.Logger) *OpenAIClient {
	return &OpenAIClient{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: temperature,
		logger:      logger,
	}
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete makes exactly one request. Non-2xx answers and empty choices are errors.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(map[string]any{
		"model":       c.model,
		"temperature": c.temperature,
		"messages": []map[string]string{
			{"role": "system", "content": systemInstruction},
			{"role": "user", "content": prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("Completion endpoint returned an error",
			zap.Int("status", resp.StatusCode),
			zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
		)
		return "", fmt.Errorf("completion API error (status %d): %s", resp.StatusCode, truncate(string(raw), 300))
	}

	var cc chatCompletionResponse
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}

	c.logger.Debug("OpenAI completion",
		zap.String("model", c.model),
		zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
	)
	return cc.Choices[0].Message.Content, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
