package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pay-assist/internal/assist"
	"pay-assist/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

const systemInstruction = `You turn short operator requests about invoices and payment links into JSON.
Reply with a single JSON object and nothing else. Use null for values the request does not state.
Never invent email addresses, ids or amounts.`

// gigaChatTemperature keeps extraction close to deterministic.
const gigaChatTemperature = 0.1

// LLMService completes prompts against GigaChat.
type LLMService struct {
	client  *gigago.Client
	model   *gigago.GenerativeModel
	timeout time.Duration
	logger  *zap.Logger
}

func NewLLMService(cfg *config.LLMConfig, logger *zap.Logger) (*LLMService, error) {
	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.GigaChat.Scope),
	}
	if cfg.GigaChat.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.GigaChat.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel(cfg.GigaChat.Model)
	model.SystemInstruction = systemInstruction
	model.Temperature = gigaChatTemperature

	logger.Info("GigaChat completion enabled", zap.String("model", cfg.GigaChat.Model))

	return &LLMService{
		client:  client,
		model:   model,
		timeout: cfg.Timeout,
		logger:  logger,
	}, nil
}

// Complete sends one user message and returns the first choice verbatim.
func (s *LLMService) Complete(ctx context.Context, prompt string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := s.model.Generate(ctx, []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	s.logger.Debug("GigaChat completion",
		zap.Int("prompt_len", len(prompt)),
		zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
	)
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (s *LLMService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}

// NewCompleter builds the configured completion backend. It returns a nil
// Completer and a no-op closer when no provider is enabled.
func NewCompleter(cfg *config.LLMConfig, logger *zap.Logger) (assist.Completer, func() error, error) {
	noop := func() error { return nil }

	if !cfg.Enabled() {
		logger.Warn("No LLM provider configured, mutating extractions are disabled",
			zap.String("provider", cfg.Provider),
		)
		return nil, noop, nil
	}

	switch cfg.Provider {
	case config.ProviderGigaChat:
		svc, err := NewLLMService(cfg, logger)
		if err != nil {
			return nil, noop, err
		}
		return svc, svc.Close, nil
	case config.ProviderOpenAI:
		return NewOpenAIClient(&cfg.OpenAI, cfg.Temperature, cfg.Timeout, logger), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}
