package ai

import (
	"context"
	"fmt"

	"tripmind/internal/config"
)

// NewFromConfig builds the ChatCompleter for cfg.Provider. The returned close func
// releases provider resources and is never nil.
func NewFromConfig(ctx context.Context, cfg config.AIConfig) (ChatCompleter, func() error, error) {
	settings := Settings{
		Model:       cfg.ModelName(),
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg.BaseURL, cfg.APIKey, settings, nil), func() error { return nil }, nil
	case config.ProviderGemini:
		c, err := NewGeminiClient(ctx, cfg.GeminiKey, settings)
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil
	default:
		return nil, nil, fmt.Errorf("ai: unknown provider %q", cfg.Provider)
	}
}
