package ai

import (
	"context"
	"errors"
)

// ErrModelUnavailable covers transport failures, non-2xx responses and empty completions.
var ErrModelUnavailable = errors.New("model unavailable")

// ChatCompleter sends one prompt to a chat model and returns the raw completion text.
// Implementations make exactly one call: no retries, no streaming.
type ChatCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Settings are the sampling knobs shared by every provider.
type Settings struct {
	Model       string
	MaxTokens   int
	Temperature float64
}
