package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var _ ChatCompleter = (*GeminiClient)(nil)

// GeminiClient implements ChatCompleter using Google's Gemini models.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient initializes a Gemini client. apiKey comes from configuration.
func NewGeminiClient(ctx context.Context, apiKey string, settings Settings) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	model := client.GenerativeModel(settings.Model)
	// The itinerary payload is JSON; ask for it directly.
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(float32(settings.Temperature))
	if settings.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(settings.MaxTokens))
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: gemini: generate content: %w", ErrModelUnavailable, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: gemini: API returned empty candidates", ErrModelUnavailable)
	}

	var textParts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		txt, ok := part.(genai.Text)
		if !ok || strings.TrimSpace(string(txt)) == "" {
			continue
		}
		textParts = append(textParts, string(txt))
	}
	if len(textParts) == 0 {
		return "", fmt.Errorf("%w: gemini: API returned empty text parts", ErrModelUnavailable)
	}
	return strings.Join(textParts, "\n"), nil
}
