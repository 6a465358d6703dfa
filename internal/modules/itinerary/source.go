// README: Itinerary sources: AI-backed (prompt -> completion -> extract -> map) and deterministic.
package itinerary

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Source produces an itinerary for a validated request.
type Source interface {
	Generate(ctx context.Context, req Request) (*Itinerary, error)
}

// Completer is the model client contract AISource needs; ai.ChatCompleter satisfies it.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// AISource asks a chat-completion model for the itinerary.
type AISource struct {
	completer Completer
	model     string
}

func NewAISource(completer Completer, model string) *AISource {
	return &AISource{completer: completer, model: model}
}

// Model is the model identifier reported in usage records.
func (s *AISource) Model() string {
	return s.model
}

func (s *AISource) Generate(ctx context.Context, req Request) (*Itinerary, error) {
	ctx, span := otel.Tracer("itinerary").Start(ctx, "AISource.Generate", trace.WithAttributes(
		attribute.String("destination", req.Destination),
		attribute.Int("days", req.Days()),
		attribute.String("model", s.model),
	))
	defer span.End()

	prompt := BuildPrompt(req)
	completion, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "completion failed")
		return nil, fmt.Errorf("complete itinerary prompt: %w", err)
	}
	span.SetAttributes(attribute.Int("completion.length", len(completion)))

	result, err := MapResponse(ExtractJSON(completion), req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "mapping failed")
		return nil, fmt.Errorf("map itinerary payload: %w", err)
	}
	span.SetStatus(codes.Ok, "")
	return result, nil
}
