// README: Fallback orchestrator; the AI source is tried first and the generator always answers.
package itinerary

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Source names reported in Outcome and usage records.
const (
	SourceAI        = "ai"
	SourceGenerator = "generator"
)

// Usage describes one Plan call.
type Usage struct {
	Source      string
	Model       string
	Destination string
	Days        int
	Latency     time.Duration
	// FailureReason is the primary source's error when the fallback answered.
	FailureReason string
}

// UsageRecorder receives one Usage per Plan call. Implementations must be safe for
// concurrent use.
type UsageRecorder interface {
	Record(ctx context.Context, u Usage) error
}

// Outcome is the itinerary plus the source that produced it.
type Outcome struct {
	Itinerary *Itinerary
	Source    string
}

// Service always returns an itinerary: the primary source if it succeeds, otherwise
// the deterministic generator.
type Service struct {
	primary   Source
	model     string
	generator *Generator
	recorder  UsageRecorder
	log       *zap.Logger
}

// ServiceDeps wires a Service. Primary may be nil (mock mode); Recorder may be nil.
type ServiceDeps struct {
	Primary  Source
	Model    string
	Recorder UsageRecorder
	Logger   *zap.Logger
}

func NewService(deps ServiceDeps) *Service {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		primary:   deps.Primary,
		model:     deps.Model,
		generator: NewGenerator(),
		recorder:  deps.Recorder,
		log:       log,
	}
}

// Plan never fails. Partial AI output is discarded on any error.
func (s *Service) Plan(ctx context.Context, req Request) Outcome {
	ctx, span := otel.Tracer("itinerary").Start(ctx, "Service.Plan", trace.WithAttributes(
		attribute.String("destination", req.Destination),
		attribute.Int("days", req.Days()),
	))
	defer span.End()

	start := time.Now()
	usage := Usage{Destination: req.Destination, Days: req.Days()}

	var out Outcome
	if s.primary != nil {
		result, err := s.primary.Generate(ctx, req)
		if err == nil && result != nil {
			out = Outcome{Itinerary: result, Source: SourceAI}
			usage.Model = s.model
		} else if err != nil {
			s.log.Warn("ai itinerary failed, using generator",
				zap.String("destination", req.Destination),
				zap.Int("days", req.Days()),
				zap.Error(err),
			)
			span.RecordError(err)
			usage.FailureReason = err.Error()
		}
	}
	if out.Itinerary == nil {
		out = Outcome{Itinerary: s.generator.Build(req), Source: SourceGenerator}
	}

	span.SetAttributes(attribute.String("source", out.Source))
	usage.Source = out.Source
	usage.Latency = time.Since(start)
	s.record(ctx, usage)
	return out
}

func (s *Service) record(ctx context.Context, u Usage) {
	if s.recorder == nil {
		return
	}
	// Recorded even when the caller's context is already done.
	if err := s.recorder.Record(context.WithoutCancel(ctx), u); err != nil {
		s.log.Error("record itinerary usage", zap.String("source", u.Source), zap.Error(err))
	}
}
