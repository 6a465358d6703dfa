// README: AI-usage service; records each itinerary generation and reports per-source totals.
package aiusage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tripmind/internal/modules/itinerary"
)

// Service records usage. A Service with a nil store is a no-op, used when no database
// is configured.
type Service struct {
	store *Store
	now   func() time.Time
}

// NewService creates a Service backed by the given Store (may be nil).
func NewService(store *Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Enabled reports whether records are persisted.
func (s *Service) Enabled() bool {
	return s != nil && s.store != nil
}

// Record implements itinerary.UsageRecorder.
func (s *Service) Record(ctx context.Context, u itinerary.Usage) error {
	if !s.Enabled() {
		return nil
	}
	return s.store.Insert(ctx, Record{
		ID:            uuid.New(),
		Source:        u.Source,
		Model:         u.Model,
		Destination:   u.Destination,
		Days:          u.Days,
		LatencyMs:     u.Latency.Milliseconds(),
		FailureReason: u.FailureReason,
		CreatedAt:     s.now().UTC(),
	})
}

// Summary returns per-source totals; empty when disabled.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	if !s.Enabled() {
		return Summary{BySource: map[string]int64{}}, nil
	}
	return s.store.Summarize(ctx)
}
