// README: AI-usage record shapes.
package aiusage

import (
	"time"

	"github.com/google/uuid"
)

// Record is one itinerary generation as stored in itinerary_usage.
type Record struct {
	ID            uuid.UUID
	Source        string
	Model         string
	Destination   string
	Days          int
	LatencyMs     int64
	FailureReason string
	CreatedAt     time.Time
}

// Summary counts generations per source ("ai", "generator").
type Summary struct {
	Total    int64            `json:"total"`
	BySource map[string]int64 `json:"bySource"`
	// Fallbacks counts generator answers that followed a failed AI attempt.
	Fallbacks int64 `json:"fallbacks"`
}
