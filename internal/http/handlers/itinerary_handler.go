// README: Itinerary handler; validates the trip request and always answers with an itinerary.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tripmind/internal/modules/itinerary"
)

// SourceHeader names the source that produced the itinerary ("ai" or "generator").
const SourceHeader = "X-Itinerary-Source"

// Planner is satisfied by *itinerary.Service.
type Planner interface {
	Plan(ctx context.Context, req itinerary.Request) itinerary.Outcome
}

type ItineraryHandler struct {
	planner Planner
	timeout time.Duration
}

func NewItineraryHandler(planner Planner, timeout time.Duration) *ItineraryHandler {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ItineraryHandler{planner: planner, timeout: timeout}
}

// Generate handles POST /api/generate-itinerary.
func (h *ItineraryHandler) Generate(c *gin.Context) {
	var req itinerary.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	req.Destination = strings.TrimSpace(req.Destination)
	req.Budget = strings.TrimSpace(req.Budget)
	if err := req.Validate(); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	out := h.planner.Plan(ctx, req)
	c.Header(SourceHeader, out.Source)
	writeJSON(c, http.StatusOK, out.Itinerary)
}
