// README: AI usage handler (generation counts by source, fallback count).
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripmind/internal/modules/aiusage"
)

// UsageReporter is satisfied by *aiusage.Service. A disabled service reports zero counts.
type UsageReporter interface {
	Summary(ctx context.Context) (aiusage.Summary, error)
}

type AIHandler struct {
	usage UsageReporter
}

func NewAIHandler(usage UsageReporter) *AIHandler {
	return &AIHandler{usage: usage}
}

// Usage handles GET /api/ai/usage.
func (h *AIHandler) Usage(c *gin.Context) {
	if h.usage == nil {
		writeJSON(c, http.StatusOK, aiusage.Summary{BySource: map[string]int64{}})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	sum, err := h.usage.Summary(ctx)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, sum)
}
