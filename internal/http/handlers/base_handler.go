// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmind/internal/modules/itinerary"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeBindError maps a ShouldBindJSON failure to a 400. Date and request
// validation errors keep their message; anything else is reported as invalid json.
func writeBindError(c *gin.Context, err error) {
	if errors.Is(err, itinerary.ErrInvalidRequest) {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	writeError(c, http.StatusBadRequest, "invalid json")
}
