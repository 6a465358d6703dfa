// README: Trip helper endpoints. These accept and echo input; no provider or storage behind them yet.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TripHandler struct{}

func NewTripHandler() *TripHandler {
	return &TripHandler{}
}

type validateFlightReq struct {
	FlightNumber string `json:"flightNumber"`
	Date         string `json:"date"`
}

// ValidateFlight handles POST /api/validate-flight.
func (h *TripHandler) ValidateFlight(c *gin.Context) {
	var req validateFlightReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.FlightNumber = strings.ToUpper(strings.TrimSpace(req.FlightNumber))
	if req.FlightNumber == "" {
		writeError(c, http.StatusBadRequest, "missing flightNumber")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"flightNumber": req.FlightNumber,
		"valid":        true,
		"message":      "Flight validation successful",
	})
}

// TripData is either an object or a JSON-encoded string of one; nothing reads it yet.
type saveTripReq struct {
	UserID   string          `json:"userId"`
	TripData json.RawMessage `json:"tripData"`
}

// SaveTrip handles POST /api/save-trip.
func (h *TripHandler) SaveTrip(c *gin.Context) {
	var req saveTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		writeError(c, http.StatusBadRequest, "missing userId")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"tripId":  "trip_" + uuid.NewString(),
		"message": "Trip saved successfully",
	})
}

// Preferences handles GET /api/user/preferences?userId=.
func (h *TripHandler) Preferences(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("userId"))
	if userID == "" {
		writeError(c, http.StatusBadRequest, "missing userId")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"userId":      userID,
		"preferences": "default",
	})
}
