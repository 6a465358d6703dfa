// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmind/internal/http/handlers"
)

func registerRoutes(r *gin.Engine, s *Server) {
	itineraryHandler := handlers.NewItineraryHandler(s.itinerary, s.generateTimeout)
	r.POST("/api/generate-itinerary", itineraryHandler.Generate)

	tripHandler := handlers.NewTripHandler()
	r.POST("/api/validate-flight", tripHandler.ValidateFlight)
	r.POST("/api/save-trip", tripHandler.SaveTrip)
	r.GET("/api/user/preferences", tripHandler.Preferences)

	aiHandler := handlers.NewAIHandler(s.usage)
	r.GET("/api/ai/usage", aiHandler.Usage)

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
}
