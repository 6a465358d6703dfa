// README: API gateway; builds the gin engine, registers routes and applies CORS.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"tripmind/internal/http/handlers"
	"tripmind/internal/http/middleware"
)

type ServerDeps struct {
	Itinerary       handlers.Planner
	Usage           handlers.UsageReporter
	Logger          *zap.Logger
	AllowedOrigins  []string
	GenerateTimeout time.Duration
}

type Server struct {
	itinerary       handlers.Planner
	usage           handlers.UsageReporter
	log             *zap.Logger
	allowedOrigins  []string
	generateTimeout time.Duration
}

func NewServer(deps ServerDeps) *Server {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return &Server{
		itinerary:       deps.Itinerary,
		usage:           deps.Usage,
		log:             log,
		allowedOrigins:  origins,
		generateTimeout: deps.GenerateTimeout,
	}
}

// Routes returns the full handler chain: CORS, then gin middleware, then routes.
func (s *Server) Routes() http.Handler {
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Logging(s.log),
		middleware.Recovery(s.log),
	)
	registerRoutes(engine, s)

	c := cors.New(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{handlers.SourceHeader, middleware.RequestIDHeader},
		AllowCredentials: false,
	})
	return c.Handler(engine)
}
