// README: Entry point; loads config, wires the itinerary pipeline and usage log, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripmind/internal/ai"
	"tripmind/internal/config"
	httptransport "tripmind/internal/http"
	"tripmind/internal/infra"
	"tripmind/internal/modules/aiusage"
	"tripmind/internal/modules/itinerary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	usageSvc := aiusage.NewService(nil)
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			logger.Fatal("postgres init", zap.Error(err))
		}
		defer dbPool.Close()
		usageSvc = aiusage.NewService(aiusage.NewStore(dbPool))
	}

	var primary itinerary.Source
	if cfg.Itinerary.Mode == config.ModeAI {
		completer, closeAI, err := ai.NewFromConfig(ctx, cfg.AI)
		if err != nil {
			logger.Fatal("ai client init", zap.Error(err))
		}
		defer func() { _ = closeAI() }()
		primary = itinerary.NewAISource(completer, cfg.AI.ModelName())
	}

	itinerarySvc := itinerary.NewService(itinerary.ServiceDeps{
		Primary:  primary,
		Model:    cfg.AI.ModelName(),
		Recorder: usageSvc,
		Logger:   logger.Named("itinerary"),
	})

	gin.SetMode(gin.ReleaseMode)
	handler := httptransport.NewServer(httptransport.ServerDeps{
		Itinerary:       itinerarySvc,
		Usage:           usageSvc,
		Logger:          logger.Named("http"),
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		GenerateTimeout: cfg.HTTP.GenerateTimeout,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown", zap.Error(err))
		}
	}()

	logger.Info("tripmind api listening",
		zap.String("addr", cfg.HTTP.Addr),
		zap.String("mode", cfg.Itinerary.Mode),
		zap.String("provider", cfg.AI.Provider),
		zap.Bool("usage_log", usageSvc.Enabled()),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("http server", zap.Error(err))
	}
}
