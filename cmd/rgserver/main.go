// Command rgserver runs the HTTP service wrapping the randomized-greedy
// and CGGC clustering core: zerolog logging, a gorilla/mux router, a
// dependency-injected service chain, and graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gilchrisn/rgcluster/service"
	"github.com/gilchrisn/rgcluster/service/api"
	"github.com/gilchrisn/rgcluster/service/config"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	log.Info().Msg("starting rgcluster service")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Info().
		Str("address", cfg.Server.Address).
		Int("max_workers", cfg.Jobs.MaxWorkers).
		Msg("configuration loaded")

	datasetService := service.NewDatasetService()
	jobService := service.NewJobService(datasetService, cfg.Jobs.MaxWorkers, cfg.Jobs.ResultTTL, cfg.Jobs.CleanupInterval, log.Logger)
	comparisonService := service.NewComparisonService(datasetService, jobService)

	handlers := api.NewHandlers(datasetService, jobService, comparisonService)

	router := mux.NewRouter()
	api.SetupRoutes(router, handlers)
	router.Use(api.LoggingMiddleware(log.Logger))
	router.Use(api.RecoveryMiddleware(log.Logger))

	handler := api.NewCORS().Handler(router)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Str("address", cfg.Server.Address).Msg("http server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server shutdown complete")
}
