package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tundeakins/quote-widget-api/internal/database"
	"github.com/tundeakins/quote-widget-api/internal/server"
	"github.com/tundeakins/quote-widget-api/pkg/config"
	"github.com/tundeakins/quote-widget-api/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()
	log := logger.New(cfg.LogLevel, cfg.AppEnv)

	db, err := database.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	srv, err := server.NewServer(db, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("build server")
	}

	httpServer := srv.HTTPServer()

	srv.StartBackgroundJobs()

	go func() {
		log.Info().Str("port", cfg.Port).Msg("quote widget api listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	srv.StopBackgroundJobs()

	if err := db.Close(); err != nil {
		log.Error().Err(err).Msg("close database")
	}
}
