package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"robotshop-web/internal/config"
	"robotshop-web/internal/gateway"
	"robotshop-web/internal/logger"
	"robotshop-web/internal/router"
	"robotshop-web/internal/services"
	"robotshop-web/internal/session"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log := logger.InitLogger("info")
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log := logger.InitLogger(cfg.LogLevel)
	log.Info().Str("backend", cfg.BackendURL).Msg("Starting robotshop web")

	gw, err := gateway.New(gateway.Config{
		BaseURL: cfg.BackendURL,
		Timeout: cfg.RequestTimeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid backend configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := session.NewRegistry(cfg.SessionTTL, log)
	go registry.Run(ctx, time.Minute)
	defer registry.Close()

	sessionService := services.NewSessionService(gw, cfg.SessionSecret, 0, log)

	r := router.SetupRouter(gw, registry, sessionService, router.Options{
		RateLimit:      cfg.RateLimit,
		RateBurst:      cfg.RateBurst,
		AllowedOrigins: cfg.AllowedOrigins,
	}, log)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Msgf("Server listening on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("Server stopped")
}
