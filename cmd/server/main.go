package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"proposal-assistant/internal/api"
	"proposal-assistant/internal/config"
	"proposal-assistant/internal/handlers"
	"proposal-assistant/internal/logging"
	"proposal-assistant/internal/responder"
	"proposal-assistant/internal/services"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.LoadServerConfig()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// 2. Logging
	logger, logCloser, err := logging.Init(cfg.Log, os.Stdout)
	if err != nil {
		logger.Warn("log file unavailable, logging to stdout only", slog.Any("error", err))
	}
	defer logCloser.Close()
	logger.Info("starting proposal assistant")

	// 3. Initialize Dependencies (Selector, Service, Handler)
	selector := responder.New()
	chatService := services.NewChatService(selector, logger)
	chatHandler := handlers.NewChatHandler(chatService, cfg.MaxBodyBytes, logger)

	// 4. Setup Router
	router := api.NewRouter(api.RouterDependencies{
		ChatHandler: chatHandler,
		Config:      cfg,
		Logger:      logger,
	})

	// 5. Configure and Start HTTP Server
	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("port", cfg.HTTPPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-stopChan:
		logger.Info("shutdown signal received, initiating graceful shutdown")
	case err, ok := <-serveErr:
		if ok {
			logger.Error("could not listen", slog.String("port", cfg.HTTPPort), slog.Any("error", err))
			logCloser.Close()
			os.Exit(1)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
		return
	}
	logger.Info("server shutdown complete")
}
