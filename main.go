package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/mansakrishna23/simple-message-bank/config"
	"github.com/mansakrishna23/simple-message-bank/database"
	"github.com/mansakrishna23/simple-message-bank/handlers"
	"github.com/mansakrishna23/simple-message-bank/logger"
	"github.com/mansakrishna23/simple-message-bank/repositories"
	"github.com/mansakrishna23/simple-message-bank/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	logFile := logger.InitLogger(cfg)
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// One pooled handle for the process, injected below.
	db, err := database.Open(ctx, cfg.DBPath, cfg.BusyTimeout)
	if err != nil {
		logrus.Fatalf("Could not open message store: %v", err)
	}

	messageRepo := repositories.NewMessageRepository(db)
	handler, err := handlers.NewHandler(messageRepo, cfg.SampleSize)
	if err != nil {
		logrus.Fatalf("Could not load templates: %v", err)
	}
	systemHandler := handlers.NewSystemHandler(messageRepo)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      routes.SetupRoutes(handler, systemHandler),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		logrus.Infof("Server started on port: %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutdown signal received; shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Graceful shutdown failed")
	}
	if err := db.Close(); err != nil {
		logrus.WithError(err).Error("Closing database failed")
	}

	logrus.Info("Server stopped")
}
