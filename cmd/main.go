package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/svdpmukherjee/memory-game-backend/config"
	"github.com/svdpmukherjee/memory-game-backend/handlers"
	"github.com/svdpmukherjee/memory-game-backend/idempotency"
	"github.com/svdpmukherjee/memory-game-backend/metrics"
	"github.com/svdpmukherjee/memory-game-backend/repository"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}
	level, _ := logrus.ParseLevel(cfg.LogLevel)
	logrus.SetLevel(level)

	seed, err := config.LoadSeed()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load bundled seed data")
	}

	ctx := context.Background()

	store, err := repository.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to MongoDB")
	}

	seedCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	if err := repository.Seed(seedCtx, store, seed.Theories, seed.GameConfig); err != nil {
		cancel()
		logrus.WithError(err).Fatal("failed to seed database")
	}
	cancel()

	var guard *idempotency.Guard
	if cfg.RedisAddr != "" {
		guard, err = idempotency.New(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			logrus.WithError(err).Fatal("failed to connect to Redis")
		}
	} else {
		logrus.Info("REDIS_ADDR not set, idempotency guard disabled")
	}

	if !cfg.AdminEnabled() {
		logrus.Info("ADMIN_PASSWORD_HASH not set, admin routes disabled")
	}

	m := metrics.New()
	h := handlers.New(store, cfg, seed, guard)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handlers.NewRouter(h, m),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logrus.WithField("port", cfg.Port).Info("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server failed")
		}
	}()

	// Wait for shutdown signal, then stop accepting requests before closing
	// external connections.
	signalCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-signalCtx.Done()
	logrus.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("server shutdown error")
	}
	if guard != nil {
		if err := guard.Close(); err != nil {
			logrus.WithError(err).Error("Redis close error")
		}
	}
	if err := store.Close(shutdownCtx); err != nil {
		logrus.WithError(err).Error("MongoDB disconnect error")
	}

	logrus.Info("shutdown complete")
}
