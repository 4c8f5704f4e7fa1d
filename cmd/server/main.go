package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tag-ledger/internal/app"
	"tag-ledger/internal/config"
	"tag-ledger/internal/database"
	"tag-ledger/internal/middleware"
	"tag-ledger/internal/scheduler"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()
	slog.SetDefault(newLogger(cfg))

	db, err := database.Initialize(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize database: %v\n", err)
		os.Exit(1)
	}

	application, err := app.New(cfg, db, prometheus.DefaultRegisterer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build services: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rateLimiter := middleware.NewRateLimiter(cfg.Security)
	go rateLimiter.RunCleanup(ctx)

	queueDone := make(chan struct{})
	go func() {
		defer close(queueDone)
		application.Queue.StartProcessing(ctx)
	}()

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched, err = scheduler.New(cfg.Scheduler, application.Queue, application.Metrics)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create scheduler: %v\n", err)
			os.Exit(1)
		}
		sched.Start()
	}

	e := application.NewServer(rateLimiter, prometheus.DefaultGatherer)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	address := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	go func() {
		slog.Info("starting server",
			slog.String("address", address),
			slog.String("environment", cfg.Server.Environment),
		)
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped unexpectedly", slog.String("error", err.Error()))
			cancel()
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	select {
	case <-sc:
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", slog.String("error", err.Error()))
	}
	if sched != nil {
		sched.Stop(shutdownCtx)
	}

	cancel()
	select {
	case <-queueDone:
	case <-shutdownCtx.Done():
		slog.Warn("recompute queue did not drain before timeout")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	slog.Info("server stopped")
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
