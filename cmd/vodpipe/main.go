package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bnema/vodpipe/config"
	"github.com/bnema/vodpipe/internal/adapter/engine/ffmpeg"
	HTTPAdapter "github.com/bnema/vodpipe/internal/adapter/http"
	"github.com/bnema/vodpipe/internal/adapter/http/ratelimit"
	"github.com/bnema/vodpipe/internal/adapter/storage/jsonfile"
	"github.com/bnema/vodpipe/internal/adapter/storage/mediafs"
	sqlitestore "github.com/bnema/vodpipe/internal/adapter/storage/sqlite"
	"github.com/bnema/vodpipe/internal/infrastructure/logger"
	"github.com/bnema/vodpipe/internal/port"
	"github.com/bnema/vodpipe/internal/service"
)

const (
	shutdownTimeout = 30 * time.Second
	recoverTimeout  = 30 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error.Printf("failed to load config: %v", err)
		os.Exit(1)
	}
	logger.SetLevel(cfg.LogLevel)

	if len(os.Args) > 1 && os.Args[1] == "token" {
		os.Exit(printToken(cfg, os.Args[2:]))
	}

	if err := run(cfg); err != nil {
		logger.Error.Printf("%v", err)
		os.Exit(1)
	}
}

func printToken(cfg *config.Config, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: vodpipe token <ownerID>")
		return 2
	}
	token, err := service.NewAuthService(cfg.AuthSecret).GenerateToken(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot issue token: %v\n", err)
		return 1
	}
	fmt.Println(token)
	return 0
}

func openStore(cfg *config.Config) (port.AssetStore, error) {
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	switch cfg.StoreBackend {
	case "json":
		return jsonfile.NewStore(cfg.DataDir)
	default:
		return sqlitestore.NewStore(cfg.DataDir)
	}
}

func run(cfg *config.Config) error {
	logger.Info.Printf("starting vodpipe on port %d, store=%s, storage=%s", cfg.Port, cfg.StoreBackend, cfg.StorageRoot)

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer func() { _ = store.Close() }()

	layout, err := mediafs.NewLayout(cfg.StorageRoot)
	if err != nil {
		return fmt.Errorf("failed to prepare storage root: %w", err)
	}

	engine := ffmpeg.NewEngine(cfg.FFmpegPath, cfg.FFprobePath, cfg.SegmentSeconds)
	eventBus := service.NewEventBus()

	orchestrator := service.NewOrchestrator(store, engine, layout, eventBus, service.OrchestratorConfig{
		ThumbnailPercent: cfg.ThumbnailPct,
		StageTimeout:     cfg.StageTimeout,
	})
	dispatcher := service.NewDispatcher(orchestrator.Process)

	recoverCtx, recoverCancel := context.WithTimeout(context.Background(), recoverTimeout)
	_, err = orchestrator.RecoverInterrupted(recoverCtx)
	recoverCancel()
	if err != nil {
		return fmt.Errorf("failed to recover interrupted assets: %w", err)
	}

	ingestSvc := service.NewIngestService(store, layout, dispatcher, service.IngestConfig{
		AcceptedPrefixes: cfg.AcceptedPrefix,
		MaxUploadBytes:   cfg.MaxUploadBytes(),
	})
	deliverySvc := service.NewDeliveryService(store, layout)
	authSvc := service.NewAuthService(cfg.AuthSecret)

	var limiter HTTPAdapter.UploadLimiter
	if cfg.UploadsPerHour > 0 {
		uploadLimiter := ratelimit.NewUploadLimiter(cfg.UploadsPerHour, time.Hour)
		defer uploadLimiter.Stop()
		limiter = uploadLimiter
	}

	handlers := HTTPAdapter.NewHandlers(ingestSvc, deliverySvc, store, limiter, cfg.StrictSniff)
	server := HTTPAdapter.NewServer(handlers, HTTPAdapter.NewSSEHandler(eventBus, deliverySvc), authSvc)

	addr := fmt.Sprintf(":%d", cfg.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Minute,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info.Printf("received %s, shutting down", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		// Stop accepting new requests
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error.Printf("http shutdown error: %v", err)
		}

		// Let running pipelines finish, or cancel them at the deadline
		logger.Info.Printf("waiting for %d pipelines", dispatcher.InFlight())
		if err := dispatcher.Shutdown(shutdownCtx); err != nil {
			logger.Warn.Printf("pipelines cancelled: %v", err)
		}

		logger.Info.Printf("shutdown complete")
	}()

	logger.Info.Printf("server listening on %s", addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}

	<-shutdownDone
	return nil
}
