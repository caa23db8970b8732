package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/subha-ilamathy/kyc-document-extraction/internal/config"
	"github.com/subha-ilamathy/kyc-document-extraction/internal/extractor/fireworks"
	"github.com/subha-ilamathy/kyc-document-extraction/internal/handler"
	"github.com/subha-ilamathy/kyc-document-extraction/internal/port"
	"github.com/subha-ilamathy/kyc-document-extraction/internal/registry/memory"
	"github.com/subha-ilamathy/kyc-document-extraction/internal/router"
	"github.com/subha-ilamathy/kyc-document-extraction/internal/service"
	localstorage "github.com/subha-ilamathy/kyc-document-extraction/internal/storage/local"
	s3storage "github.com/subha-ilamathy/kyc-document-extraction/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fieldExtractor, err := fireworks.NewExtractor(&cfg.Extractor)
	if err != nil {
		return fmt.Errorf("failed to initialize field extractor: %w", err)
	}

	scratch, err := newScratchStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize scratch storage: %w", err)
	}

	registry := memory.NewRegistry()

	queue := service.NewProcessQueue(service.ProcessQueueConfig{
		Concurrency: cfg.Queue.Concurrency,
		BufferSize:  cfg.Queue.BufferSize,
		TaskTimeout: time.Duration(cfg.Queue.TaskTimeoutSecs) * time.Second,
	})

	docSvc := service.NewDocumentService(registry, scratch, fieldExtractor, queue, cfg.Extractor.DefaultModel)

	// Initialize handlers
	docH := handler.NewDocumentHandler(docSvc)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(docH, healthH, &cfg.CORS)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	queueDone := make(chan struct{})
	go func() {
		queue.Start(ctx, docSvc)
		close(queueDone)
	}()

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		stop()
		<-queueDone
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Printf("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}

	// Wait for in-flight processing tasks to drain.
	<-queueDone

	return nil
}

func newScratchStore(cfg *config.Config) (port.ScratchStore, error) {
	switch cfg.Scratch.Backend {
	case "s3":
		return s3storage.NewStore(&cfg.S3)
	case "", "local":
		return localstorage.NewStore(cfg.Scratch.Dir)
	default:
		return nil, fmt.Errorf("unknown scratch backend: %s", cfg.Scratch.Backend)
	}
}
