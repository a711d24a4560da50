package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chapelstack/sermon-flow/internal/classifier"
	"github.com/chapelstack/sermon-flow/internal/config"
	"github.com/chapelstack/sermon-flow/internal/gemini"
	"github.com/chapelstack/sermon-flow/internal/logger"
	"github.com/chapelstack/sermon-flow/internal/pipeline"
	"github.com/chapelstack/sermon-flow/internal/processor"
	"github.com/chapelstack/sermon-flow/internal/summarizer"
	"github.com/chapelstack/sermon-flow/internal/watcher"
)

func main() {
	ctx := context.Background()

	configPath := "config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Service Recording Segmentation Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Max concurrent recordings: %d", cfg.Performance.MaxConcurrent)

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies. A nil Gemini client selects the
	// deterministic keyword classifier and skips summarization.
	llm := gemini.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	if llm == nil {
		log.Warn(ctx, "GEMINI_API_KEYS not set: using keyword classifier, summaries disabled")
	} else {
		log.Info(ctx, "Gemini model: %s (%d API keys)", cfg.Gemini.Model, len(cfg.Gemini.APIKeys))
	}

	cls := classifier.New(llm, log)

	var sum summarizer.Summarizer
	if cfg.Summary.Enabled && llm != nil {
		sum = summarizer.New(llm, cfg.Summary.MaxChars, log)
	}

	pipe := pipeline.New(cfg.Segmentation, cls, sum, log)
	proc := processor.New(cfg, pipe, log)

	// Create watcher with processor as handler and concurrency control
	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	// Create context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start watcher in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	// Graceful shutdown
	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Pipeline stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
