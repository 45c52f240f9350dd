package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/thisiskushal31/TrendSignal/internal/analysis"
	"github.com/thisiskushal31/TrendSignal/internal/config"
	"github.com/thisiskushal31/TrendSignal/internal/llm"
	"github.com/thisiskushal31/TrendSignal/internal/llm/providers"
	"github.com/thisiskushal31/TrendSignal/internal/logger"
	"github.com/thisiskushal31/TrendSignal/internal/pipeline"
	"github.com/thisiskushal31/TrendSignal/internal/server"
)

const version = "1.0.0"

func main() {
	// Load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	var (
		configPath = flag.String("config", "", "Path to configuration file (optional)")
		addr       = flag.String("addr", "", "Listen address (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	log, err := logger.New(cfg.Server.Mode)
	if err != nil {
		os.Stderr.WriteString("failed to build logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	provider, err := providers.New(cfg.LLM)
	if err != nil {
		log.Fatalw("failed to create LLM provider", "error", err)
	}
	if !provider.IsEnabled() {
		log.Fatalw("LLM provider has no API key configured", "provider", provider.Name())
	}

	visionModel, textModel := config.Models(cfg)
	client := llm.NewClient(provider, visionModel, textModel, log)
	analyzer := analysis.New(client, log)
	pipe := pipeline.New(analyzer, log)

	handler := server.NewAnalyzeHandler(pipe, cfg.Server.RequestTimeout, log)
	router := server.NewRouter(server.RouterConfig{
		Handler:      handler,
		AllowOrigins: cfg.Server.AllowOrigins,
		Mode:         cfg.Server.Mode,
		Version:      version,
		Log:          log,
	})

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("received interrupt signal, shutting down")
		cancel()
	}()

	go func() {
		log.Infow("starting TrendSignal API",
			"version", version,
			"addr", cfg.Server.Addr,
			"provider", provider.Name(),
			"vision_model", visionModel,
			"text_model", textModel,
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorw("shutdown failed", "error", err)
	}
}
