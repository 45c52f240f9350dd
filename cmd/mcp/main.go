package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	mcpserverlib "github.com/mark3labs/mcp-go/server"

	"github.com/thisiskushal31/TrendSignal/internal/analysis"
	"github.com/thisiskushal31/TrendSignal/internal/config"
	"github.com/thisiskushal31/TrendSignal/internal/llm"
	"github.com/thisiskushal31/TrendSignal/internal/llm/providers"
	"github.com/thisiskushal31/TrendSignal/internal/logger"
	"github.com/thisiskushal31/TrendSignal/internal/mcpserver"
)

const version = "1.0.0"

func main() {
	// Load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	var (
		configPath = flag.String("config", "", "Path to configuration file (optional)")
		transport  = flag.String("transport", "", "Transport: http or stdio (overrides config)")
		addr       = flag.String("addr", "", "Listen address for HTTP transport (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *transport != "" {
		cfg.MCP.Transport = *transport
	}
	if *addr != "" {
		cfg.MCP.Addr = *addr
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

	s := mcpserver.New(analyzer, version, log)

	switch cfg.MCP.Transport {
	case "stdio":
		log.Infow("starting TrendSignal MCP server", "version", version, "transport", "stdio")
		if err := mcpserverlib.ServeStdio(s); err != nil {
			log.Fatalw("stdio server failed", "error", err)
		}

	default:
		log.Infow("starting TrendSignal MCP server",
			"version", version,
			"transport", "http",
			"addr", cfg.MCP.Addr,
			"provider", provider.Name(),
		)
		httpServer := mcpserverlib.NewStreamableHTTPServer(s)
		if err := httpServer.Start(cfg.MCP.Addr); err != nil {
			log.Fatalw("http server failed", "error", err)
		}
	}
}
