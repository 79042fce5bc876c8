package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"research-chatbot/config"
	_ "research-chatbot/docs" // Swagger docs
	"research-chatbot/internal/httpserver"
	jsonfsRepo "research-chatbot/internal/library/repository/jsonfs"
	"research-chatbot/pkg/llmprovider"
	"research-chatbot/pkg/log"
)

// @title       Research Chatbot API
// @description Chatbot API with scientific article search, theme recommendation, explanation, and summarization.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Research Chatbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Article/cluster index
	libraryRepo, err := jsonfsRepo.New(cfg.Library.ResourcesDir, logger)
	if err != nil {
		logger.Error(ctx, "Failed to load library resources: ", err)
		return
	}

	// 4. LLM providers. A missing credential is not fatal: the service runs
	// degraded, /health reports chatbot_ready=false and /chat answers 503.
	var llm *llmprovider.Manager
	chatbotReady := false

	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "No LLM provider available, starting degraded: %v", err)
	} else {
		llm = llmprovider.NewManager(providers, &llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      parseDurationOr(cfg.LLM.RetryDelay, 500*time.Millisecond),
			MaxTotalTimeout: parseDurationOr(cfg.LLM.MaxTotalTimeout, 9*time.Second),
		}, logger)
		chatbotReady = true
		logger.Infof(ctx, "LLM manager initialized with %d provider(s)", len(providers))
	}

	// 5. HTTP Server
	srvCfg := httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		AppConfig:    cfg,
		Library:      libraryRepo,
		ChatbotReady: chatbotReady,
	}
	if llm != nil {
		srvCfg.LLM = llm
	}

	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDurationOr(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
