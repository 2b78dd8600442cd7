package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chat-session-manager/config"
	_ "chat-session-manager/docs" // Swagger docs
	gatewayLLM "chat-session-manager/internal/chat/gateway/llm"
	"chat-session-manager/internal/chat/registry/memory"
	"chat-session-manager/internal/chat/usecase"
	"chat-session-manager/internal/httpserver"
	"chat-session-manager/internal/sweeper"
	"chat-session-manager/pkg/llmprovider"
	"chat-session-manager/pkg/log"
)

// @title       Chat Session Manager API
// @description HTTP chat-session manager in front of conversational AI providers.
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

	logger.Info(ctx, "Starting Chat Session Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM provider stack
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	logger.Infof(ctx, "Initialized %d LLM provider(s)", len(providers))

	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)

	// 4. Chat domain: gateway, registry, use case
	gw := gatewayLLM.New(manager, gatewayLLM.Config{
		SystemPrompt: cfg.Chat.SystemPrompt,
		Temperature:  cfg.Chat.Temperature,
		MaxTokens:    cfg.Chat.MaxTokens,
	}, logger)

	reg := memory.New(logger)

	maxIdleAge := parseDuration(cfg.Session.MaxIdleAge, 24*time.Hour)
	chatUC := usecase.New(logger, reg, gw, maxIdleAge)

	// 5. Background sweeper
	sw := sweeper.New(logger, chatUC, sweeper.Config{
		MaxIdleAge:    maxIdleAge,
		SweepInterval: parseDuration(cfg.Session.SweepInterval, time.Hour),
	})
	sw.Start(ctx)
	defer sw.Stop()

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		ChatUseCase: chatUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// parseDuration parses a config duration string, falling back to def.
func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
