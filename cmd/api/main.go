package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workspace-chat/config"
	_ "workspace-chat/docs" // Swagger docs
	calendarCache "workspace-chat/internal/calendar/cache"
	calendarHTTP "workspace-chat/internal/calendar/delivery/http"
	calendarRepo "workspace-chat/internal/calendar/repository/google"
	calendarUC "workspace-chat/internal/calendar/usecase"
	chatHTTP "workspace-chat/internal/chat/delivery/http"
	chatUC "workspace-chat/internal/chat/usecase"
	"workspace-chat/internal/httpserver"
	"workspace-chat/internal/middleware"
	"workspace-chat/internal/proxy"
	workspaceHTTP "workspace-chat/internal/workspace/delivery/http"
	workspaceUC "workspace-chat/internal/workspace/usecase"
	"workspace-chat/pkg/aiprovider"
	"workspace-chat/pkg/log"
)

// @title       Workspace Chat API
// @description Browser chat backend with AI providers and Google Workspace experiments.
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

	logger.Info(ctx, "Starting Workspace Chat...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. AI provider registry
	providers, err := aiprovider.InitializeProviders(&cfg.AI, &cfg.Proxy)
	if err != nil {
		logger.Error(ctx, "Failed to initialize AI providers: ", err)
		return
	}
	registry, err := aiprovider.NewRegistry(providers, cfg.AI.DefaultProvider)
	if err != nil {
		logger.Error(ctx, "Failed to build provider registry: ", err)
		return
	}
	logger.Infof(ctx, "AI providers ready: %v (default %s)", registry.Providers(), registry.DefaultProvider())

	// 4. Calendar domain
	loc, err := time.LoadLocation(cfg.Calendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Calendar.Timezone, err)
		loc = time.UTC
	}
	weekCache := calendarCache.New()
	eventRepo := calendarRepo.New(logger, cfg.Calendar.MaxResults)
	calUC := calendarUC.New(logger, eventRepo, weekCache, loc)
	calHandler := calendarHTTP.New(logger, calUC)

	// 5. Workspace experiments
	wsUC := workspaceUC.New(logger)
	wsHandler := workspaceHTTP.New(logger, wsUC)

	// 6. Chat domain
	chatUseCase := chatUC.New(logger, calUC, wsUC, registry)
	chatHandler := chatHTTP.New(logger, chatUseCase)

	// 7. Free-tier proxy
	proxyHandler := proxy.New(logger, cfg.Proxy)

	// 8. Session middleware
	mw := middleware.New(logger, cfg.Session)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		ChatHandler:      chatHandler,
		CalendarHandler:  calHandler,
		WorkspaceHandler: wsHandler,
		ProxyHandler:     proxyHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
