// Hackfleet orchestration server — drives the autonomous agent teams,
// schedules their cycles, and serves the admin/observability HTTP API.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hackfleet/hackfleet/pkg/agent"
	"github.com/hackfleet/hackfleet/pkg/api"
	"github.com/hackfleet/hackfleet/pkg/cleanup"
	"github.com/hackfleet/hackfleet/pkg/config"
	"github.com/hackfleet/hackfleet/pkg/database"
	"github.com/hackfleet/hackfleet/pkg/llm"
	"github.com/hackfleet/hackfleet/pkg/orchestrator"
	"github.com/hackfleet/hackfleet/pkg/scheduler"
	"github.com/hackfleet/hackfleet/pkg/services"
	"github.com/hackfleet/hackfleet/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	slog.Info("Starting hackfleet", "version", version.Full(), "http_port", httpPort)

	ctx := context.Background()

	// 1. Configuration
	cfg := config.Load()
	if len(cfg.LLM.EnabledProviders()) == 0 {
		slog.Warn("No LLM provider API keys configured; agent cycles will fail until one is set")
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup: free single-flight leases a
	// previous process left behind.
	if err := scheduler.RecoverOrphans(ctx, dbClient.Client); err != nil {
		slog.Error("Failed to recover orphaned executions", "error", err)
		// Non-fatal — the stuck-cycle reaper catches them eventually
	}

	// 4. LLM gateway and agent runners
	gateway := llm.NewGateway(cfg.LLM)
	slog.Info("LLM gateway initialized", "providers", gateway.Enabled())
	runners := agent.NewRunners(dbClient.Client, gateway, cfg.LLM)

	// 5. Orchestrator and scheduler
	detector := orchestrator.NewDetector(dbClient.Client, cfg.Orchestrator.WorkCacheTTL)
	executor := orchestrator.NewExecutor(dbClient.Client, runners, cfg.Orchestrator)
	orch := orchestrator.New(dbClient.Client, detector, executor, cfg.Orchestrator)

	sched := scheduler.New(dbClient.Client, orch, cfg.Scheduler)
	sched.Start(ctx)

	// 6. Retention cleanup
	cleanupService := cleanup.NewService(cfg.Retention, dbClient.Client)
	cleanupService.Start(ctx)

	// 7. Services and HTTP server
	stackService := services.NewStackService(dbClient.Client)
	chatService := services.NewChatService(dbClient.Client)
	obsService := services.NewObservabilityService(dbClient.Client)

	server := api.NewServer(dbClient, stackService, chatService, obsService, sched)
	httpServer := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Hackfleet started successfully")

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: stop taking HTTP traffic, then drain cycles.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	sched.Stop()
	cleanupService.Stop()

	slog.Info("Shutdown complete")
}
