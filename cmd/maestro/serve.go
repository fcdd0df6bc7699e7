package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/maestro-works/maestro/pkg/api"
	"github.com/maestro-works/maestro/pkg/audit"
	"github.com/maestro-works/maestro/pkg/bypass"
	"github.com/maestro-works/maestro/pkg/cleanup"
	"github.com/maestro-works/maestro/pkg/config"
	"github.com/maestro-works/maestro/pkg/contracts"
	"github.com/maestro-works/maestro/pkg/database"
	"github.com/maestro-works/maestro/pkg/events"
	"github.com/maestro-works/maestro/pkg/gates"
	"github.com/maestro-works/maestro/pkg/llm"
	"github.com/maestro-works/maestro/pkg/metrics"
	"github.com/maestro-works/maestro/pkg/orchestrator"
	"github.com/maestro-works/maestro/pkg/persona"
	"github.com/maestro-works/maestro/pkg/services"
	"github.com/maestro-works/maestro/pkg/workflow"
)

func newServeCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the orchestrator server: HTTP API, event fabric, and worker pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*configDir)
		},
	}
}

func runServe(configDir string) error {
	loadEnvFile(configDir)

	podID := resolvePodID()
	slog.Info("Starting maestro", "pod_id", podID, "config_dir", configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, configDir)
	if err != nil {
		return exitf(exitValidation, "initializing configuration: %w", err)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		return exitf(exitValidation, "loading database config: %w", err)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		return exitf(exitInternal, "connecting to database: %w", err)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	executionService := services.NewExecutionService(dbClient.Client)
	nodeService := services.NewNodeService(dbClient.Client)
	gateService := services.NewGateService(dbClient.Client)
	bypassService := services.NewBypassService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. One-time startup orphan cleanup
	if err := orchestrator.CleanupStartupOrphans(ctx, executionService, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 5. Registries: manifests, contracts, policy-backed validation
	registry, err := workflow.LoadRegistry(cfg.EnginePath)
	if err != nil {
		return exitf(exitValidation, "loading workflow manifests: %w", err)
	}
	slog.Info("Workflow manifests loaded", "count", registry.Len())

	contractRegistry, err := contracts.NewRegistryFromConfig(cfg)
	if err != nil {
		return exitf(exitValidation, "building contract registry: %w", err)
	}

	templates, err := persona.LoadTemplates(cfg.TemplatesPath)
	if err != nil {
		return exitf(exitValidation, "loading persona templates: %w", err)
	}

	// 6. Audit trails: bypass governance and workflow events
	bypassLog, err := audit.Open(cfg.PolicyRegistry.AuditLogLocation())
	if err != nil {
		return exitf(exitInternal, "opening bypass audit log: %w", err)
	}
	defer bypassLog.Close()

	eventLog, err := audit.Open(cfg.Defaults.WorkflowEventLog)
	if err != nil {
		return exitf(exitInternal, "opening workflow event log: %w", err)
	}
	defer eventLog.Close()

	m := metrics.NewMetrics(nil)

	bypassManager := bypass.NewManager(bypassService, gateService, cfg.PolicyRegistry,
		bypass.WithAuditLog(bypassLog),
		bypass.WithRateGauge(m),
	)
	validator := gates.NewValidator(cfg.PolicyRegistry, contractRegistry,
		gates.WithRecorder(gateService),
		gates.WithAuditLog(bypassLog),
	)

	// 7. LLM collaborator client
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on first RPC call
	llmClient, err := llm.NewGRPCClient(cfg.LLM.ServiceAddr)
	if err != nil {
		return exitf(exitInternal, "initializing LLM client: %w", err)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM client initialized", "addr", cfg.LLM.ServiceAddr)

	// 8. Streaming infrastructure
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second)

	// Start NotifyListener (dedicated pgx connection for LISTEN)
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		return exitf(exitInternal, "starting NotifyListener: %w", err)
	}
	defer notifyListener.Stop(ctx)

	// Wire listener ↔ manager bidirectional link
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 9. Workflow runner and worker pool (pool before HTTP server)
	runner := orchestrator.NewRunner(cfg, registry, contractRegistry, validator, bypassManager, llmClient,
		orchestrator.WithEventPublisher(eventPublisher),
		orchestrator.WithServices(executionService, nodeService),
		orchestrator.WithEventLog(eventLog),
		orchestrator.WithMetrics(m),
		orchestrator.WithTemplates(templates),
	)

	pool := orchestrator.NewPool(podID, cfg.Engine, executionService, eventService, eventPublisher, runner)
	if err := pool.Start(ctx); err != nil {
		return exitf(exitInternal, "starting worker pool: %w", err)
	}

	// 10. Retention sweeper
	sweeper := cleanup.NewService(cfg.Retention, executionService, eventService, bypassManager)
	sweeper.Start(ctx)

	// 11. HTTP server
	httpServer := api.NewServer(cfg.API.Port)
	httpServer.SetDatabase(dbClient)
	httpServer.SetExecutionService(executionService)
	httpServer.SetWorkflowRegistry(registry)
	httpServer.SetBypassManager(bypassManager)
	httpServer.SetPool(pool)
	httpServer.SetConnectionManager(connManager)
	httpServer.SetAuditLog(eventLog)
	httpServer.SetJWTSecret([]byte(os.Getenv("JWT_SECRET_KEY")))

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", cfg.API.Port)
		if err := httpServer.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Maestro started successfully",
		"pod_id", podID,
		"workers", cfg.Engine.WorkerCount)

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown: drain workers first, then the HTTP surface
	sweeper.Stop()

	poolShutdownCtx, poolCancel := context.WithTimeout(ctx, cfg.Engine.GracefulShutdownTimeout)
	defer poolCancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-poolShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete executions will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
	return nil
}
