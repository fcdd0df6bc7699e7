// Package api exposes the REST and WebSocket surface of the
// orchestrator: workflow discovery, execution lifecycle, bypass
// governance, audit queries, health, and metrics.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/maestro-works/maestro/pkg/audit"
	"github.com/maestro-works/maestro/pkg/bypass"
	"github.com/maestro-works/maestro/pkg/database"
	"github.com/maestro-works/maestro/pkg/events"
	"github.com/maestro-works/maestro/pkg/orchestrator"
	"github.com/maestro-works/maestro/pkg/services"
	"github.com/maestro-works/maestro/pkg/workflow"
)

// Server wires the HTTP surface to the service layer. Collaborators are
// attached with setters after construction; handlers nil-check the ones
// they need and answer 503 when a dependency is not wired, so a partial
// deployment (e.g. no event fabric) degrades instead of panicking.
type Server struct {
	port int

	db          *database.Client
	executions  *services.ExecutionService
	workflows   *workflow.Registry
	bypasses    *bypass.Manager
	pool        *orchestrator.Pool
	connManager *events.ConnectionManager
	auditLog    *audit.Logger
	jwtSecret   []byte

	httpServer *http.Server
}

// NewServer creates a server listening on the given port.
func NewServer(port int) *Server {
	return &Server{port: port}
}

// SetDatabase attaches the database client used by the health check.
func (s *Server) SetDatabase(db *database.Client) { s.db = db }

// SetExecutionService attaches the execution lifecycle service.
func (s *Server) SetExecutionService(svc *services.ExecutionService) { s.executions = svc }

// SetWorkflowRegistry attaches the manifest registry.
func (s *Server) SetWorkflowRegistry(reg *workflow.Registry) { s.workflows = reg }

// SetBypassManager attaches the bypass governance manager.
func (s *Server) SetBypassManager(m *bypass.Manager) { s.bypasses = m }

// SetPool attaches the executor pool for health and same-pod cancellation.
func (s *Server) SetPool(p *orchestrator.Pool) { s.pool = p }

// SetConnectionManager attaches the WebSocket connection manager.
func (s *Server) SetConnectionManager(m *events.ConnectionManager) { s.connManager = m }

// SetAuditLog attaches the workflow audit trail used by the audit endpoints.
func (s *Server) SetAuditLog(l *audit.Logger) { s.auditLog = l }

// SetJWTSecret sets the HS256 secret used to verify WebSocket tokens.
func (s *Server) SetJWTSecret(secret []byte) { s.jwtSecret = secret }

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())
	router.Use(securityHeaders())

	router.GET("/health", s.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/workflows", s.handleListWorkflows)
		v1.GET("/workflows/:id", s.handleGetWorkflow)
		v1.POST("/workflows/:id/execute", s.handleExecuteWorkflow)

		v1.GET("/executions", s.handleListExecutions)
		v1.GET("/executions/:id", s.handleGetExecution)
		v1.POST("/executions/:id/cancel", s.handleCancelExecution)

		v1.POST("/bypasses", s.handleProposeBypass)
		v1.GET("/bypasses", s.handleListBypasses)
		v1.GET("/bypasses/metrics", s.handleBypassMetrics)
		v1.GET("/bypasses/:id", s.handleGetBypass)
		v1.POST("/bypasses/:id/approve", s.handleApproveBypass)
		v1.POST("/bypasses/:id/reject", s.handleRejectBypass)
		v1.POST("/bypasses/:id/revoke", s.handleRevokeBypass)

		v1.POST("/audit/:iteration", s.handleAppendAuditEvent)
		v1.GET("/audit/:iteration/report", s.handleAuditReport)
	}

	router.GET("/ws/workflow/:workflow_id", s.handleWorkflowWS)

	return router
}

// Start begins serving. Blocks until the listener fails or Shutdown is
// called.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
