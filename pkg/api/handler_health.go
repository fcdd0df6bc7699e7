package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maestro-works/maestro/pkg/database"
	"github.com/maestro-works/maestro/pkg/version"
)

// Health states reported by GET /health. Degraded means the API can
// still serve reads but execution capacity is impaired.
const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// HealthCheck is one subsystem's contribution to the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Details any    `json:"details,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// handleHealth reports overall service health. An unreachable database
// is unhealthy (503); an unhealthy executor pool on a reachable
// database is degraded (200), since queued work survives and another
// replica may still be executing.
func (s *Server) handleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:  healthStatusHealthy,
		Version: version.GitCommit,
		Checks:  make(map[string]HealthCheck),
	}

	if s.db != nil {
		dbHealth, err := database.Health(ctx, s.db.DB())
		check := HealthCheck{Status: dbHealth.Status, Details: dbHealth}
		if err != nil {
			check.Error = err.Error()
			resp.Status = healthStatusUnhealthy
		}
		resp.Checks["database"] = check
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		check := HealthCheck{Status: healthStatusHealthy, Details: poolHealth}
		if !poolHealth.IsHealthy {
			check.Status = healthStatusUnhealthy
			if resp.Status == healthStatusHealthy {
				resp.Status = healthStatusDegraded
			}
		}
		resp.Checks["executor_pool"] = check
	}

	if s.connManager != nil {
		resp.Checks["websocket"] = HealthCheck{
			Status:  healthStatusHealthy,
			Details: gin.H{"active_connections": s.connManager.ActiveConnections()},
		}
	}

	status := http.StatusOK
	if resp.Status == healthStatusUnhealthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}
