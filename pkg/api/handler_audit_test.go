package api

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/pkg/audit"
)

func auditServer(t *testing.T) (*Server, *audit.Logger) {
	t.Helper()
	logger, err := audit.Open(filepath.Join(t.TempDir(), "trail.jsonl"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = logger.Close() })

	server := NewServer(0)
	server.SetAuditLog(logger)
	return server, logger
}

func TestAppendAuditEvent(t *testing.T) {
	server, logger := auditServer(t)
	router := server.Router()

	w := doRequest(t, router, http.MethodPost, "/api/v1/audit/iter-1", gin.H{
		"event_type": "review_completed",
		"phase":      "design",
		"details":    gin.H{"reviewer": "alice"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	events, err := audit.Collect(logger.Path(), audit.Filter{WorkflowID: "iter-1"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "review_completed", events[0].EventType)
	assert.Equal(t, "design", events[0].Phase)
	assert.Equal(t, "api-client", events[0].Actor)
	assert.Equal(t, "alice", events[0].Details["reviewer"])
}

func TestAppendAuditEventRequiresEventType(t *testing.T) {
	server, _ := auditServer(t)
	router := server.Router()

	w := doRequest(t, router, http.MethodPost, "/api/v1/audit/iter-1", gin.H{
		"phase": "design",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuditReportScopedToIteration(t *testing.T) {
	server, logger := auditServer(t)
	router := server.Router()

	require.NoError(t, logger.Append(audit.Event{
		EventType:  audit.EventGateEvaluation,
		WorkflowID: "iter-1",
		Gate:       "test_coverage",
		Details:    map[string]any{"passed": false},
	}))
	require.NoError(t, logger.Append(audit.Event{
		EventType:  audit.EventGateEvaluation,
		WorkflowID: "iter-1",
		Gate:       "quality_score",
		Details:    map[string]any{"passed": true},
	}))
	require.NoError(t, logger.Append(audit.Event{
		EventType:  audit.EventBypassRequested,
		WorkflowID: "iter-2",
	}))

	w := doRequest(t, router, http.MethodGet, "/api/v1/audit/iter-1/report", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var report audit.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "iter-1", report.WorkflowID)
	assert.Equal(t, 2, report.TotalEvents)
	assert.Equal(t, 2, report.GatesEvaluated)
	assert.Equal(t, 1, report.GatesPassed)
	assert.Equal(t, 1, report.GatesFailed)
	assert.Equal(t, 1, report.GateFailures["test_coverage"])
	assert.Empty(t, report.BypassesByState)
}

func TestAuditEndpointsUnavailableWithoutLog(t *testing.T) {
	server := NewServer(0)
	router := server.Router()

	w := doRequest(t, router, http.MethodGet, "/api/v1/audit/iter-1/report", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
