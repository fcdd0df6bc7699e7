package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/pkg/config"
	"github.com/maestro-works/maestro/pkg/services"
	"github.com/maestro-works/maestro/pkg/workflow"
)

// stubExecutionService is attachable but must never be reached by the
// request path under test; requests that would hit the database belong
// in the integration suite.
func stubExecutionService() *services.ExecutionService {
	return services.NewExecutionService(nil)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func testRegistry(t *testing.T) *workflow.Registry {
	t.Helper()
	reg := workflow.NewRegistry(t.TempDir())
	require.NoError(t, reg.Register(&workflow.Manifest{
		IterationID: "iter-20260301-100000",
		Project:     "billing",
		Nodes: []workflow.ManifestNode{
			{ID: "req", Type: workflow.NodeTypeAction, Phase: config.PhaseRequirements},
			{ID: "design", Type: workflow.NodeTypeAction, Phase: config.PhaseDesign, DependsOn: []string{"req"}},
		},
	}))
	return reg
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListWorkflows(t *testing.T) {
	server := NewServer(0)
	server.SetWorkflowRegistry(testRegistry(t))
	router := server.Router()

	w := doRequest(t, router, http.MethodGet, "/api/v1/workflows", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Workflows []WorkflowSummary `json:"workflows"`
		Total     int               `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Workflows, 1)
	assert.Equal(t, "iter-20260301-100000", resp.Workflows[0].IterationID)
	assert.Equal(t, "billing", resp.Workflows[0].Project)
	assert.Equal(t, 2, resp.Workflows[0].NodeCount)
}

func TestGetWorkflow(t *testing.T) {
	server := NewServer(0)
	server.SetWorkflowRegistry(testRegistry(t))
	router := server.Router()

	w := doRequest(t, router, http.MethodGet, "/api/v1/workflows/iter-20260301-100000", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var m workflow.Manifest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, "billing", m.Project)
	assert.Len(t, m.Nodes, 2)
}

func TestGetWorkflowNotFound(t *testing.T) {
	server := NewServer(0)
	server.SetWorkflowRegistry(testRegistry(t))
	router := server.Router()

	w := doRequest(t, router, http.MethodGet, "/api/v1/workflows/ghost", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, KindNotFound, resp.Kind)
}

func TestExecuteWorkflowUnavailableWithoutQueue(t *testing.T) {
	server := NewServer(0)
	server.SetWorkflowRegistry(testRegistry(t))
	router := server.Router()

	w := doRequest(t, router, http.MethodPost, "/api/v1/workflows/iter-20260301-100000/execute",
		gin.H{"requirement": "Build an invoicing service."})
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, KindUnavailable, resp.Kind)
	assert.True(t, resp.Retryable)
}

func TestExecuteWorkflowRequiresRequirement(t *testing.T) {
	server := NewServer(0)
	server.SetWorkflowRegistry(testRegistry(t))
	server.SetExecutionService(stubExecutionService())
	router := server.Router()

	w := doRequest(t, router, http.MethodPost, "/api/v1/workflows/iter-20260301-100000/execute",
		gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, KindValidation, resp.Kind)
}

func TestExecuteUnknownWorkflow(t *testing.T) {
	server := NewServer(0)
	server.SetWorkflowRegistry(testRegistry(t))
	server.SetExecutionService(stubExecutionService())
	router := server.Router()

	w := doRequest(t, router, http.MethodPost, "/api/v1/workflows/ghost/execute",
		gin.H{"requirement": "anything"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthWithoutDependencies(t *testing.T) {
	server := NewServer(0)
	router := server.Router()

	w := doRequest(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, healthStatusHealthy, resp.Status)
	assert.NotEmpty(t, resp.Version)
}

func TestSecurityHeaders(t *testing.T) {
	server := NewServer(0)
	server.SetWorkflowRegistry(testRegistry(t))
	router := server.Router()

	w := doRequest(t, router, http.MethodGet, "/api/v1/workflows", nil)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestMetricsEndpoint(t *testing.T) {
	server := NewServer(0)
	router := server.Router()

	w := doRequest(t, router, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
