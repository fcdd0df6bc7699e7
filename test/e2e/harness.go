// Package e2e provides end-to-end test infrastructure for the maestro
// pipeline: a real Postgres-backed stack with a canned LLM client.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/ent"
	"github.com/maestro-works/maestro/pkg/api"
	"github.com/maestro-works/maestro/pkg/audit"
	"github.com/maestro-works/maestro/pkg/bypass"
	"github.com/maestro-works/maestro/pkg/config"
	"github.com/maestro-works/maestro/pkg/contracts"
	"github.com/maestro-works/maestro/pkg/database"
	"github.com/maestro-works/maestro/pkg/events"
	"github.com/maestro-works/maestro/pkg/gates"
	"github.com/maestro-works/maestro/pkg/llm"
	"github.com/maestro-works/maestro/pkg/orchestrator"
	"github.com/maestro-works/maestro/pkg/services"
	"github.com/maestro-works/maestro/pkg/workflow"
	testdb "github.com/maestro-works/maestro/test/database"
	"github.com/maestro-works/maestro/test/util"
)

// jwtSecret signs the WebSocket tokens every test app accepts.
var jwtSecret = []byte("e2e-test-secret")

// TestApp boots a complete maestro instance for e2e testing.
type TestApp struct {
	// Core
	Config    *config.Config
	DBClient  *database.Client
	EntClient *ent.Client

	// Test wiring
	LLMClient llm.Client

	// Real infrastructure
	Executions     *services.ExecutionService
	Bypasses       *bypass.Manager
	EventPublisher *events.EventPublisher
	ConnManager    *events.ConnectionManager
	NotifyListener *events.NotifyListener
	Pool           *orchestrator.Pool
	Server         *api.Server

	// Runtime
	BaseURL string // e.g. "http://127.0.0.1:54321"

	t *testing.T
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	llmClient      llm.Client
	manifests      []*workflow.Manifest
	workerCount    int
	maxRemediation int
	nodeTimeout    time.Duration
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithLLMClient sets a pre-scripted LLM client.
func WithLLMClient(client llm.Client) TestAppOption {
	return func(c *testAppConfig) { c.llmClient = client }
}

// WithManifests registers workflow manifests instead of the default
// two-phase workflow.
func WithManifests(manifests ...*workflow.Manifest) TestAppOption {
	return func(c *testAppConfig) { c.manifests = manifests }
}

// WithWorkerCount sets the number of executor goroutines.
func WithWorkerCount(n int) TestAppOption {
	return func(c *testAppConfig) { c.workerCount = n }
}

// WithMaxRemediationIterations bounds the exit-gate remediation loop.
func WithMaxRemediationIterations(n int) TestAppOption {
	return func(c *testAppConfig) { c.maxRemediation = n }
}

// WithNodeTimeout bounds single node executions. Timeout tests shrink it.
func WithNodeTimeout(d time.Duration) TestAppOption {
	return func(c *testAppConfig) { c.nodeTimeout = d }
}

// TwoPhaseManifest is the default e2e workflow: one requirements node
// feeding one design node.
func TwoPhaseManifest(iterationID string) *workflow.Manifest {
	return &workflow.Manifest{
		IterationID: iterationID,
		Project:     "invoicing",
		Nodes: []workflow.ManifestNode{
			{ID: "req-spec", Type: workflow.NodeTypeAction, Phase: config.PhaseRequirements},
			{ID: "design-arch", Type: workflow.NodeTypeAction, Phase: config.PhaseDesign, DependsOn: []string{"req-spec"}},
		},
	}
}

// CompletingLLMClient scripts a canned client that satisfies both
// deliverable contracts of TwoPhaseManifest.
func CompletingLLMClient() *llm.CannedClient {
	return llm.NewCannedClient("acknowledged",
		ExtractionRule(),
		WriteFileRule("requirements_analyst", "drafted the spec", "spec.md"),
		WriteFileRule("solution_architect", "designed the system", "docs/architecture.md"),
	)
}

// NewTestApp creates and starts a full maestro test instance.
// Shutdown is registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{
		workerCount:    1,
		maxRemediation: 1,
		nodeTimeout:    20 * time.Second,
	}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.llmClient == nil {
		tc.llmClient = CompletingLLMClient()
	}
	if len(tc.manifests) == 0 {
		tc.manifests = []*workflow.Manifest{TwoPhaseManifest("iter-e2e")}
	}

	cfg := testConfig(t, tc)
	ctx := context.Background()

	// 1. Database — per-test schema on a shared container.
	dbClient := testdb.NewTestClient(t)
	entClient := dbClient.Client

	// 2. Domain services.
	executionService := services.NewExecutionService(entClient)
	nodeService := services.NewNodeService(entClient)
	gateService := services.NewGateService(entClient)
	bypassService := services.NewBypassService(entClient)
	eventService := services.NewEventService(entClient)

	// 3. Registries.
	registry := workflow.NewRegistry(t.TempDir())
	for _, m := range tc.manifests {
		require.NoError(t, registry.Register(m))
	}
	contractRegistry := e2eContracts(t)

	// 4. Governance: audit trail, bypass manager, gate validator.
	auditLog, err := audit.Open(filepath.Join(t.TempDir(), "workflow_events.jsonl"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = auditLog.Close() })

	bypassManager := bypass.NewManager(bypassService, gateService, cfg.PolicyRegistry,
		bypass.WithAuditLog(auditLog))
	validator := gates.NewValidator(cfg.PolicyRegistry, contractRegistry,
		gates.WithRecorder(gateService),
		gates.WithAuditLog(auditLog))

	// 5. Streaming infrastructure — real, backed by the test DB.
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	adapter := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(adapter, 5*time.Second)

	notifyListener := events.NewNotifyListener(util.GetBaseConnectionString(t), connManager)
	require.NoError(t, notifyListener.Start(ctx))
	connManager.SetListener(notifyListener)

	// 6. Runner and pool.
	runner := orchestrator.NewRunner(cfg, registry, contractRegistry, validator, bypassManager, tc.llmClient,
		orchestrator.WithEventPublisher(eventPublisher),
		orchestrator.WithServices(executionService, nodeService),
		orchestrator.WithEventLog(auditLog),
	)

	podID := fmt.Sprintf("e2e-test-%s", t.Name())
	pool := orchestrator.NewPool(podID, cfg.Engine, executionService, eventService, eventPublisher, runner)
	require.NoError(t, pool.Start(ctx))

	// 7. HTTP server.
	server := api.NewServer(0)
	server.SetDatabase(dbClient)
	server.SetExecutionService(executionService)
	server.SetWorkflowRegistry(registry)
	server.SetBypassManager(bypassManager)
	server.SetPool(pool)
	server.SetConnectionManager(connManager)
	server.SetAuditLog(auditLog)
	server.SetJWTSecret(jwtSecret)

	ts := httptest.NewServer(server.Router())

	app := &TestApp{
		Config:         cfg,
		DBClient:       dbClient,
		EntClient:      entClient,
		LLMClient:      tc.llmClient,
		Executions:     executionService,
		Bypasses:       bypassManager,
		EventPublisher: eventPublisher,
		ConnManager:    connManager,
		NotifyListener: notifyListener,
		Pool:           pool,
		Server:         server,
		BaseURL:        ts.URL,
		t:              t,
	}

	// Cleanup in reverse-creation order.
	t.Cleanup(func() {
		ts.Close()
		pool.Stop()
		notifyListener.Stop(context.Background())
		// DB cleanup handled by testdb.NewTestClient/SetupTestDatabase
	})

	return app
}

// testConfig builds a config tuned for fast polling and short timeouts.
func testConfig(t *testing.T, tc *testAppConfig) *config.Config {
	t.Helper()

	engine := config.DefaultEngineConfig()
	engine.WorkerCount = tc.workerCount
	engine.MaxConcurrentExecutions = tc.workerCount
	engine.PollInterval = 100 * time.Millisecond
	engine.PollIntervalJitter = 50 * time.Millisecond
	engine.DefaultNodeTimeout = tc.nodeTimeout
	engine.ExecutionTimeout = 30 * time.Second
	engine.GracefulShutdownTimeout = 10 * time.Second
	engine.MaxRemediationIterations = tc.maxRemediation
	engine.OrphanThreshold = time.Minute

	defaults := config.DefaultDefaults()
	defaults.OutputDir = t.TempDir()

	// Thresholds of zero make the exit gates judge deliverable presence
	// only; the canned client controls which deliverables exist.
	policies := map[config.Phase]config.PhasePolicy{}
	for _, phase := range []config.Phase{config.PhaseRequirements, config.PhaseDesign} {
		policies[phase] = config.PhasePolicy{Gates: map[string]config.GateSLO{
			"quality_score":         {Threshold: 0, Severity: config.GateSeverityBlocking},
			"artifact_completeness": {Threshold: 0, Severity: config.GateSeverityBlocking},
		}}
	}

	return &config.Config{
		Defaults: defaults,
		Engine:   engine,
		PersonaRegistry: config.NewPersonaRegistry(map[string]*config.PersonaConfig{
			"requirements_analyst": {
				Role:         "Requirements Analyst",
				Capabilities: []string{"requirements"},
				SystemPrompt: "You are the requirements analyst.",
			},
			"solution_architect": {
				Role:         "Solution Architect",
				Capabilities: []string{"architecture"},
				SystemPrompt: "You are the solution architect.",
			},
		}),
		PolicyRegistry: config.NewPolicyRegistry(&config.PolicyConfig{
			Phases: policies,
			BypassRules: config.BypassRules{
				BypassableGates: []config.BypassableGate{
					{Gate: "artifact_completeness", Phase: config.PhaseRequirements, RequiresADR: true},
					{Gate: "artifact_completeness", Phase: config.PhaseDesign, RequiresADR: true},
				},
				NonBypassableGates: []config.GateRef{
					{Gate: "security_scan"},
				},
			},
		}),
	}
}

func e2eContracts(t *testing.T) *contracts.Registry {
	t.Helper()
	reg := contracts.NewRegistry()
	_, err := reg.Register(contracts.Contract{
		Phase:        config.PhaseRequirements,
		Deliverables: []contracts.Deliverable{{Name: "spec", Patterns: []string{"**/spec*.md"}}},
		Owners:       []string{"requirements_analyst"},
	})
	require.NoError(t, err)
	_, err = reg.Register(contracts.Contract{
		Phase:        config.PhaseDesign,
		Deliverables: []contracts.Deliverable{{Name: "architecture", Patterns: []string{"**/architecture*.md"}}},
		Owners:       []string{"solution_architect"},
	})
	require.NoError(t, err)
	return reg
}

// WSToken returns a signed token the test server's WebSocket endpoint
// accepts.
func (a *TestApp) WSToken(subject string) string {
	a.t.Helper()
	token, err := jwt.NewBuilder().
		Subject(subject).
		IssuedAt(time.Now()).
		Expiration(time.Now().Add(time.Hour)).
		Build()
	require.NoError(a.t, err)

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, jwtSecret))
	require.NoError(a.t, err)
	return string(signed)
}

// WSURL builds the authenticated WebSocket URL for a workflow.
func (a *TestApp) WSURL(workflowID string) string {
	base := "ws" + strings.TrimPrefix(a.BaseURL, "http")
	return fmt.Sprintf("%s/ws/workflow/%s?token=%s", base, workflowID, a.WSToken("e2e"))
}

// ExecuteWorkflow starts an execution through the API and returns the
// execution ID.
func (a *TestApp) ExecuteWorkflow(workflowID, requirement string) string {
	a.t.Helper()
	status, body := a.PostJSON("/api/v1/workflows/"+workflowID+"/execute", map[string]any{
		"requirement": requirement,
	})
	require.Equal(a.t, http.StatusAccepted, status, "execute returned %d: %s", status, body)

	var resp struct {
		ExecutionID string `json:"execution_id"`
	}
	require.NoError(a.t, json.Unmarshal(body, &resp))
	require.NotEmpty(a.t, resp.ExecutionID)
	return resp.ExecutionID
}

// GetExecution fetches the execution detail as a generic map.
func (a *TestApp) GetExecution(executionID string) map[string]any {
	a.t.Helper()
	status, body := a.GetJSON("/api/v1/executions/" + executionID)
	require.Equal(a.t, http.StatusOK, status, "get execution returned %d: %s", status, body)

	var detail map[string]any
	require.NoError(a.t, json.Unmarshal(body, &detail))
	return detail
}

// WaitForExecutionStatus polls the API until the execution reaches the
// given status or the timeout expires.
func (a *TestApp) WaitForExecutionStatus(executionID, status string, timeout time.Duration) map[string]any {
	a.t.Helper()
	deadline := time.Now().Add(timeout)
	var last map[string]any
	for time.Now().Before(deadline) {
		last = a.GetExecution(executionID)
		if last["status"] == status {
			return last
		}
		time.Sleep(50 * time.Millisecond)
	}
	a.t.Fatalf("execution %s never reached status %q (last: %v)", executionID, status, last["status"])
	return nil
}

// PostJSON issues a POST with a JSON body against the test server.
func (a *TestApp) PostJSON(path string, payload any) (int, []byte) {
	a.t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(a.t, err)

	req, err := http.NewRequest(http.MethodPost, a.BaseURL+path, bytes.NewReader(data))
	require.NoError(a.t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-User", "e2e")

	return a.do(req)
}

// GetJSON issues a GET against the test server.
func (a *TestApp) GetJSON(path string) (int, []byte) {
	a.t.Helper()
	req, err := http.NewRequest(http.MethodGet, a.BaseURL+path, nil)
	require.NoError(a.t, err)
	return a.do(req)
}

func (a *TestApp) do(req *http.Request) (int, []byte) {
	a.t.Helper()
	resp, err := http.DefaultClient.Do(req)
	require.NoError(a.t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)
	return resp.StatusCode, body
}
