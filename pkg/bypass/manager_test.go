package bypass

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/ent/bypassrequest"
	"github.com/maestro-works/maestro/pkg/audit"
	"github.com/maestro-works/maestro/pkg/config"
	"github.com/maestro-works/maestro/pkg/gates"
	"github.com/maestro-works/maestro/pkg/models"
	"github.com/maestro-works/maestro/pkg/services"
	testdb "github.com/maestro-works/maestro/test/database"
)

// testPolicy declares test_coverage bypassable with an ADR in
// implementation, code_review bypassable without one, and security_scan
// never bypassable.
func testPolicy() *config.PolicyRegistry {
	return config.NewPolicyRegistry(&config.PolicyConfig{
		Phases: map[config.Phase]config.PhasePolicy{
			config.PhaseImplementation: {
				Gates: map[string]config.GateSLO{
					"test_coverage": {Threshold: 0.80, Severity: config.GateSeverityBlocking},
				},
			},
		},
		BypassRules: config.BypassRules{
			BypassableGates: []config.BypassableGate{
				{
					Gate:          "test_coverage",
					Phase:         config.PhaseImplementation,
					RequiresADR:   true,
					ApprovalLevel: config.ApprovalLevelTechLead,
				},
				{Gate: "code_review", Phase: config.PhaseImplementation},
			},
			NonBypassableGates: []config.GateRef{
				{Gate: "security_scan"},
			},
		},
	})
}

type managerEnv struct {
	manager     *Manager
	store       *services.BypassService
	gateService *services.GateService
	execService *services.ExecutionService
	auditPath   string
}

func newManagerEnv(t *testing.T, opts ...ManagerOption) *managerEnv {
	t.Helper()

	client := testdb.NewTestClient(t)
	store := services.NewBypassService(client.Client)
	gateService := services.NewGateService(client.Client)
	execService := services.NewExecutionService(client.Client)

	auditPath := filepath.Join(t.TempDir(), "phase_gate_bypasses.jsonl")
	trail, err := audit.Open(auditPath)
	require.NoError(t, err)
	t.Cleanup(func() { trail.Close() })

	allOpts := append([]ManagerOption{WithAuditLog(trail)}, opts...)
	manager := NewManager(store, gateService, testPolicy(), allOpts...)

	return &managerEnv{
		manager:     manager,
		store:       store,
		gateService: gateService,
		execService: execService,
		auditPath:   auditPath,
	}
}

// coverageProposal is a well-formed temporary request for the
// test_coverage gate.
func coverageProposal(gate, phase string) models.CreateBypassRequest {
	expires := time.Now().Add(14 * 24 * time.Hour)
	return models.CreateBypassRequest{
		Gate:            gate,
		Phase:           phase,
		WorkflowID:      "web-api",
		CurrentValue:    0.68,
		Threshold:       0.80,
		Justification:   "Generated client code drags coverage down; core paths are covered",
		Duration:        string(bypassrequest.DurationTemporary),
		ExpiresAt:       &expires,
		RemediationPlan: "Exclude generated code from coverage accounting",
		RequestedBy:     "dev-team",
	}
}

func auditEvents(t *testing.T, path, eventType string) []audit.Event {
	t.Helper()
	events, err := audit.Collect(path, audit.Filter{EventType: eventType})
	require.NoError(t, err)
	return events
}

func TestManager_Propose(t *testing.T) {
	env := newManagerEnv(t)
	ctx := context.Background()

	t.Run("stores a proposal for a bypassable gate", func(t *testing.T) {
		created, err := env.manager.Propose(ctx, coverageProposal("test_coverage", "implementation"))
		require.NoError(t, err)
		assert.Equal(t, bypassrequest.StatusProposed, created.Status)

		requested := auditEvents(t, env.auditPath, audit.EventBypassRequested)
		require.Len(t, requested, 1)
		assert.Equal(t, created.ID, requested[0].BypassID)
		assert.Equal(t, "dev-team", requested[0].Actor)
		assert.Equal(t, "test_coverage", requested[0].Gate)
		assert.Equal(t, "implementation", requested[0].Phase)
	})

	t.Run("refuses a non-bypassable gate without creating a row", func(t *testing.T) {
		_, err := env.manager.Propose(ctx, coverageProposal("security_scan", "testing"))
		require.Error(t, err)
		assert.True(t, IsGateError(err, BypassRejected))

		resp, err := env.store.ListBypasses(ctx, models.BypassFilters{Gate: "security_scan"})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.TotalCount)

		rejected := auditEvents(t, env.auditPath, audit.EventBypassRejected)
		require.Len(t, rejected, 1)
		assert.Equal(t, "security_scan", rejected[0].Gate)
		assert.Empty(t, rejected[0].BypassID)
	})

	t.Run("refuses a bypassable gate in the wrong phase", func(t *testing.T) {
		_, err := env.manager.Propose(ctx, coverageProposal("test_coverage", "design"))
		assert.True(t, IsGateError(err, BypassRejected))
	})
}

func TestManager_ApproveEnforcesADR(t *testing.T) {
	env := newManagerEnv(t)
	ctx := context.Background()

	created, err := env.manager.Propose(ctx, coverageProposal("test_coverage", "implementation"))
	require.NoError(t, err)

	t.Run("approval without ADR is refused, request stays proposed", func(t *testing.T) {
		_, err := env.manager.Approve(ctx, ApproveInput{
			BypassID: created.ID,
			Approver: "tech-lead",
		})
		require.Error(t, err)
		assert.True(t, IsGateError(err, BypassRejected))

		row, err := env.store.GetBypass(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, bypassrequest.StatusProposed, row.Status)

		rejected := auditEvents(t, env.auditPath, audit.EventBypassRejected)
		require.Len(t, rejected, 1)
		assert.Equal(t, created.ID, rejected[0].BypassID)
		assert.Equal(t, "tech-lead", rejected[0].Actor)
	})

	t.Run("re-approval with ADR succeeds at the policy level", func(t *testing.T) {
		approved, err := env.manager.Approve(ctx, ApproveInput{
			BypassID: created.ID,
			Approver: "tech-lead",
			ADRPath:  "docs/adr/0007-coverage-bypass.md",
			Controls: []string{"manual regression run before release"},
		})
		require.NoError(t, err)

		assert.Equal(t, bypassrequest.StatusApproved, approved.Status)
		assert.Equal(t, "docs/adr/0007-coverage-bypass.md", approved.AdrPath)
		assert.Equal(t, string(config.ApprovalLevelTechLead), approved.ApprovalLevel)
		require.NotNil(t, approved.ApprovedBy)
		assert.Equal(t, "tech-lead", *approved.ApprovedBy)
		assert.Contains(t, approved.CompensatingControls, "manual regression run before release")

		events := auditEvents(t, env.auditPath, audit.EventBypassApproved)
		require.Len(t, events, 1)
		assert.Equal(t, "docs/adr/0007-coverage-bypass.md", events[0].Details["adr_path"])
	})

	t.Run("adr already on the proposal satisfies the requirement", func(t *testing.T) {
		req := coverageProposal("test_coverage", "implementation")
		req.ADRPath = "docs/adr/0008-coverage-bypass.md"
		withADR, err := env.manager.Propose(ctx, req)
		require.NoError(t, err)

		approved, err := env.manager.Approve(ctx, ApproveInput{
			BypassID: withADR.ID,
			Approver: "tech-lead",
		})
		require.NoError(t, err)
		assert.Equal(t, bypassrequest.StatusApproved, approved.Status)
	})

	t.Run("unknown bypass returns ErrNotFound", func(t *testing.T) {
		_, err := env.manager.Approve(ctx, ApproveInput{BypassID: uuid.New().String(), Approver: "tech-lead"})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("missing approver is a validation error", func(t *testing.T) {
		_, err := env.manager.Approve(ctx, ApproveInput{BypassID: created.ID})
		assert.True(t, services.IsValidationError(err))
	})
}

func TestManager_ApproveWithoutADRWhenPolicyAllows(t *testing.T) {
	env := newManagerEnv(t)
	ctx := context.Background()

	created, err := env.manager.Propose(ctx, coverageProposal("code_review", "implementation"))
	require.NoError(t, err)

	approved, err := env.manager.Approve(ctx, ApproveInput{
		BypassID: created.ID,
		Approver: "tech-lead",
	})
	require.NoError(t, err)
	assert.Equal(t, bypassrequest.StatusApproved, approved.Status)
	// Approval level defaults to tech_lead when policy does not name one.
	assert.Equal(t, string(config.ApprovalLevelTechLead), approved.ApprovalLevel)
}

func TestManager_RejectAndRevoke(t *testing.T) {
	env := newManagerEnv(t)
	ctx := context.Background()

	t.Run("reject requires a reason", func(t *testing.T) {
		_, err := env.manager.Reject(ctx, "whatever", "tech-lead", "")
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("reject closes the proposal", func(t *testing.T) {
		created, err := env.manager.Propose(ctx, coverageProposal("test_coverage", "implementation"))
		require.NoError(t, err)

		rejected, err := env.manager.Reject(ctx, created.ID, "tech-lead", "raise coverage instead")
		require.NoError(t, err)
		assert.Equal(t, bypassrequest.StatusRejected, rejected.Status)

		events := auditEvents(t, env.auditPath, audit.EventBypassRejected)
		require.Len(t, events, 1)
		assert.Equal(t, created.ID, events[0].BypassID)
		assert.Equal(t, "raise coverage instead", events[0].Details["reason"])
	})

	t.Run("revoke withdraws an approved bypass", func(t *testing.T) {
		req := coverageProposal("test_coverage", "implementation")
		req.ADRPath = "docs/adr/0009.md"
		created, err := env.manager.Propose(ctx, req)
		require.NoError(t, err)
		_, err = env.manager.Approve(ctx, ApproveInput{BypassID: created.ID, Approver: "tech-lead"})
		require.NoError(t, err)

		revoked, err := env.manager.Revoke(ctx, created.ID, "security-officer", "incident 4711 reopened the risk")
		require.NoError(t, err)
		assert.Equal(t, bypassrequest.StatusRevoked, revoked.Status)
		require.NotNil(t, revoked.RejectionReason)
		assert.Equal(t, "incident 4711 reopened the risk", *revoked.RejectionReason)

		events := auditEvents(t, env.auditPath, audit.EventBypassRevoked)
		require.Len(t, events, 1)
		assert.Equal(t, "security-officer", events[0].Actor)
	})
}

func TestManager_Coverage(t *testing.T) {
	env := newManagerEnv(t)
	ctx := context.Background()

	t.Run("no bypass means BypassRequired", func(t *testing.T) {
		_, err := env.manager.Coverage(ctx, "test_coverage", "implementation")
		require.Error(t, err)
		assert.True(t, IsGateError(err, BypassRequired))
	})

	t.Run("a proposal is not coverage", func(t *testing.T) {
		_, err := env.manager.Propose(ctx, coverageProposal("test_coverage", "implementation"))
		require.NoError(t, err)

		_, err = env.manager.Coverage(ctx, "test_coverage", "implementation")
		assert.True(t, IsGateError(err, BypassRequired))
	})

	t.Run("approved bypass activates when first relied on", func(t *testing.T) {
		resp, err := env.store.ListBypasses(ctx, models.BypassFilters{Status: "proposed"})
		require.NoError(t, err)
		require.Equal(t, 1, resp.TotalCount)
		_, err = env.manager.Approve(ctx, ApproveInput{
			BypassID: resp.Bypasses[0].ID,
			Approver: "tech-lead",
			ADRPath:  "docs/adr/0010.md",
		})
		require.NoError(t, err)

		covering, err := env.manager.Coverage(ctx, "test_coverage", "implementation")
		require.NoError(t, err)
		assert.Equal(t, bypassrequest.StatusActive, covering.Status)

		// Second reliance reuses the active bypass without re-activating.
		covering, err = env.manager.Coverage(ctx, "test_coverage", "implementation")
		require.NoError(t, err)
		assert.Equal(t, bypassrequest.StatusActive, covering.Status)

		activated := auditEvents(t, env.auditPath, audit.EventBypassActivated)
		assert.Len(t, activated, 1)
	})

	t.Run("expired coverage surfaces BypassExpired", func(t *testing.T) {
		created, err := env.manager.Propose(ctx, coverageProposal("code_review", "implementation"))
		require.NoError(t, err)
		past := time.Now().Add(-time.Hour)
		_, err = env.manager.Approve(ctx, ApproveInput{
			BypassID:  created.ID,
			Approver:  "tech-lead",
			ExpiresAt: &past,
		})
		require.NoError(t, err)

		_, err = env.manager.Coverage(ctx, "code_review", "implementation")
		require.Error(t, err)
		assert.True(t, IsGateError(err, BypassExpired))

		row, err := env.store.GetBypass(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, bypassrequest.StatusExpired, row.Status)

		expired := auditEvents(t, env.auditPath, audit.EventBypassExpired)
		require.Len(t, expired, 1)
		assert.Equal(t, created.ID, expired[0].BypassID)
	})
}

func TestManager_CoveredGates(t *testing.T) {
	env := newManagerEnv(t)
	ctx := context.Background()

	req := coverageProposal("test_coverage", "implementation")
	req.ADRPath = "docs/adr/0011.md"
	created, err := env.manager.Propose(ctx, req)
	require.NoError(t, err)
	_, err = env.manager.Approve(ctx, ApproveInput{BypassID: created.ID, Approver: "tech-lead"})
	require.NoError(t, err)

	covered, err := env.manager.CoveredGates(ctx, []string{"test_coverage", "quality_score"}, "implementation")
	require.NoError(t, err)
	assert.True(t, covered["test_coverage"])
	assert.False(t, covered["quality_score"])
}

func TestManager_ExpireOverdue(t *testing.T) {
	env := newManagerEnv(t)
	ctx := context.Background()

	past := time.Now().Add(-time.Hour)
	overdueIDs := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		created, err := env.manager.Propose(ctx, coverageProposal("test_coverage", "implementation"))
		require.NoError(t, err)
		_, err = env.manager.Approve(ctx, ApproveInput{
			BypassID:  created.ID,
			Approver:  "tech-lead",
			ADRPath:   "docs/adr/0012.md",
			ExpiresAt: &past,
		})
		require.NoError(t, err)
		overdueIDs = append(overdueIDs, created.ID)
	}

	fresh, err := env.manager.Propose(ctx, coverageProposal("code_review", "implementation"))
	require.NoError(t, err)
	_, err = env.manager.Approve(ctx, ApproveInput{BypassID: fresh.ID, Approver: "tech-lead"})
	require.NoError(t, err)

	expired, err := env.manager.ExpireOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, expired)

	for _, id := range overdueIDs {
		row, err := env.store.GetBypass(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, bypassrequest.StatusExpired, row.Status)
		assert.NotNil(t, row.ClosedAt)
	}

	stillApproved, err := env.store.GetBypass(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, bypassrequest.StatusApproved, stillApproved.Status)

	events := auditEvents(t, env.auditPath, audit.EventBypassExpired)
	assert.Len(t, events, 2)
	sweeps := auditEvents(t, env.auditPath, audit.EventExpirySweep)
	require.Len(t, sweeps, 1)
	assert.Equal(t, float64(2), sweeps[0].Details["expired"])

	// Second sweep finds nothing.
	expired, err = env.manager.ExpireOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, expired)
	assert.Len(t, auditEvents(t, env.auditPath, audit.EventExpirySweep), 1)
}

type fakeGauge struct {
	rate float64
}

func (g *fakeGauge) SetBypassRate(rate float64) { g.rate = rate }

var (
	_ RateGauge         = (*fakeGauge)(nil)
	_ EvaluationCounter = (*services.GateService)(nil)
)

func TestManager_Metrics(t *testing.T) {
	gauge := &fakeGauge{}
	env := newManagerEnv(t, WithRateGauge(gauge))
	ctx := context.Background()

	execution, err := env.execService.CreateExecution(ctx, models.CreateExecutionRequest{
		ExecutionID: uuid.New().String(),
		WorkflowID:  "web-api",
		Requirement: "Build a payment retry service",
		TotalNodes:  3,
	})
	require.NoError(t, err)

	// Two exit-gate evaluations: the failing run and the re-run that
	// passed once the bypass covered the gap.
	require.NoError(t, env.gateService.RecordGateEvaluation(ctx, gates.Evaluation{
		WorkflowID:  "web-api",
		ExecutionID: execution.ID,
		Phase:       config.PhaseImplementation,
		Kind:        gates.GateExit,
		Passed:      false,
		Score:       0.68,
		Iteration:   1,
		FailedGates: []string{"test_coverage"},
	}))
	require.NoError(t, env.gateService.RecordGateEvaluation(ctx, gates.Evaluation{
		WorkflowID:  "web-api",
		ExecutionID: execution.ID,
		Phase:       config.PhaseImplementation,
		Kind:        gates.GateExit,
		Passed:      true,
		Score:       0.97,
		Iteration:   2,
	}))

	created, err := env.manager.Propose(ctx, coverageProposal("test_coverage", "implementation"))
	require.NoError(t, err)

	// Refused approval (no ADR) followed by the real one.
	_, err = env.manager.Approve(ctx, ApproveInput{BypassID: created.ID, Approver: "tech-lead"})
	require.Error(t, err)
	_, err = env.manager.Approve(ctx, ApproveInput{
		BypassID: created.ID,
		Approver: "tech-lead",
		ADRPath:  "docs/adr/0007-coverage-bypass.md",
	})
	require.NoError(t, err)

	m, err := env.manager.Metrics(ctx, 30)
	require.NoError(t, err)

	assert.Equal(t, 30, m.WindowDays)
	assert.Equal(t, 1, m.Total)
	assert.Equal(t, 1, m.Approved)
	assert.Equal(t, 1, m.Rejected)
	assert.Equal(t, 0, m.Expired)
	assert.Equal(t, 0, m.Active)
	assert.Equal(t, 2, m.GateEvaluations)
	assert.InDelta(t, 0.5, m.BypassRate, 0.001)
	assert.Equal(t, AlertCritical, m.AlertLevel)
	assert.Equal(t, 1, m.ByGate["test_coverage"])
	assert.Equal(t, 1, m.ByPhase["implementation"])

	assert.InDelta(t, 0.5, gauge.rate, 0.001)

	// Relying on the bypass moves it to active.
	_, err = env.manager.Coverage(ctx, "test_coverage", "implementation")
	require.NoError(t, err)
	m, err = env.manager.Metrics(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Active)
}

func TestManager_MetricsQuietWindow(t *testing.T) {
	env := newManagerEnv(t)

	m, err := env.manager.Metrics(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, DefaultMetricsWindowDays, m.WindowDays)
	assert.Zero(t, m.Total)
	assert.Zero(t, m.GateEvaluations)
	assert.Zero(t, m.BypassRate)
	assert.Equal(t, AlertOK, m.AlertLevel)
}

func TestNewManager_AlertThresholdOverride(t *testing.T) {
	t.Run("valid override wins", func(t *testing.T) {
		t.Setenv(envAlertThreshold, "0.05")
		m := NewManager(nil, nil, testPolicy())
		assert.InDelta(t, 0.05, m.warnThreshold, 0.0001)
	})

	t.Run("out-of-range override is ignored", func(t *testing.T) {
		t.Setenv(envAlertThreshold, "1.5")
		m := NewManager(nil, nil, testPolicy())
		assert.InDelta(t, config.DefaultBypassAlertThreshold, m.warnThreshold, 0.0001)
	})

	t.Run("unparsable override is ignored", func(t *testing.T) {
		t.Setenv(envAlertThreshold, "lots")
		m := NewManager(nil, nil, testPolicy())
		assert.InDelta(t, config.DefaultBypassAlertThreshold, m.warnThreshold, 0.0001)
	})
}

