package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/ent"
	"github.com/maestro-works/maestro/ent/bypassrequest"
	"github.com/maestro-works/maestro/pkg/models"
	testdb "github.com/maestro-works/maestro/test/database"
)

func temporaryBypassRequest(gate, phase string) models.CreateBypassRequest {
	expires := time.Now().Add(14 * 24 * time.Hour)
	return models.CreateBypassRequest{
		BypassID:        uuid.New().String(),
		Gate:            gate,
		Phase:           phase,
		CurrentValue:    0.78,
		Threshold:       0.80,
		Justification:   "Coverage dip from generated client code; mainline paths are covered",
		Duration:        string(bypassrequest.DurationTemporary),
		ExpiresAt:       &expires,
		RemediationPlan: "Exclude generated code from coverage accounting",
		RequestedBy:     "dev-team",
	}
}

func seedBypass(t *testing.T, service *BypassService, gate, phase string) *ent.BypassRequest {
	t.Helper()
	bypass, err := service.CreateBypassRequest(context.Background(), temporaryBypassRequest(gate, phase))
	require.NoError(t, err)
	return bypass
}

func TestBypassService_CreateBypassRequest(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBypassService(client.Client)
	ctx := context.Background()

	t.Run("creates temporary bypass proposal", func(t *testing.T) {
		req := temporaryBypassRequest("test_coverage", "implementation")
		req.CompensatingControls = []string{"manual QA pass on checkout flow"}
		req.FollowUpTasks = []string{"restore coverage to 80%"}
		req.ADRPath = "docs/adr/0007-coverage-bypass.md"

		bypass, err := service.CreateBypassRequest(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, req.BypassID, bypass.ID)
		assert.Equal(t, "test_coverage", bypass.Gate)
		assert.Equal(t, bypassrequest.StatusProposed, bypass.Status)
		assert.Equal(t, bypassrequest.DurationTemporary, bypass.Duration)
		assert.InDelta(t, 0.78, bypass.CurrentValue, 0.001)
		assert.NotNil(t, bypass.ExpiresAt)
		assert.Equal(t, "docs/adr/0007-coverage-bypass.md", bypass.AdrPath)
		assert.Nil(t, bypass.DecidedAt)
	})

	t.Run("permanent bypass does not need expiry", func(t *testing.T) {
		bypass, err := service.CreateBypassRequest(ctx, models.CreateBypassRequest{
			Gate:          "performance_budget",
			Phase:         "testing",
			Justification: "Budget does not apply to batch-only deployment",
			Duration:      string(bypassrequest.DurationPermanent),
			RequestedBy:   "dev-team",
		})
		require.NoError(t, err)
		assert.Equal(t, bypassrequest.DurationPermanent, bypass.Duration)
		assert.Nil(t, bypass.ExpiresAt)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*models.CreateBypassRequest)
			field  string
		}{
			{"missing gate", func(r *models.CreateBypassRequest) { r.Gate = "" }, "gate"},
			{"missing phase", func(r *models.CreateBypassRequest) { r.Phase = "" }, "phase"},
			{"missing justification", func(r *models.CreateBypassRequest) { r.Justification = "" }, "justification"},
			{"missing requested_by", func(r *models.CreateBypassRequest) { r.RequestedBy = "" }, "requested_by"},
			{"temporary without expiry", func(r *models.CreateBypassRequest) { r.ExpiresAt = nil }, "expires_at"},
			{"temporary without remediation plan", func(r *models.CreateBypassRequest) { r.RemediationPlan = "" }, "remediation_plan"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := temporaryBypassRequest("test_coverage", "implementation")
				tt.mutate(&req)
				_, err := service.CreateBypassRequest(ctx, req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				assert.Contains(t, err.Error(), tt.field)
			})
		}
	})
}

func TestBypassService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBypassService(client.Client)
	ctx := context.Background()

	t.Run("approve activates decision fields", func(t *testing.T) {
		bypass := seedBypass(t, service, "test_coverage", "implementation")

		approved, err := service.ApproveBypass(ctx, bypass.ID, "tech-lead", "team_lead", nil)
		require.NoError(t, err)
		assert.Equal(t, bypassrequest.StatusApproved, approved.Status)
		require.NotNil(t, approved.ApprovedBy)
		assert.Equal(t, "tech-lead", *approved.ApprovedBy)
		assert.Equal(t, "team_lead", approved.ApprovalLevel)
		assert.NotNil(t, approved.DecidedAt)
	})

	t.Run("approve can override expiry", func(t *testing.T) {
		bypass := seedBypass(t, service, "test_coverage", "implementation")
		shorter := time.Now().Add(48 * time.Hour)

		approved, err := service.ApproveBypass(ctx, bypass.ID, "tech-lead", "team_lead", &shorter)
		require.NoError(t, err)
		require.NotNil(t, approved.ExpiresAt)
		assert.WithinDuration(t, shorter, *approved.ExpiresAt, time.Second)
	})

	t.Run("reject records reason and closes", func(t *testing.T) {
		bypass := seedBypass(t, service, "security_scan", "testing")

		rejected, err := service.RejectBypass(ctx, bypass.ID, "security-lead", "critical finding must be fixed")
		require.NoError(t, err)
		assert.Equal(t, bypassrequest.StatusRejected, rejected.Status)
		require.NotNil(t, rejected.RejectionReason)
		assert.Equal(t, "critical finding must be fixed", *rejected.RejectionReason)
		assert.NotNil(t, rejected.DecidedAt)
		assert.NotNil(t, rejected.ClosedAt)
	})

	t.Run("approve then activate then revoke", func(t *testing.T) {
		bypass := seedBypass(t, service, "test_coverage", "implementation")

		_, err := service.ApproveBypass(ctx, bypass.ID, "tech-lead", "team_lead", nil)
		require.NoError(t, err)

		active, err := service.ActivateBypass(ctx, bypass.ID)
		require.NoError(t, err)
		assert.Equal(t, bypassrequest.StatusActive, active.Status)

		revoked, err := service.RevokeBypass(ctx, bypass.ID, "tech-lead", "remediation landed early")
		require.NoError(t, err)
		assert.Equal(t, bypassrequest.StatusRevoked, revoked.Status)
		assert.NotNil(t, revoked.ClosedAt)
	})

	t.Run("mark expired closes the bypass", func(t *testing.T) {
		bypass := seedBypass(t, service, "test_coverage", "implementation")
		_, err := service.ApproveBypass(ctx, bypass.ID, "tech-lead", "team_lead", nil)
		require.NoError(t, err)

		expired, err := service.MarkExpired(ctx, bypass.ID)
		require.NoError(t, err)
		assert.Equal(t, bypassrequest.StatusExpired, expired.Status)
		assert.NotNil(t, expired.ClosedAt)
	})

	t.Run("double approve conflicts", func(t *testing.T) {
		bypass := seedBypass(t, service, "test_coverage", "implementation")
		_, err := service.ApproveBypass(ctx, bypass.ID, "tech-lead", "team_lead", nil)
		require.NoError(t, err)

		_, err = service.ApproveBypass(ctx, bypass.ID, "other-lead", "team_lead", nil)
		assert.ErrorIs(t, err, ErrConcurrentModification)
	})

	t.Run("reject after approve conflicts", func(t *testing.T) {
		bypass := seedBypass(t, service, "test_coverage", "implementation")
		_, err := service.ApproveBypass(ctx, bypass.ID, "tech-lead", "team_lead", nil)
		require.NoError(t, err)

		_, err = service.RejectBypass(ctx, bypass.ID, "security-lead", "too risky")
		assert.ErrorIs(t, err, ErrConcurrentModification)
	})

	t.Run("transition on unknown bypass returns ErrNotFound", func(t *testing.T) {
		_, err := service.ApproveBypass(ctx, "no-such-bypass", "tech-lead", "team_lead", nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestBypassService_FindOverdueBypasses(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBypassService(client.Client)
	ctx := context.Background()

	overdue := seedBypass(t, service, "test_coverage", "implementation")
	past := time.Now().Add(-time.Hour)
	_, err := service.ApproveBypass(ctx, overdue.ID, "tech-lead", "team_lead", &past)
	require.NoError(t, err)

	current := seedBypass(t, service, "test_coverage", "testing")
	_, err = service.ApproveBypass(ctx, current.ID, "tech-lead", "team_lead", nil)
	require.NoError(t, err)

	rows, err := service.FindOverdueBypasses(ctx, time.Now())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, overdue.ID, rows[0].ID)
}

func TestBypassService_CoveringBypasses(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBypassService(client.Client)
	ctx := context.Background()

	covering := seedBypass(t, service, "test_coverage", "implementation")
	_, err := service.ApproveBypass(ctx, covering.ID, "tech-lead", "team_lead", nil)
	require.NoError(t, err)

	// Proposed bypasses never cover a gate.
	seedBypass(t, service, "test_coverage", "implementation")
	// Different gate.
	other := seedBypass(t, service, "security_scan", "implementation")
	_, err = service.ApproveBypass(ctx, other.ID, "tech-lead", "team_lead", nil)
	require.NoError(t, err)

	rows, err := service.CoveringBypasses(ctx, "test_coverage", "implementation")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, covering.ID, rows[0].ID)

	rows, err = service.CoveringBypasses(ctx, "test_coverage", "testing")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestBypassService_Counters(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBypassService(client.Client)
	ctx := context.Background()

	a := seedBypass(t, service, "test_coverage", "implementation")
	_, err := service.ApproveBypass(ctx, a.ID, "tech-lead", "team_lead", nil)
	require.NoError(t, err)

	b := seedBypass(t, service, "test_coverage", "testing")
	_, err = service.RejectBypass(ctx, b.ID, "tech-lead", "fix it instead")
	require.NoError(t, err)

	seedBypass(t, service, "security_scan", "testing")

	since := time.Now().Add(-time.Hour)

	created, err := service.CountCreatedSince(ctx, since)
	require.NoError(t, err)
	assert.Equal(t, 3, created)

	approved, err := service.CountApprovedSince(ctx, since)
	require.NoError(t, err)
	assert.Equal(t, 1, approved)

	byGate, err := service.CountByGateSince(ctx, since)
	require.NoError(t, err)
	assert.Equal(t, 2, byGate["test_coverage"])
	assert.Equal(t, 1, byGate["security_scan"])

	byPhase, err := service.CountByPhaseSince(ctx, since)
	require.NoError(t, err)
	assert.Equal(t, 1, byPhase["implementation"])
	assert.Equal(t, 2, byPhase["testing"])

	inProposed, err := service.CountInStatus(ctx, bypassrequest.StatusProposed)
	require.NoError(t, err)
	assert.Equal(t, 1, inProposed)

	inApproved, err := service.CountInStatus(ctx, bypassrequest.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, 1, inApproved)
}

func TestBypassService_AttachApprovalRecord(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBypassService(client.Client)
	ctx := context.Background()

	t.Run("amends a proposed request", func(t *testing.T) {
		bypass := seedBypass(t, service, "test_coverage", "implementation")

		err := service.AttachApprovalRecord(ctx, bypass.ID,
			"docs/adr/0009-coverage-bypass.md", []string{"manual regression run"})
		require.NoError(t, err)

		updated, err := service.GetBypass(ctx, bypass.ID)
		require.NoError(t, err)
		assert.Equal(t, "docs/adr/0009-coverage-bypass.md", updated.AdrPath)
		assert.Equal(t, []string{"manual regression run"}, updated.CompensatingControls)
	})

	t.Run("conflicts after the request is decided", func(t *testing.T) {
		bypass := seedBypass(t, service, "test_coverage", "testing")
		_, err := service.ApproveBypass(ctx, bypass.ID, "tech-lead", "team_lead", nil)
		require.NoError(t, err)

		err = service.AttachApprovalRecord(ctx, bypass.ID, "docs/adr/0010.md", nil)
		assert.ErrorIs(t, err, ErrConcurrentModification)
	})

	t.Run("unknown bypass returns ErrNotFound", func(t *testing.T) {
		err := service.AttachApprovalRecord(ctx, "missing", "docs/adr/0011.md", nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestBypassService_ListBypasses(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewBypassService(client.Client)
	ctx := context.Background()

	seedBypass(t, service, "test_coverage", "implementation")
	seedBypass(t, service, "test_coverage", "testing")
	approved := seedBypass(t, service, "security_scan", "testing")
	_, err := service.ApproveBypass(ctx, approved.ID, "tech-lead", "security_lead", nil)
	require.NoError(t, err)

	resp, err := service.ListBypasses(ctx, models.BypassFilters{})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalCount)

	resp, err = service.ListBypasses(ctx, models.BypassFilters{Gate: "test_coverage"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalCount)

	resp, err = service.ListBypasses(ctx, models.BypassFilters{Status: "approved"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.TotalCount)
	assert.Equal(t, approved.ID, resp.Bypasses[0].ID)

	resp, err = service.ListBypasses(ctx, models.BypassFilters{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Bypasses, 2)
	assert.Equal(t, 3, resp.TotalCount)
}
