// Package bypass implements the governed-exception manager for quality
// gates: proposal, approval with ADR enforcement, rejection, revocation,
// expiry, coverage checks for failed exit gates, and the bypass-rate
// metrics that drive governance alerting.
//
// Policy (pkg/config.PolicyRegistry) decides what may be bypassed and
// under what conditions; the store (pkg/services.BypassService) makes
// every state transition atomic; and every decision — including the
// refusals that never touch a row — is appended to the audit trail.
package bypass

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/maestro-works/maestro/ent"
	"github.com/maestro-works/maestro/pkg/audit"
	"github.com/maestro-works/maestro/pkg/config"
	"github.com/maestro-works/maestro/pkg/models"
	"github.com/maestro-works/maestro/pkg/services"
)

// criticalBypassRate is the fixed rate at which the governance alert
// escalates from warning to critical.
const criticalBypassRate = 0.20

// envAlertThreshold overrides the policy warning threshold.
const envAlertThreshold = "BYPASS_ALERT_THRESHOLD"

// EvaluationCounter supplies the gate-evaluation denominator for the
// bypass rate. *services.GateService satisfies it.
type EvaluationCounter interface {
	CountEvaluationsSince(ctx context.Context, since time.Time) (int, error)
}

// RateGauge mirrors the computed bypass rate into the metrics registry.
// *metrics.Metrics satisfies it.
type RateGauge interface {
	SetBypassRate(rate float64)
}

// Manager drives the bypass lifecycle over the persistence service.
type Manager struct {
	store  *services.BypassService
	evals  EvaluationCounter
	policy *config.PolicyRegistry
	audit  *audit.Logger
	gauge  RateGauge

	// warnThreshold is the bypass rate at which Metrics logs a warning.
	// Comes from policy, overridable via BYPASS_ALERT_THRESHOLD.
	warnThreshold float64

	logger *slog.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithAuditLog appends every lifecycle transition (and refusal) to the
// audit trail.
func WithAuditLog(l *audit.Logger) ManagerOption {
	return func(m *Manager) { m.audit = l }
}

// WithRateGauge mirrors each computed bypass rate into the gauge.
func WithRateGauge(g RateGauge) ManagerOption {
	return func(m *Manager) { m.gauge = g }
}

// NewManager builds a bypass manager over the store, the gate
// evaluation counter, and the loaded policy.
func NewManager(store *services.BypassService, evals EvaluationCounter, policy *config.PolicyRegistry, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:         store,
		evals:         evals,
		policy:        policy,
		warnThreshold: policy.AlertThreshold(),
		logger:        slog.With("component", "bypass"),
	}

	if raw := os.Getenv(envAlertThreshold); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 && v <= 1 {
			m.warnThreshold = v
		} else {
			m.logger.Warn("Ignoring invalid BYPASS_ALERT_THRESHOLD", "value", raw)
		}
	}

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Propose validates the request against policy and stores it as
// proposed. Requests against non-bypassable gates are refused outright:
// no row is created and the refusal is audited.
func (m *Manager) Propose(ctx context.Context, req models.CreateBypassRequest) (*ent.BypassRequest, error) {
	phase := config.Phase(req.Phase)
	if !m.policy.CanBypass(req.Gate, phase) {
		m.appendAudit(audit.Event{
			EventType:   audit.EventBypassRejected,
			Actor:       req.RequestedBy,
			WorkflowID:  req.WorkflowID,
			ExecutionID: req.ExecutionID,
			Phase:       req.Phase,
			Gate:        req.Gate,
			Details:     map[string]any{"reason": "gate is not bypassable"},
		})
		m.logger.Info("Bypass proposal refused",
			"gate", req.Gate, "phase", req.Phase, "requested_by", req.RequestedBy)
		return nil, &GateError{
			Kind:   BypassRejected,
			Gate:   req.Gate,
			Phase:  phase,
			Reason: "policy forbids bypassing this gate",
		}
	}

	created, err := m.store.CreateBypassRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	details := map[string]any{
		"current_value": created.CurrentValue,
		"threshold":     created.Threshold,
		"duration":      string(created.Duration),
	}
	if created.ExpiresAt != nil {
		details["expires_at"] = created.ExpiresAt.UTC().Format(time.RFC3339)
	}
	m.appendAudit(audit.Event{
		EventType:   audit.EventBypassRequested,
		Actor:       created.RequestedBy,
		WorkflowID:  created.WorkflowID,
		ExecutionID: created.ExecutionID,
		Phase:       created.Phase,
		Gate:        created.Gate,
		BypassID:    created.ID,
		Details:     details,
	})
	m.logger.Info("Bypass proposed",
		"bypass_id", created.ID,
		"gate", created.Gate,
		"phase", created.Phase,
		"requested_by", created.RequestedBy)
	return created, nil
}

// ApproveInput carries the decision artifacts for an approval.
type ApproveInput struct {
	BypassID string
	Approver string

	// ADRPath documents the exception. Required when policy demands an
	// ADR and the proposal did not already carry one.
	ADRPath string

	// ExpiresAt overrides the proposal's expiry.
	ExpiresAt *time.Time

	// Controls are compensating controls added at decision time.
	Controls []string
}

// Approve moves a proposed request to approved. Policy fixes the
// required approval level and whether an ADR must be on file; an
// approval missing a required ADR is refused and audited, leaving the
// request proposed so it can be re-approved once the record exists.
func (m *Manager) Approve(ctx context.Context, in ApproveInput) (*ent.BypassRequest, error) {
	if in.Approver == "" {
		return nil, services.NewValidationError("approver", "required")
	}

	row, err := m.store.GetBypass(ctx, in.BypassID)
	if err != nil {
		return nil, err
	}

	phase := config.Phase(row.Phase)
	requirements, err := m.policy.BypassRequirements(row.Gate, phase)
	if err != nil {
		// Policy changed underneath the proposal.
		m.auditRefusedApproval(row, in.Approver, "gate is no longer bypassable")
		return nil, &GateError{
			Kind:   BypassRejected,
			Gate:   row.Gate,
			Phase:  phase,
			Reason: "policy no longer permits bypassing this gate",
		}
	}

	adrPath := in.ADRPath
	if adrPath == "" {
		adrPath = row.AdrPath
	}
	if requirements.RequiresADR && adrPath == "" {
		m.auditRefusedApproval(row, in.Approver, "approval requires an ADR")
		return nil, &GateError{
			Kind:   BypassRejected,
			Gate:   row.Gate,
			Phase:  phase,
			Reason: "policy requires an ADR on file before this gate can be bypassed",
		}
	}

	if in.ADRPath != "" || len(in.Controls) > 0 {
		if err := m.store.AttachApprovalRecord(ctx, row.ID, in.ADRPath, in.Controls); err != nil {
			return nil, err
		}
	}

	approved, err := m.store.ApproveBypass(ctx, row.ID, in.Approver, string(requirements.ApprovalLevel), in.ExpiresAt)
	if err != nil {
		return nil, err
	}

	details := map[string]any{"approval_level": approved.ApprovalLevel}
	if approved.AdrPath != "" {
		details["adr_path"] = approved.AdrPath
	}
	if approved.ExpiresAt != nil {
		details["expires_at"] = approved.ExpiresAt.UTC().Format(time.RFC3339)
	}
	m.appendAudit(audit.Event{
		EventType:   audit.EventBypassApproved,
		Actor:       in.Approver,
		WorkflowID:  approved.WorkflowID,
		ExecutionID: approved.ExecutionID,
		Phase:       approved.Phase,
		Gate:        approved.Gate,
		BypassID:    approved.ID,
		Details:     details,
	})
	m.logger.Info("Bypass approved",
		"bypass_id", approved.ID,
		"gate", approved.Gate,
		"phase", approved.Phase,
		"approved_by", in.Approver,
		"approval_level", approved.ApprovalLevel)
	return approved, nil
}

// Reject refuses a proposed request with a reason.
func (m *Manager) Reject(ctx context.Context, bypassID, rejector, reason string) (*ent.BypassRequest, error) {
	if reason == "" {
		return nil, services.NewValidationError("reason", "required")
	}

	rejected, err := m.store.RejectBypass(ctx, bypassID, rejector, reason)
	if err != nil {
		return nil, err
	}

	m.appendAudit(audit.Event{
		EventType:   audit.EventBypassRejected,
		Actor:       rejector,
		WorkflowID:  rejected.WorkflowID,
		ExecutionID: rejected.ExecutionID,
		Phase:       rejected.Phase,
		Gate:        rejected.Gate,
		BypassID:    rejected.ID,
		Details:     map[string]any{"reason": reason},
	})
	m.logger.Info("Bypass rejected",
		"bypass_id", rejected.ID, "gate", rejected.Gate, "rejected_by", rejector)
	return rejected, nil
}

// Revoke withdraws an approved or active bypass. The gate it covered
// fails again on the next evaluation.
func (m *Manager) Revoke(ctx context.Context, bypassID, revoker, reason string) (*ent.BypassRequest, error) {
	if reason == "" {
		return nil, services.NewValidationError("reason", "required")
	}

	revoked, err := m.store.RevokeBypass(ctx, bypassID, revoker, reason)
	if err != nil {
		return nil, err
	}

	m.appendAudit(audit.Event{
		EventType:   audit.EventBypassRevoked,
		Actor:       revoker,
		WorkflowID:  revoked.WorkflowID,
		ExecutionID: revoked.ExecutionID,
		Phase:       revoked.Phase,
		Gate:        revoked.Gate,
		BypassID:    revoked.ID,
		Details:     map[string]any{"reason": reason},
	})
	m.logger.Info("Bypass revoked",
		"bypass_id", revoked.ID, "gate", revoked.Gate, "revoked_by", revoker)
	return revoked, nil
}

// Get returns one bypass request, lazily expiring it if overdue.
func (m *Manager) Get(ctx context.Context, bypassID string) (*ent.BypassRequest, error) {
	row, err := m.store.GetBypass(ctx, bypassID)
	if err != nil {
		return nil, err
	}
	if overdue(row, time.Now()) {
		if expired := m.lazyExpire(ctx, row); expired != nil {
			return expired, nil
		}
		return m.store.GetBypass(ctx, bypassID)
	}
	return row, nil
}

// List returns bypass requests matching the filters.
func (m *Manager) List(ctx context.Context, filters models.BypassFilters) (*models.BypassListResponse, error) {
	return m.store.ListBypasses(ctx, filters)
}

// auditRefusedApproval records an approval attempt that policy refused.
// The row stays proposed, so the trail is the only record of it.
func (m *Manager) auditRefusedApproval(row *ent.BypassRequest, approver, reason string) {
	m.appendAudit(audit.Event{
		EventType:   audit.EventBypassRejected,
		Actor:       approver,
		WorkflowID:  row.WorkflowID,
		ExecutionID: row.ExecutionID,
		Phase:       row.Phase,
		Gate:        row.Gate,
		BypassID:    row.ID,
		Details:     map[string]any{"reason": reason},
	})
	m.logger.Info("Bypass approval refused",
		"bypass_id", row.ID, "gate", row.Gate, "approver", approver, "reason", reason)
}

// appendAudit writes one trail event. Append failures are logged and
// swallowed: the decision being recorded must not be aborted.
func (m *Manager) appendAudit(event audit.Event) {
	if m.audit == nil {
		return
	}
	if err := m.audit.Append(event); err != nil {
		m.logger.Warn("Failed to append bypass audit event",
			"event_type", event.EventType, "bypass_id", event.BypassID, "error", err)
	}
}
