package bypass

import (
	"context"
	"errors"
	"time"

	"github.com/maestro-works/maestro/ent"
	"github.com/maestro-works/maestro/ent/bypassrequest"
	"github.com/maestro-works/maestro/pkg/audit"
	"github.com/maestro-works/maestro/pkg/config"
	"github.com/maestro-works/maestro/pkg/services"
)

// Coverage reports whether an approved bypass covers the failed gate in
// the phase. The first usable bypass is applied (approved -> active)
// and returned. With no usable coverage the error says why: a lapsed
// bypass surfaces BypassExpired, none at all BypassRequired.
func (m *Manager) Coverage(ctx context.Context, gate string, phase string) (*ent.BypassRequest, error) {
	rows, err := m.store.CoveringBypasses(ctx, gate, phase)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sawExpired := false
	for _, row := range rows {
		if overdue(row, now) {
			m.lazyExpire(ctx, row)
			sawExpired = true
			continue
		}

		if row.Status == bypassrequest.StatusActive {
			return row, nil
		}

		activated, err := m.store.ActivateBypass(ctx, row.ID)
		if err != nil {
			if errors.Is(err, services.ErrConcurrentModification) {
				// Another worker decided first; re-read and keep going.
				refreshed, getErr := m.store.GetBypass(ctx, row.ID)
				if getErr == nil && refreshed.Status == bypassrequest.StatusActive {
					return refreshed, nil
				}
				continue
			}
			return nil, err
		}

		m.appendAudit(audit.Event{
			EventType:   audit.EventBypassActivated,
			WorkflowID:  activated.WorkflowID,
			ExecutionID: activated.ExecutionID,
			Phase:       activated.Phase,
			Gate:        activated.Gate,
			BypassID:    activated.ID,
		})
		m.logger.Info("Bypass activated",
			"bypass_id", activated.ID, "gate", gate, "phase", phase)
		return activated, nil
	}

	if sawExpired {
		return nil, &GateError{
			Kind:   BypassExpired,
			Gate:   gate,
			Phase:  config.Phase(phase),
			Reason: "the covering bypass expired before the gate was re-evaluated",
		}
	}
	return nil, &GateError{
		Kind:   BypassRequired,
		Gate:   gate,
		Phase:  config.Phase(phase),
		Reason: "no approved bypass covers this gate",
	}
}

// CoveredGates checks coverage for each failed gate and returns the set
// that is covered. Gates without coverage are simply absent; only
// storage errors abort the check.
func (m *Manager) CoveredGates(ctx context.Context, failedGates []string, phase string) (map[string]bool, error) {
	covered := make(map[string]bool, len(failedGates))
	for _, gate := range failedGates {
		if _, err := m.Coverage(ctx, gate, phase); err != nil {
			var ge *GateError
			if errors.As(err, &ge) {
				continue
			}
			return nil, err
		}
		covered[gate] = true
	}
	return covered, nil
}

// ExpireOverdue sweeps approved/active temporary bypasses whose expiry
// passed, returning how many were closed. The retention sweeper calls
// this periodically; reads also expire lazily so a stalled sweeper
// cannot extend coverage.
func (m *Manager) ExpireOverdue(ctx context.Context) (int, error) {
	rows, err := m.store.FindOverdueBypasses(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, row := range rows {
		e, err := m.store.MarkExpired(ctx, row.ID)
		if err != nil {
			if errors.Is(err, services.ErrConcurrentModification) || errors.Is(err, services.ErrNotFound) {
				// Another pod swept it between the query and the update.
				continue
			}
			return expired, err
		}
		m.auditExpired(e)
		expired++
	}

	if expired > 0 {
		m.appendAudit(audit.Event{
			EventType: audit.EventExpirySweep,
			Details:   map[string]any{"expired": expired},
		})
	}
	return expired, nil
}

// overdue reports whether a temporary bypass has outlived its expiry.
func overdue(row *ent.BypassRequest, now time.Time) bool {
	return row.Duration == bypassrequest.DurationTemporary &&
		row.ExpiresAt != nil &&
		row.ExpiresAt.Before(now)
}

// lazyExpire closes an overdue bypass found during a read. Returns the
// expired row, or nil when another worker got there first.
func (m *Manager) lazyExpire(ctx context.Context, row *ent.BypassRequest) *ent.BypassRequest {
	expired, err := m.store.MarkExpired(ctx, row.ID)
	if err != nil {
		if !errors.Is(err, services.ErrConcurrentModification) && !errors.Is(err, services.ErrNotFound) {
			m.logger.Warn("Failed to expire overdue bypass", "bypass_id", row.ID, "error", err)
		}
		return nil
	}
	m.auditExpired(expired)
	return expired
}

func (m *Manager) auditExpired(row *ent.BypassRequest) {
	details := map[string]any{}
	if row.ExpiresAt != nil {
		details["expires_at"] = row.ExpiresAt.UTC().Format(time.RFC3339)
	}
	if row.RemediationPlan != "" {
		details["remediation_plan"] = row.RemediationPlan
	}
	m.appendAudit(audit.Event{
		EventType:   audit.EventBypassExpired,
		WorkflowID:  row.WorkflowID,
		ExecutionID: row.ExecutionID,
		Phase:       row.Phase,
		Gate:        row.Gate,
		BypassID:    row.ID,
		Details:     details,
	})
	m.logger.Warn("Bypass expired with the gate still below threshold",
		"bypass_id", row.ID, "gate", row.Gate, "phase", row.Phase)
}
