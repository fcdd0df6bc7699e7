package bypass

import (
	"context"
	"time"

	"github.com/maestro-works/maestro/ent/bypassrequest"
	"github.com/maestro-works/maestro/pkg/audit"
)

// DefaultMetricsWindowDays is the trailing window for bypass metrics
// when the caller does not pick one.
const DefaultMetricsWindowDays = 30

// Alert levels for the bypass rate.
const (
	AlertOK       = "ok"
	AlertWarning  = "warning"
	AlertCritical = "critical"
)

// Metrics summarizes bypass activity over a trailing window.
type Metrics struct {
	WindowDays int       `json:"window_days"`
	Since      time.Time `json:"since"`

	// Total counts requests created in the window.
	Total int `json:"total"`

	// Approved counts approval decisions in the window, whatever state
	// the request has moved to since.
	Approved int `json:"approved"`

	// Rejected counts rejection events in the window: row rejections,
	// refused approvals, and refused proposals against non-bypassable
	// gates. The latter two never touch a row, so this comes from the
	// audit trail.
	Rejected int `json:"rejected"`

	// Active counts requests currently relied on by a gate.
	Active int `json:"active"`

	// Expired counts expiry events in the window (audit trail).
	Expired int `json:"expired"`

	// GateEvaluations is the bypass-rate denominator: exit-gate
	// evaluations recorded in the window.
	GateEvaluations int `json:"gate_evaluations"`

	// BypassRate is Approved / GateEvaluations; 0 when nothing was
	// evaluated.
	BypassRate float64 `json:"bypass_rate"`

	ByGate  map[string]int `json:"by_gate"`
	ByPhase map[string]int `json:"by_phase"`

	// AlertLevel is ok, warning, or critical per the rate thresholds.
	AlertLevel string `json:"alert_level"`
}

// Metrics computes bypass activity for the trailing window. Row counts
// come from the store; rejection and expiry counts come from the audit
// trail. Crossing the warning or critical rate threshold logs an alert,
// and the rate is mirrored to the gauge when one is wired.
func (m *Manager) Metrics(ctx context.Context, windowDays int) (*Metrics, error) {
	if windowDays <= 0 {
		windowDays = DefaultMetricsWindowDays
	}
	since := time.Now().AddDate(0, 0, -windowDays)

	out := &Metrics{
		WindowDays: windowDays,
		Since:      since,
		AlertLevel: AlertOK,
	}

	var err error
	if out.Total, err = m.store.CountCreatedSince(ctx, since); err != nil {
		return nil, err
	}
	if out.Approved, err = m.store.CountApprovedSince(ctx, since); err != nil {
		return nil, err
	}
	if out.Active, err = m.store.CountInStatus(ctx, bypassrequest.StatusActive); err != nil {
		return nil, err
	}
	if out.ByGate, err = m.store.CountByGateSince(ctx, since); err != nil {
		return nil, err
	}
	if out.ByPhase, err = m.store.CountByPhaseSince(ctx, since); err != nil {
		return nil, err
	}
	if m.evals != nil {
		if out.GateEvaluations, err = m.evals.CountEvaluationsSince(ctx, since); err != nil {
			return nil, err
		}
	}

	out.Rejected = m.countAuditEvents(audit.EventBypassRejected, since)
	out.Expired = m.countAuditEvents(audit.EventBypassExpired, since)

	if out.GateEvaluations > 0 {
		out.BypassRate = float64(out.Approved) / float64(out.GateEvaluations)
	}

	switch {
	case out.BypassRate >= criticalBypassRate:
		out.AlertLevel = AlertCritical
		m.logger.Error("Bypass rate critical",
			"rate", out.BypassRate,
			"threshold", criticalBypassRate,
			"window_days", windowDays,
			"approved", out.Approved,
			"gate_evaluations", out.GateEvaluations)
	case out.BypassRate >= m.warnThreshold:
		out.AlertLevel = AlertWarning
		m.logger.Warn("Bypass rate above alert threshold",
			"rate", out.BypassRate,
			"threshold", m.warnThreshold,
			"window_days", windowDays)
	}

	if m.gauge != nil {
		m.gauge.SetBypassRate(out.BypassRate)
	}
	return out, nil
}

// countAuditEvents counts trail events of one type since the window
// start. Refusals leave no row behind, so the trail is the only place
// they are recorded; without an audit log the count is zero.
func (m *Manager) countAuditEvents(eventType string, since time.Time) int {
	if m.audit == nil {
		return 0
	}
	count := 0
	err := audit.Scan(m.audit.Path(), audit.Filter{EventType: eventType, Since: since}, func(audit.Event) bool {
		count++
		return true
	})
	if err != nil {
		m.logger.Warn("Failed to scan audit trail for bypass metrics",
			"event_type", eventType, "error", err)
	}
	return count
}
