package config

import (
	"fmt"
	"log/slog"
	"sync"
)

// PolicyConfig is the parsed phase SLO / bypass policy document.
// Structure mirrors the policy file:
//
//	phases:
//	  implementation:
//	    gates:
//	      test_coverage: {threshold: 0.80, severity: blocking}
//	bypass_rules:
//	  bypassable_gates:
//	    - {gate: test_coverage, phase: implementation, requires_adr: true, approval_level: tech_lead}
//	  non_bypassable_gates:
//	    - {gate: security_scan}
//	  audit_trail:
//	    log_location: logs/phase_gate_bypasses.jsonl
//	    alert_threshold: 0.10
type PolicyConfig struct {
	Phases      map[Phase]PhasePolicy `yaml:"phases"`
	BypassRules BypassRules           `yaml:"bypass_rules"`
}

// PhasePolicy holds the quality gates declared for a single phase.
type PhasePolicy struct {
	Gates map[string]GateSLO `yaml:"gates"`
}

// GateSLO is a single quality gate threshold with its violation severity.
type GateSLO struct {
	Threshold   float64      `yaml:"threshold"`
	Severity    GateSeverity `yaml:"severity"`
	Description string       `yaml:"description,omitempty"`
}

// BypassRules declares which gates may be bypassed and under what conditions.
type BypassRules struct {
	BypassableGates    []BypassableGate `yaml:"bypassable_gates,omitempty"`
	NonBypassableGates []GateRef        `yaml:"non_bypassable_gates,omitempty"`
	AuditTrail         AuditTrailConfig `yaml:"audit_trail"`
}

// BypassableGate marks a (gate, phase) pair as bypassable with its
// governance requirements.
type BypassableGate struct {
	Gate          string        `yaml:"gate"`
	Phase         Phase         `yaml:"phase"`
	RequiresADR   bool          `yaml:"requires_adr"`
	ApprovalLevel ApprovalLevel `yaml:"approval_level,omitempty"`
}

// GateRef identifies a gate, optionally scoped to a phase.
// An empty phase matches the gate in every phase.
type GateRef struct {
	Gate  string `yaml:"gate"`
	Phase Phase  `yaml:"phase,omitempty"`
}

// AuditTrailConfig locates the bypass audit log and sets the alert threshold
// for the bypass rate.
type AuditTrailConfig struct {
	LogLocation    string  `yaml:"log_location,omitempty"`
	AlertThreshold float64 `yaml:"alert_threshold,omitempty"`
}

// BypassRequirements are the governance requirements attached to a
// bypassable gate.
type BypassRequirements struct {
	RequiresADR   bool
	ApprovalLevel ApprovalLevel
}

// PolicyRegistry answers typed threshold, severity, and bypass-rule lookups
// against the loaded policy document, falling back to the builtin default
// gate table for entries the document omits. Each fallback is logged once
// per (phase, gate) pair.
type PolicyRegistry struct {
	policy   *PolicyConfig
	defaults map[string]GateSLO

	// loggedFallbacks tracks (phase, gate) pairs whose default fallback
	// has already been logged.
	loggedFallbacks sync.Map
}

// NewPolicyRegistry creates a policy registry over the given policy document.
// A nil policy is valid and answers every lookup from the default table.
func NewPolicyRegistry(policy *PolicyConfig) *PolicyRegistry {
	if policy == nil {
		policy = &PolicyConfig{}
	}
	return &PolicyRegistry{
		policy:   policy,
		defaults: defaultGateTable(),
	}
}

// Threshold returns the quality threshold for a gate within a phase.
// Returns ErrGateNotFound when the gate is neither configured nor in the
// default table.
func (r *PolicyRegistry) Threshold(phase Phase, gate string) (float64, error) {
	slo, err := r.lookup(phase, gate)
	if err != nil {
		return 0, err
	}
	return slo.Threshold, nil
}

// Severity returns the violation severity for a gate within a phase.
func (r *PolicyRegistry) Severity(phase Phase, gate string) (GateSeverity, error) {
	slo, err := r.lookup(phase, gate)
	if err != nil {
		return "", err
	}
	return slo.Severity, nil
}

// CanBypass reports whether policy permits bypassing the gate in the phase.
// Non-bypassable entries win over bypassable ones; gates in neither list
// are not bypassable.
func (r *PolicyRegistry) CanBypass(gate string, phase Phase) bool {
	for _, ref := range r.policy.BypassRules.NonBypassableGates {
		if ref.Gate == gate && (ref.Phase == "" || ref.Phase == phase) {
			return false
		}
	}
	for _, bg := range r.policy.BypassRules.BypassableGates {
		if bg.Gate == gate && bg.Phase == phase {
			return true
		}
	}
	return false
}

// BypassRequirements returns the ADR and approval requirements for a
// bypassable gate. Returns ErrGateNotFound when the gate is not bypassable
// in the phase.
func (r *PolicyRegistry) BypassRequirements(gate string, phase Phase) (BypassRequirements, error) {
	if !r.CanBypass(gate, phase) {
		return BypassRequirements{}, fmt.Errorf("%w: gate %q is not bypassable in phase %q", ErrGateNotFound, gate, phase)
	}
	for _, bg := range r.policy.BypassRules.BypassableGates {
		if bg.Gate == gate && bg.Phase == phase {
			level := bg.ApprovalLevel
			if level == "" {
				level = ApprovalLevelTechLead
			}
			return BypassRequirements{RequiresADR: bg.RequiresADR, ApprovalLevel: level}, nil
		}
	}
	// Unreachable given CanBypass above, kept for safety.
	return BypassRequirements{}, fmt.Errorf("%w: %s/%s", ErrGateNotFound, phase, gate)
}

// GatesFor returns the merged gate table for a phase: configured gates plus
// defaults for gates the phase policy does not mention. Exit-gate validation
// iterates this map.
func (r *PolicyRegistry) GatesFor(phase Phase) map[string]GateSLO {
	merged := make(map[string]GateSLO, len(r.defaults))
	for gate, slo := range r.defaults {
		merged[gate] = slo
	}
	if pp, ok := r.policy.Phases[phase]; ok {
		for gate, slo := range pp.Gates {
			merged[gate] = slo
		}
	}
	return merged
}

// AlertThreshold returns the bypass-rate warning threshold (default 0.10).
func (r *PolicyRegistry) AlertThreshold() float64 {
	if t := r.policy.BypassRules.AuditTrail.AlertThreshold; t > 0 {
		return t
	}
	return DefaultBypassAlertThreshold
}

// AuditLogLocation returns the bypass audit log path (default
// logs/phase_gate_bypasses.jsonl).
func (r *PolicyRegistry) AuditLogLocation() string {
	if loc := r.policy.BypassRules.AuditTrail.LogLocation; loc != "" {
		return loc
	}
	return DefaultBypassAuditLog
}

// lookup resolves a gate SLO from the policy document, falling back to the
// default table with a once-per-pair warning.
func (r *PolicyRegistry) lookup(phase Phase, gate string) (GateSLO, error) {
	if pp, ok := r.policy.Phases[phase]; ok {
		if slo, ok := pp.Gates[gate]; ok {
			return slo, nil
		}
	}

	slo, ok := r.defaults[gate]
	if !ok {
		return GateSLO{}, fmt.Errorf("%w: %s/%s", ErrGateNotFound, phase, gate)
	}

	key := string(phase) + "/" + gate
	if _, logged := r.loggedFallbacks.LoadOrStore(key, struct{}{}); !logged {
		slog.Warn("Policy gate not configured, using default",
			"phase", phase, "gate", gate,
			"threshold", slo.Threshold, "severity", slo.Severity)
	}
	return slo, nil
}

// validate checks enum values and threshold ranges across the document.
func (p *PolicyConfig) validate() error {
	for phase, pp := range p.Phases {
		if !phase.IsValid() {
			return NewValidationError("policy", string(phase), "", fmt.Errorf("%w: unknown phase", ErrInvalidValue))
		}
		for gate, slo := range pp.Gates {
			if gate == "" {
				return NewValidationError("policy", string(phase), "gates", ErrMissingRequiredField)
			}
			if slo.Threshold < 0 || slo.Threshold > 1 {
				return NewValidationError("policy", string(phase), gate,
					fmt.Errorf("%w: threshold %v outside [0,1]", ErrInvalidValue, slo.Threshold))
			}
			if slo.Severity != "" && !slo.Severity.IsValid() {
				return NewValidationError("policy", string(phase), gate,
					fmt.Errorf("%w: severity %q", ErrInvalidValue, slo.Severity))
			}
		}
	}
	for i, bg := range p.BypassRules.BypassableGates {
		if bg.Gate == "" {
			return NewValidationError("policy", fmt.Sprintf("bypassable_gates[%d]", i), "gate", ErrMissingRequiredField)
		}
		if !bg.Phase.IsValid() {
			return NewValidationError("policy", fmt.Sprintf("bypassable_gates[%d]", i), "phase",
				fmt.Errorf("%w: %q", ErrInvalidValue, bg.Phase))
		}
		if bg.ApprovalLevel != "" && !bg.ApprovalLevel.IsValid() {
			return NewValidationError("policy", fmt.Sprintf("bypassable_gates[%d]", i), "approval_level",
				fmt.Errorf("%w: %q", ErrInvalidValue, bg.ApprovalLevel))
		}
	}
	for i, ref := range p.BypassRules.NonBypassableGates {
		if ref.Gate == "" {
			return NewValidationError("policy", fmt.Sprintf("non_bypassable_gates[%d]", i), "gate", ErrMissingRequiredField)
		}
		if ref.Phase != "" && !ref.Phase.IsValid() {
			return NewValidationError("policy", fmt.Sprintf("non_bypassable_gates[%d]", i), "phase",
				fmt.Errorf("%w: %q", ErrInvalidValue, ref.Phase))
		}
	}
	if t := p.BypassRules.AuditTrail.AlertThreshold; t < 0 || t > 1 {
		return NewValidationError("policy", "audit_trail", "alert_threshold",
			fmt.Errorf("%w: %v outside [0,1]", ErrInvalidValue, t))
	}
	return nil
}
