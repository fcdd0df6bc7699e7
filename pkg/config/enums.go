package config

// Phase is a lifecycle stage in the software-delivery sequence.
// Phases form a strict linear chain; a workflow advances one phase at a
// time and never revisits a completed phase.
type Phase string

const (
	// PhaseRequirements captures and validates the requirement set
	PhaseRequirements Phase = "requirements"
	// PhaseDesign produces architecture and interface contracts
	PhaseDesign Phase = "design"
	// PhaseImplementation produces source code
	PhaseImplementation Phase = "implementation"
	// PhaseTesting produces and runs the test suite
	PhaseTesting Phase = "testing"
	// PhaseDeployment produces deployment configuration
	PhaseDeployment Phase = "deployment"
)

// phaseOrder fixes the linear sequence. Index is also used for
// predecessor lookups in entry gates.
var phaseOrder = []Phase{
	PhaseRequirements,
	PhaseDesign,
	PhaseImplementation,
	PhaseTesting,
	PhaseDeployment,
}

// PhaseSequence returns the ordered lifecycle phases (copy).
func PhaseSequence() []Phase {
	seq := make([]Phase, len(phaseOrder))
	copy(seq, phaseOrder)
	return seq
}

// String returns the phase name.
func (p Phase) String() string { return string(p) }

// IsValid checks if the phase is one of the lifecycle phases.
func (p Phase) IsValid() bool {
	for _, known := range phaseOrder {
		if p == known {
			return true
		}
	}
	return false
}

// Index returns the 0-based position of the phase in the sequence,
// or -1 for unknown phases.
func (p Phase) Index() int {
	for i, known := range phaseOrder {
		if p == known {
			return i
		}
	}
	return -1
}

// Next returns the following phase. ok is false when p is the last
// phase or unknown.
func (p Phase) Next() (Phase, bool) {
	i := p.Index()
	if i < 0 || i >= len(phaseOrder)-1 {
		return "", false
	}
	return phaseOrder[i+1], true
}

// Prev returns the preceding phase. ok is false when p is the first
// phase or unknown.
func (p Phase) Prev() (Phase, bool) {
	i := p.Index()
	if i <= 0 {
		return "", false
	}
	return phaseOrder[i-1], true
}

// CanTransitionTo reports whether the state machine permits moving from
// p to target. Only the immediate successor is reachable.
func (p Phase) CanTransitionTo(target Phase) bool {
	next, ok := p.Next()
	return ok && next == target
}

// GateSeverity classifies a policy gate violation.
type GateSeverity string

const (
	// GateSeverityBlocking fails the gate absent an approved bypass
	GateSeverityBlocking GateSeverity = "blocking"
	// GateSeverityWarning is reported but does not fail the gate
	GateSeverityWarning GateSeverity = "warning"
	// GateSeverityInfo is informational only
	GateSeverityInfo GateSeverity = "info"
)

// IsValid checks if the gate severity is valid.
func (s GateSeverity) IsValid() bool {
	return s == GateSeverityBlocking || s == GateSeverityWarning || s == GateSeverityInfo
}

// ApprovalLevel is the organizational level required to approve a bypass.
type ApprovalLevel string

const (
	// ApprovalLevelTechLead is the default approval level
	ApprovalLevelTechLead ApprovalLevel = "tech_lead"
	// ApprovalLevelEngineeringManager covers cross-team risk
	ApprovalLevelEngineeringManager ApprovalLevel = "engineering_manager"
	// ApprovalLevelSecurityOfficer is required for security-sensitive gates
	ApprovalLevelSecurityOfficer ApprovalLevel = "security_officer"
)

// IsValid checks if the approval level is valid.
func (l ApprovalLevel) IsValid() bool {
	switch l {
	case ApprovalLevelTechLead, ApprovalLevelEngineeringManager, ApprovalLevelSecurityOfficer:
		return true
	default:
		return false
	}
}

// BypassDuration scopes how long an approved bypass remains in force.
type BypassDuration string

const (
	// BypassDurationTemporary requires an expiration date
	BypassDurationTemporary BypassDuration = "temporary"
	// BypassDurationPermanent never expires (revocation only)
	BypassDurationPermanent BypassDuration = "permanent"
)

// IsValid checks if the bypass duration is valid.
func (d BypassDuration) IsValid() bool {
	return d == BypassDurationTemporary || d == BypassDurationPermanent
}

// RiskLevel grades the technical/business/security risk of a bypass.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

// IsValid checks if the risk level is valid.
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh, RiskLevelCritical:
		return true
	default:
		return false
	}
}
