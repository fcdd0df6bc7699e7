package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy() *PolicyConfig {
	return &PolicyConfig{
		Phases: map[Phase]PhasePolicy{
			PhaseImplementation: {Gates: map[string]GateSLO{
				"test_coverage": {Threshold: 0.90, Severity: GateSeverityBlocking},
				"documentation": {Threshold: 0.40, Severity: GateSeverityWarning},
			}},
		},
		BypassRules: BypassRules{
			BypassableGates: []BypassableGate{
				{Gate: "test_coverage", Phase: PhaseImplementation, RequiresADR: true, ApprovalLevel: ApprovalLevelEngineeringManager},
				{Gate: "documentation", Phase: PhaseImplementation},
			},
			NonBypassableGates: []GateRef{
				{Gate: "security_scan"},
				{Gate: "quality_score", Phase: PhaseDeployment},
			},
			AuditTrail: AuditTrailConfig{
				LogLocation:    "logs/custom_bypasses.jsonl",
				AlertThreshold: 0.15,
			},
		},
	}
}

func TestPolicyRegistryThreshold(t *testing.T) {
	registry := NewPolicyRegistry(testPolicy())

	threshold, err := registry.Threshold(PhaseImplementation, "test_coverage")
	require.NoError(t, err)
	assert.InDelta(t, 0.90, threshold, 0.001)
}

func TestPolicyRegistryThresholdFallsBackToDefault(t *testing.T) {
	registry := NewPolicyRegistry(testPolicy())

	// quality_score is not in the test policy for implementation;
	// the default table answers the lookup
	threshold, err := registry.Threshold(PhaseImplementation, "quality_score")
	require.NoError(t, err)
	assert.InDelta(t, 0.70, threshold, 0.001)
}

func TestPolicyRegistryThresholdUnknownGate(t *testing.T) {
	registry := NewPolicyRegistry(testPolicy())

	_, err := registry.Threshold(PhaseImplementation, "no_such_gate")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGateNotFound)
}

func TestPolicyRegistrySeverity(t *testing.T) {
	registry := NewPolicyRegistry(testPolicy())

	severity, err := registry.Severity(PhaseImplementation, "documentation")
	require.NoError(t, err)
	assert.Equal(t, GateSeverityWarning, severity)
}

func TestPolicyRegistryNilPolicyUsesDefaults(t *testing.T) {
	registry := NewPolicyRegistry(nil)

	threshold, err := registry.Threshold(PhaseTesting, "test_coverage")
	require.NoError(t, err)
	assert.InDelta(t, 0.80, threshold, 0.001)

	severity, err := registry.Severity(PhaseTesting, "documentation")
	require.NoError(t, err)
	assert.Equal(t, GateSeverityWarning, severity)
}

func TestPolicyRegistryCanBypass(t *testing.T) {
	registry := NewPolicyRegistry(testPolicy())

	tests := []struct {
		name    string
		gate    string
		phase   Phase
		allowed bool
	}{
		{"bypassable gate in phase", "test_coverage", PhaseImplementation, true},
		{"bypassable gate wrong phase", "test_coverage", PhaseTesting, false},
		{"non-bypassable everywhere", "security_scan", PhaseDeployment, false},
		{"non-bypassable in one phase", "quality_score", PhaseDeployment, false},
		{"unlisted gate", "quality_score", PhaseDesign, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, registry.CanBypass(tt.gate, tt.phase))
		})
	}
}

func TestPolicyRegistryNonBypassableWins(t *testing.T) {
	// A gate listed in both tables must not be bypassable
	policy := testPolicy()
	policy.BypassRules.BypassableGates = append(policy.BypassRules.BypassableGates,
		BypassableGate{Gate: "security_scan", Phase: PhaseDeployment})
	registry := NewPolicyRegistry(policy)

	assert.False(t, registry.CanBypass("security_scan", PhaseDeployment))
}

func TestPolicyRegistryBypassRequirements(t *testing.T) {
	registry := NewPolicyRegistry(testPolicy())

	reqs, err := registry.BypassRequirements("test_coverage", PhaseImplementation)
	require.NoError(t, err)
	assert.True(t, reqs.RequiresADR)
	assert.Equal(t, ApprovalLevelEngineeringManager, reqs.ApprovalLevel)
}

func TestPolicyRegistryBypassRequirementsDefaultLevel(t *testing.T) {
	registry := NewPolicyRegistry(testPolicy())

	// documentation has no approval_level; the default is tech_lead
	reqs, err := registry.BypassRequirements("documentation", PhaseImplementation)
	require.NoError(t, err)
	assert.False(t, reqs.RequiresADR)
	assert.Equal(t, ApprovalLevelTechLead, reqs.ApprovalLevel)
}

func TestPolicyRegistryBypassRequirementsNotBypassable(t *testing.T) {
	registry := NewPolicyRegistry(testPolicy())

	_, err := registry.BypassRequirements("security_scan", PhaseDeployment)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGateNotFound)
}

func TestPolicyRegistryGatesFor(t *testing.T) {
	registry := NewPolicyRegistry(testPolicy())

	gates := registry.GatesFor(PhaseImplementation)

	// Configured gates override the defaults
	assert.InDelta(t, 0.90, gates["test_coverage"].Threshold, 0.001)
	// Unconfigured defaults are still present
	assert.InDelta(t, 0.70, gates["quality_score"].Threshold, 0.001)
	assert.Contains(t, gates, "security_scan")
}

func TestPolicyRegistryAuditSettings(t *testing.T) {
	registry := NewPolicyRegistry(testPolicy())
	assert.Equal(t, "logs/custom_bypasses.jsonl", registry.AuditLogLocation())
	assert.InDelta(t, 0.15, registry.AlertThreshold(), 0.001)

	defaultsOnly := NewPolicyRegistry(nil)
	assert.Equal(t, DefaultBypassAuditLog, defaultsOnly.AuditLogLocation())
	assert.InDelta(t, DefaultBypassAlertThreshold, defaultsOnly.AlertThreshold(), 0.001)
}

func TestPolicyConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PolicyConfig)
		wantErr bool
	}{
		{"valid policy", func(p *PolicyConfig) {}, false},
		{"unknown phase", func(p *PolicyConfig) {
			p.Phases[Phase("bogus")] = PhasePolicy{Gates: map[string]GateSLO{"g": {Threshold: 0.5}}}
		}, true},
		{"threshold above one", func(p *PolicyConfig) {
			p.Phases[PhaseImplementation].Gates["test_coverage"] = GateSLO{Threshold: 1.5}
		}, true},
		{"negative threshold", func(p *PolicyConfig) {
			p.Phases[PhaseImplementation].Gates["test_coverage"] = GateSLO{Threshold: -0.1}
		}, true},
		{"bad severity", func(p *PolicyConfig) {
			p.Phases[PhaseImplementation].Gates["test_coverage"] = GateSLO{Threshold: 0.5, Severity: "fatal"}
		}, true},
		{"bypassable gate without name", func(p *PolicyConfig) {
			p.BypassRules.BypassableGates = append(p.BypassRules.BypassableGates, BypassableGate{Phase: PhaseDesign})
		}, true},
		{"bypassable gate bad phase", func(p *PolicyConfig) {
			p.BypassRules.BypassableGates = append(p.BypassRules.BypassableGates, BypassableGate{Gate: "g", Phase: "bogus"})
		}, true},
		{"bad approval level", func(p *PolicyConfig) {
			p.BypassRules.BypassableGates = append(p.BypassRules.BypassableGates,
				BypassableGate{Gate: "g", Phase: PhaseDesign, ApprovalLevel: "ceo"})
		}, true},
		{"alert threshold out of range", func(p *PolicyConfig) {
			p.BypassRules.AuditTrail.AlertThreshold = 1.5
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := testPolicy()
			tt.mutate(policy)
			err := policy.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
