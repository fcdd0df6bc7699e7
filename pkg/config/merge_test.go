package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergePersonas(t *testing.T) {
	builtinPersonas := map[string]PersonaConfig{
		"qa_engineer": {Role: "QA Engineer", SystemPrompt: "builtin prompt"},
		"devops":      {Role: "DevOps", SystemPrompt: "builtin devops"},
	}
	userPersonas := map[string]PersonaConfig{
		"qa_engineer": {Role: "Custom QA", SystemPrompt: "custom prompt"},
		"dba":         {Role: "DBA", SystemPrompt: "dba prompt"},
	}

	merged := mergePersonas(builtinPersonas, userPersonas)

	require.Len(t, merged, 3)
	assert.Equal(t, "Custom QA", merged["qa_engineer"].Role)
	assert.Equal(t, "DevOps", merged["devops"].Role)
	assert.Equal(t, "DBA", merged["dba"].Role)
}

func TestMergePersonasCopies(t *testing.T) {
	builtinPersonas := map[string]PersonaConfig{
		"qa_engineer": {Role: "QA Engineer"},
	}

	merged := mergePersonas(builtinPersonas, nil)
	merged["qa_engineer"].Role = "mutated"

	// Merging produces copies; the source map is untouched
	assert.Equal(t, "QA Engineer", builtinPersonas["qa_engineer"].Role)
}

func TestMergePolicyGateOverride(t *testing.T) {
	builtin := GetBuiltinConfig().Policy
	user := &PolicyConfig{
		Phases: map[Phase]PhasePolicy{
			PhaseImplementation: {Gates: map[string]GateSLO{
				"test_coverage": {Threshold: 0.95, Severity: GateSeverityBlocking},
			}},
		},
	}

	merged := mergePolicy(builtin, user)

	// Overridden gate takes the user threshold
	assert.InDelta(t, 0.95, merged.Phases[PhaseImplementation].Gates["test_coverage"].Threshold, 0.001)
	// Sibling builtin gates in the same phase survive
	assert.Contains(t, merged.Phases[PhaseImplementation].Gates, "quality_score")
	// Other phases are untouched
	assert.Contains(t, merged.Phases[PhaseDeployment].Gates, "security_scan")
}

func TestMergePolicySeverityDefaultsToBlocking(t *testing.T) {
	builtin := GetBuiltinConfig().Policy
	user := &PolicyConfig{
		Phases: map[Phase]PhasePolicy{
			PhaseDesign: {Gates: map[string]GateSLO{
				"custom_gate": {Threshold: 0.6},
			}},
		},
	}

	merged := mergePolicy(builtin, user)

	assert.Equal(t, GateSeverityBlocking, merged.Phases[PhaseDesign].Gates["custom_gate"].Severity)
}

func TestMergePolicyUserBypassRulesWinWholesale(t *testing.T) {
	builtin := GetBuiltinConfig().Policy
	user := &PolicyConfig{
		BypassRules: BypassRules{
			BypassableGates: []BypassableGate{
				{Gate: "documentation", Phase: PhaseTesting, RequiresADR: true},
			},
		},
	}

	merged := mergePolicy(builtin, user)

	// Builtin bypassable gates are replaced, not appended to
	require.Len(t, merged.BypassRules.BypassableGates, 1)
	assert.Equal(t, "documentation", merged.BypassRules.BypassableGates[0].Gate)
	// The builtin non-bypassable list is gone too, by the wholesale rule
	assert.Empty(t, merged.BypassRules.NonBypassableGates)
}

func TestMergePolicyAuditTrailOnlyOverride(t *testing.T) {
	builtin := GetBuiltinConfig().Policy
	user := &PolicyConfig{
		BypassRules: BypassRules{
			AuditTrail: AuditTrailConfig{AlertThreshold: 0.25},
		},
	}

	merged := mergePolicy(builtin, user)

	// Audit-trail-only overrides keep builtin bypass gates intact
	assert.NotEmpty(t, merged.BypassRules.BypassableGates)
	assert.InDelta(t, 0.25, merged.BypassRules.AuditTrail.AlertThreshold, 0.001)
	assert.Equal(t, DefaultBypassAuditLog, merged.BypassRules.AuditTrail.LogLocation)
}

func TestMergePolicyNilUser(t *testing.T) {
	builtin := GetBuiltinConfig().Policy

	merged := mergePolicy(builtin, nil)

	require.NotNil(t, merged)
	assert.Len(t, merged.Phases, len(builtin.Phases))
	assert.Len(t, merged.BypassRules.BypassableGates, len(builtin.BypassRules.BypassableGates))
}

func TestMergeContracts(t *testing.T) {
	user := map[Phase]ContractConfig{
		PhaseDesign: {
			Deliverables: []DeliverableConfig{{Name: "architecture_doc", MinQuality: 0.8}},
			Owners:       []string{"solution_architect"},
		},
	}

	merged := mergeContracts(user)

	require.Len(t, merged, 1)
	assert.Equal(t, "architecture_doc", merged[PhaseDesign].Deliverables[0].Name)
}
