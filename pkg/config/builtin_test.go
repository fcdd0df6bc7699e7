package config

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBuiltinConfigSingleton(t *testing.T) {
	first := GetBuiltinConfig()
	second := GetBuiltinConfig()
	assert.Same(t, first, second)
}

func TestBuiltinPersonas(t *testing.T) {
	builtin := GetBuiltinConfig()

	expected := []string{
		"requirements_analyst",
		"solution_architect",
		"backend_developer",
		"frontend_developer",
		"qa_engineer",
		"devops_engineer",
		"security_analyst",
	}
	for _, id := range expected {
		persona, ok := builtin.Personas[id]
		require.True(t, ok, "missing builtin persona %s", id)
		assert.NotEmpty(t, persona.Role, "persona %s missing role", id)
		assert.NotEmpty(t, persona.SystemPrompt, "persona %s missing system prompt", id)
		assert.NotEmpty(t, persona.Phases, "persona %s missing phases", id)
		for _, phase := range persona.Phases {
			assert.True(t, phase.IsValid(), "persona %s has invalid phase %s", id, phase)
		}
	}
}

func TestBuiltinPolicyCoversAllPhases(t *testing.T) {
	builtin := GetBuiltinConfig()

	for _, phase := range PhaseSequence() {
		pp, ok := builtin.Policy.Phases[phase]
		require.True(t, ok, "builtin policy missing phase %s", phase)
		assert.Contains(t, pp.Gates, "quality_score")
		assert.Contains(t, pp.Gates, "artifact_completeness")
	}

	// Deployment always carries the security scan
	assert.Contains(t, builtin.Policy.Phases[PhaseDeployment].Gates, "security_scan")
}

func TestBuiltinPolicyValidates(t *testing.T) {
	builtin := GetBuiltinConfig()
	policy := builtin.Policy
	assert.NoError(t, policy.validate())
}

func TestDefaultGateTable(t *testing.T) {
	gates := defaultGateTable()

	tests := []struct {
		gate      string
		threshold float64
		severity  GateSeverity
	}{
		{"quality_score", 0.70, GateSeverityBlocking},
		{"artifact_completeness", 0.80, GateSeverityBlocking},
		{"test_coverage", 0.80, GateSeverityBlocking},
		{"documentation", 0.50, GateSeverityWarning},
		{"security_scan", 1.00, GateSeverityBlocking},
	}

	for _, tt := range tests {
		t.Run(tt.gate, func(t *testing.T) {
			slo, ok := gates[tt.gate]
			require.True(t, ok)
			assert.InDelta(t, tt.threshold, slo.Threshold, 0.001)
			assert.Equal(t, tt.severity, slo.Severity)
		})
	}
}

func TestBuiltinSecurityScanNotBypassable(t *testing.T) {
	registry := NewPolicyRegistry(&GetBuiltinConfig().Policy)

	for _, phase := range PhaseSequence() {
		assert.False(t, registry.CanBypass("security_scan", phase),
			"security_scan must not be bypassable in %s", phase)
	}
}

func TestBuiltinSubstanceMarkersCompile(t *testing.T) {
	for _, marker := range GetBuiltinConfig().SubstanceMarkers {
		_, err := regexp.Compile("(?i)" + marker.Pattern)
		assert.NoError(t, err, "marker %q must compile", marker.Pattern)
		assert.Greater(t, marker.Penalty, 0.0)
		assert.NotEmpty(t, marker.Description)
	}
}

func TestBuiltinDeliverablePatterns(t *testing.T) {
	patterns := GetBuiltinConfig().DeliverablePatterns

	for _, name := range []string{"requirements_doc", "architecture_doc", "source_code", "test_suite", "deployment_config"} {
		assert.NotEmpty(t, patterns[name], "missing patterns for %s", name)
	}
}
