package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseIsValid(t *testing.T) {
	tests := []struct {
		name  string
		phase Phase
		valid bool
	}{
		{"requirements", PhaseRequirements, true},
		{"design", PhaseDesign, true},
		{"implementation", PhaseImplementation, true},
		{"testing", PhaseTesting, true},
		{"deployment", PhaseDeployment, true},
		{"invalid", Phase("invalid"), false},
		{"empty", Phase(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.phase.IsValid())
		})
	}
}

func TestPhaseSequence(t *testing.T) {
	seq := PhaseSequence()
	assert.Equal(t, []Phase{
		PhaseRequirements,
		PhaseDesign,
		PhaseImplementation,
		PhaseTesting,
		PhaseDeployment,
	}, seq)

	// Returned slice is a copy; mutating it must not corrupt the order
	seq[0] = PhaseDeployment
	assert.Equal(t, PhaseRequirements, PhaseSequence()[0])
}

func TestPhaseNext(t *testing.T) {
	tests := []struct {
		name  string
		phase Phase
		next  Phase
		ok    bool
	}{
		{"requirements to design", PhaseRequirements, PhaseDesign, true},
		{"implementation to testing", PhaseImplementation, PhaseTesting, true},
		{"deployment is last", PhaseDeployment, "", false},
		{"unknown phase", Phase("bogus"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := tt.phase.Next()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.next, next)
		})
	}
}

func TestPhasePrev(t *testing.T) {
	prev, ok := PhaseDesign.Prev()
	assert.True(t, ok)
	assert.Equal(t, PhaseRequirements, prev)

	_, ok = PhaseRequirements.Prev()
	assert.False(t, ok)
}

func TestPhaseCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    Phase
		to      Phase
		allowed bool
	}{
		{"requirements to design", PhaseRequirements, PhaseDesign, true},
		{"design to implementation", PhaseDesign, PhaseImplementation, true},
		{"skip a phase", PhaseRequirements, PhaseImplementation, false},
		{"backwards", PhaseTesting, PhaseImplementation, false},
		{"self", PhaseDesign, PhaseDesign, false},
		{"from last", PhaseDeployment, PhaseRequirements, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestGateSeverityIsValid(t *testing.T) {
	tests := []struct {
		name     string
		severity GateSeverity
		valid    bool
	}{
		{"blocking", GateSeverityBlocking, true},
		{"warning", GateSeverityWarning, true},
		{"info", GateSeverityInfo, true},
		{"invalid", GateSeverity("fatal"), false},
		{"empty", GateSeverity(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.severity.IsValid())
		})
	}
}

func TestApprovalLevelIsValid(t *testing.T) {
	tests := []struct {
		name  string
		level ApprovalLevel
		valid bool
	}{
		{"tech_lead", ApprovalLevelTechLead, true},
		{"engineering_manager", ApprovalLevelEngineeringManager, true},
		{"security_officer", ApprovalLevelSecurityOfficer, true},
		{"invalid", ApprovalLevel("ceo"), false},
		{"empty", ApprovalLevel(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.level.IsValid())
		})
	}
}

func TestBypassDurationIsValid(t *testing.T) {
	tests := []struct {
		name     string
		duration BypassDuration
		valid    bool
	}{
		{"temporary", BypassDurationTemporary, true},
		{"permanent", BypassDurationPermanent, true},
		{"invalid", BypassDuration("forever"), false},
		{"empty", BypassDuration(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.duration.IsValid())
		})
	}
}

func TestRiskLevelIsValid(t *testing.T) {
	tests := []struct {
		name  string
		level RiskLevel
		valid bool
	}{
		{"low", RiskLevelLow, true},
		{"medium", RiskLevelMedium, true},
		{"high", RiskLevelHigh, true},
		{"critical", RiskLevelCritical, true},
		{"invalid", RiskLevel("extreme"), false},
		{"empty", RiskLevel(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.level.IsValid())
		})
	}
}
