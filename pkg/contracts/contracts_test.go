package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/pkg/config"
)

func TestDeliverableMatch(t *testing.T) {
	tests := []struct {
		name        string
		deliverable Deliverable
		path        string
		want        bool
	}{
		{
			name:        "glob on basename",
			deliverable: Deliverable{Name: "requirements_doc", Patterns: []string{"*requirements*.md"}},
			path:        "docs/Requirements-v2.md",
			want:        true,
		},
		{
			name:        "case insensitive",
			deliverable: Deliverable{Name: "api_contract", Patterns: []string{"*openapi*.yaml"}},
			path:        "api/OpenAPI.yaml",
			want:        true,
		},
		{
			name:        "doublestar directory pattern",
			deliverable: Deliverable{Name: "source_code", Patterns: []string{"src/**"}},
			path:        "src/server/handlers/auth.go",
			want:        true,
		},
		{
			name:        "substring fallback for bare token",
			deliverable: Deliverable{Name: "api_contract", Patterns: []string{"api"}},
			path:        "docs/API-Design.md",
			want:        true,
		},
		{
			name:        "no match",
			deliverable: Deliverable{Name: "test_suite", Patterns: []string{"*_test.go", "tests/**"}},
			path:        "src/main.go",
			want:        false,
		},
		{
			name:        "windows separators normalized",
			deliverable: Deliverable{Name: "deployment_config", Patterns: []string{"k8s/**"}},
			path:        `k8s\base\deployment.yaml`,
			want:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.deliverable.Match(tt.path))
		})
	}
}

func TestRegistryVersioning(t *testing.T) {
	r := NewRegistry()

	v1, err := r.Register(Contract{
		Phase:        config.PhaseDesign,
		Deliverables: []Deliverable{{Name: "api_contract", Patterns: []string{"*.yaml"}, MinQuality: 0.7}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, v1)

	v2, err := r.Register(Contract{
		Phase: config.PhaseDesign,
		Deliverables: []Deliverable{
			{Name: "api_contract", Patterns: []string{"*.yaml"}, MinQuality: 0.8},
			{Name: "data_model", Patterns: []string{"*.sql"}, MinQuality: 0.6},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, v2)

	// Pinned version keeps its original shape.
	pinned, err := r.Get(config.PhaseDesign, 1)
	require.NoError(t, err)
	assert.Len(t, pinned.Deliverables, 1)
	assert.InDelta(t, 0.7, pinned.Deliverables[0].MinQuality, 0.001)

	latest, err := r.Latest(config.PhaseDesign)
	require.NoError(t, err)
	assert.Equal(t, 2, latest.Version)
	assert.Len(t, latest.Deliverables, 2)

	assert.Equal(t, []int{1, 2}, r.Versions(config.PhaseDesign))
}

func TestRegistryImmutability(t *testing.T) {
	r := NewRegistry()

	c := Contract{
		Phase:        config.PhaseTesting,
		Deliverables: []Deliverable{{Name: "test_suite", Patterns: []string{"tests/**"}, MinQuality: 0.7}},
	}
	_, err := r.Register(c)
	require.NoError(t, err)

	// Mutating the caller's copy must not reach the registry.
	c.Deliverables[0].MinQuality = 0.1

	stored, err := r.Latest(config.PhaseTesting)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, stored.Deliverables[0].MinQuality, 0.001)
}

func TestRegistryLookupErrors(t *testing.T) {
	r := NewRegistry()

	_, err := r.Latest(config.PhaseDeployment)
	assert.ErrorIs(t, err, ErrContractNotFound)

	_, err = r.Register(Contract{
		Phase:        config.PhaseDeployment,
		Deliverables: []Deliverable{{Name: "deployment_config", Patterns: []string{"Dockerfile"}, MinQuality: 0.7}},
	})
	require.NoError(t, err)

	_, err = r.Get(config.PhaseDeployment, 3)
	assert.ErrorIs(t, err, ErrVersionNotFound)
}

func TestRegisterValidation(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name     string
		contract Contract
		wantErr  error
	}{
		{
			name:     "unknown phase",
			contract: Contract{Phase: "shipping", Deliverables: []Deliverable{{Name: "x", Patterns: []string{"*"}}}},
			wantErr:  config.ErrInvalidValue,
		},
		{
			name:     "no deliverables",
			contract: Contract{Phase: config.PhaseDesign},
			wantErr:  config.ErrValidationFailed,
		},
		{
			name: "duplicate deliverable names",
			contract: Contract{Phase: config.PhaseDesign, Deliverables: []Deliverable{
				{Name: "api_contract", Patterns: []string{"*.yaml"}},
				{Name: "api_contract", Patterns: []string{"*.yml"}},
			}},
			wantErr: config.ErrValidationFailed,
		},
		{
			name: "min quality out of range",
			contract: Contract{Phase: config.PhaseDesign, Deliverables: []Deliverable{
				{Name: "api_contract", Patterns: []string{"*.yaml"}, MinQuality: 1.5},
			}},
			wantErr: config.ErrInvalidValue,
		},
		{
			name: "deliverable without patterns",
			contract: Contract{Phase: config.PhaseDesign, Deliverables: []Deliverable{
				{Name: "api_contract"},
			}},
			wantErr: config.ErrMissingRequiredField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Register(tt.contract)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuiltinContractsCoverAllPhases(t *testing.T) {
	r := NewRegistry()
	for _, c := range BuiltinContracts() {
		_, err := r.Register(c)
		require.NoError(t, err)
	}

	for _, phase := range config.PhaseSequence() {
		c, err := r.Latest(phase)
		require.NoError(t, err, "phase %s should have a builtin contract", phase)
		assert.NotEmpty(t, c.Required(), "phase %s should require at least one deliverable", phase)
		for _, d := range c.Deliverables {
			assert.NotEmpty(t, d.Patterns, "builtin deliverable %s should carry patterns", d.Name)
		}
	}
}

func TestNewRegistryFromConfigAppliesOverrides(t *testing.T) {
	cfg := &config.Config{
		ContractOverrides: map[config.Phase]config.ContractConfig{
			config.PhaseTesting: {
				Deliverables: []config.DeliverableConfig{
					{Name: "test_suite", MinQuality: 0.9},
					{Name: "coverage_report", Optional: true},
				},
				QualityMetrics: map[string]float64{"test_coverage": 0.85},
			},
		},
	}

	r, err := NewRegistryFromConfig(cfg)
	require.NoError(t, err)

	latest, err := r.Latest(config.PhaseTesting)
	require.NoError(t, err)
	assert.Equal(t, 2, latest.Version, "override should layer over the builtin as a new version")
	assert.InDelta(t, 0.85, latest.QualityMetrics["test_coverage"], 0.001)

	// Patterns omitted in the override come from the builtin table.
	suite, ok := latest.Deliverable("test_suite")
	require.True(t, ok)
	assert.NotEmpty(t, suite.Patterns)
	assert.InDelta(t, 0.9, suite.MinQuality, 0.001)

	report, ok := latest.Deliverable("coverage_report")
	require.True(t, ok)
	assert.True(t, report.Optional)
	assert.InDelta(t, DefaultMinQuality, report.MinQuality, 0.001, "unset min_quality should default")

	// Other phases still resolve to their builtin version 1.
	design, err := r.Latest(config.PhaseDesign)
	require.NoError(t, err)
	assert.Equal(t, 1, design.Version)
}
