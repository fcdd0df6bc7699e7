package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	builtin := GetBuiltinConfig()
	personas := mergePersonas(builtin.Personas, nil)
	policy := mergePolicy(builtin.Policy, nil)

	return &Config{
		Defaults:        DefaultDefaults(),
		Engine:          DefaultEngineConfig(),
		Retention:       DefaultRetentionConfig(),
		PersonaRegistry: NewPersonaRegistry(personas),
		PolicyRegistry:  NewPolicyRegistry(policy),
		ContractOverrides: map[Phase]ContractConfig{
			PhaseDesign: {
				Deliverables: []DeliverableConfig{
					{Name: "architecture_doc", MinQuality: 0.75},
					{Name: "api_contract", MinQuality: 0.8},
				},
				QualityMetrics: map[string]float64{"quality_score": 0.75},
				Owners:         []string{"solution_architect"},
			},
		},
	}
}

func TestValidateAllValid(t *testing.T) {
	cfg := validTestConfig()
	err := NewValidator(cfg).ValidateAll()
	assert.NoError(t, err)
}

func TestValidatePersonaMissingRole(t *testing.T) {
	cfg := validTestConfig()
	cfg.PersonaRegistry = NewPersonaRegistry(map[string]*PersonaConfig{
		"broken": {SystemPrompt: "prompt"},
	})

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
	assert.Contains(t, err.Error(), "broken")
	assert.Contains(t, err.Error(), "role")
}

func TestValidatePersonaMissingSystemPrompt(t *testing.T) {
	cfg := validTestConfig()
	cfg.PersonaRegistry = NewPersonaRegistry(map[string]*PersonaConfig{
		"broken": {Role: "Some Role"},
	})

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
	assert.Contains(t, err.Error(), "system_prompt")
}

func TestValidatePersonaInvalidPhase(t *testing.T) {
	cfg := validTestConfig()
	cfg.PersonaRegistry = NewPersonaRegistry(map[string]*PersonaConfig{
		"broken": {Role: "Role", SystemPrompt: "prompt", Phases: []Phase{"bogus"}},
	})

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "bogus")
}

func TestValidateContractUnknownOwner(t *testing.T) {
	cfg := validTestConfig()
	contract := cfg.ContractOverrides[PhaseDesign]
	contract.Owners = []string{"nonexistent_persona"}
	cfg.ContractOverrides[PhaseDesign] = contract

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.Contains(t, err.Error(), "nonexistent_persona")
}

func TestValidateContractDuplicateDeliverable(t *testing.T) {
	cfg := validTestConfig()
	contract := cfg.ContractOverrides[PhaseDesign]
	contract.Deliverables = append(contract.Deliverables,
		DeliverableConfig{Name: "architecture_doc"})
	cfg.ContractOverrides[PhaseDesign] = contract

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "architecture_doc")
}

func TestValidateContractEmptyDeliverables(t *testing.T) {
	cfg := validTestConfig()
	cfg.ContractOverrides[PhaseDesign] = ContractConfig{}

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestValidateContractMinQualityOutOfRange(t *testing.T) {
	cfg := validTestConfig()
	cfg.ContractOverrides[PhaseDesign] = ContractConfig{
		Deliverables: []DeliverableConfig{{Name: "architecture_doc", MinQuality: 1.2}},
	}

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "min_quality")
}

func TestValidateContractQualityMetricOutOfRange(t *testing.T) {
	cfg := validTestConfig()
	cfg.ContractOverrides[PhaseDesign] = ContractConfig{
		Deliverables:   []DeliverableConfig{{Name: "architecture_doc"}},
		QualityMetrics: map[string]float64{"quality_score": -0.5},
	}

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestValidateContractUnknownPhase(t *testing.T) {
	cfg := validTestConfig()
	cfg.ContractOverrides[Phase("bogus")] = ContractConfig{
		Deliverables: []DeliverableConfig{{Name: "doc"}},
	}

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestValidateEngineBounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EngineConfig)
	}{
		{"zero max_concurrency", func(e *EngineConfig) { e.MaxConcurrency = 0 }},
		{"zero node timeout", func(e *EngineConfig) { e.DefaultNodeTimeout = 0 }},
		{"negative retries", func(e *EngineConfig) { e.MaxRetries = -1 }},
		{"backoff inverted", func(e *EngineConfig) { e.MaxBackoff = e.InitialBackoff / 2 }},
		{"negative remediation budget", func(e *EngineConfig) { e.MaxRemediationIterations = -1 }},
		{"zero workers", func(e *EngineConfig) { e.WorkerCount = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg.Engine)

			err := NewValidator(cfg).ValidateAll()
			assert.Error(t, err)
		})
	}
}
