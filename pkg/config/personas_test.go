package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPersonaRegistry() *PersonaRegistry {
	return NewPersonaRegistry(map[string]*PersonaConfig{
		"backend_developer": {
			Role:         "Backend Developer",
			Capabilities: []string{"backend", "api"},
			SystemPrompt: "backend prompt",
			Phases:       []Phase{PhaseImplementation},
		},
		"frontend_developer": {
			Role:         "Frontend Developer",
			Capabilities: []string{"frontend"},
			SystemPrompt: "frontend prompt",
			Phases:       []Phase{PhaseImplementation},
		},
		"qa_engineer": {
			Role:         "QA Engineer",
			Capabilities: []string{"qa", "testing"},
			SystemPrompt: "qa prompt",
			Phases:       []Phase{PhaseTesting},
		},
	})
}

func TestPersonaRegistryGet(t *testing.T) {
	registry := testPersonaRegistry()

	persona, err := registry.Get("qa_engineer")
	require.NoError(t, err)
	assert.Equal(t, "QA Engineer", persona.Role)
}

func TestPersonaRegistryGetNotFound(t *testing.T) {
	registry := testPersonaRegistry()

	_, err := registry.Get("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersonaNotFound)
	assert.Contains(t, err.Error(), "missing")
}

func TestPersonaRegistryGetByCapability(t *testing.T) {
	registry := testPersonaRegistry()

	assert.Equal(t, []string{"backend_developer"}, registry.GetByCapability("backend"))
	assert.Empty(t, registry.GetByCapability("nonexistent"))
}

func TestPersonaRegistryGetByPhase(t *testing.T) {
	registry := testPersonaRegistry()

	// Sorted for deterministic planning
	assert.Equal(t, []string{"backend_developer", "frontend_developer"},
		registry.GetByPhase(PhaseImplementation))
	assert.Equal(t, []string{"qa_engineer"}, registry.GetByPhase(PhaseTesting))
	assert.Empty(t, registry.GetByPhase(PhaseDeployment))
}

func TestPersonaRegistryHasAndLen(t *testing.T) {
	registry := testPersonaRegistry()

	assert.True(t, registry.Has("backend_developer"))
	assert.False(t, registry.Has("missing"))
	assert.Equal(t, 3, registry.Len())
}

func TestPersonaRegistryDefensiveCopy(t *testing.T) {
	source := map[string]*PersonaConfig{
		"qa_engineer": {Role: "QA Engineer", SystemPrompt: "prompt"},
	}
	registry := NewPersonaRegistry(source)

	delete(source, "qa_engineer")

	assert.True(t, registry.Has("qa_engineer"))
}
