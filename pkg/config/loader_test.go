package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	configDir := setupTestConfigDir(t)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Verify registries are populated
	assert.NotNil(t, cfg.PersonaRegistry)
	assert.NotNil(t, cfg.PolicyRegistry)
	assert.NotNil(t, cfg.Defaults)
	assert.NotNil(t, cfg.Engine)
	assert.NotNil(t, cfg.Retention)

	// Verify built-in configs are loaded
	assert.True(t, cfg.PersonaRegistry.Has("backend_developer"))
	assert.True(t, cfg.PersonaRegistry.Has("qa_engineer"))

	// Builtin policy answers gate lookups out of the box
	threshold, err := cfg.PolicyRegistry.Threshold(PhaseImplementation, "test_coverage")
	require.NoError(t, err)
	assert.InDelta(t, 0.80, threshold, 0.001)

	// Verify stats
	stats := cfg.Stats()
	assert.Greater(t, stats.Personas, 0)
	assert.Greater(t, stats.PolicyPhases, 0)
}

func TestInitializeConfigNotFound(t *testing.T) {
	ctx := context.Background()
	_, err := Initialize(ctx, "/nonexistent/directory")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := t.TempDir()

	invalidYAML := `personas: [unclosed`
	err := os.WriteFile(filepath.Join(configDir, "maestro.yaml"), []byte(invalidYAML), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeValidationFailure(t *testing.T) {
	configDir := t.TempDir()

	// Contract owner references a persona that does not exist
	invalidConfig := `
contracts:
  implementation:
    deliverables:
      - name: source_code
    owners:
      - nonexistent_persona
`
	err := os.WriteFile(filepath.Join(configDir, "maestro.yaml"), []byte(invalidConfig), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "nonexistent_persona")
}

func TestLoadMaestroYAML(t *testing.T) {
	configDir := t.TempDir()

	config := `
defaults:
  output_dir: "/tmp/maestro-test"
  consensus_threshold: 0.8

personas:
  db_specialist:
    role: "Database Specialist"
    system_prompt: "You are a database specialist."
    phases: ["design", "implementation"]

policy:
  phases:
    implementation:
      gates:
        test_coverage:
          threshold: 0.9
          severity: blocking

contracts:
  design:
    deliverables:
      - name: architecture_doc
        min_quality: 0.75
`
	err := os.WriteFile(filepath.Join(configDir, "maestro.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	loader := &configLoader{configDir: configDir}
	yamlConfig, err := loader.loadMaestroYAML()

	require.NoError(t, err)
	assert.NotNil(t, yamlConfig.Defaults)
	assert.Equal(t, "/tmp/maestro-test", yamlConfig.Defaults.OutputDir)
	assert.InDelta(t, 0.8, yamlConfig.Defaults.ConsensusThreshold, 0.001)
	assert.Len(t, yamlConfig.Personas, 1)
	require.NotNil(t, yamlConfig.Policy)
	assert.Len(t, yamlConfig.Policy.Phases, 1)
	assert.Len(t, yamlConfig.Contracts, 1)
}

func TestInitializeMissingYAMLUsesBuiltins(t *testing.T) {
	// An empty config dir is valid: everything comes from builtins.
	configDir := t.TempDir()

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	assert.True(t, cfg.PersonaRegistry.Has("solution_architect"))
	assert.Equal(t, "./workspace", cfg.Defaults.OutputDir)
}

func TestUserPersonaOverridesBuiltin(t *testing.T) {
	configDir := t.TempDir()

	config := `
personas:
  qa_engineer:
    role: "Custom QA"
    system_prompt: "Custom QA prompt."
    phases: ["testing"]
`
	err := os.WriteFile(filepath.Join(configDir, "maestro.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)
	require.NoError(t, err)

	persona, err := cfg.GetPersona("qa_engineer")
	require.NoError(t, err)
	assert.Equal(t, "Custom QA", persona.Role)
}

func TestEnvironmentVariableInterpolationInConfig(t *testing.T) {
	configDir := t.TempDir()

	config := `
personas:
  test_persona:
    role: "Test Persona"
    system_prompt: "Connect to {{.TEST_SERVICE_HOST}}:{{.TEST_SERVICE_PORT}}"
    phases: ["implementation"]
`
	err := os.WriteFile(filepath.Join(configDir, "maestro.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	t.Setenv("TEST_SERVICE_HOST", "llm.internal")
	t.Setenv("TEST_SERVICE_PORT", "50051")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)
	require.NoError(t, err)

	persona, err := cfg.GetPersona("test_persona")
	require.NoError(t, err)
	assert.Equal(t, "Connect to llm.internal:50051", persona.SystemPrompt)
}

func TestEnginePathEnvOverride(t *testing.T) {
	configDir := setupTestConfigDir(t)

	t.Setenv("MAESTRO_ENGINE_PATH", "/custom/workflows")
	t.Setenv("MAESTRO_TEMPLATES_PATH", "/custom/templates")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)
	require.NoError(t, err)

	assert.Equal(t, "/custom/workflows", cfg.EnginePath)
	assert.Equal(t, "/custom/templates", cfg.TemplatesPath)
}

func TestEngineEnvOverrides(t *testing.T) {
	configDir := setupTestConfigDir(t)

	t.Setenv("DEFAULT_NODE_TIMEOUT_SECONDS", "120")
	t.Setenv("MAX_REMEDIATION_ITERATIONS", "5")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)
	require.NoError(t, err)

	assert.Equal(t, 120.0, cfg.Engine.DefaultNodeTimeout.Seconds())
	assert.Equal(t, 5, cfg.Engine.MaxRemediationIterations)
}

func TestEngineEnvOverridesInvalidIgnored(t *testing.T) {
	configDir := setupTestConfigDir(t)

	t.Setenv("DEFAULT_NODE_TIMEOUT_SECONDS", "not-a-number")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)
	require.NoError(t, err)

	// Falls back to the default when the override is malformed
	assert.Equal(t, 600.0, cfg.Engine.DefaultNodeTimeout.Seconds())
}

func TestGetPersonaNotFound(t *testing.T) {
	configDir := setupTestConfigDir(t)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)
	require.NoError(t, err)

	_, err = cfg.GetPersona("no-such-persona")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersonaNotFound)
}

// Helper function to set up test config directory
func setupTestConfigDir(t *testing.T) string {
	dir := t.TempDir()

	maestroYAML := `
defaults:
  output_dir: "./workspace"

personas: {}
contracts: {}
`
	err := os.WriteFile(filepath.Join(dir, "maestro.yaml"), []byte(maestroYAML), 0644)
	require.NoError(t, err)

	return dir
}
