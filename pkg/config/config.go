package config

import "os"

// Config is the umbrella configuration object that encapsulates
// all registries, defaults, and configuration state.
// This is the primary object returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide defaults
	Defaults *Defaults

	// DAG engine and executor pool configuration
	Engine *EngineConfig

	// Data retention and background sweep configuration
	Retention *RetentionConfig

	// External LLM collaborator settings
	LLM *LLMConfig

	// HTTP surface settings
	API *APIConfig

	// Component registries
	PersonaRegistry *PersonaRegistry
	PolicyRegistry  *PolicyRegistry

	// Contract overrides from maestro.yaml, keyed by phase. The contract
	// registry layers these over the builtin contract set as new versions.
	ContractOverrides map[Phase]ContractConfig

	// EnginePath is where workflow manifests are discovered.
	// Env override MAESTRO_ENGINE_PATH.
	EnginePath string

	// TemplatesPath is where persona prompt template overrides live.
	// Env override MAESTRO_TEMPLATES_PATH.
	TemplatesPath string
}

// Stats contains statistics about loaded configuration
type Stats struct {
	Personas          int
	PolicyPhases      int
	ContractOverrides int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{ContractOverrides: len(c.ContractOverrides)}
	if c.PersonaRegistry != nil {
		s.Personas = c.PersonaRegistry.Len()
	}
	if c.PolicyRegistry != nil {
		s.PolicyPhases = len(c.PolicyRegistry.policy.Phases)
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetPersona retrieves a persona configuration by id.
// This is a convenience method that wraps PersonaRegistry.Get().
func (c *Config) GetPersona(personaID string) (*PersonaConfig, error) {
	return c.PersonaRegistry.Get(personaID)
}

// resolvePath returns the env override if set, otherwise the YAML value,
// otherwise the fallback.
func resolvePath(envKey, yamlValue, fallback string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	if yamlValue != "" {
		return yamlValue
	}
	return fallback
}
