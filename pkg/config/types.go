package config

// Shared types used across configuration structs

// MaestroYAMLConfig is the raw structure of maestro.yaml before merging
// with builtin defaults.
type MaestroYAMLConfig struct {
	Defaults  *Defaults                `yaml:"defaults,omitempty"`
	Personas  map[string]PersonaConfig `yaml:"personas,omitempty"`
	Policy    *PolicyConfig            `yaml:"policy,omitempty"`
	Contracts map[Phase]ContractConfig `yaml:"contracts,omitempty"`
	Engine    *EngineConfig            `yaml:"engine,omitempty"`
	Retention *RetentionConfig         `yaml:"retention,omitempty"`
	LLM       *LLMConfig               `yaml:"llm,omitempty"`
	API       *APIConfig               `yaml:"api,omitempty"`
}

// ContractConfig declares a per-phase deliverable contract override.
// The contract registry turns these into immutable versioned contracts
// layered over the builtin contract set.
type ContractConfig struct {
	// Deliverables required to exit the phase (required, min 1)
	Deliverables []DeliverableConfig `yaml:"deliverables" validate:"required,min=1"`

	// Named quality metric thresholds beyond per-deliverable minimums
	QualityMetrics map[string]float64 `yaml:"quality_metrics,omitempty"`

	// Persona ids owning the phase's work
	Owners []string `yaml:"owners,omitempty"`
}

// DeliverableConfig declares one required output of a phase.
type DeliverableConfig struct {
	// Deliverable name, unique within the contract (required)
	Name string `yaml:"name" validate:"required"`

	// Case-insensitive glob/substring patterns matching produced files.
	// Empty falls back to the builtin pattern table for the name.
	Patterns []string `yaml:"patterns,omitempty"`

	// Minimum substance score for matched files (default 0.7)
	MinQuality float64 `yaml:"min_quality,omitempty"`

	// Optional deliverables do not fail the completeness check when absent
	Optional bool `yaml:"optional,omitempty"`
}

// LLMConfig locates the external LLM collaborator service.
type LLMConfig struct {
	// gRPC address of the LLM service; env override LLM_SERVICE_ADDR
	ServiceAddr string `yaml:"service_addr,omitempty"`

	// Model identifier forwarded with every request
	Model string `yaml:"model,omitempty"`

	// Sampling temperature
	Temperature float64 `yaml:"temperature,omitempty"`

	// Hard output token limit per call
	MaxTokens int `yaml:"max_tokens,omitempty" validate:"omitempty,min=1"`
}

// APIConfig configures the HTTP surface.
type APIConfig struct {
	// Listen port; env override MAESTRO_API_PORT
	Port int `yaml:"port,omitempty" validate:"omitempty,min=1,max=65535"`
}

// BoolPtr returns a pointer to b. Convenience for *bool struct fields.
func BoolPtr(b bool) *bool { return &b }
