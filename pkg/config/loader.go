package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load maestro.yaml from configDir
//  2. Expand environment variables ({{.VAR}} template syntax)
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined configurations
//  5. Apply environment overrides (engine knobs, paths)
//  6. Build in-memory registries
//  7. Validate all configuration
//  8. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"personas", stats.Personas,
		"policy_phases", stats.PolicyPhases,
		"contract_overrides", stats.ContractOverrides)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	if info, err := os.Stat(configDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configDir)
	}

	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load maestro.yaml (personas, policy, contracts, engine, defaults)
	yamlConfig, err := loader.loadMaestroYAML()
	if err != nil {
		return nil, NewLoadError("maestro.yaml", err)
	}

	// 2. Get built-in configuration
	builtin := GetBuiltinConfig()

	// 3. Merge built-in + user-defined components (user overrides built-in)
	personas := mergePersonas(builtin.Personas, yamlConfig.Personas)
	policy := mergePolicy(builtin.Policy, yamlConfig.Policy)
	contracts := mergeContracts(yamlConfig.Contracts)

	// 4. Resolve defaults (merge user YAML with built-in defaults)
	// Start with defaults, then merge user config on top to preserve unset defaults
	defaults := DefaultDefaults()
	if yamlConfig.Defaults != nil {
		if err := mergo.Merge(defaults, yamlConfig.Defaults, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge defaults: %w", err)
		}
	}

	// 5. Resolve engine config + env overrides
	engine := DefaultEngineConfig()
	if yamlConfig.Engine != nil {
		if err := mergo.Merge(engine, yamlConfig.Engine, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge engine config: %w", err)
		}
	}
	engine.applyEnvOverrides()

	// 6. Resolve retention config
	retention := DefaultRetentionConfig()
	if yamlConfig.Retention != nil {
		if err := mergo.Merge(retention, yamlConfig.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	// 7. Resolve LLM + API settings
	llm := resolveLLMConfig(yamlConfig.LLM)
	api := resolveAPIConfig(yamlConfig.API)

	// 8. Build registries
	personaRegistry := NewPersonaRegistry(personas)
	policyRegistry := NewPolicyRegistry(policy)

	return &Config{
		configDir:         configDir,
		Defaults:          defaults,
		Engine:            engine,
		Retention:         retention,
		LLM:               llm,
		API:               api,
		PersonaRegistry:   personaRegistry,
		PolicyRegistry:    policyRegistry,
		ContractOverrides: contracts,
		EnginePath:        resolvePath("MAESTRO_ENGINE_PATH", "", filepath.Join(configDir, "workflows")),
		TemplatesPath:     resolvePath("MAESTRO_TEMPLATES_PATH", "", filepath.Join(configDir, "templates")),
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

// resolveLLMConfig resolves LLM collaborator settings, applying defaults.
func resolveLLMConfig(user *LLMConfig) *LLMConfig {
	cfg := &LLMConfig{
		ServiceAddr: "localhost:50051",
		Temperature: 0.2,
	}
	if user != nil {
		if user.ServiceAddr != "" {
			cfg.ServiceAddr = user.ServiceAddr
		}
		if user.Model != "" {
			cfg.Model = user.Model
		}
		if user.Temperature > 0 {
			cfg.Temperature = user.Temperature
		}
		if user.MaxTokens > 0 {
			cfg.MaxTokens = user.MaxTokens
		}
	}
	if addr := os.Getenv("LLM_SERVICE_ADDR"); addr != "" {
		cfg.ServiceAddr = addr
	}
	return cfg
}

// resolveAPIConfig resolves HTTP surface settings, applying defaults.
func resolveAPIConfig(user *APIConfig) *APIConfig {
	cfg := &APIConfig{Port: 8080}
	if user != nil && user.Port != 0 {
		cfg.Port = user.Port
	}
	if raw := os.Getenv("MAESTRO_API_PORT"); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil && port > 0 {
			cfg.Port = port
		}
	}
	return cfg
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	// Parse YAML
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadMaestroYAML() (*MaestroYAMLConfig, error) {
	var config MaestroYAMLConfig

	// Initialize maps to avoid nil maps
	config.Personas = make(map[string]PersonaConfig)
	config.Contracts = make(map[Phase]ContractConfig)

	// A missing maestro.yaml is valid: everything falls back to builtins.
	if err := l.loadYAML("maestro.yaml", &config); err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			slog.Info("No maestro.yaml found, using builtin configuration", "config_dir", l.configDir)
			return &config, nil
		}
		return nil, err
	}

	return &config, nil
}
