package config

import (
	"fmt"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Validate in order: personas → policy → contracts → engine
	// This ensures dependencies are validated before dependents

	if err := v.validatePersonas(); err != nil {
		return fmt.Errorf("persona validation failed: %w", err)
	}

	if err := v.validatePolicy(); err != nil {
		return fmt.Errorf("policy validation failed: %w", err)
	}

	if err := v.validateContracts(); err != nil {
		return fmt.Errorf("contract validation failed: %w", err)
	}

	if err := v.cfg.Engine.validate(); err != nil {
		return fmt.Errorf("engine validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validatePersonas() error {
	for id, persona := range v.cfg.PersonaRegistry.GetAll() {
		if persona.Role == "" {
			return NewValidationError("persona", id, "role", ErrMissingRequiredField)
		}
		if persona.SystemPrompt == "" {
			return NewValidationError("persona", id, "system_prompt", ErrMissingRequiredField)
		}
		for _, phase := range persona.Phases {
			if !phase.IsValid() {
				return NewValidationError("persona", id, "phases",
					fmt.Errorf("%w: unknown phase %q", ErrInvalidValue, phase))
			}
		}
	}
	return nil
}

func (v *ConfigValidator) validatePolicy() error {
	return v.cfg.PolicyRegistry.policy.validate()
}

func (v *ConfigValidator) validateContracts() error {
	for phase, contract := range v.cfg.ContractOverrides {
		if !phase.IsValid() {
			return NewValidationError("contract", string(phase), "",
				fmt.Errorf("%w: unknown phase", ErrInvalidValue))
		}
		if len(contract.Deliverables) == 0 {
			return NewValidationError("contract", string(phase), "deliverables", ErrMissingRequiredField)
		}

		seen := make(map[string]bool, len(contract.Deliverables))
		for i, d := range contract.Deliverables {
			if d.Name == "" {
				return NewValidationError("contract", string(phase),
					fmt.Sprintf("deliverables[%d].name", i), ErrMissingRequiredField)
			}
			if seen[d.Name] {
				return NewValidationError("contract", string(phase),
					fmt.Sprintf("deliverables[%d].name", i),
					fmt.Errorf("%w: duplicate deliverable %q", ErrInvalidValue, d.Name))
			}
			seen[d.Name] = true
			if d.MinQuality < 0 || d.MinQuality > 1 {
				return NewValidationError("contract", string(phase),
					fmt.Sprintf("deliverables[%d].min_quality", i),
					fmt.Errorf("%w: %v outside [0,1]", ErrInvalidValue, d.MinQuality))
			}
		}

		for metric, threshold := range contract.QualityMetrics {
			if threshold < 0 || threshold > 1 {
				return NewValidationError("contract", string(phase), metric,
					fmt.Errorf("%w: threshold %v outside [0,1]", ErrInvalidValue, threshold))
			}
		}

		// Owner personas must exist so the phase plan can route work to them.
		for _, owner := range contract.Owners {
			if !v.cfg.PersonaRegistry.Has(owner) {
				return NewValidationError("contract", string(phase), "owners",
					fmt.Errorf("%w: persona %q", ErrInvalidReference, owner))
			}
		}
	}
	return nil
}
