package config

import (
	"fmt"
	"sort"
	"sync"
)

// PersonaConfig defines a role-specialized agent backed by the LLM
// collaborator.
type PersonaConfig struct {
	// Human-readable role title (required)
	Role string `yaml:"role" validate:"required"`

	// Expertise bullet points woven into prompts
	Expertise []string `yaml:"expertise,omitempty"`

	// Capabilities this persona can be routed by (e.g. backend, qa)
	Capabilities []string `yaml:"capabilities,omitempty"`

	// System prompt prepended to every invocation (required)
	SystemPrompt string `yaml:"system_prompt" validate:"required"`

	// Phases this persona participates in by default
	Phases []Phase `yaml:"phases,omitempty"`

	// Optional LLM provider override
	LLMProvider string `yaml:"llm_provider,omitempty"`
}

// PersonaRegistry stores persona configurations in memory with thread-safe access
type PersonaRegistry struct {
	personas map[string]*PersonaConfig
	mu       sync.RWMutex
}

// NewPersonaRegistry creates a new persona registry
func NewPersonaRegistry(personas map[string]*PersonaConfig) *PersonaRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*PersonaConfig, len(personas))
	for k, v := range personas {
		copied[k] = v
	}
	return &PersonaRegistry{
		personas: copied,
	}
}

// Get retrieves a persona configuration by id (thread-safe)
func (r *PersonaRegistry) Get(personaID string) (*PersonaConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	persona, exists := r.personas[personaID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrPersonaNotFound, personaID)
	}
	return persona, nil
}

// GetByCapability returns the ids of personas declaring the capability,
// sorted for deterministic routing (thread-safe).
func (r *PersonaRegistry) GetByCapability(capability string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for id, p := range r.personas {
		for _, c := range p.Capabilities {
			if c == capability {
				ids = append(ids, id)
				break
			}
		}
	}
	sort.Strings(ids)
	return ids
}

// GetByPhase returns the ids of personas participating in the phase,
// sorted for deterministic planning (thread-safe).
func (r *PersonaRegistry) GetByPhase(phase Phase) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for id, p := range r.personas {
		for _, ph := range p.Phases {
			if ph == phase {
				ids = append(ids, id)
				break
			}
		}
	}
	sort.Strings(ids)
	return ids
}

// GetAll returns all persona configurations (thread-safe, returns copy)
func (r *PersonaRegistry) GetAll() map[string]*PersonaConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*PersonaConfig, len(r.personas))
	for k, v := range r.personas {
		result[k] = v
	}
	return result
}

// Has checks if a persona exists in the registry (thread-safe)
func (r *PersonaRegistry) Has(personaID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.personas[personaID]
	return exists
}

// Len returns the number of personas in the registry (thread-safe)
func (r *PersonaRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.personas)
}
