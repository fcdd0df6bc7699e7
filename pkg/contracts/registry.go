package contracts

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/maestro-works/maestro/pkg/config"
)

// Sentinel errors for contract lookups.
var (
	ErrContractNotFound = errors.New("no contract registered for phase")
	ErrVersionNotFound  = errors.New("contract version not found")
)

// Registry holds the versioned contracts per phase. Versions are
// 1-based and monotonically increasing; registered contracts are never
// mutated or removed.
type Registry struct {
	mu      sync.RWMutex
	byPhase map[config.Phase][]*Contract
}

// NewRegistry returns an empty contract registry.
func NewRegistry() *Registry {
	return &Registry{byPhase: make(map[config.Phase][]*Contract)}
}

// NewRegistryFromConfig builds a registry seeded with the builtin
// contracts as version 1, then applies per-phase overrides from the
// configuration as later versions.
func NewRegistryFromConfig(cfg *config.Config) (*Registry, error) {
	r := NewRegistry()
	for _, c := range BuiltinContracts() {
		if _, err := r.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register builtin contract for %s: %w", c.Phase, err)
		}
	}
	if cfg == nil {
		return r, nil
	}
	builtin := config.GetBuiltinConfig()
	for phase, override := range cfg.ContractOverrides {
		c := Contract{
			Phase:          phase,
			Deliverables:   make([]Deliverable, 0, len(override.Deliverables)),
			QualityMetrics: override.QualityMetrics,
			Owners:         override.Owners,
		}
		for _, d := range override.Deliverables {
			patterns := d.Patterns
			if len(patterns) == 0 {
				patterns = builtin.DeliverablePatterns[d.Name]
			}
			minQuality := d.MinQuality
			if minQuality == 0 {
				minQuality = DefaultMinQuality
			}
			c.Deliverables = append(c.Deliverables, Deliverable{
				Name:       d.Name,
				Patterns:   patterns,
				MinQuality: minQuality,
				Optional:   d.Optional,
			})
		}
		if _, err := r.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register contract override for %s: %w", phase, err)
		}
	}
	return r, nil
}

// Register validates the contract and stores it as the next version for
// its phase, returning the assigned version number. The caller's struct
// is copied; later mutations of the argument do not affect the registry.
func (r *Registry) Register(c Contract) (int, error) {
	if err := c.validate(); err != nil {
		return 0, err
	}

	stored := c
	stored.Deliverables = append([]Deliverable(nil), c.Deliverables...)
	if c.QualityMetrics != nil {
		stored.QualityMetrics = make(map[string]float64, len(c.QualityMetrics))
		for k, v := range c.QualityMetrics {
			stored.QualityMetrics[k] = v
		}
	}
	stored.Owners = append([]string(nil), c.Owners...)
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored.Version = len(r.byPhase[stored.Phase]) + 1
	r.byPhase[stored.Phase] = append(r.byPhase[stored.Phase], &stored)
	return stored.Version, nil
}

// Get returns the given version of the phase's contract. Version 0
// means latest.
func (r *Registry) Get(phase config.Phase, version int) (*Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	versions := r.byPhase[phase]
	if len(versions) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrContractNotFound, phase)
	}
	if version == 0 {
		return versions[len(versions)-1], nil
	}
	if version < 1 || version > len(versions) {
		return nil, fmt.Errorf("%w: phase %s version %d (latest is %d)",
			ErrVersionNotFound, phase, version, len(versions))
	}
	return versions[version-1], nil
}

// Latest returns the most recent contract version for the phase.
func (r *Registry) Latest(phase config.Phase) (*Contract, error) {
	return r.Get(phase, 0)
}

// Versions lists the registered version numbers for a phase, ascending.
func (r *Registry) Versions(phase config.Phase) []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	versions := make([]int, len(r.byPhase[phase]))
	for i := range r.byPhase[phase] {
		versions[i] = i + 1
	}
	return versions
}

// Phases lists the phases that have at least one contract, in phase
// order.
func (r *Registry) Phases() []config.Phase {
	r.mu.RLock()
	defer r.mu.RUnlock()

	phases := make([]config.Phase, 0, len(r.byPhase))
	for p := range r.byPhase {
		phases = append(phases, p)
	}
	sort.Slice(phases, func(i, j int) bool { return phases[i].Index() < phases[j].Index() })
	return phases
}
