// Package contracts defines phase contracts: the deliverables a phase
// must produce before its exit gate can pass, plus the quality metrics
// and owning personas. Contracts are versioned and immutable; amending
// one registers a new version so in-flight workflows keep evaluating
// against the version they started with.
package contracts

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/maestro-works/maestro/pkg/config"
)

// Deliverable names one artifact a phase contract requires, matched
// against produced file paths by glob pattern.
type Deliverable struct {
	Name       string   `json:"name" yaml:"name"`
	Patterns   []string `json:"patterns" yaml:"patterns"`
	MinQuality float64  `json:"min_quality" yaml:"min_quality"`
	Optional   bool     `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// Match reports whether relPath satisfies any of the deliverable's
// patterns. Matching is case-insensitive. Patterns without a path
// separator also match by basename, and a bare token falls back to a
// substring match so loosely named artifacts still map ("api" matches
// "docs/API-Design.md").
func (d Deliverable) Match(relPath string) bool {
	candidate := strings.ToLower(filepath.ToSlash(relPath))
	base := path.Base(candidate)

	for _, raw := range d.Patterns {
		pattern := strings.ToLower(strings.TrimSpace(raw))
		if pattern == "" {
			continue
		}
		if ok, err := doublestar.Match(pattern, candidate); err == nil && ok {
			return true
		}
		if !strings.Contains(pattern, "/") {
			if ok, err := doublestar.Match(pattern, base); err == nil && ok {
				return true
			}
		}
		// Substring fallback for patterns with no glob metacharacters.
		if !strings.ContainsAny(pattern, "*?[{") && strings.Contains(candidate, pattern) {
			return true
		}
	}
	return false
}

// Contract is one immutable version of a phase's exit expectations.
type Contract struct {
	Phase          config.Phase       `json:"phase" yaml:"phase"`
	Version        int                `json:"version" yaml:"version"`
	Deliverables   []Deliverable      `json:"deliverables" yaml:"deliverables"`
	QualityMetrics map[string]float64 `json:"quality_metrics,omitempty" yaml:"quality_metrics,omitempty"`
	Owners         []string           `json:"owners,omitempty" yaml:"owners,omitempty"`
	CreatedAt      time.Time          `json:"created_at" yaml:"created_at"`
}

// Required returns the non-optional deliverables.
func (c *Contract) Required() []Deliverable {
	required := make([]Deliverable, 0, len(c.Deliverables))
	for _, d := range c.Deliverables {
		if !d.Optional {
			required = append(required, d)
		}
	}
	return required
}

// Deliverable looks up a deliverable by name.
func (c *Contract) Deliverable(name string) (Deliverable, bool) {
	for _, d := range c.Deliverables {
		if d.Name == name {
			return d, true
		}
	}
	return Deliverable{}, false
}

func (c *Contract) validate() error {
	if !c.Phase.IsValid() {
		return fmt.Errorf("%w: unknown phase %q", config.ErrInvalidValue, string(c.Phase))
	}
	if len(c.Deliverables) == 0 {
		return fmt.Errorf("%w: contract for phase %s has no deliverables", config.ErrValidationFailed, c.Phase)
	}
	seen := make(map[string]bool, len(c.Deliverables))
	for _, d := range c.Deliverables {
		if d.Name == "" {
			return fmt.Errorf("%w: deliverable with empty name in phase %s", config.ErrMissingRequiredField, c.Phase)
		}
		if seen[d.Name] {
			return fmt.Errorf("%w: duplicate deliverable %q in phase %s", config.ErrValidationFailed, d.Name, c.Phase)
		}
		seen[d.Name] = true
		if len(d.Patterns) == 0 {
			return fmt.Errorf("%w: deliverable %q has no patterns", config.ErrMissingRequiredField, d.Name)
		}
		if d.MinQuality < 0 || d.MinQuality > 1 {
			return fmt.Errorf("%w: deliverable %q min_quality %.2f outside [0,1]", config.ErrInvalidValue, d.Name, d.MinQuality)
		}
	}
	return nil
}
