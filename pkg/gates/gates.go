// Package gates evaluates phase entry and exit gates: contract-driven
// artifact validation combined with policy thresholds. Gate results are
// pure data; persistence and bypass decisions happen in the callers.
package gates

import (
	"fmt"
	"sort"
	"time"

	"github.com/maestro-works/maestro/pkg/config"
)

// GateKind distinguishes entry checks from exit checks.
type GateKind string

const (
	GateEntry GateKind = "entry"
	GateExit  GateKind = "exit"
)

// Violation is one gate threshold the output did not meet. Deliverable
// is set when the violation points at a specific contract deliverable
// rather than a phase-level aggregate.
type Violation struct {
	Gate        string              `json:"gate"`
	Deliverable string              `json:"deliverable,omitempty"`
	Severity    config.GateSeverity `json:"severity"`
	Current     float64             `json:"current"`
	Required    float64             `json:"required"`
	Message     string              `json:"message"`
}

// Blocking reports whether this violation fails the gate on its own.
// Unset severities count as blocking so a sloppy policy file cannot
// silently disable a gate.
func (v Violation) Blocking() bool {
	return v.Severity == config.GateSeverityBlocking || v.Severity == ""
}

// Result is the outcome of one gate evaluation.
type Result struct {
	Phase           config.Phase `json:"phase"`
	Kind            GateKind     `json:"kind"`
	Passed          bool         `json:"passed"`
	Score           float64      `json:"score"`
	Violations      []Violation  `json:"violations,omitempty"`
	Recommendations []string     `json:"recommendations,omitempty"`
	EvaluatedAt     time.Time    `json:"evaluated_at"`
	Iteration       int          `json:"iteration,omitempty"`
	ContractVersion int          `json:"contract_version,omitempty"`
}

// BlockingViolations returns the violations that fail the gate.
func (r *Result) BlockingViolations() []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Blocking() {
			out = append(out, v)
		}
	}
	return out
}

// FailedGates returns the distinct gate names with at least one
// blocking violation, sorted.
func (r *Result) FailedGates() []string {
	seen := make(map[string]bool)
	for _, v := range r.Violations {
		if v.Blocking() {
			seen[v.Gate] = true
		}
	}
	out := make([]string, 0, len(seen))
	for g := range seen {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

// Uncovered returns the blocking violations whose gate is not in the
// bypassed set. An empty return means every blocking violation is
// covered and the phase may advance despite the failed gate.
func (r *Result) Uncovered(bypassed map[string]bool) []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Blocking() && !bypassed[v.Gate] {
			out = append(out, v)
		}
	}
	return out
}

// sortViolations orders blocking first, then by gate and deliverable,
// for stable reports.
func sortViolations(violations []Violation) {
	sort.SliceStable(violations, func(i, j int) bool {
		a, b := violations[i], violations[j]
		if a.Blocking() != b.Blocking() {
			return a.Blocking()
		}
		if a.Gate != b.Gate {
			return a.Gate < b.Gate
		}
		return a.Deliverable < b.Deliverable
	})
}

func violationMessage(gate string, current, required float64) string {
	return fmt.Sprintf("%s %.2f below required %.2f", gate, current, required)
}
