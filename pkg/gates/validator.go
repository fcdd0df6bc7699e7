package gates

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/maestro-works/maestro/pkg/artifacts"
	"github.com/maestro-works/maestro/pkg/audit"
	"github.com/maestro-works/maestro/pkg/config"
	"github.com/maestro-works/maestro/pkg/contracts"
)

// Evaluation is the persistence record of one exit-gate run. The stored
// rows are the denominator of the bypass rate, so every exit evaluation
// must be recorded regardless of outcome.
type Evaluation struct {
	WorkflowID  string
	ExecutionID string
	Phase       config.Phase
	Kind        GateKind
	Passed      bool
	Score       float64
	Iteration   int
	FailedGates []string
}

// Recorder persists gate evaluations.
type Recorder interface {
	RecordGateEvaluation(ctx context.Context, eval Evaluation) error
}

// EvalInput carries the per-evaluation context a gate needs beyond the
// phase itself.
type EvalInput struct {
	WorkflowID  string
	ExecutionID string

	// OutputDir is the workspace the phase wrote into.
	OutputDir string

	// Produced limits exit validation to the files the phase actually
	// produced. Nil validates the whole workspace.
	Produced []string

	// Iteration is the 1-based remediation round.
	Iteration int

	// Metrics are measured gate values (test_coverage, security_scan)
	// that cannot be derived from the artifact report.
	Metrics map[string]float64
}

// Validator evaluates entry and exit gates against contracts and
// policy. Safe for concurrent use.
type Validator struct {
	policy    *config.PolicyRegistry
	contracts *contracts.Registry
	recorder  Recorder
	audit     *audit.Logger
	logger    *slog.Logger
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithRecorder persists every exit-gate evaluation.
func WithRecorder(r Recorder) ValidatorOption {
	return func(v *Validator) { v.recorder = r }
}

// WithAuditLog appends every gate evaluation to the audit trail.
func WithAuditLog(l *audit.Logger) ValidatorOption {
	return func(v *Validator) { v.audit = l }
}

// NewValidator builds a gate validator over the given policy and
// contract registries.
func NewValidator(policy *config.PolicyRegistry, registry *contracts.Registry, opts ...ValidatorOption) *Validator {
	v := &Validator{
		policy:    policy,
		contracts: registry,
		logger:    slog.With("component", "gates"),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// EntryGate checks that the predecessor phase's artifacts exist in the
// workspace and still meet their contract. The first phase has no
// predecessor and passes trivially.
func (v *Validator) EntryGate(ctx context.Context, phase config.Phase, in EvalInput) (*Result, error) {
	result := &Result{
		Phase:       phase,
		Kind:        GateEntry,
		EvaluatedAt: time.Now().UTC(),
	}

	prev, ok := phase.Prev()
	if !ok {
		result.Passed = true
		result.Score = 1.0
		v.logAudit(ctx, in, result)
		return result, nil
	}

	contract, err := v.contracts.Latest(prev)
	if err != nil {
		return nil, fmt.Errorf("entry gate for %s: %w", phase, err)
	}

	report, err := artifacts.Validate(contract, in.OutputDir, nil)
	if err != nil {
		return nil, fmt.Errorf("entry gate for %s: %w", phase, err)
	}

	// Entry violations are judged against the predecessor's policy:
	// that is the phase whose output is being re-checked.
	table := v.policy.GatesFor(prev)
	result.Score = report.QualityScore
	result.ContractVersion = report.ContractVersion
	result.Violations = v.deliverableViolations(report, table)
	result.Recommendations = report.Recommendations
	sortViolations(result.Violations)
	result.Passed = len(result.BlockingViolations()) == 0

	v.logAudit(ctx, in, result)
	v.logger.Info("Entry gate evaluated",
		"phase", phase,
		"predecessor", prev,
		"passed", result.Passed,
		"score", result.Score,
		"violations", len(result.Violations))
	return result, nil
}

// ExitGate validates the phase's produced artifacts against its
// contract and the policy gate table. The evaluation is recorded before
// returning; recording failures are logged but do not mask the result.
func (v *Validator) ExitGate(ctx context.Context, phase config.Phase, in EvalInput) (*Result, error) {
	contract, err := v.contracts.Latest(phase)
	if err != nil {
		return nil, fmt.Errorf("exit gate for %s: %w", phase, err)
	}

	report, err := artifacts.Validate(contract, in.OutputDir, in.Produced)
	if err != nil {
		return nil, fmt.Errorf("exit gate for %s: %w", phase, err)
	}

	result := &Result{
		Phase:           phase,
		Kind:            GateExit,
		Score:           report.QualityScore,
		ContractVersion: report.ContractVersion,
		EvaluatedAt:     time.Now().UTC(),
		Iteration:       in.Iteration,
	}

	table := v.policy.GatesFor(phase)
	result.Violations = v.deliverableViolations(report, table)
	result.Recommendations = append(result.Recommendations, report.Recommendations...)

	values := map[string]float64{
		"quality_score":         report.QualityScore,
		"artifact_completeness": report.CompletenessRatio,
	}
	for name, value := range in.Metrics {
		values[name] = value
	}

	for _, gate := range sortedGateNames(table) {
		slo := table[gate]
		current, measured := values[gate]
		if !measured {
			// Gates nothing measured are not judged: failing every
			// unmeasured gate would block phases that never produce
			// that signal.
			v.logger.Debug("Skipping unmeasured gate", "phase", phase, "gate", gate)
			continue
		}
		if current >= slo.Threshold {
			continue
		}
		result.Violations = append(result.Violations, Violation{
			Gate:     gate,
			Severity: slo.Severity,
			Current:  current,
			Required: slo.Threshold,
			Message:  violationMessage(gate, current, slo.Threshold),
		})
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("raise %s from %.2f to at least %.2f", gate, current, slo.Threshold))
	}

	sortViolations(result.Violations)
	result.Passed = len(result.BlockingViolations()) == 0

	if v.recorder != nil {
		eval := Evaluation{
			WorkflowID:  in.WorkflowID,
			ExecutionID: in.ExecutionID,
			Phase:       phase,
			Kind:        GateExit,
			Passed:      result.Passed,
			Score:       result.Score,
			Iteration:   in.Iteration,
			FailedGates: result.FailedGates(),
		}
		if err := v.recorder.RecordGateEvaluation(ctx, eval); err != nil {
			v.logger.Error("Failed to record gate evaluation",
				"phase", phase, "workflow_id", in.WorkflowID, "error", err)
		}
	}

	v.logAudit(ctx, in, result)
	v.logger.Info("Exit gate evaluated",
		"phase", phase,
		"passed", result.Passed,
		"score", result.Score,
		"iteration", in.Iteration,
		"violations", len(result.Violations))
	return result, nil
}

// deliverableViolations maps missing and under-threshold deliverables
// to violations. Missing required files count against completeness;
// weak ones against quality. Severities follow the aggregate gate they
// roll up into.
func (v *Validator) deliverableViolations(report *artifacts.Report, table map[string]config.GateSLO) []Violation {
	completenessSeverity := severityOf(table, "artifact_completeness")
	qualitySeverity := severityOf(table, "quality_score")

	var out []Violation
	for _, d := range report.Deliverables {
		switch d.Status {
		case artifacts.DeliverableMissing:
			if d.Optional {
				continue
			}
			out = append(out, Violation{
				Gate:        "artifact_completeness",
				Deliverable: d.Name,
				Severity:    completenessSeverity,
				Current:     0,
				Required:    d.MinQuality,
				Message:     fmt.Sprintf("required deliverable %q missing: no produced file matched", d.Name),
			})
		case artifacts.DeliverableBelowThreshold:
			severity := qualitySeverity
			if d.Optional {
				severity = config.GateSeverityWarning
			}
			out = append(out, Violation{
				Gate:        "quality_score",
				Deliverable: d.Name,
				Severity:    severity,
				Current:     d.Score,
				Required:    d.MinQuality,
				Message: fmt.Sprintf("deliverable %q scored %.2f, contract requires %.2f",
					d.Name, d.Score, d.MinQuality),
			})
		}
	}
	return out
}

func (v *Validator) logAudit(ctx context.Context, in EvalInput, result *Result) {
	if v.audit == nil {
		return
	}
	event := audit.Event{
		EventType:   audit.EventGateEvaluation,
		WorkflowID:  in.WorkflowID,
		ExecutionID: in.ExecutionID,
		Phase:       string(result.Phase),
		Details: map[string]any{
			"kind":      string(result.Kind),
			"passed":    result.Passed,
			"score":     result.Score,
			"iteration": result.Iteration,
		},
	}
	if failed := result.FailedGates(); len(failed) > 0 {
		event.Details["failed_gates"] = failed
	}
	if err := v.audit.Append(event); err != nil {
		v.logger.Warn("Failed to append gate audit event", "phase", result.Phase, "error", err)
	}
}

func severityOf(table map[string]config.GateSLO, gate string) config.GateSeverity {
	if slo, ok := table[gate]; ok && slo.Severity != "" {
		return slo.Severity
	}
	return config.GateSeverityBlocking
}

func sortedGateNames(table map[string]config.GateSLO) []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
